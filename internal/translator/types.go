package translator

import (
	"context"
	"time"
)

type ServiceConfig struct {
	Credentials string        `mapstructure:"credentials" json:"credentials"`
	APIKey      string        `mapstructure:"api_key" json:"api_key"`
	Endpoint    string        `mapstructure:"translate_endpoint" json:"endpoint"`
	Timeout     time.Duration `mapstructure:"timeout" json:"timeout"`
}

// TranslateRequest carries service language codes, not display names.
// An empty SourceLang asks the service to detect the source.
type TranslateRequest struct {
	Text       string `json:"text"`
	SourceLang string `json:"source_lang"`
	TargetLang string `json:"target_lang"`
}

type ServiceResult struct {
	ServiceName            string        `json:"service_name"`
	TranslatedText         string        `json:"translated_text"`
	DetectedSourceLanguage string        `json:"detected_source_language,omitempty"`
	Latency                time.Duration `json:"latency"`
	Error                  string        `json:"error,omitempty"`
}

type TranslationService interface {
	Name() string
	Translate(ctx context.Context, req TranslateRequest) (*ServiceResult, error)
}
