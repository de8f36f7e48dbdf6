package internal

import "time"

// Settings is the per-run snapshot of user preferences. It is copied by value
// at the start of a pipeline run and never mutated afterwards.
type Settings struct {
	OriginLanguage string `mapstructure:"origin_language" json:"origin_language"`
	TargetLanguage string `mapstructure:"target_language" json:"target_language"`
	Platform       string `mapstructure:"platform" json:"platform"`
}

// Result is the artifact of one pipeline run. An empty DetectedSourceLanguage
// means the language was not detected.
type Result struct {
	OriginalText           string `json:"original_text"`
	TranslatedText         string `json:"translated_text"`
	DetectedSourceLanguage string `json:"detected_source_language"`
}

// NotificationFooter prefixes the detected language line of a notification body.
const NotificationFooter = "[Detected Source Language:"

// Notification renders the result as a desktop notification body.
func (r Result) Notification() string {
	if r.DetectedSourceLanguage == "" {
		return r.TranslatedText
	}
	return r.TranslatedText + "\n" + NotificationFooter + " " + r.DetectedSourceLanguage + "]"
}

// SavedSub is a Result persisted to the history store.
type SavedSub struct {
	ID       string    `json:"id"`
	Result   Result    `json:"result"`
	Platform string    `json:"platform"`
	SavedAt  time.Time `json:"saved_at"`
}
