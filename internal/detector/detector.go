// Package detector guesses the language of recognized subtitle text locally.
// It fills in the detected source language when the translation service
// did not report one.
package detector

import (
	"strings"

	lingua "github.com/pemistahl/lingua-go"
)

type Detector struct {
	detector lingua.LanguageDetector
}

func New() *Detector {
	detector := lingua.NewLanguageDetectorBuilder().
		FromAllLanguages().
		Build()

	return &Detector{detector: detector}
}

func (d *Detector) Detect(text string) (lingua.Language, bool) {
	if strings.TrimSpace(text) == "" {
		return lingua.Unknown, false
	}
	return d.detector.DetectLanguageOf(text)
}

func (d *Detector) DetectISO(text string) (string, bool) {
	lang, ok := d.Detect(text)
	if !ok {
		return "", false
	}
	return lang.IsoCode639_1().String(), true
}

// DetectCode returns the lower-case ISO 639-1 code, the form the
// translation service reports detected languages in.
func (d *Detector) DetectCode(text string) (string, bool) {
	code, ok := d.DetectISO(text)
	if !ok {
		return "", false
	}
	return strings.ToLower(code), true
}
