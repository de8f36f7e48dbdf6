// Package ocr extracts raw multi-line text from a cropped subtitle image.
//
// Two engines are provided: the Google Cloud Vision TEXT_DETECTION service and
// a local Tesseract engine. Chain combines them so a cloud failure falls back
// to the local engine.
package ocr

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
)

// ErrNoText is returned when an engine response carries no text annotation.
var ErrNoText = errors.New("no text annotation in response")

// Request is one recognition job.
type Request struct {
	Image []byte
	// Language is the origin language display name used to pick hints and
	// traineddata. Empty or "Automatic" means no hint.
	Language string
}

// Engine recognizes text in an encoded image.
type Engine interface {
	Name() string
	Recognize(ctx context.Context, req Request) (string, error)
}

// Chain tries Primary and falls back to Fallback when Primary fails.
type Chain struct {
	Primary  Engine
	Fallback Engine
}

func (c *Chain) Name() string {
	return c.Primary.Name() + "+" + c.Fallback.Name()
}

func (c *Chain) Recognize(ctx context.Context, req Request) (string, error) {
	text, err := c.Primary.Recognize(ctx, req)
	if err == nil {
		return text, nil
	}
	slog.Warn("OCR engine failed, falling back", "engine", c.Primary.Name(), "fallback", c.Fallback.Name(), "error", err)

	text, fbErr := c.Fallback.Recognize(ctx, req)
	if fbErr != nil {
		return "", fmt.Errorf("%s: %w (after %s: %v)", c.Fallback.Name(), fbErr, c.Primary.Name(), err)
	}
	return text, nil
}
