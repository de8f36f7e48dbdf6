package ocr

import (
	"context"
	"fmt"

	"github.com/otiai10/gosseract/v2"

	"github.com/valpere/flashsub/internal/language"
)

// TesseractEngine runs the local Tesseract engine through gosseract.
type TesseractEngine struct {
	clientFactory  func() *gosseract.Client
	tessdataPrefix string
}

// NewTesseractEngine constructs a Tesseract-backed OCR engine. An empty
// tessdataPrefix uses the library default.
func NewTesseractEngine(tessdataPrefix string) *TesseractEngine {
	return &TesseractEngine{clientFactory: gosseract.NewClient, tessdataPrefix: tessdataPrefix}
}

func (e *TesseractEngine) Name() string { return "tesseract" }

func (e *TesseractEngine) Recognize(ctx context.Context, req Request) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	c := e.clientFactory()
	defer c.Close()

	if e.tessdataPrefix != "" {
		c.TessdataPrefix = e.tessdataPrefix
	}
	if code := language.TesseractCode(req.Language); code != "" {
		if err := c.SetLanguage(code); err != nil {
			return "", fmt.Errorf("set language: %w", err)
		}
	}
	if err := c.SetImageFromBytes(req.Image); err != nil {
		return "", fmt.Errorf("set image: %w", err)
	}
	text, err := c.Text()
	if err != nil {
		return "", fmt.Errorf("recognize text: %w", err)
	}
	return text, nil
}
