// Package screen captures the primary display and prepares the subtitle
// region for text recognition.
package screen

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"
)

// ErrNoDisplay is returned when no primary display can be found.
var ErrNoDisplay = errors.New("no primary display found")

// Capturer grabs an encoded screenshot of the primary display.
type Capturer interface {
	Capture(ctx context.Context) ([]byte, error)
	Close()
}

// backend implements platform-specific raw capture into a file.
type backend interface {
	name() string
	captureRaw(ctx context.Context, path string) error
}

// baseCapturer provides the shared temp file handling.
type baseCapturer struct {
	backend
	tempDir string
	keep    bool
}

func newBase(b backend, keep bool) *baseCapturer {
	tmpDir, err := os.MkdirTemp("", "flashsub-screen-*")
	if err != nil {
		slog.Error("failed to create temp dir for screenshots", "error", err)
		tmpDir = os.TempDir()
	}
	return &baseCapturer{backend: b, tempDir: tmpDir, keep: keep}
}

func (c *baseCapturer) Capture(ctx context.Context) ([]byte, error) {
	path := filepath.Join(c.tempDir, fmt.Sprintf("screenshot_%s.png", time.Now().Format("20060102_150405.000")))
	if err := c.captureRaw(ctx, path); err != nil {
		return nil, fmt.Errorf("%s: %w", c.name(), err)
	}
	if c.keep {
		slog.Info("screenshot kept", "path", path)
	} else {
		defer os.Remove(path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read screenshot: %w", err)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("%s produced an empty screenshot", c.name())
	}
	slog.Debug("screenshot captured", "backend", c.name(), "bytes", len(data))
	return data, nil
}

// Close removes the temp directory unless screenshots are kept.
func (c *baseCapturer) Close() {
	if !c.keep && c.tempDir != "" && c.tempDir != os.TempDir() {
		os.RemoveAll(c.tempDir)
	}
}

// FileCapturer serves a fixed image file as the screenshot. It backs the
// "ocr" command and tests.
type FileCapturer struct {
	Path string
}

func (f FileCapturer) Capture(_ context.Context) ([]byte, error) {
	data, err := os.ReadFile(f.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to read image: %w", err)
	}
	return data, nil
}

func (f FileCapturer) Close() {}
