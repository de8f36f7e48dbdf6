//go:build !darwin && !linux && !windows

package screen

import (
	"context"
	"errors"
)

type unsupportedBackend struct{}

func (unsupportedBackend) name() string { return "unsupported" }

func (unsupportedBackend) captureRaw(context.Context, string) error {
	return errors.New("screen capture is not supported on this platform")
}

// New creates a platform-specific screen capturer. With keepFiles set the
// screenshots are left on disk for inspection.
func New(keepFiles bool) Capturer {
	return newBase(unsupportedBackend{}, keepFiles)
}
