//go:build darwin

package screen

import "context"

type darwinBackend struct{}

func (darwinBackend) name() string { return "screencapture" }

func (darwinBackend) captureRaw(ctx context.Context, path string) error {
	// -x: no sound, -t png: PNG format, -m: main display only
	return run(ctx, "screencapture", "-x", "-t", "png", "-m", path)
}

// New creates a platform-specific screen capturer. With keepFiles set the
// screenshots are left on disk for inspection.
func New(keepFiles bool) Capturer {
	return newBase(darwinBackend{}, keepFiles)
}
