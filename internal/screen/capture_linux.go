//go:build linux

package screen

import (
	"context"
	"errors"
	"os"
	"os/exec"
)

type linuxBackend struct{}

func (linuxBackend) name() string { return "linux" }

func (linuxBackend) captureRaw(ctx context.Context, path string) error {
	if os.Getenv("DISPLAY") == "" && os.Getenv("WAYLAND_DISPLAY") == "" {
		return ErrNoDisplay
	}
	// Try gnome-screenshot first, fall back to scrot
	if _, err := exec.LookPath("gnome-screenshot"); err == nil {
		return run(ctx, "gnome-screenshot", "-f", path)
	}
	if _, err := exec.LookPath("scrot"); err == nil {
		return run(ctx, "scrot", "-o", path)
	}
	return errors.New("no screenshot tool found (install gnome-screenshot or scrot)")
}

// New creates a platform-specific screen capturer. With keepFiles set the
// screenshots are left on disk for inspection.
func New(keepFiles bool) Capturer {
	return newBase(linuxBackend{}, keepFiles)
}
