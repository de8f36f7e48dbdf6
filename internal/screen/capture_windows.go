//go:build windows

package screen

import (
	"context"
	"fmt"
)

type windowsBackend struct{}

func (windowsBackend) name() string { return "powershell" }

const psCapture = `Add-Type -AssemblyName System.Windows.Forms,System.Drawing
$s = [System.Windows.Forms.Screen]::PrimaryScreen
if ($s -eq $null) { exit 3 }
$b = New-Object System.Drawing.Bitmap $s.Bounds.Width, $s.Bounds.Height
$g = [System.Drawing.Graphics]::FromImage($b)
$g.CopyFromScreen($s.Bounds.Location, [System.Drawing.Point]::Empty, $s.Bounds.Size)
$b.Save('%s', [System.Drawing.Imaging.ImageFormat]::Png)`

func (windowsBackend) captureRaw(ctx context.Context, path string) error {
	return run(ctx, "powershell", "-NoProfile", "-NonInteractive", "-Command", fmt.Sprintf(psCapture, path))
}

// New creates a platform-specific screen capturer. With keepFiles set the
// screenshots are left on disk for inspection.
func New(keepFiles bool) Capturer {
	return newBase(windowsBackend{}, keepFiles)
}
