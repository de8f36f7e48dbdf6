package screen

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg" // JPEG decoder
	"image/png"
	"log/slog"

	_ "golang.org/x/image/bmp"  // BMP decoder
	"golang.org/x/image/draw"
	_ "golang.org/x/image/tiff" // TIFF decoder

	"github.com/valpere/flashsub/internal/platform"
)

// Decode parses an encoded screenshot.
func Decode(data []byte) (image.Image, error) {
	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode screenshot: %w", err)
	}
	slog.Debug("screenshot decoded", "format", format, "width", img.Bounds().Dx(), "height", img.Bounds().Dy())
	return img, nil
}

// CropRect converts ratio rectangle r into pixel coordinates of bounds. The
// result is not clipped to bounds.
func CropRect(bounds image.Rectangle, r platform.Rect) image.Rectangle {
	w, h := float64(bounds.Dx()), float64(bounds.Dy())
	x := int(w * r.Left)
	y := int(h * r.Top)
	return image.Rect(x, y, x+int(w*r.Width), y+int(h*r.Height)).Add(bounds.Min)
}

// Crop copies the region r of img into a new image. A rectangle reaching
// outside img is logged and the crop proceeds with the computed dimensions;
// pixels outside the source stay transparent.
func Crop(img image.Image, r platform.Rect) image.Image {
	rect := CropRect(img.Bounds(), r)
	if !r.InBounds() {
		slog.Warn("crop rectangle out of bounds",
			"crop", r,
			"rect", rect.String(),
			"bounds", img.Bounds().String(),
		)
	}
	dst := image.NewRGBA(image.Rect(0, 0, rect.Dx(), rect.Dy()))
	draw.Copy(dst, image.Point{}, img, rect, draw.Src, nil)
	return dst
}

// EncodePNG encodes img for the OCR engines.
func EncodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("failed to encode cropped image: %w", err)
	}
	return buf.Bytes(), nil
}
