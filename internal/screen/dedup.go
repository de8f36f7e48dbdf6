package screen

import (
	"image"
	"log/slog"
	"sync"

	"github.com/corona10/goimagehash"
)

// MaxHashDistance is the perceptual hash Hamming distance under which two
// frames are considered the same subtitle.
const MaxHashDistance = 5

// Deduper remembers the perceptual hash of the last accepted frame.
type Deduper struct {
	mu       sync.Mutex
	lastHash *goimagehash.ImageHash
}

// NewDeduper creates an empty Deduper.
func NewDeduper() *Deduper {
	return &Deduper{}
}

// Seen reports whether img is similar to the previously recorded frame. A
// frame that is not similar becomes the new reference.
func (d *Deduper) Seen(img image.Image) bool {
	hash, err := goimagehash.PerceptionHash(img)
	if err != nil {
		slog.Debug("perceptual hash failed", "error", err)
		return false
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	if d.lastHash == nil {
		d.lastHash = hash
		return false
	}

	dist, err := d.lastHash.Distance(hash)
	if err != nil {
		d.lastHash = hash
		return false
	}
	if dist <= MaxHashDistance {
		slog.Debug("frame similar to previous capture", "distance", dist)
		return true
	}

	d.lastHash = hash
	return false
}

// Reset forgets the reference frame.
func (d *Deduper) Reset() {
	d.mu.Lock()
	d.lastHash = nil
	d.mu.Unlock()
}
