// Package platform holds the per-streaming-platform capture knowledge: where
// subtitles appear on screen, which OCR engine reads them best and which UI
// overlays need special handling.
package platform

import "sort"

const (
	Netflix    = "Netflix"
	Hulu       = "Hulu"
	PrimeVideo = "Amazon Prime Video"
	DisneyPlus = "Disney+"
	Max        = "Max"
	YouTube    = "YouTube"
	VLC        = "VLC"
	AppleTV    = "AppleTV"
)

// Rect is a crop rectangle expressed as fractions of the full frame.
type Rect struct {
	Left   float64 `json:"left"`
	Top    float64 `json:"top"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// boundsTolerance absorbs float rounding in ratio sums such as 0.7+0.3.
const boundsTolerance = 1e-9

// InBounds reports whether the rectangle stays inside the unit frame.
func (r Rect) InBounds() bool {
	return r.Left >= 0 && r.Top >= 0 && r.Width > 0 && r.Height > 0 &&
		r.Left+r.Width <= 1+boundsTolerance && r.Top+r.Height <= 1+boundsTolerance
}

// DefaultRect is used for platforms missing from the table.
var DefaultRect = Rect{Left: 0.15, Top: 0.03, Width: 0.7, Height: 0.94}

type profile struct {
	rect Rect
	// cloud routes OCR to the vision service; full-frame crops with styled
	// subtitles are read poorly by the local engine.
	cloud bool
	// banner marks platforms that render an episode title overlay inside the
	// crop region.
	banner bool
}

var profiles = map[string]profile{
	Netflix:    {rect: Rect{0.1, 0.04, 0.8, 0.84}, cloud: true},
	Hulu:       {rect: Rect{0.29, 0.6, 0.42, 0.37}},
	PrimeVideo: {rect: Rect{0.25, 0.04, 0.50, 0.92}, cloud: true},
	DisneyPlus: {rect: Rect{0.15, 0.03, 0.7, 0.94}, cloud: true},
	Max:        {rect: Rect{0.15, 0.03, 0.7, 0.91}, cloud: true, banner: true},
	YouTube:    {rect: Rect{0.24, 0.7, 0.52, 0.3}},
	VLC:        {rect: Rect{0.20, 0.7, 0.60, 0.22}},
	AppleTV:    {rect: Rect{0.23, 0.03, 0.54, 0.90}, cloud: true},
}

// Crop returns the crop rectangle for name, or DefaultRect.
func Crop(name string) Rect {
	if p, ok := profiles[name]; ok {
		return p.rect
	}
	return DefaultRect
}

// UsesCloudOCR reports whether captures from name go to the vision service
// first.
func UsesCloudOCR(name string) bool {
	return profiles[name].cloud
}

// HasEpisodeBanner reports whether name renders an episode title banner that
// resets accumulated subtitle text.
func HasEpisodeBanner(name string) bool {
	return profiles[name].banner
}

// Known reports whether name is in the platform table.
func Known(name string) bool {
	_, ok := profiles[name]
	return ok
}

// Names returns the known platform names sorted alphabetically.
func Names() []string {
	names := make([]string, 0, len(profiles))
	for name := range profiles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
