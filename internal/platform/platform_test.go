package platform

import "testing"

func TestCrop(t *testing.T) {
	tests := []struct {
		name string
		want Rect
	}{
		{Netflix, Rect{0.1, 0.04, 0.8, 0.84}},
		{Hulu, Rect{0.29, 0.6, 0.42, 0.37}},
		{PrimeVideo, Rect{0.25, 0.04, 0.50, 0.92}},
		{DisneyPlus, Rect{0.15, 0.03, 0.7, 0.94}},
		{Max, Rect{0.15, 0.03, 0.7, 0.91}},
		{YouTube, Rect{0.24, 0.7, 0.52, 0.3}},
		{VLC, Rect{0.20, 0.7, 0.60, 0.22}},
		{AppleTV, Rect{0.23, 0.03, 0.54, 0.90}},
		{"Crunchyroll", DefaultRect},
		{"", DefaultRect},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Crop(tt.name); got != tt.want {
				t.Errorf("Crop(%q) = %+v, want %+v", tt.name, got, tt.want)
			}
		})
	}
}

func TestRouting(t *testing.T) {
	cloud := []string{Netflix, PrimeVideo, DisneyPlus, Max, AppleTV}
	local := []string{Hulu, YouTube, VLC, "Unknown"}

	for _, name := range cloud {
		if !UsesCloudOCR(name) {
			t.Errorf("expected %s to use cloud OCR", name)
		}
	}
	for _, name := range local {
		if UsesCloudOCR(name) {
			t.Errorf("expected %s to use local OCR", name)
		}
	}
}

func TestHasEpisodeBanner(t *testing.T) {
	for _, name := range Names() {
		if got := HasEpisodeBanner(name); got != (name == Max) {
			t.Errorf("HasEpisodeBanner(%q) = %v", name, got)
		}
	}
}

func TestRect_InBounds(t *testing.T) {
	for _, name := range Names() {
		if !Crop(name).InBounds() {
			t.Errorf("expected %s rectangle to be in bounds", name)
		}
	}
	if (Rect{Left: 0.5, Top: 0, Width: 0.6, Height: 1}).InBounds() {
		t.Error("expected overflowing rectangle to be out of bounds")
	}
	if (Rect{Left: -0.1, Top: 0, Width: 0.5, Height: 0.5}).InBounds() {
		t.Error("expected negative origin to be out of bounds")
	}
}

func TestNames(t *testing.T) {
	names := Names()
	if len(names) != 8 {
		t.Fatalf("expected 8 platforms, got %d", len(names))
	}
	if names[0] != PrimeVideo {
		t.Errorf("expected %q first, got %q", PrimeVideo, names[0])
	}
	if !Known(VLC) || Known("Crunchyroll") {
		t.Error("unexpected Known result")
	}
}
