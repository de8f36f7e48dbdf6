package formatter

import (
	"strings"
	"testing"

	"github.com/valpere/flashsub/internal/platform"
)

func TestIsTimestamp(t *testing.T) {
	tests := []struct {
		line string
		want bool
	}{
		{"00:01", true},
		{"12:34", true},
		{"99:99", true},
		{"1:23", false},
		{"123:45", false},
		{"12:3a", false},
		{"ab:cd", false},
		{"12-34", false},
		{"12:34:56", false},
		{" 12:34", false},
		{"", false},
		{"١٢:٣٤", false},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			if got := IsTimestamp(tt.line); got != tt.want {
				t.Errorf("IsTimestamp(%q) = %v, want %v", tt.line, got, tt.want)
			}
		})
	}
}

func TestIsTitleBanner(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		platform string
		want     bool
	}{
		{"max banner", "Season 1, Ep. 3 Episode 3", platform.Max, true},
		{"max banner other language", "Saison 2, Ep. 10 Épisode 10", platform.Max, true},
		{"max banner missing comma", "Season 1 Ep. 3 Episode 3", platform.Max, false},
		{"max banner trailing text", "Season 1, Ep. 3 Episode 3 extra", platform.Max, false},
		{"max subtitle", "We have to go.", platform.Max, false},
		{"banner on netflix", "Season 1, Ep. 3 Episode 3", platform.Netflix, false},
		{"banner on unknown platform", "Season 1, Ep. 3 Episode 3", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsTitleBanner(tt.line, tt.platform); got != tt.want {
				t.Errorf("IsTitleBanner(%q, %q) = %v, want %v", tt.line, tt.platform, got, tt.want)
			}
		})
	}
}

func TestFormat(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		platform string
		lang     string
		expected string
	}{
		{
			name:     "empty input",
			raw:      "",
			lang:     "English",
			expected: "",
		},
		{
			name:     "stops at timestamp",
			raw:      "Hello world.\n00:01\nignored",
			lang:     "English",
			expected: "Hello world.\n",
		},
		{
			name:     "timestamp first",
			raw:      "12:00\nHello world.",
			lang:     "English",
			expected: "",
		},
		{
			name:     "drops noise and keeps order",
			raw:      "©®™\n\nFirst line here\n42\nSecond line here.\n---",
			lang:     "English",
			expected: "First line here\nSecond line here.\n",
		},
		{
			name:     "trims lines",
			raw:      "   Padded subtitle text   \r\n",
			lang:     "English",
			expected: "Padded subtitle text\n",
		},
		{
			name:     "pipe becomes capital i",
			raw:      "| think so.",
			lang:     "English",
			expected: "I think so.\n",
		},
		{
			name:     "banner resets accumulated text",
			raw:      "Previously on the show\nSeason 1, Ep. 3 Episode 3\nWhere are you going?",
			platform: platform.Max,
			lang:     "English",
			expected: "Where are you going?\n",
		},
		{
			name:     "banner kept on other platforms",
			raw:      "Previously on the show\nSeason 1, Ep. 3 Episode 3",
			platform: platform.Netflix,
			lang:     "English",
			expected: "Previously on the show\nSeason 1, Ep. 3 Episode 3\n",
		},
		{
			name:     "short japanese line",
			raw:      "ありがと\n00:12",
			lang:     "Japanese",
			expected: "ありがと\n",
		},
		{
			name:     "only noise",
			raw:      "©\n123\n...",
			lang:     "English",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Format(tt.raw, tt.platform, tt.lang)
			if result != tt.expected {
				t.Errorf("Format(%q) = %q, want %q", tt.raw, result, tt.expected)
			}
		})
	}
}

func TestFormat_NothingAfterTimestamp(t *testing.T) {
	raw := "Line one is here.\nLine two is here.\n07:45\nLine three is here.\nLine four."
	result := Format(raw, platform.YouTube, "English")
	if strings.Contains(result, "three") || strings.Contains(result, "four") {
		t.Errorf("expected no lines after the timestamp, got %q", result)
	}
}

func TestFormat_SubsequenceOfInput(t *testing.T) {
	raw := "Alpha beta gamma\n©©©\nDelta epsilon\n\nZeta eta theta."
	result := Format(raw, platform.Netflix, "English")
	lines := strings.Split(strings.TrimSuffix(result, "\n"), "\n")
	input := strings.Split(raw, "\n")
	j := 0
	for _, line := range lines {
		for j < len(input) && input[j] != line {
			j++
		}
		if j == len(input) {
			t.Fatalf("line %q is not an in-order subsequence of the input", line)
		}
		j++
	}
}
