// Package formatter turns raw multi-line OCR output into cleaned subtitle text.
//
// Lines are scanned top to bottom. Scanning stops at the first player timer
// line (e.g. "12:34"), noise lines are dropped, and an episode banner on
// platforms that render one discards everything collected before it.
package formatter

import (
	"log/slog"
	"regexp"
	"strconv"
	"strings"

	"github.com/valpere/flashsub/internal/platform"
	"github.com/valpere/flashsub/internal/script"
	"github.com/valpere/flashsub/internal/validator"
)

// timestampRe matches a player timer overlay such as "01:23".
var timestampRe = regexp.MustCompile(`^\d{2}:\d{2}$`)

// bannerRe matches an episode title overlay such as
// "Season 1, Ep. 3 Episode 3".
var bannerRe = regexp.MustCompile(`^\S+ \d+, Ep\. \d+ \S*pisode \d+$`)

// IsTimestamp reports whether line is a DD:DD timer overlay.
func IsTimestamp(line string) bool {
	if !timestampRe.MatchString(line) {
		return false
	}
	for _, part := range strings.Split(line, ":") {
		if _, err := strconv.ParseUint(part, 10, 32); err != nil {
			return false
		}
	}
	return true
}

// IsTitleBanner reports whether line is the episode banner of platformName.
// Platforms without such a banner never match.
func IsTitleBanner(line, platformName string) bool {
	if !platform.HasEpisodeBanner(platformName) {
		return false
	}
	return bannerRe.MatchString(line)
}

// Format cleans raw OCR text captured on platformName with origin language
// lang. Every kept line is followed by a newline and has '|' replaced by 'I'.
// An empty result is a valid outcome.
func Format(raw, platformName, lang string) string {
	s := script.ForLanguage(lang)

	var b strings.Builder
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if IsTimestamp(line) {
			slog.Debug("timer overlay reached, stopping scan", "line", line)
			break
		}
		if validator.IsInvalid(line, s, lang) {
			continue
		}
		if IsTitleBanner(line, platformName) {
			slog.Debug("episode banner found, discarding previous lines", "line", line)
			b.Reset()
			continue
		}
		b.WriteString(strings.ReplaceAll(line, "|", "I"))
		b.WriteByte('\n')
	}
	return b.String()
}
