// Package validator decides whether a single OCR line is subtitle content or
// noise such as watermarks, channel logos and partial glyphs.
package validator

import (
	"strings"
	"unicode"

	"github.com/valpere/flashsub/internal/language"
	"github.com/valpere/flashsub/internal/script"
)

// shortLineLength is the rune count under which a line must end a sentence
// to be trusted.
const shortLineLength = 5

// maxSymbols is the number of symbol-band characters tolerated in a line.
const maxSymbols = 2

// Counts holds the per-line character statistics the verdict is based on.
type Counts struct {
	Length  int
	Script  int
	Numeric int
	Symbol  int
}

// Count classifies every rune of line. The counts are independent: a digit
// inside the script's own block counts as both script and numeric.
func Count(line string, s script.Script) Counts {
	var c Counts
	for _, r := range line {
		c.Length++
		if s.Contains(r) {
			c.Script++
		}
		if unicode.IsDigit(r) {
			c.Numeric++
		}
		if isSymbol(r) {
			c.Symbol++
		}
	}
	return c
}

// isSymbol reports whether r falls in the Latin-1 band that holds currency,
// copyright and registered-trademark style signs.
func isSymbol(r rune) bool {
	return r >= 0x00A0 && r <= 0x00BF
}

// IsValid returns true when line looks like genuine subtitle text in the
// script s for the origin language lang.
func IsValid(line string, s script.Script, lang string) bool {
	return !IsInvalid(line, s, lang)
}

// IsInvalid returns true when line should be discarded as OCR noise.
func IsInvalid(line string, s script.Script, lang string) bool {
	c := Count(line, s)
	switch {
	case c.Length == 0:
		return true
	case c.Length == c.Numeric:
		return true
	case c.Script == 0:
		return true
	case c.Symbol > maxSymbols:
		return true
	case c.Symbol > c.Script:
		return true
	case c.Numeric+c.Script <= c.Length/2:
		return true
	case c.Length < shortLineLength && (c.Symbol > 0 || !validEndOfSentence(line, lang)):
		return true
	}
	return false
}

// validEndOfSentence reports whether a short line may be kept: it ends a
// sentence, or lang does not mark sentence ends reliably.
func validEndOfSentence(line, lang string) bool {
	if !language.UsesTerminalPunctuation(lang) {
		return true
	}
	return strings.HasSuffix(line, ".") ||
		strings.HasSuffix(line, "!") ||
		strings.HasSuffix(line, "?") ||
		strings.HasSuffix(line, ":")
}
