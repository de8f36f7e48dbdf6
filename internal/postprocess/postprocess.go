// Package postprocess cleans translation service output before it is shown.
//
// Two phases are applied to every translation:
//  1. Entity decoding (services may return HTML-escaped text)
//  2. Reconciliation against the source, cutting trailing untranslated residue
package postprocess

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"golang.org/x/net/html"
)

// --- Phase 1: entity decoding ---

// numericRefRe matches decimal and hexadecimal character references.
var numericRefRe = regexp.MustCompile(`&#(?:[xX]([0-9A-Fa-f]+)|([0-9]+));`)

// Decode unescapes HTML entities in translated text. Text that is not valid
// UTF-8 or that references a code point outside the Unicode scalar range is
// rejected.
func Decode(text string) (string, error) {
	if !utf8.ValidString(text) {
		return "", fmt.Errorf("translation is not valid UTF-8")
	}
	for _, m := range numericRefRe.FindAllStringSubmatch(text, -1) {
		var (
			cp  uint64
			err error
		)
		if m[1] != "" {
			cp, err = strconv.ParseUint(m[1], 16, 32)
		} else {
			cp, err = strconv.ParseUint(m[2], 10, 32)
		}
		if err != nil || cp == 0 || cp > utf8.MaxRune || (cp >= 0xD800 && cp <= 0xDFFF) {
			return "", fmt.Errorf("malformed character reference %q", m[0])
		}
	}
	return html.UnescapeString(text), nil
}

// --- Phase 2: reconciliation ---

// residueRun is the number of consecutive source words in the translation
// that marks the start of untranslated residue.
const residueRun = 4

// Truncate cuts translated at the first run of residueRun consecutive words
// that also occur in source, dropping the whole run and everything after it.
// Words not found in source are always kept and reset the run. The result
// is trimmed of trailing whitespace.
func Truncate(source, translated string) string {
	sourceWords := make(map[string]struct{})
	for _, w := range strings.Fields(source) {
		sourceWords[w] = struct{}{}
	}

	out := make([]string, 0, len(translated)/4)
	run := 0
	for _, w := range strings.Fields(translated) {
		if _, ok := sourceWords[w]; !ok {
			run = 0
			out = append(out, w)
			continue
		}
		run++
		if run < residueRun {
			out = append(out, w)
			continue
		}
		// Roll back the words of the run appended so far.
		out = out[:len(out)-(residueRun-1)]
		break
	}
	return strings.TrimRight(strings.Join(out, " "), " \t\r\n")
}
