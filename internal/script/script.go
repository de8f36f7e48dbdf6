// Package script classifies characters by writing system.
//
// A Script is resolved once per run from the origin language display name and
// passed by value to the code that counts characters.
package script

import "unicode"

// Script identifies the writing system expected in OCR output.
type Script int

const (
	Latin Script = iota
	Chinese
	Japanese
	Korean
	Cyrillic
	Greek
	Arabic
	Hebrew
	Devanagari
	Bengali
)

var names = [...]string{
	Latin:      "latin",
	Chinese:    "chinese",
	Japanese:   "japanese",
	Korean:     "korean",
	Cyrillic:   "cyrillic",
	Greek:      "greek",
	Arabic:     "arabic",
	Hebrew:     "hebrew",
	Devanagari: "devanagari",
	Bengali:    "bengali",
}

func (s Script) String() string {
	if s < 0 || int(s) >= len(names) {
		return "unknown"
	}
	return names[s]
}

var (
	hanTable = &unicode.RangeTable{R16: []unicode.Range16{
		{Lo: 0x3400, Hi: 0x4DBF, Stride: 1},
		{Lo: 0x4E00, Hi: 0x9FFF, Stride: 1},
		{Lo: 0xF900, Hi: 0xFAFF, Stride: 1},
	}}
	kanaTable = &unicode.RangeTable{R16: []unicode.Range16{
		{Lo: 0x3040, Hi: 0x30FF, Stride: 1},
	}}
	hangulTable = &unicode.RangeTable{R16: []unicode.Range16{
		{Lo: 0xAC00, Hi: 0xD7AF, Stride: 1},
	}}
	cyrillicTable = &unicode.RangeTable{R16: []unicode.Range16{
		{Lo: 0x0400, Hi: 0x052F, Stride: 1},
	}}
	greekTable = &unicode.RangeTable{R16: []unicode.Range16{
		{Lo: 0x0370, Hi: 0x03FF, Stride: 1},
		{Lo: 0x1F00, Hi: 0x1FFF, Stride: 1},
	}}
	arabicTable = &unicode.RangeTable{R16: []unicode.Range16{
		{Lo: 0x0600, Hi: 0x06FF, Stride: 1},
		{Lo: 0x0750, Hi: 0x077F, Stride: 1},
	}}
	hebrewTable = &unicode.RangeTable{R16: []unicode.Range16{
		{Lo: 0x0590, Hi: 0x05FF, Stride: 1},
	}}
	devanagariTable = &unicode.RangeTable{R16: []unicode.Range16{
		{Lo: 0x0900, Hi: 0x097F, Stride: 1},
	}}
	bengaliTable = &unicode.RangeTable{R16: []unicode.Range16{
		{Lo: 0x0980, Hi: 0x09FF, Stride: 1},
	}}
	// ASCII letters, Latin-1 letters through Latin Extended-B, Latin Extended Additional.
	latinTable = &unicode.RangeTable{
		R16: []unicode.Range16{
			{Lo: 0x0041, Hi: 0x005A, Stride: 1},
			{Lo: 0x0061, Hi: 0x007A, Stride: 1},
			{Lo: 0x00C0, Hi: 0x024F, Stride: 1},
			{Lo: 0x1E00, Hi: 0x1EFF, Stride: 1},
		},
		LatinOffset: 2,
	}
)

// Contains reports whether r belongs to the script.
func (s Script) Contains(r rune) bool {
	switch s {
	case Chinese:
		return unicode.Is(hanTable, r)
	case Japanese:
		return unicode.Is(kanaTable, r) || unicode.Is(hanTable, r)
	case Korean:
		return unicode.Is(hangulTable, r)
	case Cyrillic:
		return unicode.Is(cyrillicTable, r)
	case Greek:
		return unicode.Is(greekTable, r)
	case Arabic:
		return unicode.Is(arabicTable, r)
	case Hebrew:
		return unicode.Is(hebrewTable, r)
	case Devanagari:
		return unicode.Is(devanagariTable, r)
	case Bengali:
		return unicode.Is(bengaliTable, r)
	default:
		return unicode.Is(latinTable, r)
	}
}

// ForLanguage returns the script used by the given origin language display
// name. Unknown names, including "Automatic", resolve to Latin.
func ForLanguage(lang string) Script {
	switch lang {
	case "Chinese", "Chinese Traditional":
		return Chinese
	case "Japanese":
		return Japanese
	case "Korean":
		return Korean
	case "Russian", "Ukrainian":
		return Cyrillic
	case "Greek":
		return Greek
	case "Arabic":
		return Arabic
	case "Hebrew":
		return Hebrew
	case "Hindi":
		return Devanagari
	case "Bengali":
		return Bengali
	default:
		return Latin
	}
}
