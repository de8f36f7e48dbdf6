// Package language maps the language display names used in settings to the
// codes expected by the translation service, the cloud vision service and the
// local OCR engine.
package language

import "strings"

// Automatic means the origin language is left to the translation service.
const Automatic = "Automatic"

type entry struct {
	display   string
	google    string // Cloud Translation v2 code
	bcp47     string // vision language hint, empty when none is defined
	tesseract string // traineddata name
}

var languages = []entry{
	{"English", "en", "en-US", "eng"},
	{"Spanish", "es", "es-ES", "spa"},
	{"French", "fr", "fr-FR", "fra"},
	{"German", "de", "de-DE", "deu"},
	{"Italian", "it", "it-IT", "ita"},
	{"Dutch", "nl", "nl-NL", "nld"},
	{"Portuguese", "pt", "pt-PT", "por"},
	{"Russian", "ru", "ru-RU", "rus"},
	{"Japanese", "ja", "ja-JP", "jpn"},
	{"Chinese", "zh", "zh-CN", "chi_sim"},
	{"Chinese Traditional", "zh-TW", "zh-TW", "chi_tra"},
	{"Korean", "ko", "ko-KR", "kor"},
	{"Arabic", "ar", "ar-SA", "ara"},
	{"Turkish", "tr", "tr-TR", "tur"},
	{"Polish", "pl", "pl-PL", "pol"},
	{"Swedish", "sv", "sv-SE", "swe"},
	{"Danish", "da", "da-DK", "dan"},
	{"Finnish", "fi", "fi-FI", "fin"},
	{"Norwegian", "no", "nb-NO", "nor"},
	{"Greek", "el", "el-GR", "ell"},
	{"Hebrew", "he", "he-IL", "heb"},
	{"Indonesian", "id", "id-ID", "ind"},
	{"Ukrainian", "uk", "uk-UA", "ukr"},
	{"Thai", "th", "th-TH", "tha"},
	{"Czech", "cs", "cs-CZ", "ces"},
	{"Hindi", "hi", "hi-IN", "hin"},
	{"Bengali", "bn", "bn-IN", "ben"},
	{"Croatian", "hr", "hr-HR", "hrv"},
	{"Hungarian", "hu", "hu-HU", "hun"},
	{"Malay", "ms", "ms-MY", "msa"},
	{"Romanian", "ro", "ro-RO", "ron"},
	{"Slovak", "sk", "sk-SK", "slk"},
	{"Vietnamese", "vi", "vi-VN", "vie"},
	{"Catalan", "ca", "ca-ES", "cat"},
	{"Filipino", "fil", "fil-PH", "fil"},
	{"Serbian", "sr", "", "srp"},
	{"Lithuanian", "lt", "", "lit"},
	{"Slovenian", "sl", "", "slv"},
	{"Latvian", "lv", "", "lav"},
	{"Estonian", "et", "", "est"},
	{"Maltese", "mt", "", "mlt"},
	{"Icelandic", "is", "", "isl"},
	{"Albanian", "sq", "", "sqi"},
	{"Macedonian", "mk", "", "mkd"},
	{"Swahili", "sw", "", "swa"},
	{"Welsh", "cy", "", "cym"},
	{"Basque", "eu", "", "eus"},
	{"Galician", "gl", "", "glg"},
	{"Scots Gaelic", "gd", "", "gla"},
	{"Breton", "br", "", "bre"},
	{"Corsican", "co", "", "cos"},
	{"Azerbaijani", "az", "", "aze"},
	{"Armenian", "hy", "", "hye"},
	{"Georgian", "ka", "", "kat"},
	{"Kazakh", "kk", "", "kaz"},
}

var byDisplay map[string]*entry

func init() {
	byDisplay = make(map[string]*entry, len(languages))
	for i := range languages {
		byDisplay[languages[i].display] = &languages[i]
	}
}

// nonLatin lists the origin languages for which the vision request carries a
// language hint.
var nonLatin = map[string]bool{
	"Chinese":             true,
	"Chinese Traditional": true,
	"Japanese":            true,
	"Korean":              true,
	"Russian":             true,
	"Arabic":              true,
	"Greek":               true,
	"Hebrew":              true,
	"Ukrainian":           true,
	"Hindi":               true,
	"Bengali":             true,
}

// noTerminalPunctuation lists languages whose subtitles rarely end with
// punctuation that survives OCR.
var noTerminalPunctuation = map[string]bool{
	"Chinese":             true,
	"Chinese Traditional": true,
	"Japanese":            true,
	"Korean":              true,
}

// Known reports whether display is a supported language name.
func Known(display string) bool {
	_, ok := byDisplay[display]
	return ok
}

// IsAutomatic reports whether the origin language should be detected by the
// translation service.
func IsAutomatic(display string) bool {
	return display == "" || display == Automatic || strings.EqualFold(display, "auto")
}

// GoogleCode returns the Cloud Translation code for display. Automatic maps to
// "auto" and unknown names fall back to English.
func GoogleCode(display string) string {
	if IsAutomatic(display) {
		return "auto"
	}
	if e, ok := byDisplay[display]; ok {
		return e.google
	}
	return "en"
}

// BCP47 returns the BCP-47 tag for display, or "" when none is defined.
func BCP47(display string) string {
	if e, ok := byDisplay[display]; ok {
		return e.bcp47
	}
	return ""
}

// TesseractCode returns the traineddata name for display, or "" for Automatic
// and unknown names so the engine uses its default.
func TesseractCode(display string) string {
	if e, ok := byDisplay[display]; ok {
		return e.tesseract
	}
	return ""
}

// VisionHint returns the language hint list attached to a cloud OCR request.
// Only non-Latin origin languages get a hint.
func VisionHint(display string) []string {
	if !nonLatin[display] {
		return nil
	}
	if tag := BCP47(display); tag != "" {
		return []string{tag}
	}
	return nil
}

// UsesTerminalPunctuation reports whether a short OCR line in display must end
// a sentence to be trusted.
func UsesTerminalPunctuation(display string) bool {
	return !noTerminalPunctuation[display]
}

// Names returns every supported display name in table order.
func Names() []string {
	names := make([]string, 0, len(languages))
	for _, e := range languages {
		names = append(names, e.display)
	}
	return names
}
