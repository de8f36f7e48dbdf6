package script

import "testing"

func TestForLanguage(t *testing.T) {
	tests := []struct {
		lang string
		want Script
	}{
		{"Chinese", Chinese},
		{"Chinese Traditional", Chinese},
		{"Japanese", Japanese},
		{"Korean", Korean},
		{"Russian", Cyrillic},
		{"Ukrainian", Cyrillic},
		{"Greek", Greek},
		{"Arabic", Arabic},
		{"Hebrew", Hebrew},
		{"Hindi", Devanagari},
		{"Bengali", Bengali},
		{"English", Latin},
		{"Automatic", Latin},
		{"", Latin},
		{"Klingon", Latin},
	}

	for _, tt := range tests {
		t.Run(tt.lang, func(t *testing.T) {
			if got := ForLanguage(tt.lang); got != tt.want {
				t.Errorf("ForLanguage(%q) = %v, want %v", tt.lang, got, tt.want)
			}
		})
	}
}

func TestContains(t *testing.T) {
	tests := []struct {
		name   string
		script Script
		r      rune
		want   bool
	}{
		{"latin upper", Latin, 'A', true},
		{"latin lower", Latin, 'z', true},
		{"latin accented", Latin, 'é', true},
		{"latin extended additional", Latin, 'ạ', true},
		{"latin digit", Latin, '7', false},
		{"latin multiplication sign inside latin-1 block", Latin, '×', true},
		{"latin copyright", Latin, '©', false},
		{"latin rejects cyrillic", Latin, 'Ж', false},
		{"han", Chinese, '中', true},
		{"han extension a", Chinese, '㐀', true},
		{"han compatibility", Chinese, '豈', true},
		{"chinese rejects kana", Chinese, 'あ', false},
		{"japanese hiragana", Japanese, 'あ', true},
		{"japanese katakana", Japanese, 'カ', true},
		{"japanese kanji", Japanese, '日', true},
		{"hangul", Korean, '한', true},
		{"korean rejects han", Korean, '中', false},
		{"cyrillic", Cyrillic, 'Ж', true},
		{"cyrillic supplement", Cyrillic, 'Ԁ', true},
		{"greek", Greek, 'λ', true},
		{"greek extended", Greek, 'ἀ', true},
		{"arabic", Arabic, 'ع', true},
		{"arabic supplement", Arabic, 'ݐ', true},
		{"hebrew", Hebrew, 'ש', true},
		{"devanagari", Devanagari, 'क', true},
		{"bengali", Bengali, 'ক', true},
		{"bengali rejects devanagari", Bengali, 'क', false},
		{"negative rune", Latin, -1, false},
		{"max rune", Chinese, 0x10FFFF, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.script.Contains(tt.r); got != tt.want {
				t.Errorf("%v.Contains(%q) = %v, want %v", tt.script, tt.r, got, tt.want)
			}
		})
	}
}

func TestString(t *testing.T) {
	if Japanese.String() != "japanese" {
		t.Errorf("expected 'japanese', got %q", Japanese.String())
	}
	if Script(99).String() != "unknown" {
		t.Errorf("expected 'unknown', got %q", Script(99).String())
	}
}
