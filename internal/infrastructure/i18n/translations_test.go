package i18n

import (
	"testing"

	"golang.org/x/text/language"
)

func TestTranslatorLocales(t *testing.T) {
	tr := NewTranslator("id")
	tests := []struct {
		locale string
		key    string
		want   string
	}{
		{"id", "ui.read_all", "Bacakan semua"},
		{"en-US", "ui.read_all", "Read all"},
		{"en-GB", "ui.original", "Original text"},
		{"fr", "ui.original", "Teks asli"},
		{"", "ui.next", "Berikutnya"},
		{"id", "missing.key", "missing.key"},
	}
	for _, tt := range tests {
		if got := tr.T(tt.locale, tt.key, nil); got != tt.want {
			t.Errorf("T(%q, %q) = %q; want %q", tt.locale, tt.key, got, tt.want)
		}
	}
}

func TestTranslatorTemplate(t *testing.T) {
	tr := NewTranslator("id")
	got := tr.T("id", "info.history_cleared", map[string]any{"Count": 3})
	if want := "🗑️ 3 bacaan dihapus dari riwayat."; got != want {
		t.Errorf("T() = %q; want %q", got, want)
	}
}

func TestTranslatorBadDefaultLocale(t *testing.T) {
	tr := NewTranslator("not a locale")
	if got := tr.T("", "ui.prev", nil); got != "Sebelumnya" {
		t.Errorf("T() = %q; want Indonesian fallback", got)
	}
	if got := tr.T("id", "", nil); got != "" {
		t.Errorf("T(empty key) = %q; want empty", got)
	}
}

func TestTranslatorResolve(t *testing.T) {
	tr := NewTranslator("id")
	tests := []struct {
		locale string
		want   language.Tag
	}{
		{"id", language.Indonesian},
		{"en-US", language.English},
		{"en-GB", language.English},
		{"fr", language.Indonesian},
		{"", language.Indonesian},
		{"bukan locale!", language.Indonesian},
	}
	for _, tt := range tests {
		if got := tr.Resolve(tt.locale); got != tt.want {
			t.Errorf("Resolve(%q) = %v; want %v", tt.locale, got, tt.want)
		}
	}

	en := NewTranslator("en")
	if got := en.Resolve("fr"); got != language.English {
		t.Errorf("Resolve(fr) with English default = %v; want en", got)
	}
	if got := en.T("de", "ui.read_all", nil); got != "Read all" {
		t.Errorf("T(de) with English default = %q; want %q", got, "Read all")
	}
}
