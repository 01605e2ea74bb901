// Package i18n serves the bot's user-facing messages in the languages it
// ships with, resolving Discord client locales onto them.
package i18n

import (
	"embed"
	"log"
	"sync"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/pelletier/go-toml/v2"
	"golang.org/x/text/language"

	"bacabot/internal/ports/output"
)

//go:embed active.*.toml
var localeFS embed.FS

var messageFiles = []string{"active.id.toml", "active.en.toml"}

var _ output.Translator = (*Translator)(nil)

// Translator resolves a Discord locale (e.g. "en-GB", "id") to one of the
// embedded message sets and renders messages from it. Locales without a
// message set get the default language.
type Translator struct {
	bundle          *i18n.Bundle
	defaultLanguage language.Tag
	supported       []language.Tag // defaultLanguage first
	matcher         language.Matcher

	mu         sync.RWMutex
	localizers map[string]*i18n.Localizer // by raw Discord locale
}

// NewTranslator builds a Translator whose fallback language is defaultLocale.
// An unparsable defaultLocale falls back to Indonesian.
func NewTranslator(defaultLocale string) *Translator {
	tag, err := language.Parse(defaultLocale)
	if err != nil {
		log.Printf("⚠️ DEFAULT_LOCALE %q tidak dikenal, memakai bahasa Indonesia", defaultLocale)
		tag = language.Indonesian
	}
	bundle := i18n.NewBundle(tag)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	for _, file := range messageFiles {
		if _, err := bundle.LoadMessageFileFS(localeFS, file); err != nil {
			log.Printf("❌ i18n: gagal memuat %s: %v", file, err)
		}
	}

	supported := []language.Tag{tag}
	for _, t := range bundle.LanguageTags() {
		if t != tag {
			supported = append(supported, t)
		}
	}
	log.Printf("✅ Bahasa pesan: %v (bawaan %s)", supported, tag)

	return &Translator{
		bundle:          bundle,
		defaultLanguage: tag,
		supported:       supported,
		matcher:         language.NewMatcher(supported),
		localizers:      make(map[string]*i18n.Localizer),
	}
}

// Resolve returns the message language used for a Discord locale.
func (t *Translator) Resolve(locale string) language.Tag {
	if locale == "" {
		return t.defaultLanguage
	}
	requested, err := language.Parse(locale)
	if err != nil {
		return t.defaultLanguage
	}
	_, idx, conf := t.matcher.Match(requested)
	if conf == language.No {
		return t.defaultLanguage
	}
	return t.supported[idx]
}

func (t *Translator) localizer(locale string) *i18n.Localizer {
	t.mu.RLock()
	l, ok := t.localizers[locale]
	t.mu.RUnlock()
	if ok {
		return l
	}

	tag := t.Resolve(locale)
	l = i18n.NewLocalizer(t.bundle, tag.String(), t.defaultLanguage.String())

	t.mu.Lock()
	defer t.mu.Unlock()
	if cached, ok := t.localizers[locale]; ok {
		return cached
	}
	t.localizers[locale] = l
	if locale != "" {
		log.Printf("🌐 Locale %s memakai pesan %s", locale, tag)
	}
	return l
}

// T renders the message identified by key for the given locale. A key
// missing everywhere renders as the key itself.
func (t *Translator) T(locale, key string, data map[string]any) string {
	if key == "" {
		return ""
	}
	msg, err := t.localizer(locale).Localize(&i18n.LocalizeConfig{
		MessageID:    key,
		TemplateData: data,
	})
	if err != nil {
		log.Printf("⚠️ i18n: pesan %s tidak ada (locale=%s): %v", key, locale, err)
		return key
	}
	return msg
}
