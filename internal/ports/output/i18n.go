package output

// Translator exposes a minimal i18n contract for user-facing messages.
// Implementations provide message lookup + templating for a given locale.
type Translator interface {
	// T renders the message identified by key for the given locale, falling
	// back to the default locale. data fills template placeholders (may be nil).
	T(locale, key string, data map[string]any) string
}
