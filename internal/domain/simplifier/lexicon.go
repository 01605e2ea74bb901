package simplifier

import (
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// Lexicon maps a lowercase surface form to its simpler replacement and carries
// the ordered prefix table used as a fallback lookup. It is immutable once built.
type Lexicon struct {
	words    map[string]string
	prefixes []string
}

// NewLexicon copies words and prefixes into a new Lexicon. Keys and prefixes are
// trimmed, lower-cased and NFC-normalised; empty ones are dropped. When two keys
// normalise to the same form, the one sorting last wins so construction stays
// deterministic.
func NewLexicon(words map[string]string, prefixes []string) *Lexicon {
	caser := cases.Lower(language.Indonesian)

	keys := make([]string, 0, len(words))
	for k := range words {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	l := &Lexicon{words: make(map[string]string, len(words))}
	for _, k := range keys {
		key := normalizeKey(caser, k)
		if key == "" {
			continue
		}
		l.words[key] = words[k]
	}
	for _, p := range prefixes {
		p = normalizeKey(caser, p)
		if p == "" {
			continue
		}
		l.prefixes = append(l.prefixes, p)
	}
	return l
}

func normalizeKey(caser cases.Caser, s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	return norm.NFC.String(caser.String(s))
}

// Lookup returns the replacement for an already cleaned form.
func (l *Lexicon) Lookup(cleaned string) (string, bool) {
	if l == nil || cleaned == "" {
		return "", false
	}
	v, ok := l.words[cleaned]
	return v, ok
}

// Len returns the number of entries.
func (l *Lexicon) Len() int {
	if l == nil {
		return 0
	}
	return len(l.words)
}

// Prefixes returns a copy of the prefix table in lookup order.
func (l *Lexicon) Prefixes() []string {
	if l == nil {
		return nil
	}
	return append([]string(nil), l.prefixes...)
}

// Words returns a copy of the entries.
func (l *Lexicon) Words() map[string]string {
	out := make(map[string]string, l.Len())
	if l == nil {
		return out
	}
	for k, v := range l.words {
		out[k] = v
	}
	return out
}
