// Package simplifier rewrites Indonesian text with simpler words and shorter
// sentences. It is a pure function of the input text, the Lexicon and the
// options; a Simplifier is safe for concurrent use.
//
// Substitution is lossy: a replaced token loses its original casing and any
// punctuation attached to it.
package simplifier

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// Result is the simplified text and its display tokens.
type Result struct {
	Text   string
	Tokens []DisplayToken
}

// Simplifier applies a Lexicon to text.
type Simplifier struct {
	lexicon             *Lexicon
	minPrefixWordLength int
	splitThreshold      int
	midpointThreshold   int
	conjunctions        []string
	punctuation         string
}

// New builds a Simplifier. A nil lexicon behaves as an empty one.
func New(lex *Lexicon, opts ...Option) *Simplifier {
	if lex == nil {
		lex = NewLexicon(nil, nil)
	}
	s := &Simplifier{
		lexicon:             lex,
		minPrefixWordLength: DefaultMinPrefixWordLength,
		splitThreshold:      DefaultSplitThreshold,
		midpointThreshold:   DefaultMidpointThreshold,
		conjunctions:        append([]string(nil), DefaultConjunctions...),
		punctuation:         DefaultPunctuation,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Lexicon returns the lexicon in use.
func (s *Simplifier) Lexicon() *Lexicon { return s.lexicon }

// Simplify substitutes words sentence by sentence, splits overly long
// sentences once, and tokenizes the outcome.
func (s *Simplifier) Simplify(text string) Result {
	if text == "" {
		return Result{}
	}
	caser := cases.Lower(language.Indonesian)

	var b strings.Builder
	b.Grow(len(text))
	for _, sent := range SplitSentences(text) {
		content := s.substitute(caser, sent.Content)
		b.WriteString(s.splitLong(content, sent.Punctuation))
	}
	out := b.String()
	return Result{Text: out, Tokens: Tokenize(out)}
}

// Analyze returns the tokens of one sentence content with their cleaned forms.
func (s *Simplifier) Analyze(content string) []Token {
	caser := cases.Lower(language.Indonesian)
	parts := strings.Split(content, " ")
	tokens := make([]Token, len(parts))
	for i, p := range parts {
		tokens[i] = Token{Surface: p, Cleaned: s.clean(caser, p)}
	}
	return tokens
}

// Clean returns the form a word is looked up by: the punctuation set
// stripped, lower-cased and NFC-normalised. Lexicon keys that differ from
// their cleaned form are never matched.
func (s *Simplifier) Clean(word string) string {
	return s.clean(cases.Lower(language.Indonesian), word)
}

func (s *Simplifier) substitute(caser cases.Caser, content string) string {
	parts := strings.Split(content, " ")
	for i, p := range parts {
		parts[i] = s.replace(caser, p)
	}
	return strings.Join(parts, " ")
}

func (s *Simplifier) replace(caser cases.Caser, surface string) string {
	cleaned := s.clean(caser, surface)
	if cleaned == "" {
		return surface
	}
	if v, ok := s.lexicon.Lookup(cleaned); ok {
		return v
	}
	if utf8.RuneCountInString(cleaned) > s.minPrefixWordLength {
		for _, p := range s.lexicon.prefixes {
			rest, ok := strings.CutPrefix(cleaned, p)
			if !ok {
				continue
			}
			if v, ok := s.lexicon.Lookup(rest); ok {
				return v
			}
		}
	}
	return surface
}

// clean strips the punctuation set and lower-cases.
func (s *Simplifier) clean(caser cases.Caser, surface string) string {
	stripped := strings.Map(func(r rune) rune {
		if strings.ContainsRune(s.punctuation, r) {
			return -1
		}
		return r
	}, surface)
	if stripped == "" {
		return ""
	}
	return norm.NFC.String(caser.String(stripped))
}
