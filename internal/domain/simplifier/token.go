package simplifier

import "strings"

// Token is one space-delimited unit of a sentence with the form used for lookup.
type Token struct {
	Surface string
	Cleaned string
}

// DisplayToken is a word ready for per-word playback. Text is Word followed by
// the single space that separated it from the next word; the last token has
// none, so concatenating Text reproduces the tokenized text.
type DisplayToken struct {
	Index int
	Word  string
	Text  string
}

// Speakable reports whether the token holds anything worth reading aloud.
func (t DisplayToken) Speakable() bool {
	return strings.TrimSpace(t.Word) != ""
}

// Tokenize splits text on single spaces. Runs of spaces yield empty words so
// that Join(Tokenize(text)) == text.
func Tokenize(text string) []DisplayToken {
	if text == "" {
		return nil
	}
	words := strings.Split(text, " ")
	tokens := make([]DisplayToken, len(words))
	for i, w := range words {
		t := w
		if i < len(words)-1 {
			t += " "
		}
		tokens[i] = DisplayToken{Index: i, Word: w, Text: t}
	}
	return tokens
}

// Join concatenates token texts.
func Join(tokens []DisplayToken) string {
	var b strings.Builder
	for _, t := range tokens {
		b.WriteString(t.Text)
	}
	return b.String()
}
