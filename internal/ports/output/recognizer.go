package output

import "context"

// TextRecognizer extracts plain text from an encoded PNG image.
type TextRecognizer interface {
	Name() string
	Recognize(ctx context.Context, png []byte, languages ...string) (string, error)
}

// SpellChecker returns text with spelling corrections applied.
type SpellChecker interface {
	Correct(ctx context.Context, text, language string) (string, error)
}
