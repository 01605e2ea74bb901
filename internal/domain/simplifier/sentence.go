package simplifier

import (
	"strings"
	"unicode/utf8"
)

// Sentence is a run of text and the terminator run that closed it. The last
// fragment of a text may have an empty Punctuation.
type Sentence struct {
	Content     string
	Punctuation string
}

func (s Sentence) String() string { return s.Content + s.Punctuation }

func isTerminator(b byte) bool { return b == '.' || b == '!' || b == '?' }

// SplitSentences cuts text on runs of '.', '!' and '?'. Concatenating the
// sentences gives back text.
func SplitSentences(text string) []Sentence {
	var out []Sentence
	start := 0
	for i := 0; i < len(text); {
		if !isTerminator(text[i]) {
			i++
			continue
		}
		j := i
		for j < len(text) && isTerminator(text[j]) {
			j++
		}
		out = append(out, Sentence{Content: text[start:i], Punctuation: text[i:j]})
		start, i = j, j
	}
	if start < len(text) {
		out = append(out, Sentence{Content: text[start:]})
	}
	return out
}

// splitLong breaks content in two when it is too long, at most once. The
// halves are not checked again.
func (s *Simplifier) splitLong(content, punct string) string {
	n := utf8.RuneCountInString(content)
	if n <= s.splitThreshold {
		return content + punct
	}
	if at, ok := s.conjunctionIndex(content); ok {
		return content[:at] + punct + " " + content[at+1:] + punct
	}
	if n > s.midpointThreshold {
		mid := runeOffset(content, n/2)
		if sp := strings.IndexByte(content[mid:], ' '); sp >= 0 {
			at := mid + sp
			if strings.TrimSpace(content[:at]) != "" {
				return content[:at] + punct + " " + content[at+1:] + punct
			}
		}
	}
	return content + punct
}

// conjunctionIndex returns the byte index of the space before the first
// conjunction, trying conjunctions in list order. Matching ignores case, so
// a capitalised conjunction left by OCR still splits. An occurrence with only
// blanks before it is skipped.
func (s *Simplifier) conjunctionIndex(content string) (int, bool) {
	for _, conj := range s.conjunctions {
		if conj == "" {
			continue
		}
		needle := " " + conj + " "
		for at := 0; at+len(needle) <= len(content); at++ {
			if content[at] != ' ' || !strings.EqualFold(content[at:at+len(needle)], needle) {
				continue
			}
			if strings.TrimSpace(content[:at]) != "" {
				return at, true
			}
		}
	}
	return 0, false
}

// runeOffset converts a rune index into a byte offset.
func runeOffset(s string, runes int) int {
	for i := range s {
		if runes == 0 {
			return i
		}
		runes--
	}
	return len(s)
}
