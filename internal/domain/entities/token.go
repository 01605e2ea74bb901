package entities

import "strings"

// DisplayToken is one word of a reading wired to its own playback action.
type DisplayToken struct {
	Index int
	Word  string
	Text  string // Word plus its trailing space
}

// Speakable reports whether the word holds anything worth reading aloud.
func (t DisplayToken) Speakable() bool {
	return strings.TrimSpace(t.Word) != ""
}
