package entities

import (
	"time"
	"unicode/utf8"
)

// ReadingSource tells where the text of a reading came from.
type ReadingSource string

const (
	SourceText  ReadingSource = "text"
	SourceImage ReadingSource = "image"
)

// Reading is one text a user asked the bot to read, as stored in the history.
type Reading struct {
	ID             string
	UserID         string
	GuildID        string
	Source         ReadingSource
	OriginalText   string
	CheckedText    string // after spell-check; equals OriginalText when disabled
	SimplifiedText string
	Simplified     bool // simplification was requested
	SimplifyFailed bool
	Tokens         []DisplayToken // derived from DisplayText, not persisted
	CreatedAt      time.Time
}

// DisplayText is the text shown and read aloud: the simplified text when
// simplification was requested and succeeded, the checked text otherwise.
func (r *Reading) DisplayText() string {
	if r.Simplified && !r.SimplifyFailed {
		return r.SimplifiedText
	}
	if r.CheckedText != "" {
		return r.CheckedText
	}
	return r.OriginalText
}

// ShouldAutoRead reports whether the display text is short enough to be read
// aloud without being asked.
func (r *Reading) ShouldAutoRead(limit int) bool {
	text := r.DisplayText()
	return text != "" && utf8.RuneCountInString(text) < limit
}
