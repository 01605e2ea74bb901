package entities

import "time"

// LexiconEntry is a custom word replacement added by a server administrator.
type LexiconEntry struct {
	Word        string
	Replacement string
	AuthorID    string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
