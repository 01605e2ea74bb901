package database

import (
	"time"

	"github.com/jackc/pgx/v5/pgtype"

	"bacabot/internal/domain/entities"
)

// pgtypeTimestamptzToTime returns t.Time when Valid, else zero time.
func pgtypeTimestamptzToTime(t pgtype.Timestamptz) time.Time {
	if !t.Valid {
		return time.Time{}
	}
	return t.Time
}

// readingRow mirrors a row of the readings table.
type readingRow struct {
	ID             string
	UserID         string
	GuildID        string
	Source         string
	OriginalText   string
	CheckedText    string
	SimplifiedText string
	Simplified     bool
	SimplifyFailed bool
	CreatedAt      pgtype.Timestamptz
}

func (r *readingRow) scanTargets() []any {
	return []any{
		&r.ID, &r.UserID, &r.GuildID, &r.Source, &r.OriginalText, &r.CheckedText,
		&r.SimplifiedText, &r.Simplified, &r.SimplifyFailed, &r.CreatedAt,
	}
}

func readingToDomain(r readingRow) entities.Reading {
	return entities.Reading{
		ID:             r.ID,
		UserID:         r.UserID,
		GuildID:        r.GuildID,
		Source:         entities.ReadingSource(r.Source),
		OriginalText:   r.OriginalText,
		CheckedText:    r.CheckedText,
		SimplifiedText: r.SimplifiedText,
		Simplified:     r.Simplified,
		SimplifyFailed: r.SimplifyFailed,
		CreatedAt:      pgtypeTimestamptzToTime(r.CreatedAt),
	}
}

type lexiconEntryRow struct {
	Word        string
	Replacement string
	AuthorID    string
	CreatedAt   pgtype.Timestamptz
	UpdatedAt   pgtype.Timestamptz
}

func lexiconEntryToDomain(r lexiconEntryRow) entities.LexiconEntry {
	return entities.LexiconEntry{
		Word:        r.Word,
		Replacement: r.Replacement,
		AuthorID:    r.AuthorID,
		CreatedAt:   pgtypeTimestamptzToTime(r.CreatedAt),
		UpdatedAt:   pgtypeTimestamptzToTime(r.UpdatedAt),
	}
}
