package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgtype"

	"bacabot/internal/domain"
	"bacabot/internal/domain/entities"
	"bacabot/internal/ports/output"
)

var _ output.LexiconRepository = (*LexiconRepository)(nil)

// LexiconRepository stores administrator-defined lexicon entries.
type LexiconRepository struct {
	db DBTX
}

func NewLexiconRepository(db DBTX) *LexiconRepository {
	return &LexiconRepository{db: db}
}

func (r *LexiconRepository) Upsert(ctx context.Context, entry *entities.LexiconEntry) error {
	var createdAt, updatedAt pgtype.Timestamptz
	err := r.db.QueryRow(ctx, `
		INSERT INTO lexicon_entries (word, replacement, author_id)
		VALUES ($1, $2, $3)
		ON CONFLICT (word) DO UPDATE
		SET replacement = EXCLUDED.replacement,
			author_id = EXCLUDED.author_id,
			updated_at = now()
		RETURNING created_at, updated_at`,
		entry.Word, entry.Replacement, entry.AuthorID,
	).Scan(&createdAt, &updatedAt)
	if err != nil {
		return fmt.Errorf("upsert lexicon entry: %w", err)
	}
	entry.CreatedAt = pgtypeTimestamptzToTime(createdAt)
	entry.UpdatedAt = pgtypeTimestamptzToTime(updatedAt)
	return nil
}

func (r *LexiconRepository) Delete(ctx context.Context, word string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM lexicon_entries WHERE word = $1`, word)
	if err != nil {
		return fmt.Errorf("delete lexicon entry: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrLexiconEntryNotFound
	}
	return nil
}

func (r *LexiconRepository) List(ctx context.Context) ([]entities.LexiconEntry, error) {
	rows, err := r.db.Query(ctx, `
		SELECT word, replacement, author_id, created_at, updated_at
		FROM lexicon_entries
		ORDER BY word`)
	if err != nil {
		return nil, fmt.Errorf("list lexicon entries: %w", err)
	}
	defer rows.Close()

	var out []entities.LexiconEntry
	for rows.Next() {
		var row lexiconEntryRow
		if err := rows.Scan(&row.Word, &row.Replacement, &row.AuthorID, &row.CreatedAt, &row.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan lexicon entry: %w", err)
		}
		out = append(out, lexiconEntryToDomain(row))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list lexicon entries: %w", err)
	}
	return out, nil
}
