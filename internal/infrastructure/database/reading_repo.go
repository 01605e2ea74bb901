package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"bacabot/internal/domain"
	"bacabot/internal/domain/entities"
	"bacabot/internal/ports/output"
)

var _ output.ReadingRepository = (*ReadingRepository)(nil)

const readingColumns = `id::text, user_id, guild_id, source, original_text, checked_text,
	simplified_text, simplified, simplify_failed, created_at`

// ReadingRepository implements output.ReadingRepository using pgx.
type ReadingRepository struct {
	db DBTX
}

func NewReadingRepository(db DBTX) *ReadingRepository {
	return &ReadingRepository{db: db}
}

func (r *ReadingRepository) Create(ctx context.Context, reading *entities.Reading) error {
	var createdAt pgtype.Timestamptz
	err := r.db.QueryRow(ctx, `
		INSERT INTO readings (id, user_id, guild_id, source, original_text, checked_text,
			simplified_text, simplified, simplify_failed, created_at)
		VALUES ($1::uuid, $2, $3, $4, $5, $6, $7, $8, $9, COALESCE($10, now()))
		RETURNING created_at`,
		reading.ID, reading.UserID, reading.GuildID, string(reading.Source), reading.OriginalText,
		reading.CheckedText, reading.SimplifiedText, reading.Simplified, reading.SimplifyFailed,
		pgtype.Timestamptz{Time: reading.CreatedAt, Valid: !reading.CreatedAt.IsZero()},
	).Scan(&createdAt)
	if err != nil {
		return fmt.Errorf("create reading: %w", err)
	}
	reading.CreatedAt = pgtypeTimestamptzToTime(createdAt)
	return nil
}

func (r *ReadingRepository) FindByID(ctx context.Context, id string) (*entities.Reading, error) {
	var row readingRow
	err := r.db.QueryRow(ctx, `SELECT `+readingColumns+` FROM readings WHERE id = $1::uuid`, id).
		Scan(row.scanTargets()...)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrReadingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get reading by id: %w", err)
	}
	reading := readingToDomain(row)
	return &reading, nil
}

func (r *ReadingRepository) FindByUserID(ctx context.Context, userID string, limit int) ([]entities.Reading, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+readingColumns+`
		FROM readings
		WHERE user_id = $1
		ORDER BY created_at DESC, id
		LIMIT $2`, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("get readings by user id: %w", err)
	}
	defer rows.Close()

	var out []entities.Reading
	for rows.Next() {
		var row readingRow
		if err := rows.Scan(row.scanTargets()...); err != nil {
			return nil, fmt.Errorf("scan reading: %w", err)
		}
		out = append(out, readingToDomain(row))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("get readings by user id: %w", err)
	}
	return out, nil
}

func (r *ReadingRepository) DeleteByUserID(ctx context.Context, userID string) (int64, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM readings WHERE user_id = $1`, userID)
	if err != nil {
		return 0, fmt.Errorf("delete readings: %w", err)
	}
	return tag.RowsAffected(), nil
}
