package output

import (
	"context"

	"bacabot/internal/domain/entities"
)

type LexiconRepository interface {
	Upsert(ctx context.Context, entry *entities.LexiconEntry) error
	Delete(ctx context.Context, word string) error
	List(ctx context.Context) ([]entities.LexiconEntry, error)
}
