package input

import (
	"context"

	"bacabot/internal/domain/entities"
)

type LexiconUseCase interface {
	AddEntry(ctx context.Context, word, replacement, authorID string) (*entities.LexiconEntry, error)
	RemoveEntry(ctx context.Context, word string) error
	Entries(ctx context.Context) ([]entities.LexiconEntry, error)
	Size() int
}
