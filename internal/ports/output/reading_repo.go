package output

import (
	"context"

	"bacabot/internal/domain/entities"
)

type ReadingRepository interface {
	Create(ctx context.Context, reading *entities.Reading) error
	FindByID(ctx context.Context, id string) (*entities.Reading, error)
	FindByUserID(ctx context.Context, userID string, limit int) ([]entities.Reading, error)
	DeleteByUserID(ctx context.Context, userID string) (int64, error)
}
