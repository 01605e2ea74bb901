package input

import (
	"context"

	"bacabot/internal/domain/entities"
)

// ReadingRequest asks for a text to be prepared for reading.
type ReadingRequest struct {
	UserID   string
	GuildID  string
	Text     string
	Simplify bool
}

// ImageReadingRequest asks for the text in an image to be prepared for reading.
type ImageReadingRequest struct {
	UserID   string
	GuildID  string
	Image    []byte
	Simplify bool
}

type ReadingUseCase interface {
	ReadText(ctx context.Context, req ReadingRequest) (*entities.Reading, error)
	ReadImage(ctx context.Context, req ImageReadingRequest) (*entities.Reading, error)
	GetReading(ctx context.Context, id string) (*entities.Reading, error)
	History(ctx context.Context, userID string, limit int) ([]entities.Reading, error)
	ClearHistory(ctx context.Context, userID string) (int64, error)
	Sentences(reading *entities.Reading) []string
}
