package application

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"bacabot/internal/domain"
	"bacabot/internal/domain/entities"
	"bacabot/internal/domain/simplifier"
	"bacabot/internal/ports/input"
	"bacabot/internal/ports/output"
)

const (
	DefaultHistoryLimit  = 5
	MaxHistoryLimit      = 25
	DefaultMaxImageBytes = 8 << 20
)

// SimplifierSource hands out the Simplifier to use for the next reading.
type SimplifierSource interface {
	Current() TextSimplifier
}

// ReadingOptions tunes the reading pipeline.
type ReadingOptions struct {
	OCRLanguages       []string
	SpellCheckLanguage string
	MaxImageBytes      int
}

var _ input.ReadingUseCase = (*ReadingService)(nil)

type ReadingService struct {
	readingRepo output.ReadingRepository
	simplifiers SimplifierSource
	recognizer  output.TextRecognizer
	checker     output.SpellChecker // nil disables spell-check
	opts        ReadingOptions
	newID       func() string
	now         func() time.Time
}

func NewReadingService(
	readingRepo output.ReadingRepository,
	simplifiers SimplifierSource,
	recognizer output.TextRecognizer,
	checker output.SpellChecker,
	opts ReadingOptions,
) *ReadingService {
	if len(opts.OCRLanguages) == 0 {
		opts.OCRLanguages = []string{"ind"}
	}
	if opts.SpellCheckLanguage == "" {
		opts.SpellCheckLanguage = "id"
	}
	if opts.MaxImageBytes <= 0 {
		opts.MaxImageBytes = DefaultMaxImageBytes
	}
	return &ReadingService{
		readingRepo: readingRepo,
		simplifiers: simplifiers,
		recognizer:  recognizer,
		checker:     checker,
		opts:        opts,
		newID:       uuid.NewString,
		now:         time.Now,
	}
}

func (s *ReadingService) ReadText(ctx context.Context, req input.ReadingRequest) (*entities.Reading, error) {
	text := strings.TrimSpace(req.Text)
	if text == "" {
		return nil, domain.ErrEmptyText
	}
	return s.prepare(ctx, entities.SourceText, req.UserID, req.GuildID, text, req.Simplify)
}

func (s *ReadingService) ReadImage(ctx context.Context, req input.ImageReadingRequest) (*entities.Reading, error) {
	if len(req.Image) == 0 {
		return nil, domain.ErrUnsupportedImage
	}
	if len(req.Image) > s.opts.MaxImageBytes {
		return nil, domain.ErrImageTooLarge
	}
	if s.recognizer == nil {
		return nil, fmt.Errorf("%w: no recognizer configured", domain.ErrRecognitionFailed)
	}
	raw, err := s.recognizer.Recognize(ctx, req.Image, s.opts.OCRLanguages...)
	if err != nil {
		if domain.Code(err) != "" {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrRecognitionFailed, s.recognizer.Name(), err)
	}
	text := unwrapLines(raw)
	if text == "" {
		return nil, domain.ErrNoTextFound
	}
	return s.prepare(ctx, entities.SourceImage, req.UserID, req.GuildID, text, req.Simplify)
}

func (s *ReadingService) prepare(ctx context.Context, source entities.ReadingSource, userID, guildID, text string, simplify bool) (*entities.Reading, error) {
	reading := &entities.Reading{
		ID:           s.newID(),
		UserID:       userID,
		GuildID:      guildID,
		Source:       source,
		OriginalText: text,
		CheckedText:  s.check(ctx, text),
		Simplified:   simplify,
		CreatedAt:    s.now(),
	}
	if simplify {
		res, err := s.simplify(reading.CheckedText)
		if err != nil {
			log.Printf("❌ Penyederhanaan gagal (reading=%s): %v", reading.ID, err)
			reading.SimplifyFailed = true
		} else {
			reading.SimplifiedText = res.Text
		}
	}
	if err := s.readingRepo.Create(ctx, reading); err != nil {
		return nil, fmt.Errorf("save reading: %w", err)
	}
	reading.Tokens = displayTokens(reading)
	return reading, nil
}

// check returns the spell-checked text, or text itself when the checker is
// disabled or fails.
func (s *ReadingService) check(ctx context.Context, text string) string {
	if s.checker == nil {
		return text
	}
	checked, err := s.checker.Correct(ctx, text, s.opts.SpellCheckLanguage)
	if err != nil {
		log.Printf("⚠️ Pemeriksaan ejaan dilewati: %v", err)
		return text
	}
	if strings.TrimSpace(checked) == "" {
		return text
	}
	return checked
}

// simplify turns a panic inside the simplifier into an error so the caller
// falls back to the unsimplified text instead of a partial result.
func (s *ReadingService) simplify(text string) (res simplifier.Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			res, err = simplifier.Result{}, fmt.Errorf("simplify: %v", r)
		}
	}()
	return s.simplifiers.Current().Simplify(text), nil
}

func (s *ReadingService) GetReading(ctx context.Context, id string) (*entities.Reading, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, domain.ErrReadingNotFound
	}
	reading, err := s.readingRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	reading.Tokens = displayTokens(reading)
	return reading, nil
}

func (s *ReadingService) History(ctx context.Context, userID string, limit int) ([]entities.Reading, error) {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	if limit > MaxHistoryLimit {
		limit = MaxHistoryLimit
	}
	return s.readingRepo.FindByUserID(ctx, userID, limit)
}

func (s *ReadingService) ClearHistory(ctx context.Context, userID string) (int64, error) {
	return s.readingRepo.DeleteByUserID(ctx, userID)
}

// Sentences splits the display text one sentence per entry, for the
// dyslexia-friendly layout.
func (s *ReadingService) Sentences(reading *entities.Reading) []string {
	var out []string
	for _, sent := range simplifier.SplitSentences(reading.DisplayText()) {
		if line := strings.TrimSpace(sent.String()); line != "" {
			out = append(out, line)
		}
	}
	return out
}

func displayTokens(reading *entities.Reading) []entities.DisplayToken {
	tokens := simplifier.Tokenize(reading.DisplayText())
	out := make([]entities.DisplayToken, len(tokens))
	for i, t := range tokens {
		out[i] = entities.DisplayToken{Index: t.Index, Word: t.Word, Text: t.Text}
	}
	return out
}

// unwrapLines joins the lines of each OCR paragraph with single spaces and
// keeps blank-line paragraph breaks.
func unwrapLines(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	var paragraphs []string
	for _, para := range strings.Split(text, "\n\n") {
		var lines []string
		for _, line := range strings.Split(para, "\n") {
			if line = strings.TrimSpace(line); line != "" {
				lines = append(lines, line)
			}
		}
		if len(lines) > 0 {
			paragraphs = append(paragraphs, strings.Join(lines, " "))
		}
	}
	return strings.Join(paragraphs, "\n\n")
}
