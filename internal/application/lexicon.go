package application

import (
	"context"
	"fmt"
	"log"
	"strings"
	"sync/atomic"
	"time"
	"unicode"
	"unicode/utf8"

	"bacabot/internal/domain"
	"bacabot/internal/domain/entities"
	"bacabot/internal/domain/simplifier"
	"bacabot/internal/ports/output"
)

const maxLexiconFieldLength = 64

// TextSimplifier is the part of the Simplifier the reading pipeline needs.
type TextSimplifier interface {
	Simplify(text string) simplifier.Result
}

// LexiconService owns the active Simplifier. The base lexicon is overlaid with
// the entries stored by administrators; every change builds a new Simplifier
// and swaps it in, so a Simplifier in use is never mutated.
type LexiconService struct {
	repo    output.LexiconRepository
	base    *simplifier.Lexicon
	opts    []simplifier.Option
	current atomic.Pointer[simplifier.Simplifier]
}

func NewLexiconService(repo output.LexiconRepository, base *simplifier.Lexicon, opts ...simplifier.Option) *LexiconService {
	s := &LexiconService{
		repo: repo,
		base: base,
		opts: opts,
	}
	s.current.Store(simplifier.New(base, opts...))
	return s
}

// Current returns the Simplifier built from the latest lexicon.
func (s *LexiconService) Current() TextSimplifier {
	return s.current.Load()
}

// Size returns the number of entries in the active lexicon.
func (s *LexiconService) Size() int {
	return s.current.Load().Lexicon().Len()
}

// Reload rebuilds the active Simplifier from the base lexicon and the stored
// custom entries.
func (s *LexiconService) Reload(ctx context.Context) error {
	entries, err := s.repo.List(ctx)
	if err != nil {
		return fmt.Errorf("list lexicon entries: %w", err)
	}
	words := s.base.Words()
	for _, e := range entries {
		words[e.Word] = e.Replacement
	}
	lex := simplifier.NewLexicon(words, s.base.Prefixes())
	s.current.Store(simplifier.New(lex, s.opts...))
	log.Printf("📖 Kamus dimuat: %d entri (%d kustom)", lex.Len(), len(entries))
	return nil
}

func (s *LexiconService) AddEntry(ctx context.Context, word, replacement, authorID string) (*entities.LexiconEntry, error) {
	word, ok := s.lookupKey(word)
	replacement = strings.TrimSpace(replacement)
	if !ok || !validLexiconField(word) || !validLexiconField(replacement) {
		return nil, domain.ErrInvalidLexiconEntry
	}
	now := time.Now()
	entry := &entities.LexiconEntry{
		Word:        word,
		Replacement: replacement,
		AuthorID:    authorID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.repo.Upsert(ctx, entry); err != nil {
		return nil, err
	}
	if err := s.Reload(ctx); err != nil {
		return nil, err
	}
	return entry, nil
}

func (s *LexiconService) RemoveEntry(ctx context.Context, word string) error {
	word, ok := s.lookupKey(word)
	if !ok || word == "" {
		return domain.ErrInvalidLexiconEntry
	}
	if err := s.repo.Delete(ctx, word); err != nil {
		return err
	}
	return s.Reload(ctx)
}

func (s *LexiconService) Entries(ctx context.Context) ([]entities.LexiconEntry, error) {
	return s.repo.List(ctx)
}

// lookupKey turns an administrator's word into the key the Simplifier looks
// tokens up by. Words spanning several tokens are refused since a token never
// contains a space.
func (s *LexiconService) lookupKey(word string) (string, bool) {
	word = strings.TrimSpace(word)
	if strings.ContainsFunc(word, unicode.IsSpace) {
		return "", false
	}
	return s.current.Load().Clean(word), true
}

func validLexiconField(v string) bool {
	if v == "" || strings.ContainsAny(v, "\r\n") {
		return false
	}
	return utf8.RuneCountInString(v) <= maxLexiconFieldLength
}
