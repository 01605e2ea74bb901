package application

import (
	"context"
	"errors"
	"sort"
	"sync"

	"bacabot/internal/domain"
	"bacabot/internal/domain/entities"
	"bacabot/internal/domain/simplifier"
)

type memReadingRepo struct {
	mu       sync.Mutex
	readings []entities.Reading
	err      error
}

func (r *memReadingRepo) Create(ctx context.Context, reading *entities.Reading) error {
	if r.err != nil {
		return r.err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	stored := *reading
	stored.Tokens = nil
	r.readings = append(r.readings, stored)
	return nil
}

func (r *memReadingRepo) FindByID(ctx context.Context, id string) (*entities.Reading, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.readings {
		if r.readings[i].ID == id {
			found := r.readings[i]
			return &found, nil
		}
	}
	return nil, domain.ErrReadingNotFound
}

func (r *memReadingRepo) FindByUserID(ctx context.Context, userID string, limit int) ([]entities.Reading, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []entities.Reading
	for i := len(r.readings) - 1; i >= 0 && len(out) < limit; i-- {
		if r.readings[i].UserID == userID {
			out = append(out, r.readings[i])
		}
	}
	return out, nil
}

func (r *memReadingRepo) DeleteByUserID(ctx context.Context, userID string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	kept := r.readings[:0]
	var n int64
	for _, reading := range r.readings {
		if reading.UserID == userID {
			n++
			continue
		}
		kept = append(kept, reading)
	}
	r.readings = kept
	return n, nil
}

type memLexiconRepo struct {
	entries map[string]entities.LexiconEntry
}

func newMemLexiconRepo() *memLexiconRepo {
	return &memLexiconRepo{entries: map[string]entities.LexiconEntry{}}
}

func (r *memLexiconRepo) Upsert(ctx context.Context, entry *entities.LexiconEntry) error {
	r.entries[entry.Word] = *entry
	return nil
}

func (r *memLexiconRepo) Delete(ctx context.Context, word string) error {
	if _, ok := r.entries[word]; !ok {
		return domain.ErrLexiconEntryNotFound
	}
	delete(r.entries, word)
	return nil
}

func (r *memLexiconRepo) List(ctx context.Context) ([]entities.LexiconEntry, error) {
	out := make([]entities.LexiconEntry, 0, len(r.entries))
	for _, e := range r.entries {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Word < out[j].Word })
	return out, nil
}

type fakeRecognizer struct {
	text      string
	err       error
	languages []string
}

func (f *fakeRecognizer) Name() string { return "fake" }

func (f *fakeRecognizer) Recognize(ctx context.Context, png []byte, languages ...string) (string, error) {
	f.languages = languages
	return f.text, f.err
}

type fakeChecker struct {
	fixes map[string]string
	err   error
}

func (f *fakeChecker) Correct(ctx context.Context, text, language string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	if fixed, ok := f.fixes[text]; ok {
		return fixed, nil
	}
	return text, nil
}

type staticSource struct{ s TextSimplifier }

func (s staticSource) Current() TextSimplifier { return s.s }

type panickingSimplifier struct{}

func (panickingSimplifier) Simplify(string) simplifier.Result { panic("lexicon corrupted") }

var errStorage = errors.New("storage down")
