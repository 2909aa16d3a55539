package daily

import (
	"context"
	"log/slog"
	"math/rand"
	"sync"

	"github.com/yurkki/wordle/internal/model"
	"github.com/yurkki/wordle/internal/services/words"
)

// maxProbes bounds how many pool candidates the selector checks against
// the oracle for a single day
const maxProbes = 50

// Oracle vets a candidate word of the day. The dictionary service
// implements it; tests substitute their own.
type Oracle interface {
	IsValid(ctx context.Context, word model.Word) bool
}

// Selector deterministically picks the word of the day. Every instance
// with the same pool picks the same word for the same date, so multiple
// server replicas agree without coordination.
type Selector struct {
	words  *words.Service
	oracle Oracle
	logger *slog.Logger

	// Single-slot cache: only the current day is ever hot
	mu         sync.Mutex
	cachedDate model.Date
	cachedWord model.Word
}

// NewSelector creates a new daily word Selector
func NewSelector(words *words.Service, oracle Oracle, logger *slog.Logger) *Selector {
	return &Selector{
		words:  words,
		oracle: oracle,
		logger: logger,
	}
}

// dateSeed folds a calendar date into a deterministic RNG seed
func dateSeed(date model.Date) int64 {
	year, month, day := date.Parts()
	return int64(year*10000+month*100+day)*31 + 17
}

// WordForDate returns the word of the day for the given date. The
// mutex is held across the whole selection so concurrent first callers
// on a new day resolve to one oracle round, not several.
func (s *Selector) WordForDate(ctx context.Context, date model.Date) (model.Word, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cachedDate == date && s.cachedWord != "" {
		return s.cachedWord, nil
	}

	word, err := s.selectWord(ctx, date)
	if err != nil {
		return "", err
	}

	s.cachedDate = date
	s.cachedWord = word
	return word, nil
}

func (s *Selector) selectWord(ctx context.Context, date model.Date) (model.Word, error) {
	pool, err := s.words.Words()
	if err != nil {
		return "", err
	}
	if len(pool) == 0 {
		return "", model.ErrEmptyWordPool
	}

	rng := rand.New(rand.NewSource(dateSeed(date)))

	// Several draws keeping the last one spreads consecutive days
	// further apart in the pool
	base := 0
	for i := 0; i < 3; i++ {
		base = rng.Intn(len(pool))
	}

	probes := maxProbes
	if len(pool) < probes {
		probes = len(pool)
	}

	// Walk the pool from the base index until the oracle accepts a
	// candidate
	for offset := 0; offset < probes; offset++ {
		candidate := pool[(base+offset)%len(pool)]
		if s.oracle == nil || s.oracle.IsValid(ctx, candidate) {
			return candidate, nil
		}
	}

	// Every probe was rejected; the base candidate still serves so the
	// day always has a word
	fallback := pool[base]
	s.logger.Warn("no oracle-approved daily word, using fallback",
		slog.String("date", string(date)),
		slog.String("word", fallback.String()),
	)
	return fallback, nil
}

// SelectorInterface for dependency injection
type SelectorInterface interface {
	WordForDate(ctx context.Context, date model.Date) (model.Word, error)
}

var _ SelectorInterface = (*Selector)(nil)
