package words

import (
	"bufio"
	"context"
	"os"
	"strings"
	"sync"

	"github.com/yurkki/wordle/internal/dependencies/random"
	"github.com/yurkki/wordle/internal/model"
	"github.com/yurkki/wordle/internal/storage"
)

// Service holds the answer pool: the curated set of words the game is
// willing to pick as targets. Guess validation is broader and lives in
// the dictionary service; every pool word is also a valid guess.
type Service struct {
	storage storage.Storage
	random  random.Random

	mu     sync.RWMutex
	words  []model.Word
	index  map[model.Word]struct{}
	loaded bool
}

// New creates a new words Service
func New(storage storage.Storage, random random.Random) *Service {
	return &Service{
		storage: storage,
		random:  random,
		index:   make(map[model.Word]struct{}),
	}
}

// LoadFromStorage loads the answer pool from storage
func (s *Service) LoadFromStorage(ctx context.Context) error {
	raw, err := s.storage.GetPoolWords(ctx)
	if err != nil {
		return err
	}
	return s.loadWords(raw)
}

// LoadFromFile loads the answer pool from a file (one word per line)
// and saves it to storage for future restarts
func (s *Service) LoadFromFile(ctx context.Context, path string) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	var raw []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		word := strings.TrimSpace(scanner.Text())
		if word == "" || strings.HasPrefix(word, "#") {
			continue
		}
		raw = append(raw, word)
	}
	if err := scanner.Err(); err != nil {
		return err
	}

	if err := s.storage.SavePoolWords(ctx, raw); err != nil {
		return err
	}

	return s.loadWords(raw)
}

// LoadWords directly loads a slice of words (useful for testing)
func (s *Service) LoadWords(raw []string) error {
	return s.loadWords(raw)
}

func (s *Service) loadWords(raw []string) error {
	words := make([]model.Word, 0, len(raw))
	index := make(map[model.Word]struct{}, len(raw))
	for _, r := range raw {
		word, err := model.ParseWord(r)
		if err != nil {
			// Pool files may carry words of other lengths; only
			// game-length entries participate
			continue
		}
		if _, ok := index[word]; ok {
			continue
		}
		words = append(words, word)
		index[word] = struct{}{}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.words = words
	s.index = index
	s.loaded = true
	return nil
}

// Words returns the pool in load order. The returned slice is shared;
// callers must not modify it.
func (s *Service) Words() ([]model.Word, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.loaded {
		return nil, model.ErrWordPoolNotLoaded
	}
	return s.words, nil
}

// RandomWord picks a uniformly random word from the pool
func (s *Service) RandomWord() (model.Word, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.loaded {
		return "", model.ErrWordPoolNotLoaded
	}
	if len(s.words) == 0 {
		return "", model.ErrEmptyWordPool
	}
	return s.words[s.random.Intn(len(s.words))], nil
}

// Contains reports whether a word belongs to the answer pool
func (s *Service) Contains(word model.Word) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.index[word]
	return ok
}

// Count returns the pool size
func (s *Service) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.words)
}

// IsLoaded returns whether the pool has been loaded
func (s *Service) IsLoaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loaded
}

// Interface for dependency injection
type ServiceInterface interface {
	LoadFromStorage(ctx context.Context) error
	LoadFromFile(ctx context.Context, path string) error
	LoadWords(raw []string) error
	Words() ([]model.Word, error)
	RandomWord() (model.Word, error)
	Contains(word model.Word) bool
	Count() int
	IsLoaded() bool
}

var _ ServiceInterface = (*Service)(nil)
