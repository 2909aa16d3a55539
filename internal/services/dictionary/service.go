package dictionary

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/yurkki/wordle/internal/dependencies/clock"
	"github.com/yurkki/wordle/internal/model"
)

// Config holds settings for the external dictionary lookup
type Config struct {
	// APIBaseURL is the lookup endpoint. Empty disables remote lookups
	// entirely and the service runs on its local word set alone.
	APIBaseURL string
	APIKey     string
	Lang       string

	// Timeout bounds a single lookup request
	Timeout time.Duration

	// ErrorCooldown is how long remote lookups stay disabled after a
	// request failure
	ErrorCooldown time.Duration
}

// DefaultConfig returns sensible defaults for dictionary configuration
func DefaultConfig() Config {
	return Config{
		Lang:          "ru-ru",
		Timeout:       5 * time.Second,
		ErrorCooldown: time.Hour,
	}
}

// Pool is the local word source consulted before any remote lookup
type Pool interface {
	Contains(word model.Word) bool
}

// Service decides whether a guessed word is an acceptable Russian word.
// The answer pool and the local extended set are checked first; the
// remote API only sees words neither knows. Remote failures put the
// API on cooldown so a dead upstream cannot slow every guess.
type Service struct {
	cfg    Config
	pool   Pool
	clock  clock.Clock
	logger *slog.Logger
	client *http.Client

	mu       sync.RWMutex
	extended map[model.Word]struct{}

	errMu     sync.Mutex
	lastError time.Time
}

// New creates a new dictionary Service
func New(cfg Config, pool Pool, clock clock.Clock, logger *slog.Logger) *Service {
	return &Service{
		cfg:      cfg,
		pool:     pool,
		clock:    clock,
		logger:   logger,
		client:   &http.Client{Timeout: cfg.Timeout},
		extended: make(map[model.Word]struct{}),
	}
}

// LoadExtendedFromFile loads additional accepted guess words from a
// file (one word per line). These are valid guesses that are never
// picked as answers.
func (s *Service) LoadExtendedFromFile(path string) error {
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

	return s.LoadExtended(raw)
}

// LoadExtended directly loads extended guess words (useful for testing)
func (s *Service) LoadExtended(raw []string) error {
	extended := make(map[model.Word]struct{}, len(raw))
	for _, r := range raw {
		word, err := model.ParseWord(r)
		if err != nil {
			continue
		}
		extended[word] = struct{}{}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.extended = extended
	return nil
}

// IsValid reports whether the word is acceptable as a guess
func (s *Service) IsValid(ctx context.Context, word model.Word) bool {
	if s.knownLocally(word) {
		return true
	}

	if !s.remoteAvailable() {
		return false
	}

	valid, err := s.lookupRemote(ctx, word)
	if err != nil {
		s.markError()
		s.logger.Warn("dictionary lookup failed",
			slog.String("word", word.String()),
			slog.Any("error", err),
		)
		return false
	}
	return valid
}

func (s *Service) knownLocally(word model.Word) bool {
	if s.pool != nil && s.pool.Contains(word) {
		return true
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.extended[word]
	return ok
}

func (s *Service) remoteAvailable() bool {
	if s.cfg.APIBaseURL == "" || s.cfg.APIKey == "" {
		return false
	}

	s.errMu.Lock()
	defer s.errMu.Unlock()
	if s.lastError.IsZero() {
		return true
	}
	return s.clock.Now().Sub(s.lastError) >= s.cfg.ErrorCooldown
}

func (s *Service) markError() {
	s.errMu.Lock()
	defer s.errMu.Unlock()
	s.lastError = s.clock.Now()
}

// lookupResponse is the subset of the lookup API payload we read.
// A word is real when at least one definition comes back.
type lookupResponse struct {
	Def []json.RawMessage `json:"def"`
}

func (s *Service) lookupRemote(ctx context.Context, word model.Word) (bool, error) {
	query := url.Values{}
	query.Set("key", s.cfg.APIKey)
	query.Set("lang", s.cfg.Lang)
	query.Set("text", strings.ToLower(word.String()))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.cfg.APIBaseURL+"?"+query.Encode(), nil)
	if err != nil {
		return false, err
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return false, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return false, fmt.Errorf("dictionary api status %d", resp.StatusCode)
	}

	var payload lookupResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return false, err
	}

	return len(payload.Def) > 0, nil
}

// Interface for dependency injection
type ServiceInterface interface {
	IsValid(ctx context.Context, word model.Word) bool
	LoadExtendedFromFile(path string) error
	LoadExtended(raw []string) error
}

var _ ServiceInterface = (*Service)(nil)
