package dictionary

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/yurkki/wordle/internal/dependencies/mocks"
	"github.com/yurkki/wordle/internal/model"
	"github.com/yurkki/wordle/internal/testutil"
)

type fakePool struct {
	words map[model.Word]struct{}
}

func (p *fakePool) Contains(word model.Word) bool {
	_, ok := p.words[word]
	return ok
}

type DictionarySuite struct {
	suite.Suite
	pool  *fakePool
	clock *mocks.MockClock
	ctx   context.Context
}

func TestDictionarySuite(t *testing.T) {
	suite.Run(t, new(DictionarySuite))
}

func (s *DictionarySuite) SetupTest() {
	s.pool = &fakePool{words: map[model.Word]struct{}{
		"СЛОВО": {},
	}}
	s.clock = mocks.NewMockClock(time.Date(2026, 8, 27, 12, 0, 0, 0, time.UTC))
	s.ctx = context.Background()
}

func (s *DictionarySuite) newService(cfg Config) *Service {
	return New(cfg, s.pool, s.clock, testutil.NopLogger())
}

func (s *DictionarySuite) TestPoolWordIsValid() {
	service := s.newService(DefaultConfig())
	s.True(service.IsValid(s.ctx, "СЛОВО"))
}

func (s *DictionarySuite) TestExtendedWordIsValid() {
	service := s.newService(DefaultConfig())
	_ = service.LoadExtended([]string{"ЛАМПА"})

	s.True(service.IsValid(s.ctx, "ЛАМПА"))
}

func (s *DictionarySuite) TestUnknownWordWithoutAPI() {
	service := s.newService(DefaultConfig())
	s.False(service.IsValid(s.ctx, "КНИГА"))
}

func (s *DictionarySuite) TestRemoteLookupFound() {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.Equal("книга", r.URL.Query().Get("text"))
		s.Equal("test-key", r.URL.Query().Get("key"))
		w.Write([]byte(`{"def":[{"text":"книга"}]}`))
	}))
	defer server.Close()

	cfg := DefaultConfig()
	cfg.APIBaseURL = server.URL
	cfg.APIKey = "test-key"
	service := s.newService(cfg)

	s.True(service.IsValid(s.ctx, "КНИГА"))
}

func (s *DictionarySuite) TestRemoteLookupNotFound() {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"def":[]}`))
	}))
	defer server.Close()

	cfg := DefaultConfig()
	cfg.APIBaseURL = server.URL
	cfg.APIKey = "test-key"
	service := s.newService(cfg)

	s.False(service.IsValid(s.ctx, "ЙЦУКЕ"))
}

func (s *DictionarySuite) TestErrorStartsCooldown() {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	cfg := DefaultConfig()
	cfg.APIBaseURL = server.URL
	cfg.APIKey = "test-key"
	service := s.newService(cfg)

	s.False(service.IsValid(s.ctx, "КНИГА"))
	s.Equal(int32(1), calls.Load())

	// During the cooldown the API is not consulted again
	s.False(service.IsValid(s.ctx, "ПЕСНЯ"))
	s.Equal(int32(1), calls.Load())

	// After the cooldown remote lookups resume
	s.clock.Advance(61 * time.Minute)
	s.False(service.IsValid(s.ctx, "ПЕСНЯ"))
	s.Equal(int32(2), calls.Load())
}

func (s *DictionarySuite) TestPoolStillValidDuringCooldown() {
	cfg := DefaultConfig()
	cfg.APIBaseURL = "http://127.0.0.1:1"
	cfg.APIKey = "test-key"
	service := s.newService(cfg)

	// Force an error to start the cooldown
	s.False(service.IsValid(s.ctx, "КНИГА"))

	// Local words keep working
	s.True(service.IsValid(s.ctx, "СЛОВО"))
}
