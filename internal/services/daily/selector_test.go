package daily

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/yurkki/wordle/internal/dependencies/mocks"
	"github.com/yurkki/wordle/internal/model"
	"github.com/yurkki/wordle/internal/services/words"
	"github.com/yurkki/wordle/internal/storage/memory"
	"github.com/yurkki/wordle/internal/testutil"
)

// acceptAll approves every candidate
type acceptAll struct{}

func (acceptAll) IsValid(_ context.Context, _ model.Word) bool { return true }

// rejectSome rejects a fixed set of words and counts calls
type rejectSome struct {
	mu       sync.Mutex
	rejected map[model.Word]bool
	calls    int
}

func (o *rejectSome) IsValid(_ context.Context, word model.Word) bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.calls++
	return !o.rejected[word]
}

type SelectorSuite struct {
	suite.Suite
	words *words.Service
	ctx   context.Context
}

func TestSelectorSuite(t *testing.T) {
	suite.Run(t, new(SelectorSuite))
}

func (s *SelectorSuite) SetupTest() {
	s.words = words.New(memory.New(), mocks.NewMockRandom())
	_ = s.words.LoadWords([]string{
		"СЛОВО", "ЛАМПА", "КНИГА", "ПЕСНЯ", "ВЕТЕР",
		"ГОРОД", "РУЧКА", "ДОСКА", "МЕСТО", "ТОЧКА",
	})
	s.ctx = context.Background()
}

func (s *SelectorSuite) newSelector(oracle Oracle) *Selector {
	return NewSelector(s.words, oracle, testutil.NopLogger())
}

func (s *SelectorSuite) TestDeterministicPerDate() {
	first := s.newSelector(acceptAll{})
	second := s.newSelector(acceptAll{})

	a, err := first.WordForDate(s.ctx, "2026-08-27")
	s.Require().NoError(err)
	b, err := second.WordForDate(s.ctx, "2026-08-27")
	s.Require().NoError(err)

	s.Equal(a, b, "independent selectors must agree for the same date")
}

func (s *SelectorSuite) TestDifferentDatesVary() {
	selector := s.newSelector(acceptAll{})

	seen := make(map[model.Word]bool)
	dates := []model.Date{"2026-08-25", "2026-08-26", "2026-08-27", "2026-08-28", "2026-08-29"}
	for _, date := range dates {
		word, err := selector.WordForDate(s.ctx, date)
		s.Require().NoError(err)
		seen[word] = true
	}

	s.True(len(seen) > 1, "consecutive days should not all share a word")
}

func (s *SelectorSuite) TestCacheHitSkipsOracle() {
	oracle := &rejectSome{rejected: map[model.Word]bool{}}
	selector := s.newSelector(oracle)

	first, err := selector.WordForDate(s.ctx, "2026-08-27")
	s.Require().NoError(err)
	callsAfterFirst := oracle.calls

	second, err := selector.WordForDate(s.ctx, "2026-08-27")
	s.Require().NoError(err)

	s.Equal(first, second)
	s.Equal(callsAfterFirst, oracle.calls, "cached day must not consult the oracle")
}

func (s *SelectorSuite) TestRejectedCandidateSkipped() {
	full := s.newSelector(acceptAll{})
	base, err := full.WordForDate(s.ctx, "2026-08-27")
	s.Require().NoError(err)

	oracle := &rejectSome{rejected: map[model.Word]bool{base: true}}
	selector := s.newSelector(oracle)

	word, err := selector.WordForDate(s.ctx, "2026-08-27")
	s.Require().NoError(err)
	s.NotEqual(base, word, "rejected candidate must be skipped")
}

func (s *SelectorSuite) TestAllRejectedFallsBack() {
	rejected := make(map[model.Word]bool)
	pool, _ := s.words.Words()
	for _, w := range pool {
		rejected[w] = true
	}
	selector := s.newSelector(&rejectSome{rejected: rejected})

	word, err := selector.WordForDate(s.ctx, "2026-08-27")
	s.Require().NoError(err)
	s.NotEmpty(word, "the day must always get a word")
}

func (s *SelectorSuite) TestConcurrentFirstCallersAgree() {
	selector := s.newSelector(acceptAll{})

	const callers = 8
	results := make([]model.Word, callers)
	var wg sync.WaitGroup
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			word, err := selector.WordForDate(s.ctx, "2026-08-27")
			s.NoError(err)
			results[i] = word
		}(i)
	}
	wg.Wait()

	for i := 1; i < callers; i++ {
		s.Equal(results[0], results[i])
	}
}

func (s *SelectorSuite) TestEmptyPool() {
	empty := words.New(memory.New(), mocks.NewMockRandom())
	_ = empty.LoadWords(nil)
	selector := NewSelector(empty, acceptAll{}, testutil.NopLogger())

	_, err := selector.WordForDate(s.ctx, "2026-08-27")
	s.ErrorIs(err, model.ErrEmptyWordPool)
}

func (s *SelectorSuite) TestPoolNotLoaded() {
	unloaded := words.New(memory.New(), mocks.NewMockRandom())
	selector := NewSelector(unloaded, acceptAll{}, testutil.NopLogger())

	_, err := selector.WordForDate(s.ctx, "2026-08-27")
	s.ErrorIs(err, model.ErrWordPoolNotLoaded)
}
