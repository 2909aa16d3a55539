package daily

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/yurkki/wordle/internal/model"
	"github.com/yurkki/wordle/internal/storage/memory"
)

type GuardSuite struct {
	suite.Suite
	storage *memory.Storage
	guard   *Guard
	ctx     context.Context
}

func TestGuardSuite(t *testing.T) {
	suite.Run(t, new(GuardSuite))
}

func (s *GuardSuite) SetupTest() {
	s.storage = memory.New()
	s.guard = NewGuard(s.storage)
	s.ctx = context.Background()
}

func (s *GuardSuite) TestCanPlayFreshDay() {
	allowed, record, err := s.guard.CanPlay(s.ctx, "2026-08-27", "player-1")
	s.Require().NoError(err)
	s.True(allowed)
	s.Nil(record)
}

func (s *GuardSuite) TestCanPlayAfterAttempt() {
	_ = s.storage.InsertAttempt(s.ctx, &model.AttemptRecord{
		Date:     "2026-08-27",
		PlayerID: "player-1",
		Attempts: 4,
		Success:  true,
	})

	allowed, record, err := s.guard.CanPlay(s.ctx, "2026-08-27", "player-1")
	s.Require().NoError(err)
	s.False(allowed)
	s.Require().NotNil(record)
	s.Equal(4, record.Attempts)
}

func (s *GuardSuite) TestCanPlayOtherDayUnaffected() {
	_ = s.storage.InsertAttempt(s.ctx, &model.AttemptRecord{
		Date:     "2026-08-26",
		PlayerID: "player-1",
		Success:  true,
	})

	allowed, _, err := s.guard.CanPlay(s.ctx, "2026-08-27", "player-1")
	s.Require().NoError(err)
	s.True(allowed)
}

func (s *GuardSuite) TestRecordIfAllowed() {
	record := &model.AttemptRecord{
		Date:     "2026-08-27",
		PlayerID: "player-1",
		Attempts: 3,
		Success:  true,
	}

	inserted, err := s.guard.RecordIfAllowed(s.ctx, record)
	s.Require().NoError(err)
	s.True(inserted)

	inserted, err = s.guard.RecordIfAllowed(s.ctx, record)
	s.Require().NoError(err)
	s.False(inserted, "second insert loses the slot without an error")
}

func (s *GuardSuite) TestRecordIfAllowedConcurrent() {
	const workers = 16

	var wg sync.WaitGroup
	var mu sync.Mutex
	winners := 0

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			inserted, err := s.guard.RecordIfAllowed(s.ctx, &model.AttemptRecord{
				Date:     "2026-08-27",
				PlayerID: "player-1",
				Attempts: 2,
				Success:  true,
			})
			s.NoError(err)
			if inserted {
				mu.Lock()
				winners++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	s.Equal(1, winners, "exactly one concurrent recorder should win")
}

func (s *GuardSuite) TestRestrictionReasonWin() {
	record := &model.AttemptRecord{
		Attempts:    3,
		Success:     true,
		CompletedAt: time.Date(2026, 8, 27, 14, 5, 0, 0, time.UTC),
	}
	s.Equal("won in 3 attempts at 14:05", s.guard.RestrictionReason(record))
}

func (s *GuardSuite) TestRestrictionReasonLoss() {
	record := &model.AttemptRecord{
		Success:     false,
		CompletedAt: time.Date(2026, 8, 27, 9, 30, 0, 0, time.UTC),
	}
	s.Equal("lost at 09:30", s.guard.RestrictionReason(record))
}
