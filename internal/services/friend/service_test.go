package friend

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/yurkki/wordle/internal/dependencies/mocks"
	"github.com/yurkki/wordle/internal/model"
	"github.com/yurkki/wordle/internal/storage/memory"
	"github.com/yurkki/wordle/internal/testutil"
)

type FriendSuite struct {
	suite.Suite
	storage *memory.Storage
	clock   *mocks.MockClock
	service *Service
	ctx     context.Context
}

func TestFriendSuite(t *testing.T) {
	suite.Run(t, new(FriendSuite))
}

func (s *FriendSuite) SetupTest() {
	s.storage = memory.New()
	s.clock = mocks.NewMockClock(time.Date(2026, 8, 27, 12, 0, 0, 0, time.UTC))
	s.service = New(s.storage, s.clock, testutil.NopLogger())
	s.ctx = context.Background()
}

func (s *FriendSuite) TestCreateAndResolve() {
	challenge, err := s.service.Create(s.ctx, "лампа")
	s.Require().NoError(err)
	s.Equal(model.Word("ЛАМПА"), challenge.Word)
	s.Len(string(challenge.Token), 16)

	resolved, err := s.service.Resolve(s.ctx, challenge.Token)
	s.Require().NoError(err)
	s.Equal(challenge.Word, resolved.Word)
}

func (s *FriendSuite) TestCreateRejectsInvalidWord() {
	_, err := s.service.Create(s.ctx, "КОТ")
	s.ErrorIs(err, model.ErrInvalidWordLength)

	_, err = s.service.Create(s.ctx, "WORDS")
	s.ErrorIs(err, model.ErrInvalidWordFormat)
}

func (s *FriendSuite) TestTokensAreUnique() {
	a, err := s.service.Create(s.ctx, "СЛОВО")
	s.Require().NoError(err)
	b, err := s.service.Create(s.ctx, "СЛОВО")
	s.Require().NoError(err)

	s.NotEqual(a.Token, b.Token)
}

func (s *FriendSuite) TestResolveUnknownToken() {
	_, err := s.service.Resolve(s.ctx, "nonexistent")
	s.ErrorIs(err, model.ErrChallengeNotFound)
}

func (s *FriendSuite) TestSweepExpired() {
	old, err := s.service.Create(s.ctx, "СЛОВО")
	s.Require().NoError(err)

	s.clock.Advance(8 * 24 * time.Hour)

	fresh, err := s.service.Create(s.ctx, "ЛАМПА")
	s.Require().NoError(err)

	removed, err := s.service.SweepExpired(s.ctx, DefaultRetentionDays)
	s.Require().NoError(err)
	s.Equal(1, removed)

	_, err = s.service.Resolve(s.ctx, old.Token)
	s.ErrorIs(err, model.ErrChallengeNotFound)

	_, err = s.service.Resolve(s.ctx, fresh.Token)
	s.NoError(err)
}

func (s *FriendSuite) TestSweepKeepsRecent() {
	_, err := s.service.Create(s.ctx, "СЛОВО")
	s.Require().NoError(err)

	removed, err := s.service.SweepExpired(s.ctx, DefaultRetentionDays)
	s.Require().NoError(err)
	s.Equal(0, removed)
}
