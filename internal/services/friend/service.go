package friend

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/yurkki/wordle/internal/dependencies/clock"
	"github.com/yurkki/wordle/internal/model"
	"github.com/yurkki/wordle/internal/storage"
)

// DefaultRetentionDays is how long a challenge stays resolvable
const DefaultRetentionDays = 7

// tokenLength is the number of uuid hex characters kept in a share
// token. 16 hex chars keep links short while collisions stay
// negligible at this scale.
const tokenLength = 16

// Service manages friend challenges: a player picks a word, gets a
// share token, and anyone holding the token can play that word.
type Service struct {
	storage storage.Storage
	clock   clock.Clock
	logger  *slog.Logger
}

// New creates a new friend challenge Service
func New(storage storage.Storage, clock clock.Clock, logger *slog.Logger) *Service {
	return &Service{
		storage: storage,
		clock:   clock,
		logger:  logger,
	}
}

// newToken mints a fresh share token
func newToken() model.ChallengeToken {
	raw := strings.ReplaceAll(uuid.NewString(), "-", "")
	return model.ChallengeToken(raw[:tokenLength])
}

// Create validates the chosen word and registers a challenge for it
func (s *Service) Create(ctx context.Context, rawWord string) (*model.FriendChallenge, error) {
	word, err := model.ParseWord(rawWord)
	if err != nil {
		return nil, err
	}

	challenge := &model.FriendChallenge{
		Token:     newToken(),
		Word:      word,
		CreatedAt: s.clock.Now(),
	}

	if err := s.storage.SaveChallenge(ctx, challenge); err != nil {
		return nil, err
	}
	return challenge, nil
}

// Resolve looks up the challenge behind a share token
func (s *Service) Resolve(ctx context.Context, token model.ChallengeToken) (*model.FriendChallenge, error) {
	return s.storage.GetChallenge(ctx, token)
}

// SweepExpired removes challenges older than the retention window and
// returns how many were dropped
func (s *Service) SweepExpired(ctx context.Context, retentionDays int) (int, error) {
	cutoff := s.clock.Now().AddDate(0, 0, -retentionDays)
	removed, err := s.storage.DeleteChallengesBefore(ctx, cutoff)
	if err != nil {
		return 0, err
	}
	if removed > 0 {
		s.logger.Info("swept expired challenges",
			slog.Int("removed", removed),
			slog.Int("retention_days", retentionDays),
		)
	}
	return removed, nil
}

// Interface for dependency injection
type ServiceInterface interface {
	Create(ctx context.Context, rawWord string) (*model.FriendChallenge, error)
	Resolve(ctx context.Context, token model.ChallengeToken) (*model.FriendChallenge, error)
	SweepExpired(ctx context.Context, retentionDays int) (int, error)
}

var _ ServiceInterface = (*Service)(nil)
