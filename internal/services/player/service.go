package player

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/yurkki/wordle/internal/dependencies/clock"
	"github.com/yurkki/wordle/internal/model"
	"github.com/yurkki/wordle/internal/storage"
)

// Service manages anonymous player identities. Players are minted on
// first contact and recognized afterwards through a long-lived cookie.
type Service struct {
	storage storage.Storage
	clock   clock.Clock
}

// New creates a new player Service
func New(storage storage.Storage, clock clock.Clock) *Service {
	return &Service{
		storage: storage,
		clock:   clock,
	}
}

// GetOrCreate returns the player for the given id, minting a new one
// when the id is empty or unknown
func (s *Service) GetOrCreate(ctx context.Context, id model.PlayerID) (*model.Player, error) {
	if id != "" {
		player, err := s.storage.GetPlayer(ctx, id)
		if err == nil {
			return player, nil
		}
		if !errors.Is(err, model.ErrPlayerNotFound) {
			return nil, err
		}
	}

	player := &model.Player{
		ID:        model.PlayerID(uuid.NewString()),
		CreatedAt: s.clock.Now(),
	}
	if err := s.storage.SavePlayer(ctx, player); err != nil {
		return nil, err
	}
	return player, nil
}

// Get returns an existing player
func (s *Service) Get(ctx context.Context, id model.PlayerID) (*model.Player, error) {
	return s.storage.GetPlayer(ctx, id)
}

// Rename sets the player's display name
func (s *Service) Rename(ctx context.Context, id model.PlayerID, name string) (*model.Player, error) {
	player, err := s.storage.GetPlayer(ctx, id)
	if err != nil {
		return nil, err
	}

	player.DisplayName = name
	if err := s.storage.SavePlayer(ctx, player); err != nil {
		return nil, err
	}
	return player, nil
}

// Interface for dependency injection
type ServiceInterface interface {
	GetOrCreate(ctx context.Context, id model.PlayerID) (*model.Player, error)
	Get(ctx context.Context, id model.PlayerID) (*model.Player, error)
	Rename(ctx context.Context, id model.PlayerID, name string) (*model.Player, error)
}

var _ ServiceInterface = (*Service)(nil)
