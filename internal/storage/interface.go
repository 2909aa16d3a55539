package storage

import (
	"context"
	"time"

	"github.com/yurkki/wordle/internal/model"
)

// Storage defines the interface for data persistence
type Storage interface {
	// Player operations
	SavePlayer(ctx context.Context, player *model.Player) error
	GetPlayer(ctx context.Context, id model.PlayerID) (*model.Player, error)

	// Game operations
	SaveGame(ctx context.Context, game *model.Game) error
	GetGame(ctx context.Context, id model.GameID) (*model.Game, error)
	DeleteGame(ctx context.Context, id model.GameID) error

	// Daily attempt operations.
	// InsertAttempt is atomic: it fails with model.ErrAlreadyPlayed if a
	// record already exists for the same (date, player) pair.
	InsertAttempt(ctx context.Context, record *model.AttemptRecord) error
	GetAttempt(ctx context.Context, date model.Date, playerID model.PlayerID) (*model.AttemptRecord, error)
	GetAttemptsForDate(ctx context.Context, date model.Date) ([]*model.AttemptRecord, error)
	GetAttemptsForPlayer(ctx context.Context, playerID model.PlayerID) ([]*model.AttemptRecord, error)

	// Player stats projection operations
	SavePlayerStats(ctx context.Context, stats *model.PlayerStats) error
	GetPlayerStats(ctx context.Context, playerID model.PlayerID) (*model.PlayerStats, error)

	// Friend challenge operations
	SaveChallenge(ctx context.Context, challenge *model.FriendChallenge) error
	GetChallenge(ctx context.Context, token model.ChallengeToken) (*model.FriendChallenge, error)
	DeleteChallengesBefore(ctx context.Context, cutoff time.Time) (int, error)

	// Word pool operations
	GetPoolWords(ctx context.Context) ([]string, error)
	SavePoolWords(ctx context.Context, words []string) error
}
