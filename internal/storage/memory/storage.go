package memory

import (
	"context"
	"sync"
	"time"

	"github.com/yurkki/wordle/internal/model"
	"github.com/yurkki/wordle/internal/storage"
)

// Storage is an in-memory implementation of the storage interface
type Storage struct {
	mu sync.RWMutex

	players    map[model.PlayerID]*model.Player
	games      map[model.GameID]*model.Game
	attempts   map[attemptKey]*model.AttemptRecord
	stats      map[model.PlayerID]*model.PlayerStats
	challenges map[model.ChallengeToken]*model.FriendChallenge
	poolWords  []string
}

type attemptKey struct {
	date     model.Date
	playerID model.PlayerID
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{
		players:    make(map[model.PlayerID]*model.Player),
		games:      make(map[model.GameID]*model.Game),
		attempts:   make(map[attemptKey]*model.AttemptRecord),
		stats:      make(map[model.PlayerID]*model.PlayerStats),
		challenges: make(map[model.ChallengeToken]*model.FriendChallenge),
	}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Player operations

func (s *Storage) SavePlayer(ctx context.Context, player *model.Player) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.players[player.ID] = player
	return nil
}

func (s *Storage) GetPlayer(ctx context.Context, id model.PlayerID) (*model.Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	player, ok := s.players[id]
	if !ok {
		return nil, model.ErrPlayerNotFound
	}
	return player, nil
}

// Game operations

func (s *Storage) SaveGame(ctx context.Context, game *model.Game) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.games[game.ID] = game
	return nil
}

func (s *Storage) GetGame(ctx context.Context, id model.GameID) (*model.Game, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	game, ok := s.games[id]
	if !ok {
		return nil, model.ErrGameNotFound
	}
	return game, nil
}

func (s *Storage) DeleteGame(ctx context.Context, id model.GameID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.games, id)
	return nil
}

// Daily attempt operations

func (s *Storage) InsertAttempt(ctx context.Context, record *model.AttemptRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := attemptKey{date: record.Date, playerID: record.PlayerID}
	if _, ok := s.attempts[key]; ok {
		return model.ErrAlreadyPlayed
	}
	s.attempts[key] = record
	return nil
}

func (s *Storage) GetAttempt(ctx context.Context, date model.Date, playerID model.PlayerID) (*model.AttemptRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	record, ok := s.attempts[attemptKey{date: date, playerID: playerID}]
	if !ok {
		return nil, model.ErrAttemptNotFound
	}
	return record, nil
}

func (s *Storage) GetAttemptsForDate(ctx context.Context, date model.Date) ([]*model.AttemptRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var records []*model.AttemptRecord
	for key, record := range s.attempts {
		if key.date == date {
			records = append(records, record)
		}
	}
	return records, nil
}

func (s *Storage) GetAttemptsForPlayer(ctx context.Context, playerID model.PlayerID) ([]*model.AttemptRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var records []*model.AttemptRecord
	for key, record := range s.attempts {
		if key.playerID == playerID {
			records = append(records, record)
		}
	}
	return records, nil
}

// Player stats projection operations

func (s *Storage) SavePlayerStats(ctx context.Context, stats *model.PlayerStats) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stats[stats.PlayerID] = stats
	return nil
}

func (s *Storage) GetPlayerStats(ctx context.Context, playerID model.PlayerID) (*model.PlayerStats, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	stats, ok := s.stats[playerID]
	if !ok {
		return nil, model.ErrStatsNotFound
	}
	return stats, nil
}

// Friend challenge operations

func (s *Storage) SaveChallenge(ctx context.Context, challenge *model.FriendChallenge) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.challenges[challenge.Token] = challenge
	return nil
}

func (s *Storage) GetChallenge(ctx context.Context, token model.ChallengeToken) (*model.FriendChallenge, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	challenge, ok := s.challenges[token]
	if !ok {
		return nil, model.ErrChallengeNotFound
	}
	return challenge, nil
}

func (s *Storage) DeleteChallengesBefore(ctx context.Context, cutoff time.Time) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	removed := 0
	for token, challenge := range s.challenges {
		if challenge.CreatedAt.Before(cutoff) {
			delete(s.challenges, token)
			removed++
		}
	}
	return removed, nil
}

// Word pool operations

func (s *Storage) GetPoolWords(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.poolWords == nil {
		return nil, model.ErrWordPoolNotLoaded
	}
	result := make([]string, len(s.poolWords))
	copy(result, s.poolWords)
	return result, nil
}

func (s *Storage) SavePoolWords(ctx context.Context, words []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.poolWords = make([]string, len(words))
	copy(s.poolWords, words)
	return nil
}
