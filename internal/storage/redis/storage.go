package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/yurkki/wordle/internal/model"
	"github.com/yurkki/wordle/internal/storage"
)

// Storage is a Redis-backed implementation of the storage interface
type Storage struct {
	client *redis.Client
	cfg    Config
}

// New creates a new Redis storage instance
func New(cfg Config) (*Storage, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns

	client := redis.NewClient(opts)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &Storage{
		client: client,
		cfg:    cfg,
	}, nil
}

// NewWithClient creates a Redis storage with an existing client (for testing)
func NewWithClient(client *redis.Client, cfg Config) *Storage {
	return &Storage{
		client: client,
		cfg:    cfg,
	}
}

// Close closes the Redis connection
func (s *Storage) Close() error {
	return s.client.Close()
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Player operations

func (s *Storage) SavePlayer(ctx context.Context, player *model.Player) error {
	data, err := json.Marshal(player)
	if err != nil {
		return err
	}

	return s.client.Set(ctx, playerKey(player.ID), data, 0).Err()
}

func (s *Storage) GetPlayer(ctx context.Context, id model.PlayerID) (*model.Player, error) {
	data, err := s.client.Get(ctx, playerKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrPlayerNotFound
		}
		return nil, err
	}

	var player model.Player
	if err := json.Unmarshal(data, &player); err != nil {
		return nil, err
	}
	return &player, nil
}

// Game operations

func (s *Storage) SaveGame(ctx context.Context, game *model.Game) error {
	data, err := json.Marshal(game)
	if err != nil {
		return err
	}

	return s.client.Set(ctx, gameKey(game.ID), data, s.cfg.GameTTL).Err()
}

func (s *Storage) GetGame(ctx context.Context, id model.GameID) (*model.Game, error) {
	data, err := s.client.Get(ctx, gameKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrGameNotFound
		}
		return nil, err
	}

	var game model.Game
	if err := json.Unmarshal(data, &game); err != nil {
		return nil, err
	}
	return &game, nil
}

func (s *Storage) DeleteGame(ctx context.Context, id model.GameID) error {
	return s.client.Del(ctx, gameKey(id)).Err()
}

// Daily attempt operations

func (s *Storage) InsertAttempt(ctx context.Context, record *model.AttemptRecord) error {
	data, err := json.Marshal(record)
	if err != nil {
		return err
	}

	key := attemptKey(record.Date, record.PlayerID)

	// SETNX is the uniqueness guard: the first writer for a
	// (date, player) pair wins, everyone else gets ErrAlreadyPlayed
	set, err := s.client.SetNX(ctx, key, data, 0).Result()
	if err != nil {
		return err
	}
	if !set {
		return model.ErrAlreadyPlayed
	}

	pipe := s.client.Pipeline()
	pipe.SAdd(ctx, attemptsForDateIndexKey(record.Date), key)
	pipe.SAdd(ctx, attemptsForPlayerIndexKey(record.PlayerID), key)
	_, err = pipe.Exec(ctx)
	return err
}

func (s *Storage) GetAttempt(ctx context.Context, date model.Date, playerID model.PlayerID) (*model.AttemptRecord, error) {
	data, err := s.client.Get(ctx, attemptKey(date, playerID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrAttemptNotFound
		}
		return nil, err
	}

	var record model.AttemptRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, err
	}
	return &record, nil
}

func (s *Storage) GetAttemptsForDate(ctx context.Context, date model.Date) ([]*model.AttemptRecord, error) {
	return s.attemptsFromIndex(ctx, attemptsForDateIndexKey(date))
}

func (s *Storage) GetAttemptsForPlayer(ctx context.Context, playerID model.PlayerID) ([]*model.AttemptRecord, error) {
	return s.attemptsFromIndex(ctx, attemptsForPlayerIndexKey(playerID))
}

func (s *Storage) attemptsFromIndex(ctx context.Context, indexKey string) ([]*model.AttemptRecord, error) {
	keys, err := s.client.SMembers(ctx, indexKey).Result()
	if err != nil {
		return nil, err
	}

	if len(keys) == 0 {
		return nil, nil
	}

	values, err := s.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, err
	}

	records := make([]*model.AttemptRecord, 0, len(values))
	for _, val := range values {
		if val == nil {
			continue
		}
		var record model.AttemptRecord
		if err := json.Unmarshal([]byte(val.(string)), &record); err != nil {
			continue // Skip invalid data
		}
		records = append(records, &record)
	}

	return records, nil
}

// Player stats projection operations

func (s *Storage) SavePlayerStats(ctx context.Context, stats *model.PlayerStats) error {
	data, err := json.Marshal(stats)
	if err != nil {
		return err
	}

	return s.client.Set(ctx, statsKey(stats.PlayerID), data, 0).Err()
}

func (s *Storage) GetPlayerStats(ctx context.Context, playerID model.PlayerID) (*model.PlayerStats, error) {
	data, err := s.client.Get(ctx, statsKey(playerID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrStatsNotFound
		}
		return nil, err
	}

	var stats model.PlayerStats
	if err := json.Unmarshal(data, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

// Friend challenge operations

func (s *Storage) SaveChallenge(ctx context.Context, challenge *model.FriendChallenge) error {
	data, err := json.Marshal(challenge)
	if err != nil {
		return err
	}

	key := challengeKey(challenge.Token)

	pipe := s.client.Pipeline()
	pipe.Set(ctx, key, data, s.cfg.ChallengeTTL)
	pipe.SAdd(ctx, challengesIndexKey(), key)
	_, err = pipe.Exec(ctx)
	return err
}

func (s *Storage) GetChallenge(ctx context.Context, token model.ChallengeToken) (*model.FriendChallenge, error) {
	data, err := s.client.Get(ctx, challengeKey(token)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrChallengeNotFound
		}
		return nil, err
	}

	var challenge model.FriendChallenge
	if err := json.Unmarshal(data, &challenge); err != nil {
		return nil, err
	}
	return &challenge, nil
}

func (s *Storage) DeleteChallengesBefore(ctx context.Context, cutoff time.Time) (int, error) {
	indexKey := challengesIndexKey()

	keys, err := s.client.SMembers(ctx, indexKey).Result()
	if err != nil {
		return 0, err
	}

	if len(keys) == 0 {
		return 0, nil
	}

	values, err := s.client.MGet(ctx, keys...).Result()
	if err != nil {
		return 0, err
	}

	removed := 0
	pipe := s.client.Pipeline()
	for i, val := range values {
		if val == nil {
			// Key expired on its own, drop the dangling index entry
			pipe.SRem(ctx, indexKey, keys[i])
			continue
		}
		var challenge model.FriendChallenge
		if err := json.Unmarshal([]byte(val.(string)), &challenge); err != nil {
			continue
		}
		if challenge.CreatedAt.Before(cutoff) {
			pipe.Del(ctx, keys[i])
			pipe.SRem(ctx, indexKey, keys[i])
			removed++
		}
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return 0, err
	}

	return removed, nil
}

// Word pool operations

func (s *Storage) GetPoolWords(ctx context.Context) ([]string, error) {
	words, err := s.client.LRange(ctx, poolKey(), 0, -1).Result()
	if err != nil {
		return nil, err
	}
	if len(words) == 0 {
		return nil, model.ErrWordPoolNotLoaded
	}

	return words, nil
}

func (s *Storage) SavePoolWords(ctx context.Context, words []string) error {
	key := poolKey()

	// The pool is a LIST, not a set: the daily selector addresses
	// words by index, so every process must see the same order
	pipe := s.client.Pipeline()
	pipe.Del(ctx, key)

	if len(words) > 0 {
		members := make([]interface{}, len(words))
		for i, w := range words {
			members[i] = w
		}
		pipe.RPush(ctx, key, members...)
	}

	_, err := pipe.Exec(ctx)
	return err
}
