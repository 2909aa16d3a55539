package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/yurkki/wordle/internal/model"
)

type StorageSuite struct {
	suite.Suite
	mini    *miniredis.Miniredis
	storage *Storage
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.mini = miniredis.RunT(s.T())

	client := redis.NewClient(&redis.Options{
		Addr: s.mini.Addr(),
	})

	cfg := DefaultConfig()
	cfg.GameTTL = time.Hour
	cfg.ChallengeTTL = time.Hour

	s.storage = NewWithClient(client, cfg)
	s.ctx = context.Background()
}

func (s *StorageSuite) TearDownTest() {
	if s.storage != nil {
		_ = s.storage.Close()
	}
	if s.mini != nil {
		s.mini.Close()
	}
}

// Player tests

func (s *StorageSuite) TestSaveAndGetPlayer() {
	player := &model.Player{
		ID:          "player-1",
		DisplayName: "Alice",
		CreatedAt:   time.Now(),
	}

	err := s.storage.SavePlayer(s.ctx, player)
	s.Require().NoError(err)

	retrieved, err := s.storage.GetPlayer(s.ctx, "player-1")
	s.Require().NoError(err)
	s.Equal(player.ID, retrieved.ID)
	s.Equal(player.DisplayName, retrieved.DisplayName)
}

func (s *StorageSuite) TestGetPlayerNotFound() {
	_, err := s.storage.GetPlayer(s.ctx, "nonexistent")
	s.ErrorIs(err, model.ErrPlayerNotFound)
}

func (s *StorageSuite) TestPlayerHasNoTTL() {
	player := &model.Player{ID: "player-1"}
	_ = s.storage.SavePlayer(s.ctx, player)

	s.Equal(time.Duration(0), s.mini.TTL(playerKey(player.ID)))
}

// Game tests

func (s *StorageSuite) TestSaveAndGetGame() {
	game := &model.Game{
		ID:         "game-1",
		PlayerID:   "player-1",
		Mode:       model.ModeDaily,
		TargetWord: "СЛОВО",
		Status:     model.StatusInProgress,
	}

	err := s.storage.SaveGame(s.ctx, game)
	s.Require().NoError(err)

	retrieved, err := s.storage.GetGame(s.ctx, "game-1")
	s.Require().NoError(err)
	s.Equal(game.TargetWord, retrieved.TargetWord)
	s.Equal(model.ModeDaily, retrieved.Mode)
}

func (s *StorageSuite) TestGameTTL() {
	game := &model.Game{ID: "game-1"}
	_ = s.storage.SaveGame(s.ctx, game)

	s.True(s.mini.TTL(gameKey(game.ID)) > 0, "games should expire")
}

func (s *StorageSuite) TestGameExpiry() {
	game := &model.Game{ID: "game-1"}
	_ = s.storage.SaveGame(s.ctx, game)

	s.mini.FastForward(2 * time.Hour)

	_, err := s.storage.GetGame(s.ctx, "game-1")
	s.ErrorIs(err, model.ErrGameNotFound)
}

func (s *StorageSuite) TestDeleteGame() {
	game := &model.Game{ID: "game-1"}
	_ = s.storage.SaveGame(s.ctx, game)

	err := s.storage.DeleteGame(s.ctx, "game-1")
	s.Require().NoError(err)

	_, err = s.storage.GetGame(s.ctx, "game-1")
	s.ErrorIs(err, model.ErrGameNotFound)
}

// Attempt tests

func (s *StorageSuite) TestInsertAndGetAttempt() {
	record := &model.AttemptRecord{
		Date:       "2026-08-27",
		PlayerID:   "player-1",
		Attempts:   3,
		Success:    true,
		TargetWord: "СЛОВО",
	}

	err := s.storage.InsertAttempt(s.ctx, record)
	s.Require().NoError(err)

	retrieved, err := s.storage.GetAttempt(s.ctx, "2026-08-27", "player-1")
	s.Require().NoError(err)
	s.Equal(3, retrieved.Attempts)
	s.Equal(model.Word("СЛОВО"), retrieved.TargetWord)
}

func (s *StorageSuite) TestInsertAttemptDuplicate() {
	record := &model.AttemptRecord{
		Date:     "2026-08-27",
		PlayerID: "player-1",
		Attempts: 3,
		Success:  true,
	}

	err := s.storage.InsertAttempt(s.ctx, record)
	s.Require().NoError(err)

	dupe := &model.AttemptRecord{
		Date:     "2026-08-27",
		PlayerID: "player-1",
		Attempts: 6,
		Success:  false,
	}
	err = s.storage.InsertAttempt(s.ctx, dupe)
	s.ErrorIs(err, model.ErrAlreadyPlayed)

	retrieved, err := s.storage.GetAttempt(s.ctx, "2026-08-27", "player-1")
	s.Require().NoError(err)
	s.Equal(3, retrieved.Attempts)
}

func (s *StorageSuite) TestGetAttemptsForDate() {
	_ = s.storage.InsertAttempt(s.ctx, &model.AttemptRecord{Date: "2026-08-27", PlayerID: "p1", Success: true})
	_ = s.storage.InsertAttempt(s.ctx, &model.AttemptRecord{Date: "2026-08-27", PlayerID: "p2", Success: false})
	_ = s.storage.InsertAttempt(s.ctx, &model.AttemptRecord{Date: "2026-08-28", PlayerID: "p1", Success: true})

	records, err := s.storage.GetAttemptsForDate(s.ctx, "2026-08-27")
	s.Require().NoError(err)
	s.Len(records, 2)
}

func (s *StorageSuite) TestGetAttemptsForPlayer() {
	_ = s.storage.InsertAttempt(s.ctx, &model.AttemptRecord{Date: "2026-08-27", PlayerID: "p1", Success: true})
	_ = s.storage.InsertAttempt(s.ctx, &model.AttemptRecord{Date: "2026-08-28", PlayerID: "p1", Success: false})
	_ = s.storage.InsertAttempt(s.ctx, &model.AttemptRecord{Date: "2026-08-27", PlayerID: "p2", Success: true})

	records, err := s.storage.GetAttemptsForPlayer(s.ctx, "p1")
	s.Require().NoError(err)
	s.Len(records, 2)
}

func (s *StorageSuite) TestGetAttemptsForDateEmpty() {
	records, err := s.storage.GetAttemptsForDate(s.ctx, "2026-08-27")
	s.Require().NoError(err)
	s.Empty(records)
}

// Stats tests

func (s *StorageSuite) TestSaveAndGetPlayerStats() {
	stats := &model.PlayerStats{
		PlayerID:      "player-1",
		TotalGames:    10,
		TotalWins:     7,
		WinRate:       70,
		CurrentStreak: 3,
		MaxStreak:     5,
	}

	err := s.storage.SavePlayerStats(s.ctx, stats)
	s.Require().NoError(err)

	retrieved, err := s.storage.GetPlayerStats(s.ctx, "player-1")
	s.Require().NoError(err)
	s.Equal(10, retrieved.TotalGames)
	s.Equal(float64(70), retrieved.WinRate)
}

func (s *StorageSuite) TestGetPlayerStatsNotFound() {
	_, err := s.storage.GetPlayerStats(s.ctx, "nonexistent")
	s.ErrorIs(err, model.ErrStatsNotFound)
}

// Challenge tests

func (s *StorageSuite) TestSaveAndGetChallenge() {
	challenge := &model.FriendChallenge{
		Token:     "abc123",
		Word:      "ЛАМПА",
		CreatedAt: time.Now(),
	}

	err := s.storage.SaveChallenge(s.ctx, challenge)
	s.Require().NoError(err)

	retrieved, err := s.storage.GetChallenge(s.ctx, "abc123")
	s.Require().NoError(err)
	s.Equal(model.Word("ЛАМПА"), retrieved.Word)
}

func (s *StorageSuite) TestGetChallengeNotFound() {
	_, err := s.storage.GetChallenge(s.ctx, "nonexistent")
	s.ErrorIs(err, model.ErrChallengeNotFound)
}

func (s *StorageSuite) TestDeleteChallengesBefore() {
	now := time.Now()

	_ = s.storage.SaveChallenge(s.ctx, &model.FriendChallenge{Token: "old", Word: "ЛАМПА", CreatedAt: now.AddDate(0, 0, -10)})
	_ = s.storage.SaveChallenge(s.ctx, &model.FriendChallenge{Token: "fresh", Word: "СЛОВО", CreatedAt: now})

	removed, err := s.storage.DeleteChallengesBefore(s.ctx, now.AddDate(0, 0, -7))
	s.Require().NoError(err)
	s.Equal(1, removed)

	_, err = s.storage.GetChallenge(s.ctx, "old")
	s.ErrorIs(err, model.ErrChallengeNotFound)

	_, err = s.storage.GetChallenge(s.ctx, "fresh")
	s.NoError(err)
}

// Word pool tests

func (s *StorageSuite) TestPoolWordsNotLoaded() {
	_, err := s.storage.GetPoolWords(s.ctx)
	s.ErrorIs(err, model.ErrWordPoolNotLoaded)
}

func (s *StorageSuite) TestSaveAndGetPoolWords() {
	words := []string{"СЛОВО", "ЛАМПА", "КНИГА"}

	err := s.storage.SavePoolWords(s.ctx, words)
	s.Require().NoError(err)

	retrieved, err := s.storage.GetPoolWords(s.ctx)
	s.Require().NoError(err)
	s.ElementsMatch(words, retrieved)
}

func (s *StorageSuite) TestPoolWordsKeepOrder() {
	// The daily selector indexes the pool by position, so a save and
	// reload must return words in exactly the order they went in
	words := []string{"ЛАМПА", "АЛМАЗ", "СЛОВО", "ТОПОТ", "АКТЁР", "ГРУДЬ", "ОКОЛО"}

	err := s.storage.SavePoolWords(s.ctx, words)
	s.Require().NoError(err)

	retrieved, err := s.storage.GetPoolWords(s.ctx)
	s.Require().NoError(err)
	s.Equal(words, retrieved)
}

func (s *StorageSuite) TestSavePoolWordsReplaces() {
	_ = s.storage.SavePoolWords(s.ctx, []string{"СЛОВО", "ЛАМПА"})
	_ = s.storage.SavePoolWords(s.ctx, []string{"КНИГА"})

	retrieved, err := s.storage.GetPoolWords(s.ctx)
	s.Require().NoError(err)
	s.Equal([]string{"КНИГА"}, retrieved)
}
