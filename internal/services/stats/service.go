package stats

import (
	"context"
	"errors"
	"math"
	"sort"

	"github.com/yurkki/wordle/internal/model"
	"github.com/yurkki/wordle/internal/storage"
)

// Service aggregates daily results into leaderboards and lifetime
// player statistics. Attempt records are the source of truth; the
// PlayerStats projection in storage is a cache that is rebuilt from
// history whenever a result lands.
type Service struct {
	storage storage.Storage
}

// New creates a new stats Service
func New(storage storage.Storage) *Service {
	return &Service{storage: storage}
}

// round2 rounds half-up to 2 decimal places
func round2(x float64) float64 {
	return math.Floor(x*100+0.5) / 100
}

// DailyLeaderboard builds the leaderboard for one calendar day
func (s *Service) DailyLeaderboard(ctx context.Context, date model.Date) (*model.DailyLeaderboard, error) {
	records, err := s.storage.GetAttemptsForDate(ctx, date)
	if err != nil {
		return nil, err
	}

	board := &model.DailyLeaderboard{
		Date:                 date,
		TotalPlayers:         len(records),
		AttemptsDistribution: make(map[int]int),
	}

	var successful []*model.AttemptRecord
	for _, record := range records {
		if board.TargetWord == "" {
			board.TargetWord = record.TargetWord
		}
		if record.Success {
			successful = append(successful, record)
			board.AttemptsDistribution[record.Attempts]++
		}
	}
	board.SuccessfulPlayers = len(successful)
	if board.TotalPlayers > 0 {
		board.SuccessRate = round2(100 * float64(board.SuccessfulPlayers) / float64(board.TotalPlayers))
	}

	// Fewer attempts wins; elapsed time breaks ties, then completion
	// order, then player id for a stable result
	sort.Slice(successful, func(i, j int) bool {
		a, b := successful[i], successful[j]
		if a.Attempts != b.Attempts {
			return a.Attempts < b.Attempts
		}
		if a.ElapsedSeconds != b.ElapsedSeconds {
			return a.ElapsedSeconds < b.ElapsedSeconds
		}
		if !a.CompletedAt.Equal(b.CompletedAt) {
			return a.CompletedAt.Before(b.CompletedAt)
		}
		return a.PlayerID < b.PlayerID
	})

	board.Ranked = make([]model.PlayerResult, len(successful))
	for i, record := range successful {
		board.Ranked[i] = model.PlayerResult{
			PlayerID:       record.PlayerID,
			Attempts:       record.Attempts,
			ElapsedSeconds: record.ElapsedSeconds,
			CompletedAt:    record.CompletedAt,
			Success:        true,
			Rank:           i + 1,
		}
	}

	return board, nil
}

// RecordResult refreshes the player's lifetime projection after a new
// attempt record has been inserted
func (s *Service) RecordResult(ctx context.Context, playerID model.PlayerID) (*model.PlayerStats, error) {
	return s.recalculate(ctx, playerID)
}

// PlayerLifetimeStats returns the player's lifetime statistics, using
// the stored projection when present and rebuilding it otherwise
func (s *Service) PlayerLifetimeStats(ctx context.Context, playerID model.PlayerID) (*model.PlayerStats, error) {
	stats, err := s.storage.GetPlayerStats(ctx, playerID)
	if err == nil {
		return stats, nil
	}
	if !errors.Is(err, model.ErrStatsNotFound) {
		return nil, err
	}
	return s.recalculate(ctx, playerID)
}

// recalculate folds the player's full history into a fresh projection
// and saves it
func (s *Service) recalculate(ctx context.Context, playerID model.PlayerID) (*model.PlayerStats, error) {
	records, err := s.storage.GetAttemptsForPlayer(ctx, playerID)
	if err != nil {
		return nil, err
	}

	sort.Slice(records, func(i, j int) bool {
		return records[i].Date.Before(records[j].Date)
	})

	stats := &model.PlayerStats{PlayerID: playerID}

	totalAttempts := 0
	for _, record := range records {
		stats.TotalGames++
		totalAttempts += record.Attempts
		stats.LastPlayed = record.Date

		// A win extends the streak even across skipped days; only a
		// loss breaks it
		if record.Success {
			stats.TotalWins++
			stats.CurrentStreak++
			if stats.CurrentStreak > stats.MaxStreak {
				stats.MaxStreak = stats.CurrentStreak
			}
		} else {
			stats.CurrentStreak = 0
		}
	}

	if stats.TotalGames > 0 {
		stats.WinRate = round2(100 * float64(stats.TotalWins) / float64(stats.TotalGames))
		stats.AverageAttempts = round2(float64(totalAttempts) / float64(stats.TotalGames))
	}

	if err := s.storage.SavePlayerStats(ctx, stats); err != nil {
		return nil, err
	}
	return stats, nil
}

// Interface for dependency injection
type ServiceInterface interface {
	DailyLeaderboard(ctx context.Context, date model.Date) (*model.DailyLeaderboard, error)
	RecordResult(ctx context.Context, playerID model.PlayerID) (*model.PlayerStats, error)
	PlayerLifetimeStats(ctx context.Context, playerID model.PlayerID) (*model.PlayerStats, error)
}

var _ ServiceInterface = (*Service)(nil)
