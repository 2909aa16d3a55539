package model

import "time"

// AttemptRecord is one player's daily-challenge result for one
// calendar day. At most one record exists per (Date, PlayerID); the
// storage layer enforces that on insert. Records are immutable.
type AttemptRecord struct {
	Date     Date
	PlayerID PlayerID

	// Attempts is the number of guesses used on a win, 0 on a loss
	Attempts int
	Success  bool

	CompletedAt    time.Time
	ElapsedSeconds int

	// TargetWord snapshots the word of the day the record was played
	// against
	TargetWord Word
}

// PlayerStats is the lifetime statistics projection for a player.
// It is derived from the player's full AttemptRecord history and can
// always be rebuilt from it; the history is authoritative.
type PlayerStats struct {
	PlayerID   PlayerID
	TotalGames int
	TotalWins  int

	// WinRate is a percentage rounded half-up to 2 decimal places
	WinRate float64

	CurrentStreak int
	MaxStreak     int

	// AverageAttempts is the mean of Attempts across all records,
	// losses included (they carry 0), rounded half-up to 2 decimals
	AverageAttempts float64

	LastPlayed Date
}

// PlayerResult is one row of a daily leaderboard
type PlayerResult struct {
	PlayerID       PlayerID
	Attempts       int
	ElapsedSeconds int
	CompletedAt    time.Time
	Success        bool

	// Rank is the 1-based position among successful players; ties in
	// attempts and time still receive distinct sequential ranks
	Rank int
}

// DailyLeaderboard aggregates all attempts for one calendar day
type DailyLeaderboard struct {
	Date       Date
	TargetWord Word

	TotalPlayers      int
	SuccessfulPlayers int

	// SuccessRate is a percentage rounded half-up to 2 decimal places
	SuccessRate float64

	// AttemptsDistribution counts successful players per attempt count
	AttemptsDistribution map[int]int

	// Ranked lists successful players ordered by attempts, then
	// elapsed seconds
	Ranked []PlayerResult
}
