package model

import "errors"

// Common errors used across the application
var (
	// Word validation errors
	ErrInvalidWordLength = errors.New("word must be exactly 5 letters")
	ErrInvalidWordFormat = errors.New("word must contain only Russian letters")
	ErrWordNotAccepted   = errors.New("word is not an accepted Russian word")
	ErrInvalidDate       = errors.New("invalid date, expected YYYY-MM-DD")

	// Player errors
	ErrPlayerNotFound = errors.New("player not found")

	// Game errors
	ErrGameNotFound    = errors.New("game not found")
	ErrGameOver        = errors.New("game is already over")
	ErrInvalidGameMode = errors.New("invalid game mode")

	// Daily challenge errors
	ErrAlreadyPlayed   = errors.New("player already played today")
	ErrAttemptNotFound = errors.New("attempt record not found")
	ErrStatsNotFound   = errors.New("player stats not found")

	// Friend challenge errors
	ErrChallengeNotFound = errors.New("friend challenge not found")

	// Word pool errors
	ErrWordPoolNotLoaded = errors.New("word pool not loaded")
	ErrEmptyWordPool     = errors.New("word pool is empty")
)
