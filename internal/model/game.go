package model

import "time"

// GameID uniquely identifies a game
type GameID string

// MaxGuesses is the number of guesses allowed per game
const MaxGuesses = 6

// GameMode selects how the target word is obtained and whether the
// daily-attempt rules apply
type GameMode string

const (
	ModePractice GameMode = "practice" // Random word, unlimited games
	ModeDaily    GameMode = "daily"    // Shared word of the day, one attempt per day
	ModeFriend   GameMode = "friend"   // Word chosen by a friend via share token
)

// ValidMode reports whether m is a known game mode
func ValidMode(m GameMode) bool {
	switch m {
	case ModePractice, ModeDaily, ModeFriend:
		return true
	}
	return false
}

// GameStatus represents the lifecycle state of a game
type GameStatus string

const (
	StatusInProgress GameStatus = "in_progress"
	StatusWon        GameStatus = "won"
	StatusLost       GameStatus = "lost"
)

// LetterVerdict classifies a single guessed letter position
type LetterVerdict string

const (
	VerdictCorrect LetterVerdict = "correct" // Right letter, right position
	VerdictPresent LetterVerdict = "present" // Letter occurs elsewhere in the target
	VerdictAbsent  LetterVerdict = "absent"  // No unclaimed matching letter remains
)

// LetterGuess is one letter of a guess together with its verdict
type LetterGuess struct {
	Letter  string
	Verdict LetterVerdict
}

// Guess is a scored guess. Immutable once appended to a game.
type Guess struct {
	Word    Word
	Letters []LetterGuess
}

// Game represents a single word-guessing session
type Game struct {
	ID       GameID
	PlayerID PlayerID
	Mode     GameMode

	// TargetWord is the secret word; response mapping hides it until
	// the game is over
	TargetWord Word

	Guesses []Guess
	Status  GameStatus

	// FriendToken is set for friend-challenge games
	FriendToken ChallengeToken

	// ElapsedSeconds is client-reported play time, carried into the
	// daily attempt record
	ElapsedSeconds int

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsOver returns true once the game has reached a terminal state
func (g *Game) IsOver() bool {
	return g.Status != StatusInProgress
}

// CanAcceptGuess returns true iff the game is in progress and has
// guesses remaining
func (g *Game) CanAcceptGuess() bool {
	return g.Status == StatusInProgress && len(g.Guesses) < MaxGuesses
}

// Attempts returns the attempt count for the daily record: the number
// of guesses used on a win, 0 otherwise
func (g *Game) Attempts() int {
	if g.Status == StatusWon {
		return len(g.Guesses)
	}
	return 0
}
