package response

import (
	"time"

	"github.com/yurkki/wordle/internal/model"
)

// Player represents a player in API responses
type Player struct {
	ID          string `json:"id"`
	DisplayName string `json:"display_name,omitempty"`
}

// PlayerFromModel converts a model.Player to a response Player
func PlayerFromModel(p *model.Player) Player {
	return Player{
		ID:          string(p.ID),
		DisplayName: p.DisplayName,
	}
}

// LetterResult is one scored letter of a guess
type LetterResult struct {
	Letter  string `json:"letter"`
	Verdict string `json:"verdict"`
}

// Guess is one scored guess row
type Guess struct {
	Word    string         `json:"word"`
	Letters []LetterResult `json:"letters"`
}

// GuessFromModel converts model.Guess
func GuessFromModel(g model.Guess) Guess {
	letters := make([]LetterResult, len(g.Letters))
	for i, lg := range g.Letters {
		letters[i] = LetterResult{
			Letter:  lg.Letter,
			Verdict: string(lg.Verdict),
		}
	}
	return Guess{
		Word:    string(g.Word),
		Letters: letters,
	}
}

// Game represents a game in API responses. The target word is only
// revealed once the game is over.
type Game struct {
	ID             string    `json:"id"`
	Mode           string    `json:"mode"`
	Status         string    `json:"status"`
	Guesses        []Guess   `json:"guesses"`
	GuessesLeft    int       `json:"guesses_left"`
	TargetWord     string    `json:"target_word,omitempty"`
	ChallengeToken string    `json:"challenge_token,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// GameFromModel converts model.Game
func GameFromModel(g *model.Game) Game {
	guesses := make([]Guess, len(g.Guesses))
	for i, guess := range g.Guesses {
		guesses[i] = GuessFromModel(guess)
	}

	resp := Game{
		ID:             string(g.ID),
		Mode:           string(g.Mode),
		Status:         string(g.Status),
		Guesses:        guesses,
		GuessesLeft:    model.MaxGuesses - len(g.Guesses),
		ChallengeToken: string(g.FriendToken),
		CreatedAt:      g.CreatedAt,
		UpdatedAt:      g.UpdatedAt,
	}
	if g.IsOver() {
		resp.TargetWord = string(g.TargetWord)
	}
	return resp
}

// CanPlay is the daily availability response
type CanPlay struct {
	Date    string `json:"date"`
	CanPlay bool   `json:"can_play"`
	Reason  string `json:"reason,omitempty"`
}

// PlayerStats represents lifetime statistics
type PlayerStats struct {
	PlayerID        string  `json:"player_id"`
	TotalGames      int     `json:"total_games"`
	TotalWins       int     `json:"total_wins"`
	WinRate         float64 `json:"win_rate"`
	CurrentStreak   int     `json:"current_streak"`
	MaxStreak       int     `json:"max_streak"`
	AverageAttempts float64 `json:"average_attempts"`
	LastPlayed      string  `json:"last_played,omitempty"`
}

// PlayerStatsFromModel converts model.PlayerStats
func PlayerStatsFromModel(s *model.PlayerStats) PlayerStats {
	return PlayerStats{
		PlayerID:        string(s.PlayerID),
		TotalGames:      s.TotalGames,
		TotalWins:       s.TotalWins,
		WinRate:         s.WinRate,
		CurrentStreak:   s.CurrentStreak,
		MaxStreak:       s.MaxStreak,
		AverageAttempts: s.AverageAttempts,
		LastPlayed:      string(s.LastPlayed),
	}
}

// LeaderboardEntry is one ranked row of a daily leaderboard
type LeaderboardEntry struct {
	Rank           int       `json:"rank"`
	PlayerID       string    `json:"player_id"`
	Attempts       int       `json:"attempts"`
	ElapsedSeconds int       `json:"elapsed_seconds"`
	CompletedAt    time.Time `json:"completed_at"`
}

// Leaderboard represents a daily leaderboard. The word of the day is
// only included for past dates; the current day's word stays hidden.
type Leaderboard struct {
	Date                 string             `json:"date"`
	TargetWord           string             `json:"target_word,omitempty"`
	TotalPlayers         int                `json:"total_players"`
	SuccessfulPlayers    int                `json:"successful_players"`
	SuccessRate          float64            `json:"success_rate"`
	AttemptsDistribution map[int]int        `json:"attempts_distribution"`
	Ranked               []LeaderboardEntry `json:"ranked"`
}

// LeaderboardFromModel converts model.DailyLeaderboard
func LeaderboardFromModel(b *model.DailyLeaderboard, revealWord bool) Leaderboard {
	ranked := make([]LeaderboardEntry, len(b.Ranked))
	for i, r := range b.Ranked {
		ranked[i] = LeaderboardEntry{
			Rank:           r.Rank,
			PlayerID:       string(r.PlayerID),
			Attempts:       r.Attempts,
			ElapsedSeconds: r.ElapsedSeconds,
			CompletedAt:    r.CompletedAt,
		}
	}

	resp := Leaderboard{
		Date:                 string(b.Date),
		TotalPlayers:         b.TotalPlayers,
		SuccessfulPlayers:    b.SuccessfulPlayers,
		SuccessRate:          b.SuccessRate,
		AttemptsDistribution: b.AttemptsDistribution,
		Ranked:               ranked,
	}
	if revealWord {
		resp.TargetWord = string(b.TargetWord)
	}
	return resp
}

// Challenge represents a friend challenge. The word itself is never
// exposed; only the creator saw it.
type Challenge struct {
	Token     string    `json:"token"`
	CreatedAt time.Time `json:"created_at"`
}

// ChallengeFromModel converts model.FriendChallenge
func ChallengeFromModel(c *model.FriendChallenge) Challenge {
	return Challenge{
		Token:     string(c.Token),
		CreatedAt: c.CreatedAt,
	}
}
