package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
}

// NewOutput creates a new Output formatter
func NewOutput(format string) *Output {
	return &Output{format: format}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintError outputs an error
func (o *Output) PrintError(err error) {
	if o.format == "json" {
		errData := map[string]any{
			"error": map[string]string{
				"message": err.Error(),
			},
		}
		data, _ := json.Marshal(errData)
		fmt.Fprintln(os.Stderr, string(data))
	} else {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]string{"message": msg})
		fmt.Println(string(data))
	} else {
		fmt.Println(msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case Player:
		o.printPlayer(v)
	case Game:
		o.printGame(v)
	case CanPlay:
		o.printCanPlay(v)
	case PlayerStats:
		o.printPlayerStats(v)
	case Leaderboard:
		o.printLeaderboard(v)
	case Challenge:
		o.printChallenge(v)
	case HealthResult:
		o.printHealthResult(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// Player response type (matches API)
type Player struct {
	ID          string `json:"id"`
	DisplayName string `json:"display_name,omitempty"`
}

// LetterResult response type
type LetterResult struct {
	Letter  string `json:"letter"`
	Verdict string `json:"verdict"`
}

// Guess response type
type Guess struct {
	Word    string         `json:"word"`
	Letters []LetterResult `json:"letters"`
}

// Game response type
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

// CanPlay response type
type CanPlay struct {
	Date    string `json:"date"`
	CanPlay bool   `json:"can_play"`
	Reason  string `json:"reason,omitempty"`
}

// PlayerStats response type
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

// LeaderboardEntry response type
type LeaderboardEntry struct {
	Rank           int       `json:"rank"`
	PlayerID       string    `json:"player_id"`
	Attempts       int       `json:"attempts"`
	ElapsedSeconds int       `json:"elapsed_seconds"`
	CompletedAt    time.Time `json:"completed_at"`
}

// Leaderboard response type
type Leaderboard struct {
	Date                 string             `json:"date"`
	TargetWord           string             `json:"target_word,omitempty"`
	TotalPlayers         int                `json:"total_players"`
	SuccessfulPlayers    int                `json:"successful_players"`
	SuccessRate          float64            `json:"success_rate"`
	AttemptsDistribution map[int]int        `json:"attempts_distribution"`
	Ranked               []LeaderboardEntry `json:"ranked"`
}

// Challenge response type
type Challenge struct {
	Token     string    `json:"token"`
	CreatedAt time.Time `json:"created_at"`
}

// HealthResult response type
type HealthResult struct {
	Status string `json:"status"`
}

func (o *Output) printPlayer(p Player) {
	fmt.Printf("Player: %s\n", p.ID)
	if p.DisplayName != "" {
		fmt.Printf("Name: %s\n", p.DisplayName)
	}
}

func (o *Output) printGame(g Game) {
	fmt.Printf("Game: %s\n", g.ID)
	fmt.Printf("Mode: %s\n", g.Mode)
	fmt.Printf("Status: %s\n", g.Status)
	if g.ChallengeToken != "" {
		fmt.Printf("Challenge: %s\n", g.ChallengeToken)
	}

	if len(g.Guesses) > 0 {
		fmt.Println("\nGuesses:")
		for i, guess := range g.Guesses {
			fmt.Printf("  %d. %s  %s\n", i+1, spaced(guess), verdictRow(guess))
		}
	}

	fmt.Printf("\nGuesses left: %d\n", g.GuessesLeft)
	if g.TargetWord != "" {
		fmt.Printf("The word was: %s\n", g.TargetWord)
	}
}

// spaced prints the guessed letters separated by spaces so the
// verdict row below lines up
func spaced(g Guess) string {
	s := ""
	for i, l := range g.Letters {
		if i > 0 {
			s += " "
		}
		s += l.Letter
	}
	return s
}

// verdictRow renders verdicts as one marker per letter:
// '+' in place, '?' elsewhere in the word, '.' not in the word
func verdictRow(g Guess) string {
	s := ""
	for i, l := range g.Letters {
		if i > 0 {
			s += " "
		}
		switch l.Verdict {
		case "correct":
			s += "+"
		case "present":
			s += "?"
		default:
			s += "."
		}
	}
	return s
}

func (o *Output) printCanPlay(c CanPlay) {
	fmt.Printf("Date: %s\n", c.Date)
	if c.CanPlay {
		fmt.Println("You can play today's word")
	} else {
		fmt.Printf("Already played: %s\n", c.Reason)
	}
}

func (o *Output) printPlayerStats(s PlayerStats) {
	fmt.Printf("Player: %s\n", s.PlayerID)
	fmt.Printf("Games: %d\n", s.TotalGames)
	fmt.Printf("Wins: %d (%.2f%%)\n", s.TotalWins, s.WinRate)
	fmt.Printf("Streak: %d (max %d)\n", s.CurrentStreak, s.MaxStreak)
	fmt.Printf("Average attempts: %.2f\n", s.AverageAttempts)
	if s.LastPlayed != "" {
		fmt.Printf("Last played: %s\n", s.LastPlayed)
	}
}

func (o *Output) printLeaderboard(b Leaderboard) {
	fmt.Printf("Leaderboard for %s\n", b.Date)
	if b.TargetWord != "" {
		fmt.Printf("Word: %s\n", b.TargetWord)
	}
	fmt.Printf("Players: %d, solved: %d (%.2f%%)\n", b.TotalPlayers, b.SuccessfulPlayers, b.SuccessRate)

	if len(b.AttemptsDistribution) > 0 {
		fmt.Println("Attempts distribution:")
		for attempts := 1; attempts <= 6; attempts++ {
			if count, ok := b.AttemptsDistribution[attempts]; ok {
				fmt.Printf("  %d: %d\n", attempts, count)
			}
		}
	}

	if len(b.Ranked) > 0 {
		fmt.Println("Ranked:")
		for _, e := range b.Ranked {
			fmt.Printf("  %d. %s - %d attempts, %ds\n", e.Rank, e.PlayerID, e.Attempts, e.ElapsedSeconds)
		}
	}
}

func (o *Output) printChallenge(c Challenge) {
	fmt.Printf("Challenge token: %s\n", c.Token)
	fmt.Println("Share it with a friend to let them guess your word")
}

func (o *Output) printHealthResult(h HealthResult) {
	fmt.Printf("Status: %s\n", h.Status)
}
