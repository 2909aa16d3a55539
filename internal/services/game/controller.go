package game

import (
	"context"
	"log/slog"

	"github.com/yurkki/wordle/internal/dependencies/clock"
	"github.com/yurkki/wordle/internal/dependencies/random"
	"github.com/yurkki/wordle/internal/model"
	"github.com/yurkki/wordle/internal/services/daily"
	"github.com/yurkki/wordle/internal/services/dictionary"
	"github.com/yurkki/wordle/internal/services/friend"
	"github.com/yurkki/wordle/internal/services/scoring"
	"github.com/yurkki/wordle/internal/services/stats"
	"github.com/yurkki/wordle/internal/services/words"
	"github.com/yurkki/wordle/internal/storage"
)

const gameIDAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// Controller manages the guess loop and ties the game modes together
type Controller struct {
	storage    storage.Storage
	words      *words.Service
	dictionary *dictionary.Service
	scoring    *scoring.Service
	selector   *daily.Selector
	guard      *daily.Guard
	stats      *stats.Service
	friends    *friend.Service
	clock      clock.Clock
	random     random.Random
	logger     *slog.Logger
}

// NewController creates a new game Controller
func NewController(
	storage storage.Storage,
	words *words.Service,
	dictionary *dictionary.Service,
	scoring *scoring.Service,
	selector *daily.Selector,
	guard *daily.Guard,
	stats *stats.Service,
	friends *friend.Service,
	clock clock.Clock,
	random random.Random,
	logger *slog.Logger,
) *Controller {
	return &Controller{
		storage:    storage,
		words:      words,
		dictionary: dictionary,
		scoring:    scoring,
		selector:   selector,
		guard:      guard,
		stats:      stats,
		friends:    friends,
		clock:      clock,
		random:     random,
		logger:     logger,
	}
}

// StartGame begins a game in the given mode. Daily games check the
// one-attempt rule up front; friend games need a resolvable token.
func (c *Controller) StartGame(ctx context.Context, playerID model.PlayerID, mode model.GameMode, friendToken model.ChallengeToken) (*model.Game, error) {
	if !model.ValidMode(mode) {
		return nil, model.ErrInvalidGameMode
	}

	var target model.Word
	switch mode {
	case model.ModePractice:
		word, err := c.words.RandomWord()
		if err != nil {
			return nil, err
		}
		target = word

	case model.ModeDaily:
		date := model.NewDate(c.clock.Now())
		allowed, _, err := c.guard.CanPlay(ctx, date, playerID)
		if err != nil {
			return nil, err
		}
		if !allowed {
			return nil, model.ErrAlreadyPlayed
		}
		word, err := c.selector.WordForDate(ctx, date)
		if err != nil {
			return nil, err
		}
		target = word

	case model.ModeFriend:
		challenge, err := c.friends.Resolve(ctx, friendToken)
		if err != nil {
			return nil, err
		}
		target = challenge.Word
	}

	now := c.clock.Now()
	game := &model.Game{
		ID:          model.GameID(c.random.String(12, gameIDAlphabet)),
		PlayerID:    playerID,
		Mode:        mode,
		TargetWord:  target,
		Status:      model.StatusInProgress,
		FriendToken: friendToken,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := c.storage.SaveGame(ctx, game); err != nil {
		c.logger.Error("failed to save game",
			slog.String("game_id", string(game.ID)),
			slog.String("error", err.Error()),
		)
		return nil, err
	}

	c.logger.Info("game started",
		slog.String("game_id", string(game.ID)),
		slog.String("player_id", string(playerID)),
		slog.String("mode", string(mode)),
	)

	return game, nil
}

// GetGame retrieves a game. The requesting player must own it; games
// of other players are reported as missing rather than forbidden.
func (c *Controller) GetGame(ctx context.Context, gameID model.GameID, playerID model.PlayerID) (*model.Game, error) {
	game, err := c.storage.GetGame(ctx, gameID)
	if err != nil {
		return nil, err
	}
	if game.PlayerID != playerID {
		return nil, model.ErrGameNotFound
	}
	return game, nil
}

// SubmitGuess validates and scores a guess, advancing the game state.
// elapsedSeconds is the client-reported play time, recorded on the
// terminal guess of a daily game.
func (c *Controller) SubmitGuess(ctx context.Context, gameID model.GameID, playerID model.PlayerID, rawWord string, elapsedSeconds int) (*model.Game, error) {
	game, err := c.GetGame(ctx, gameID, playerID)
	if err != nil {
		return nil, err
	}

	if !game.CanAcceptGuess() {
		return nil, model.ErrGameOver
	}

	word, err := model.ParseWord(rawWord)
	if err != nil {
		return nil, err
	}

	if !c.dictionary.IsValid(ctx, word) {
		return nil, model.ErrWordNotAccepted
	}

	guess := c.scoring.ScoreGuess(word, game.TargetWord)
	game.Guesses = append(game.Guesses, guess)

	verdicts := make([]model.LetterVerdict, len(guess.Letters))
	for i, lg := range guess.Letters {
		verdicts[i] = lg.Verdict
	}

	switch {
	case c.scoring.IsWinning(verdicts):
		game.Status = model.StatusWon
	case len(game.Guesses) >= model.MaxGuesses:
		game.Status = model.StatusLost
	}

	game.ElapsedSeconds = elapsedSeconds
	game.UpdatedAt = c.clock.Now()

	if err := c.storage.SaveGame(ctx, game); err != nil {
		return nil, err
	}

	if game.Mode == model.ModeDaily && game.IsOver() {
		if err := c.recordDailyResult(ctx, game); err != nil {
			return nil, err
		}
	}

	return game, nil
}

// recordDailyResult persists the finished daily game as the player's
// attempt for the day and refreshes their lifetime stats. Losing the
// insert race is not an error; the earlier result stands.
func (c *Controller) recordDailyResult(ctx context.Context, game *model.Game) error {
	record := &model.AttemptRecord{
		// The attempt counts toward the day the game finished, even
		// when it started before midnight and the word of the day has
		// since rolled over. Intentional: the snapshot in TargetWord
		// keeps the leaderboard honest about what was actually guessed.
		Date:           model.NewDate(game.UpdatedAt),
		PlayerID:       game.PlayerID,
		Attempts:       game.Attempts(),
		Success:        game.Status == model.StatusWon,
		CompletedAt:    game.UpdatedAt,
		ElapsedSeconds: game.ElapsedSeconds,
		TargetWord:     game.TargetWord,
	}

	inserted, err := c.guard.RecordIfAllowed(ctx, record)
	if err != nil {
		return err
	}
	if !inserted {
		c.logger.Warn("daily result already recorded",
			slog.String("game_id", string(game.ID)),
			slog.String("player_id", string(game.PlayerID)),
			slog.String("date", string(record.Date)),
		)
		return nil
	}

	if _, err := c.stats.RecordResult(ctx, game.PlayerID); err != nil {
		// The attempt is safely recorded; the projection rebuilds on
		// the next read
		c.logger.Error("failed to refresh player stats",
			slog.String("player_id", string(game.PlayerID)),
			slog.String("error", err.Error()),
		)
	}

	return nil
}

// CanPlayToday reports whether the player still has their daily
// attempt, with a human-readable reason when they do not
func (c *Controller) CanPlayToday(ctx context.Context, playerID model.PlayerID) (model.Date, bool, string, error) {
	date := model.NewDate(c.clock.Now())
	allowed, record, err := c.guard.CanPlay(ctx, date, playerID)
	if err != nil {
		return date, false, "", err
	}
	if allowed {
		return date, true, "", nil
	}
	return date, false, c.guard.RestrictionReason(record), nil
}

// ControllerInterface for dependency injection
type ControllerInterface interface {
	StartGame(ctx context.Context, playerID model.PlayerID, mode model.GameMode, friendToken model.ChallengeToken) (*model.Game, error)
	GetGame(ctx context.Context, gameID model.GameID, playerID model.PlayerID) (*model.Game, error)
	SubmitGuess(ctx context.Context, gameID model.GameID, playerID model.PlayerID, rawWord string, elapsedSeconds int) (*model.Game, error)
	CanPlayToday(ctx context.Context, playerID model.PlayerID) (model.Date, bool, string, error)
}

var _ ControllerInterface = (*Controller)(nil)
