package factory

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"github.com/yurkki/wordle/internal/dependencies/clock"
	"github.com/yurkki/wordle/internal/dependencies/random"
	"github.com/yurkki/wordle/internal/services/daily"
	"github.com/yurkki/wordle/internal/services/dictionary"
	"github.com/yurkki/wordle/internal/services/friend"
	"github.com/yurkki/wordle/internal/services/game"
	"github.com/yurkki/wordle/internal/services/player"
	"github.com/yurkki/wordle/internal/services/scoring"
	"github.com/yurkki/wordle/internal/services/stats"
	"github.com/yurkki/wordle/internal/services/words"
	"github.com/yurkki/wordle/internal/storage"
	"github.com/yurkki/wordle/internal/storage/memory"
	redisstorage "github.com/yurkki/wordle/internal/storage/redis"
)

// Storage type constants
const (
	StorageTypeMemory = "memory"
	StorageTypeRedis  = "redis"
)

// App contains all wired application components
type App struct {
	// Storage
	Storage storage.Storage

	// External dependencies
	Clock  clock.Clock
	Random random.Random

	// Services
	WordsService      *words.Service
	DictionaryService *dictionary.Service
	ScoringService    *scoring.Service
	DailySelector     *daily.Selector
	DailyGuard        *daily.Guard
	StatsService      *stats.Service
	FriendService     *friend.Service
	PlayerService     *player.Service
	GameController    *game.Controller
}

// Config holds configuration for the application factory
type Config struct {
	// WordsPath is the path to the answer pool file (optional)
	// If empty, the pool must be loaded manually
	WordsPath string
	// DictionaryConfig holds settings for the external dictionary
	// lookup (optional). If zero value, defaults to
	// dictionary.DefaultConfig().
	DictionaryConfig dictionary.Config
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// StorageType selects the storage backend ("memory" or "redis")
	// If empty, defaults to "memory"
	StorageType string
	// RedisConfig holds Redis connection settings (required if StorageType is "redis")
	RedisConfig *redisstorage.Config
}

// New creates a new application with all dependencies wired
func New(cfg Config) (*App, error) {
	// Use no-op logger if not provided
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	// Create storage based on type
	var store storage.Storage
	storageType := cfg.StorageType
	if storageType == "" {
		storageType = StorageTypeMemory
	}

	switch storageType {
	case StorageTypeMemory:
		store = memory.New()
	case StorageTypeRedis:
		if cfg.RedisConfig == nil {
			return nil, errors.New("RedisConfig required when StorageType is redis")
		}
		redisStore, err := redisstorage.New(*cfg.RedisConfig)
		if err != nil {
			return nil, err
		}
		store = redisStore
	default:
		return nil, errors.New("invalid StorageType: must be 'memory' or 'redis'")
	}

	// Create external dependencies
	clk := clock.New()
	rnd := random.New()

	// Use default dictionary config if not provided
	dictCfg := cfg.DictionaryConfig
	if dictCfg.Timeout == 0 {
		defaults := dictionary.DefaultConfig()
		defaults.APIBaseURL = dictCfg.APIBaseURL
		defaults.APIKey = dictCfg.APIKey
		dictCfg = defaults
	}

	app := newWithDependencies(store, clk, rnd, dictCfg, logger)

	// Load the answer pool, preferring the file so deployments can
	// ship updated pools; fall back to whatever storage already holds
	if cfg.WordsPath != "" {
		ctx := context.Background()
		if err := app.WordsService.LoadFromFile(ctx, cfg.WordsPath); err != nil {
			logger.Warn("could not load answer pool from file",
				slog.String("path", cfg.WordsPath),
				slog.String("error", err.Error()))
			if err := app.WordsService.LoadFromStorage(ctx); err != nil {
				return nil, err
			}
		}
	}

	return app, nil
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(store storage.Storage, clk clock.Clock, rnd random.Random, dictCfg dictionary.Config, logger *slog.Logger) *App {
	// Create services
	wordsService := words.New(store, rnd)
	dictService := dictionary.New(dictCfg, wordsService, clk, logger)
	scoringService := scoring.New(scoring.DefaultConfig())
	dailySelector := daily.NewSelector(wordsService, dictService, logger)
	dailyGuard := daily.NewGuard(store)
	statsService := stats.New(store)
	friendService := friend.New(store, clk, logger)
	playerService := player.New(store, clk)
	gameController := game.NewController(
		store, wordsService, dictService, scoringService,
		dailySelector, dailyGuard, statsService, friendService,
		clk, rnd, logger,
	)

	return &App{
		Storage:           store,
		Clock:             clk,
		Random:            rnd,
		WordsService:      wordsService,
		DictionaryService: dictService,
		ScoringService:    scoringService,
		DailySelector:     dailySelector,
		DailyGuard:        dailyGuard,
		StatsService:      statsService,
		FriendService:     friendService,
		PlayerService:     playerService,
		GameController:    gameController,
	}
}
