package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/yurkki/wordle/internal/api"
	"github.com/yurkki/wordle/internal/factory"
	"github.com/yurkki/wordle/internal/services/dictionary"
	"github.com/yurkki/wordle/internal/services/friend"
	redisstorage "github.com/yurkki/wordle/internal/storage/redis"
)

func main() {
	// Local development convenience; absence of a .env file is fine
	_ = godotenv.Load()

	// Set up logging with JSON output
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	wordsPath := os.Getenv("WORDS_PATH")
	if wordsPath == "" {
		wordsPath = "data/words.txt"
	}

	// Build factory config from environment
	cfg := factory.Config{
		WordsPath:   wordsPath,
		Logger:      logger,
		StorageType: os.Getenv("STORAGE_TYPE"),
		DictionaryConfig: dictionary.Config{
			APIBaseURL: os.Getenv("DICTIONARY_API_URL"),
			APIKey:     os.Getenv("DICTIONARY_API_KEY"),
		},
	}

	// Configure Redis if storage type is redis
	if cfg.StorageType == factory.StorageTypeRedis {
		redisURL := os.Getenv("REDIS_URL")
		if redisURL == "" {
			logger.Error("REDIS_URL required when STORAGE_TYPE=redis")
			os.Exit(1)
		}
		redisCfg := redisstorage.DefaultConfig()
		redisCfg.URL = redisURL
		cfg.RedisConfig = &redisCfg
	}

	// Create application factory
	app, err := factory.New(cfg)
	if err != nil {
		logger.Error("failed to create application", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("answer pool loaded", slog.Int("words", app.WordsService.Count()))

	// Create API router
	router := api.NewRouter(api.RouterConfig{
		Logger:         logger,
		Clock:          app.Clock,
		PlayerService:  app.PlayerService,
		GameController: app.GameController,
		StatsService:   app.StatsService,
		FriendService:  app.FriendService,
	})

	// Create server
	serverConfig := api.DefaultServerConfig()
	if port := os.Getenv("PORT"); port != "" {
		p, err := strconv.Atoi(port)
		if err != nil {
			logger.Error("invalid PORT", slog.String("port", port))
			os.Exit(1)
		}
		serverConfig.Port = p
	}
	server := api.NewServer(router, serverConfig, logger)

	// Handle graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		logger.Info("shutdown signal received")
		cancel()
	}()

	// Sweep expired friend challenges hourly
	go func() {
		ticker := time.NewTicker(time.Hour)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				removed, err := app.FriendService.SweepExpired(ctx, friend.DefaultRetentionDays)
				if err != nil {
					logger.Error("challenge sweep failed", slog.String("error", err.Error()))
					continue
				}
				if removed > 0 {
					logger.Info("expired challenges removed", slog.Int("count", removed))
				}
			}
		}
	}()

	// Start server in goroutine
	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start()
	}()

	logger.Info("server started", slog.String("addr", server.Addr()))

	// Wait for shutdown or error
	select {
	case err := <-errCh:
		if err != nil {
			logger.Error("server error", slog.String("error", err.Error()))
			os.Exit(1)
		}
	case <-ctx.Done():
		if err := server.Shutdown(context.Background()); err != nil {
			logger.Error("shutdown error", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	logger.Info("server stopped")
}
