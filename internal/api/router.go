package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/yurkki/wordle/internal/api/handler"
	apimiddleware "github.com/yurkki/wordle/internal/api/middleware"
	"github.com/yurkki/wordle/internal/dependencies/clock"
	"github.com/yurkki/wordle/internal/middleware"
	"github.com/yurkki/wordle/internal/services/friend"
	"github.com/yurkki/wordle/internal/services/game"
	"github.com/yurkki/wordle/internal/services/player"
	"github.com/yurkki/wordle/internal/services/stats"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger         *slog.Logger
	Clock          clock.Clock
	PlayerService  *player.Service
	GameController *game.Controller
	StatsService   *stats.Service
	FriendService  *friend.Service
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	// Create handlers
	gameHandler := handler.NewGameHandler(cfg.GameController)
	statsHandler := handler.NewStatsHandler(cfg.StatsService, cfg.Clock)
	challengeHandler := handler.NewChallengeHandler(cfg.FriendService)
	playerHandler := handler.NewPlayerHandler(cfg.PlayerService)

	// Create middleware
	identityMiddleware := apimiddleware.PlayerIdentity(cfg.PlayerService)
	loggingMiddleware := middleware.Logging(cfg.Logger)
	recoveryMiddleware := apimiddleware.Recovery(cfg.Logger)

	// API subrouter with common middleware
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(recoveryMiddleware)
	api.Use(loggingMiddleware)

	// Health check endpoint (no player identity needed)
	api.HandleFunc("/health", healthHandler).Methods(http.MethodGet)

	// Everything else resolves the anonymous player first
	identified := api.NewRoute().Subrouter()
	identified.Use(identityMiddleware)

	// Game routes
	identified.HandleFunc("/games", gameHandler.Start).Methods(http.MethodPost)
	identified.HandleFunc("/games/{id}", gameHandler.Get).Methods(http.MethodGet)
	identified.HandleFunc("/games/{id}/guesses", gameHandler.Guess).Methods(http.MethodPost)

	// Daily challenge routes
	identified.HandleFunc("/daily/can-play", gameHandler.CanPlay).Methods(http.MethodGet)

	// Stats routes
	identified.HandleFunc("/stats/daily", statsHandler.DailyLeaderboard).Methods(http.MethodGet)
	identified.HandleFunc("/stats/me", statsHandler.MyStats).Methods(http.MethodGet)
	identified.HandleFunc("/stats/players/{player_id}", statsHandler.PlayerStats).Methods(http.MethodGet)

	// Friend challenge routes
	identified.HandleFunc("/challenges", challengeHandler.Create).Methods(http.MethodPost)
	identified.HandleFunc("/challenges/{token}", challengeHandler.Get).Methods(http.MethodGet)

	// Player routes
	identified.HandleFunc("/players/me", playerHandler.GetMe).Methods(http.MethodGet)
	identified.HandleFunc("/players/me", playerHandler.Rename).Methods(http.MethodPatch)

	return r
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
