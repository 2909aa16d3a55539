package handler

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/yurkki/wordle/internal/api/middleware"
	"github.com/yurkki/wordle/internal/api/response"
	"github.com/yurkki/wordle/internal/dependencies/clock"
	"github.com/yurkki/wordle/internal/model"
	"github.com/yurkki/wordle/internal/services/stats"
)

// StatsHandler handles leaderboard and statistics endpoints
type StatsHandler struct {
	stats *stats.Service
	clock clock.Clock
}

// NewStatsHandler creates a new stats handler
func NewStatsHandler(stats *stats.Service, clock clock.Clock) *StatsHandler {
	return &StatsHandler{
		stats: stats,
		clock: clock,
	}
}

// DailyLeaderboard handles GET /api/v1/stats/daily.
// An optional ?date=YYYY-MM-DD selects a past day; the default is
// today.
func (h *StatsHandler) DailyLeaderboard(w http.ResponseWriter, r *http.Request) {
	today := model.NewDate(h.clock.Now())

	date := today
	if raw := r.URL.Query().Get("date"); raw != "" {
		parsed, err := model.ParseDate(raw)
		if err != nil {
			WriteError(w, err)
			return
		}
		date = parsed
	}

	board, err := h.stats.DailyLeaderboard(r.Context(), date)
	if err != nil {
		WriteError(w, err)
		return
	}

	// The word of the day stays hidden while the day is still running
	revealWord := date.Before(today)
	response.JSON(w, http.StatusOK, response.LeaderboardFromModel(board, revealWord))
}

// PlayerStats handles GET /api/v1/stats/players/{player_id}
func (h *StatsHandler) PlayerStats(w http.ResponseWriter, r *http.Request) {
	playerID := model.PlayerID(mux.Vars(r)["player_id"])

	lifetime, err := h.stats.PlayerLifetimeStats(r.Context(), playerID)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.PlayerStatsFromModel(lifetime))
}

// MyStats handles GET /api/v1/stats/me
func (h *StatsHandler) MyStats(w http.ResponseWriter, r *http.Request) {
	player := middleware.MustGetPlayer(r.Context())

	lifetime, err := h.stats.PlayerLifetimeStats(r.Context(), player.ID)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.PlayerStatsFromModel(lifetime))
}
