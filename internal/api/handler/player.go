package handler

import (
	"encoding/json"
	"net/http"

	"github.com/yurkki/wordle/internal/api/middleware"
	"github.com/yurkki/wordle/internal/api/request"
	"github.com/yurkki/wordle/internal/api/response"
	"github.com/yurkki/wordle/internal/services/player"
)

// PlayerHandler handles player endpoints
type PlayerHandler struct {
	players *player.Service
}

// NewPlayerHandler creates a new player handler
func NewPlayerHandler(players *player.Service) *PlayerHandler {
	return &PlayerHandler{players: players}
}

// GetMe handles GET /api/v1/players/me
func (h *PlayerHandler) GetMe(w http.ResponseWriter, r *http.Request) {
	p := middleware.MustGetPlayer(r.Context())
	response.JSON(w, http.StatusOK, response.PlayerFromModel(p))
}

// Rename handles PATCH /api/v1/players/me
func (h *PlayerHandler) Rename(w http.ResponseWriter, r *http.Request) {
	var req request.RenameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	if req.DisplayName == "" {
		WriteError(w, NewInvalidRequestError("display_name is required"))
		return
	}

	p := middleware.MustGetPlayer(r.Context())

	updated, err := h.players.Rename(r.Context(), p.ID, req.DisplayName)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.PlayerFromModel(updated))
}
