package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/yurkki/wordle/internal/api/middleware"
	"github.com/yurkki/wordle/internal/api/request"
	"github.com/yurkki/wordle/internal/api/response"
	"github.com/yurkki/wordle/internal/model"
	"github.com/yurkki/wordle/internal/services/game"
)

// GameHandler handles game endpoints
type GameHandler struct {
	games *game.Controller
}

// NewGameHandler creates a new game handler
func NewGameHandler(games *game.Controller) *GameHandler {
	return &GameHandler{games: games}
}

// Start handles POST /api/v1/games
func (h *GameHandler) Start(w http.ResponseWriter, r *http.Request) {
	var req request.StartGameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	if req.Mode == "" {
		WriteError(w, NewInvalidRequestError("mode is required"))
		return
	}
	if model.GameMode(req.Mode) == model.ModeFriend && req.ChallengeToken == "" {
		WriteError(w, NewInvalidRequestError("challenge_token is required for friend mode"))
		return
	}

	player := middleware.MustGetPlayer(r.Context())

	g, err := h.games.StartGame(r.Context(), player.ID, model.GameMode(req.Mode), model.ChallengeToken(req.ChallengeToken))
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.GameFromModel(g))
}

// Get handles GET /api/v1/games/{id}
func (h *GameHandler) Get(w http.ResponseWriter, r *http.Request) {
	gameID := model.GameID(mux.Vars(r)["id"])
	player := middleware.MustGetPlayer(r.Context())

	g, err := h.games.GetGame(r.Context(), gameID, player.ID)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.GameFromModel(g))
}

// Guess handles POST /api/v1/games/{id}/guesses
func (h *GameHandler) Guess(w http.ResponseWriter, r *http.Request) {
	var req request.GuessRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	if req.Word == "" {
		WriteError(w, NewInvalidRequestError("word is required"))
		return
	}
	if req.ElapsedSeconds < 0 {
		WriteError(w, NewInvalidRequestError("elapsed_seconds must not be negative"))
		return
	}

	gameID := model.GameID(mux.Vars(r)["id"])
	player := middleware.MustGetPlayer(r.Context())

	g, err := h.games.SubmitGuess(r.Context(), gameID, player.ID, req.Word, req.ElapsedSeconds)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.GameFromModel(g))
}

// CanPlay handles GET /api/v1/daily/can-play
func (h *GameHandler) CanPlay(w http.ResponseWriter, r *http.Request) {
	player := middleware.MustGetPlayer(r.Context())

	date, allowed, reason, err := h.games.CanPlayToday(r.Context(), player.ID)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.CanPlay{
		Date:    string(date),
		CanPlay: allowed,
		Reason:  reason,
	})
}
