package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/yurkki/wordle/internal/api/request"
	"github.com/yurkki/wordle/internal/api/response"
	"github.com/yurkki/wordle/internal/model"
	"github.com/yurkki/wordle/internal/services/friend"
)

// ChallengeHandler handles friend challenge endpoints
type ChallengeHandler struct {
	friends *friend.Service
}

// NewChallengeHandler creates a new challenge handler
func NewChallengeHandler(friends *friend.Service) *ChallengeHandler {
	return &ChallengeHandler{friends: friends}
}

// Create handles POST /api/v1/challenges
func (h *ChallengeHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.CreateChallengeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	if req.Word == "" {
		WriteError(w, NewInvalidRequestError("word is required"))
		return
	}

	challenge, err := h.friends.Create(r.Context(), req.Word)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.ChallengeFromModel(challenge))
}

// Get handles GET /api/v1/challenges/{token}.
// It confirms the token is playable without revealing the word.
func (h *ChallengeHandler) Get(w http.ResponseWriter, r *http.Request) {
	token := model.ChallengeToken(mux.Vars(r)["token"])

	challenge, err := h.friends.Resolve(r.Context(), token)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.ChallengeFromModel(challenge))
}
