package apierr

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/yurkki/wordle/internal/model"
)

// APIError represents an API error response
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse wraps an APIError
type ErrorResponse struct {
	Error APIError `json:"error"`
}

// Common error codes
const (
	CodeInvalidRequest    = "INVALID_REQUEST"
	CodeInvalidWordLength = "INVALID_WORD_LENGTH"
	CodeInvalidWordFormat = "INVALID_WORD_FORMAT"
	CodeWordNotAccepted   = "WORD_NOT_ACCEPTED"
	CodeInvalidGameMode   = "INVALID_GAME_MODE"
	CodeInvalidDate       = "INVALID_DATE"
	CodeGameNotFound      = "GAME_NOT_FOUND"
	CodeGameOver          = "GAME_OVER"
	CodeAlreadyPlayed     = "ALREADY_PLAYED"
	CodePlayerNotFound    = "PLAYER_NOT_FOUND"
	CodeChallengeNotFound = "CHALLENGE_NOT_FOUND"
	CodeInternalError     = "INTERNAL_ERROR"
)

// httpError combines an HTTP status code with an APIError
type httpError struct {
	status   int
	apiError APIError
}

// Error implements error interface
func (e *httpError) Error() string {
	return e.apiError.Message
}

// WriteError writes an error response to the response writer
func WriteError(w http.ResponseWriter, err error) {
	he := toHTTPError(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(he.status)
	_ = json.NewEncoder(w).Encode(ErrorResponse{Error: he.apiError})
}

// toHTTPError converts an error to an httpError
func toHTTPError(err error) *httpError {
	// Check for specific error types
	var he *httpError
	if errors.As(err, &he) {
		return he
	}

	// Map model errors
	switch {
	case errors.Is(err, model.ErrInvalidWordLength):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidWordLength, "Word must be exactly 5 letters"}}
	case errors.Is(err, model.ErrInvalidWordFormat):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidWordFormat, "Word must contain only Russian letters"}}
	case errors.Is(err, model.ErrWordNotAccepted):
		return &httpError{http.StatusBadRequest, APIError{CodeWordNotAccepted, "Word is not an accepted Russian word"}}
	case errors.Is(err, model.ErrInvalidGameMode):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidGameMode, "Unknown game mode"}}
	case errors.Is(err, model.ErrInvalidDate):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidDate, "Date must be formatted YYYY-MM-DD"}}
	case errors.Is(err, model.ErrGameNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeGameNotFound, "Game not found"}}
	case errors.Is(err, model.ErrGameOver):
		return &httpError{http.StatusConflict, APIError{CodeGameOver, "Game is already over"}}
	case errors.Is(err, model.ErrAlreadyPlayed):
		return &httpError{http.StatusConflict, APIError{CodeAlreadyPlayed, "Today's challenge has already been played"}}
	case errors.Is(err, model.ErrPlayerNotFound):
		return &httpError{http.StatusNotFound, APIError{CodePlayerNotFound, "Player not found"}}
	case errors.Is(err, model.ErrChallengeNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeChallengeNotFound, "Challenge not found"}}

	default:
		return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
	}
}

// NewInvalidRequestError creates an invalid request error
func NewInvalidRequestError(message string) error {
	return &httpError{http.StatusBadRequest, APIError{CodeInvalidRequest, message}}
}

// NewInternalError creates an internal server error
func NewInternalError() error {
	return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
}
