package handler

import (
	"net/http"

	"github.com/yurkki/wordle/internal/api/apierr"
)

// Re-export from apierr for convenience
type APIError = apierr.APIError
type ErrorResponse = apierr.ErrorResponse

// Re-export error codes
const (
	CodeInvalidRequest    = apierr.CodeInvalidRequest
	CodeInvalidWordLength = apierr.CodeInvalidWordLength
	CodeInvalidWordFormat = apierr.CodeInvalidWordFormat
	CodeWordNotAccepted   = apierr.CodeWordNotAccepted
	CodeInvalidGameMode   = apierr.CodeInvalidGameMode
	CodeInvalidDate       = apierr.CodeInvalidDate
	CodeGameNotFound      = apierr.CodeGameNotFound
	CodeGameOver          = apierr.CodeGameOver
	CodeAlreadyPlayed     = apierr.CodeAlreadyPlayed
	CodePlayerNotFound    = apierr.CodePlayerNotFound
	CodeChallengeNotFound = apierr.CodeChallengeNotFound
	CodeInternalError     = apierr.CodeInternalError
)

// WriteError writes an error response to the response writer
func WriteError(w http.ResponseWriter, err error) {
	apierr.WriteError(w, err)
}

// NewInvalidRequestError creates an invalid request error
func NewInvalidRequestError(message string) error {
	return apierr.NewInvalidRequestError(message)
}

// NewInternalError creates an internal server error
func NewInternalError() error {
	return apierr.NewInternalError()
}
