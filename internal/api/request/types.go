package request

// StartGameRequest is the request body for starting a game
type StartGameRequest struct {
	Mode string `json:"mode"`

	// ChallengeToken is required for friend mode and ignored otherwise
	ChallengeToken string `json:"challenge_token,omitempty"`
}

// GuessRequest is the request body for submitting a guess
type GuessRequest struct {
	Word string `json:"word"`

	// ElapsedSeconds is the client-measured play time so far
	ElapsedSeconds int `json:"elapsed_seconds,omitempty"`
}

// CreateChallengeRequest is the request body for creating a friend challenge
type CreateChallengeRequest struct {
	Word string `json:"word"`
}

// RenameRequest is the request body for setting a display name
type RenameRequest struct {
	DisplayName string `json:"display_name"`
}
