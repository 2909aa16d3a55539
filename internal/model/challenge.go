package model

import "time"

// ChallengeToken is the opaque share token for a friend challenge.
// Tokens are unique but not secret: they gate access to a single
// friend-chosen word, nothing sensitive.
type ChallengeToken string

// FriendChallenge maps a share token to the word a friend picked.
// Read-only after creation; swept after the retention window.
type FriendChallenge struct {
	Token     ChallengeToken
	Word      Word
	CreatedAt time.Time
}
