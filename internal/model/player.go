package model

import "time"

// PlayerID uniquely identifies a player. IDs are opaque and issued
// server-side; persistence across visits rides on a long-lived cookie.
type PlayerID string

// Player is a game participant. There are no accounts: every player is
// anonymous and known only by their issued ID.
type Player struct {
	ID          PlayerID
	DisplayName string
	CreatedAt   time.Time
}
