package redis

import (
	"fmt"

	"github.com/yurkki/wordle/internal/model"
)

// Key prefix for all game-related data
const keyPrefix = "wordle"

// Key generation functions for each entity type

// playerKey returns the Redis key for a Player
func playerKey(id model.PlayerID) string {
	return fmt.Sprintf("%s:player:%s", keyPrefix, id)
}

// gameKey returns the Redis key for a Game
func gameKey(id model.GameID) string {
	return fmt.Sprintf("%s:game:%s", keyPrefix, id)
}

// attemptKey returns the Redis key for an AttemptRecord
func attemptKey(date model.Date, playerID model.PlayerID) string {
	return fmt.Sprintf("%s:attempt:%s:%s", keyPrefix, date, playerID)
}

// attemptsForDateIndexKey returns the Redis key for the SET of attempt
// keys recorded on a given day
func attemptsForDateIndexKey(date model.Date) string {
	return fmt.Sprintf("%s:idx:attempts_for_date:%s", keyPrefix, date)
}

// attemptsForPlayerIndexKey returns the Redis key for the SET of attempt
// keys recorded by a given player
func attemptsForPlayerIndexKey(playerID model.PlayerID) string {
	return fmt.Sprintf("%s:idx:attempts_for_player:%s", keyPrefix, playerID)
}

// statsKey returns the Redis key for a PlayerStats projection
func statsKey(playerID model.PlayerID) string {
	return fmt.Sprintf("%s:stats:%s", keyPrefix, playerID)
}

// challengeKey returns the Redis key for a FriendChallenge
func challengeKey(token model.ChallengeToken) string {
	return fmt.Sprintf("%s:challenge:%s", keyPrefix, token)
}

// challengesIndexKey returns the Redis key for the SET of all challenge keys
func challengesIndexKey() string {
	return fmt.Sprintf("%s:idx:challenges", keyPrefix)
}

// poolKey returns the Redis key for the answer word pool, a LIST
// kept in load order
func poolKey() string {
	return fmt.Sprintf("%s:pool", keyPrefix)
}
