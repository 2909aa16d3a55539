package clock

import "time"

// gameZone is the timezone all calendar-day boundaries are computed in.
// The word of the day and the one-attempt rule roll over at midnight in
// this zone regardless of where a player connects from.
const gameZone = "Europe/Moscow"

// Clock provides time operations that can be mocked for testing.
// Implementations must return times already located in the game
// timezone so callers can derive calendar days directly.
type Clock interface {
	Now() time.Time
}

// GameClock implements Clock using the system clock pinned to the game
// timezone
type GameClock struct {
	loc *time.Location
}

// New creates a new GameClock
func New() *GameClock {
	loc, err := time.LoadLocation(gameZone)
	if err != nil {
		// UTC+3 without DST, matches Europe/Moscow since 2014
		loc = time.FixedZone("MSK", 3*60*60)
	}
	return &GameClock{loc: loc}
}

// Now returns the current time in the game timezone
func (c *GameClock) Now() time.Time {
	return time.Now().In(c.loc)
}
