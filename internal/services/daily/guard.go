package daily

import (
	"context"
	"errors"
	"fmt"

	"github.com/yurkki/wordle/internal/model"
	"github.com/yurkki/wordle/internal/storage"
)

// Guard enforces the one-attempt-per-day rule. The uniqueness decision
// itself lives in storage's InsertAttempt; the guard wraps it with the
// read-side checks handlers need.
type Guard struct {
	storage storage.Storage
}

// NewGuard creates a new daily attempt Guard
func NewGuard(storage storage.Storage) *Guard {
	return &Guard{storage: storage}
}

// CanPlay reports whether the player still has their attempt for the
// date. When they have already played, the existing record is returned
// alongside. Storage failures propagate; an error never means
// "allowed".
func (g *Guard) CanPlay(ctx context.Context, date model.Date, playerID model.PlayerID) (bool, *model.AttemptRecord, error) {
	record, err := g.storage.GetAttempt(ctx, date, playerID)
	if err != nil {
		if errors.Is(err, model.ErrAttemptNotFound) {
			return true, nil, nil
		}
		return false, nil, err
	}
	return false, record, nil
}

// RecordIfAllowed inserts the attempt record if the player has not
// already played that date. It returns whether this call's record won
// the slot; a false with nil error means someone got there first.
func (g *Guard) RecordIfAllowed(ctx context.Context, record *model.AttemptRecord) (bool, error) {
	err := g.storage.InsertAttempt(ctx, record)
	if err != nil {
		if errors.Is(err, model.ErrAlreadyPlayed) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// RestrictionReason renders a short human explanation of why the
// player cannot play again today
func (g *Guard) RestrictionReason(record *model.AttemptRecord) string {
	at := record.CompletedAt.Format("15:04")
	if record.Success {
		return fmt.Sprintf("won in %d attempts at %s", record.Attempts, at)
	}
	return fmt.Sprintf("lost at %s", at)
}

// GuardInterface for dependency injection
type GuardInterface interface {
	CanPlay(ctx context.Context, date model.Date, playerID model.PlayerID) (bool, *model.AttemptRecord, error)
	RecordIfAllowed(ctx context.Context, record *model.AttemptRecord) (bool, error)
	RestrictionReason(record *model.AttemptRecord) string
}

var _ GuardInterface = (*Guard)(nil)
