package middleware

import (
	"context"
	"net/http"

	"github.com/yurkki/wordle/internal/api/apierr"
	"github.com/yurkki/wordle/internal/model"
	"github.com/yurkki/wordle/internal/services/player"
)

type contextKey string

const playerContextKey contextKey = "player"

// PlayerCookieName carries the anonymous player id between visits
const PlayerCookieName = "wordle_player_id"

// cookieMaxAge keeps the identity effectively permanent
const cookieMaxAge = 10 * 365 * 24 * 60 * 60

// PlayerIdentity creates middleware that resolves the anonymous player
// behind the request, minting one on first contact. The player rides
// on a long-lived cookie; there are no accounts to log into.
func PlayerIdentity(playerService *player.Service) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var cookieID model.PlayerID
			if cookie, err := r.Cookie(PlayerCookieName); err == nil {
				cookieID = model.PlayerID(cookie.Value)
			}

			p, err := playerService.GetOrCreate(r.Context(), cookieID)
			if err != nil {
				apierr.WriteError(w, err)
				return
			}

			if p.ID != cookieID {
				http.SetCookie(w, &http.Cookie{
					Name:     PlayerCookieName,
					Value:    string(p.ID),
					Path:     "/",
					MaxAge:   cookieMaxAge,
					HttpOnly: true,
					SameSite: http.SameSiteLaxMode,
				})
			}

			ctx := context.WithValue(r.Context(), playerContextKey, p)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetPlayer returns the resolved player from the request context
func GetPlayer(ctx context.Context) *model.Player {
	p, _ := ctx.Value(playerContextKey).(*model.Player)
	return p
}

// MustGetPlayer returns the resolved player or panics
func MustGetPlayer(ctx context.Context) *model.Player {
	p := GetPlayer(ctx)
	if p == nil {
		panic("no player in context - identity middleware not applied?")
	}
	return p
}
