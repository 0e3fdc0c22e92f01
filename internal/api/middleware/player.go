package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/Picorims/game-hub/internal/api/apierr"
	"github.com/Picorims/game-hub/internal/middleware"
	"github.com/Picorims/game-hub/internal/model"
	"github.com/Picorims/game-hub/internal/services/registry"
)

type contextKey string

const playerContextKey contextKey = "player"

// ActingPlayer resolves the player named by the X-Player header, if any.
// Naming an unknown player is rejected.
func ActingPlayer(players *registry.Service) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			username := r.Header.Get(middleware.PlayerHeader)
			if username == "" {
				next.ServeHTTP(w, r)
				return
			}

			player, err := players.Find(r.Context(), model.Username(username))
			if errors.Is(err, model.ErrPlayerNotFound) {
				apierr.WriteError(w, apierr.NewUnauthorizedError("unknown acting player"))
				return
			}
			if err != nil {
				apierr.WriteError(w, err)
				return
			}

			ctx := context.WithValue(r.Context(), playerContextKey, player)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequirePlayer rejects requests that do not name an acting player
func RequirePlayer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if GetPlayer(r.Context()) == nil {
			apierr.WriteError(w, apierr.NewUnauthorizedError("the X-Player header is required"))
			return
		}
		next.ServeHTTP(w, r)
	})
}

// GetPlayer returns the acting player from the request context
func GetPlayer(ctx context.Context) *model.Player {
	player, _ := ctx.Value(playerContextKey).(*model.Player)
	return player
}

// MustGetPlayer returns the acting player or panics
func MustGetPlayer(ctx context.Context) *model.Player {
	player := GetPlayer(ctx)
	if player == nil {
		panic("no player in context - RequirePlayer middleware not applied?")
	}
	return player
}
