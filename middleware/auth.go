package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/Dosada05/court-booking/utils"
)

type contextKey string

const (
	playerContextKey contextKey = "player"
	playerSlotKey    contextKey = "player_slot"
)

// TokenParser проверяет access-токен. Реализуется utils.TokenManager.
type TokenParser interface {
	ParseAccessToken(tokenString string) (*utils.Claims, error)
}

// Authenticate требует заголовок "Authorization: Bearer <token>" с валидным access-токеном.
func Authenticate(tokens TokenParser) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				writeError(w, http.StatusUnauthorized, "Access token missing")
				return
			}

			scheme, token, found := strings.Cut(header, " ")
			token = strings.TrimSpace(token)
			if !found || !strings.EqualFold(scheme, "Bearer") || token == "" {
				writeError(w, http.StatusUnauthorized, "Access token malformed")
				return
			}

			claims, err := tokens.ParseAccessToken(token)
			if err != nil {
				writeError(w, http.StatusForbidden, "Invalid or expired token")
				return
			}
			playerID, err := claims.PlayerID()
			if err != nil {
				writeError(w, http.StatusForbidden, "Invalid or expired token")
				return
			}

			if slot, ok := r.Context().Value(playerSlotKey).(*int); ok {
				*slot = playerID
			}
			ctx := context.WithValue(r.Context(), playerContextKey, playerID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// withPlayerSlot lets an outer middleware observe the player authenticated further down the chain.
func withPlayerSlot(ctx context.Context, slot *int) context.Context {
	return context.WithValue(ctx, playerSlotKey, slot)
}
