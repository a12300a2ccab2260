package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
)

var ErrNoPlayerInContext = errors.New("player id not found in context")

func GetPlayerIDFromContext(ctx context.Context) (int, error) {
	playerID, ok := ctx.Value(playerContextKey).(int)
	if !ok || playerID <= 0 {
		return 0, ErrNoPlayerInContext
	}
	return playerID, nil
}

// writeError пишет тот же конверт, что и handlers, не импортируя их.
func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]interface{}{
		"success":        false,
		"message":        message,
		"responseObject": nil,
		"statusCode":     status,
	})
}
