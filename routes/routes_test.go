package routes

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/Dosada05/court-booking/handlers"
	"github.com/Dosada05/court-booking/metrics"
	"github.com/Dosada05/court-booking/utils"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type okPinger struct{}

func (okPinger) PingContext(ctx context.Context) error { return nil }

// Сервисы не нужны: все проверяемые запросы заканчиваются до обращения к ним.
func newTestRouter(tokens *utils.TokenManager) http.Handler {
	r := chi.NewRouter()
	SetupRoutes(r, Handlers{
		Auth:            handlers.NewAuthHandler(nil),
		Player:          handlers.NewPlayerHandler(nil),
		Court:           handlers.NewCourtHandler(nil),
		Discount:        handlers.NewDiscountHandler(nil),
		Expense:         handlers.NewExpenseHandler(nil),
		Session:         handlers.NewSessionHandler(nil),
		SessionPlayer:   handlers.NewSessionPlayerHandler(nil),
		SessionDiscount: handlers.NewSessionDiscountHandler(nil),
		SessionExpense:  handlers.NewSessionExpenseHandler(nil),
		WebSocket:       handlers.NewWebSocketHandler(nil, "http://localhost:3000", nil),
		Health:          handlers.NewHealthHandler(okPinger{}),
	}, Options{
		CORSOrigin: "http://localhost:3000",
		Tokens:     tokens,
		Metrics:    metrics.NewRegistry(),
		Logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	return r
}

func serve(router http.Handler, method, path, body, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	router := newTestRouter(utils.NewTokenManager("secret", time.Hour))

	for _, path := range []string{"/players", "/courts", "/discounts", "/expenses", "/sessions",
		"/session-player", "/session-discount", "/session-expenses"} {
		rec := serve(router, http.MethodGet, path, "", "")
		assert.Equal(t, http.StatusUnauthorized, rec.Code, path)
		assert.Contains(t, rec.Body.String(), "Access token missing", path)
	}
}

func TestForeignTokenIsForbidden(t *testing.T) {
	router := newTestRouter(utils.NewTokenManager("secret", time.Hour))
	foreign, err := utils.NewTokenManager("other", time.Hour).GenerateAccessToken(1)
	require.NoError(t, err)

	rec := serve(router, http.MethodGet, "/courts", "", foreign)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestValidTokenReachesHandler(t *testing.T) {
	tokens := utils.NewTokenManager("secret", time.Hour)
	router := newTestRouter(tokens)
	token, err := tokens.GenerateAccessToken(1)
	require.NoError(t, err)

	rec := serve(router, http.MethodGet, "/courts/abc", "", token)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid: id is not a positive integer")
}

func TestPlayerRegistrationIsPublic(t *testing.T) {
	router := newTestRouter(utils.NewTokenManager("secret", time.Hour))

	rec := serve(router, http.MethodPost, "/players", `{}`, "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "name is required")
}

func TestPublicEndpoints(t *testing.T) {
	router := newTestRouter(utils.NewTokenManager("secret", time.Hour))

	rec := serve(router, http.MethodGet, "/healthz", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = serve(router, http.MethodGet, "/metrics", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "http_requests_total")

	rec = serve(router, http.MethodGet, "/swagger/doc.json", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "/sessions")
}

func TestAuthRoutesArePublic(t *testing.T) {
	router := newTestRouter(utils.NewTokenManager("secret", time.Hour))

	rec := serve(router, http.MethodPost, "/auth/login", `{"userName":""}`, "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "userName is required")
}
