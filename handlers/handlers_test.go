package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/Dosada05/court-booking/models"
	"github.com/Dosada05/court-booking/services"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type testEnvelope struct {
	Success        bool            `json:"success"`
	Message        string          `json:"message"`
	ResponseObject json.RawMessage `json:"responseObject"`
	StatusCode     int             `json:"statusCode"`
}

func doRequest(t *testing.T, router http.Handler, method, path, body string) (*httptest.ResponseRecorder, testEnvelope) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var env testEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())
	return rec, env
}

func playerRouter(svc services.PlayerService) http.Handler {
	h := NewPlayerHandler(svc)
	r := chi.NewRouter()
	r.Get("/players", h.GetPlayers)
	r.Post("/players", h.CreatePlayer)
	r.Get("/players/{id}", h.GetPlayer)
	r.Put("/players/{id}", h.UpdatePlayer)
	r.Delete("/players/{id}", h.DeletePlayer)
	return r
}

func TestGetPlayers_Envelope(t *testing.T) {
	svc := new(mockPlayerService)
	svc.On("GetAllPlayers", mock.Anything).Return([]models.Player{{ID: 1, Name: "Ann", UserName: "ann"}}, nil)

	rec, env := doRequest(t, playerRouter(svc), http.MethodGet, "/players", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, env.Success)
	assert.Equal(t, "Players found", env.Message)
	assert.Equal(t, http.StatusOK, env.StatusCode)

	var players []map[string]interface{}
	require.NoError(t, json.Unmarshal(env.ResponseObject, &players))
	require.Len(t, players, 1)
	assert.Equal(t, "ann", players[0]["userName"])
	assert.NotContains(t, players[0], "passwordHash")
	svc.AssertExpectations(t)
}

func TestGetPlayer_NotFound(t *testing.T) {
	svc := new(mockPlayerService)
	svc.On("GetPlayerByID", mock.Anything, 42).Return(nil, fmt.Errorf("%w: lookup", services.ErrPlayerNotFound))

	rec, env := doRequest(t, playerRouter(svc), http.MethodGet, "/players/42", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.False(t, env.Success)
	assert.Equal(t, "Player not found", env.Message)
}

func TestGetPlayer_BadID(t *testing.T) {
	svc := new(mockPlayerService)

	rec, env := doRequest(t, playerRouter(svc), http.MethodGet, "/players/abc", "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid: id is not a positive integer", env.Message)
	svc.AssertNotCalled(t, "GetPlayerByID", mock.Anything, mock.Anything)
}

func TestCreatePlayer_ValidationMessage(t *testing.T) {
	svc := new(mockPlayerService)

	rec, env := doRequest(t, playerRouter(svc), http.MethodPost, "/players", `{"email":"not-an-email"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid: name is required, email is not a valid email, userName is required, password is required", env.Message)
	svc.AssertNotCalled(t, "CreatePlayer", mock.Anything, mock.Anything)
}

func TestCreatePlayer_EmptyBody(t *testing.T) {
	svc := new(mockPlayerService)

	rec, env := doRequest(t, playerRouter(svc), http.MethodPost, "/players", "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Body is empty", env.Message)
}

func TestCreatePlayer_UnknownField(t *testing.T) {
	svc := new(mockPlayerService)

	rec, env := doRequest(t, playerRouter(svc), http.MethodPost, "/players", `{"name":"a","userName":"a","password":"x","role":"admin"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, `body contains unknown key "role"`, env.Message)
}

func TestCreatePlayer_Created(t *testing.T) {
	svc := new(mockPlayerService)
	input := services.CreatePlayerInput{Name: "Ann", UserName: "ann", Password: "secret"}
	svc.On("CreatePlayer", mock.Anything, input).Return(&models.Player{ID: 7, Name: "Ann", UserName: "ann"}, nil)

	rec, env := doRequest(t, playerRouter(svc), http.MethodPost, "/players", `{"name":"Ann","userName":"ann","password":"secret"}`)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "Player created", env.Message)
	assert.Equal(t, http.StatusCreated, env.StatusCode)
	svc.AssertExpectations(t)
}

func TestCreatePlayer_Conflict(t *testing.T) {
	svc := new(mockPlayerService)
	svc.On("CreatePlayer", mock.Anything, mock.Anything).Return(nil, services.ErrPlayerIdentityConflict)

	rec, env := doRequest(t, playerRouter(svc), http.MethodPost, "/players", `{"name":"Ann","userName":"ann","password":"secret"}`)

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, services.ErrPlayerIdentityConflict.Error(), env.Message)
}

func TestDeletePlayer_InUse(t *testing.T) {
	svc := new(mockPlayerService)
	svc.On("DeletePlayer", mock.Anything, 3).Return(services.ErrPlayerInUse)

	rec, env := doRequest(t, playerRouter(svc), http.MethodDelete, "/players/3", "")

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "Player is referenced by sessions", env.Message)
}

func TestUnexpectedErrorHidesDetails(t *testing.T) {
	svc := new(mockPlayerService)
	svc.On("GetAllPlayers", mock.Anything).Return(nil, errors.New("pq: connection refused"))

	rec, env := doRequest(t, playerRouter(svc), http.MethodGet, "/players", "")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, internalErrorMessage, env.Message)
	assert.False(t, env.Success)
}

func sessionRouter(svc services.SessionService) http.Handler {
	h := NewSessionHandler(svc)
	r := chi.NewRouter()
	r.Post("/sessions", h.CreateSessions)
	r.Get("/sessions/{id}", h.GetSession)
	return r
}

const sessionBatchBody = `[{
	"courtId": 1,
	"datePlay": "2024-05-01T00:00:00Z",
	"courtCost": 300,
	"startTime": "2024-05-01T18:00:00Z",
	"endTime": "2024-05-01T20:00:00Z",
	"players": [{"playerId": 5, "startTime": "2024-05-01T18:00:00Z", "endTime": "2024-05-01T20:00:00Z", "totalAmount": 150, "isPayment": false}]
}]`

func TestCreateSessions_Created(t *testing.T) {
	svc := new(mockSessionService)
	details := []models.SessionDetails{{Session: models.Session{ID: 11, CourtID: 1, CourtCost: 300}}}
	svc.On("CreateSessions", mock.Anything, mock.MatchedBy(func(in []services.CreateSessionInput) bool {
		return len(in) == 1 && in[0].CourtID == 1 && len(in[0].Players) == 1 &&
			in[0].Players[0].PlayerID == 5 && in[0].StartTime.Equal(time.Date(2024, 5, 1, 18, 0, 0, 0, time.UTC))
	})).Return(details, nil)

	rec, env := doRequest(t, sessionRouter(svc), http.MethodPost, "/sessions", sessionBatchBody)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "Session created", env.Message)
	svc.AssertExpectations(t)
}

func TestCreateSessions_ReferenceError(t *testing.T) {
	svc := new(mockSessionService)
	svc.On("CreateSessions", mock.Anything, mock.Anything).
		Return(nil, &services.ReferenceError{Entity: "Player", IDs: []int{999}})

	rec, env := doRequest(t, sessionRouter(svc), http.MethodPost, "/sessions", sessionBatchBody)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Player with id 999 not found", env.Message)
}

func TestCreateSessions_StepFailure(t *testing.T) {
	svc := new(mockSessionService)
	svc.On("CreateSessions", mock.Anything, mock.Anything).
		Return(nil, fmt.Errorf("%w: %w", services.ErrSessionPlayerNotCreated, errors.New("insert failed")))

	rec, env := doRequest(t, sessionRouter(svc), http.MethodPost, "/sessions", sessionBatchBody)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "Session player not created", env.Message)
}

func TestCreateSessions_ValidatesEveryElement(t *testing.T) {
	svc := new(mockSessionService)

	rec, env := doRequest(t, sessionRouter(svc), http.MethodPost, "/sessions",
		`[{"datePlay":"2024-05-01T00:00:00Z","startTime":"2024-05-01T18:00:00Z","endTime":"2024-05-01T20:00:00Z"}]`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, env.Message, "courtId is required")
	svc.AssertNotCalled(t, "CreateSessions", mock.Anything, mock.Anything)
}

func TestCreateSessions_RejectsObjectBody(t *testing.T) {
	svc := new(mockSessionService)

	rec, env := doRequest(t, sessionRouter(svc), http.MethodPost, "/sessions", `{"courtId":1}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, env.Message, "incorrect JSON type")
}

func TestGetSession_Details(t *testing.T) {
	svc := new(mockSessionService)
	svc.On("GetSessionByID", mock.Anything, 11).Return(&models.SessionDetails{
		Session: models.Session{ID: 11, CourtID: 1},
		Players: []models.SessionPlayer{},
	}, nil)

	rec, env := doRequest(t, sessionRouter(svc), http.MethodGet, "/sessions/11", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Session found", env.Message)
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(env.ResponseObject, &body))
	assert.EqualValues(t, 11, body["id"])
	assert.Contains(t, body, "players")
}

func courtImageRequest(t *testing.T, path string, payload []byte) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("image", "court.png")
	require.NoError(t, err)
	_, err = part.Write(payload)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func TestUploadCourtImage_StorageUnavailable(t *testing.T) {
	svc := new(mockCourtService)
	svc.On("UploadCourtImage", mock.Anything, 4, mock.Anything, mock.Anything).Return(nil, services.ErrStorageUnavailable)

	h := NewCourtHandler(svc)
	r := chi.NewRouter()
	r.Post("/courts/{id}/image", h.UploadCourtImage)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, courtImageRequest(t, "/courts/4/image", []byte("\x89PNG")))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	var env testEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	assert.Equal(t, "Image storage is not configured", env.Message)
}

func TestUploadCourtImage_MissingFile(t *testing.T) {
	svc := new(mockCourtService)
	h := NewCourtHandler(svc)
	r := chi.NewRouter()
	r.Post("/courts/{id}/image", h.UploadCourtImage)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	require.NoError(t, mw.WriteField("note", "no file"))
	require.NoError(t, mw.Close())
	req := httptest.NewRequest(http.MethodPost, "/courts/4/image", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid: image is required")
	svc.AssertNotCalled(t, "UploadCourtImage", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func authRouter(svc services.AuthService) http.Handler {
	h := NewAuthHandler(svc)
	r := chi.NewRouter()
	r.Post("/auth/login", h.Login)
	r.Post("/auth/refresh-token", h.RefreshToken)
	r.Post("/auth/logout", h.Logout)
	r.Post("/auth/forgot-password", h.ForgotPassword)
	return r
}

func TestLogin_PassesNormalizedIP(t *testing.T) {
	svc := new(mockAuthService)
	svc.On("Login", mock.Anything, services.LoginInput{UserName: "ann", Password: "secret"}, "192.0.2.1").
		Return(&models.AuthenticatedPlayer{Player: models.Player{ID: 1, UserName: "ann"}, Token: "a", RefreshToken: "r"}, nil)

	rec, env := doRequest(t, authRouter(svc), http.MethodPost, "/auth/login", `{"userName":"ann","password":"secret"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Login success", env.Message)
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(env.ResponseObject, &body))
	assert.Equal(t, "a", body["token"])
	assert.Equal(t, "r", body["refreshToken"])
	svc.AssertExpectations(t)
}

func TestLogin_InvalidCredentials(t *testing.T) {
	svc := new(mockAuthService)
	svc.On("Login", mock.Anything, mock.Anything, mock.Anything).Return(nil, services.ErrInvalidCredentials)

	rec, env := doRequest(t, authRouter(svc), http.MethodPost, "/auth/login", `{"userName":"ann","password":"bad"}`)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Invalid username or password", env.Message)
}

func TestRefreshToken_NotExist(t *testing.T) {
	svc := new(mockAuthService)
	svc.On("RefreshAccessToken", mock.Anything, "stale").Return("", services.ErrRefreshTokenNotExist)

	rec, env := doRequest(t, authRouter(svc), http.MethodPost, "/auth/refresh-token", `{"refreshToken":"stale"}`)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "Refresh token is not exist in system", env.Message)
}

func TestRefreshToken_ReturnsToken(t *testing.T) {
	svc := new(mockAuthService)
	svc.On("RefreshAccessToken", mock.Anything, "good").Return("new-access", nil)

	rec, env := doRequest(t, authRouter(svc), http.MethodPost, "/auth/refresh-token", `{"refreshToken":"good"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Refresh token success", env.Message)
	assert.JSONEq(t, `{"token":"new-access"}`, string(env.ResponseObject))
}

func TestLogout_ReturnsTrue(t *testing.T) {
	svc := new(mockAuthService)
	svc.On("Logout", mock.Anything, "any").Return(nil)

	rec, env := doRequest(t, authRouter(svc), http.MethodPost, "/auth/logout", `{"refreshToken":"any"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Logout success", env.Message)
	assert.Equal(t, "true", string(env.ResponseObject))
}

func TestForgotPassword_RequiresEmail(t *testing.T) {
	svc := new(mockAuthService)

	rec, env := doRequest(t, authRouter(svc), http.MethodPost, "/auth/forgot-password", `{"email":"nope"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid: email is not a valid email", env.Message)
}

func TestHealth(t *testing.T) {
	rec, env := doRequest(t, http.HandlerFunc(NewHealthHandler(fakePinger{}).Health), http.MethodGet, "/healthz", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, env.Success)

	rec, env = doRequest(t, http.HandlerFunc(NewHealthHandler(fakePinger{err: errors.New("down")}).Health), http.MethodGet, "/healthz", "")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Equal(t, "Database unavailable", env.Message)
}
