package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Dosada05/court-booking/models"
	"github.com/Dosada05/court-booking/repositories"
	"github.com/Dosada05/court-booking/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type authFixture struct {
	players *mockPlayerRepo
	tokens  *mockRefreshTokenRepo
	mailer  *mockMailer
	manager *utils.TokenManager
	now     time.Time
	service *authService
}

func newAuthFixture(t *testing.T) *authFixture {
	t.Helper()
	utils.BcryptCost = bcrypt.MinCost

	f := &authFixture{
		players: &mockPlayerRepo{},
		tokens:  &mockRefreshTokenRepo{},
		mailer:  &mockMailer{},
		manager: utils.NewTokenManager("test-secret", time.Hour),
		now:     time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC),
	}
	svc := NewAuthService(AuthServiceDeps{
		PlayerRepo:      f.players,
		TokenRepo:       f.tokens,
		Tokens:          f.manager,
		RefreshTokenTTL: 7 * 24 * time.Hour,
		Mailer:          f.mailer,
	}).(*authService)
	svc.now = func() time.Time { return f.now }
	f.service = svc
	return f
}

func playerWithPassword(t *testing.T, id int, password string) *models.Player {
	t.Helper()
	hash, err := utils.HashPassword(password)
	require.NoError(t, err)
	return &models.Player{ID: id, Name: "Alice", UserName: "alice", PasswordHash: hash}
}

func TestLogin_InvalidCredentials(t *testing.T) {
	f := newAuthFixture(t)
	f.players.On("GetByUserName", mock.Anything, "ghost").Return(nil, repositories.ErrPlayerNotFound)
	f.players.On("GetByUserName", mock.Anything, "alice").Return(playerWithPassword(t, 1, "secret"), nil)

	_, err := f.service.Login(context.Background(), LoginInput{UserName: "ghost", Password: "x"}, "127.0.0.1")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = f.service.Login(context.Background(), LoginInput{UserName: "alice", Password: "wrong"}, "127.0.0.1")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	f.tokens.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestLogin_StoresNewRefreshToken(t *testing.T) {
	f := newAuthFixture(t)
	f.players.On("GetByUserName", mock.Anything, "alice").Return(playerWithPassword(t, 1, "secret"), nil)
	f.tokens.On("FindActiveByPlayerIP", mock.Anything, 1, "10.0.0.5").Return(nil, repositories.ErrRefreshTokenNotFound)
	f.tokens.On("Create", mock.Anything, mock.MatchedBy(func(tok *models.RefreshToken) bool {
		return tok.PlayerID == 1 && tok.IPAddress == "10.0.0.5" && tok.ExpiresAt.Equal(f.now.Add(7*24*time.Hour))
	})).Return(nil)

	result, err := f.service.Login(context.Background(), LoginInput{UserName: "alice", Password: "secret"}, "10.0.0.5")

	require.NoError(t, err)
	assert.Equal(t, 1, result.ID)
	assert.NotEmpty(t, result.Token)
	assert.NotEmpty(t, result.RefreshToken)

	claims, err := f.manager.ParseRefreshToken(result.RefreshToken)
	require.NoError(t, err)
	id, err := claims.PlayerID()
	require.NoError(t, err)
	assert.Equal(t, 1, id)
	f.tokens.AssertExpectations(t)
}

func TestLogin_ReusesActiveTokenForSameIP(t *testing.T) {
	f := newAuthFixture(t)
	f.players.On("GetByUserName", mock.Anything, "alice").Return(playerWithPassword(t, 1, "secret"), nil)
	f.tokens.On("FindActiveByPlayerIP", mock.Anything, 1, "127.0.0.1").
		Return(&models.RefreshToken{ID: 5, PlayerID: 1, Token: "existing-token"}, nil)
	f.tokens.On("ExtendExpiry", mock.Anything, 5, f.now.Add(7*24*time.Hour)).Return(nil)

	result, err := f.service.Login(context.Background(), LoginInput{UserName: "alice", Password: "secret"}, "127.0.0.1")

	require.NoError(t, err)
	assert.Equal(t, "existing-token", result.RefreshToken)
	f.tokens.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestRefreshAccessToken_UnknownToken(t *testing.T) {
	f := newAuthFixture(t)
	f.tokens.On("FindActiveByToken", mock.Anything, "nope").Return(nil, repositories.ErrRefreshTokenNotFound)

	_, err := f.service.RefreshAccessToken(context.Background(), "nope")

	assert.ErrorIs(t, err, ErrRefreshTokenNotExist)
}

func TestRefreshAccessToken_RejectsAccessToken(t *testing.T) {
	f := newAuthFixture(t)
	access, err := f.manager.GenerateAccessToken(1)
	require.NoError(t, err)
	f.tokens.On("FindActiveByToken", mock.Anything, access).Return(&models.RefreshToken{ID: 2, PlayerID: 1, Token: access}, nil)

	_, err = f.service.RefreshAccessToken(context.Background(), access)

	assert.ErrorIs(t, err, ErrRefreshTokenInvalid)
	f.tokens.AssertNotCalled(t, "ExtendExpiry", mock.Anything, mock.Anything, mock.Anything)
}

func TestRefreshAccessToken_IssuesAccessAndExtends(t *testing.T) {
	f := newAuthFixture(t)
	refresh, err := f.manager.GenerateRefreshToken(3)
	require.NoError(t, err)
	f.tokens.On("FindActiveByToken", mock.Anything, refresh).Return(&models.RefreshToken{ID: 9, PlayerID: 3, Token: refresh}, nil)
	f.tokens.On("ExtendExpiry", mock.Anything, 9, f.now.Add(7*24*time.Hour)).Return(nil)

	access, err := f.service.RefreshAccessToken(context.Background(), refresh)

	require.NoError(t, err)
	claims, err := f.manager.ParseAccessToken(access)
	require.NoError(t, err)
	assert.Equal(t, "3", claims.Subject)
	f.tokens.AssertExpectations(t)
}

func TestLogout_IsIdempotent(t *testing.T) {
	f := newAuthFixture(t)
	f.tokens.On("DeleteByToken", mock.Anything, "gone").Return(repositories.ErrRefreshTokenNotFound)
	f.tokens.On("DeleteByToken", mock.Anything, "broken").Return(errors.New("db down"))

	assert.NoError(t, f.service.Logout(context.Background(), "gone"))
	assert.Error(t, f.service.Logout(context.Background(), "broken"))
}

func TestForgotPassword(t *testing.T) {
	f := newAuthFixture(t)
	f.players.On("GetByEmail", mock.Anything, "nobody@example.com").Return(nil, repositories.ErrPlayerNotFound)
	f.players.On("GetByEmail", mock.Anything, "alice@example.com").Return(&models.Player{ID: 1}, nil)
	f.players.On("SetPasswordResetToken", mock.Anything, 1, mock.AnythingOfType("string"), f.now.Add(time.Hour)).Return(nil)
	f.mailer.On("SendPasswordResetEmail", mock.Anything, "alice@example.com", mock.AnythingOfType("string")).
		Return(errors.New("smtp unavailable"))

	assert.NoError(t, f.service.ForgotPassword(context.Background(), "nobody@example.com"))
	assert.NoError(t, f.service.ForgotPassword(context.Background(), "alice@example.com"))

	f.players.AssertExpectations(t)
	f.mailer.AssertNumberOfCalls(t, "SendPasswordResetEmail", 1)
}

func TestResetPassword(t *testing.T) {
	f := newAuthFixture(t)
	expired := f.now.Add(-time.Minute)
	valid := f.now.Add(30 * time.Minute)
	f.players.On("GetByPasswordResetToken", mock.Anything, "unknown").Return(nil, repositories.ErrPlayerNotFound)
	f.players.On("GetByPasswordResetToken", mock.Anything, "old").Return(&models.Player{ID: 1, PasswordResetExpiresAt: &expired}, nil)
	f.players.On("GetByPasswordResetToken", mock.Anything, "fresh").Return(&models.Player{ID: 2, PasswordResetExpiresAt: &valid}, nil)
	f.players.On("UpdatePassword", mock.Anything, 2, mock.AnythingOfType("string")).Return(nil)

	ctx := context.Background()
	assert.ErrorIs(t, f.service.ResetPassword(ctx, ResetPasswordInput{Token: "unknown", NewPassword: "pw"}), ErrResetTokenInvalid)
	assert.ErrorIs(t, f.service.ResetPassword(ctx, ResetPasswordInput{Token: "old", NewPassword: "pw"}), ErrResetTokenInvalid)
	require.NoError(t, f.service.ResetPassword(ctx, ResetPasswordInput{Token: "fresh", NewPassword: "new-password"}))

	hash := f.players.Calls[len(f.players.Calls)-1].Arguments.String(2)
	ok, err := utils.CheckPasswordHash("new-password", hash)
	require.NoError(t, err)
	assert.True(t, ok)
}

type purgeCounter struct{ total int64 }

func (p *purgeCounter) ObserveTokensPurged(n int64) { p.total += n }

func TestPurgeExpiredTokensReportsCount(t *testing.T) {
	f := newAuthFixture(t)
	f.tokens.On("DeleteExpired", mock.Anything).Return(int64(3), nil)
	counter := &purgeCounter{}

	purgeExpiredTokens(context.Background(), f.service, counter, discardLogger())

	assert.Equal(t, int64(3), counter.total)
}
