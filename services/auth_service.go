package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/Dosada05/court-booking/models"
	"github.com/Dosada05/court-booking/repositories"
	"github.com/Dosada05/court-booking/utils"
	"github.com/google/uuid"
)

const passwordResetTTL = time.Hour

type AuthService interface {
	Login(ctx context.Context, input LoginInput, ipAddress string) (*models.AuthenticatedPlayer, error)
	RefreshAccessToken(ctx context.Context, refreshToken string) (string, error)
	Logout(ctx context.Context, refreshToken string) error
	ForgotPassword(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, input ResetPasswordInput) error
	PurgeExpiredTokens(ctx context.Context) (int64, error)
}

type LoginInput struct {
	UserName string `json:"userName" validate:"required,max=50"`
	Password string `json:"password" validate:"required,max=50"`
}

type RefreshTokenInput struct {
	RefreshToken string `json:"refreshToken" validate:"required"`
}

type ForgotPasswordInput struct {
	Email string `json:"email" validate:"required,email,max=50"`
}

type ResetPasswordInput struct {
	Token       string `json:"token" validate:"required"`
	NewPassword string `json:"newPassword" validate:"required,max=50"`
}

// PasswordResetMailer доставляет ссылку на сброс пароля.
type PasswordResetMailer interface {
	SendPasswordResetEmail(ctx context.Context, email, resetToken string) error
}

type AuthServiceDeps struct {
	PlayerRepo      repositories.PlayerRepository
	TokenRepo       repositories.RefreshTokenRepository
	Tokens          *utils.TokenManager
	RefreshTokenTTL time.Duration
	Mailer          PasswordResetMailer
	Logger          *slog.Logger
}

type authService struct {
	playerRepo repositories.PlayerRepository
	tokenRepo  repositories.RefreshTokenRepository
	tokens     *utils.TokenManager
	refreshTTL time.Duration
	mailer     PasswordResetMailer
	logger     *slog.Logger
	now        func() time.Time
}

func NewAuthService(deps AuthServiceDeps) AuthService {
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &authService{
		playerRepo: deps.PlayerRepo,
		tokenRepo:  deps.TokenRepo,
		tokens:     deps.Tokens,
		refreshTTL: deps.RefreshTokenTTL,
		mailer:     deps.Mailer,
		logger:     logger,
		now:        time.Now,
	}
}

func (s *authService) Login(ctx context.Context, input LoginInput, ipAddress string) (*models.AuthenticatedPlayer, error) {
	player, err := s.playerRepo.GetByUserName(ctx, input.UserName)
	if err != nil {
		if errors.Is(err, repositories.ErrPlayerNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to find player by username: %w", err)
	}

	ok, err := utils.CheckPasswordHash(input.Password, player.PasswordHash)
	if err != nil {
		return nil, fmt.Errorf("failed to compare password hash: %w", err)
	}
	if !ok {
		return nil, ErrInvalidCredentials
	}

	accessToken, err := s.tokens.GenerateAccessToken(player.ID)
	if err != nil {
		return nil, err
	}

	expiresAt := s.now().Add(s.refreshTTL)
	refreshToken, err := s.issueRefreshToken(ctx, player.ID, ipAddress, expiresAt)
	if err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "player logged in", slog.Int("player_id", player.ID), slog.String("ip", ipAddress))

	return &models.AuthenticatedPlayer{
		Player:       *player,
		Token:        accessToken,
		RefreshToken: refreshToken,
	}, nil
}

// issueRefreshToken reuses the active token of the (player, ip) pair or stores a new one.
func (s *authService) issueRefreshToken(ctx context.Context, playerID int, ipAddress string, expiresAt time.Time) (string, error) {
	existing, err := s.tokenRepo.FindActiveByPlayerIP(ctx, playerID, ipAddress)
	switch {
	case err == nil:
		if err := s.tokenRepo.ExtendExpiry(ctx, existing.ID, expiresAt); err != nil {
			return "", fmt.Errorf("failed to extend refresh token: %w", err)
		}
		return existing.Token, nil
	case !errors.Is(err, repositories.ErrRefreshTokenNotFound):
		return "", fmt.Errorf("failed to find refresh token: %w", err)
	}

	value, err := s.tokens.GenerateRefreshToken(playerID)
	if err != nil {
		return "", err
	}
	token := &models.RefreshToken{
		PlayerID:  playerID,
		Token:     value,
		IPAddress: ipAddress,
		ExpiresAt: expiresAt,
	}
	if err := s.tokenRepo.Create(ctx, token); err != nil {
		return "", fmt.Errorf("failed to store refresh token: %w", err)
	}
	return value, nil
}

func (s *authService) RefreshAccessToken(ctx context.Context, refreshToken string) (string, error) {
	stored, err := s.tokenRepo.FindActiveByToken(ctx, refreshToken)
	if err != nil {
		if errors.Is(err, repositories.ErrRefreshTokenNotFound) {
			return "", ErrRefreshTokenNotExist
		}
		return "", fmt.Errorf("failed to find refresh token: %w", err)
	}

	claims, err := s.tokens.ParseRefreshToken(refreshToken)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrRefreshTokenInvalid, err)
	}
	playerID, err := claims.PlayerID()
	if err != nil || playerID != stored.PlayerID {
		return "", ErrRefreshTokenInvalid
	}

	accessToken, err := s.tokens.GenerateAccessToken(playerID)
	if err != nil {
		return "", err
	}
	if err := s.tokenRepo.ExtendExpiry(ctx, stored.ID, s.now().Add(s.refreshTTL)); err != nil {
		return "", fmt.Errorf("failed to extend refresh token: %w", err)
	}
	return accessToken, nil
}

// Logout is idempotent: an unknown token is not an error.
func (s *authService) Logout(ctx context.Context, refreshToken string) error {
	err := s.tokenRepo.DeleteByToken(ctx, refreshToken)
	if err != nil && !errors.Is(err, repositories.ErrRefreshTokenNotFound) {
		return fmt.Errorf("failed to delete refresh token: %w", err)
	}
	return nil
}

// ForgotPassword never reveals whether the email is registered.
func (s *authService) ForgotPassword(ctx context.Context, email string) error {
	player, err := s.playerRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repositories.ErrPlayerNotFound) {
			s.logger.InfoContext(ctx, "password reset requested for unknown email")
			return nil
		}
		return fmt.Errorf("failed to find player by email: %w", err)
	}

	resetToken := uuid.NewString()
	if err := s.playerRepo.SetPasswordResetToken(ctx, player.ID, resetToken, s.now().Add(passwordResetTTL)); err != nil {
		return fmt.Errorf("failed to store password reset token: %w", err)
	}

	if s.mailer == nil {
		return nil
	}
	if err := s.mailer.SendPasswordResetEmail(ctx, email, resetToken); err != nil {
		s.logger.ErrorContext(ctx, "failed to send password reset email",
			slog.Int("player_id", player.ID), slog.Any("error", err))
	}
	return nil
}

func (s *authService) ResetPassword(ctx context.Context, input ResetPasswordInput) error {
	player, err := s.playerRepo.GetByPasswordResetToken(ctx, input.Token)
	if err != nil {
		if errors.Is(err, repositories.ErrPlayerNotFound) {
			return ErrResetTokenInvalid
		}
		return fmt.Errorf("failed to find player by reset token: %w", err)
	}
	if player.PasswordResetExpiresAt == nil || !player.PasswordResetExpiresAt.After(s.now()) {
		return ErrResetTokenInvalid
	}

	hash, err := utils.HashPassword(input.NewPassword)
	if err != nil {
		return err
	}
	if err := s.playerRepo.UpdatePassword(ctx, player.ID, hash); err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}
	return nil
}

func (s *authService) PurgeExpiredTokens(ctx context.Context) (int64, error) {
	n, err := s.tokenRepo.DeleteExpired(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to purge expired refresh tokens: %w", err)
	}
	return n, nil
}
