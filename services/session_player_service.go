package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Dosada05/court-booking/models"
	"github.com/Dosada05/court-booking/repositories"
	"golang.org/x/sync/errgroup"
)

type SessionPlayerService interface {
	CreateSessionPlayer(ctx context.Context, input CreateSessionPlayerInput) (*models.SessionPlayer, error)
	GetSessionPlayerByID(ctx context.Context, id int) (*models.SessionPlayer, error)
	GetAllSessionPlayers(ctx context.Context) ([]models.SessionPlayer, error)
	UpdateSessionPlayer(ctx context.Context, id int, input UpdateSessionPlayerInput) (*models.SessionPlayer, error)
	DeleteSessionPlayer(ctx context.Context, id int) error
}

type CreateSessionPlayerInput struct {
	SessionID int `json:"sessionId" validate:"required,gt=0"`
	SessionPlayerItem
}

type UpdateSessionPlayerInput struct {
	SessionID   *int       `json:"sessionId" validate:"omitempty,gt=0"`
	PlayerID    *int       `json:"playerId" validate:"omitempty,gt=0"`
	StartTime   *time.Time `json:"startTime"`
	EndTime     *time.Time `json:"endTime"`
	TotalAmount *float64   `json:"totalAmount"`
	IsPayment   *bool      `json:"isPayment"`
}

type sessionPlayerService struct {
	sessionPlayerRepo repositories.SessionPlayerRepository
	sessionRepo       repositories.SessionRepository
	playerRepo        repositories.PlayerRepository
}

func NewSessionPlayerService(
	sessionPlayerRepo repositories.SessionPlayerRepository,
	sessionRepo repositories.SessionRepository,
	playerRepo repositories.PlayerRepository,
) SessionPlayerService {
	return &sessionPlayerService{
		sessionPlayerRepo: sessionPlayerRepo,
		sessionRepo:       sessionRepo,
		playerRepo:        playerRepo,
	}
}

// checkReferences проверяет сессию и игрока параллельно. Нулевой id пропускается.
func (s *sessionPlayerService) checkReferences(ctx context.Context, sessionID, playerID int) error {
	var sessionMissing bool
	var missingPlayers []int

	g, gCtx := errgroup.WithContext(ctx)
	if sessionID > 0 {
		g.Go(func() error {
			var err error
			sessionMissing, err = sessionIsMissing(gCtx, s.sessionRepo, sessionID)
			return err
		})
	}
	if playerID > 0 {
		g.Go(func() error {
			var err error
			missingPlayers, err = s.playerRepo.FindMissingIDs(gCtx, []int{playerID})
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return fmt.Errorf("failed to verify session player references: %w", err)
	}

	if sessionMissing {
		return newReferenceError(refSession, sessionID)
	}
	if len(missingPlayers) > 0 {
		return newReferenceError(refPlayer, missingPlayers...)
	}
	return nil
}

func (s *sessionPlayerService) CreateSessionPlayer(ctx context.Context, input CreateSessionPlayerInput) (*models.SessionPlayer, error) {
	if err := s.checkReferences(ctx, input.SessionID, input.PlayerID); err != nil {
		return nil, err
	}

	item := &models.SessionPlayer{
		SessionID:   input.SessionID,
		PlayerID:    input.PlayerID,
		StartTime:   input.StartTime,
		EndTime:     input.EndTime,
		TotalAmount: input.TotalAmount,
		IsPayment:   input.IsPayment,
	}
	if err := s.sessionPlayerRepo.Create(ctx, nil, item); err != nil {
		if errors.Is(err, repositories.ErrSessionPlayerInvalidReference) {
			return nil, playerItemReference(err, input.SessionID, input.PlayerID)
		}
		return nil, fmt.Errorf("failed to create session player: %w", err)
	}
	return item, nil
}

func (s *sessionPlayerService) GetSessionPlayerByID(ctx context.Context, id int) (*models.SessionPlayer, error) {
	item, err := s.sessionPlayerRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrSessionPlayerNotFound) {
			return nil, ErrSessionPlayerNotFound
		}
		return nil, fmt.Errorf("failed to get session player by id %d: %w", id, err)
	}
	return item, nil
}

func (s *sessionPlayerService) GetAllSessionPlayers(ctx context.Context) ([]models.SessionPlayer, error) {
	items, err := s.sessionPlayerRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get all session players: %w", err)
	}
	if items == nil {
		return []models.SessionPlayer{}, nil
	}
	return items, nil
}

func (s *sessionPlayerService) UpdateSessionPlayer(ctx context.Context, id int, input UpdateSessionPlayerInput) (*models.SessionPlayer, error) {
	item, err := s.GetSessionPlayerByID(ctx, id)
	if err != nil {
		return nil, err
	}

	var newSessionID, newPlayerID int
	if input.SessionID != nil && *input.SessionID != item.SessionID {
		newSessionID = *input.SessionID
	}
	if input.PlayerID != nil && *input.PlayerID != item.PlayerID {
		newPlayerID = *input.PlayerID
	}
	if err := s.checkReferences(ctx, newSessionID, newPlayerID); err != nil {
		return nil, err
	}

	if newSessionID > 0 {
		item.SessionID = newSessionID
	}
	if newPlayerID > 0 {
		item.PlayerID = newPlayerID
	}
	if input.StartTime != nil {
		item.StartTime = *input.StartTime
	}
	if input.EndTime != nil {
		item.EndTime = *input.EndTime
	}
	if input.TotalAmount != nil {
		item.TotalAmount = *input.TotalAmount
	}
	if input.IsPayment != nil {
		item.IsPayment = *input.IsPayment
	}

	if err := s.sessionPlayerRepo.Update(ctx, item); err != nil {
		switch {
		case errors.Is(err, repositories.ErrSessionPlayerNotFound):
			return nil, ErrSessionPlayerNotFound
		case errors.Is(err, repositories.ErrSessionPlayerInvalidReference):
			return nil, playerItemReference(err, item.SessionID, item.PlayerID)
		default:
			return nil, fmt.Errorf("failed to update session player %d: %w", id, err)
		}
	}
	return item, nil
}

func (s *sessionPlayerService) DeleteSessionPlayer(ctx context.Context, id int) error {
	if err := s.sessionPlayerRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrSessionPlayerNotFound) {
			return ErrSessionPlayerNotFound
		}
		return fmt.Errorf("failed to delete session player %d: %w", id, err)
	}
	return nil
}

func playerItemReference(err error, sessionID, playerID int) *ReferenceError {
	session := newReferenceError(refSession, sessionID)
	return violatedReference(err, map[string]*ReferenceError{
		"session_id": session,
		"player_id":  newReferenceError(refPlayer, playerID),
	}, session)
}
