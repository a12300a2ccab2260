package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/Dosada05/court-booking/models"
	"github.com/Dosada05/court-booking/repositories"
	"golang.org/x/sync/errgroup"
)

type SessionDiscountService interface {
	CreateSessionDiscount(ctx context.Context, input CreateSessionDiscountInput) (*models.SessionDiscount, error)
	GetSessionDiscountByID(ctx context.Context, id int) (*models.SessionDiscount, error)
	GetAllSessionDiscounts(ctx context.Context) ([]models.SessionDiscount, error)
	UpdateSessionDiscount(ctx context.Context, id int, input UpdateSessionDiscountInput) (*models.SessionDiscount, error)
	DeleteSessionDiscount(ctx context.Context, id int) error
}

type CreateSessionDiscountInput struct {
	SessionID int `json:"sessionId" validate:"required,gt=0"`
	SessionDiscountItem
}

type UpdateSessionDiscountInput struct {
	SessionID   *int     `json:"sessionId" validate:"omitempty,gt=0"`
	DiscountID  *int     `json:"discountId" validate:"omitempty,gt=0"`
	PlayerID    *int     `json:"playerId" validate:"omitempty,gt=0"`
	Percent     *float64 `json:"percent" validate:"omitempty,gte=0,lte=100"`
	TotalAmount *float64 `json:"totalAmount"`
}

type sessionDiscountService struct {
	sessionDiscountRepo repositories.SessionDiscountRepository
	sessionRepo         repositories.SessionRepository
	discountRepo        repositories.DiscountRepository
	playerRepo          repositories.PlayerRepository
}

func NewSessionDiscountService(
	sessionDiscountRepo repositories.SessionDiscountRepository,
	sessionRepo repositories.SessionRepository,
	discountRepo repositories.DiscountRepository,
	playerRepo repositories.PlayerRepository,
) SessionDiscountService {
	return &sessionDiscountService{
		sessionDiscountRepo: sessionDiscountRepo,
		sessionRepo:         sessionRepo,
		discountRepo:        discountRepo,
		playerRepo:          playerRepo,
	}
}

func (s *sessionDiscountService) checkReferences(ctx context.Context, sessionID, discountID, playerID int) error {
	var sessionMissing bool
	var missingDiscounts, missingPlayers []int

	g, gCtx := errgroup.WithContext(ctx)
	if sessionID > 0 {
		g.Go(func() error {
			var err error
			sessionMissing, err = sessionIsMissing(gCtx, s.sessionRepo, sessionID)
			return err
		})
	}
	if discountID > 0 {
		g.Go(func() error {
			var err error
			missingDiscounts, err = s.discountRepo.FindMissingIDs(gCtx, []int{discountID})
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
		return fmt.Errorf("failed to verify session discount references: %w", err)
	}

	switch {
	case sessionMissing:
		return newReferenceError(refSession, sessionID)
	case len(missingPlayers) > 0:
		return newReferenceError(refPlayer, missingPlayers...)
	case len(missingDiscounts) > 0:
		return newReferenceError(refDiscount, missingDiscounts...)
	}
	return nil
}

func (s *sessionDiscountService) CreateSessionDiscount(ctx context.Context, input CreateSessionDiscountInput) (*models.SessionDiscount, error) {
	playerID := 0
	if input.PlayerID != nil {
		playerID = *input.PlayerID
	}
	if err := s.checkReferences(ctx, input.SessionID, input.DiscountID, playerID); err != nil {
		return nil, err
	}

	item := &models.SessionDiscount{
		SessionID:   input.SessionID,
		DiscountID:  input.DiscountID,
		PlayerID:    input.PlayerID,
		Percent:     input.Percent,
		TotalAmount: input.TotalAmount,
	}
	if err := s.sessionDiscountRepo.Create(ctx, nil, item); err != nil {
		if errors.Is(err, repositories.ErrSessionDiscountInvalidReference) {
			return nil, discountItemReference(err, input.SessionID, input.DiscountID, input.PlayerID)
		}
		return nil, fmt.Errorf("failed to create session discount: %w", err)
	}
	return item, nil
}

func (s *sessionDiscountService) GetSessionDiscountByID(ctx context.Context, id int) (*models.SessionDiscount, error) {
	item, err := s.sessionDiscountRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrSessionDiscountNotFound) {
			return nil, ErrSessionDiscountNotFound
		}
		return nil, fmt.Errorf("failed to get session discount by id %d: %w", id, err)
	}
	return item, nil
}

func (s *sessionDiscountService) GetAllSessionDiscounts(ctx context.Context) ([]models.SessionDiscount, error) {
	items, err := s.sessionDiscountRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get all session discounts: %w", err)
	}
	if items == nil {
		return []models.SessionDiscount{}, nil
	}
	return items, nil
}

func (s *sessionDiscountService) UpdateSessionDiscount(ctx context.Context, id int, input UpdateSessionDiscountInput) (*models.SessionDiscount, error) {
	item, err := s.GetSessionDiscountByID(ctx, id)
	if err != nil {
		return nil, err
	}

	var newSessionID, newDiscountID, newPlayerID int
	if input.SessionID != nil && *input.SessionID != item.SessionID {
		newSessionID = *input.SessionID
	}
	if input.DiscountID != nil && *input.DiscountID != item.DiscountID {
		newDiscountID = *input.DiscountID
	}
	if input.PlayerID != nil && (item.PlayerID == nil || *input.PlayerID != *item.PlayerID) {
		newPlayerID = *input.PlayerID
	}
	if err := s.checkReferences(ctx, newSessionID, newDiscountID, newPlayerID); err != nil {
		return nil, err
	}

	if newSessionID > 0 {
		item.SessionID = newSessionID
	}
	if newDiscountID > 0 {
		item.DiscountID = newDiscountID
	}
	if input.PlayerID != nil {
		item.PlayerID = input.PlayerID
	}
	if input.Percent != nil {
		item.Percent = *input.Percent
	}
	if input.TotalAmount != nil {
		item.TotalAmount = *input.TotalAmount
	}

	if err := s.sessionDiscountRepo.Update(ctx, item); err != nil {
		switch {
		case errors.Is(err, repositories.ErrSessionDiscountNotFound):
			return nil, ErrSessionDiscountNotFound
		case errors.Is(err, repositories.ErrSessionDiscountInvalidReference):
			return nil, discountItemReference(err, item.SessionID, item.DiscountID, item.PlayerID)
		default:
			return nil, fmt.Errorf("failed to update session discount %d: %w", id, err)
		}
	}
	return item, nil
}

func (s *sessionDiscountService) DeleteSessionDiscount(ctx context.Context, id int) error {
	if err := s.sessionDiscountRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrSessionDiscountNotFound) {
			return ErrSessionDiscountNotFound
		}
		return fmt.Errorf("failed to delete session discount %d: %w", id, err)
	}
	return nil
}

func discountItemReference(err error, sessionID, discountID int, playerID *int) *ReferenceError {
	session := newReferenceError(refSession, sessionID)
	byColumn := map[string]*ReferenceError{
		"session_id":  session,
		"discount_id": newReferenceError(refDiscount, discountID),
	}
	if playerID != nil {
		byColumn["player_id"] = newReferenceError(refPlayer, *playerID)
	}
	return violatedReference(err, byColumn, session)
}
