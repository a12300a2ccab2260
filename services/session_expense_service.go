package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/Dosada05/court-booking/models"
	"github.com/Dosada05/court-booking/repositories"
	"golang.org/x/sync/errgroup"
)

type SessionExpenseService interface {
	CreateSessionExpense(ctx context.Context, input CreateSessionExpenseInput) (*models.SessionExpense, error)
	GetSessionExpenseByID(ctx context.Context, id int) (*models.SessionExpense, error)
	GetAllSessionExpenses(ctx context.Context) ([]models.SessionExpense, error)
	UpdateSessionExpense(ctx context.Context, id int, input UpdateSessionExpenseInput) (*models.SessionExpense, error)
	DeleteSessionExpense(ctx context.Context, id int) error
}

type CreateSessionExpenseInput struct {
	SessionID int `json:"sessionId" validate:"required,gt=0"`
	SessionExpenseItem
}

type UpdateSessionExpenseInput struct {
	SessionID   *int     `json:"sessionId" validate:"omitempty,gt=0"`
	ExpenseID   *int     `json:"expensesId" validate:"omitempty,gt=0"`
	PlayerID    *int     `json:"playerId" validate:"omitempty,gt=0"`
	Quantity    *int     `json:"quantity" validate:"omitempty,gte=0"`
	AmountTotal *float64 `json:"amountTotal"`
}

type sessionExpenseService struct {
	sessionExpenseRepo repositories.SessionExpenseRepository
	sessionRepo        repositories.SessionRepository
	expenseRepo        repositories.ExpenseRepository
	playerRepo         repositories.PlayerRepository
}

func NewSessionExpenseService(
	sessionExpenseRepo repositories.SessionExpenseRepository,
	sessionRepo repositories.SessionRepository,
	expenseRepo repositories.ExpenseRepository,
	playerRepo repositories.PlayerRepository,
) SessionExpenseService {
	return &sessionExpenseService{
		sessionExpenseRepo: sessionExpenseRepo,
		sessionRepo:        sessionRepo,
		expenseRepo:        expenseRepo,
		playerRepo:         playerRepo,
	}
}

func (s *sessionExpenseService) checkReferences(ctx context.Context, sessionID, expenseID, playerID int) error {
	var sessionMissing bool
	var missingExpenses, missingPlayers []int

	g, gCtx := errgroup.WithContext(ctx)
	if sessionID > 0 {
		g.Go(func() error {
			var err error
			sessionMissing, err = sessionIsMissing(gCtx, s.sessionRepo, sessionID)
			return err
		})
	}
	if expenseID > 0 {
		g.Go(func() error {
			var err error
			missingExpenses, err = s.expenseRepo.FindMissingIDs(gCtx, []int{expenseID})
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
		return fmt.Errorf("failed to verify session expense references: %w", err)
	}

	switch {
	case sessionMissing:
		return newReferenceError(refSession, sessionID)
	case len(missingPlayers) > 0:
		return newReferenceError(refPlayer, missingPlayers...)
	case len(missingExpenses) > 0:
		return newReferenceError(refExpense, missingExpenses...)
	}
	return nil
}

func (s *sessionExpenseService) CreateSessionExpense(ctx context.Context, input CreateSessionExpenseInput) (*models.SessionExpense, error) {
	playerID := 0
	if input.PlayerID != nil {
		playerID = *input.PlayerID
	}
	if err := s.checkReferences(ctx, input.SessionID, input.ExpenseID, playerID); err != nil {
		return nil, err
	}

	item := &models.SessionExpense{
		SessionID:   input.SessionID,
		ExpenseID:   input.ExpenseID,
		PlayerID:    input.PlayerID,
		Quantity:    input.Quantity,
		AmountTotal: input.AmountTotal,
	}
	if err := s.sessionExpenseRepo.Create(ctx, nil, item); err != nil {
		if errors.Is(err, repositories.ErrSessionExpenseInvalidReference) {
			return nil, expenseItemReference(err, input.SessionID, input.ExpenseID, input.PlayerID)
		}
		return nil, fmt.Errorf("failed to create session expense: %w", err)
	}
	return item, nil
}

func (s *sessionExpenseService) GetSessionExpenseByID(ctx context.Context, id int) (*models.SessionExpense, error) {
	item, err := s.sessionExpenseRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrSessionExpenseNotFound) {
			return nil, ErrSessionExpenseNotFound
		}
		return nil, fmt.Errorf("failed to get session expense by id %d: %w", id, err)
	}
	return item, nil
}

func (s *sessionExpenseService) GetAllSessionExpenses(ctx context.Context) ([]models.SessionExpense, error) {
	items, err := s.sessionExpenseRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get all session expenses: %w", err)
	}
	if items == nil {
		return []models.SessionExpense{}, nil
	}
	return items, nil
}

func (s *sessionExpenseService) UpdateSessionExpense(ctx context.Context, id int, input UpdateSessionExpenseInput) (*models.SessionExpense, error) {
	item, err := s.GetSessionExpenseByID(ctx, id)
	if err != nil {
		return nil, err
	}

	var newSessionID, newExpenseID, newPlayerID int
	if input.SessionID != nil && *input.SessionID != item.SessionID {
		newSessionID = *input.SessionID
	}
	if input.ExpenseID != nil && *input.ExpenseID != item.ExpenseID {
		newExpenseID = *input.ExpenseID
	}
	if input.PlayerID != nil && (item.PlayerID == nil || *input.PlayerID != *item.PlayerID) {
		newPlayerID = *input.PlayerID
	}
	if err := s.checkReferences(ctx, newSessionID, newExpenseID, newPlayerID); err != nil {
		return nil, err
	}

	if newSessionID > 0 {
		item.SessionID = newSessionID
	}
	if newExpenseID > 0 {
		item.ExpenseID = newExpenseID
	}
	if input.PlayerID != nil {
		item.PlayerID = input.PlayerID
	}
	if input.Quantity != nil {
		item.Quantity = *input.Quantity
	}
	if input.AmountTotal != nil {
		item.AmountTotal = *input.AmountTotal
	}

	if err := s.sessionExpenseRepo.Update(ctx, item); err != nil {
		switch {
		case errors.Is(err, repositories.ErrSessionExpenseNotFound):
			return nil, ErrSessionExpenseNotFound
		case errors.Is(err, repositories.ErrSessionExpenseInvalidReference):
			return nil, expenseItemReference(err, item.SessionID, item.ExpenseID, item.PlayerID)
		default:
			return nil, fmt.Errorf("failed to update session expense %d: %w", id, err)
		}
	}
	return item, nil
}

func (s *sessionExpenseService) DeleteSessionExpense(ctx context.Context, id int) error {
	if err := s.sessionExpenseRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrSessionExpenseNotFound) {
			return ErrSessionExpenseNotFound
		}
		return fmt.Errorf("failed to delete session expense %d: %w", id, err)
	}
	return nil
}

func expenseItemReference(err error, sessionID, expenseID int, playerID *int) *ReferenceError {
	session := newReferenceError(refSession, sessionID)
	byColumn := map[string]*ReferenceError{
		"session_id":  session,
		"expenses_id": newReferenceError(refExpense, expenseID),
	}
	if playerID != nil {
		byColumn["player_id"] = newReferenceError(refPlayer, *playerID)
	}
	return violatedReference(err, byColumn, session)
}
