package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/Dosada05/court-booking/metrics"
	"github.com/Dosada05/court-booking/models"
	"github.com/Dosada05/court-booking/realtime"
	"github.com/Dosada05/court-booking/repositories"
	"golang.org/x/sync/errgroup"
)

type SessionService interface {
	CreateSessions(ctx context.Context, inputs []CreateSessionInput) ([]models.SessionDetails, error)
	GetSessionByID(ctx context.Context, id int) (*models.SessionDetails, error)
	GetAllSessions(ctx context.Context) ([]models.Session, error)
	UpdateSession(ctx context.Context, id int, input UpdateSessionInput) (*models.Session, error)
	DeleteSession(ctx context.Context, id int) error
}

// SessionMetrics is the subset of metrics.Registry the workflow reports to.
type SessionMetrics interface {
	ObserveSessionBatch(outcome string, sessions int)
}

type SessionPlayerItem struct {
	PlayerID    int       `json:"playerId" validate:"required,gt=0"`
	StartTime   time.Time `json:"startTime" validate:"required"`
	EndTime     time.Time `json:"endTime" validate:"required"`
	TotalAmount float64   `json:"totalAmount"`
	IsPayment   bool      `json:"isPayment"`
}

type SessionDiscountItem struct {
	DiscountID  int     `json:"discountId" validate:"required,gt=0"`
	PlayerID    *int    `json:"playerId" validate:"omitempty,gt=0"`
	Percent     float64 `json:"percent" validate:"gte=0,lte=100"`
	TotalAmount float64 `json:"totalAmount"`
}

type SessionExpenseItem struct {
	ExpenseID   int     `json:"expensesId" validate:"required,gt=0"`
	PlayerID    *int    `json:"playerId" validate:"omitempty,gt=0"`
	Quantity    int     `json:"quantity" validate:"gte=0"`
	AmountTotal float64 `json:"amountTotal"`
}

// CreateSessionInput - один элемент пакета: сессия и её строки.
type CreateSessionInput struct {
	CourtID   int                   `json:"courtId" validate:"required,gt=0"`
	DatePlay  time.Time             `json:"datePlay" validate:"required"`
	CourtCost float64               `json:"courtCost" validate:"gte=0"`
	StartTime time.Time             `json:"startTime" validate:"required"`
	EndTime   time.Time             `json:"endTime" validate:"required"`
	Players   []SessionPlayerItem   `json:"players" validate:"dive"`
	Discounts []SessionDiscountItem `json:"discounts" validate:"dive"`
	Expenses  []SessionExpenseItem  `json:"expenses" validate:"dive"`
}

type UpdateSessionInput struct {
	CourtID   *int       `json:"courtId" validate:"omitempty,gt=0"`
	DatePlay  *time.Time `json:"datePlay"`
	CourtCost *float64   `json:"courtCost" validate:"omitempty,gte=0"`
	StartTime *time.Time `json:"startTime"`
	EndTime   *time.Time `json:"endTime"`
}

type sessionService struct {
	db                  *sql.DB
	sessionRepo         repositories.SessionRepository
	sessionPlayerRepo   repositories.SessionPlayerRepository
	sessionDiscountRepo repositories.SessionDiscountRepository
	sessionExpenseRepo  repositories.SessionExpenseRepository
	courtRepo           repositories.CourtRepository
	playerRepo          repositories.PlayerRepository
	discountRepo        repositories.DiscountRepository
	expenseRepo         repositories.ExpenseRepository
	broadcaster         Broadcaster
	metrics             SessionMetrics
	logger              *slog.Logger
}

// SessionServiceDeps собирает зависимости sessionService, их слишком много для позиционных аргументов.
type SessionServiceDeps struct {
	DB                  *sql.DB
	SessionRepo         repositories.SessionRepository
	SessionPlayerRepo   repositories.SessionPlayerRepository
	SessionDiscountRepo repositories.SessionDiscountRepository
	SessionExpenseRepo  repositories.SessionExpenseRepository
	CourtRepo           repositories.CourtRepository
	PlayerRepo          repositories.PlayerRepository
	DiscountRepo        repositories.DiscountRepository
	ExpenseRepo         repositories.ExpenseRepository
	Broadcaster         Broadcaster
	Metrics             SessionMetrics
	Logger              *slog.Logger
}

func NewSessionService(deps SessionServiceDeps) SessionService {
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &sessionService{
		db:                  deps.DB,
		sessionRepo:         deps.SessionRepo,
		sessionPlayerRepo:   deps.SessionPlayerRepo,
		sessionDiscountRepo: deps.SessionDiscountRepo,
		sessionExpenseRepo:  deps.SessionExpenseRepo,
		courtRepo:           deps.CourtRepo,
		playerRepo:          deps.PlayerRepo,
		discountRepo:        deps.DiscountRepo,
		expenseRepo:         deps.ExpenseRepo,
		broadcaster:         deps.Broadcaster,
		metrics:             deps.Metrics,
		logger:              logger,
	}
}

func (s *sessionService) observe(outcome string, sessions int) {
	if s.metrics != nil {
		s.metrics.ObserveSessionBatch(outcome, sessions)
	}
}

func (s *sessionService) broadcast(courtID int, msgType string, payload interface{}) {
	if s.broadcaster != nil {
		s.broadcaster.BroadcastToRoom(realtime.CourtRoom(courtID), msgType, payload)
	}
}

// CreateSessions проверяет все элементы пакета, затем вставляет их одной транзакцией.
func (s *sessionService) CreateSessions(ctx context.Context, inputs []CreateSessionInput) ([]models.SessionDetails, error) {
	if len(inputs) == 0 {
		s.observe(metrics.OutcomeRejected, 0)
		return nil, ErrBodyEmpty
	}

	for i := range inputs {
		if err := s.checkReferences(ctx, &inputs[i]); err != nil {
			var refErr *ReferenceError
			if errors.As(err, &refErr) {
				s.observe(metrics.OutcomeRejected, 0)
			} else {
				s.observe(metrics.OutcomeFailed, 0)
			}
			return nil, err
		}
	}

	created := make([]models.SessionDetails, 0, len(inputs))
	err := withTx(ctx, s.db, s.logger, func(tx *sql.Tx) error {
		for i := range inputs {
			details, err := s.insertSession(ctx, tx, &inputs[i])
			if err != nil {
				return err
			}
			created = append(created, *details)
		}
		return nil
	})
	if err != nil {
		s.observe(metrics.OutcomeFailed, 0)
		s.logger.ErrorContext(ctx, "session batch rolled back", slog.Int("batch_size", len(inputs)), slog.Any("error", err))
		return nil, err
	}

	s.observe(metrics.OutcomeCreated, len(created))
	for i := range created {
		s.broadcast(created[i].CourtID, realtime.EventSessionCreated, created[i])
	}
	return created, nil
}

// checkReferences runs the court, player, discount and expense lookups of one
// element concurrently and reports the first failure in that fixed order.
func (s *sessionService) checkReferences(ctx context.Context, in *CreateSessionInput) error {
	var playerIDs, discountIDs, expenseIDs []int
	for _, p := range in.Players {
		playerIDs = append(playerIDs, p.PlayerID)
	}
	for _, d := range in.Discounts {
		discountIDs = append(discountIDs, d.DiscountID)
		if d.PlayerID != nil {
			playerIDs = append(playerIDs, *d.PlayerID)
		}
	}
	for _, e := range in.Expenses {
		expenseIDs = append(expenseIDs, e.ExpenseID)
		if e.PlayerID != nil {
			playerIDs = append(playerIDs, *e.PlayerID)
		}
	}

	var missingCourts, missingPlayers, missingDiscounts, missingExpenses []int

	g, gCtx := errgroup.WithContext(ctx)
	if in.CourtID > 0 {
		g.Go(func() error {
			var err error
			missingCourts, err = s.courtRepo.FindMissingIDs(gCtx, []int{in.CourtID})
			return err
		})
	}
	g.Go(func() error {
		var err error
		missingPlayers, err = s.playerRepo.FindMissingIDs(gCtx, uniqueIDs(playerIDs))
		return err
	})
	g.Go(func() error {
		var err error
		missingDiscounts, err = s.discountRepo.FindMissingIDs(gCtx, uniqueIDs(discountIDs))
		return err
	})
	g.Go(func() error {
		var err error
		missingExpenses, err = s.expenseRepo.FindMissingIDs(gCtx, uniqueIDs(expenseIDs))
		return err
	})
	if err := g.Wait(); err != nil {
		return fmt.Errorf("failed to verify session references: %w", err)
	}

	switch {
	case len(missingCourts) > 0:
		return newReferenceError(refCourt, missingCourts...)
	case len(missingPlayers) > 0:
		return newReferenceError(refPlayer, missingPlayers...)
	case len(missingDiscounts) > 0:
		return newReferenceError(refDiscount, missingDiscounts...)
	case len(missingExpenses) > 0:
		return newReferenceError(refExpense, missingExpenses...)
	}
	return nil
}

func (s *sessionService) insertSession(ctx context.Context, tx *sql.Tx, in *CreateSessionInput) (*models.SessionDetails, error) {
	session := models.Session{
		CourtID:   in.CourtID,
		DatePlay:  in.DatePlay,
		CourtCost: in.CourtCost,
		StartTime: in.StartTime,
		EndTime:   in.EndTime,
	}
	if err := s.sessionRepo.Create(ctx, tx, &session); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSessionNotCreated, err)
	}

	details := &models.SessionDetails{
		Session:   session,
		Players:   make([]models.SessionPlayer, 0, len(in.Players)),
		Discounts: make([]models.SessionDiscount, 0, len(in.Discounts)),
		Expenses:  make([]models.SessionExpense, 0, len(in.Expenses)),
	}

	for _, p := range in.Players {
		item := models.SessionPlayer{
			SessionID:   session.ID,
			PlayerID:    p.PlayerID,
			StartTime:   p.StartTime,
			EndTime:     p.EndTime,
			TotalAmount: p.TotalAmount,
			IsPayment:   p.IsPayment,
		}
		if err := s.sessionPlayerRepo.Create(ctx, tx, &item); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrSessionPlayerNotCreated, err)
		}
		details.Players = append(details.Players, item)
	}

	for _, d := range in.Discounts {
		item := models.SessionDiscount{
			SessionID:   session.ID,
			DiscountID:  d.DiscountID,
			PlayerID:    d.PlayerID,
			Percent:     d.Percent,
			TotalAmount: d.TotalAmount,
		}
		if err := s.sessionDiscountRepo.Create(ctx, tx, &item); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrSessionDiscountNotCreated, err)
		}
		details.Discounts = append(details.Discounts, item)
	}

	for _, e := range in.Expenses {
		item := models.SessionExpense{
			SessionID:   session.ID,
			ExpenseID:   e.ExpenseID,
			PlayerID:    e.PlayerID,
			Quantity:    e.Quantity,
			AmountTotal: e.AmountTotal,
		}
		if err := s.sessionExpenseRepo.Create(ctx, tx, &item); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrSessionExpenseNotCreated, err)
		}
		details.Expenses = append(details.Expenses, item)
	}

	return details, nil
}

// GetSessionByID загружает сессию и её строки параллельно.
func (s *sessionService) GetSessionByID(ctx context.Context, id int) (*models.SessionDetails, error) {
	details := &models.SessionDetails{}

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		session, err := s.sessionRepo.GetByID(gCtx, id)
		if err != nil {
			return err
		}
		details.Session = *session
		return nil
	})
	g.Go(func() error {
		var err error
		details.Players, err = s.sessionPlayerRepo.ListBySession(gCtx, id)
		return err
	})
	g.Go(func() error {
		var err error
		details.Discounts, err = s.sessionDiscountRepo.ListBySession(gCtx, id)
		return err
	})
	g.Go(func() error {
		var err error
		details.Expenses, err = s.sessionExpenseRepo.ListBySession(gCtx, id)
		return err
	})

	if err := g.Wait(); err != nil {
		if errors.Is(err, repositories.ErrSessionNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("failed to get session by id %d: %w", id, err)
	}
	return details, nil
}

func (s *sessionService) GetAllSessions(ctx context.Context) ([]models.Session, error) {
	sessions, err := s.sessionRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get all sessions: %w", err)
	}
	if sessions == nil {
		return []models.Session{}, nil
	}
	return sessions, nil
}

func (s *sessionService) UpdateSession(ctx context.Context, id int, input UpdateSessionInput) (*models.Session, error) {
	session, err := s.sessionRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrSessionNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("failed to get session %d: %w", id, err)
	}
	previousCourtID := session.CourtID

	if input.CourtID != nil && *input.CourtID != session.CourtID {
		missing, err := s.courtRepo.FindMissingIDs(ctx, []int{*input.CourtID})
		if err != nil {
			return nil, fmt.Errorf("failed to verify court %d: %w", *input.CourtID, err)
		}
		if len(missing) > 0 {
			return nil, newReferenceError(refCourt, missing...)
		}
		session.CourtID = *input.CourtID
	}
	if input.DatePlay != nil {
		session.DatePlay = *input.DatePlay
	}
	if input.CourtCost != nil {
		session.CourtCost = *input.CourtCost
	}
	if input.StartTime != nil {
		session.StartTime = *input.StartTime
	}
	if input.EndTime != nil {
		session.EndTime = *input.EndTime
	}

	if err := s.sessionRepo.Update(ctx, session); err != nil {
		switch {
		case errors.Is(err, repositories.ErrSessionNotFound):
			return nil, ErrSessionNotFound
		case errors.Is(err, repositories.ErrSessionInvalidCourt):
			return nil, newReferenceError(refCourt, session.CourtID)
		default:
			return nil, fmt.Errorf("failed to update session %d: %w", id, err)
		}
	}

	s.broadcast(session.CourtID, realtime.EventSessionUpdated, session)
	if previousCourtID != session.CourtID {
		s.broadcast(previousCourtID, realtime.EventSessionDeleted, map[string]int{"id": session.ID})
	}
	return session, nil
}

func (s *sessionService) DeleteSession(ctx context.Context, id int) error {
	session, err := s.sessionRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrSessionNotFound) {
			return ErrSessionNotFound
		}
		return fmt.Errorf("failed to get session %d: %w", id, err)
	}

	if err := s.sessionRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrSessionNotFound) {
			return ErrSessionNotFound
		}
		return fmt.Errorf("failed to delete session %d: %w", id, err)
	}

	s.broadcast(session.CourtID, realtime.EventSessionDeleted, map[string]int{"id": id})
	return nil
}
