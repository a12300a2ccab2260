package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Dosada05/court-booking/models"
	"github.com/Dosada05/court-booking/repositories"
)

type ExpenseService interface {
	CreateExpense(ctx context.Context, input CreateExpenseInput) (*models.Expense, error)
	GetExpenseByID(ctx context.Context, id int) (*models.Expense, error)
	GetAllExpenses(ctx context.Context) ([]models.Expense, error)
	UpdateExpense(ctx context.Context, id int, input UpdateExpenseInput) (*models.Expense, error)
	DeleteExpense(ctx context.Context, id int) error
}

type CreateExpenseInput struct {
	Name   string  `json:"name" validate:"required,max=100"`
	Amount float64 `json:"amount" validate:"gte=0"`
}

type UpdateExpenseInput struct {
	Name   *string  `json:"name" validate:"omitempty,min=1,max=100"`
	Amount *float64 `json:"amount" validate:"omitempty,gte=0"`
}

type expenseService struct {
	expenseRepo repositories.ExpenseRepository
}

func NewExpenseService(expenseRepo repositories.ExpenseRepository) ExpenseService {
	return &expenseService{expenseRepo: expenseRepo}
}

func (s *expenseService) CreateExpense(ctx context.Context, input CreateExpenseInput) (*models.Expense, error) {
	expense := &models.Expense{
		Name:   strings.TrimSpace(input.Name),
		Amount: input.Amount,
	}
	if err := s.expenseRepo.Create(ctx, expense); err != nil {
		return nil, fmt.Errorf("failed to create expense: %w", err)
	}
	return expense, nil
}

func (s *expenseService) GetExpenseByID(ctx context.Context, id int) (*models.Expense, error) {
	expense, err := s.expenseRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrExpenseNotFound) {
			return nil, ErrExpenseNotFound
		}
		return nil, fmt.Errorf("failed to get expense by id %d: %w", id, err)
	}
	return expense, nil
}

func (s *expenseService) GetAllExpenses(ctx context.Context) ([]models.Expense, error) {
	expenses, err := s.expenseRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get all expenses: %w", err)
	}
	if expenses == nil {
		return []models.Expense{}, nil
	}
	return expenses, nil
}

func (s *expenseService) UpdateExpense(ctx context.Context, id int, input UpdateExpenseInput) (*models.Expense, error) {
	expense, err := s.GetExpenseByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if input.Name != nil {
		expense.Name = strings.TrimSpace(*input.Name)
	}
	if input.Amount != nil {
		expense.Amount = *input.Amount
	}

	if err := s.expenseRepo.Update(ctx, expense); err != nil {
		if errors.Is(err, repositories.ErrExpenseNotFound) {
			return nil, ErrExpenseNotFound
		}
		return nil, fmt.Errorf("failed to update expense %d: %w", id, err)
	}
	return expense, nil
}

func (s *expenseService) DeleteExpense(ctx context.Context, id int) error {
	err := s.expenseRepo.Delete(ctx, id)
	if err != nil {
		switch {
		case errors.Is(err, repositories.ErrExpenseNotFound):
			return ErrExpenseNotFound
		case errors.Is(err, repositories.ErrExpenseInUse):
			return ErrExpenseInUse
		default:
			return fmt.Errorf("failed to delete expense %d: %w", id, err)
		}
	}
	return nil
}
