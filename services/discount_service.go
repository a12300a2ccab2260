package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Dosada05/court-booking/models"
	"github.com/Dosada05/court-booking/repositories"
)

type DiscountService interface {
	CreateDiscount(ctx context.Context, input CreateDiscountInput) (*models.Discount, error)
	GetDiscountByID(ctx context.Context, id int) (*models.Discount, error)
	GetAllDiscounts(ctx context.Context) ([]models.Discount, error)
	UpdateDiscount(ctx context.Context, id int, input UpdateDiscountInput) (*models.Discount, error)
	DeleteDiscount(ctx context.Context, id int) error
}

type CreateDiscountInput struct {
	Name string `json:"name" validate:"required,max=100"`
}

type UpdateDiscountInput struct {
	Name *string `json:"name" validate:"omitempty,min=1,max=100"`
}

type discountService struct {
	discountRepo repositories.DiscountRepository
}

func NewDiscountService(discountRepo repositories.DiscountRepository) DiscountService {
	return &discountService{discountRepo: discountRepo}
}

func (s *discountService) CreateDiscount(ctx context.Context, input CreateDiscountInput) (*models.Discount, error) {
	discount := &models.Discount{Name: strings.TrimSpace(input.Name)}
	if err := s.discountRepo.Create(ctx, discount); err != nil {
		return nil, fmt.Errorf("failed to create discount: %w", err)
	}
	return discount, nil
}

func (s *discountService) GetDiscountByID(ctx context.Context, id int) (*models.Discount, error) {
	discount, err := s.discountRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrDiscountNotFound) {
			return nil, ErrDiscountNotFound
		}
		return nil, fmt.Errorf("failed to get discount by id %d: %w", id, err)
	}
	return discount, nil
}

func (s *discountService) GetAllDiscounts(ctx context.Context) ([]models.Discount, error) {
	discounts, err := s.discountRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get all discounts: %w", err)
	}
	if discounts == nil {
		return []models.Discount{}, nil
	}
	return discounts, nil
}

func (s *discountService) UpdateDiscount(ctx context.Context, id int, input UpdateDiscountInput) (*models.Discount, error) {
	discount, err := s.GetDiscountByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if input.Name != nil {
		discount.Name = strings.TrimSpace(*input.Name)
	}

	if err := s.discountRepo.Update(ctx, discount); err != nil {
		if errors.Is(err, repositories.ErrDiscountNotFound) {
			return nil, ErrDiscountNotFound
		}
		return nil, fmt.Errorf("failed to update discount %d: %w", id, err)
	}
	return discount, nil
}

func (s *discountService) DeleteDiscount(ctx context.Context, id int) error {
	err := s.discountRepo.Delete(ctx, id)
	if err != nil {
		switch {
		case errors.Is(err, repositories.ErrDiscountNotFound):
			return ErrDiscountNotFound
		case errors.Is(err, repositories.ErrDiscountInUse):
			return ErrDiscountInUse
		default:
			return fmt.Errorf("failed to delete discount %d: %w", id, err)
		}
	}
	return nil
}
