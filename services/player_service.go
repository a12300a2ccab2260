package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Dosada05/court-booking/models"
	"github.com/Dosada05/court-booking/repositories"
	"github.com/Dosada05/court-booking/utils"
)

type PlayerService interface {
	CreatePlayer(ctx context.Context, input CreatePlayerInput) (*models.Player, error)
	GetPlayerByID(ctx context.Context, id int) (*models.Player, error)
	GetAllPlayers(ctx context.Context) ([]models.Player, error)
	UpdatePlayer(ctx context.Context, id int, input UpdatePlayerInput) (*models.Player, error)
	DeletePlayer(ctx context.Context, id int) error
}

type CreatePlayerInput struct {
	Name        string  `json:"name" validate:"required,max=100"`
	PhoneNumber *string `json:"phoneNumber" validate:"omitempty,max=20"`
	Email       *string `json:"email" validate:"omitempty,email,max=50"`
	UserName    string  `json:"userName" validate:"required,max=50"`
	Password    string  `json:"password" validate:"required,max=50"`
}

type UpdatePlayerInput struct {
	Name        *string `json:"name" validate:"omitempty,min=1,max=100"`
	PhoneNumber *string `json:"phoneNumber" validate:"omitempty,max=20"`
	Email       *string `json:"email" validate:"omitempty,email,max=50"`
	UserName    *string `json:"userName" validate:"omitempty,min=1,max=50"`
	Password    *string `json:"password" validate:"omitempty,min=1,max=50"`
}

type playerService struct {
	playerRepo repositories.PlayerRepository
}

func NewPlayerService(playerRepo repositories.PlayerRepository) PlayerService {
	return &playerService{playerRepo: playerRepo}
}

// optionalString приводит пустую строку к NULL, чтобы не упираться в уникальные индексы.
func optionalString(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

func (s *playerService) CreatePlayer(ctx context.Context, input CreatePlayerInput) (*models.Player, error) {
	userName := strings.TrimSpace(input.UserName)
	phone := optionalString(input.PhoneNumber)
	email := optionalString(input.Email)

	exists, err := s.playerRepo.ExistsWithIdentity(ctx, phone, &userName, email, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to check player identity: %w", err)
	}
	if exists {
		return nil, ErrPlayerIdentityConflict
	}

	hash, err := utils.HashPassword(input.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	player := &models.Player{
		Name:         strings.TrimSpace(input.Name),
		PhoneNumber:  phone,
		Email:        email,
		UserName:     userName,
		PasswordHash: hash,
	}

	if err := s.playerRepo.Create(ctx, player); err != nil {
		if errors.Is(err, repositories.ErrPlayerIdentityConflict) {
			return nil, ErrPlayerIdentityConflict
		}
		return nil, fmt.Errorf("failed to create player: %w", err)
	}
	return player, nil
}

func (s *playerService) GetPlayerByID(ctx context.Context, id int) (*models.Player, error) {
	player, err := s.playerRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrPlayerNotFound) {
			return nil, ErrPlayerNotFound
		}
		return nil, fmt.Errorf("failed to get player by id %d: %w", id, err)
	}
	return player, nil
}

func (s *playerService) GetAllPlayers(ctx context.Context) ([]models.Player, error) {
	players, err := s.playerRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get all players: %w", err)
	}
	if players == nil {
		return []models.Player{}, nil
	}
	return players, nil
}

func (s *playerService) UpdatePlayer(ctx context.Context, id int, input UpdatePlayerInput) (*models.Player, error) {
	player, err := s.GetPlayerByID(ctx, id)
	if err != nil {
		return nil, err
	}

	var phone, email, userName *string
	if input.PhoneNumber != nil {
		phone = optionalString(input.PhoneNumber)
	}
	if input.Email != nil {
		email = optionalString(input.Email)
	}
	if input.UserName != nil {
		trimmed := strings.TrimSpace(*input.UserName)
		userName = &trimmed
	}

	exists, err := s.playerRepo.ExistsWithIdentity(ctx, phone, userName, email, id)
	if err != nil {
		return nil, fmt.Errorf("failed to check player identity: %w", err)
	}
	if exists {
		return nil, ErrPlayerIdentityConflict
	}

	if input.Name != nil {
		player.Name = strings.TrimSpace(*input.Name)
	}
	if input.PhoneNumber != nil {
		player.PhoneNumber = phone
	}
	if input.Email != nil {
		player.Email = email
	}
	if userName != nil {
		player.UserName = *userName
	}
	if input.Password != nil {
		hash, err := utils.HashPassword(*input.Password)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		player.PasswordHash = hash
	}

	if err := s.playerRepo.Update(ctx, player); err != nil {
		switch {
		case errors.Is(err, repositories.ErrPlayerNotFound):
			return nil, ErrPlayerNotFound
		case errors.Is(err, repositories.ErrPlayerIdentityConflict):
			return nil, ErrPlayerIdentityConflict
		default:
			return nil, fmt.Errorf("failed to update player %d: %w", id, err)
		}
	}
	return player, nil
}

func (s *playerService) DeletePlayer(ctx context.Context, id int) error {
	err := s.playerRepo.Delete(ctx, id)
	if err != nil {
		switch {
		case errors.Is(err, repositories.ErrPlayerNotFound):
			return ErrPlayerNotFound
		case errors.Is(err, repositories.ErrPlayerInUse):
			return ErrPlayerInUse
		default:
			return fmt.Errorf("failed to delete player %d: %w", id, err)
		}
	}
	return nil
}
