package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/Dosada05/court-booking/models"
	"github.com/Dosada05/court-booking/repositories"
	"github.com/Dosada05/court-booking/storage"
	"github.com/google/uuid"
)

type CourtService interface {
	CreateCourt(ctx context.Context, input CreateCourtInput) (*models.Court, error)
	GetCourtByID(ctx context.Context, id int) (*models.Court, error)
	GetAllCourts(ctx context.Context) ([]models.Court, error)
	UpdateCourt(ctx context.Context, id int, input UpdateCourtInput) (*models.Court, error)
	DeleteCourt(ctx context.Context, id int) error
	UploadCourtImage(ctx context.Context, id int, file io.Reader, contentType string) (*models.Court, error)
}

type CreateCourtInput struct {
	Name        string  `json:"name" validate:"required,max=100"`
	Address     string  `json:"address" validate:"required,max=255"`
	Location    *string `json:"location" validate:"omitempty,max=255"`
	PriceFixed  float64 `json:"priceFixed" validate:"gte=0"`
	PhoneNumber *string `json:"phoneNumber" validate:"omitempty,max=20"`
}

type UpdateCourtInput struct {
	Name        *string  `json:"name" validate:"omitempty,min=1,max=100"`
	Address     *string  `json:"address" validate:"omitempty,min=1,max=255"`
	Location    *string  `json:"location" validate:"omitempty,max=255"`
	PriceFixed  *float64 `json:"priceFixed" validate:"omitempty,gte=0"`
	PhoneNumber *string  `json:"phoneNumber" validate:"omitempty,max=20"`
}

type courtService struct {
	courtRepo repositories.CourtRepository
	uploader  storage.FileUploader
	logger    *slog.Logger
}

// NewCourtService: uploader может быть nil, тогда загрузка изображений недоступна.
func NewCourtService(courtRepo repositories.CourtRepository, uploader storage.FileUploader, logger *slog.Logger) CourtService {
	if logger == nil {
		logger = slog.Default()
	}
	return &courtService{
		courtRepo: courtRepo,
		uploader:  uploader,
		logger:    logger,
	}
}

func (s *courtService) CreateCourt(ctx context.Context, input CreateCourtInput) (*models.Court, error) {
	court := &models.Court{
		Name:        strings.TrimSpace(input.Name),
		Address:     strings.TrimSpace(input.Address),
		Location:    input.Location,
		PriceFixed:  input.PriceFixed,
		PhoneNumber: input.PhoneNumber,
	}
	if err := s.courtRepo.Create(ctx, court); err != nil {
		return nil, fmt.Errorf("failed to create court: %w", err)
	}
	return court, nil
}

func (s *courtService) GetCourtByID(ctx context.Context, id int) (*models.Court, error) {
	court, err := s.courtRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrCourtNotFound) {
			return nil, ErrCourtNotFound
		}
		return nil, fmt.Errorf("failed to get court by id %d: %w", id, err)
	}
	populateCourtImageURL(court, s.uploader)
	return court, nil
}

func (s *courtService) GetAllCourts(ctx context.Context) ([]models.Court, error) {
	courts, err := s.courtRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get all courts: %w", err)
	}
	if courts == nil {
		return []models.Court{}, nil
	}
	for i := range courts {
		populateCourtImageURL(&courts[i], s.uploader)
	}
	return courts, nil
}

func (s *courtService) UpdateCourt(ctx context.Context, id int, input UpdateCourtInput) (*models.Court, error) {
	court, err := s.GetCourtByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		court.Name = strings.TrimSpace(*input.Name)
	}
	if input.Address != nil {
		court.Address = strings.TrimSpace(*input.Address)
	}
	if input.Location != nil {
		court.Location = input.Location
	}
	if input.PriceFixed != nil {
		court.PriceFixed = *input.PriceFixed
	}
	if input.PhoneNumber != nil {
		court.PhoneNumber = input.PhoneNumber
	}

	if err := s.courtRepo.Update(ctx, court); err != nil {
		if errors.Is(err, repositories.ErrCourtNotFound) {
			return nil, ErrCourtNotFound
		}
		return nil, fmt.Errorf("failed to update court %d: %w", id, err)
	}
	return court, nil
}

func (s *courtService) DeleteCourt(ctx context.Context, id int) error {
	court, err := s.courtRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrCourtNotFound) {
			return ErrCourtNotFound
		}
		return fmt.Errorf("failed to get court %d: %w", id, err)
	}

	if err := s.courtRepo.Delete(ctx, id); err != nil {
		switch {
		case errors.Is(err, repositories.ErrCourtNotFound):
			return ErrCourtNotFound
		case errors.Is(err, repositories.ErrCourtInUse):
			return ErrCourtInUse
		default:
			return fmt.Errorf("failed to delete court %d: %w", id, err)
		}
	}

	if court.ImageKey != nil && s.uploader != nil {
		if err := s.uploader.Delete(ctx, *court.ImageKey); err != nil {
			s.logger.WarnContext(ctx, "failed to delete court image", slog.Int("court_id", id), slog.Any("error", err))
		}
	}
	return nil
}

// UploadCourtImage заменяет изображение корта; старый объект удаляется после записи нового ключа.
func (s *courtService) UploadCourtImage(ctx context.Context, id int, file io.Reader, contentType string) (*models.Court, error) {
	if s.uploader == nil {
		return nil, ErrStorageUnavailable
	}

	ext, err := GetExtensionFromContentType(contentType)
	if err != nil {
		return nil, ErrInvalidImage
	}

	court, err := s.courtRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrCourtNotFound) {
			return nil, ErrCourtNotFound
		}
		return nil, fmt.Errorf("failed to get court %d: %w", id, err)
	}

	key := fmt.Sprintf("courts/%d/%s%s", id, uuid.NewString(), ext)
	if _, err := s.uploader.Upload(ctx, key, contentType, file); err != nil {
		return nil, fmt.Errorf("failed to upload court image: %w", err)
	}

	if err := s.courtRepo.UpdateImageKey(ctx, id, &key); err != nil {
		if delErr := s.uploader.Delete(ctx, key); delErr != nil {
			s.logger.WarnContext(ctx, "failed to clean up uploaded image", slog.String("key", key), slog.Any("error", delErr))
		}
		if errors.Is(err, repositories.ErrCourtNotFound) {
			return nil, ErrCourtNotFound
		}
		return nil, fmt.Errorf("failed to save court image key: %w", err)
	}

	if court.ImageKey != nil && *court.ImageKey != "" && *court.ImageKey != key {
		if err := s.uploader.Delete(ctx, *court.ImageKey); err != nil {
			s.logger.WarnContext(ctx, "failed to delete previous court image", slog.String("key", *court.ImageKey), slog.Any("error", err))
		}
	}

	court.ImageKey = &key
	populateCourtImageURL(court, s.uploader)
	return court, nil
}
