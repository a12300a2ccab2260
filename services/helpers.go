package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/Dosada05/court-booking/models"
	"github.com/Dosada05/court-booking/repositories"
	"github.com/Dosada05/court-booking/storage"
)

// Broadcaster публикует события в комнаты realtime-хаба.
type Broadcaster interface {
	BroadcastToRoom(room string, msgType string, payload interface{})
}

// uniqueIDs drops non-positive ids and duplicates, keeping first appearance order.
func uniqueIDs(ids []int) []int {
	seen := make(map[int]struct{}, len(ids))
	result := make([]int, 0, len(ids))
	for _, id := range ids {
		if id <= 0 {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		result = append(result, id)
	}
	return result
}

// withTx runs fn inside a transaction: commit on nil, rollback on error or panic.
func withTx(ctx context.Context, db repositories.TxBeginner, logger *slog.Logger, fn func(tx *sql.Tx) error) (txErr error) {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		} else if txErr != nil {
			logger.WarnContext(ctx, "rolling back transaction", slog.Any("error", txErr))
			if rbErr := tx.Rollback(); rbErr != nil {
				logger.ErrorContext(ctx, "rollback failed", slog.Any("error", rbErr))
			}
		} else if cErr := tx.Commit(); cErr != nil {
			txErr = fmt.Errorf("failed to commit transaction: %w", cErr)
		}
	}()

	txErr = fn(tx)
	return txErr
}

func populateCourtImageURL(court *models.Court, uploader storage.FileUploader) {
	if court == nil || court.ImageKey == nil || *court.ImageKey == "" || uploader == nil {
		return
	}
	if url := uploader.GetPublicURL(*court.ImageKey); url != "" {
		court.ImageURL = &url
	}
}

// imageExtensions - допустимые типы изображений корта. Расширение попадает в ключ объекта R2.
var imageExtensions = map[string]string{
	"image/jpeg": ".jpg",
	"image/jpg":  ".jpg",
	"image/png":  ".png",
	"image/gif":  ".gif",
	"image/webp": ".webp",
}

// GetExtensionFromContentType maps an allowed image MIME type to a file extension.
// Parameters such as "; charset=" are ignored; anything outside the allowlist is ErrInvalidImage.
func GetExtensionFromContentType(contentType string) (string, error) {
	mediaType := strings.ToLower(strings.TrimSpace(strings.SplitN(contentType, ";", 2)[0]))
	if ext, ok := imageExtensions[mediaType]; ok {
		return ext, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidImage, contentType)
}

// violatedReference выбирает сущность по колонке нарушенного внешнего ключа.
// Неизвестная колонка относится к fallback.
func violatedReference(err error, byColumn map[string]*ReferenceError, fallback *ReferenceError) *ReferenceError {
	var violation *repositories.ReferenceViolation
	if errors.As(err, &violation) {
		if ref, ok := byColumn[violation.Column]; ok {
			return ref
		}
	}
	return fallback
}

func sessionIsMissing(ctx context.Context, repo repositories.SessionRepository, id int) (bool, error) {
	_, err := repo.GetByID(ctx, id)
	if errors.Is(err, repositories.ErrSessionNotFound) {
		return true, nil
	}
	return false, err
}
