package services

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Ошибки сервисного слоя. Текст ошибки уходит клиенту в поле message.
var (
	// Не найдено
	ErrPlayerNotFound          = errors.New("Player not found")
	ErrCourtNotFound           = errors.New("Court not found")
	ErrDiscountNotFound        = errors.New("Discount not found")
	ErrExpenseNotFound         = errors.New("Expense not found")
	ErrSessionNotFound         = errors.New("Session not found")
	ErrSessionPlayerNotFound   = errors.New("Session Player not found")
	ErrSessionDiscountNotFound = errors.New("Session Discount not found")
	ErrSessionExpenseNotFound  = errors.New("Session Expense not found")

	// Конфликты
	ErrPlayerIdentityConflict = errors.New("Player with the same phone number, username or email already exists")
	ErrPlayerInUse            = errors.New("Player is referenced by sessions")
	ErrCourtInUse             = errors.New("Court is referenced by sessions")
	ErrDiscountInUse          = errors.New("Discount is referenced by sessions")
	ErrExpenseInUse           = errors.New("Expense is referenced by sessions")

	// Невалидный запрос
	ErrBodyEmpty         = errors.New("Body is empty")
	ErrInvalidImage      = errors.New("Only image files are allowed")
	ErrResetTokenInvalid = errors.New("Invalid or expired token")

	// Аутентификация
	ErrInvalidCredentials   = errors.New("Invalid username or password")
	ErrRefreshTokenNotExist = errors.New("Refresh token is not exist in system")
	ErrRefreshTokenInvalid  = errors.New("Refresh Token is invalid")

	// Внешние зависимости
	ErrStorageUnavailable = errors.New("Image storage is not configured")

	// Шаги пакетного создания сессий; причина оборачивается вторым %w.
	ErrSessionNotCreated         = errors.New("Session not created")
	ErrSessionPlayerNotCreated   = errors.New("Session player not created")
	ErrSessionDiscountNotCreated = errors.New("Session discount not created")
	ErrSessionExpenseNotCreated  = errors.New("Session expenses not created")
)

// ReferenceError reports ids in a create payload that point at missing rows.
type ReferenceError struct {
	Entity string
	IDs    []int
}

func (e *ReferenceError) Error() string {
	ids := make([]string, len(e.IDs))
	for i, id := range e.IDs {
		ids[i] = strconv.Itoa(id)
	}
	return fmt.Sprintf("%s with id %s not found", e.Entity, strings.Join(ids, ", "))
}

func newReferenceError(entity string, ids ...int) *ReferenceError {
	return &ReferenceError{Entity: entity, IDs: ids}
}

// Имена сущностей в сообщениях ReferenceError.
const (
	refCourt    = "Court"
	refPlayer   = "Player"
	refDiscount = "Discount"
	refExpense  = "Expenses"
	refSession  = "Session"
)
