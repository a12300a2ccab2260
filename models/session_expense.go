package models

import "time"

// SessionExpense - расход, потреблённый в рамках сессии (опционально конкретным игроком).
type SessionExpense struct {
	ID          int       `json:"id" db:"id"`
	SessionID   int       `json:"sessionId" db:"session_id"`
	ExpenseID   int       `json:"expensesId" db:"expenses_id"`
	PlayerID    *int      `json:"playerId,omitempty" db:"player_id"`
	Quantity    int       `json:"quantity" db:"quantity"`
	AmountTotal float64   `json:"amountTotal" db:"amount_total"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time `json:"updatedAt" db:"updated_at"`
}
