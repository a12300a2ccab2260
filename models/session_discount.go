package models

import "time"

// SessionDiscount - скидка, применённая к сессии (опционально к конкретному игроку).
type SessionDiscount struct {
	ID          int       `json:"id" db:"id"`
	SessionID   int       `json:"sessionId" db:"session_id"`
	DiscountID  int       `json:"discountId" db:"discount_id"`
	PlayerID    *int      `json:"playerId,omitempty" db:"player_id"`
	Percent     float64   `json:"percent" db:"percent"`
	TotalAmount float64   `json:"totalAmount" db:"total_amount"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time `json:"updatedAt" db:"updated_at"`
}
