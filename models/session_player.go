package models

import "time"

type SessionPlayer struct {
	ID          int       `json:"id" db:"id"`
	SessionID   int       `json:"sessionId" db:"session_id"`
	PlayerID    int       `json:"playerId" db:"player_id"`
	StartTime   time.Time `json:"startTime" db:"start_time"`
	EndTime     time.Time `json:"endTime" db:"end_time"`
	TotalAmount float64   `json:"totalAmount" db:"total_amount"`
	IsPayment   bool      `json:"isPayment" db:"is_payment"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time `json:"updatedAt" db:"updated_at"`
}
