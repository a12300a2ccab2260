package models

import "time"

// Session представляет одно бронирование корта.
type Session struct {
	ID        int       `json:"id" db:"id"`
	CourtID   int       `json:"courtId" db:"court_id"`
	DatePlay  time.Time `json:"datePlay" db:"date_play"`
	CourtCost float64   `json:"courtCost" db:"court_cost"`
	StartTime time.Time `json:"startTime" db:"start_time"`
	EndTime   time.Time `json:"endTime" db:"end_time"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}

// SessionDetails is a session together with its billing line items.
type SessionDetails struct {
	Session
	Players   []SessionPlayer   `json:"players"`
	Discounts []SessionDiscount `json:"discounts"`
	Expenses  []SessionExpense  `json:"expenses"`
}
