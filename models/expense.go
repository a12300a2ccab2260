package models

import "time"

// Expense - позиция каталога расходов (вода, воланы, аренда ракетки и т.п.).
type Expense struct {
	ID        int       `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Amount    float64   `json:"amount" db:"amount"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}
