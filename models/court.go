package models

import "time"

// Court представляет корт, который сдаётся в аренду.
type Court struct {
	ID          int       `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	Address     string    `json:"address" db:"address"`
	Location    *string   `json:"location,omitempty" db:"location"`
	PriceFixed  float64   `json:"priceFixed" db:"price_fixed"`
	PhoneNumber *string   `json:"phoneNumber,omitempty" db:"phone_number"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time `json:"updatedAt" db:"updated_at"`

	ImageKey *string `json:"-" db:"image_key"`
	ImageURL *string `json:"imageUrl,omitempty" db:"-"`
}
