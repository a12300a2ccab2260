package models

import "time"

// RefreshToken хранит выданный refresh-токен. Для пары (игрок, IP) держим одну активную запись.
type RefreshToken struct {
	ID        int       `json:"id" db:"id"`
	PlayerID  int       `json:"playerId" db:"player_id"`
	Token     string    `json:"refreshToken" db:"refresh_token"`
	IPAddress string    `json:"ipAddress" db:"ip_address"`
	ExpiresAt time.Time `json:"expiresAt" db:"expires_at"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}
