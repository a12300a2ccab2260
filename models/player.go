package models

import "time"

// Player представляет игрока (он же учётная запись для входа).
type Player struct {
	ID          int       `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	PhoneNumber *string   `json:"phoneNumber,omitempty" db:"phone_number"`
	Email       *string   `json:"email,omitempty" db:"email"`
	UserName    string    `json:"userName" db:"user_name"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time `json:"updatedAt" db:"updated_at"`

	PasswordHash           string     `json:"-" db:"password_hash"`
	PasswordResetToken     *string    `json:"-" db:"password_reset_token"`
	PasswordResetExpiresAt *time.Time `json:"-" db:"password_reset_expires_at"`
}

// AuthenticatedPlayer is the login response: the player plus issued tokens.
type AuthenticatedPlayer struct {
	Player
	Token        string `json:"token"`
	RefreshToken string `json:"refreshToken"`
}
