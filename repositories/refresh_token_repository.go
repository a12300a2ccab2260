package repositories

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/Dosada05/court-booking/models"
)

var ErrRefreshTokenNotFound = errors.New("refresh token not found")

type RefreshTokenRepository interface {
	Create(ctx context.Context, token *models.RefreshToken) error
	FindActiveByPlayerIP(ctx context.Context, playerID int, ipAddress string) (*models.RefreshToken, error)
	FindActiveByToken(ctx context.Context, token string) (*models.RefreshToken, error)
	ExtendExpiry(ctx context.Context, id int, expiresAt time.Time) error
	DeleteByToken(ctx context.Context, token string) error
	DeleteExpired(ctx context.Context) (int64, error)
}

type postgresRefreshTokenRepository struct {
	db *sql.DB
}

func NewPostgresRefreshTokenRepository(db *sql.DB) RefreshTokenRepository {
	return &postgresRefreshTokenRepository{db: db}
}

const refreshTokenColumns = `id, player_id, refresh_token, ip_address, expires_at, created_at, updated_at`

func scanRefreshToken(row rowScanner, t *models.RefreshToken) error {
	return row.Scan(&t.ID, &t.PlayerID, &t.Token, &t.IPAddress, &t.ExpiresAt, &t.CreatedAt, &t.UpdatedAt)
}

func (r *postgresRefreshTokenRepository) Create(ctx context.Context, token *models.RefreshToken) error {
	query := `
		INSERT INTO refresh_tokens (player_id, refresh_token, ip_address, expires_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at`

	return r.db.QueryRowContext(ctx, query,
		token.PlayerID, token.Token, token.IPAddress, token.ExpiresAt,
	).Scan(&token.ID, &token.CreatedAt, &token.UpdatedAt)
}

// FindActiveByPlayerIP returns the newest unexpired token issued to the player from ipAddress.
func (r *postgresRefreshTokenRepository) FindActiveByPlayerIP(ctx context.Context, playerID int, ipAddress string) (*models.RefreshToken, error) {
	query := `SELECT ` + refreshTokenColumns + `
		FROM refresh_tokens
		WHERE player_id = $1 AND ip_address = $2 AND expires_at > NOW()
		ORDER BY expires_at DESC
		LIMIT 1`
	return r.getOne(ctx, query, playerID, ipAddress)
}

func (r *postgresRefreshTokenRepository) FindActiveByToken(ctx context.Context, token string) (*models.RefreshToken, error) {
	query := `SELECT ` + refreshTokenColumns + ` FROM refresh_tokens WHERE refresh_token = $1 AND expires_at > NOW()`
	return r.getOne(ctx, query, token)
}

func (r *postgresRefreshTokenRepository) getOne(ctx context.Context, query string, args ...interface{}) (*models.RefreshToken, error) {
	var token models.RefreshToken
	if err := scanRefreshToken(r.db.QueryRowContext(ctx, query, args...), &token); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrRefreshTokenNotFound
		}
		return nil, err
	}
	return &token, nil
}

func (r *postgresRefreshTokenRepository) ExtendExpiry(ctx context.Context, id int, expiresAt time.Time) error {
	result, err := r.db.ExecContext(ctx, `UPDATE refresh_tokens SET expires_at = $1, updated_at = NOW() WHERE id = $2`, expiresAt, id)
	if err != nil {
		return err
	}
	return checkAffectedRows(result, ErrRefreshTokenNotFound)
}

func (r *postgresRefreshTokenRepository) DeleteByToken(ctx context.Context, token string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM refresh_tokens WHERE refresh_token = $1`, token)
	if err != nil {
		return err
	}
	return checkAffectedRows(result, ErrRefreshTokenNotFound)
}

func (r *postgresRefreshTokenRepository) DeleteExpired(ctx context.Context) (int64, error) {
	result, err := r.db.ExecContext(ctx, `DELETE FROM refresh_tokens WHERE expires_at <= NOW()`)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}
