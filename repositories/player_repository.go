package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Dosada05/court-booking/models"
)

var (
	ErrPlayerNotFound         = errors.New("player not found")
	ErrPlayerIdentityConflict = errors.New("player phone number, username or email conflict")
	ErrPlayerInUse            = errors.New("player is referenced by sessions")
)

type PlayerRepository interface {
	Create(ctx context.Context, player *models.Player) error
	GetByID(ctx context.Context, id int) (*models.Player, error)
	GetByUserName(ctx context.Context, userName string) (*models.Player, error)
	GetByEmail(ctx context.Context, email string) (*models.Player, error)
	GetAll(ctx context.Context) ([]models.Player, error)
	Update(ctx context.Context, player *models.Player) error
	Delete(ctx context.Context, id int) error
	ExistsWithIdentity(ctx context.Context, phoneNumber, userName, email *string, excludeID int) (bool, error)
	FindMissingIDs(ctx context.Context, ids []int) ([]int, error)
	SetPasswordResetToken(ctx context.Context, id int, token string, expiresAt time.Time) error
	GetByPasswordResetToken(ctx context.Context, token string) (*models.Player, error)
	UpdatePassword(ctx context.Context, id int, passwordHash string) error
}

type postgresPlayerRepository struct {
	db *sql.DB
}

func NewPostgresPlayerRepository(db *sql.DB) PlayerRepository {
	return &postgresPlayerRepository{db: db}
}

const playerColumns = `id, name, phone_number, email, user_name, password_hash,
	password_reset_token, password_reset_expires_at, created_at, updated_at`

func scanPlayer(row rowScanner, p *models.Player) error {
	return row.Scan(
		&p.ID, &p.Name, &p.PhoneNumber, &p.Email, &p.UserName, &p.PasswordHash,
		&p.PasswordResetToken, &p.PasswordResetExpiresAt, &p.CreatedAt, &p.UpdatedAt,
	)
}

func (r *postgresPlayerRepository) Create(ctx context.Context, player *models.Player) error {
	query := `
		INSERT INTO players (name, phone_number, email, user_name, password_hash)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at`

	err := r.db.QueryRowContext(ctx, query,
		player.Name,
		player.PhoneNumber,
		player.Email,
		player.UserName,
		player.PasswordHash,
	).Scan(&player.ID, &player.CreatedAt, &player.UpdatedAt)

	return r.handlePlayerError(err)
}

func (r *postgresPlayerRepository) GetByID(ctx context.Context, id int) (*models.Player, error) {
	query := `SELECT ` + playerColumns + ` FROM players WHERE id = $1`
	return r.getOne(ctx, query, id)
}

func (r *postgresPlayerRepository) GetByUserName(ctx context.Context, userName string) (*models.Player, error) {
	query := `SELECT ` + playerColumns + ` FROM players WHERE user_name = $1`
	return r.getOne(ctx, query, userName)
}

func (r *postgresPlayerRepository) GetByEmail(ctx context.Context, email string) (*models.Player, error) {
	query := `SELECT ` + playerColumns + ` FROM players WHERE email = $1`
	return r.getOne(ctx, query, email)
}

func (r *postgresPlayerRepository) GetByPasswordResetToken(ctx context.Context, token string) (*models.Player, error) {
	query := `SELECT ` + playerColumns + ` FROM players WHERE password_reset_token = $1`
	return r.getOne(ctx, query, token)
}

func (r *postgresPlayerRepository) getOne(ctx context.Context, query string, arg interface{}) (*models.Player, error) {
	var player models.Player
	if err := scanPlayer(r.db.QueryRowContext(ctx, query, arg), &player); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrPlayerNotFound
		}
		return nil, err
	}
	return &player, nil
}

func (r *postgresPlayerRepository) GetAll(ctx context.Context) ([]models.Player, error) {
	query := `SELECT ` + playerColumns + ` FROM players ORDER BY created_at DESC, id DESC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	players := make([]models.Player, 0)
	for rows.Next() {
		var player models.Player
		if err := scanPlayer(rows, &player); err != nil {
			return nil, err
		}
		players = append(players, player)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return players, nil
}

func (r *postgresPlayerRepository) Update(ctx context.Context, player *models.Player) error {
	query := `
		UPDATE players
		SET name = $1, phone_number = $2, email = $3, user_name = $4, password_hash = $5, updated_at = NOW()
		WHERE id = $6
		RETURNING updated_at`

	err := r.db.QueryRowContext(ctx, query,
		player.Name,
		player.PhoneNumber,
		player.Email,
		player.UserName,
		player.PasswordHash,
		player.ID,
	).Scan(&player.UpdatedAt)

	return r.handlePlayerError(err)
}

func (r *postgresPlayerRepository) Delete(ctx context.Context, id int) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM players WHERE id = $1`, id)
	if err != nil {
		return r.handlePlayerError(err)
	}
	return checkAffectedRows(result, ErrPlayerNotFound)
}

// ExistsWithIdentity reports whether a player other than excludeID shares any
// of the non-empty identity fields. No fields means no match.
func (r *postgresPlayerRepository) ExistsWithIdentity(ctx context.Context, phoneNumber, userName, email *string, excludeID int) (bool, error) {
	conditions := make([]string, 0, 3)
	args := []interface{}{}
	argID := 1

	if phoneNumber != nil && *phoneNumber != "" {
		conditions = append(conditions, fmt.Sprintf("phone_number = $%d", argID))
		args = append(args, *phoneNumber)
		argID++
	}
	if userName != nil && *userName != "" {
		conditions = append(conditions, fmt.Sprintf("user_name = $%d", argID))
		args = append(args, *userName)
		argID++
	}
	if email != nil && *email != "" {
		conditions = append(conditions, fmt.Sprintf("email = $%d", argID))
		args = append(args, *email)
		argID++
	}
	if len(conditions) == 0 {
		return false, nil
	}

	query := `SELECT EXISTS (SELECT 1 FROM players WHERE (` + strings.Join(conditions, " OR ") + `)`
	if excludeID > 0 {
		query += fmt.Sprintf(" AND id <> $%d", argID)
		args = append(args, excludeID)
	}
	query += `)`

	var exists bool
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *postgresPlayerRepository) FindMissingIDs(ctx context.Context, ids []int) ([]int, error) {
	return findMissingIDs(ctx, r.db, "players", ids)
}

func (r *postgresPlayerRepository) SetPasswordResetToken(ctx context.Context, id int, token string, expiresAt time.Time) error {
	query := `UPDATE players SET password_reset_token = $1, password_reset_expires_at = $2, updated_at = NOW() WHERE id = $3`
	result, err := r.db.ExecContext(ctx, query, token, expiresAt, id)
	if err != nil {
		return err
	}
	return checkAffectedRows(result, ErrPlayerNotFound)
}

// UpdatePassword also clears any pending reset token.
func (r *postgresPlayerRepository) UpdatePassword(ctx context.Context, id int, passwordHash string) error {
	query := `
		UPDATE players
		SET password_hash = $1, password_reset_token = NULL, password_reset_expires_at = NULL, updated_at = NOW()
		WHERE id = $2`
	result, err := r.db.ExecContext(ctx, query, passwordHash, id)
	if err != nil {
		return err
	}
	return checkAffectedRows(result, ErrPlayerNotFound)
}

func (r *postgresPlayerRepository) handlePlayerError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return ErrPlayerNotFound
	}
	if code, _, ok := pqErrorCode(err); ok {
		switch code {
		case pgUniqueViolation:
			return ErrPlayerIdentityConflict
		case pgForeignKeyViolation:
			return ErrPlayerInUse
		}
	}
	return err
}
