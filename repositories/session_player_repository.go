package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/Dosada05/court-booking/models"
)

var (
	ErrSessionPlayerNotFound         = errors.New("session player not found")
	ErrSessionPlayerInvalidReference = errors.New("session player references a missing session or player")
)

type SessionPlayerRepository interface {
	Create(ctx context.Context, exec SQLExecutor, item *models.SessionPlayer) error
	GetByID(ctx context.Context, id int) (*models.SessionPlayer, error)
	GetAll(ctx context.Context) ([]models.SessionPlayer, error)
	ListBySession(ctx context.Context, sessionID int) ([]models.SessionPlayer, error)
	Update(ctx context.Context, item *models.SessionPlayer) error
	Delete(ctx context.Context, id int) error
}

type postgresSessionPlayerRepository struct {
	db *sql.DB
}

func NewPostgresSessionPlayerRepository(db *sql.DB) SessionPlayerRepository {
	return &postgresSessionPlayerRepository{db: db}
}

const sessionPlayerColumns = `id, session_id, player_id, start_time, end_time, total_amount, is_payment, created_at, updated_at`

func scanSessionPlayer(row rowScanner, sp *models.SessionPlayer) error {
	return row.Scan(&sp.ID, &sp.SessionID, &sp.PlayerID, &sp.StartTime, &sp.EndTime, &sp.TotalAmount, &sp.IsPayment, &sp.CreatedAt, &sp.UpdatedAt)
}

func (r *postgresSessionPlayerRepository) Create(ctx context.Context, exec SQLExecutor, item *models.SessionPlayer) error {
	query := `
		INSERT INTO session_players (session_id, player_id, start_time, end_time, total_amount, is_payment)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at`

	err := executorOrDefault(exec, r.db).QueryRowContext(ctx, query,
		item.SessionID, item.PlayerID, item.StartTime, item.EndTime, item.TotalAmount, item.IsPayment,
	).Scan(&item.ID, &item.CreatedAt, &item.UpdatedAt)

	return r.handleError(err)
}

func (r *postgresSessionPlayerRepository) GetByID(ctx context.Context, id int) (*models.SessionPlayer, error) {
	query := `SELECT ` + sessionPlayerColumns + ` FROM session_players WHERE id = $1`

	var item models.SessionPlayer
	if err := scanSessionPlayer(r.db.QueryRowContext(ctx, query, id), &item); err != nil {
		return nil, r.handleError(err)
	}
	return &item, nil
}

func (r *postgresSessionPlayerRepository) GetAll(ctx context.Context) ([]models.SessionPlayer, error) {
	query := `SELECT ` + sessionPlayerColumns + ` FROM session_players ORDER BY created_at DESC, id DESC`
	return r.list(ctx, query)
}

func (r *postgresSessionPlayerRepository) ListBySession(ctx context.Context, sessionID int) ([]models.SessionPlayer, error) {
	query := `SELECT ` + sessionPlayerColumns + ` FROM session_players WHERE session_id = $1 ORDER BY id`
	return r.list(ctx, query, sessionID)
}

func (r *postgresSessionPlayerRepository) list(ctx context.Context, query string, args ...interface{}) ([]models.SessionPlayer, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]models.SessionPlayer, 0)
	for rows.Next() {
		var item models.SessionPlayer
		if err := scanSessionPlayer(rows, &item); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *postgresSessionPlayerRepository) Update(ctx context.Context, item *models.SessionPlayer) error {
	query := `
		UPDATE session_players
		SET session_id = $1, player_id = $2, start_time = $3, end_time = $4, total_amount = $5, is_payment = $6, updated_at = NOW()
		WHERE id = $7
		RETURNING updated_at`

	err := r.db.QueryRowContext(ctx, query,
		item.SessionID, item.PlayerID, item.StartTime, item.EndTime, item.TotalAmount, item.IsPayment, item.ID,
	).Scan(&item.UpdatedAt)

	return r.handleError(err)
}

func (r *postgresSessionPlayerRepository) Delete(ctx context.Context, id int) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM session_players WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return checkAffectedRows(result, ErrSessionPlayerNotFound)
}

func (r *postgresSessionPlayerRepository) handleError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return ErrSessionPlayerNotFound
	}
	if code, constraint, ok := pqErrorCode(err); ok && code == pgForeignKeyViolation {
		return &ReferenceViolation{Err: ErrSessionPlayerInvalidReference, Column: foreignKeyColumn("session_players", constraint)}
	}
	return err
}
