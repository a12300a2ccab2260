package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/Dosada05/court-booking/models"
)

var (
	ErrSessionDiscountNotFound         = errors.New("session discount not found")
	ErrSessionDiscountInvalidReference = errors.New("session discount references a missing session, discount or player")
)

type SessionDiscountRepository interface {
	Create(ctx context.Context, exec SQLExecutor, item *models.SessionDiscount) error
	GetByID(ctx context.Context, id int) (*models.SessionDiscount, error)
	GetAll(ctx context.Context) ([]models.SessionDiscount, error)
	ListBySession(ctx context.Context, sessionID int) ([]models.SessionDiscount, error)
	Update(ctx context.Context, item *models.SessionDiscount) error
	Delete(ctx context.Context, id int) error
}

type postgresSessionDiscountRepository struct {
	db *sql.DB
}

func NewPostgresSessionDiscountRepository(db *sql.DB) SessionDiscountRepository {
	return &postgresSessionDiscountRepository{db: db}
}

const sessionDiscountColumns = `id, session_id, discount_id, player_id, percent, total_amount, created_at, updated_at`

func scanSessionDiscount(row rowScanner, sd *models.SessionDiscount) error {
	return row.Scan(&sd.ID, &sd.SessionID, &sd.DiscountID, &sd.PlayerID, &sd.Percent, &sd.TotalAmount, &sd.CreatedAt, &sd.UpdatedAt)
}

func (r *postgresSessionDiscountRepository) Create(ctx context.Context, exec SQLExecutor, item *models.SessionDiscount) error {
	query := `
		INSERT INTO session_discounts (session_id, discount_id, player_id, percent, total_amount)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at`

	err := executorOrDefault(exec, r.db).QueryRowContext(ctx, query,
		item.SessionID, item.DiscountID, item.PlayerID, item.Percent, item.TotalAmount,
	).Scan(&item.ID, &item.CreatedAt, &item.UpdatedAt)

	return r.handleError(err)
}

func (r *postgresSessionDiscountRepository) GetByID(ctx context.Context, id int) (*models.SessionDiscount, error) {
	query := `SELECT ` + sessionDiscountColumns + ` FROM session_discounts WHERE id = $1`

	var item models.SessionDiscount
	if err := scanSessionDiscount(r.db.QueryRowContext(ctx, query, id), &item); err != nil {
		return nil, r.handleError(err)
	}
	return &item, nil
}

func (r *postgresSessionDiscountRepository) GetAll(ctx context.Context) ([]models.SessionDiscount, error) {
	query := `SELECT ` + sessionDiscountColumns + ` FROM session_discounts ORDER BY created_at DESC, id DESC`
	return r.list(ctx, query)
}

func (r *postgresSessionDiscountRepository) ListBySession(ctx context.Context, sessionID int) ([]models.SessionDiscount, error) {
	query := `SELECT ` + sessionDiscountColumns + ` FROM session_discounts WHERE session_id = $1 ORDER BY id`
	return r.list(ctx, query, sessionID)
}

func (r *postgresSessionDiscountRepository) list(ctx context.Context, query string, args ...interface{}) ([]models.SessionDiscount, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]models.SessionDiscount, 0)
	for rows.Next() {
		var item models.SessionDiscount
		if err := scanSessionDiscount(rows, &item); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *postgresSessionDiscountRepository) Update(ctx context.Context, item *models.SessionDiscount) error {
	query := `
		UPDATE session_discounts
		SET session_id = $1, discount_id = $2, player_id = $3, percent = $4, total_amount = $5, updated_at = NOW()
		WHERE id = $6
		RETURNING updated_at`

	err := r.db.QueryRowContext(ctx, query,
		item.SessionID, item.DiscountID, item.PlayerID, item.Percent, item.TotalAmount, item.ID,
	).Scan(&item.UpdatedAt)

	return r.handleError(err)
}

func (r *postgresSessionDiscountRepository) Delete(ctx context.Context, id int) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM session_discounts WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return checkAffectedRows(result, ErrSessionDiscountNotFound)
}

func (r *postgresSessionDiscountRepository) handleError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return ErrSessionDiscountNotFound
	}
	if code, constraint, ok := pqErrorCode(err); ok && code == pgForeignKeyViolation {
		return &ReferenceViolation{Err: ErrSessionDiscountInvalidReference, Column: foreignKeyColumn("session_discounts", constraint)}
	}
	return err
}
