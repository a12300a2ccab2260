package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/Dosada05/court-booking/models"
)

var (
	ErrSessionExpenseNotFound         = errors.New("session expense not found")
	ErrSessionExpenseInvalidReference = errors.New("session expense references a missing session, expense or player")
)

type SessionExpenseRepository interface {
	Create(ctx context.Context, exec SQLExecutor, item *models.SessionExpense) error
	GetByID(ctx context.Context, id int) (*models.SessionExpense, error)
	GetAll(ctx context.Context) ([]models.SessionExpense, error)
	ListBySession(ctx context.Context, sessionID int) ([]models.SessionExpense, error)
	Update(ctx context.Context, item *models.SessionExpense) error
	Delete(ctx context.Context, id int) error
}

type postgresSessionExpenseRepository struct {
	db *sql.DB
}

func NewPostgresSessionExpenseRepository(db *sql.DB) SessionExpenseRepository {
	return &postgresSessionExpenseRepository{db: db}
}

const sessionExpenseColumns = `id, session_id, expenses_id, player_id, quantity, amount_total, created_at, updated_at`

func scanSessionExpense(row rowScanner, se *models.SessionExpense) error {
	return row.Scan(&se.ID, &se.SessionID, &se.ExpenseID, &se.PlayerID, &se.Quantity, &se.AmountTotal, &se.CreatedAt, &se.UpdatedAt)
}

func (r *postgresSessionExpenseRepository) Create(ctx context.Context, exec SQLExecutor, item *models.SessionExpense) error {
	query := `
		INSERT INTO session_expenses (session_id, expenses_id, player_id, quantity, amount_total)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at`

	err := executorOrDefault(exec, r.db).QueryRowContext(ctx, query,
		item.SessionID, item.ExpenseID, item.PlayerID, item.Quantity, item.AmountTotal,
	).Scan(&item.ID, &item.CreatedAt, &item.UpdatedAt)

	return r.handleError(err)
}

func (r *postgresSessionExpenseRepository) GetByID(ctx context.Context, id int) (*models.SessionExpense, error) {
	query := `SELECT ` + sessionExpenseColumns + ` FROM session_expenses WHERE id = $1`

	var item models.SessionExpense
	if err := scanSessionExpense(r.db.QueryRowContext(ctx, query, id), &item); err != nil {
		return nil, r.handleError(err)
	}
	return &item, nil
}

func (r *postgresSessionExpenseRepository) GetAll(ctx context.Context) ([]models.SessionExpense, error) {
	query := `SELECT ` + sessionExpenseColumns + ` FROM session_expenses ORDER BY created_at DESC, id DESC`
	return r.list(ctx, query)
}

func (r *postgresSessionExpenseRepository) ListBySession(ctx context.Context, sessionID int) ([]models.SessionExpense, error) {
	query := `SELECT ` + sessionExpenseColumns + ` FROM session_expenses WHERE session_id = $1 ORDER BY id`
	return r.list(ctx, query, sessionID)
}

func (r *postgresSessionExpenseRepository) list(ctx context.Context, query string, args ...interface{}) ([]models.SessionExpense, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]models.SessionExpense, 0)
	for rows.Next() {
		var item models.SessionExpense
		if err := scanSessionExpense(rows, &item); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *postgresSessionExpenseRepository) Update(ctx context.Context, item *models.SessionExpense) error {
	query := `
		UPDATE session_expenses
		SET session_id = $1, expenses_id = $2, player_id = $3, quantity = $4, amount_total = $5, updated_at = NOW()
		WHERE id = $6
		RETURNING updated_at`

	err := r.db.QueryRowContext(ctx, query,
		item.SessionID, item.ExpenseID, item.PlayerID, item.Quantity, item.AmountTotal, item.ID,
	).Scan(&item.UpdatedAt)

	return r.handleError(err)
}

func (r *postgresSessionExpenseRepository) Delete(ctx context.Context, id int) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM session_expenses WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return checkAffectedRows(result, ErrSessionExpenseNotFound)
}

func (r *postgresSessionExpenseRepository) handleError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return ErrSessionExpenseNotFound
	}
	if code, constraint, ok := pqErrorCode(err); ok && code == pgForeignKeyViolation {
		return &ReferenceViolation{Err: ErrSessionExpenseInvalidReference, Column: foreignKeyColumn("session_expenses", constraint)}
	}
	return err
}
