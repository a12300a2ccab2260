package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/Dosada05/court-booking/models"
)

var (
	ErrExpenseNotFound = errors.New("expense not found")
	ErrExpenseInUse    = errors.New("expense cannot be deleted as it is consumed in sessions")
)

type ExpenseRepository interface {
	Create(ctx context.Context, expense *models.Expense) error
	GetByID(ctx context.Context, id int) (*models.Expense, error)
	GetAll(ctx context.Context) ([]models.Expense, error)
	Update(ctx context.Context, expense *models.Expense) error
	Delete(ctx context.Context, id int) error
	FindMissingIDs(ctx context.Context, ids []int) ([]int, error)
}

type postgresExpenseRepository struct {
	db *sql.DB
}

func NewPostgresExpenseRepository(db *sql.DB) ExpenseRepository {
	return &postgresExpenseRepository{db: db}
}

func (r *postgresExpenseRepository) Create(ctx context.Context, expense *models.Expense) error {
	query := `INSERT INTO expenses (name, amount) VALUES ($1, $2) RETURNING id, created_at, updated_at`
	return r.db.QueryRowContext(ctx, query, expense.Name, expense.Amount).
		Scan(&expense.ID, &expense.CreatedAt, &expense.UpdatedAt)
}

func (r *postgresExpenseRepository) GetByID(ctx context.Context, id int) (*models.Expense, error) {
	query := `SELECT id, name, amount, created_at, updated_at FROM expenses WHERE id = $1`

	var e models.Expense
	err := r.db.QueryRowContext(ctx, query, id).Scan(&e.ID, &e.Name, &e.Amount, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrExpenseNotFound
		}
		return nil, err
	}
	return &e, nil
}

func (r *postgresExpenseRepository) GetAll(ctx context.Context) ([]models.Expense, error) {
	query := `SELECT id, name, amount, created_at, updated_at FROM expenses ORDER BY created_at DESC, id DESC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	expenses := make([]models.Expense, 0)
	for rows.Next() {
		var e models.Expense
		if err := rows.Scan(&e.ID, &e.Name, &e.Amount, &e.CreatedAt, &e.UpdatedAt); err != nil {
			return nil, err
		}
		expenses = append(expenses, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return expenses, nil
}

func (r *postgresExpenseRepository) Update(ctx context.Context, expense *models.Expense) error {
	query := `UPDATE expenses SET name = $1, amount = $2, updated_at = NOW() WHERE id = $3 RETURNING updated_at`

	err := r.db.QueryRowContext(ctx, query, expense.Name, expense.Amount, expense.ID).Scan(&expense.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrExpenseNotFound
	}
	return err
}

func (r *postgresExpenseRepository) Delete(ctx context.Context, id int) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM expenses WHERE id = $1`, id)
	if err != nil {
		if code, _, ok := pqErrorCode(err); ok && code == pgForeignKeyViolation {
			return ErrExpenseInUse
		}
		return err
	}
	return checkAffectedRows(result, ErrExpenseNotFound)
}

func (r *postgresExpenseRepository) FindMissingIDs(ctx context.Context, ids []int) ([]int, error) {
	return findMissingIDs(ctx, r.db, "expenses", ids)
}
