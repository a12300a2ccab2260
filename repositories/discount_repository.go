package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/Dosada05/court-booking/models"
)

var (
	ErrDiscountNotFound = errors.New("discount not found")
	ErrDiscountInUse    = errors.New("discount cannot be deleted as it is applied to sessions")
)

type DiscountRepository interface {
	Create(ctx context.Context, discount *models.Discount) error
	GetByID(ctx context.Context, id int) (*models.Discount, error)
	GetAll(ctx context.Context) ([]models.Discount, error)
	Update(ctx context.Context, discount *models.Discount) error
	Delete(ctx context.Context, id int) error
	FindMissingIDs(ctx context.Context, ids []int) ([]int, error)
}

type postgresDiscountRepository struct {
	db *sql.DB
}

func NewPostgresDiscountRepository(db *sql.DB) DiscountRepository {
	return &postgresDiscountRepository{db: db}
}

func (r *postgresDiscountRepository) Create(ctx context.Context, discount *models.Discount) error {
	query := `INSERT INTO discounts (name) VALUES ($1) RETURNING id, created_at, updated_at`
	return r.db.QueryRowContext(ctx, query, discount.Name).Scan(&discount.ID, &discount.CreatedAt, &discount.UpdatedAt)
}

func (r *postgresDiscountRepository) GetByID(ctx context.Context, id int) (*models.Discount, error) {
	query := `SELECT id, name, created_at, updated_at FROM discounts WHERE id = $1`

	var d models.Discount
	err := r.db.QueryRowContext(ctx, query, id).Scan(&d.ID, &d.Name, &d.CreatedAt, &d.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrDiscountNotFound
		}
		return nil, err
	}
	return &d, nil
}

func (r *postgresDiscountRepository) GetAll(ctx context.Context) ([]models.Discount, error) {
	query := `SELECT id, name, created_at, updated_at FROM discounts ORDER BY created_at DESC, id DESC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	discounts := make([]models.Discount, 0)
	for rows.Next() {
		var d models.Discount
		if err := rows.Scan(&d.ID, &d.Name, &d.CreatedAt, &d.UpdatedAt); err != nil {
			return nil, err
		}
		discounts = append(discounts, d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return discounts, nil
}

func (r *postgresDiscountRepository) Update(ctx context.Context, discount *models.Discount) error {
	query := `UPDATE discounts SET name = $1, updated_at = NOW() WHERE id = $2 RETURNING updated_at`

	err := r.db.QueryRowContext(ctx, query, discount.Name, discount.ID).Scan(&discount.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrDiscountNotFound
	}
	return err
}

func (r *postgresDiscountRepository) Delete(ctx context.Context, id int) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM discounts WHERE id = $1`, id)
	if err != nil {
		if code, _, ok := pqErrorCode(err); ok && code == pgForeignKeyViolation {
			return ErrDiscountInUse
		}
		return err
	}
	return checkAffectedRows(result, ErrDiscountNotFound)
}

func (r *postgresDiscountRepository) FindMissingIDs(ctx context.Context, ids []int) ([]int, error) {
	return findMissingIDs(ctx, r.db, "discounts", ids)
}
