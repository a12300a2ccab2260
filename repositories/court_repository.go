package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/Dosada05/court-booking/models"
)

var (
	ErrCourtNotFound = errors.New("court not found")
	ErrCourtInUse    = errors.New("court cannot be deleted as it has sessions")
)

type CourtRepository interface {
	Create(ctx context.Context, court *models.Court) error
	GetByID(ctx context.Context, id int) (*models.Court, error)
	GetAll(ctx context.Context) ([]models.Court, error)
	Update(ctx context.Context, court *models.Court) error
	UpdateImageKey(ctx context.Context, id int, imageKey *string) error
	Delete(ctx context.Context, id int) error
	FindMissingIDs(ctx context.Context, ids []int) ([]int, error)
}

type postgresCourtRepository struct {
	db *sql.DB
}

func NewPostgresCourtRepository(db *sql.DB) CourtRepository {
	return &postgresCourtRepository{db: db}
}

const courtColumns = `id, name, address, location, price_fixed, phone_number, image_key, created_at, updated_at`

func scanCourt(row rowScanner, c *models.Court) error {
	return row.Scan(&c.ID, &c.Name, &c.Address, &c.Location, &c.PriceFixed, &c.PhoneNumber, &c.ImageKey, &c.CreatedAt, &c.UpdatedAt)
}

func (r *postgresCourtRepository) Create(ctx context.Context, court *models.Court) error {
	query := `
		INSERT INTO courts (name, address, location, price_fixed, phone_number)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at`

	return r.db.QueryRowContext(ctx, query,
		court.Name, court.Address, court.Location, court.PriceFixed, court.PhoneNumber,
	).Scan(&court.ID, &court.CreatedAt, &court.UpdatedAt)
}

func (r *postgresCourtRepository) GetByID(ctx context.Context, id int) (*models.Court, error) {
	query := `SELECT ` + courtColumns + ` FROM courts WHERE id = $1`

	var court models.Court
	if err := scanCourt(r.db.QueryRowContext(ctx, query, id), &court); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrCourtNotFound
		}
		return nil, err
	}
	return &court, nil
}

func (r *postgresCourtRepository) GetAll(ctx context.Context) ([]models.Court, error) {
	query := `SELECT ` + courtColumns + ` FROM courts ORDER BY created_at DESC, id DESC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	courts := make([]models.Court, 0)
	for rows.Next() {
		var court models.Court
		if err := scanCourt(rows, &court); err != nil {
			return nil, err
		}
		courts = append(courts, court)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return courts, nil
}

func (r *postgresCourtRepository) Update(ctx context.Context, court *models.Court) error {
	query := `
		UPDATE courts
		SET name = $1, address = $2, location = $3, price_fixed = $4, phone_number = $5, updated_at = NOW()
		WHERE id = $6
		RETURNING updated_at`

	err := r.db.QueryRowContext(ctx, query,
		court.Name, court.Address, court.Location, court.PriceFixed, court.PhoneNumber, court.ID,
	).Scan(&court.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrCourtNotFound
	}
	return err
}

func (r *postgresCourtRepository) UpdateImageKey(ctx context.Context, id int, imageKey *string) error {
	result, err := r.db.ExecContext(ctx, `UPDATE courts SET image_key = $1, updated_at = NOW() WHERE id = $2`, imageKey, id)
	if err != nil {
		return err
	}
	return checkAffectedRows(result, ErrCourtNotFound)
}

func (r *postgresCourtRepository) Delete(ctx context.Context, id int) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM courts WHERE id = $1`, id)
	if err != nil {
		// sessions.court_id ON DELETE RESTRICT
		if code, _, ok := pqErrorCode(err); ok && code == pgForeignKeyViolation {
			return ErrCourtInUse
		}
		return err
	}
	return checkAffectedRows(result, ErrCourtNotFound)
}

func (r *postgresCourtRepository) FindMissingIDs(ctx context.Context, ids []int) ([]int, error) {
	return findMissingIDs(ctx, r.db, "courts", ids)
}
