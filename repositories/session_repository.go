package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/Dosada05/court-booking/models"
)

var (
	ErrSessionNotFound     = errors.New("session not found")
	ErrSessionInvalidCourt = errors.New("invalid court reference")
)

type SessionRepository interface {
	Create(ctx context.Context, exec SQLExecutor, session *models.Session) error
	GetByID(ctx context.Context, id int) (*models.Session, error)
	GetAll(ctx context.Context) ([]models.Session, error)
	Update(ctx context.Context, session *models.Session) error
	Delete(ctx context.Context, id int) error
}

type postgresSessionRepository struct {
	db *sql.DB
}

func NewPostgresSessionRepository(db *sql.DB) SessionRepository {
	return &postgresSessionRepository{db: db}
}

const sessionColumns = `id, court_id, date_play, court_cost, start_time, end_time, created_at, updated_at`

func scanSession(row rowScanner, s *models.Session) error {
	return row.Scan(&s.ID, &s.CourtID, &s.DatePlay, &s.CourtCost, &s.StartTime, &s.EndTime, &s.CreatedAt, &s.UpdatedAt)
}

func (r *postgresSessionRepository) Create(ctx context.Context, exec SQLExecutor, session *models.Session) error {
	query := `
		INSERT INTO sessions (court_id, date_play, court_cost, start_time, end_time)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at`

	err := executorOrDefault(exec, r.db).QueryRowContext(ctx, query,
		session.CourtID, session.DatePlay, session.CourtCost, session.StartTime, session.EndTime,
	).Scan(&session.ID, &session.CreatedAt, &session.UpdatedAt)

	return r.handleSessionError(err)
}

func (r *postgresSessionRepository) GetByID(ctx context.Context, id int) (*models.Session, error) {
	query := `SELECT ` + sessionColumns + ` FROM sessions WHERE id = $1`

	var session models.Session
	if err := scanSession(r.db.QueryRowContext(ctx, query, id), &session); err != nil {
		return nil, r.handleSessionError(err)
	}
	return &session, nil
}

func (r *postgresSessionRepository) GetAll(ctx context.Context) ([]models.Session, error) {
	query := `SELECT ` + sessionColumns + ` FROM sessions ORDER BY created_at DESC, id DESC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	sessions := make([]models.Session, 0)
	for rows.Next() {
		var session models.Session
		if err := scanSession(rows, &session); err != nil {
			return nil, err
		}
		sessions = append(sessions, session)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return sessions, nil
}

func (r *postgresSessionRepository) Update(ctx context.Context, session *models.Session) error {
	query := `
		UPDATE sessions
		SET court_id = $1, date_play = $2, court_cost = $3, start_time = $4, end_time = $5, updated_at = NOW()
		WHERE id = $6
		RETURNING updated_at`

	err := r.db.QueryRowContext(ctx, query,
		session.CourtID, session.DatePlay, session.CourtCost, session.StartTime, session.EndTime, session.ID,
	).Scan(&session.UpdatedAt)

	return r.handleSessionError(err)
}

// Delete removes the session; its line items go with it (ON DELETE CASCADE).
func (r *postgresSessionRepository) Delete(ctx context.Context, id int) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM sessions WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return checkAffectedRows(result, ErrSessionNotFound)
}

func (r *postgresSessionRepository) handleSessionError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return ErrSessionNotFound
	}
	if code, _, ok := pqErrorCode(err); ok && code == pgForeignKeyViolation {
		return ErrSessionInvalidCourt
	}
	return err
}
