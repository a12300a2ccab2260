package repositories

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindMissingIDsKeepsInputOrder(t *testing.T) {
	db, m, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	m.ExpectQuery(`SELECT id FROM players WHERE id = ANY\(\$1\)`).
		WithArgs(sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(3).AddRow(1))

	missing, err := findMissingIDs(context.Background(), db, "players", []int{9, 1, 3, 4})

	require.NoError(t, err)
	assert.Equal(t, []int{9, 4}, missing)
	assert.NoError(t, m.ExpectationsWereMet())
}

func TestFindMissingIDsEmptyInputSkipsQuery(t *testing.T) {
	db, m, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	missing, err := findMissingIDs(context.Background(), db, "courts", nil)

	require.NoError(t, err)
	assert.NotNil(t, missing)
	assert.Empty(t, missing)
	assert.NoError(t, m.ExpectationsWereMet())
}

func TestPqErrorCode(t *testing.T) {
	code, constraint, ok := pqErrorCode(&pq.Error{Code: pgUniqueViolation, Constraint: "players_user_name_key"})
	assert.True(t, ok)
	assert.Equal(t, pgUniqueViolation, code)
	assert.Equal(t, "players_user_name_key", constraint)

	_, _, ok = pqErrorCode(errors.New("plain"))
	assert.False(t, ok)
}

func TestForeignKeyColumn(t *testing.T) {
	tests := []struct {
		table, constraint, want string
	}{
		{"session_discounts", "session_discounts_discount_id_fkey", "discount_id"},
		{"session_expenses", "session_expenses_expenses_id_fkey", "expenses_id"},
		{"session_players", "session_players_player_id_fkey", "player_id"},
		{"session_players", "session_players_session_id_fkey", "session_id"},
		{"session_players", "sessions_court_id_fkey", ""},
		{"session_players", "session_players_player_id_key", ""},
		{"session_players", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.constraint, func(t *testing.T) {
			assert.Equal(t, tt.want, foreignKeyColumn(tt.table, tt.constraint))
		})
	}
}

func TestReferenceViolationUnwraps(t *testing.T) {
	err := error(&ReferenceViolation{Err: ErrSessionPlayerInvalidReference, Column: "player_id"})

	assert.ErrorIs(t, err, ErrSessionPlayerInvalidReference)
	assert.Contains(t, err.Error(), "player_id")

	var violation *ReferenceViolation
	require.True(t, errors.As(err, &violation))
	assert.Equal(t, "player_id", violation.Column)
}
