package services

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/Dosada05/court-booking/models"
	"github.com/Dosada05/court-booking/repositories"
	"github.com/Dosada05/court-booking/storage"
	"github.com/stretchr/testify/mock"
)

type mockPlayerRepo struct{ mock.Mock }

func (m *mockPlayerRepo) Create(ctx context.Context, player *models.Player) error {
	return m.Called(ctx, player).Error(0)
}

func (m *mockPlayerRepo) GetByID(ctx context.Context, id int) (*models.Player, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Player), args.Error(1)
}

func (m *mockPlayerRepo) GetByUserName(ctx context.Context, userName string) (*models.Player, error) {
	args := m.Called(ctx, userName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Player), args.Error(1)
}

func (m *mockPlayerRepo) GetByEmail(ctx context.Context, email string) (*models.Player, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Player), args.Error(1)
}

func (m *mockPlayerRepo) GetAll(ctx context.Context) ([]models.Player, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Player), args.Error(1)
}

func (m *mockPlayerRepo) Update(ctx context.Context, player *models.Player) error {
	return m.Called(ctx, player).Error(0)
}

func (m *mockPlayerRepo) Delete(ctx context.Context, id int) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockPlayerRepo) ExistsWithIdentity(ctx context.Context, phoneNumber, userName, email *string, excludeID int) (bool, error) {
	args := m.Called(ctx, phoneNumber, userName, email, excludeID)
	return args.Bool(0), args.Error(1)
}

func (m *mockPlayerRepo) FindMissingIDs(ctx context.Context, ids []int) ([]int, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]int), args.Error(1)
}

func (m *mockPlayerRepo) SetPasswordResetToken(ctx context.Context, id int, token string, expiresAt time.Time) error {
	return m.Called(ctx, id, token, expiresAt).Error(0)
}

func (m *mockPlayerRepo) GetByPasswordResetToken(ctx context.Context, token string) (*models.Player, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Player), args.Error(1)
}

func (m *mockPlayerRepo) UpdatePassword(ctx context.Context, id int, passwordHash string) error {
	return m.Called(ctx, id, passwordHash).Error(0)
}

type mockCourtRepo struct{ mock.Mock }

func (m *mockCourtRepo) Create(ctx context.Context, court *models.Court) error {
	return m.Called(ctx, court).Error(0)
}

func (m *mockCourtRepo) GetByID(ctx context.Context, id int) (*models.Court, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Court), args.Error(1)
}

func (m *mockCourtRepo) GetAll(ctx context.Context) ([]models.Court, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Court), args.Error(1)
}

func (m *mockCourtRepo) Update(ctx context.Context, court *models.Court) error {
	return m.Called(ctx, court).Error(0)
}

func (m *mockCourtRepo) UpdateImageKey(ctx context.Context, id int, imageKey *string) error {
	return m.Called(ctx, id, imageKey).Error(0)
}

func (m *mockCourtRepo) Delete(ctx context.Context, id int) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockCourtRepo) FindMissingIDs(ctx context.Context, ids []int) ([]int, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]int), args.Error(1)
}

type mockDiscountRepo struct{ mock.Mock }

func (m *mockDiscountRepo) Create(ctx context.Context, d *models.Discount) error {
	return m.Called(ctx, d).Error(0)
}

func (m *mockDiscountRepo) GetByID(ctx context.Context, id int) (*models.Discount, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Discount), args.Error(1)
}

func (m *mockDiscountRepo) GetAll(ctx context.Context) ([]models.Discount, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Discount), args.Error(1)
}

func (m *mockDiscountRepo) Update(ctx context.Context, d *models.Discount) error {
	return m.Called(ctx, d).Error(0)
}

func (m *mockDiscountRepo) Delete(ctx context.Context, id int) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockDiscountRepo) FindMissingIDs(ctx context.Context, ids []int) ([]int, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]int), args.Error(1)
}

type mockExpenseRepo struct{ mock.Mock }

func (m *mockExpenseRepo) Create(ctx context.Context, e *models.Expense) error {
	return m.Called(ctx, e).Error(0)
}

func (m *mockExpenseRepo) GetByID(ctx context.Context, id int) (*models.Expense, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Expense), args.Error(1)
}

func (m *mockExpenseRepo) GetAll(ctx context.Context) ([]models.Expense, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Expense), args.Error(1)
}

func (m *mockExpenseRepo) Update(ctx context.Context, e *models.Expense) error {
	return m.Called(ctx, e).Error(0)
}

func (m *mockExpenseRepo) Delete(ctx context.Context, id int) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockExpenseRepo) FindMissingIDs(ctx context.Context, ids []int) ([]int, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]int), args.Error(1)
}

type mockSessionRepo struct{ mock.Mock }

func (m *mockSessionRepo) Create(ctx context.Context, exec repositories.SQLExecutor, session *models.Session) error {
	return m.Called(ctx, exec, session).Error(0)
}

func (m *mockSessionRepo) GetByID(ctx context.Context, id int) (*models.Session, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Session), args.Error(1)
}

func (m *mockSessionRepo) GetAll(ctx context.Context) ([]models.Session, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Session), args.Error(1)
}

func (m *mockSessionRepo) Update(ctx context.Context, session *models.Session) error {
	return m.Called(ctx, session).Error(0)
}

func (m *mockSessionRepo) Delete(ctx context.Context, id int) error {
	return m.Called(ctx, id).Error(0)
}

type mockSessionPlayerRepo struct{ mock.Mock }

func (m *mockSessionPlayerRepo) Create(ctx context.Context, exec repositories.SQLExecutor, item *models.SessionPlayer) error {
	return m.Called(ctx, exec, item).Error(0)
}

func (m *mockSessionPlayerRepo) GetByID(ctx context.Context, id int) (*models.SessionPlayer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.SessionPlayer), args.Error(1)
}

func (m *mockSessionPlayerRepo) GetAll(ctx context.Context) ([]models.SessionPlayer, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.SessionPlayer), args.Error(1)
}

func (m *mockSessionPlayerRepo) ListBySession(ctx context.Context, sessionID int) ([]models.SessionPlayer, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.SessionPlayer), args.Error(1)
}

func (m *mockSessionPlayerRepo) Update(ctx context.Context, item *models.SessionPlayer) error {
	return m.Called(ctx, item).Error(0)
}

func (m *mockSessionPlayerRepo) Delete(ctx context.Context, id int) error {
	return m.Called(ctx, id).Error(0)
}

type mockSessionDiscountRepo struct{ mock.Mock }

func (m *mockSessionDiscountRepo) Create(ctx context.Context, exec repositories.SQLExecutor, item *models.SessionDiscount) error {
	return m.Called(ctx, exec, item).Error(0)
}

func (m *mockSessionDiscountRepo) GetByID(ctx context.Context, id int) (*models.SessionDiscount, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.SessionDiscount), args.Error(1)
}

func (m *mockSessionDiscountRepo) GetAll(ctx context.Context) ([]models.SessionDiscount, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.SessionDiscount), args.Error(1)
}

func (m *mockSessionDiscountRepo) ListBySession(ctx context.Context, sessionID int) ([]models.SessionDiscount, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.SessionDiscount), args.Error(1)
}

func (m *mockSessionDiscountRepo) Update(ctx context.Context, item *models.SessionDiscount) error {
	return m.Called(ctx, item).Error(0)
}

func (m *mockSessionDiscountRepo) Delete(ctx context.Context, id int) error {
	return m.Called(ctx, id).Error(0)
}

type mockSessionExpenseRepo struct{ mock.Mock }

func (m *mockSessionExpenseRepo) Create(ctx context.Context, exec repositories.SQLExecutor, item *models.SessionExpense) error {
	return m.Called(ctx, exec, item).Error(0)
}

func (m *mockSessionExpenseRepo) GetByID(ctx context.Context, id int) (*models.SessionExpense, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.SessionExpense), args.Error(1)
}

func (m *mockSessionExpenseRepo) GetAll(ctx context.Context) ([]models.SessionExpense, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.SessionExpense), args.Error(1)
}

func (m *mockSessionExpenseRepo) ListBySession(ctx context.Context, sessionID int) ([]models.SessionExpense, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.SessionExpense), args.Error(1)
}

func (m *mockSessionExpenseRepo) Update(ctx context.Context, item *models.SessionExpense) error {
	return m.Called(ctx, item).Error(0)
}

func (m *mockSessionExpenseRepo) Delete(ctx context.Context, id int) error {
	return m.Called(ctx, id).Error(0)
}

type mockRefreshTokenRepo struct{ mock.Mock }

func (m *mockRefreshTokenRepo) Create(ctx context.Context, token *models.RefreshToken) error {
	return m.Called(ctx, token).Error(0)
}

func (m *mockRefreshTokenRepo) FindActiveByPlayerIP(ctx context.Context, playerID int, ipAddress string) (*models.RefreshToken, error) {
	args := m.Called(ctx, playerID, ipAddress)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.RefreshToken), args.Error(1)
}

func (m *mockRefreshTokenRepo) FindActiveByToken(ctx context.Context, token string) (*models.RefreshToken, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.RefreshToken), args.Error(1)
}

func (m *mockRefreshTokenRepo) ExtendExpiry(ctx context.Context, id int, expiresAt time.Time) error {
	return m.Called(ctx, id, expiresAt).Error(0)
}

func (m *mockRefreshTokenRepo) DeleteByToken(ctx context.Context, token string) error {
	return m.Called(ctx, token).Error(0)
}

func (m *mockRefreshTokenRepo) DeleteExpired(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type mockUploader struct{ mock.Mock }

func (m *mockUploader) Upload(ctx context.Context, key string, contentType string, reader io.Reader) (*storage.UploadResult, error) {
	args := m.Called(ctx, key, contentType, reader)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*storage.UploadResult), args.Error(1)
}

func (m *mockUploader) Delete(ctx context.Context, key string) error {
	return m.Called(ctx, key).Error(0)
}

func (m *mockUploader) GetPublicURL(key string) string {
	return "https://cdn.example.com/" + key
}

type mockMailer struct{ mock.Mock }

func (m *mockMailer) SendPasswordResetEmail(ctx context.Context, email, resetToken string) error {
	return m.Called(ctx, email, resetToken).Error(0)
}

type broadcastRecord struct {
	Room    string
	Type    string
	Payload interface{}
}

type recordingBroadcaster struct {
	mu     sync.Mutex
	events []broadcastRecord
}

func (b *recordingBroadcaster) BroadcastToRoom(room string, msgType string, payload interface{}) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.events = append(b.events, broadcastRecord{Room: room, Type: msgType, Payload: payload})
}

type recordingSessionMetrics struct {
	outcomes []string
	created  int
}

func (r *recordingSessionMetrics) ObserveSessionBatch(outcome string, sessions int) {
	r.outcomes = append(r.outcomes, outcome)
	r.created += sessions
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
