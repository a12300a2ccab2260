package handlers

import (
	"context"
	"io"

	"github.com/Dosada05/court-booking/models"
	"github.com/Dosada05/court-booking/services"
	"github.com/stretchr/testify/mock"
)

type mockPlayerService struct{ mock.Mock }

func (m *mockPlayerService) CreatePlayer(ctx context.Context, input services.CreatePlayerInput) (*models.Player, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Player), args.Error(1)
}

func (m *mockPlayerService) GetPlayerByID(ctx context.Context, id int) (*models.Player, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Player), args.Error(1)
}

func (m *mockPlayerService) GetAllPlayers(ctx context.Context) ([]models.Player, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Player), args.Error(1)
}

func (m *mockPlayerService) UpdatePlayer(ctx context.Context, id int, input services.UpdatePlayerInput) (*models.Player, error) {
	args := m.Called(ctx, id, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Player), args.Error(1)
}

func (m *mockPlayerService) DeletePlayer(ctx context.Context, id int) error {
	return m.Called(ctx, id).Error(0)
}

type mockCourtService struct{ mock.Mock }

func (m *mockCourtService) CreateCourt(ctx context.Context, input services.CreateCourtInput) (*models.Court, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Court), args.Error(1)
}

func (m *mockCourtService) GetCourtByID(ctx context.Context, id int) (*models.Court, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Court), args.Error(1)
}

func (m *mockCourtService) GetAllCourts(ctx context.Context) ([]models.Court, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Court), args.Error(1)
}

func (m *mockCourtService) UpdateCourt(ctx context.Context, id int, input services.UpdateCourtInput) (*models.Court, error) {
	args := m.Called(ctx, id, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Court), args.Error(1)
}

func (m *mockCourtService) DeleteCourt(ctx context.Context, id int) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockCourtService) UploadCourtImage(ctx context.Context, id int, file io.Reader, contentType string) (*models.Court, error) {
	args := m.Called(ctx, id, file, contentType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Court), args.Error(1)
}

type mockSessionService struct{ mock.Mock }

func (m *mockSessionService) CreateSessions(ctx context.Context, inputs []services.CreateSessionInput) ([]models.SessionDetails, error) {
	args := m.Called(ctx, inputs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.SessionDetails), args.Error(1)
}

func (m *mockSessionService) GetSessionByID(ctx context.Context, id int) (*models.SessionDetails, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.SessionDetails), args.Error(1)
}

func (m *mockSessionService) GetAllSessions(ctx context.Context) ([]models.Session, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Session), args.Error(1)
}

func (m *mockSessionService) UpdateSession(ctx context.Context, id int, input services.UpdateSessionInput) (*models.Session, error) {
	args := m.Called(ctx, id, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Session), args.Error(1)
}

func (m *mockSessionService) DeleteSession(ctx context.Context, id int) error {
	return m.Called(ctx, id).Error(0)
}

type mockAuthService struct{ mock.Mock }

func (m *mockAuthService) Login(ctx context.Context, input services.LoginInput, ipAddress string) (*models.AuthenticatedPlayer, error) {
	args := m.Called(ctx, input, ipAddress)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.AuthenticatedPlayer), args.Error(1)
}

func (m *mockAuthService) RefreshAccessToken(ctx context.Context, refreshToken string) (string, error) {
	args := m.Called(ctx, refreshToken)
	return args.String(0), args.Error(1)
}

func (m *mockAuthService) Logout(ctx context.Context, refreshToken string) error {
	return m.Called(ctx, refreshToken).Error(0)
}

func (m *mockAuthService) ForgotPassword(ctx context.Context, email string) error {
	return m.Called(ctx, email).Error(0)
}

func (m *mockAuthService) ResetPassword(ctx context.Context, input services.ResetPasswordInput) error {
	return m.Called(ctx, input).Error(0)
}

func (m *mockAuthService) PurgeExpiredTokens(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type fakePinger struct{ err error }

func (p fakePinger) PingContext(ctx context.Context) error { return p.err }
