package services

import (
	"context"
	"testing"

	"github.com/Dosada05/court-booking/models"
	"github.com/Dosada05/court-booking/repositories"
	"github.com/Dosada05/court-booking/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func strPtr(s string) *string { return &s }

func TestCreatePlayer_IdentityConflict(t *testing.T) {
	repo := &mockPlayerRepo{}
	svc := NewPlayerService(repo)
	repo.On("ExistsWithIdentity", mock.Anything, strPtr("0812345678"), strPtr("bob"), (*string)(nil), 0).Return(true, nil)

	_, err := svc.CreatePlayer(context.Background(), CreatePlayerInput{
		Name:        "Bob",
		PhoneNumber: strPtr("0812345678"),
		Email:       strPtr("  "),
		UserName:    " bob ",
		Password:    "secret",
	})

	assert.ErrorIs(t, err, ErrPlayerIdentityConflict)
	assert.Equal(t, "Player with the same phone number, username or email already exists", err.Error())
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreatePlayer_HashesPassword(t *testing.T) {
	utils.BcryptCost = bcrypt.MinCost
	repo := &mockPlayerRepo{}
	svc := NewPlayerService(repo)
	repo.On("ExistsWithIdentity", mock.Anything, mock.Anything, mock.Anything, mock.Anything, 0).Return(false, nil)
	repo.On("Create", mock.Anything, mock.AnythingOfType("*models.Player")).
		Run(func(args mock.Arguments) { args.Get(1).(*models.Player).ID = 12 }).
		Return(nil)

	player, err := svc.CreatePlayer(context.Background(), CreatePlayerInput{Name: "Bob", UserName: "bob", Password: "secret"})

	require.NoError(t, err)
	assert.Equal(t, 12, player.ID)
	assert.NotEqual(t, "secret", player.PasswordHash)
	ok, err := utils.CheckPasswordHash("secret", player.PasswordHash)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestUpdatePlayer_ExcludesSelfAndPatchesFields(t *testing.T) {
	repo := &mockPlayerRepo{}
	svc := NewPlayerService(repo)
	repo.On("GetByID", mock.Anything, 4).Return(&models.Player{ID: 4, Name: "Old", UserName: "old", PhoneNumber: strPtr("111")}, nil)
	repo.On("ExistsWithIdentity", mock.Anything, (*string)(nil), (*string)(nil), strPtr("new@example.com"), 4).Return(false, nil)
	repo.On("Update", mock.Anything, mock.AnythingOfType("*models.Player")).Return(nil)

	player, err := svc.UpdatePlayer(context.Background(), 4, UpdatePlayerInput{Email: strPtr("new@example.com")})

	require.NoError(t, err)
	assert.Equal(t, "Old", player.Name)
	assert.Equal(t, "111", *player.PhoneNumber)
	assert.Equal(t, "new@example.com", *player.Email)
	repo.AssertExpectations(t)
}

func TestUpdatePlayer_NotFound(t *testing.T) {
	repo := &mockPlayerRepo{}
	svc := NewPlayerService(repo)
	repo.On("GetByID", mock.Anything, 99).Return(nil, repositories.ErrPlayerNotFound)

	_, err := svc.UpdatePlayer(context.Background(), 99, UpdatePlayerInput{Name: strPtr("x")})

	assert.ErrorIs(t, err, ErrPlayerNotFound)
}

func TestDeletePlayer_InUse(t *testing.T) {
	repo := &mockPlayerRepo{}
	svc := NewPlayerService(repo)
	repo.On("Delete", mock.Anything, 2).Return(repositories.ErrPlayerInUse)

	assert.ErrorIs(t, svc.DeletePlayer(context.Background(), 2), ErrPlayerInUse)
}

func TestGetAllPlayers_NeverNil(t *testing.T) {
	repo := &mockPlayerRepo{}
	svc := NewPlayerService(repo)
	repo.On("GetAll", mock.Anything).Return(nil, nil)

	players, err := svc.GetAllPlayers(context.Background())

	require.NoError(t, err)
	assert.NotNil(t, players)
	assert.Empty(t, players)
}
