package player

import (
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/ksoltys/teagarden/internal/domain"
	"github.com/ksoltys/teagarden/internal/domain/mocks"
	"github.com/ksoltys/teagarden/internal/infrastructure/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestPlayer() *domain.Player {
	return &domain.Player{
		ID:         1,
		Username:   "brewmaster",
		Password:   hashPassword("password"),
		Level:      1,
		Experience: 0,
		Coins:      100,
	}
}

func newTestUseCase(t *testing.T) (*gomock.Controller, *mocks.MockPlayerRepository, *mocks.MockRewardEntryRepository, *mocks.MockJWTService, domain.PlayerUseCase) {
	ctrl := gomock.NewController(t)

	mockPlayerRepo := mocks.NewMockPlayerRepository(ctrl)
	mockRewardRepo := mocks.NewMockRewardEntryRepository(ctrl)
	mockJWT := mocks.NewMockJWTService(ctrl)

	useCase := NewPlayerUseCase(mockPlayerRepo, mockRewardRepo, mockJWT, logger.NewLogger("test", "debug"))
	return ctrl, mockPlayerRepo, mockRewardRepo, mockJWT, useCase
}

func TestCurrent_FirstPlayerFallback(t *testing.T) {
	ctrl, mockPlayerRepo, _, _, useCase := newTestUseCase(t)
	defer ctrl.Finish()

	expected := createTestPlayer()
	mockPlayerRepo.EXPECT().GetFirst().Return(expected, nil)

	player, err := useCase.Current(0)
	require.NoError(t, err)
	assert.Equal(t, expected.ID, player.ID)
	assert.Equal(t, "brewmaster", player.Username)
}

func TestCurrent_EmptyStorage(t *testing.T) {
	ctrl, mockPlayerRepo, _, _, useCase := newTestUseCase(t)
	defer ctrl.Finish()

	mockPlayerRepo.EXPECT().GetFirst().Return(nil, nil)

	_, err := useCase.Current(0)
	require.Error(t, err)

	var appErr *domain.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, 404, appErr.HTTPStatus)
	assert.Equal(t, "No player found", appErr.Message)
}

func TestCurrent_AuthenticatedIdentity(t *testing.T) {
	ctrl, mockPlayerRepo, _, _, useCase := newTestUseCase(t)
	defer ctrl.Finish()

	expected := createTestPlayer()
	expected.ID = 7
	mockPlayerRepo.EXPECT().GetByID(int64(7)).Return(expected, nil)

	player, err := useCase.Current(7)
	require.NoError(t, err)
	assert.Equal(t, int64(7), player.ID)
}

func TestCurrent_StorageFailure(t *testing.T) {
	ctrl, mockPlayerRepo, _, _, useCase := newTestUseCase(t)
	defer ctrl.Finish()

	mockPlayerRepo.EXPECT().GetFirst().Return(nil, errors.New("connection refused"))

	_, err := useCase.Current(0)
	require.Error(t, err)

	var appErr *domain.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, 500, appErr.HTTPStatus)
}

func TestAuthenticate_Success(t *testing.T) {
	ctrl, mockPlayerRepo, _, mockJWT, useCase := newTestUseCase(t)
	defer ctrl.Finish()

	stored := createTestPlayer()
	mockPlayerRepo.EXPECT().GetByUsername("brewmaster").Return(stored, nil)
	mockJWT.EXPECT().GenerateToken("1", "brewmaster").Return("signed-token", nil)

	token, err := useCase.Authenticate("brewmaster", "password")
	require.NoError(t, err)
	assert.Equal(t, "signed-token", token)
}

func TestAuthenticate_WrongPassword(t *testing.T) {
	ctrl, mockPlayerRepo, _, _, useCase := newTestUseCase(t)
	defer ctrl.Finish()

	stored := createTestPlayer()
	mockPlayerRepo.EXPECT().GetByUsername("brewmaster").Return(stored, nil)

	_, err := useCase.Authenticate("brewmaster", "wrong")
	require.Error(t, err)

	var appErr *domain.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, 401, appErr.HTTPStatus)
}

func TestAuthenticate_UnknownUsername(t *testing.T) {
	ctrl, mockPlayerRepo, _, _, useCase := newTestUseCase(t)
	defer ctrl.Finish()

	mockPlayerRepo.EXPECT().GetByUsername("ghost").Return(nil, nil)

	_, err := useCase.Authenticate("ghost", "password")
	require.Error(t, err)

	var appErr *domain.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, 401, appErr.HTTPStatus)
}

func TestCreate_HashesPassword(t *testing.T) {
	ctrl, mockPlayerRepo, _, _, useCase := newTestUseCase(t)
	defer ctrl.Finish()

	mockPlayerRepo.EXPECT().GetByUsername("newcomer").Return(nil, nil)
	mockPlayerRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(p *domain.Player) error {
		assert.Equal(t, hashPassword("plaintext"), p.Password)
		assert.Equal(t, 1, p.Level)
		return nil
	})

	created, err := useCase.Create(&domain.Player{Username: "newcomer", Password: "plaintext"})
	require.NoError(t, err)
	assert.NotEqual(t, "plaintext", created.Password)
}

func TestCreate_DuplicateUsername(t *testing.T) {
	ctrl, mockPlayerRepo, _, _, useCase := newTestUseCase(t)
	defer ctrl.Finish()

	mockPlayerRepo.EXPECT().GetByUsername("brewmaster").Return(createTestPlayer(), nil)

	_, err := useCase.Create(&domain.Player{Username: "brewmaster", Password: "whatever"})
	require.Error(t, err)

	var appErr *domain.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, 409, appErr.HTTPStatus)
}

func TestUpdate_KeepsStoredPassword(t *testing.T) {
	ctrl, mockPlayerRepo, _, _, useCase := newTestUseCase(t)
	defer ctrl.Finish()

	stored := createTestPlayer()
	mockPlayerRepo.EXPECT().GetByID(int64(1)).Return(stored, nil)
	mockPlayerRepo.EXPECT().Update(gomock.Any()).DoAndReturn(func(p *domain.Player) error {
		assert.Equal(t, stored.Password, p.Password)
		return nil
	})

	updated, err := useCase.Update(&domain.Player{ID: 1, Username: "brewmaster", Password: "sneaky", Level: 2})
	require.NoError(t, err)
	assert.Equal(t, 2, updated.Level)
}

func TestListRewards_UnknownPlayer(t *testing.T) {
	ctrl, mockPlayerRepo, _, _, useCase := newTestUseCase(t)
	defer ctrl.Finish()

	mockPlayerRepo.EXPECT().GetByID(int64(42)).Return(nil, nil)

	_, err := useCase.ListRewards(42)
	require.Error(t, err)

	var appErr *domain.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, 404, appErr.HTTPStatus)
}

func TestListRewards_ReturnsLedger(t *testing.T) {
	ctrl, mockPlayerRepo, mockRewardRepo, _, useCase := newTestUseCase(t)
	defer ctrl.Finish()

	mockPlayerRepo.EXPECT().GetByID(int64(1)).Return(createTestPlayer(), nil)
	mockRewardRepo.EXPECT().ListByPlayer(int64(1)).Return([]*domain.RewardEntry{
		{ID: 1, PlayerID: 1, SourceType: domain.RewardSourceQuest, SourceID: 3, Experience: 100, Coins: 20},
	}, nil)

	entries, err := useCase.ListRewards(1)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, domain.RewardSourceQuest, entries[0].SourceType)
}
