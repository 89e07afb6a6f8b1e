package achievement

import (
	"errors"
	"testing"

	"github.com/ksoltys/teagarden/internal/domain"
	"github.com/ksoltys/teagarden/internal/infrastructure/lock"
	"github.com/ksoltys/teagarden/internal/infrastructure/logger"
	"github.com/ksoltys/teagarden/internal/infrastructure/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&domain.Player{}, &domain.Achievement{}, &domain.RewardEntry{}))
	return db
}

func newTestUseCase(t *testing.T, db *gorm.DB) domain.AchievementUseCase {
	return NewAchievementUseCase(
		repository.NewAchievementRepository(db),
		repository.NewPlayerRepository(db),
		repository.NewRewardEntryRepository(db),
		db,
		logger.NewLogger("test", "debug"),
		lock.NewPlayerLockManager(),
	)
}

func createTestPlayer(t *testing.T, db *gorm.DB, username string) *domain.Player {
	player := &domain.Player{
		Username:   username,
		Password:   "secret",
		Level:      1,
		Experience: 0,
		Coins:      100,
	}
	require.NoError(t, db.Create(player).Error)
	return player
}

func createTestAchievement(t *testing.T, db *gorm.DB, playerID int64, progress, requirement int) *domain.Achievement {
	achievement := &domain.Achievement{
		PlayerID:         playerID,
		Title:            "Tea Novice",
		Description:      "Collect your first tea card.",
		Category:         "collection",
		Requirement:      requirement,
		Progress:         progress,
		ExperienceReward: 100,
		CoinReward:       50,
	}
	require.NoError(t, db.Create(achievement).Error)
	return achievement
}

func TestCompleteAchievement_RewardsOwner(t *testing.T) {
	db := setupTestDB(t)
	useCase := newTestUseCase(t, db)

	owner := createTestPlayer(t, db, "owner")
	other := createTestPlayer(t, db, "other")
	achievement := createTestAchievement(t, db, owner.ID, 1, 1)

	completed, err := useCase.Complete(achievement.ID)
	require.NoError(t, err)
	assert.True(t, completed.IsCompleted)

	var updatedOwner, updatedOther domain.Player
	require.NoError(t, db.First(&updatedOwner, owner.ID).Error)
	require.NoError(t, db.First(&updatedOther, other.ID).Error)
	assert.Equal(t, 100, updatedOwner.Experience)
	assert.Equal(t, 150, updatedOwner.Coins)
	assert.Equal(t, 0, updatedOther.Experience)

	var entries []domain.RewardEntry
	require.NoError(t, db.Find(&entries).Error)
	require.Len(t, entries, 1)
	assert.Equal(t, owner.ID, entries[0].PlayerID)
	assert.Equal(t, domain.RewardSourceAchievement, entries[0].SourceType)
	assert.Equal(t, achievement.ID, entries[0].SourceID)
}

func TestCompleteAchievement_IgnoresProgress(t *testing.T) {
	db := setupTestDB(t)
	useCase := newTestUseCase(t, db)

	owner := createTestPlayer(t, db, "owner")
	// Progress well short of the requirement; completion is an explicit
	// action and still succeeds.
	achievement := createTestAchievement(t, db, owner.ID, 0, 10)

	completed, err := useCase.Complete(achievement.ID)
	require.NoError(t, err)
	assert.True(t, completed.IsCompleted)
}

func TestCompleteAchievement_AlreadyCompleted(t *testing.T) {
	db := setupTestDB(t)
	useCase := newTestUseCase(t, db)

	owner := createTestPlayer(t, db, "owner")
	achievement := createTestAchievement(t, db, owner.ID, 1, 1)

	_, err := useCase.Complete(achievement.ID)
	require.NoError(t, err)

	_, err = useCase.Complete(achievement.ID)
	require.Error(t, err)

	var appErr *domain.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, 400, appErr.HTTPStatus)
	assert.Equal(t, domain.ErrCodeAchievementAlreadyCompleted, appErr.Code)
	assert.Equal(t, "Achievement already completed", appErr.Message)

	var updated domain.Player
	require.NoError(t, db.First(&updated, owner.ID).Error)
	assert.Equal(t, 100, updated.Experience)
	assert.Equal(t, 150, updated.Coins)
}

func TestCompleteAchievement_NotFound(t *testing.T) {
	db := setupTestDB(t)
	useCase := newTestUseCase(t, db)

	_, err := useCase.Complete(9999)
	require.Error(t, err)

	var appErr *domain.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, 404, appErr.HTTPStatus)
	assert.Equal(t, "Achievement not found", appErr.Message)
}

func TestListForCurrent_NoPlayer(t *testing.T) {
	db := setupTestDB(t)
	useCase := newTestUseCase(t, db)

	achievements, err := useCase.ListForCurrent(0)
	require.NoError(t, err)
	assert.Empty(t, achievements)
}

func TestListForCurrent_FirstPlayerFallback(t *testing.T) {
	db := setupTestDB(t)
	useCase := newTestUseCase(t, db)

	first := createTestPlayer(t, db, "first")
	second := createTestPlayer(t, db, "second")
	createTestAchievement(t, db, first.ID, 0, 1)
	createTestAchievement(t, db, second.ID, 0, 1)

	achievements, err := useCase.ListForCurrent(0)
	require.NoError(t, err)
	require.Len(t, achievements, 1)
	assert.Equal(t, first.ID, achievements[0].PlayerID)
}

func TestCreateAchievement_UnknownOwner(t *testing.T) {
	db := setupTestDB(t)
	useCase := newTestUseCase(t, db)

	_, err := useCase.Create(&domain.Achievement{
		PlayerID:         42,
		Title:            "Phantom",
		Category:         "collection",
		Requirement:      1,
		ExperienceReward: 10,
		CoinReward:       10,
	})
	require.Error(t, err)

	var appErr *domain.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, 404, appErr.HTTPStatus)
}
