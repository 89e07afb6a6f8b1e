package quest

import (
	"errors"
	"sync"
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

	require.NoError(t, db.AutoMigrate(&domain.Player{}, &domain.Quest{}, &domain.RewardEntry{}))
	return db
}

func newTestUseCase(t *testing.T, db *gorm.DB) domain.QuestUseCase {
	return NewQuestUseCase(
		repository.NewQuestRepository(db),
		repository.NewPlayerRepository(db),
		repository.NewRewardEntryRepository(db),
		db,
		logger.NewLogger("test", "debug"),
		lock.NewPlayerLockManager(),
	)
}

func createTestPlayer(t *testing.T, db *gorm.DB, level, experience, coins int) *domain.Player {
	player := &domain.Player{
		Username:   "brewmaster",
		Password:   "secret",
		Level:      level,
		Experience: experience,
		Coins:      coins,
	}
	require.NoError(t, db.Create(player).Error)
	require.NotZero(t, player.ID)
	return player
}

func createTestQuest(t *testing.T, db *gorm.DB, expReward, coinReward int) *domain.Quest {
	quest := &domain.Quest{
		Title:            "Daily Discovery",
		Description:      "Find and collect 3 different green tea varieties.",
		Type:             domain.QuestTypeDaily,
		Requirement:      3,
		ExperienceReward: expReward,
		CoinReward:       coinReward,
	}
	require.NoError(t, db.Create(quest).Error)
	require.NotZero(t, quest.ID)
	return quest
}

func TestCompleteQuest_RewardsCurrentPlayer(t *testing.T) {
	db := setupTestDB(t)
	useCase := newTestUseCase(t, db)

	player := createTestPlayer(t, db, 1, 950, 100)
	quest := createTestQuest(t, db, 100, 20)

	completed, err := useCase.Complete(quest.ID, 0)
	require.NoError(t, err)
	assert.True(t, completed.IsCompleted)

	var updated domain.Player
	require.NoError(t, db.First(&updated, player.ID).Error)
	assert.Equal(t, 2, updated.Level)
	assert.Equal(t, 1050, updated.Experience)
	assert.Equal(t, 120, updated.Coins)

	var entries []domain.RewardEntry
	require.NoError(t, db.Find(&entries).Error)
	require.Len(t, entries, 1)
	assert.Equal(t, player.ID, entries[0].PlayerID)
	assert.Equal(t, domain.RewardSourceQuest, entries[0].SourceType)
	assert.Equal(t, quest.ID, entries[0].SourceID)
	assert.Equal(t, 1, entries[0].OldLevel)
	assert.Equal(t, 2, entries[0].NewLevel)
	assert.Equal(t, 950, entries[0].OldExperience)
	assert.Equal(t, 1050, entries[0].NewExperience)
	assert.Equal(t, 100, entries[0].OldCoins)
	assert.Equal(t, 120, entries[0].NewCoins)
}

func TestCompleteQuest_SingleLevelPerCompletion(t *testing.T) {
	db := setupTestDB(t)
	useCase := newTestUseCase(t, db)

	player := createTestPlayer(t, db, 1, 0, 0)
	quest := createTestQuest(t, db, 2500, 0)

	_, err := useCase.Complete(quest.ID, 0)
	require.NoError(t, err)

	var updated domain.Player
	require.NoError(t, db.First(&updated, player.ID).Error)
	assert.Equal(t, 2, updated.Level)
	assert.Equal(t, 2500, updated.Experience)
}

func TestCompleteQuest_AlreadyCompleted(t *testing.T) {
	db := setupTestDB(t)
	useCase := newTestUseCase(t, db)

	player := createTestPlayer(t, db, 1, 0, 100)
	quest := createTestQuest(t, db, 100, 20)

	_, err := useCase.Complete(quest.ID, 0)
	require.NoError(t, err)

	_, err = useCase.Complete(quest.ID, 0)
	require.Error(t, err)

	var appErr *domain.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, 400, appErr.HTTPStatus)
	assert.Equal(t, domain.ErrCodeQuestAlreadyCompleted, appErr.Code)
	assert.Equal(t, "Quest already completed", appErr.Message)

	// The second attempt must not change progression or the ledger.
	var updated domain.Player
	require.NoError(t, db.First(&updated, player.ID).Error)
	assert.Equal(t, 100, updated.Experience)
	assert.Equal(t, 120, updated.Coins)

	var count int64
	require.NoError(t, db.Model(&domain.RewardEntry{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestCompleteQuest_ConcurrentCompletions(t *testing.T) {
	db := setupTestDB(t)
	useCase := newTestUseCase(t, db)

	player := createTestPlayer(t, db, 1, 950, 100)
	quest := createTestQuest(t, db, 100, 20)

	errs := make(chan error, 2)
	var wg sync.WaitGroup
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := useCase.Complete(quest.ID, 0)
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	var successes, conflicts int
	for err := range errs {
		if err == nil {
			successes++
			continue
		}
		var appErr *domain.AppError
		require.True(t, errors.As(err, &appErr))
		assert.Equal(t, domain.ErrCodeQuestAlreadyCompleted, appErr.Code)
		conflicts++
	}
	assert.Equal(t, 1, successes)
	assert.Equal(t, 1, conflicts)

	// The reward must be applied exactly once.
	var updated domain.Player
	require.NoError(t, db.First(&updated, player.ID).Error)
	assert.Equal(t, 2, updated.Level)
	assert.Equal(t, 1050, updated.Experience)
	assert.Equal(t, 120, updated.Coins)

	var count int64
	require.NoError(t, db.Model(&domain.RewardEntry{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestCompleteQuest_NotFound(t *testing.T) {
	db := setupTestDB(t)
	useCase := newTestUseCase(t, db)

	createTestPlayer(t, db, 1, 0, 100)

	_, err := useCase.Complete(9999, 0)
	require.Error(t, err)

	var appErr *domain.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, 404, appErr.HTTPStatus)
	assert.Equal(t, "Quest not found", appErr.Message)
}

func TestCompleteQuest_NoPlayer(t *testing.T) {
	db := setupTestDB(t)
	useCase := newTestUseCase(t, db)

	quest := createTestQuest(t, db, 100, 20)

	_, err := useCase.Complete(quest.ID, 0)
	require.Error(t, err)

	var appErr *domain.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, 404, appErr.HTTPStatus)
	assert.Equal(t, "No player found", appErr.Message)
}

func TestCompleteQuest_AuthenticatedPlayer(t *testing.T) {
	db := setupTestDB(t)
	useCase := newTestUseCase(t, db)

	first := createTestPlayer(t, db, 1, 0, 100)
	second := &domain.Player{Username: "second", Password: "secret", Level: 1, Coins: 100}
	require.NoError(t, db.Create(second).Error)

	quest := createTestQuest(t, db, 100, 20)

	_, err := useCase.Complete(quest.ID, second.ID)
	require.NoError(t, err)

	var updatedFirst, updatedSecond domain.Player
	require.NoError(t, db.First(&updatedFirst, first.ID).Error)
	require.NoError(t, db.First(&updatedSecond, second.ID).Error)
	assert.Equal(t, 0, updatedFirst.Experience)
	assert.Equal(t, 100, updatedSecond.Experience)
	assert.Equal(t, 120, updatedSecond.Coins)
}

func TestCreateQuest_Validation(t *testing.T) {
	db := setupTestDB(t)
	useCase := newTestUseCase(t, db)

	tests := []struct {
		name  string
		quest *domain.Quest
	}{
		{
			name:  "Missing_Title",
			quest: &domain.Quest{Type: domain.QuestTypeDaily, Requirement: 1},
		},
		{
			name:  "Invalid_Type",
			quest: &domain.Quest{Title: "Broken", Type: "monthly", Requirement: 1},
		},
		{
			name:  "Negative_Reward",
			quest: &domain.Quest{Title: "Broken", Type: domain.QuestTypeDaily, ExperienceReward: -1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := useCase.Create(tt.quest)
			require.Error(t, err)

			var appErr *domain.AppError
			require.True(t, errors.As(err, &appErr))
			assert.Equal(t, 400, appErr.HTTPStatus)
		})
	}
}

func TestQuestCRUD(t *testing.T) {
	db := setupTestDB(t)
	useCase := newTestUseCase(t, db)

	created, err := useCase.Create(&domain.Quest{
		Title:            "First Brew",
		Description:      "Brew your very first cup of tea.",
		Type:             domain.QuestTypeSpecial,
		Requirement:      1,
		ExperienceReward: 100,
		CoinReward:       50,
	})
	require.NoError(t, err)
	require.NotZero(t, created.ID)

	fetched, err := useCase.GetByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "First Brew", fetched.Title)

	fetched.Title = "First Steep"
	updated, err := useCase.Update(fetched)
	require.NoError(t, err)
	assert.Equal(t, "First Steep", updated.Title)

	quests, err := useCase.List()
	require.NoError(t, err)
	assert.Len(t, quests, 1)

	require.NoError(t, useCase.Delete(created.ID))

	_, err = useCase.GetByID(created.ID)
	require.Error(t, err)
}
