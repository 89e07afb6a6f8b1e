package achievement

import (
	"context"
	"errors"

	"github.com/ksoltys/teagarden/internal/domain"
	"github.com/ksoltys/teagarden/internal/infrastructure/lock"
	"github.com/ksoltys/teagarden/internal/infrastructure/logger"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// AchievementUseCase implements domain.AchievementUseCase
type AchievementUseCase struct {
	achievementRepo domain.AchievementRepository
	playerRepo      domain.PlayerRepository
	rewardRepo      domain.RewardEntryRepository
	db              *gorm.DB
	logger          *logger.Logger
	playerLocks     *lock.PlayerLockManager
}

// NewAchievementUseCase creates a new achievement use case
func NewAchievementUseCase(
	achievementRepo domain.AchievementRepository,
	playerRepo domain.PlayerRepository,
	rewardRepo domain.RewardEntryRepository,
	db *gorm.DB,
	logger *logger.Logger,
	playerLocks *lock.PlayerLockManager,
) domain.AchievementUseCase {
	return &AchievementUseCase{
		achievementRepo: achievementRepo,
		playerRepo:      playerRepo,
		rewardRepo:      rewardRepo,
		db:              db,
		logger:          logger,
		playerLocks:     playerLocks,
	}
}

// GetByID retrieves an achievement by ID
func (uc *AchievementUseCase) GetByID(id int64) (*domain.Achievement, error) {
	achievement, err := uc.achievementRepo.GetByID(id)
	if err != nil {
		return nil, domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to get achievement", 500, err)
	}
	if achievement == nil {
		return nil, domain.NewAppError(domain.ErrCodeAchievementNotFound, "Achievement not found", 404, nil)
	}
	return achievement, nil
}

// ListForCurrent lists the acting player's achievements. An empty slice is
// returned when no player exists yet.
func (uc *AchievementUseCase) ListForCurrent(authedID int64) ([]*domain.Achievement, error) {
	playerID := authedID
	if playerID == 0 {
		player, err := uc.playerRepo.GetFirst()
		if err != nil {
			return nil, domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to get player", 500, err)
		}
		if player == nil {
			return []*domain.Achievement{}, nil
		}
		playerID = player.ID
	}

	achievements, err := uc.achievementRepo.ListByPlayer(playerID)
	if err != nil {
		return nil, domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to list achievements", 500, err)
	}
	return achievements, nil
}

// Create creates a new achievement for a player
func (uc *AchievementUseCase) Create(achievement *domain.Achievement) (*domain.Achievement, error) {
	if err := uc.validateAchievement(achievement); err != nil {
		return nil, err
	}

	owner, err := uc.playerRepo.GetByID(achievement.PlayerID)
	if err != nil {
		return nil, domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to get player", 500, err)
	}
	if owner == nil {
		return nil, domain.NewAppError(domain.ErrCodePlayerNotFound, "Player not found", 404, nil)
	}

	if err := uc.achievementRepo.Create(achievement); err != nil {
		return nil, domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to create achievement", 500, err)
	}
	return achievement, nil
}

// Update updates an existing achievement
func (uc *AchievementUseCase) Update(achievement *domain.Achievement) (*domain.Achievement, error) {
	existing, err := uc.achievementRepo.GetByID(achievement.ID)
	if err != nil {
		return nil, domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to get achievement", 500, err)
	}
	if existing == nil {
		return nil, domain.NewAppError(domain.ErrCodeAchievementNotFound, "Achievement not found", 404, nil)
	}
	if err := uc.validateAchievement(achievement); err != nil {
		return nil, err
	}
	if err := uc.achievementRepo.Update(achievement); err != nil {
		return nil, domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to update achievement", 500, err)
	}
	return achievement, nil
}

// Delete removes an achievement
func (uc *AchievementUseCase) Delete(id int64) error {
	existing, err := uc.achievementRepo.GetByID(id)
	if err != nil {
		return domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to get achievement", 500, err)
	}
	if existing == nil {
		return domain.NewAppError(domain.ErrCodeAchievementNotFound, "Achievement not found", 404, nil)
	}
	if err := uc.achievementRepo.Delete(id); err != nil {
		return domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to delete achievement", 500, err)
	}
	return nil
}

// Complete flips the achievement to completed and rewards its owning player.
// Completion is an explicit action: the progress counter is not consulted.
func (uc *AchievementUseCase) Complete(achievementID int64) (*domain.Achievement, error) {
	// Plain read first to learn the owner for lock ordering; the locked
	// re-read inside the transaction is authoritative.
	peek, err := uc.achievementRepo.GetByID(achievementID)
	if err != nil {
		return nil, domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to get achievement", 500, err)
	}
	if peek == nil {
		return nil, domain.NewAppError(domain.ErrCodeAchievementNotFound, "Achievement not found", 404, nil)
	}

	if err := uc.playerLocks.Lock(context.Background(), peek.PlayerID); err != nil {
		return nil, domain.NewInternalError("Failed to serialize completion", err)
	}
	defer uc.playerLocks.Unlock(peek.PlayerID)

	tx := uc.db.Begin()
	if tx.Error != nil {
		return nil, domain.NewAppError(domain.ErrCodeDatabaseConnection, "Failed to start transaction", 500, tx.Error)
	}

	txAchievementRepo := uc.achievementRepo.WithTransaction(tx)
	txPlayerRepo := uc.playerRepo.WithTransaction(tx)
	txRewardRepo := uc.rewardRepo.WithTransaction(tx)

	achievement, err := txAchievementRepo.GetByIDForUpdate(achievementID)
	if err != nil {
		tx.Rollback()
		return nil, domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to get achievement", 500, err)
	}
	if achievement == nil {
		tx.Rollback()
		return nil, domain.NewAppError(domain.ErrCodeAchievementNotFound, "Achievement not found", 404, nil)
	}

	player, err := txPlayerRepo.GetByIDForUpdate(achievement.PlayerID)
	if err != nil {
		tx.Rollback()
		return nil, domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to get player", 500, err)
	}
	if player == nil {
		tx.Rollback()
		return nil, domain.NewAppError(domain.ErrCodePlayerNotFound, "Player not found", 404, nil)
	}

	entry, err := domain.CompleteAndReward(achievement, player)
	if err != nil {
		tx.Rollback()
		if errors.Is(err, domain.ErrAlreadyCompleted) {
			return nil, domain.NewCompletionConflictError(domain.ErrCodeAchievementAlreadyCompleted, "Achievement already completed")
		}
		return nil, domain.NewInternalError("Failed to complete achievement", err)
	}

	if err := txAchievementRepo.Update(achievement); err != nil {
		tx.Rollback()
		return nil, domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to update achievement", 500, err)
	}
	if err := txPlayerRepo.Update(player); err != nil {
		tx.Rollback()
		return nil, domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to update player", 500, err)
	}
	if err := txRewardRepo.Create(entry); err != nil {
		tx.Rollback()
		return nil, domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to record reward", 500, err)
	}

	if err := tx.Commit().Error; err != nil {
		return nil, domain.NewAppError(domain.ErrCodeDatabaseConnection, "Failed to commit transaction", 500, err)
	}

	uc.logger.Info("Achievement completed",
		zap.Int64("achievement_id", achievement.ID),
		zap.Int64("player_id", player.ID),
		zap.Int("experience_reward", achievement.ExperienceReward),
		zap.Int("coin_reward", achievement.CoinReward),
		zap.Int("new_level", player.Level))
	return achievement, nil
}

func (uc *AchievementUseCase) validateAchievement(achievement *domain.Achievement) error {
	if achievement.Title == "" {
		return domain.NewAppError(domain.ErrCodeRequiredField, "Achievement title is required", 400, nil)
	}
	if achievement.PlayerID == 0 {
		return domain.NewAppError(domain.ErrCodeRequiredField, "Achievement owner is required", 400, nil)
	}
	if achievement.ExperienceReward < 0 || achievement.CoinReward < 0 {
		return domain.NewAppError(domain.ErrCodeInvalidRange, "Rewards must be non-negative", 400, nil)
	}
	return nil
}
