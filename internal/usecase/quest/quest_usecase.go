package quest

import (
	"context"
	"errors"

	"github.com/ksoltys/teagarden/internal/domain"
	"github.com/ksoltys/teagarden/internal/infrastructure/lock"
	"github.com/ksoltys/teagarden/internal/infrastructure/logger"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// QuestUseCase implements domain.QuestUseCase
type QuestUseCase struct {
	questRepo   domain.QuestRepository
	playerRepo  domain.PlayerRepository
	rewardRepo  domain.RewardEntryRepository
	db          *gorm.DB
	logger      *logger.Logger
	playerLocks *lock.PlayerLockManager
}

// NewQuestUseCase creates a new quest use case
func NewQuestUseCase(
	questRepo domain.QuestRepository,
	playerRepo domain.PlayerRepository,
	rewardRepo domain.RewardEntryRepository,
	db *gorm.DB,
	logger *logger.Logger,
	playerLocks *lock.PlayerLockManager,
) domain.QuestUseCase {
	return &QuestUseCase{
		questRepo:   questRepo,
		playerRepo:  playerRepo,
		rewardRepo:  rewardRepo,
		db:          db,
		logger:      logger,
		playerLocks: playerLocks,
	}
}

// GetByID retrieves a quest by ID
func (uc *QuestUseCase) GetByID(id int64) (*domain.Quest, error) {
	quest, err := uc.questRepo.GetByID(id)
	if err != nil {
		return nil, domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to get quest", 500, err)
	}
	if quest == nil {
		return nil, domain.NewAppError(domain.ErrCodeQuestNotFound, "Quest not found", 404, nil)
	}
	return quest, nil
}

// List retrieves all quests
func (uc *QuestUseCase) List() ([]*domain.Quest, error) {
	quests, err := uc.questRepo.List()
	if err != nil {
		return nil, domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to list quests", 500, err)
	}
	return quests, nil
}

// Create creates a new quest
func (uc *QuestUseCase) Create(quest *domain.Quest) (*domain.Quest, error) {
	if err := validateQuest(quest); err != nil {
		return nil, err
	}
	if err := uc.questRepo.Create(quest); err != nil {
		return nil, domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to create quest", 500, err)
	}
	return quest, nil
}

// Update updates an existing quest
func (uc *QuestUseCase) Update(quest *domain.Quest) (*domain.Quest, error) {
	existing, err := uc.questRepo.GetByID(quest.ID)
	if err != nil {
		return nil, domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to get quest", 500, err)
	}
	if existing == nil {
		return nil, domain.NewAppError(domain.ErrCodeQuestNotFound, "Quest not found", 404, nil)
	}
	if err := validateQuest(quest); err != nil {
		return nil, err
	}
	if err := uc.questRepo.Update(quest); err != nil {
		return nil, domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to update quest", 500, err)
	}
	return quest, nil
}

// Delete removes a quest
func (uc *QuestUseCase) Delete(id int64) error {
	existing, err := uc.questRepo.GetByID(id)
	if err != nil {
		return domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to get quest", 500, err)
	}
	if existing == nil {
		return domain.NewAppError(domain.ErrCodeQuestNotFound, "Quest not found", 404, nil)
	}
	if err := uc.questRepo.Delete(id); err != nil {
		return domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to delete quest", 500, err)
	}
	return nil
}

// Complete flips the quest to completed and rewards the acting player. The
// flag flip, the player mutation and the ledger append commit atomically;
// the quest row lock guarantees that of two racing completions exactly one
// succeeds and the other observes the completed flag.
func (uc *QuestUseCase) Complete(questID, authedID int64) (*domain.Quest, error) {
	playerID, err := uc.resolvePlayerID(authedID)
	if err != nil {
		return nil, err
	}

	if err := uc.playerLocks.Lock(context.Background(), playerID); err != nil {
		return nil, domain.NewInternalError("Failed to serialize completion", err)
	}
	defer uc.playerLocks.Unlock(playerID)

	tx := uc.db.Begin()
	if tx.Error != nil {
		return nil, domain.NewAppError(domain.ErrCodeDatabaseConnection, "Failed to start transaction", 500, tx.Error)
	}

	txQuestRepo := uc.questRepo.WithTransaction(tx)
	txPlayerRepo := uc.playerRepo.WithTransaction(tx)
	txRewardRepo := uc.rewardRepo.WithTransaction(tx)

	quest, err := txQuestRepo.GetByIDForUpdate(questID)
	if err != nil {
		tx.Rollback()
		return nil, domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to get quest", 500, err)
	}
	if quest == nil {
		tx.Rollback()
		return nil, domain.NewAppError(domain.ErrCodeQuestNotFound, "Quest not found", 404, nil)
	}

	player, err := txPlayerRepo.GetByIDForUpdate(playerID)
	if err != nil {
		tx.Rollback()
		return nil, domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to get player", 500, err)
	}
	if player == nil {
		tx.Rollback()
		return nil, domain.NewAppError(domain.ErrCodePlayerNotFound, "No player found", 404, nil)
	}

	entry, err := domain.CompleteAndReward(quest, player)
	if err != nil {
		tx.Rollback()
		if errors.Is(err, domain.ErrAlreadyCompleted) {
			return nil, domain.NewCompletionConflictError(domain.ErrCodeQuestAlreadyCompleted, "Quest already completed")
		}
		return nil, domain.NewInternalError("Failed to complete quest", err)
	}

	if err := txQuestRepo.Update(quest); err != nil {
		tx.Rollback()
		return nil, domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to update quest", 500, err)
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

	uc.logger.Info("Quest completed",
		zap.Int64("quest_id", quest.ID),
		zap.Int64("player_id", player.ID),
		zap.Int("experience_reward", quest.ExperienceReward),
		zap.Int("coin_reward", quest.CoinReward),
		zap.Int("new_level", player.Level))
	return quest, nil
}

// resolvePlayerID resolves the acting player for a completion. Quests are
// global, so any caller may complete any quest for the current player.
func (uc *QuestUseCase) resolvePlayerID(authedID int64) (int64, error) {
	if authedID > 0 {
		return authedID, nil
	}

	player, err := uc.playerRepo.GetFirst()
	if err != nil {
		return 0, domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to get player", 500, err)
	}
	if player == nil {
		return 0, domain.NewAppError(domain.ErrCodePlayerNotFound, "No player found", 404, nil)
	}
	return player.ID, nil
}

func validateQuest(quest *domain.Quest) error {
	if quest.Title == "" {
		return domain.NewAppError(domain.ErrCodeRequiredField, "Quest title is required", 400, nil)
	}
	switch quest.Type {
	case domain.QuestTypeDaily, domain.QuestTypeWeekly, domain.QuestTypeSpecial:
	default:
		return domain.NewAppError(domain.ErrCodeInvalidFormat, "Quest type must be daily, weekly or special", 400, nil)
	}
	if quest.ExperienceReward < 0 || quest.CoinReward < 0 {
		return domain.NewAppError(domain.ErrCodeInvalidRange, "Rewards must be non-negative", 400, nil)
	}
	return nil
}
