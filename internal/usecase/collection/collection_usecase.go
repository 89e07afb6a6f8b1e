package collection

import (
	"github.com/ksoltys/teagarden/internal/domain"
	"github.com/ksoltys/teagarden/internal/infrastructure/logger"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// UserCardUseCase implements domain.UserCardUseCase
type UserCardUseCase struct {
	userCardRepo domain.UserCardRepository
	teaCardRepo  domain.TeaCardRepository
	playerRepo   domain.PlayerRepository
	db           *gorm.DB
	logger       *logger.Logger
}

// NewUserCardUseCase creates a new user card use case
func NewUserCardUseCase(
	userCardRepo domain.UserCardRepository,
	teaCardRepo domain.TeaCardRepository,
	playerRepo domain.PlayerRepository,
	db *gorm.DB,
	logger *logger.Logger,
) domain.UserCardUseCase {
	return &UserCardUseCase{
		userCardRepo: userCardRepo,
		teaCardRepo:  teaCardRepo,
		playerRepo:   playerRepo,
		db:           db,
		logger:       logger,
	}
}

// ListForCurrent lists the acting player's collection. An empty slice is
// returned when no player exists yet.
func (uc *UserCardUseCase) ListForCurrent(authedID int64) ([]*domain.UserCard, error) {
	playerID := authedID
	if playerID == 0 {
		player, err := uc.playerRepo.GetFirst()
		if err != nil {
			return nil, domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to get player", 500, err)
		}
		if player == nil {
			return []*domain.UserCard{}, nil
		}
		playerID = player.ID
	}

	cards, err := uc.userCardRepo.ListByPlayer(playerID)
	if err != nil {
		return nil, domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to list user cards", 500, err)
	}
	return cards, nil
}

// GetByID retrieves a user card by ID
func (uc *UserCardUseCase) GetByID(id int64) (*domain.UserCard, error) {
	card, err := uc.userCardRepo.GetByID(id)
	if err != nil {
		return nil, domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to get user card", 500, err)
	}
	if card == nil {
		return nil, domain.NewAppError(domain.ErrCodeUserCardNotFound, "User card not found", 404, nil)
	}
	return card, nil
}

// Grant adds quantity copies of a card to a player's collection. Duplicates
// fold into the existing (player, tea card) row, never a second one.
func (uc *UserCardUseCase) Grant(playerID, teaCardID int64, quantity int) (*domain.UserCard, error) {
	if quantity < 1 {
		return nil, domain.NewAppError(domain.ErrCodeInvalidRange, "Quantity must be at least 1", 400, nil)
	}

	player, err := uc.playerRepo.GetByID(playerID)
	if err != nil {
		return nil, domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to get player", 500, err)
	}
	if player == nil {
		return nil, domain.NewAppError(domain.ErrCodePlayerNotFound, "Player not found", 404, nil)
	}

	teaCard, err := uc.teaCardRepo.GetByID(teaCardID)
	if err != nil {
		return nil, domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to get tea card", 500, err)
	}
	if teaCard == nil {
		return nil, domain.NewAppError(domain.ErrCodeTeaCardNotFound, "Tea card not found", 404, nil)
	}

	tx := uc.db.Begin()
	if tx.Error != nil {
		return nil, domain.NewAppError(domain.ErrCodeDatabaseConnection, "Failed to start transaction", 500, tx.Error)
	}
	txUserCardRepo := uc.userCardRepo.WithTransaction(tx)

	card, err := txUserCardRepo.GetByPlayerAndCard(playerID, teaCardID)
	if err != nil {
		tx.Rollback()
		return nil, domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to get user card", 500, err)
	}

	if card == nil {
		card = &domain.UserCard{
			PlayerID:  playerID,
			TeaCardID: teaCardID,
			Quantity:  quantity,
		}
		if err := txUserCardRepo.Create(card); err != nil {
			tx.Rollback()
			return nil, domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to create user card", 500, err)
		}
	} else {
		card.Quantity += quantity
		if err := txUserCardRepo.Update(card); err != nil {
			tx.Rollback()
			return nil, domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to update user card", 500, err)
		}
	}

	if err := tx.Commit().Error; err != nil {
		return nil, domain.NewAppError(domain.ErrCodeDatabaseConnection, "Failed to commit transaction", 500, err)
	}

	uc.logger.Info("Card granted",
		zap.Int64("player_id", playerID),
		zap.Int64("tea_card_id", teaCardID),
		zap.Int("quantity", card.Quantity))

	card.TeaCard = *teaCard
	return card, nil
}

// UpdateQuantity sets the copy count on an existing collection row
func (uc *UserCardUseCase) UpdateQuantity(id int64, quantity int) (*domain.UserCard, error) {
	if quantity < 1 {
		return nil, domain.NewAppError(domain.ErrCodeInvalidRange, "Quantity must be at least 1", 400, nil)
	}

	card, err := uc.userCardRepo.GetByID(id)
	if err != nil {
		return nil, domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to get user card", 500, err)
	}
	if card == nil {
		return nil, domain.NewAppError(domain.ErrCodeUserCardNotFound, "User card not found", 404, nil)
	}

	card.Quantity = quantity
	if err := uc.userCardRepo.Update(card); err != nil {
		return nil, domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to update user card", 500, err)
	}
	return card, nil
}

// Delete removes a user card row
func (uc *UserCardUseCase) Delete(id int64) error {
	existing, err := uc.userCardRepo.GetByID(id)
	if err != nil {
		return domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to get user card", 500, err)
	}
	if existing == nil {
		return domain.NewAppError(domain.ErrCodeUserCardNotFound, "User card not found", 404, nil)
	}
	if err := uc.userCardRepo.Delete(id); err != nil {
		return domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to delete user card", 500, err)
	}
	return nil
}
