package repository

import (
	"errors"
	"time"

	"github.com/ksoltys/teagarden/internal/domain"

	"gorm.io/gorm"
)

// UserCardRepository implements domain.UserCardRepository
type UserCardRepository struct {
	db *gorm.DB
}

// NewUserCardRepository creates a new user card repository
func NewUserCardRepository(db *gorm.DB) domain.UserCardRepository {
	return &UserCardRepository{db: db}
}

// GetByID retrieves a user card by ID with its tea card preloaded
func (r *UserCardRepository) GetByID(id int64) (*domain.UserCard, error) {
	var card domain.UserCard
	result := r.db.Preload("TeaCard").Where("id = ?", id).First(&card)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &card, nil
}

// GetByPlayerAndCard retrieves the single row for a (player, tea card) pair
func (r *UserCardRepository) GetByPlayerAndCard(playerID, teaCardID int64) (*domain.UserCard, error) {
	var card domain.UserCard
	result := r.db.Where("player_id = ? AND tea_card_id = ?", playerID, teaCardID).First(&card)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &card, nil
}

// ListByPlayer retrieves a player's collection with tea cards preloaded
func (r *UserCardRepository) ListByPlayer(playerID int64) ([]*domain.UserCard, error) {
	var cards []*domain.UserCard
	result := r.db.Preload("TeaCard").
		Where("player_id = ?", playerID).
		Order("id ASC").
		Find(&cards)
	if result.Error != nil {
		return nil, result.Error
	}
	return cards, nil
}

// Create creates a new user card row
func (r *UserCardRepository) Create(card *domain.UserCard) error {
	card.CreatedAt = time.Now()
	card.UpdatedAt = time.Now()
	return r.db.Create(card).Error
}

// Update updates an existing user card row
func (r *UserCardRepository) Update(card *domain.UserCard) error {
	card.UpdatedAt = time.Now()
	return r.db.Save(card).Error
}

// Delete removes a user card row by ID
func (r *UserCardRepository) Delete(id int64) error {
	return r.db.Delete(&domain.UserCard{}, id).Error
}

// WithTransaction returns a repository bound to the given transaction
func (r *UserCardRepository) WithTransaction(tx *gorm.DB) domain.UserCardRepository {
	return &UserCardRepository{db: tx}
}
