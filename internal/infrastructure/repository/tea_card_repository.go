package repository

import (
	"errors"

	"github.com/ksoltys/teagarden/internal/domain"

	"gorm.io/gorm"
)

// TeaCardRepository implements domain.TeaCardRepository
type TeaCardRepository struct {
	db *gorm.DB
}

// NewTeaCardRepository creates a new tea card repository
func NewTeaCardRepository(db *gorm.DB) domain.TeaCardRepository {
	return &TeaCardRepository{db: db}
}

// GetByID retrieves a tea card by ID
func (r *TeaCardRepository) GetByID(id int64) (*domain.TeaCard, error) {
	var card domain.TeaCard
	result := r.db.Where("id = ?", id).First(&card)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &card, nil
}

// GetByName retrieves a tea card by name
func (r *TeaCardRepository) GetByName(name string) (*domain.TeaCard, error) {
	var card domain.TeaCard
	result := r.db.Where("name = ?", name).First(&card)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &card, nil
}

// List retrieves the full card catalog
func (r *TeaCardRepository) List() ([]*domain.TeaCard, error) {
	var cards []*domain.TeaCard
	result := r.db.Order("id ASC").Find(&cards)
	if result.Error != nil {
		return nil, result.Error
	}
	return cards, nil
}

// Create creates a new tea card
func (r *TeaCardRepository) Create(card *domain.TeaCard) error {
	return r.db.Create(card).Error
}
