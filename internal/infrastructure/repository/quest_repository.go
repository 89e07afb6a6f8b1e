package repository

import (
	"errors"

	"github.com/ksoltys/teagarden/internal/domain"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// QuestRepository implements domain.QuestRepository
type QuestRepository struct {
	db *gorm.DB
}

// NewQuestRepository creates a new quest repository
func NewQuestRepository(db *gorm.DB) domain.QuestRepository {
	return &QuestRepository{db: db}
}

// GetByID retrieves a quest by ID
func (r *QuestRepository) GetByID(id int64) (*domain.Quest, error) {
	var quest domain.Quest
	result := r.db.Where("id = ?", id).First(&quest)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &quest, nil
}

// GetByIDForUpdate retrieves a quest by ID with a row lock, so that two
// concurrent completions of the same quest serialize on the row
func (r *QuestRepository) GetByIDForUpdate(id int64) (*domain.Quest, error) {
	var quest domain.Quest
	result := r.db.Clauses(clause.Locking{Strength: "UPDATE"}).Where("id = ?", id).First(&quest)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &quest, nil
}

// List retrieves all quests
func (r *QuestRepository) List() ([]*domain.Quest, error) {
	var quests []*domain.Quest
	result := r.db.Order("id ASC").Find(&quests)
	if result.Error != nil {
		return nil, result.Error
	}
	return quests, nil
}

// Create creates a new quest
func (r *QuestRepository) Create(quest *domain.Quest) error {
	return r.db.Create(quest).Error
}

// Update updates an existing quest
func (r *QuestRepository) Update(quest *domain.Quest) error {
	return r.db.Save(quest).Error
}

// Delete removes a quest by ID
func (r *QuestRepository) Delete(id int64) error {
	return r.db.Delete(&domain.Quest{}, id).Error
}

// WithTransaction returns a repository bound to the given transaction
func (r *QuestRepository) WithTransaction(tx *gorm.DB) domain.QuestRepository {
	return &QuestRepository{db: tx}
}
