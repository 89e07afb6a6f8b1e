package repository

import (
	"errors"

	"github.com/ksoltys/teagarden/internal/domain"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// AchievementRepository implements domain.AchievementRepository
type AchievementRepository struct {
	db *gorm.DB
}

// NewAchievementRepository creates a new achievement repository
func NewAchievementRepository(db *gorm.DB) domain.AchievementRepository {
	return &AchievementRepository{db: db}
}

// GetByID retrieves an achievement by ID
func (r *AchievementRepository) GetByID(id int64) (*domain.Achievement, error) {
	var achievement domain.Achievement
	result := r.db.Where("id = ?", id).First(&achievement)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &achievement, nil
}

// GetByIDForUpdate retrieves an achievement by ID with a row lock
func (r *AchievementRepository) GetByIDForUpdate(id int64) (*domain.Achievement, error) {
	var achievement domain.Achievement
	result := r.db.Clauses(clause.Locking{Strength: "UPDATE"}).Where("id = ?", id).First(&achievement)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &achievement, nil
}

// ListByPlayer retrieves all achievements owned by a player
func (r *AchievementRepository) ListByPlayer(playerID int64) ([]*domain.Achievement, error) {
	var achievements []*domain.Achievement
	result := r.db.Where("player_id = ?", playerID).Order("id ASC").Find(&achievements)
	if result.Error != nil {
		return nil, result.Error
	}
	return achievements, nil
}

// Create creates a new achievement
func (r *AchievementRepository) Create(achievement *domain.Achievement) error {
	return r.db.Create(achievement).Error
}

// Update updates an existing achievement
func (r *AchievementRepository) Update(achievement *domain.Achievement) error {
	return r.db.Save(achievement).Error
}

// Delete removes an achievement by ID
func (r *AchievementRepository) Delete(id int64) error {
	return r.db.Delete(&domain.Achievement{}, id).Error
}

// WithTransaction returns a repository bound to the given transaction
func (r *AchievementRepository) WithTransaction(tx *gorm.DB) domain.AchievementRepository {
	return &AchievementRepository{db: tx}
}
