package repository

import (
	"errors"

	"github.com/ksoltys/teagarden/internal/domain"

	"gorm.io/gorm"
)

// WeeklyEventRepository implements domain.WeeklyEventRepository
type WeeklyEventRepository struct {
	db *gorm.DB
}

// NewWeeklyEventRepository creates a new weekly event repository
func NewWeeklyEventRepository(db *gorm.DB) domain.WeeklyEventRepository {
	return &WeeklyEventRepository{db: db}
}

// GetByID retrieves a weekly event by ID
func (r *WeeklyEventRepository) GetByID(id int64) (*domain.WeeklyEvent, error) {
	var event domain.WeeklyEvent
	result := r.db.Where("id = ?", id).First(&event)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &event, nil
}

// List retrieves the full event schedule
func (r *WeeklyEventRepository) List() ([]*domain.WeeklyEvent, error) {
	var events []*domain.WeeklyEvent
	result := r.db.Order("id ASC").Find(&events)
	if result.Error != nil {
		return nil, result.Error
	}
	return events, nil
}

// Create creates a new weekly event
func (r *WeeklyEventRepository) Create(event *domain.WeeklyEvent) error {
	return r.db.Create(event).Error
}
