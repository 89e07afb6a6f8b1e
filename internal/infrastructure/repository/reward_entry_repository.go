package repository

import (
	"time"

	"github.com/ksoltys/teagarden/internal/domain"

	"gorm.io/gorm"
)

// RewardEntryRepository implements domain.RewardEntryRepository
type RewardEntryRepository struct {
	db *gorm.DB
}

// NewRewardEntryRepository creates a new reward entry repository
func NewRewardEntryRepository(db *gorm.DB) domain.RewardEntryRepository {
	return &RewardEntryRepository{db: db}
}

// Create appends a reward entry to the ledger
func (r *RewardEntryRepository) Create(entry *domain.RewardEntry) error {
	entry.CreatedAt = time.Now()
	return r.db.Create(entry).Error
}

// ListByPlayer retrieves a player's reward entries, newest first
func (r *RewardEntryRepository) ListByPlayer(playerID int64) ([]*domain.RewardEntry, error) {
	var entries []*domain.RewardEntry
	result := r.db.Where("player_id = ?", playerID).
		Order("created_at DESC").
		Find(&entries)
	if result.Error != nil {
		return nil, result.Error
	}
	return entries, nil
}

// WithTransaction returns a repository bound to the given transaction
func (r *RewardEntryRepository) WithTransaction(tx *gorm.DB) domain.RewardEntryRepository {
	return &RewardEntryRepository{db: tx}
}
