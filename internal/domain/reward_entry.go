package domain

import (
	"time"

	"gorm.io/gorm"
)

// RewardSource represents the kind of entity that produced a reward
type RewardSource string

const (
	RewardSourceQuest       RewardSource = "quest"
	RewardSourceAchievement RewardSource = "achievement"
)

// RewardEntry is an append-only ledger row recording a single reward
// application, with the player's progression before and after. Entries are
// written in the same database transaction as the completion that produced
// them.
type RewardEntry struct {
	ID            int64        `json:"id" gorm:"primaryKey;column:id;autoIncrement"`
	PlayerID      int64        `json:"player_id" gorm:"index;not null;type:bigint"`
	SourceType    RewardSource `json:"source_type" gorm:"not null;type:varchar(16)"`
	SourceID      int64        `json:"source_id" gorm:"not null;type:bigint"`
	Experience    int          `json:"experience" gorm:"not null"`
	Coins         int          `json:"coins" gorm:"not null"`
	OldLevel      int          `json:"old_level" gorm:"not null"`
	NewLevel      int          `json:"new_level" gorm:"not null"`
	OldExperience int          `json:"old_experience" gorm:"not null"`
	NewExperience int          `json:"new_experience" gorm:"not null"`
	OldCoins      int          `json:"old_coins" gorm:"not null"`
	NewCoins      int          `json:"new_coins" gorm:"not null"`
	CreatedAt     time.Time    `json:"created_at" gorm:"not null"`

	Player Player `json:"-" gorm:"foreignKey:PlayerID"`
}

// TableName specifies the table name for RewardEntry
func (r RewardEntry) TableName() string {
	return "reward_entries"
}

// RewardEntryRepository defines the interface for reward ledger data
type RewardEntryRepository interface {
	Create(entry *RewardEntry) error
	ListByPlayer(playerID int64) ([]*RewardEntry, error)
	WithTransaction(tx *gorm.DB) RewardEntryRepository
}
