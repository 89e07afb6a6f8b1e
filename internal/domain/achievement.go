package domain

import "gorm.io/gorm"

// Achievement represents a per-player achievement. The progress counter is
// informational: completion is an explicit action and is not gated on
// progress reaching the requirement.
type Achievement struct {
	ID               int64  `json:"id" gorm:"primaryKey;column:id;autoIncrement"`
	PlayerID         int64  `json:"player_id" gorm:"index;not null;type:bigint"`
	Title            string `json:"title" gorm:"not null;type:varchar(255)"`
	Description      string `json:"description" gorm:"not null;type:text"`
	Category         string `json:"category" gorm:"not null;type:varchar(100)"`
	Requirement      int    `json:"requirement" gorm:"not null"`
	Progress         int    `json:"progress" gorm:"not null;default:0"`
	IsCompleted      bool   `json:"is_completed" gorm:"not null;default:false"`
	ExperienceReward int    `json:"experience_reward" gorm:"not null"`
	CoinReward       int    `json:"coin_reward" gorm:"not null"`

	Player Player `json:"-" gorm:"foreignKey:PlayerID"`
}

// TableName specifies the table name for Achievement
func (a Achievement) TableName() string {
	return "achievements"
}

// Completed reports whether the achievement has been completed
func (a *Achievement) Completed() bool {
	return a.IsCompleted
}

// MarkCompleted flips the one-way completion flag
func (a *Achievement) MarkCompleted() {
	a.IsCompleted = true
}

// Reward returns the experience and coins granted on completion
func (a *Achievement) Reward() (int, int) {
	return a.ExperienceReward, a.CoinReward
}

// RewardSource identifies the achievement in the reward ledger
func (a *Achievement) RewardSource() (RewardSource, int64) {
	return RewardSourceAchievement, a.ID
}

// AchievementRepository defines the interface for achievement data
type AchievementRepository interface {
	GetByID(id int64) (*Achievement, error)
	GetByIDForUpdate(id int64) (*Achievement, error)
	ListByPlayer(playerID int64) ([]*Achievement, error)
	Create(achievement *Achievement) error
	Update(achievement *Achievement) error
	Delete(id int64) error
	WithTransaction(tx *gorm.DB) AchievementRepository
}

// AchievementUseCase defines the interface for achievement business logic
type AchievementUseCase interface {
	GetByID(id int64) (*Achievement, error)
	// ListForCurrent lists the acting player's achievements; empty when no
	// player exists yet.
	ListForCurrent(authedID int64) ([]*Achievement, error)
	Create(achievement *Achievement) (*Achievement, error)
	Update(achievement *Achievement) (*Achievement, error)
	Delete(id int64) error
	// Complete flips the achievement to completed and rewards its owner.
	Complete(achievementID int64) (*Achievement, error)
}
