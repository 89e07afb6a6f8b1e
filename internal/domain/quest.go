package domain

import "gorm.io/gorm"

// QuestType represents the cadence of a quest
type QuestType string

const (
	QuestTypeDaily   QuestType = "daily"
	QuestTypeWeekly  QuestType = "weekly"
	QuestTypeSpecial QuestType = "special"
)

// Quest represents a completable quest. Quests are global: they carry no
// owning player, and completing one rewards whichever player is acting.
type Quest struct {
	ID               int64     `json:"id" gorm:"primaryKey;column:id;autoIncrement"`
	Title            string    `json:"title" gorm:"not null;type:varchar(255)"`
	Description      string    `json:"description" gorm:"not null;type:text"`
	Type             QuestType `json:"type" gorm:"not null;type:varchar(50)"`
	Requirement      int       `json:"requirement" gorm:"not null"`
	ExperienceReward int       `json:"experience_reward" gorm:"not null"`
	CoinReward       int       `json:"coin_reward" gorm:"not null"`
	IsCompleted      bool      `json:"is_completed" gorm:"not null;default:false"`
}

// TableName specifies the table name for Quest
func (q Quest) TableName() string {
	return "quests"
}

// Completed reports whether the quest has been completed
func (q *Quest) Completed() bool {
	return q.IsCompleted
}

// MarkCompleted flips the one-way completion flag
func (q *Quest) MarkCompleted() {
	q.IsCompleted = true
}

// Reward returns the experience and coins granted on completion
func (q *Quest) Reward() (int, int) {
	return q.ExperienceReward, q.CoinReward
}

// RewardSource identifies the quest in the reward ledger
func (q *Quest) RewardSource() (RewardSource, int64) {
	return RewardSourceQuest, q.ID
}

// QuestRepository defines the interface for quest data
type QuestRepository interface {
	GetByID(id int64) (*Quest, error)
	GetByIDForUpdate(id int64) (*Quest, error)
	List() ([]*Quest, error)
	Create(quest *Quest) error
	Update(quest *Quest) error
	Delete(id int64) error
	WithTransaction(tx *gorm.DB) QuestRepository
}

// QuestUseCase defines the interface for quest business logic
type QuestUseCase interface {
	GetByID(id int64) (*Quest, error)
	List() ([]*Quest, error)
	Create(quest *Quest) (*Quest, error)
	Update(quest *Quest) (*Quest, error)
	Delete(id int64) error
	// Complete flips the quest to completed and rewards the acting player.
	// A positive authedID names the player; zero falls back to the first
	// stored player.
	Complete(questID, authedID int64) (*Quest, error)
}
