package domain

// WeeklyEvent represents a recurring scheduled event. Events are a read-only
// schedule with no completion logic.
type WeeklyEvent struct {
	ID           int64  `json:"id" gorm:"primaryKey;column:id;autoIncrement"`
	Title        string `json:"title" gorm:"not null;type:varchar(255)"`
	Description  string `json:"description" gorm:"not null;type:text"`
	DayOfWeek    string `json:"day_of_week" gorm:"not null;type:varchar(20)"`
	StartTime    string `json:"start_time" gorm:"not null;type:varchar(10)"`
	EndTime      string `json:"end_time" gorm:"not null;type:varchar(10)"`
	RewardType   string `json:"reward_type" gorm:"not null;type:varchar(50)"`
	RewardAmount int    `json:"reward_amount" gorm:"not null"`
}

// TableName specifies the table name for WeeklyEvent
func (w WeeklyEvent) TableName() string {
	return "weekly_events"
}

// WeeklyEventRepository defines the interface for event schedule data
type WeeklyEventRepository interface {
	GetByID(id int64) (*WeeklyEvent, error)
	List() ([]*WeeklyEvent, error)
	Create(event *WeeklyEvent) error
}

// WeeklyEventUseCase defines the interface for the read-only event schedule
type WeeklyEventUseCase interface {
	GetByID(id int64) (*WeeklyEvent, error)
	List() ([]*WeeklyEvent, error)
}
