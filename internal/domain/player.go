package domain

import (
	"time"

	"gorm.io/gorm"
)

// Player represents a player profile and its progression state
type Player struct {
	ID         int64     `json:"id" gorm:"primaryKey;column:id;autoIncrement"`
	Username   string    `json:"username" gorm:"uniqueIndex;not null;type:varchar(255)"`
	Password   string    `json:"-" gorm:"not null;type:varchar(128)"`
	Level      int       `json:"level" gorm:"not null;default:1"`
	Experience int       `json:"experience" gorm:"not null;default:0"`
	Coins      int       `json:"coins" gorm:"not null;default:100"`
	CreatedAt  time.Time `json:"-" gorm:"not null"`
	UpdatedAt  time.Time `json:"-" gorm:"not null"`
}

// TableName specifies the table name for Player
func (p Player) TableName() string {
	return "players"
}

// PlayerRepository defines the interface for player data
type PlayerRepository interface {
	GetByID(id int64) (*Player, error)
	GetByIDForUpdate(id int64) (*Player, error)
	GetByUsername(username string) (*Player, error)
	GetFirst() (*Player, error)
	List() ([]*Player, error)
	Create(player *Player) error
	Update(player *Player) error
	Delete(id int64) error
	WithTransaction(tx *gorm.DB) PlayerRepository
}

// PlayerUseCase defines the interface for player business logic
type PlayerUseCase interface {
	Authenticate(username, password string) (string, error)
	// Current resolves the acting player. A positive authedID comes from a
	// validated token; zero falls back to the first stored player, which is
	// what the legacy clients expect.
	Current(authedID int64) (*Player, error)
	GetByID(id int64) (*Player, error)
	List() ([]*Player, error)
	Create(player *Player) (*Player, error)
	Update(player *Player) (*Player, error)
	Delete(id int64) error
	ListRewards(playerID int64) ([]*RewardEntry, error)
}
