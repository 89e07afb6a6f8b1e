package domain

import (
	"time"

	"gorm.io/gorm"
)

// UserCard joins a player to a tea card it owns. Duplicate pulls accumulate
// into the quantity of a single row, enforced by the unique index on
// (player_id, tea_card_id).
type UserCard struct {
	ID        int64     `json:"id" gorm:"primaryKey;column:id;autoIncrement"`
	PlayerID  int64     `json:"-" gorm:"uniqueIndex:idx_user_cards_player_card;not null;type:bigint"`
	TeaCardID int64     `json:"-" gorm:"uniqueIndex:idx_user_cards_player_card;not null;type:bigint"`
	Quantity  int       `json:"quantity" gorm:"not null;default:1"`
	CreatedAt time.Time `json:"-" gorm:"not null"`
	UpdatedAt time.Time `json:"-" gorm:"not null"`

	Player  Player  `json:"-" gorm:"foreignKey:PlayerID"`
	TeaCard TeaCard `json:"tea_card" gorm:"foreignKey:TeaCardID"`
}

// TableName specifies the table name for UserCard
func (u UserCard) TableName() string {
	return "user_cards"
}

// UserCardRepository defines the interface for collection data
type UserCardRepository interface {
	GetByID(id int64) (*UserCard, error)
	GetByPlayerAndCard(playerID, teaCardID int64) (*UserCard, error)
	ListByPlayer(playerID int64) ([]*UserCard, error)
	Create(card *UserCard) error
	Update(card *UserCard) error
	Delete(id int64) error
	WithTransaction(tx *gorm.DB) UserCardRepository
}

// UserCardUseCase defines the interface for collection business logic
type UserCardUseCase interface {
	// ListForCurrent lists the acting player's collection; an empty slice is
	// returned when no player exists yet.
	ListForCurrent(authedID int64) ([]*UserCard, error)
	GetByID(id int64) (*UserCard, error)
	// Grant adds quantity copies of a card to a player, folding duplicates
	// into the existing row.
	Grant(playerID, teaCardID int64, quantity int) (*UserCard, error)
	// UpdateQuantity sets the copy count on an existing row.
	UpdateQuantity(id int64, quantity int) (*UserCard, error)
	Delete(id int64) error
}
