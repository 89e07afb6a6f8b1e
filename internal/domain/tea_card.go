package domain

// TeaCard represents a catalog tea card. Catalog rows are seeded out-of-band
// and never mutated by gameplay.
type TeaCard struct {
	ID                 int64      `json:"id" gorm:"primaryKey;column:id;autoIncrement"`
	Name               string     `json:"name" gorm:"not null;type:varchar(255)"`
	Description        string     `json:"description" gorm:"not null;type:text"`
	Rarity             string     `json:"rarity" gorm:"not null;type:varchar(50)"`
	ImageURL           string     `json:"image_url" gorm:"type:varchar(500)"`
	Strength           int        `json:"strength" gorm:"not null"`
	Freshness          int        `json:"freshness" gorm:"not null"`
	Aroma              int        `json:"aroma" gorm:"not null"`
	Abilities          StringList `json:"abilities" gorm:"type:jsonb;serializer:json"`
	BrewingTime        string     `json:"brewing_time" gorm:"not null;type:varchar(50)"`
	BrewingTemperature string     `json:"brewing_temperature" gorm:"not null;type:varchar(50)"`
}

// StringList is an ordered list of labels stored as a JSON column.
type StringList []string

// TableName specifies the table name for TeaCard
func (t TeaCard) TableName() string {
	return "tea_cards"
}

// TeaCardRepository defines the interface for tea card data
type TeaCardRepository interface {
	GetByID(id int64) (*TeaCard, error)
	GetByName(name string) (*TeaCard, error)
	List() ([]*TeaCard, error)
	Create(card *TeaCard) error
}

// TeaCardUseCase defines the interface for the read-only card catalog
type TeaCardUseCase interface {
	GetByID(id int64) (*TeaCard, error)
	List() ([]*TeaCard, error)
}
