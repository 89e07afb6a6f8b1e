package repository

import (
	"errors"
	"time"

	"github.com/ksoltys/teagarden/internal/domain"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// PlayerRepository implements domain.PlayerRepository
type PlayerRepository struct {
	db *gorm.DB
}

// NewPlayerRepository creates a new player repository
func NewPlayerRepository(db *gorm.DB) domain.PlayerRepository {
	return &PlayerRepository{db: db}
}

// GetByID retrieves a player by ID
func (r *PlayerRepository) GetByID(id int64) (*domain.Player, error) {
	var player domain.Player
	result := r.db.Where("id = ?", id).First(&player)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &player, nil
}

// GetByIDForUpdate retrieves a player by ID with a row lock
func (r *PlayerRepository) GetByIDForUpdate(id int64) (*domain.Player, error) {
	var player domain.Player
	result := r.db.Clauses(clause.Locking{Strength: "UPDATE"}).Where("id = ?", id).First(&player)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &player, nil
}

// GetByUsername retrieves a player by username
func (r *PlayerRepository) GetByUsername(username string) (*domain.Player, error) {
	var player domain.Player
	result := r.db.Where("username = ?", username).First(&player)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &player, nil
}

// GetFirst retrieves the first stored player in id order
func (r *PlayerRepository) GetFirst() (*domain.Player, error) {
	var player domain.Player
	result := r.db.Order("id ASC").First(&player)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &player, nil
}

// List retrieves all players
func (r *PlayerRepository) List() ([]*domain.Player, error) {
	var players []*domain.Player
	result := r.db.Order("id ASC").Find(&players)
	if result.Error != nil {
		return nil, result.Error
	}
	return players, nil
}

// Create creates a new player
func (r *PlayerRepository) Create(player *domain.Player) error {
	player.CreatedAt = time.Now()
	player.UpdatedAt = time.Now()
	return r.db.Create(player).Error
}

// Update updates an existing player
func (r *PlayerRepository) Update(player *domain.Player) error {
	player.UpdatedAt = time.Now()
	return r.db.Save(player).Error
}

// Delete removes a player by ID
func (r *PlayerRepository) Delete(id int64) error {
	return r.db.Delete(&domain.Player{}, id).Error
}

// WithTransaction returns a repository bound to the given transaction
func (r *PlayerRepository) WithTransaction(tx *gorm.DB) domain.PlayerRepository {
	return &PlayerRepository{db: tx}
}
