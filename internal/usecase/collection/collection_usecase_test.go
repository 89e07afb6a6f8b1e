package collection

import (
	"errors"
	"testing"

	"github.com/ksoltys/teagarden/internal/domain"
	"github.com/ksoltys/teagarden/internal/infrastructure/logger"
	"github.com/ksoltys/teagarden/internal/infrastructure/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&domain.Player{}, &domain.TeaCard{}, &domain.UserCard{}))
	return db
}

func newTestUseCase(t *testing.T, db *gorm.DB) domain.UserCardUseCase {
	return NewUserCardUseCase(
		repository.NewUserCardRepository(db),
		repository.NewTeaCardRepository(db),
		repository.NewPlayerRepository(db),
		db,
		logger.NewLogger("test", "debug"),
	)
}

func createTestPlayer(t *testing.T, db *gorm.DB, username string) *domain.Player {
	player := &domain.Player{Username: username, Password: "secret", Level: 1, Coins: 100}
	require.NoError(t, db.Create(player).Error)
	require.NotZero(t, player.ID)
	return player
}

func createTestCard(t *testing.T, db *gorm.DB, name string) *domain.TeaCard {
	card := &domain.TeaCard{
		Name:               name,
		Description:        "A refreshing brew.",
		Rarity:             "common",
		Strength:           4,
		Freshness:          8,
		Aroma:              5,
		Abilities:          domain.StringList{"Health"},
		BrewingTime:        "2-3 min",
		BrewingTemperature: "80C",
	}
	require.NoError(t, db.Create(card).Error)
	require.NotZero(t, card.ID)
	return card
}

func TestGrant_NewCard(t *testing.T) {
	db := setupTestDB(t)
	useCase := newTestUseCase(t, db)

	player := createTestPlayer(t, db, "collector")
	card := createTestCard(t, db, "Garden Green")

	granted, err := useCase.Grant(player.ID, card.ID, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, granted.Quantity)
	assert.Equal(t, "Garden Green", granted.TeaCard.Name)
}

func TestGrant_DuplicateFoldsIntoExistingRow(t *testing.T) {
	db := setupTestDB(t)
	useCase := newTestUseCase(t, db)

	player := createTestPlayer(t, db, "collector")
	card := createTestCard(t, db, "Garden Green")

	_, err := useCase.Grant(player.ID, card.ID, 1)
	require.NoError(t, err)

	granted, err := useCase.Grant(player.ID, card.ID, 2)
	require.NoError(t, err)
	assert.Equal(t, 3, granted.Quantity)

	var count int64
	require.NoError(t, db.Model(&domain.UserCard{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestGrant_UnknownCard(t *testing.T) {
	db := setupTestDB(t)
	useCase := newTestUseCase(t, db)

	player := createTestPlayer(t, db, "collector")

	_, err := useCase.Grant(player.ID, 9999, 1)
	require.Error(t, err)

	var appErr *domain.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, 404, appErr.HTTPStatus)
}

func TestGrant_InvalidQuantity(t *testing.T) {
	db := setupTestDB(t)
	useCase := newTestUseCase(t, db)

	player := createTestPlayer(t, db, "collector")
	card := createTestCard(t, db, "Garden Green")

	_, err := useCase.Grant(player.ID, card.ID, 0)
	require.Error(t, err)

	var appErr *domain.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, 400, appErr.HTTPStatus)
}

func TestListForCurrent(t *testing.T) {
	db := setupTestDB(t)
	useCase := newTestUseCase(t, db)

	// Empty storage yields an empty collection, not an error.
	cards, err := useCase.ListForCurrent(0)
	require.NoError(t, err)
	assert.Empty(t, cards)

	player := createTestPlayer(t, db, "collector")
	card := createTestCard(t, db, "Garden Green")
	_, err = useCase.Grant(player.ID, card.ID, 2)
	require.NoError(t, err)

	cards, err = useCase.ListForCurrent(0)
	require.NoError(t, err)
	require.Len(t, cards, 1)
	assert.Equal(t, 2, cards[0].Quantity)
	assert.Equal(t, "Garden Green", cards[0].TeaCard.Name)
}

func TestUpdateQuantity(t *testing.T) {
	db := setupTestDB(t)
	useCase := newTestUseCase(t, db)

	player := createTestPlayer(t, db, "collector")
	card := createTestCard(t, db, "Garden Green")
	granted, err := useCase.Grant(player.ID, card.ID, 1)
	require.NoError(t, err)

	updated, err := useCase.UpdateQuantity(granted.ID, 5)
	require.NoError(t, err)
	assert.Equal(t, 5, updated.Quantity)

	_, err = useCase.UpdateQuantity(granted.ID, 0)
	require.Error(t, err)

	var appErr *domain.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, 400, appErr.HTTPStatus)

	_, err = useCase.UpdateQuantity(9999, 1)
	require.Error(t, err)
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, 404, appErr.HTTPStatus)
}

func TestDeleteUserCard(t *testing.T) {
	db := setupTestDB(t)
	useCase := newTestUseCase(t, db)

	player := createTestPlayer(t, db, "collector")
	card := createTestCard(t, db, "Garden Green")
	granted, err := useCase.Grant(player.ID, card.ID, 1)
	require.NoError(t, err)

	require.NoError(t, useCase.Delete(granted.ID))

	err = useCase.Delete(granted.ID)
	require.Error(t, err)

	var appErr *domain.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, 404, appErr.HTTPStatus)
}
