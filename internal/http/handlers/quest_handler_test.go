package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/ksoltys/teagarden/internal/domain"
	"github.com/ksoltys/teagarden/internal/infrastructure/lock"
	"github.com/ksoltys/teagarden/internal/infrastructure/logger"
	"github.com/ksoltys/teagarden/internal/infrastructure/repository"
	"github.com/ksoltys/teagarden/internal/usecase/quest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupQuestRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&domain.Player{}, &domain.Quest{}, &domain.RewardEntry{}))

	useCase := quest.NewQuestUseCase(
		repository.NewQuestRepository(db),
		repository.NewPlayerRepository(db),
		repository.NewRewardEntryRepository(db),
		db,
		logger.NewLogger("test", "debug"),
		lock.NewPlayerLockManager(),
	)
	handler := NewQuestHandler(useCase)

	router := gin.New()
	router.GET("/api/quests", handler.List)
	router.POST("/api/quests", handler.Create)
	router.GET("/api/quests/:id", handler.Get)
	router.POST("/api/quests/:id/complete", handler.Complete)
	return router, db
}

func TestQuestCompleteRoute(t *testing.T) {
	router, db := setupQuestRouter(t)

	player := &domain.Player{Username: "brewmaster", Password: "secret", Level: 1, Experience: 950, Coins: 100}
	require.NoError(t, db.Create(player).Error)
	testQuest := &domain.Quest{
		Title:            "Daily Discovery",
		Description:      "Find and collect 3 different green tea varieties.",
		Type:             domain.QuestTypeDaily,
		Requirement:      3,
		ExperienceReward: 100,
		CoinReward:       20,
	}
	require.NoError(t, db.Create(testQuest).Error)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/quests/1/complete", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var body domain.Quest
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.True(t, body.IsCompleted)

	var updated domain.Player
	require.NoError(t, db.First(&updated, player.ID).Error)
	assert.Equal(t, 2, updated.Level)
	assert.Equal(t, 1050, updated.Experience)
	assert.Equal(t, 120, updated.Coins)
}

func TestQuestCompleteRoute_Conflict(t *testing.T) {
	router, db := setupQuestRouter(t)

	require.NoError(t, db.Create(&domain.Player{Username: "brewmaster", Password: "secret", Level: 1, Coins: 100}).Error)
	require.NoError(t, db.Create(&domain.Quest{
		Title: "Daily Discovery", Description: "d", Type: domain.QuestTypeDaily,
		Requirement: 3, ExperienceReward: 100, CoinReward: 20, IsCompleted: true,
	}).Error)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/quests/1/complete", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error": "Quest already completed"}`, w.Body.String())
}

func TestQuestCompleteRoute_NoPlayer(t *testing.T) {
	router, db := setupQuestRouter(t)

	require.NoError(t, db.Create(&domain.Quest{
		Title: "Daily Discovery", Description: "d", Type: domain.QuestTypeDaily,
		Requirement: 3, ExperienceReward: 100, CoinReward: 20,
	}).Error)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/quests/1/complete", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error": "No player found"}`, w.Body.String())
}

func TestQuestCreateRoute(t *testing.T) {
	router, _ := setupQuestRouter(t)

	payload := `{"title": "First Brew", "description": "Brew a cup.", "type": "special", "requirement": 1, "experience_reward": 100, "coin_reward": 50}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/quests", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)

	var body domain.Quest
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.NotZero(t, body.ID)
	assert.Equal(t, domain.QuestTypeSpecial, body.Type)
	assert.False(t, body.IsCompleted)
}

func TestQuestGetRoute_InvalidID(t *testing.T) {
	router, _ := setupQuestRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/quests/abc", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
