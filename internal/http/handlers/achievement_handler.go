package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ksoltys/teagarden/internal/domain"
)

// AchievementHandler handles HTTP requests for achievement operations
type AchievementHandler struct {
	achievementUseCase domain.AchievementUseCase
}

// NewAchievementHandler creates a new achievement handler
func NewAchievementHandler(achievementUseCase domain.AchievementUseCase) *AchievementHandler {
	return &AchievementHandler{achievementUseCase: achievementUseCase}
}

// AchievementRequest represents a create/update achievement request body
type AchievementRequest struct {
	PlayerID         int64  `json:"player_id"`
	Title            string `json:"title"`
	Description      string `json:"description"`
	Category         string `json:"category"`
	Requirement      int    `json:"requirement"`
	Progress         int    `json:"progress"`
	ExperienceReward int    `json:"experience_reward"`
	CoinReward       int    `json:"coin_reward"`
}

// List handles listing the acting player's achievements
// @Summary List the current player's achievements
// @Tags achievements
// @Produce json
// @Success 200 {array} domain.Achievement
// @Router /achievements [get]
func (h *AchievementHandler) List(c *gin.Context) {
	achievements, err := h.achievementUseCase.ListForCurrent(actingPlayerID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, achievements)
}

// Get handles retrieving an achievement by id
// @Summary Get achievement
// @Tags achievements
// @Produce json
// @Param id path int true "Achievement ID"
// @Success 200 {object} domain.Achievement
// @Failure 404 {object} ErrorResponse
// @Router /achievements/{id} [get]
func (h *AchievementHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	achievement, err := h.achievementUseCase.GetByID(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, achievement)
}

// Create handles creating an achievement
// @Summary Create achievement
// @Tags achievements
// @Accept json
// @Produce json
// @Param request body AchievementRequest true "Achievement fields"
// @Success 201 {object} domain.Achievement
// @Failure 400 {object} ErrorResponse
// @Router /achievements [post]
func (h *AchievementHandler) Create(c *gin.Context) {
	var req AchievementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	achievement := &domain.Achievement{
		PlayerID:         req.PlayerID,
		Title:            req.Title,
		Description:      req.Description,
		Category:         req.Category,
		Requirement:      req.Requirement,
		Progress:         req.Progress,
		ExperienceReward: req.ExperienceReward,
		CoinReward:       req.CoinReward,
	}

	created, err := h.achievementUseCase.Create(achievement)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// Update handles full and partial achievement updates
// @Summary Update achievement
// @Tags achievements
// @Accept json
// @Produce json
// @Param id path int true "Achievement ID"
// @Param request body AchievementRequest true "Achievement fields"
// @Success 200 {object} domain.Achievement
// @Failure 404 {object} ErrorResponse
// @Router /achievements/{id} [put]
func (h *AchievementHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	existing, err := h.achievementUseCase.GetByID(id)
	if err != nil {
		respondError(c, err)
		return
	}

	updated := *existing
	if err := c.ShouldBindJSON(&updated); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	updated.ID = id

	saved, err := h.achievementUseCase.Update(&updated)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, saved)
}

// Delete handles removing an achievement
// @Summary Delete achievement
// @Tags achievements
// @Param id path int true "Achievement ID"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Router /achievements/{id} [delete]
func (h *AchievementHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.achievementUseCase.Delete(id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Complete handles completing an achievement and rewarding its owner
// @Summary Complete achievement
// @Description Flip the achievement to completed and credit its rewards to the owning player
// @Tags achievements
// @Produce json
// @Param id path int true "Achievement ID"
// @Success 200 {object} domain.Achievement
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /achievements/{id}/complete [post]
func (h *AchievementHandler) Complete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	achievement, err := h.achievementUseCase.Complete(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, achievement)
}
