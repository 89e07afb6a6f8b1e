package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ksoltys/teagarden/internal/domain"
)

// QuestHandler handles HTTP requests for quest operations
type QuestHandler struct {
	questUseCase domain.QuestUseCase
}

// NewQuestHandler creates a new quest handler
func NewQuestHandler(questUseCase domain.QuestUseCase) *QuestHandler {
	return &QuestHandler{questUseCase: questUseCase}
}

// QuestRequest represents a create/update quest request body
type QuestRequest struct {
	Title            string `json:"title"`
	Description      string `json:"description"`
	Type             string `json:"type" example:"daily"`
	Requirement      int    `json:"requirement"`
	ExperienceReward int    `json:"experience_reward"`
	CoinReward       int    `json:"coin_reward"`
}

// List handles listing all quests
// @Summary List quests
// @Tags quests
// @Produce json
// @Success 200 {array} domain.Quest
// @Router /quests [get]
func (h *QuestHandler) List(c *gin.Context) {
	quests, err := h.questUseCase.List()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, quests)
}

// Get handles retrieving a quest by id
// @Summary Get quest
// @Tags quests
// @Produce json
// @Param id path int true "Quest ID"
// @Success 200 {object} domain.Quest
// @Failure 404 {object} ErrorResponse
// @Router /quests/{id} [get]
func (h *QuestHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	quest, err := h.questUseCase.GetByID(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, quest)
}

// Create handles creating a quest
// @Summary Create quest
// @Tags quests
// @Accept json
// @Produce json
// @Param request body QuestRequest true "Quest fields"
// @Success 201 {object} domain.Quest
// @Failure 400 {object} ErrorResponse
// @Router /quests [post]
func (h *QuestHandler) Create(c *gin.Context) {
	var req QuestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	quest := &domain.Quest{
		Title:            req.Title,
		Description:      req.Description,
		Type:             domain.QuestType(req.Type),
		Requirement:      req.Requirement,
		ExperienceReward: req.ExperienceReward,
		CoinReward:       req.CoinReward,
	}

	created, err := h.questUseCase.Create(quest)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// Update handles full and partial quest updates
// @Summary Update quest
// @Tags quests
// @Accept json
// @Produce json
// @Param id path int true "Quest ID"
// @Param request body QuestRequest true "Quest fields"
// @Success 200 {object} domain.Quest
// @Failure 404 {object} ErrorResponse
// @Router /quests/{id} [put]
func (h *QuestHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	existing, err := h.questUseCase.GetByID(id)
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

	saved, err := h.questUseCase.Update(&updated)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, saved)
}

// Delete handles removing a quest
// @Summary Delete quest
// @Tags quests
// @Param id path int true "Quest ID"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Router /quests/{id} [delete]
func (h *QuestHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.questUseCase.Delete(id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Complete handles completing a quest and rewarding the acting player
// @Summary Complete quest
// @Description Flip the quest to completed and credit its rewards to the current player
// @Tags quests
// @Produce json
// @Param id path int true "Quest ID"
// @Success 200 {object} domain.Quest
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /quests/{id}/complete [post]
func (h *QuestHandler) Complete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	quest, err := h.questUseCase.Complete(id, actingPlayerID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, quest)
}
