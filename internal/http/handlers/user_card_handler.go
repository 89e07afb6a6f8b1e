package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ksoltys/teagarden/internal/domain"
)

// UserCardHandler handles HTTP requests for a player's card collection
type UserCardHandler struct {
	userCardUseCase domain.UserCardUseCase
	playerUseCase   domain.PlayerUseCase
}

// NewUserCardHandler creates a new user card handler
func NewUserCardHandler(userCardUseCase domain.UserCardUseCase, playerUseCase domain.PlayerUseCase) *UserCardHandler {
	return &UserCardHandler{
		userCardUseCase: userCardUseCase,
		playerUseCase:   playerUseCase,
	}
}

// GrantRequest represents a grant-card request body
type GrantRequest struct {
	TeaCardID int64 `json:"tea_card_id" binding:"required" example:"3"`
	Quantity  int   `json:"quantity" example:"1"`
}

// List handles listing the acting player's collection
// @Summary List the current player's cards
// @Tags user-cards
// @Produce json
// @Success 200 {array} domain.UserCard
// @Router /user-cards [get]
func (h *UserCardHandler) List(c *gin.Context) {
	cards, err := h.userCardUseCase.ListForCurrent(actingPlayerID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, cards)
}

// Get handles retrieving a user card by id
// @Summary Get user card
// @Tags user-cards
// @Produce json
// @Param id path int true "User card ID"
// @Success 200 {object} domain.UserCard
// @Failure 404 {object} ErrorResponse
// @Router /user-cards/{id} [get]
func (h *UserCardHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	card, err := h.userCardUseCase.GetByID(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, card)
}

// Grant handles adding a card to the acting player's collection
// @Summary Grant a card to the current player
// @Tags user-cards
// @Accept json
// @Produce json
// @Param request body GrantRequest true "Card and quantity"
// @Success 201 {object} domain.UserCard
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /user-cards [post]
func (h *UserCardHandler) Grant(c *gin.Context) {
	var req GrantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}

	player, err := h.playerUseCase.Current(actingPlayerID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	card, err := h.userCardUseCase.Grant(player.ID, req.TeaCardID, req.Quantity)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, card)
}

// UpdateQuantityRequest represents an update-quantity request body
type UpdateQuantityRequest struct {
	Quantity int `json:"quantity" binding:"required" example:"2"`
}

// Update handles setting the copy count on a collection row
// @Summary Update user card quantity
// @Tags user-cards
// @Accept json
// @Produce json
// @Param id path int true "User card ID"
// @Param request body UpdateQuantityRequest true "New quantity"
// @Success 200 {object} domain.UserCard
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /user-cards/{id} [put]
func (h *UserCardHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req UpdateQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	card, err := h.userCardUseCase.UpdateQuantity(id, req.Quantity)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, card)
}

// Delete handles removing a card row from a collection
// @Summary Delete user card
// @Tags user-cards
// @Param id path int true "User card ID"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Router /user-cards/{id} [delete]
func (h *UserCardHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.userCardUseCase.Delete(id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
