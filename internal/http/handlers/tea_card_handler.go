package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ksoltys/teagarden/internal/domain"
)

// TeaCardHandler handles HTTP requests for the tea card catalog
type TeaCardHandler struct {
	teaCardUseCase domain.TeaCardUseCase
}

// NewTeaCardHandler creates a new tea card handler
func NewTeaCardHandler(teaCardUseCase domain.TeaCardUseCase) *TeaCardHandler {
	return &TeaCardHandler{teaCardUseCase: teaCardUseCase}
}

// List handles listing the card catalog
// @Summary List tea cards
// @Tags tea-cards
// @Produce json
// @Success 200 {array} domain.TeaCard
// @Router /tea-cards [get]
func (h *TeaCardHandler) List(c *gin.Context) {
	cards, err := h.teaCardUseCase.List()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, cards)
}

// Get handles retrieving a tea card by id
// @Summary Get tea card
// @Tags tea-cards
// @Produce json
// @Param id path int true "Tea card ID"
// @Success 200 {object} domain.TeaCard
// @Failure 404 {object} ErrorResponse
// @Router /tea-cards/{id} [get]
func (h *TeaCardHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	card, err := h.teaCardUseCase.GetByID(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, card)
}
