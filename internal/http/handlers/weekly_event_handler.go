package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ksoltys/teagarden/internal/domain"
)

// WeeklyEventHandler handles HTTP requests for the event schedule
type WeeklyEventHandler struct {
	eventUseCase domain.WeeklyEventUseCase
}

// NewWeeklyEventHandler creates a new weekly event handler
func NewWeeklyEventHandler(eventUseCase domain.WeeklyEventUseCase) *WeeklyEventHandler {
	return &WeeklyEventHandler{eventUseCase: eventUseCase}
}

// List handles listing the event schedule
// @Summary List weekly events
// @Tags weekly-events
// @Produce json
// @Success 200 {array} domain.WeeklyEvent
// @Router /weekly-events [get]
func (h *WeeklyEventHandler) List(c *gin.Context) {
	events, err := h.eventUseCase.List()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, events)
}

// Get handles retrieving a weekly event by id
// @Summary Get weekly event
// @Tags weekly-events
// @Produce json
// @Param id path int true "Weekly event ID"
// @Success 200 {object} domain.WeeklyEvent
// @Failure 404 {object} ErrorResponse
// @Router /weekly-events/{id} [get]
func (h *WeeklyEventHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	event, err := h.eventUseCase.GetByID(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, event)
}
