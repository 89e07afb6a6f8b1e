package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/ksoltys/teagarden/internal/domain"
)

// ErrorResponse represents error response
type ErrorResponse struct {
	Error string `json:"error" example:"Quest already completed"`
}

// respondError writes an error payload in the legacy shape the clients
// expect. Unexpected failures echo the message with a 500.
func respondError(c *gin.Context, err error) {
	if appErr, ok := domain.IsAppError(err); ok {
		c.JSON(appErr.HTTPStatus, gin.H{"error": appErr.Message})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}

// pathID parses the numeric id path parameter
func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid id"})
		return 0, false
	}
	return id, true
}

// actingPlayerID returns the authenticated player's id, or zero when the
// request carries no identity and the first-player fallback applies.
func actingPlayerID(c *gin.Context) int64 {
	if id, exists := c.Get("player_id"); exists {
		if playerID, ok := id.(int64); ok {
			return playerID
		}
	}
	return 0
}
