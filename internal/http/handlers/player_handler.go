package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/ksoltys/teagarden/internal/domain"
	"github.com/ksoltys/teagarden/internal/infrastructure/auth"
)

// PlayerHandler handles HTTP requests for player operations
type PlayerHandler struct {
	playerUseCase domain.PlayerUseCase
	jwtService    auth.JWTService
}

// NewPlayerHandler creates a new player handler
func NewPlayerHandler(playerUseCase domain.PlayerUseCase, jwtService auth.JWTService) *PlayerHandler {
	return &PlayerHandler{
		playerUseCase: playerUseCase,
		jwtService:    jwtService,
	}
}

// LoginRequest represents the login request body
type LoginRequest struct {
	Username string `json:"username" binding:"required" example:"tea_master"`
	Password string `json:"password" binding:"required" example:"password123"`
}

// LoginResponse represents the login response body
type LoginResponse struct {
	Token  string         `json:"token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
	Player *domain.Player `json:"player"`
}

// PlayerRequest represents a create/update player request body
type PlayerRequest struct {
	Username   string `json:"username"`
	Password   string `json:"password,omitempty"`
	Level      int    `json:"level"`
	Experience int    `json:"experience"`
	Coins      int    `json:"coins"`
}

// Login handles player authentication
// @Summary Player login
// @Description Authenticate a player and return a JWT token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Login credentials"
// @Success 200 {object} LoginResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /auth/login [post]
func (h *PlayerHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	token, err := h.playerUseCase.Authenticate(req.Username, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	claims, err := h.jwtService.ValidateToken(token)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to process token"})
		return
	}

	playerID, err := strconv.ParseInt(claims.PlayerID, 10, 64)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Invalid player ID in token"})
		return
	}

	player, err := h.playerUseCase.GetByID(playerID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, LoginResponse{Token: token, Player: player})
}

// Current handles getting the acting player's profile
// @Summary Get current player
// @Description Get the acting player's profile; without a token this is the first stored player
// @Tags players
// @Produce json
// @Success 200 {object} domain.Player
// @Failure 404 {object} ErrorResponse
// @Router /players/current [get]
func (h *PlayerHandler) Current(c *gin.Context) {
	player, err := h.playerUseCase.Current(actingPlayerID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, player)
}

// List handles listing all players
// @Summary List players
// @Tags players
// @Produce json
// @Success 200 {array} domain.Player
// @Router /players [get]
func (h *PlayerHandler) List(c *gin.Context) {
	players, err := h.playerUseCase.List()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, players)
}

// Get handles retrieving a player by id
// @Summary Get player
// @Tags players
// @Produce json
// @Param id path int true "Player ID"
// @Success 200 {object} domain.Player
// @Failure 404 {object} ErrorResponse
// @Router /players/{id} [get]
func (h *PlayerHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	player, err := h.playerUseCase.GetByID(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, player)
}

// Create handles creating a player profile
// @Summary Create player
// @Tags players
// @Accept json
// @Produce json
// @Param request body PlayerRequest true "Player fields"
// @Success 201 {object} domain.Player
// @Failure 400 {object} ErrorResponse
// @Router /players [post]
func (h *PlayerHandler) Create(c *gin.Context) {
	var req PlayerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	player := &domain.Player{
		Username:   req.Username,
		Password:   req.Password,
		Level:      req.Level,
		Experience: req.Experience,
		Coins:      req.Coins,
	}

	created, err := h.playerUseCase.Create(player)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// Update handles full and partial player updates
// @Summary Update player
// @Tags players
// @Accept json
// @Produce json
// @Param id path int true "Player ID"
// @Param request body PlayerRequest true "Player fields"
// @Success 200 {object} domain.Player
// @Failure 404 {object} ErrorResponse
// @Router /players/{id} [put]
func (h *PlayerHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	existing, err := h.playerUseCase.GetByID(id)
	if err != nil {
		respondError(c, err)
		return
	}

	// Bind on top of the current state so PATCH bodies with a subset of
	// fields leave the rest untouched.
	updated := *existing
	if err := c.ShouldBindJSON(&updated); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	updated.ID = id

	saved, err := h.playerUseCase.Update(&updated)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, saved)
}

// Delete handles removing a player profile
// @Summary Delete player
// @Tags players
// @Param id path int true "Player ID"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Router /players/{id} [delete]
func (h *PlayerHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.playerUseCase.Delete(id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Rewards handles listing a player's reward ledger
// @Summary List player reward entries
// @Tags players
// @Produce json
// @Param id path int true "Player ID"
// @Success 200 {array} domain.RewardEntry
// @Failure 404 {object} ErrorResponse
// @Router /players/{id}/rewards [get]
func (h *PlayerHandler) Rewards(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	entries, err := h.playerUseCase.ListRewards(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, entries)
}
