package http

import (
	"fmt"
	"net/http"
	"time"

	"github.com/ksoltys/teagarden/internal/infrastructure/auth"

	"github.com/gin-gonic/gin"
	"github.com/ksoltys/teagarden/internal/http/handlers"
	"github.com/ksoltys/teagarden/internal/http/middleware"
	"github.com/ksoltys/teagarden/internal/infrastructure/logger"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Server represents the HTTP server
type Server struct {
	router             *gin.Engine
	jwtService         auth.JWTService
	playerHandler      *handlers.PlayerHandler
	teaCardHandler     *handlers.TeaCardHandler
	userCardHandler    *handlers.UserCardHandler
	questHandler       *handlers.QuestHandler
	achievementHandler *handlers.AchievementHandler
	weeklyEventHandler *handlers.WeeklyEventHandler
	errorHandler       *middleware.ErrorHandler
	port               string
}

// NewServer creates a new HTTP server
func NewServer(
	jwtService auth.JWTService,
	playerHandler *handlers.PlayerHandler,
	teaCardHandler *handlers.TeaCardHandler,
	userCardHandler *handlers.UserCardHandler,
	questHandler *handlers.QuestHandler,
	achievementHandler *handlers.AchievementHandler,
	weeklyEventHandler *handlers.WeeklyEventHandler,
	errorHandler *middleware.ErrorHandler,
	log *logger.Logger,
	port string,
) *Server {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()

	router.Use(errorHandler.RequestIDMiddleware())
	router.Use(errorHandler.TimeoutMiddleware(30 * time.Second))
	router.Use(errorHandler.ErrorHandlerMiddleware())
	router.Use(middleware.LoggerMiddleware(log))
	router.Use(gin.Recovery())

	server := &Server{
		router:             router,
		jwtService:         jwtService,
		playerHandler:      playerHandler,
		teaCardHandler:     teaCardHandler,
		userCardHandler:    userCardHandler,
		questHandler:       questHandler,
		achievementHandler: achievementHandler,
		weeklyEventHandler: weeklyEventHandler,
		errorHandler:       errorHandler,
		port:               port,
	}

	server.setupRoutes()
	return server
}

// setupRoutes configures all the routes
func (s *Server) setupRoutes() {
	s.router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	s.router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := s.router.Group("/api")
	api.Use(middleware.PlayerIdentityMiddleware(s.jwtService))
	{
		authRoutes := api.Group("/auth")
		{
			authRoutes.POST("/login", s.playerHandler.Login)
		}

		teaCardRoutes := api.Group("/tea-cards")
		{
			teaCardRoutes.GET("", s.teaCardHandler.List)
			teaCardRoutes.GET("/:id", s.teaCardHandler.Get)
		}

		playerRoutes := api.Group("/players")
		{
			playerRoutes.GET("", s.playerHandler.List)
			playerRoutes.POST("", s.playerHandler.Create)
			playerRoutes.GET("/current", s.playerHandler.Current)
			playerRoutes.GET("/:id", s.playerHandler.Get)
			playerRoutes.PUT("/:id", s.playerHandler.Update)
			playerRoutes.PATCH("/:id", s.playerHandler.Update)
			playerRoutes.DELETE("/:id", s.playerHandler.Delete)
			playerRoutes.GET("/:id/rewards", s.playerHandler.Rewards)
		}

		userCardRoutes := api.Group("/user-cards")
		{
			userCardRoutes.GET("", s.userCardHandler.List)
			userCardRoutes.POST("", s.userCardHandler.Grant)
			userCardRoutes.GET("/:id", s.userCardHandler.Get)
			userCardRoutes.PUT("/:id", s.userCardHandler.Update)
			userCardRoutes.PATCH("/:id", s.userCardHandler.Update)
			userCardRoutes.DELETE("/:id", s.userCardHandler.Delete)
		}

		questRoutes := api.Group("/quests")
		{
			questRoutes.GET("", s.questHandler.List)
			questRoutes.POST("", s.questHandler.Create)
			questRoutes.GET("/:id", s.questHandler.Get)
			questRoutes.PUT("/:id", s.questHandler.Update)
			questRoutes.PATCH("/:id", s.questHandler.Update)
			questRoutes.DELETE("/:id", s.questHandler.Delete)
			questRoutes.POST("/:id/complete", s.questHandler.Complete)
		}

		achievementRoutes := api.Group("/achievements")
		{
			achievementRoutes.GET("", s.achievementHandler.List)
			achievementRoutes.POST("", s.achievementHandler.Create)
			achievementRoutes.GET("/:id", s.achievementHandler.Get)
			achievementRoutes.PUT("/:id", s.achievementHandler.Update)
			achievementRoutes.PATCH("/:id", s.achievementHandler.Update)
			achievementRoutes.DELETE("/:id", s.achievementHandler.Delete)
			achievementRoutes.POST("/:id/complete", s.achievementHandler.Complete)
		}

		weeklyEventRoutes := api.Group("/weekly-events")
		{
			weeklyEventRoutes.GET("", s.weeklyEventHandler.List)
			weeklyEventRoutes.GET("/:id", s.weeklyEventHandler.Get)
		}

		// Legacy alias kept for the original mobile client.
		api.GET("/user", s.playerHandler.Current)
	}
}

// Start starts the HTTP server
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%s", s.port)
	return s.router.Run(addr)
}

// Router exposes the underlying gin engine, mainly for tests
func (s *Server) Router() *gin.Engine {
	return s.router
}
