package app

import (
	"github.com/ksoltys/teagarden/internal/http"
	"github.com/ksoltys/teagarden/internal/http/handlers"
	"github.com/ksoltys/teagarden/internal/http/middleware"
	"github.com/ksoltys/teagarden/internal/infrastructure/auth"
	"github.com/ksoltys/teagarden/internal/infrastructure/logger"
)

// InitHTTPServer initializes the HTTP server with all dependencies
func (a *application) InitHTTPServer(
	jwtService auth.JWTService,
	playerHandler *handlers.PlayerHandler,
	teaCardHandler *handlers.TeaCardHandler,
	userCardHandler *handlers.UserCardHandler,
	questHandler *handlers.QuestHandler,
	achievementHandler *handlers.AchievementHandler,
	weeklyEventHandler *handlers.WeeklyEventHandler,
	errorHandler *middleware.ErrorHandler,
	log *logger.Logger,
) *http.Server {
	port := a.config.Server.Port
	if port == "" {
		port = "8080" // default port
	}

	return http.NewServer(
		jwtService,
		playerHandler,
		teaCardHandler,
		userCardHandler,
		questHandler,
		achievementHandler,
		weeklyEventHandler,
		errorHandler,
		log,
		port,
	)
}
