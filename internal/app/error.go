package app

import (
	"github.com/ksoltys/teagarden/internal/http/middleware"
	"github.com/ksoltys/teagarden/internal/infrastructure/logger"
)

func (a *application) InitErrorHandler(log *logger.Logger) *middleware.ErrorHandler {
	return middleware.NewErrorHandler(log)
}
