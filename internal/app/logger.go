package app

import (
	"github.com/ksoltys/teagarden/internal/config"
	"github.com/ksoltys/teagarden/internal/infrastructure/logger"
)

// InitLogger creates a new logger instance
func (a *application) InitLogger() *logger.Logger {
	return logger.NewLogger(config.GetEnvironment(), a.config.Log.Level)
}
