package app

import (
	"context"
	"flag"
	"fmt"
	"log"

	"github.com/ksoltys/teagarden/internal/config"
	"github.com/ksoltys/teagarden/internal/http"
	"go.uber.org/fx"
)

// Application provides application level setup
type Application interface {
	Setup()
	GetContext() context.Context
}

// application represents context and configure file
type application struct {
	ctx    context.Context
	config *config.Config
}

// NewApplication creates a new application
func NewApplication(ctx context.Context) Application {
	return &application{ctx: ctx}
}

// GetContext returns application context
func (a *application) GetContext() context.Context {
	return a.ctx
}

// Setup creates a new fx application with all modules
func (a *application) Setup() {
	fmt.Println("[x] Starting Tea Garden Service...")

	path := flag.String("e", "./config", "env file directory")
	flag.Parse()

	err := a.setupViper(*path)
	if err != nil {
		log.Panic(err.Error())
	}

	app := fx.New(
		fx.Provide(
			a.InitDatabase,
			a.InitLogger,
			a.InitJWTService,
			a.InitPlayerLockManager,
			a.InitErrorHandler,
			a.InitRepository,
			a.InitPlayerUseCase,
			a.InitTeaCardUseCase,
			a.InitUserCardUseCase,
			a.InitQuestUseCase,
			a.InitAchievementUseCase,
			a.InitWeeklyEventUseCase,
			a.InitPlayerHandler,
			a.InitTeaCardHandler,
			a.InitUserCardHandler,
			a.InitQuestHandler,
			a.InitAchievementHandler,
			a.InitWeeklyEventHandler,
			a.InitHTTPServer,
		),
		fx.Invoke(func(server *http.Server) {
			go func() {
				if err := server.Start(); err != nil {
					log.Panic(err.Error())
				}
			}()
		}),
	)

	app.Run()
}
