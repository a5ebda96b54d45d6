package bootstrap

import (
	"log"

	"killchain-analyzer-be/internal/catalog"
	"killchain-analyzer-be/internal/config"
	"killchain-analyzer-be/internal/controller"
	"killchain-analyzer-be/internal/pkg/logger"
	"killchain-analyzer-be/internal/repository/memory"
	"killchain-analyzer-be/internal/service"
)

type Container struct {
	// Controllers
	GameController        controller.IGameController
	SessionController     controller.ISessionController
	LeaderboardController controller.ILeaderboardController

	// Exposed for the background sweeper in main and for tests
	SessionService service.ISessionService
	Logger         logger.ILogger
}

func NewContainer(cfg *config.Config) *Container {
	// 1. Core Facades
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// 2. Content catalog. A broken catalog is a programming error, so
	// fail the process instead of limping to the first request.
	cat, err := catalog.New()
	if err != nil {
		log.Fatalf("[FATAL] Invalid game catalog: %v", err)
	}

	// 3. Storage
	sessionRepo := memory.NewSessionRepository()

	// 4. Services
	sessionService := service.NewSessionService(sessionRepo, sysLogger)
	gameService := service.NewGameService(cat, sessionService, sysLogger)
	leaderboardService := service.NewLeaderboardService()

	// 5. Controllers
	return &Container{
		GameController:        controller.NewGameController(cat, gameService, sessionService),
		SessionController:     controller.NewSessionController(sessionService),
		LeaderboardController: controller.NewLeaderboardController(leaderboardService),
		SessionService:        sessionService,
		Logger:                sysLogger,
	}
}
