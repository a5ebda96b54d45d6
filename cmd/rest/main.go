package main

import (
	"log"
	"time"

	"killchain-analyzer-be/internal/bootstrap"
	"killchain-analyzer-be/internal/config"
	"killchain-analyzer-be/internal/server"
)

func main() {
	// 1. Load Configuration
	cfg := config.Load()

	// 2. Bootstrap Dependencies (Container)
	container := bootstrap.NewContainer(cfg)
	defer container.Logger.Sync()

	// 3. Start Background Sweeper
	// Note: In a larger app, we might use an errgroup or supervisor here
	go func() {
		interval := time.Duration(cfg.Session.SweepInterval) * time.Minute
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for range ticker.C {
			container.SessionService.Cleanup(cfg.Session.MaxAgeHours)
		}
	}()

	// 4. Initialize Server
	srv := server.New(cfg, container)

	// 5. Run Server
	log.Fatal(srv.Run())
}
