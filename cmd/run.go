package cmd

import (
	"context"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"

	"blackjack/advisor"
	"blackjack/config"
	"blackjack/database"
	"blackjack/game"
	"blackjack/repository"
	"blackjack/server"
	"blackjack/service"
)

// Run initializes and starts the application
func Run(ctx context.Context) error {
	log.Info("Starting blackjack server...")

	// Load configuration
	cfg := config.Get()

	// Initialize database connection
	log.Info("Connecting to database...")
	db, err := database.NewConnection(ctx, cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	log.Info("Database connection established successfully")

	// Initialize unit of work factory
	uowFactory := repository.NewUnitOfWorkFactory(db)

	// Initialize services
	settlementService := service.NewSettlementService(uowFactory, cfg.StartingChips)
	chipService := service.NewChipService(uowFactory, cfg.StartingChips)
	historyService := service.NewHistoryService(uowFactory, cfg.HistoryLimit)
	playService := service.NewPlayService(game.NewManager(), chipService, settlementService)

	aiAdvisor := advisor.New(cfg.GeminiAPIKey, cfg.GeminiModel)
	if aiAdvisor.Enabled() {
		log.Infof("Strategy recommendations enabled using %s", cfg.GeminiModel)
	} else {
		log.Info("GEMINI_API_KEY not set, strategy recommendations disabled")
	}

	// Initialize HTTP server
	srv := server.New(server.Config{
		Addr:         cfg.ListenAddr,
		HistoryLimit: cfg.HistoryLimit,
	}, settlementService, chipService, historyService, playService, aiAdvisor)

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- srv.Start()
	}()

	log.Infof("Server is running in %s mode...", cfg.Environment)

	select {
	case err := <-serverErr:
		db.Close()
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	// Cleanup resources
	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("Failed to shut down HTTP server cleanly")
	}

	db.Close()
	log.Info("Shutdown complete")
	return nil
}
