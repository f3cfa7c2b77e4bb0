package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Andohkay1/Stock-screener/internal/clients/yahoo"
	"github.com/Andohkay1/Stock-screener/internal/config"
	"github.com/Andohkay1/Stock-screener/internal/database"
	"github.com/Andohkay1/Stock-screener/internal/database/repositories"
	"github.com/Andohkay1/Stock-screener/internal/modules/screener"
	"github.com/Andohkay1/Stock-screener/internal/modules/screener/jobs"
	"github.com/Andohkay1/Stock-screener/internal/scheduler"
	"github.com/Andohkay1/Stock-screener/internal/server"
	"github.com/Andohkay1/Stock-screener/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		// Logger is not up yet
		panic(err)
	}

	log := logger.New(logger.Config{
		Level:  cfg.LogLevel,
		Pretty: cfg.DevMode,
	})
	logger.SetGlobalLogger(log)

	log.Info().Msg("Starting stock screener")

	db, err := database.New(cfg.DatabasePath)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize database")
	}
	defer db.Close()

	if err := db.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("Failed to run migrations")
	}

	// Provider chain: Yahoo behind the sqlite TTL cache
	quoteCache := repositories.NewQuoteCacheRepository(db.Conn(), cfg.QuoteCacheTTL, log)
	yahooClient := yahoo.NewClient(cfg.FetchTimeout, cfg.DefaultBondYield, log)
	provider := screener.NewCachedProvider(yahooClient, quoteCache, log)

	service := screener.NewService(provider, screener.RubricVariant(cfg.RubricVariant), log)
	handler := screener.NewHandler(service, log)

	sched := scheduler.New(log)
	sched.Start()
	defer sched.Stop()

	sweep := jobs.NewCacheSweepJob(quoteCache, log)
	if err := sched.AddJob("@hourly", sweep); err != nil {
		log.Fatal().Err(err).Msg("Failed to register cache sweep job")
	}

	srv := server.New(server.Config{
		Port:     cfg.Port,
		Log:      log,
		Screener: handler,
		DevMode:  cfg.DevMode,
	})

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	log.Info().Int("port", cfg.Port).Msg("Server started successfully")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server stopped")
}
