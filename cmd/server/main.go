package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/incubadora/ponto-api/internal/api"
	"github.com/incubadora/ponto-api/internal/core/ports"
	"github.com/incubadora/ponto-api/internal/core/service"
	"github.com/incubadora/ponto-api/internal/infrastructure/config"
	"github.com/incubadora/ponto-api/internal/infrastructure/db/postgres"
	"github.com/incubadora/ponto-api/internal/infrastructure/roster"
	"github.com/incubadora/ponto-api/pkg/logger"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load(ctx)
	if err != nil {
		// Logger options depend on config; initialize with defaults to
		// report the startup failure.
		log := logger.Init(logger.Options{})
		log.Fatal().Err(err).Msg("startup failed")
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	db, err := postgres.Connect(cfg.Database.URL)
	if err != nil {
		log.Fatal().Err(err).Msg("startup failed: database")
	}
	if err := postgres.Migrate(db); err != nil {
		log.Fatal().Err(err).Msg("startup failed: migration")
	}

	// Directory variant selection: one capability interface, two
	// implementations, chosen by configuration.
	var directory ports.UserDirectory
	var adminSvc ports.AdminService
	rosterPath := ""

	switch cfg.UserBackend {
	case config.BackendRoster:
		dir, err := roster.NewDirectory(cfg.RosterPath, log)
		if err != nil {
			log.Fatal().Err(err).Msg("startup failed: roster")
		}
		directory = dir
		rosterPath = cfg.RosterPath
	default:
		store := postgres.NewUserDirectory(db)
		directory = store
		adminSvc = service.NewAdminService(store, log)
	}

	ledger := postgres.NewLedgerRepository(db)
	checkin := service.NewCheckinService(directory, ledger, log)
	exports := service.NewExportService(ledger, log)

	e := api.NewRouter(api.Dependencies{
		Checkin:    checkin,
		Exports:    exports,
		Admin:      adminSvc,
		DB:         db,
		RosterPath: rosterPath,
		AdminToken: cfg.AdminToken,
		AllowedIPs: cfg.AllowedIPs,
		Log:        log,
	})

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()
	log.Info().Str("port", cfg.Port).Str("backend", cfg.UserBackend).Msg("server started")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
	log.Info().Msg("server stopped")
}
