package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/avdeenko/biograph/internal/auth"
	"github.com/avdeenko/biograph/internal/config"
	handler "github.com/avdeenko/biograph/internal/handler/http"
	"github.com/avdeenko/biograph/internal/logger"
	"github.com/avdeenko/biograph/internal/server"
	"github.com/avdeenko/biograph/internal/store"
	"github.com/avdeenko/biograph/migrations"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.New("biograph-hub")
	cfg, err := config.Get()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if cfg.App.TokenSignKey == "" {
		log.Fatal().Msg("APP_TOKEN_SIGN_KEY must be set")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := store.NewConnectSQLite(ctx, cfg.Storage.DSN, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting storage")
	}
	defer db.Close()

	if err = migrations.Migrate(db.DB); err != nil {
		log.Fatal().Err(err).Msg("error running migrations")
	}

	repo := store.NewDocumentRepository(db, log)
	hub := server.NewHub(log, repo)

	settings := auth.Settings{
		SignKey:  cfg.App.TokenSignKey,
		Issuer:   cfg.App.TokenIssuer,
		Duration: cfg.App.TokenDuration,
	}
	h := handler.NewHandler(hub, repo, settings, log)

	srv := &http.Server{
		Addr:              cfg.Hub.Address,
		Handler:           h.Init(),
		ReadHeaderTimeout: cfg.Hub.RequestTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("address", cfg.Hub.Address).Msg("hub listening")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		log.Info().Msg("shutdown signal received")
	case err = <-errCh:
		log.Fatal().Err(err).Msg("hub stopped unexpectedly")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err = srv.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Error().Err(err).Msg("shutdown error")
	}
	log.Info().Msg("hub stopped")
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
