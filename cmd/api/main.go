package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"cardsmith/internal/adapter/repo"
	"cardsmith/internal/assetcache"
	"cardsmith/internal/compositor"
	"cardsmith/internal/frame"
	"cardsmith/internal/http/handlers"
	"cardsmith/internal/http/httpapi"
	"cardsmith/internal/infra"
	"cardsmith/internal/storage"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg, err := infra.LoadConfig()
	if err != nil {
		panic(err)
	}
	logger := infra.NewLogger(cfg.AppEnv)

	ctx := context.Background()
	dbpool, err := infra.NewDBPool(ctx, cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect database")
	}
	defer dbpool.Close()

	store, err := storage.NewFileStore(cfg.StoragePath)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to init storage")
	}

	runner := infra.NewSQLRunner(dbpool, logger)
	app := &handlers.App{
		Logger:   logger,
		Jobs:     repo.NewJobRepository(runner),
		Assets:   repo.NewAssetRepository(runner),
		Store:    store,
		Composer: compositor.New(logger),
		Frames:   frame.NewRenderer(assetcache.New(cfg.AssetRoot)),
		BaseURL:  cfg.StorageBaseURL,
	}

	router := httpapi.NewRouter(app, cfg)
	server := infra.NewHTTPServer(cfg, router)

	go func() {
		logger.Info().Str("addr", server.Addr()).Msg("API listening")
		if err := server.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("http server failed")
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPIdleTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("failed to shutdown server")
	}
	logger.Info().Msg("server stopped")
}
