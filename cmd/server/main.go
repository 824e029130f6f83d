package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/Belphemur/ShowBrowser/v2/internal/app"
	"github.com/Belphemur/ShowBrowser/v2/internal/config"
)

func main() {
	cfg := config.GetConfig()
	logger := config.GetLogger()

	a, err := app.New(cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to initialize application")
	}
	defer func() {
		if err := a.Close(); err != nil {
			logger.Error().Err(err).Msg("Failed to release resources")
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := a.Run(ctx); err != nil {
		logger.Error().Err(err).Msg("Server stopped with error")
		os.Exit(1)
	}
}
