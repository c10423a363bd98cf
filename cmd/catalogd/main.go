package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/TylerBromley/bindkit/app/catalog"
	"github.com/TylerBromley/bindkit/core/logger"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log := logger.New(logger.WithJSON())

	app, err := catalog.NewApp(catalog.WithLogger(log))
	if err != nil {
		log.Error("failed to build application", logger.Error(err))
		os.Exit(1)
	}

	if err := app.Run(ctx); err != nil {
		log.Error("server failed", logger.Error(err))
		os.Exit(1)
	}
}
