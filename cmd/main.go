package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/orgball2608/mini-insta/internal/app"
	"github.com/orgball2608/mini-insta/pkg/logger"
	"go.uber.org/fx"
)

// Startup waits for postgres and runs migrations before the listener opens.
const (
	startTimeout = 30 * time.Second
	stopTimeout  = 10 * time.Second
)

func main() {
	log := logger.New(logger.Opts{Env: os.Getenv("APP_ENV")})

	application := fx.New(
		fx.Logger(log),
		fx.StartTimeout(startTimeout),
		fx.StopTimeout(stopTimeout),
		app.Module,
	)

	startCtx, cancelStart := context.WithTimeout(context.Background(), startTimeout)
	defer cancelStart()

	if err := application.Start(startCtx); err != nil {
		log.Error("Failed to start mini-insta", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()
	log.Info("Shutdown signal received")

	stopCtx, cancelStop := context.WithTimeout(context.Background(), stopTimeout)
	defer cancelStop()

	if err := application.Stop(stopCtx); err != nil {
		log.Error("Failed to stop mini-insta", "error", err)
		os.Exit(1)
	}
}
