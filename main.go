package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"ai-dvsum/cmd"
	"ai-dvsum/internal/modules/config"
	"ai-dvsum/internal/modules/logging"

	"go.uber.org/zap"
)

// main is the entry point of the application.
func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}

	logger, level, err := logging.New(cfg.Log)
	if err != nil {
		panic("failed to initialize logger: " + err.Error())
	}
	defer logger.Sync()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		cmd.Execute(ctx, cfg, logger, level)
		cancel()
	}()

	select {
	case <-ctx.Done():
		logger.Debug("main context done")
	case sig := <-sigChan:
		logger.Info("received shutdown signal", zap.String("signal", sig.String()))
		cancel()

		// give in-flight requests a moment to observe the cancellation
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer shutdownCancel()
		<-shutdownCtx.Done()
		logger.Info("shutdown completed")
		os.Exit(130)
	}
}
