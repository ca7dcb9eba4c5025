package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/samvad-hq/samvad-account-client/internal/app"
	"github.com/samvad-hq/samvad-account-client/internal/config"
	"github.com/samvad-hq/samvad-account-client/internal/logger"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "account: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	if _, err := logger.Init(cfg); err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer logger.Close()

	logger.DebugObj("account client starting", "config", cfg)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	acct, err := app.NewAccount(cfg, logger.Default())
	if err != nil {
		logger.ErrorObj("failed to initialize account client", "error", err)
		return err
	}
	defer acct.Close()

	return newRootCmd(acct).ExecuteContext(ctx)
}
