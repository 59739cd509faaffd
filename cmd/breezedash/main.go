package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/joho/godotenv"
	"github.com/mattn/go-isatty"

	"github.com/roksva123/go-breeze-dashboard/internal/cli"
	"github.com/roksva123/go-breeze-dashboard/internal/config"
	"github.com/roksva123/go-breeze-dashboard/internal/logger"
)

func main() {
	_ = godotenv.Load()

	if cfg, err := config.Load(); err == nil {
		logger.Init(cfg.AppEnv, cfg.LogLevel)
	}

	app := &cli.App{
		LoadConfig: config.Load,
		Out:        os.Stdout,
		IsTerminal: func() bool {
			return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
		},
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := cli.NewRootCmd(app).ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
