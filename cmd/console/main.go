package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	cartapp "github.com/dwikikusuma/storefront/internal/cart/app"
	"github.com/dwikikusuma/storefront/internal/storefront"
	"github.com/dwikikusuma/storefront/internal/storefront/console"

	"github.com/dwikikusuma/storefront/pkg/config"
	"github.com/dwikikusuma/storefront/pkg/logger"
	"github.com/dwikikusuma/storefront/pkg/shutdown"
)

func main() {
	cfg, err := config.Load("storefront-console", os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	// The screen owns stdout.
	log := logger.New(logger.Options{
		Service: "storefront-console",
		Env:     cfg.AppEnv,
		Level:   cfg.LogLevel,
		Format:  "text",
		Writer:  os.Stderr,
	})

	ctx, cancel := shutdown.WithSignals(context.Background())
	defer cancel()

	screen, err := storefront.NewScreen(cfg, log)
	if err != nil {
		log.Error("catalog invalid", slog.Any("err", err))
		os.Exit(1)
	}

	lines, closeLines, err := console.NewTerminalReader(os.Stdin, os.Stdout)
	if err != nil {
		log.Error("terminal init failed", slog.Any("err", err))
		os.Exit(1)
	}
	defer closeLines()
	context.AfterFunc(ctx, func() { _ = closeLines() })

	view := cartapp.NewService(log)
	err = console.New(screen, view, os.Stdout, log).Run(ctx, lines)
	if err != nil && !errors.Is(err, context.Canceled) {
		log.Error("console error", slog.Any("err", err))
		os.Exit(1)
	}
}
