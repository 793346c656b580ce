package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"time"

	"github.com/dwikikusuma/storefront/internal/storefront"
	"github.com/dwikikusuma/storefront/internal/storefront/session"
	"github.com/dwikikusuma/storefront/internal/storefront/web"

	"github.com/dwikikusuma/storefront/pkg/config"
	"github.com/dwikikusuma/storefront/pkg/grpcserver"
	"github.com/dwikikusuma/storefront/pkg/logger"
	"github.com/dwikikusuma/storefront/pkg/shutdown"
)

func main() {
	cfg, err := config.Load("storefront", os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	log := logger.New(logger.Options{
		Service:   "storefront",
		Env:       cfg.AppEnv,
		Level:     cfg.LogLevel,
		Format:    cfg.LogFormat,
		AddSource: true,
	})

	ctx, cancel := shutdown.WithSignals(context.Background())
	defer cancel()

	screen, err := storefront.NewScreen(cfg, log)
	if err != nil {
		log.Error("catalog invalid", slog.Any("err", err))
		os.Exit(1)
	}

	sessions := session.NewStore(log, cfg.SessionTTL)
	go sessions.Start(ctx)

	httpAddr := fmt.Sprintf(":%d", cfg.HTTPPort)
	httpServer := &http.Server{
		Addr:              httpAddr,
		Handler:           web.NewServer(screen, sessions, log).Routes(),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	grpcAddr := fmt.Sprintf(":%d", cfg.GRPCPort)
	lis, err := net.Listen("tcp", grpcAddr)
	if err != nil {
		log.Error("listen failed", slog.Any("err", err), slog.String("addr", grpcAddr))
		os.Exit(1)
	}
	grpcServer := grpcserver.New()
	grpcServer.SetServing(grpcserver.StorefrontService, true)

	err = shutdown.Run(ctx, log, 10*time.Second,
		shutdown.Process{
			Name: "http " + httpAddr,
			Serve: func() error {
				if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					return err
				}
				return nil
			},
			Stop: httpServer.Shutdown,
		},
		shutdown.Process{
			Name:  "grpc " + grpcAddr,
			Serve: func() error { return grpcServer.Serve(lis) }, // nil once stopped
			Stop:  grpcServer.Stop,
		},
	)
	if err != nil {
		os.Exit(1)
	}
}
