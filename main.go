package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/danielhkuo/starter-vote/cliparse"
	"github.com/danielhkuo/starter-vote/gateway"
	"github.com/danielhkuo/starter-vote/middleware"
	"github.com/danielhkuo/starter-vote/router"
	"github.com/danielhkuo/starter-vote/store"
)

func main() {
	var err error

	// Optional .env for local development
	if err := cliparse.LoadDotEnv(); err != nil {
		slog.Error("Error loading .env", "error", err)
		os.Exit(1)
	}

	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	// Connect to the counter store
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	counters, err := store.Open(ctx, cfg.StoreType, cfg.StoreURL)
	cancel()
	if err != nil {
		slog.Error("store connection failed", "type", cfg.StoreType, "error", err)
		os.Exit(1)
	}
	defer counters.Close()
	slog.Info("Counter store ready", "type", cfg.StoreType)

	// Create router
	mux := router.NewRouter(gateway.New(counters))

	// Create server
	server := http.Server{
		Handler:           middleware.CORS(mux),
		Addr:              ":" + strconv.Itoa(cfg.Port),
		ReadHeaderTimeout: 5 * time.Second,
	}

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	go func() {
		// Wait for Ctrl-C signal
		<-ctrlc
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		server.Shutdown(shutdownCtx)
	}()

	// Start server
	slog.Info("Listening", "port", cfg.Port)
	err = server.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("Server closed", "error", err)
	} else {
		slog.Info("Server closed", "error", err)
	}
}
