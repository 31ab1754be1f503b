package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/mmynk/clevermart/internal/auth"
	"github.com/mmynk/clevermart/internal/config"
	"github.com/mmynk/clevermart/internal/handler"
	"github.com/mmynk/clevermart/internal/metrics"
	"github.com/mmynk/clevermart/internal/service"
	"github.com/mmynk/clevermart/internal/storage"
	"github.com/mmynk/clevermart/internal/storage/csvstore"
	"github.com/mmynk/clevermart/internal/storage/sqlite"
	"github.com/mmynk/clevermart/pkg/logging"
)

func main() {
	cfg := config.Load()

	logFile := logging.SetupWithOptions(logging.Options{Level: cfg.Logger.Level, File: cfg.Logger.File})
	defer logFile.Close()

	store, err := openStore(cfg.Storage)
	if err != nil {
		slog.Error("Failed to initialize storage", "backend", cfg.Storage.Backend, "error", err)
		os.Exit(1)
	}
	defer store.Close()

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(reg)

	ctx := context.Background()
	inventory := service.NewInventoryService(store, m)
	ledger := service.NewLedgerService(store, m)
	// A partially readable file is not fatal: whatever parsed is served and
	// the next save rewrites the file.
	if err := inventory.Load(ctx); err != nil {
		slog.Warn("Starting with partial inventory", "error", err)
	}
	if err := ledger.Load(ctx); err != nil {
		slog.Warn("Starting with partial purchase history", "error", err)
	}
	cart := service.NewCartService(inventory, m)
	checkout := service.NewCheckoutService(inventory, cart, ledger, m)

	authenticator, err := auth.NewPasswordAuthenticator(cfg.Admin.Username, cfg.Admin.Password)
	if err != nil {
		slog.Error("Failed to initialize admin credentials", "error", err)
		os.Exit(1)
	}
	if cfg.JWT.DefaultSecret() {
		slog.Warn("JWT_SECRET is not set, signing admin tokens with the built-in default secret")
	}
	jwtManager := auth.NewJWTManager(cfg.JWT.Secret, cfg.JWT.TTL)
	authService := service.NewAuthService(authenticator, jwtManager, slog.Default())

	h := handler.New(inventory, cart, checkout, ledger, authService)
	e := h.NewServer(jwtManager, m)
	e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))

	go func() {
		slog.Info("HTTP server starting", "address", cfg.Server.Addr, "backend", cfg.Storage.Backend)
		if err := e.Start(cfg.Server.Addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server failed", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	slog.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		slog.Error("Server shutdown failed", "error", err)
	}
	slog.Info("Server exited")
}

func openStore(cfg config.StorageConfig) (storage.Store, error) {
	switch cfg.Backend {
	case config.BackendSQLite:
		s, err := sqlite.New(cfg.SQLitePath)
		if err != nil {
			return nil, err
		}
		slog.Info("Storage initialized", "database", cfg.SQLitePath)
		return s, nil
	case config.BackendCSV:
		slog.Info("Storage initialized", "inventory", cfg.InventoryFile, "transactions", cfg.TransactionsFile)
		return csvstore.New(cfg.InventoryFile, cfg.TransactionsFile), nil
	default:
		return nil, errors.New("unknown storage backend " + cfg.Backend)
	}
}
