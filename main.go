package main

//go:generate swag init

import (
	"context"
	"embed"
	"errors"
	"flag"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/satheeshds/contacts/config"
	"github.com/satheeshds/contacts/db"
	_ "github.com/satheeshds/contacts/docs"
	"github.com/satheeshds/contacts/handlers"
	"github.com/satheeshds/contacts/logger"
	"github.com/satheeshds/contacts/metrics"
	"github.com/satheeshds/contacts/store"
)

//go:embed static/*
var staticFiles embed.FS

// @title           Contacts API
// @version         1.0.0
// @description     API for managing contacts and the categories they belong to.
// @BasePath        /api

func main() {
	configPath := flag.String("config", os.Getenv("CONTACTS_CONFIG"), "path to the TOML config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	logger.Init(cfg.Log.Level, cfg.Log.Format)

	s, closeStore, err := openStore(cfg.Store)
	if err != nil {
		slog.Error("failed to open store", "driver", cfg.Store.Driver, "error", err)
		os.Exit(1)
	}
	defer closeStore()

	staticFS, _ := fs.Sub(staticFiles, "static")
	router := handlers.NewRouter(handlers.RouterOptions{
		Store:          s,
		Metrics:        metrics.New(),
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		UI:             staticFS,
	})

	srv := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           router,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout.Duration,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		slog.Info("server starting", "address", srv.Addr, "store", cfg.Store.Driver)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	slog.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("graceful shutdown failed", "error", err)
	}
}

// openStore returns the configured repository and a function releasing it.
func openStore(cfg config.StoreConfig) (store.Store, func(), error) {
	switch strings.ToLower(cfg.Driver) {
	case config.DriverDuckDB:
		database, err := db.Open()
		if err != nil {
			return nil, nil, err
		}
		if err := db.Migrate(database); err != nil {
			database.Close()
			return nil, nil, err
		}
		return store.NewSQL(database), func() { database.Close() }, nil
	default:
		return store.NewMemory(), func() {}, nil
	}
}
