package main

import (
	"context"
	"database/sql"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/slaytrack/slaytrack/internal/analytics"
	"github.com/slaytrack/slaytrack/internal/config"
	"github.com/slaytrack/slaytrack/internal/database"
	"github.com/slaytrack/slaytrack/internal/database/postgres"
	"github.com/slaytrack/slaytrack/internal/ingest"
	"github.com/slaytrack/slaytrack/internal/server"
	"github.com/slaytrack/slaytrack/migrations"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	initLogger(cfg)

	pool, err := database.NewPool(cfg.GetDBConnString(), cfg.DBMaxConns, cfg.DBMaxConnIdleTime, cfg.DBMaxConnLifetime)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer pool.Close()

	if err := runMigrations(cfg.GetDBConnString()); err != nil {
		log.Fatalf("Failed to apply migrations: %v", err)
	}

	runRepo := postgres.NewRunRepository(pool)
	analyticsService := analytics.NewService(runRepo)
	ingestService := ingest.NewService(runRepo)

	srv := server.NewServer(server.Config{
		Port:           cfg.Port,
		UploadPassword: cfg.UploadPassword,
		UploadDir:      cfg.UploadDir,
	}, pool, runRepo, analyticsService, ingestService)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Server failed to start: %v", err)
		}
	case <-ctx.Done():
		slog.Info("Shutdown signal received")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Stop(shutdownCtx); err != nil {
			slog.Error("Graceful shutdown failed", "error", err)
		}
	}

	slog.Info("Server stopped")
}

// runMigrations brings the schema up to date from the embedded migration files.
func runMigrations(connString string) error {
	db, err := sql.Open("pgx", connString)
	if err != nil {
		return err
	}
	defer db.Close()

	goose.SetBaseFS(migrations.FS)
	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}
	return goose.Up(db, ".")
}
