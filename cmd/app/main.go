package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"dronefleet/cmd"
	"dronefleet/internal/adapters/out/postgres"

	"github.com/joho/godotenv"
	"github.com/labstack/gommon/log"
	"github.com/spf13/pflag"
)

const shutdownTimeout = 5 * time.Second

func main() {
	flags := pflag.NewFlagSet("dronefleet", pflag.ContinueOnError)
	configPath := flags.String("config", "", "path to a YAML config file (or CONFIG_FILE)")
	envFile := flags.String("env-file", "", "load environment variables from this file before reading config")
	migrateOnly := flags.Bool("migrate-only", false, "apply schema migrations and exit")
	if err := flags.Parse(os.Args[1:]); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return
		}
		log.Fatalf("Error parsing flags: %v", err)
	}

	loadEnvFile(*envFile)
	if *configPath == "" {
		*configPath = os.Getenv("CONFIG_FILE")
	}

	cfg, err := cmd.LoadConfig(*configPath, os.LookupEnv)
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}
	logger := cmd.NewLogger(os.Stdout, cfg.LogLevel)
	slog.SetDefault(logger)

	ctx := context.Background()
	storeCfg := cfg.StoreConfig()
	db, err := postgres.Open(storeCfg)
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}
	if err = postgres.Migrate(ctx, storeCfg, db, logger); err != nil {
		log.Fatalf("Error migrating database: %v", err)
	}
	if *migrateOnly {
		logger.Info("migrations applied, exiting")
		return
	}

	app := cmd.NewCompositionRoot(cfg, db, logger)
	if cfg.SeedDrones {
		if _, err = app.CreateFleetSeeder().Seed(ctx); err != nil {
			log.Fatalf("Error seeding fleet: %v", err)
		}
	}

	jobManager := app.CreateJobManager()
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting jobs: %v", err)
	}

	e, err := app.CreateRouter(ctx)
	if err != nil {
		log.Fatalf("Error building router: %v", err)
	}

	go func() {
		addr := fmt.Sprintf("0.0.0.0:%s", cfg.HTTPPort)
		logger.Info("http server starting", "addr", addr)
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Error starting http server: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop
	logger.Info("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err = e.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown", "error", err)
	}
	jobManager.StopAll()

	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
	logger.Info("server stopped")
}

// loadEnvFile loads an explicit env file, or .env when present.
func loadEnvFile(path string) {
	if path != "" {
		if err := godotenv.Load(path); err != nil {
			log.Fatalf("Error loading %s file: %v", path, err)
		}
		return
	}
	if _, err := os.Stat(".env"); err == nil {
		if err = godotenv.Load(".env"); err != nil {
			log.Fatalf("Error loading .env file: %v", err)
		}
	}
}
