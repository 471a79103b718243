package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/clinistock/backend/internal/infrastructure/config"
	"github.com/clinistock/backend/internal/infrastructure/logger"
	"github.com/clinistock/backend/internal/infrastructure/persistence"
)

func main() {
	var logLevel string
	flag.StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	flag.Parse()

	args := flag.Args()
	if len(args) == 0 {
		printUsage()
		os.Exit(1)
	}
	command := args[0]

	log, err := logger.New(&config.LogConfig{
		Level:  logLevel,
		Format: "console",
		Output: "stdout",
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration", zap.Error(err))
	}

	gormLog := logger.NewGormLogger(log, logger.MapGormLogLevel(logLevel))
	db, err := persistence.NewDatabaseWithLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	switch command {
	case "up":
		if err := persistence.AutoMigrate(db.DB); err != nil {
			log.Fatal("Migration failed", zap.Error(err))
		}
		log.Info("Schema migrated",
			zap.String("database", cfg.Database.DBName))

	case "ping":
		if err := db.Ping(); err != nil {
			log.Fatal("Database unreachable", zap.Error(err))
		}
		log.Info("Database reachable",
			zap.String("host", cfg.Database.Host),
			zap.Int("port", cfg.Database.Port))

	default:
		log.Error("Unknown command", zap.String("command", command))
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`CliniStock Schema Migration Tool

Usage:
  migrate [flags] <command>

Commands:
  up      Create or update the storage schema for all entities
  ping    Verify database connectivity

Flags:
  -log-level string   Log level: debug, info, warn, error (default: info)

Environment Variables:
  CLINISTOCK_DATABASE_HOST, CLINISTOCK_DATABASE_PORT, CLINISTOCK_DATABASE_USER,
  CLINISTOCK_DATABASE_PASSWORD, CLINISTOCK_DATABASE_DBNAME, CLINISTOCK_DATABASE_SSLMODE`)
}
