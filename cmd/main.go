package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	gormlogger "gorm.io/gorm/logger"

	"github.com/lunchdesk/lunchdesk/internal/app"
	"github.com/lunchdesk/lunchdesk/internal/config"
	"github.com/lunchdesk/lunchdesk/internal/db"
	"github.com/lunchdesk/lunchdesk/internal/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("failed to load config: %v", err)
	}
	logger.Configure(cfg.Log.Level, os.Stdout)

	dbOpts := db.Options{DSN: cfg.Fixture.DSN}
	if cfg.Log.Level == "debug" {
		dbOpts.LogLevel = gormlogger.Info
	}
	gdb, err := db.New(dbOpts)
	if err != nil {
		logger.Fatalf("failed to open database: %v", err)
	}
	if cfg.Fixture.Seed {
		if err := db.Seed(context.Background(), gdb); err != nil {
			logger.Fatalf("failed to seed database: %v", err)
		}
	}

	server := app.New(gdb, app.Options{Token: cfg.Fixture.Token})

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		<-quit
		logger.Info("shutting down fixture server")
		if err := server.Shutdown(); err != nil {
			logger.Errorf("failed to shut down: %v", err)
		}
	}()

	logger.InfoWithFields("fixture server listening", map[string]interface{}{
		"address": cfg.Fixture.Listen,
		"auth":    cfg.Fixture.Token != "",
	})
	if err := server.Listen(cfg.Fixture.Listen); err != nil {
		logger.Fatalf("server stopped: %v", err)
	}
}
