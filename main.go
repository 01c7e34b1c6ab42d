package main

import (
	"os"
	"os/signal"
	"syscall"

	"stockpilot/config"
	"stockpilot/models"
	"stockpilot/utils"

	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load("")
	if err != nil {
		panic(err)
	}

	baseLogger := utils.MustLogger(utils.NewLogger(cfg.Server.Env))
	defer func() { _ = baseLogger.Sync() }()

	// Инициализация базы данных
	db, err := models.InitDB(cfg.Database)
	if err != nil {
		baseLogger.Fatal("failed to connect to database", zap.Error(err))
	}

	// Автомиграция
	if err := models.Migrate(db); err != nil {
		baseLogger.Fatal("failed to migrate database", zap.Error(err))
	}

	app := newApp(db, baseLogger, AppOptions{
		SessionCookie: cfg.Server.SessionCookie,
		AccessLog:     true,
	})

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		<-quit
		baseLogger.Info("shutdown signal received")
		if err := app.Shutdown(); err != nil {
			baseLogger.Error("graceful shutdown failed", zap.Error(err))
		}
	}()

	// Запуск сервера
	baseLogger.Info("server starting", zap.String("port", cfg.Server.Port), zap.String("env", cfg.Server.Env))
	if err := app.Listen(":" + cfg.Server.Port); err != nil {
		baseLogger.Fatal("http server crashed", zap.Error(err))
	}

	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
