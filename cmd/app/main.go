package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"desert-war-service/api"
	"desert-war-service/internal/allocation"
	"desert-war-service/internal/config"
	"desert-war-service/internal/database"
	"desert-war-service/internal/handler"
	"desert-war-service/internal/notify"
	"desert-war-service/internal/repository"
	"desert-war-service/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/sirupsen/logrus"
)

func main() {
	// Логгер
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})

	// Конфиг
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Warnf(".env not found: %v", err)
	}

	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		logger.Warnf("Unknown log level %q, using info", cfg.LogLevel)
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	// База данных (database/sql)
	db, err := database.NewDB(cfg)
	if err != nil {
		logger.Fatalf("Database connection failed: %v", err)
	}
	defer db.Close()
	logger.WithField("driver", cfg.DBDriver).Info("Database connected")

	queries := database.New(db)

	// Репозитории
	eventRepo := repository.NewEventRepository(db, queries)
	rosterRepo := repository.NewRosterRepository(db, queries)

	// Use Cases
	limits := allocation.Limits{Team: cfg.TeamCapacity, Reserve: cfg.ReserveCapacity}
	eventUC := usecase.NewEventUseCase(eventRepo)
	allocationUC := usecase.NewAllocationUseCase(rosterRepo, eventRepo, notify.NewLogNotifier(logger), limits, logger)

	// Echo + Handlers
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	e.Use(middleware.RequestID())
	e.Use(handler.LoggingMiddleware(logger))

	apiHandler := handler.NewAPIHandler(eventUC, allocationUC, logger)
	api.RegisterHandlers(e, apiHandler)

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	// Запуск сервера
	go func() {
		if err := e.Start(":" + cfg.ServerPort); err != nil {
			logger.Infof("Server stopped: %v", err)
		}
	}()

	// Graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	logger.Info("Shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		logger.Fatalf("Shutdown failed: %v", err)
	}

	logger.Info("Server exited")
}
