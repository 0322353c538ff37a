package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"broker-service/app/domain"
	handler "broker-service/app/handler/api"
	"broker-service/app/middleware"
	"broker-service/app/notifier"
	"broker-service/app/repository/db"
	"broker-service/app/usecase"
	"broker-service/config"
	"broker-service/migrations"
	"broker-service/pkg/eventbus"
	"broker-service/pkg/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/healthcheck"
	"github.com/gofiber/fiber/v2/middleware/recover"
	slogfiber "github.com/samber/slog-fiber"
)

func main() {
	// init logger
	logger.InitLogger()

	ctx := context.Background()
	// init config
	cfg, err := config.InitConfig(ctx)
	if err != nil {
		slog.Error("failed to init config", "error", err)
		return
	}

	// init database
	dbConn, err := db.NewPostgres(cfg.Db)
	if err != nil {
		slog.Error("DB connection failed", "error", err)
		return
	}
	defer dbConn.Close()

	if err := migrations.Apply(ctx, dbConn); err != nil {
		slog.Error("DB migration failed", "error", err)
		return
	}

	// construct the pipeline in dependency order: repository, bus,
	// notifier, usecase, handler
	orderRepo := db.NewOrderRepository(dbConn)

	bus := eventbus.New()
	settlement := notifier.NewSettlement(&http.Client{}, cfg.SettlementURL)
	bus.Subscribe(domain.TopicLedgerCredit, settlement.Handle)

	orderUsecase := usecase.NewOrderUsecase(orderRepo, bus)

	reqValidator, err := handler.NewRequestValidator()
	if err != nil {
		slog.Error("failed to init validator", "error", err)
		return
	}
	orderHandler := handler.NewOrderHandler(orderUsecase, reqValidator)

	// Initialize HTTP web framework
	app := fiber.New()
	app.Use(healthcheck.New(healthcheck.Config{
		LivenessProbe: func(c *fiber.Ctx) bool {
			return true
		},
		LivenessEndpoint: "/live",
		ReadinessProbe: func(c *fiber.Ctx) bool {
			return dbConn.PingContext(c.Context()) == nil
		},
		ReadinessEndpoint: "/ready",
	}))
	app.Use(slogfiber.New(logger.New(os.Stdout, slog.LevelInfo)))
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
	}))
	app.Use(middleware.RequestIDMiddleware())

	handler.SetupRouter(app, orderHandler)

	go func() {
		if err := app.Listen(":" + cfg.Port); err != nil {
			slog.Error("Failed to listen", "port", cfg.Port)
			return
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	slog.Info("Gracefully shutdown")
	err = app.Shutdown()
	if err != nil {
		slog.Warn("Unfortunately the shutdown wasn't smooth", "err", err)
	}
}
