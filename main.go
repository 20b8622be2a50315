package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/nikitbisht/CPU-Scheduling-Visualizer/api"
	"github.com/nikitbisht/CPU-Scheduling-Visualizer/config"
	"github.com/nikitbisht/CPU-Scheduling-Visualizer/internal/logging"
	"github.com/nikitbisht/CPU-Scheduling-Visualizer/internal/metrics"
)

func main() {
	cfg := config.GetSchedulerConfig()
	logger := logging.NewLogger(cfg.LogFormat, cfg.LogLevel, false)

	var collector *metrics.Collector
	if cfg.MetricsEnabled {
		collector = metrics.NewCollector()
	}

	app := fiber.New(fiber.Config{DisableStartupMessage: true})
	api.Register(app, api.NewSchedulerHandlerImpl(cfg, logger, collector), collector)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		<-ctx.Done()
		logger.Info("server_shutting_down")
		if err := app.ShutdownWithTimeout(5 * time.Second); err != nil {
			logger.Error("server_shutdown_error", "error", err)
		}
	}()

	addr := fmt.Sprintf(":%d", cfg.Port)
	logger.Info("server_starting", "addr", addr, "round_robin_time_quantum", cfg.RoundRobinTimeQuantum)
	if err := app.Listen(addr); err != nil {
		log.Fatalln(err)
	}
}
