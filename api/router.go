package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"

	"github.com/nikitbisht/CPU-Scheduling-Visualizer/internal/metrics"
)

// Register mounts the scheduling API. collector may be nil to leave /metrics
// unmounted.
func Register(app *fiber.App, handler SchedulerHandler, collector *metrics.Collector) {
	app.Get("/healthz", func(ctx *fiber.Ctx) error {
		return ctx.SendString("ok")
	})
	if collector != nil {
		app.Get("/metrics", adaptor.HTTPHandler(collector.Handler()))
	}

	api := app.Group("/api")

	v1 := api.Group("/v1")
	{
		v1.Post("/fcfs", handler.FirstComeFirstServe)
		v1.Post("/sjf", handler.ShortestJobFirst)
		v1.Post("/srtf", handler.ShortestRemainingTimeFirst)
		v1.Post("/rr", handler.RoundRobin)
		v1.Post("/priority", handler.Priority)
		v1.Post("/schedule", handler.Schedule)
		v1.Post("/all", handler.AllAlgorithms)
	}
}
