package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"os-scheduler-simulator/config"
)

// RegisterRoutes mounts the scheduler endpoints. Fixed paths are registered
// before the per-algorithm catch-all.
func RegisterRoutes(router fiber.Router, handler SchedulerHandler) {
	v1 := router.Group("/api/v1")
	{
		v1.Get("/algorithms", handler.ListAlgorithms)
		v1.Post("/simulate", handler.Simulate)
		v1.Post("/all", handler.AllAlgorithms)
		v1.Post("/:algorithm", handler.Algorithm)
	}
}

func NewApp(cfg *config.SchedulerConfig, requestLog bool) *fiber.App {
	app := fiber.New()
	app.Use(recover.New())
	if requestLog {
		app.Use(logger.New())
	}
	RegisterRoutes(app, NewSchedulerHandlerImpl(cfg))
	return app
}
