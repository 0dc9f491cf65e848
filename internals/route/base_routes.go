package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"raportku_backend/internals/features/students/repository"
)

func BaseRoutes(app *fiber.App, roster *repository.RosterStore) {
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("SiRaport backend siap 🚀")
	})

	app.Get("/health", func(c *fiber.Ctx) error {
		uptime := time.Since(startTime).Seconds()

		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status":         "OK",
			"students":       len(roster.All()),
			"server_time":    time.Now().Format(time.RFC3339),
			"uptime_seconds": int(uptime),
		})
	})
}
