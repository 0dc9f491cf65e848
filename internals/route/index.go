// file: internals/route/index.go
package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"

	narrativeRoute "raportku_backend/internals/features/narratives/route"
	narrativeService "raportku_backend/internals/features/narratives/service"
	reportRoute "raportku_backend/internals/features/reports/route"
	studentRoute "raportku_backend/internals/features/students/route"
	"raportku_backend/internals/features/students/repository"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, roster *repository.RosterStore, gen narrativeService.NarrativeGenerator) {
	startTime = time.Now()

	BaseRoutes(app, roster)

	api := app.Group("/api")

	log.Println("[INFO] Setting up StudentRoutes...")
	studentRoute.StudentRoutes(api, roster)

	log.Println("[INFO] Setting up ReportRoutes...")
	reportRoute.ReportRoutes(api, roster)

	log.Println("[INFO] Setting up NarrativeRoutes...")
	narrativeRoute.NarrativeRoutes(api, roster, gen)
}
