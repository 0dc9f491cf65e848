// file: internals/features/narratives/route/narrative_route.go
package route

import (
	"github.com/gofiber/fiber/v2"

	narrativectrl "raportku_backend/internals/features/narratives/controller"
	"raportku_backend/internals/features/narratives/service"
	studentrepo "raportku_backend/internals/features/students/repository"
	"raportku_backend/internals/middlewares"
)

func NarrativeRoutes(api fiber.Router, roster *studentrepo.RosterStore, gen service.NarrativeGenerator) {
	h := narrativectrl.NewNarrativeController(roster, gen)

	// panggilan keluar ke layanan AI — dibatasi lebih ketat dari endpoint biasa
	narratives := api.Group("/narratives", middlewares.NarrativeRateLimiter())
	narratives.Post("/generate", h.Generate)
}
