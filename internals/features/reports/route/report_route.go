// file: internals/features/reports/route/report_route.go
package route

import (
	"github.com/gofiber/fiber/v2"

	reportctrl "raportku_backend/internals/features/reports/controller"
	studentrepo "raportku_backend/internals/features/students/repository"
)

func ReportRoutes(api fiber.Router, roster *studentrepo.RosterStore) {
	h := reportctrl.NewReportController(roster)

	api.Get("/students/:id/report", h.GetReport)
	api.Get("/students/:id/report/print", h.GetReportPrint)
}
