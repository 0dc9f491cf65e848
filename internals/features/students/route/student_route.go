// file: internals/features/students/route/student_route.go
package route

import (
	"github.com/gofiber/fiber/v2"

	studentctrl "raportku_backend/internals/features/students/controller"
	"raportku_backend/internals/features/students/repository"
)

func StudentRoutes(api fiber.Router, roster *repository.RosterStore) {
	h := studentctrl.NewStudentController(roster)

	students := api.Group("/students")
	students.Get("/", h.ListStudents)
	students.Post("/", h.CreateStudent)
	students.Get("/:id", h.GetStudent)
	students.Put("/:id", h.UpdateStudent)
	students.Put("/:id/assessments", h.UpdateAssessments)
}
