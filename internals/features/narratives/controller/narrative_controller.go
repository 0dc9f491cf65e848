// file: internals/features/narratives/controller/narrative_controller.go
package controller

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"raportku_backend/internals/features/narratives/dto"
	"raportku_backend/internals/features/narratives/service"
	studentrepo "raportku_backend/internals/features/students/repository"
	helper "raportku_backend/internals/helpers"
)

type NarrativeController struct {
	Roster    *studentrepo.RosterStore
	Generator service.NarrativeGenerator
}

func NewNarrativeController(roster *studentrepo.RosterStore, gen service.NarrativeGenerator) *NarrativeController {
	return &NarrativeController{Roster: roster, Generator: gen}
}

var validate = validator.New()

// Generate = POST /api/narratives/generate
// Hasil narasi dikembalikan apa adanya dan TIDAK disimpan ke roster —
// guru masih bisa menyunting draft sebelum menekan "Simpan".
func (ctl *NarrativeController) Generate(c *fiber.Ctx) error {
	var req dto.GenerateNarrativeRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	// Precondition sebelum panggilan jaringan apa pun
	if len(strings.TrimSpace(req.Keywords)) < 5 {
		return helper.JsonValidationError(c, map[string][]string{
			"keywords": {"Mohon masukkan poin observasi minimal 5 karakter."},
		})
	}

	student, ok := ctl.Roster.Find(req.StudentID)
	if !ok {
		return helper.JsonError(c, fiber.StatusNotFound, "Siswa tidak ditemukan")
	}

	narrative, err := ctl.Generator.Generate(c.UserContext(), service.NarrativeRequest{
		StudentName: student.StudentName,
		Element:     req.Element,
		Keywords:    req.Keywords,
	})
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadGateway, "Gagal menghasilkan narasi AI. Coba lagi.")
	}

	return helper.JsonOK(c, "Narasi berhasil dibuat", dto.NarrativeResponse{
		StudentID: student.StudentID,
		Element:   req.Element,
		Narrative: narrative,
	})
}
