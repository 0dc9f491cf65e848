// file: internals/features/students/controller/student_controller.go
package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"raportku_backend/internals/features/students/dto"
	"raportku_backend/internals/features/students/repository"
	helper "raportku_backend/internals/helpers"
)

type StudentController struct {
	Roster *repository.RosterStore
}

func NewStudentController(roster *repository.RosterStore) *StudentController {
	return &StudentController{Roster: roster}
}

var validate = validator.New()

// ListStudents = GET /api/students?search=
// Filter: substring nama (case-insensitive) atau substring NIS; kosong = semua.
func (ctl *StudentController) ListStudents(c *fiber.Ctx) error {
	students := ctl.Roster.Filter(c.Query("search"))

	items := make([]dto.StudentListItemResponse, 0, len(students))
	for i := range students {
		items = append(items, dto.NewStudentListItemResponse(&students[i]))
	}
	return helper.JsonList(c, "Daftar siswa", items, len(items))
}

// GetStudent = GET /api/students/:id
func (ctl *StudentController) GetStudent(c *fiber.Ctx) error {
	student, ok := ctl.Roster.Find(c.Params("id"))
	if !ok {
		return helper.JsonError(c, fiber.StatusNotFound, "Siswa tidak ditemukan")
	}
	return helper.JsonOK(c, "Detail siswa", dto.NewStudentResponse(student))
}

// CreateStudent = POST /api/students
func (ctl *StudentController) CreateStudent(c *fiber.Ctx) error {
	var req dto.CreateStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	student, err := ctl.Roster.Add(req.StudentName, req.StudentGroup)
	if err != nil {
		if errors.Is(err, repository.ErrNameRequired) {
			return helper.JsonValidationError(c, map[string][]string{
				"student_name": {"Nama siswa wajib diisi"},
			})
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menambah siswa")
	}
	return helper.JsonCreated(c, "Siswa berhasil ditambahkan", dto.NewStudentResponse(student))
}

// UpdateStudent = PUT /api/students/:id (biodata; field nil dipertahankan)
func (ctl *StudentController) UpdateStudent(c *fiber.Ctx) error {
	var req dto.UpdateStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	student, ok := ctl.Roster.Find(c.Params("id"))
	if !ok {
		return helper.JsonError(c, fiber.StatusNotFound, "Siswa tidak ditemukan")
	}

	req.ApplyToModel(student)
	if err := ctl.Roster.Update(*student); err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Siswa tidak ditemukan")
	}
	return helper.JsonUpdated(c, "Data siswa diperbarui", dto.NewStudentResponse(student))
}

// UpdateAssessments = PUT /api/students/:id/assessments
// Jalur "Simpan" form penilaian: seluruh sub-record penilaian diganti sekaligus.
// Refleksi orang tua tidak ikut diganti (display-only di editor digital).
func (ctl *StudentController) UpdateAssessments(c *fiber.Ctx) error {
	var req dto.UpdateAssessmentsRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	existing, ok := ctl.Roster.Find(c.Params("id"))
	if !ok {
		return helper.JsonError(c, fiber.StatusNotFound, "Siswa tidak ditemukan")
	}

	student, err := ctl.Roster.ReplaceAssessments(existing.StudentID, req.ToAssessmentData(existing.Assessments))
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Siswa tidak ditemukan")
	}
	return helper.JsonUpdated(c, "Penilaian tersimpan", dto.NewStudentResponse(student))
}
