// file: internals/features/reports/controller/report_controller.go
package controller

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"raportku_backend/internals/constants"
	"raportku_backend/internals/features/reports/service"
	"raportku_backend/internals/features/reports/view"
	"raportku_backend/internals/features/students/model"
	studentrepo "raportku_backend/internals/features/students/repository"
	helper "raportku_backend/internals/helpers"
)

var errSemesterUnknown = errors.New("semester tidak dikenal")

type ReportController struct {
	Roster *studentrepo.RosterStore

	// Now di-override di test supaya dokumen deterministik
	Now func() time.Time
}

func NewReportController(roster *studentrepo.RosterStore) *ReportController {
	return &ReportController{
		Roster: roster,
		Now:    func() time.Time { return time.Now().In(helper.JakartaLocation()) },
	}
}

// buildDocument memvalidasi query + path param dan menyusun dokumen.
// Error yang dikembalikan BELUM ditulis ke response — pemanggil yang
// memetakan ke status lewat respondError.
func (ctl *ReportController) buildDocument(c *fiber.Ctx) (*service.ReportDocument, error) {
	semester, ok := model.ParseSemester(c.Query("semester"))
	if !ok {
		return nil, errSemesterUnknown
	}

	schoolYear := c.Query("year", constants.DefaultSchoolYear)

	student, found := ctl.Roster.Find(c.Params("id"))
	if !found {
		return nil, studentrepo.ErrStudentNotFound
	}

	doc := service.BuildReport(*student, semester, schoolYear, ctl.Now())
	return &doc, nil
}

func respondError(c *fiber.Ctx, err error) error {
	if errors.Is(err, errSemesterUnknown) {
		return helper.JsonError(c, fiber.StatusBadRequest, "Semester tidak dikenal (gunakan 'ganjil' atau 'genap')")
	}
	return helper.JsonError(c, fiber.StatusNotFound, "Siswa tidak ditemukan")
}

// GetReport = GET /api/students/:id/report?semester=ganjil&year=2023/2024
// Mengembalikan model dokumen terstruktur (6 halaman) sebagai JSON.
func (ctl *ReportController) GetReport(c *fiber.Ctx) error {
	doc, err := ctl.buildDocument(c)
	if err != nil {
		return respondError(c, err)
	}
	return helper.JsonOK(c, "Raport berhasil disusun", doc)
}

// GetReportPrint = GET /api/students/:id/report/print
// Versi HTML ukuran A4 untuk fasilitas cetak / simpan-PDF browser.
func (ctl *ReportController) GetReportPrint(c *fiber.Ctx) error {
	doc, err := ctl.buildDocument(c)
	if err != nil {
		return respondError(c, err)
	}
	html, err := view.RenderHTML(doc)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal merender raport")
	}
	c.Type("html", "utf-8")
	return c.Send(html)
}
