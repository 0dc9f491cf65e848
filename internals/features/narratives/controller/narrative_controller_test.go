package controller

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"raportku_backend/internals/features/narratives/service"
	"raportku_backend/internals/features/students/model"
	studentrepo "raportku_backend/internals/features/students/repository"
)

// stubGenerator merekam panggilan supaya test bisa memastikan precondition
// dicek SEBELUM ada panggilan keluar.
type stubGenerator struct {
	calls   int
	lastReq service.NarrativeRequest
	text    string
	err     error
}

func (g *stubGenerator) Generate(ctx context.Context, req service.NarrativeRequest) (string, error) {
	g.calls++
	g.lastReq = req
	return g.text, g.err
}

func newTestApp(gen service.NarrativeGenerator) (*fiber.App, *studentrepo.RosterStore) {
	roster := studentrepo.NewRosterStore()
	roster.Seed([]model.StudentModel{
		{StudentID: "1", StudentName: "Aditya Pratama", StudentNIS: "2023001"},
	})

	app := fiber.New()
	h := NewNarrativeController(roster, gen)
	app.Post("/api/narratives/generate", h.Generate)
	return app, roster
}

func postJSON(t *testing.T, app *fiber.App, path string, body any) *http.Response {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func TestGenerate_ShortKeywordsRejectedBeforeCall(t *testing.T) {
	gen := &stubGenerator{text: "tidak terpakai"}
	app, _ := newTestApp(gen)

	resp := postJSON(t, app, "/api/narratives/generate", fiber.Map{
		"student_id": "1",
		"element":    "Jati Diri",
		"keywords":   "  ab  ", // < 5 karakter setelah trim
	})

	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
	assert.Zero(t, gen.calls, "generator tidak boleh dipanggil")
}

func TestGenerate_UnknownStudentRejectedBeforeCall(t *testing.T) {
	gen := &stubGenerator{text: "tidak terpakai"}
	app, _ := newTestApp(gen)

	resp := postJSON(t, app, "/api/narratives/generate", fiber.Map{
		"student_id": "42",
		"element":    "Jati Diri",
		"keywords":   "mandiri, percaya diri",
	})

	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.Zero(t, gen.calls)
}

func TestGenerate_ServiceFailureSurfacesSingleMessage(t *testing.T) {
	gen := &stubGenerator{err: service.ErrNarrativeUnavailable}
	app, _ := newTestApp(gen)

	resp := postJSON(t, app, "/api/narratives/generate", fiber.Map{
		"student_id": "1",
		"element":    "Nilai Agama",
		"keywords":   "hafal doa makan, santun",
	})

	assert.Equal(t, fiber.StatusBadGateway, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, "Gagal menghasilkan narasi AI. Coba lagi.", body["message"])
	assert.Equal(t, 1, gen.calls)
}

func TestGenerate_Success(t *testing.T) {
	gen := &stubGenerator{text: "Ananda Aditya menunjukkan perkembangan yang baik."}
	app, _ := newTestApp(gen)

	resp := postJSON(t, app, "/api/narratives/generate", fiber.Map{
		"student_id": "1",
		"element":    "Jati Diri",
		"keywords":   "mandiri, percaya diri",
	})

	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	body := decodeBody(t, resp)
	data := body["data"].(map[string]any)
	assert.Equal(t, "Ananda Aditya menunjukkan perkembangan yang baik.", data["narrative"])

	// nama anak diambil dari roster, bukan dari payload
	assert.Equal(t, "Aditya Pratama", gen.lastReq.StudentName)
	assert.Equal(t, "Jati Diri", gen.lastReq.Element)
	assert.Equal(t, "mandiri, percaya diri", gen.lastReq.Keywords)
}

func TestGenerate_GenericErrorAlsoCollapses(t *testing.T) {
	gen := &stubGenerator{err: errors.New("timeout upstream")}
	app, _ := newTestApp(gen)

	resp := postJSON(t, app, "/api/narratives/generate", fiber.Map{
		"student_id": "1",
		"element":    "Nilai Agama",
		"keywords":   "rajin berdoa bersama",
	})

	assert.Equal(t, fiber.StatusBadGateway, resp.StatusCode)
}
