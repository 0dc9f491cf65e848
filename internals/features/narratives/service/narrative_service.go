// file: internals/features/narratives/service/narrative_service.go
package service

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// ErrNarrativeUnavailable: satu-satunya jenis kegagalan yang dilihat pemanggil.
// Detail error jaringan/layanan hanya masuk log, tidak bocor ke response.
var ErrNarrativeUnavailable = errors.New("gagal menghubungi layanan AI")

// Pesan fallback saat model membalas tanpa kandidat teks (bukan error).
const emptyNarrativeFallback = "Maaf, tidak dapat menghasilkan narasi saat ini."

// NarrativeRequest: bahan narasi dari form input nilai
type NarrativeRequest struct {
	StudentName string // nama anak
	Element     string // elemen capaian pembelajaran
	Keywords    string // poin observasi kasar dari guru
}

// NarrativeGenerator: kapabilitas generasi narasi yang di-inject ke controller,
// supaya seluruh alur bisa dites tanpa akses jaringan.
type NarrativeGenerator interface {
	Generate(ctx context.Context, req NarrativeRequest) (string, error)
}

/* ===============================
   Implementasi nonaktif
=================================*/

// DisabledNarrativeService dipakai saat GEMINI_API_KEY tidak diset:
// endpoint tetap hidup, tiap permintaan gagal dengan pesan standar.
type DisabledNarrativeService struct{}

func (DisabledNarrativeService) Generate(ctx context.Context, req NarrativeRequest) (string, error) {
	return "", ErrNarrativeUnavailable
}

/* ===============================
   Implementasi Gemini
=================================*/

type GeminiNarrativeService struct {
	model *genai.GenerativeModel
}

// NewGeminiNarrativeService menyiapkan klien Gemini satu kali di startup.
func NewGeminiNarrativeService(ctx context.Context, apiKey, modelName string) (*GeminiNarrativeService, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY belum diset")
	}
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("gagal membuat klien Gemini: %w", err)
	}

	model := client.GenerativeModel(modelName)
	model.SetTemperature(0.7)
	model.SetMaxOutputTokens(500)

	log.Printf("✅ Klien Gemini siap (model: %s)", modelName)
	return &GeminiNarrativeService{model: model}, nil
}

// Generate: satu panggilan blocking, tanpa retry — sukses dengan teks penuh
// atau gagal tanpa hasil parsial.
func (s *GeminiNarrativeService) Generate(ctx context.Context, req NarrativeRequest) (string, error) {
	prompt := buildPrompt(req)

	resp, err := s.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		log.Printf("❌ Error generasi narasi Gemini: %v", err)
		return "", ErrNarrativeUnavailable
	}

	var text string
	if len(resp.Candidates) > 0 && len(resp.Candidates[0].Content.Parts) > 0 {
		if part, ok := resp.Candidates[0].Content.Parts[0].(genai.Text); ok {
			text = string(part)
		}
	}
	if text == "" {
		return emptyNarrativeFallback, nil
	}
	return text, nil
}

func buildPrompt(req NarrativeRequest) string {
	return fmt.Sprintf(`Bertindaklah sebagai guru TK/PAUD yang profesional dan empatik di sekolah 'Gelora Bangsa'.
Buatkan narasi deskripsi perkembangan anak untuk raport Kurikulum Merdeka.

Nama Anak: %s
Elemen Capaian Pembelajaran: %s
Catatan Observasi Guru (Poin-poin): %s

Instruksi:
1. Gunakan bahasa Indonesia yang formal namun hangat dan suportif.
2. Fokus pada kemajuan anak (positive reinforcement).
3. Ubah catatan observasi kasar menjadi 1-2 paragraf narasi yang mengalir.
4. Jangan gunakan bullet points, gunakan format paragraf.
5. Mulailah kalimat dengan variasi (misal: "Ananda [Nama]...", "[Nama] menunjukkan...", "Perkembangan [Nama]...").`,
		req.StudentName, req.Element, req.Keywords)
}
