// file: internals/features/narratives/dto/narrative_dto.go
package dto

/* ========== REQUEST DTO ========== */

// GenerateNarrativeRequest: minta draft narasi dari poin observasi guru.
// Keywords minimal 5 karakter (dicek setelah trim, sebelum panggilan jaringan).
type GenerateNarrativeRequest struct {
	StudentID string `json:"student_id" form:"student_id" validate:"required"`
	Element   string `json:"element"    form:"element"    validate:"required,min=2,max=160"`
	Keywords  string `json:"keywords"   form:"keywords"   validate:"required"`
}

/* ========== RESPONSE DTO ========== */

type NarrativeResponse struct {
	StudentID string `json:"student_id"`
	Element   string `json:"element"`
	Narrative string `json:"narrative"`
}
