// file: internals/features/students/dto/student_dto.go
package dto

import (
	"raportku_backend/internals/features/students/model"
)

/* ========== REQUEST DTOs ========== */

// CreateStudentRequest: payload "Tambah Siswa" (nama + kelompok saja,
// biodata lain dilengkapi belakangan lewat update)
type CreateStudentRequest struct {
	StudentName  string             `json:"student_name"  form:"student_name"  validate:"required,min=2,max=120"`
	StudentGroup model.StudentGroup `json:"student_group" form:"student_group" validate:"required,oneof='Kelompok Bermain (KB)' 'TK A' 'TK B'"`
}

// UpdateStudentRequest: ganti biodata siswa (whole-record, keyed by path id).
// Field nil = pertahankan nilai lama.
type UpdateStudentRequest struct {
	StudentName     *string             `json:"student_name"     form:"student_name"     validate:"omitempty,min=2,max=120"`
	StudentNickname *string             `json:"student_nickname" form:"student_nickname" validate:"omitempty,max=60"`
	StudentNISN     *string             `json:"student_nisn"     form:"student_nisn"     validate:"omitempty,max=20"`
	StudentGroup    *model.StudentGroup `json:"student_group"    form:"student_group"    validate:"omitempty,oneof='Kelompok Bermain (KB)' 'TK A' 'TK B'"`
	StudentGender   *string             `json:"student_gender"   form:"student_gender"   validate:"omitempty,oneof=L P"`
	BirthPlace      *string             `json:"birth_place"      form:"birth_place"`
	BirthDate       *string             `json:"birth_date"       form:"birth_date"`
	Religion        *string             `json:"religion"         form:"religion"`
	ChildOrder      *int                `json:"child_order"      form:"child_order"      validate:"omitempty,min=1"`
	FatherName      *string             `json:"father_name"      form:"father_name"`
	FatherJob       *string             `json:"father_job"       form:"father_job"`
	MotherName      *string             `json:"mother_name"      form:"mother_name"`
	MotherJob       *string             `json:"mother_job"       form:"mother_job"`
	Address         *string             `json:"address"          form:"address"`
}

// UpdateAssessmentsRequest: jalur "Simpan" form penilaian — SELURUH sub-record
// diganti sekaligus, bukan merge per field. Angka bertipe (bukan string),
// jadi input non-angka gagal di decode/validasi dan tidak pernah masuk store.
type UpdateAssessmentsRequest struct {
	Agama         string `json:"agama"          form:"agama"`
	JatiDiri      string `json:"jati_diri"      form:"jati_diri"`
	LiterasiSteam string `json:"literasi_steam" form:"literasi_steam"`
	ProjekProfil  string `json:"projek_profil"  form:"projek_profil"`
	CatatanGuru   string `json:"catatan_guru"   form:"catatan_guru"`

	Sakit int `json:"sakit" form:"sakit" validate:"gte=0"`
	Izin  int `json:"izin"  form:"izin"  validate:"gte=0"`
	Alpa  int `json:"alpa"  form:"alpa"  validate:"gte=0"`

	Height            float64 `json:"height"             form:"height"             validate:"gte=0"`
	Weight            float64 `json:"weight"             form:"weight"             validate:"gte=0"`
	HeadCircumference float64 `json:"head_circumference" form:"head_circumference" validate:"gte=0"`

	Health struct {
		Pendengaran string `json:"pendengaran" form:"pendengaran"`
		Penglihatan string `json:"penglihatan" form:"penglihatan"`
		Gigi        string `json:"gigi"        form:"gigi"`
	} `json:"health" form:"health"`
}

/* ========== RESPONSE DTOs ========== */

type StudentResponse struct {
	StudentID       string             `json:"student_id"`
	StudentName     string             `json:"student_name"`
	StudentNickname string             `json:"student_nickname,omitempty"`
	StudentNIS      string             `json:"student_nis"`
	StudentNISN     string             `json:"student_nisn,omitempty"`
	StudentGroup    model.StudentGroup `json:"student_group"`
	StudentGender   string             `json:"student_gender"`
	BirthPlace      string             `json:"birth_place"`
	BirthDate       string             `json:"birth_date"`
	Religion        string             `json:"religion"`
	ChildOrder      int                `json:"child_order"`
	FatherName      string             `json:"father_name"`
	FatherJob       string             `json:"father_job"`
	MotherName      string             `json:"mother_name"`
	MotherJob       string             `json:"mother_job"`
	Address         string             `json:"address"`

	Assessments model.AssessmentData `json:"assessments"`
}

// StudentListItemResponse: baris daftar siswa (ringkas + status kelengkapan)
type StudentListItemResponse struct {
	StudentID          string             `json:"student_id"`
	StudentName        string             `json:"student_name"`
	StudentNIS         string             `json:"student_nis"`
	StudentGroup       model.StudentGroup `json:"student_group"`
	AssessmentComplete bool               `json:"assessment_complete"`
}

/* ========== HELPER: KONVERSI MODEL <-> DTO ========== */

func NewStudentResponse(m *model.StudentModel) *StudentResponse {
	if m == nil {
		return nil
	}
	return &StudentResponse{
		StudentID:       m.StudentID,
		StudentName:     m.StudentName,
		StudentNickname: m.StudentNickname,
		StudentNIS:      m.StudentNIS,
		StudentNISN:     m.StudentNISN,
		StudentGroup:    m.StudentGroup,
		StudentGender:   m.StudentGender,
		BirthPlace:      m.BirthPlace,
		BirthDate:       m.BirthDate,
		Religion:        m.Religion,
		ChildOrder:      m.ChildOrder,
		FatherName:      m.FatherName,
		FatherJob:       m.FatherJob,
		MotherName:      m.MotherName,
		MotherJob:       m.MotherJob,
		Address:         m.Address,
		Assessments:     m.Assessments,
	}
}

func NewStudentListItemResponse(m *model.StudentModel) StudentListItemResponse {
	return StudentListItemResponse{
		StudentID:          m.StudentID,
		StudentName:        m.StudentName,
		StudentNIS:         m.StudentNIS,
		StudentGroup:       m.StudentGroup,
		AssessmentComplete: m.AssessmentComplete(),
	}
}

// ApplyToModel: terapkan field non-nil dari UpdateStudentRequest ke model
func (r *UpdateStudentRequest) ApplyToModel(m *model.StudentModel) {
	if r.StudentName != nil {
		m.StudentName = *r.StudentName
	}
	if r.StudentNickname != nil {
		m.StudentNickname = *r.StudentNickname
	}
	if r.StudentNISN != nil {
		m.StudentNISN = *r.StudentNISN
	}
	if r.StudentGroup != nil {
		m.StudentGroup = *r.StudentGroup
	}
	if r.StudentGender != nil {
		m.StudentGender = *r.StudentGender
	}
	if r.BirthPlace != nil {
		m.BirthPlace = *r.BirthPlace
	}
	if r.BirthDate != nil {
		m.BirthDate = *r.BirthDate
	}
	if r.Religion != nil {
		m.Religion = *r.Religion
	}
	if r.ChildOrder != nil {
		m.ChildOrder = *r.ChildOrder
	}
	if r.FatherName != nil {
		m.FatherName = *r.FatherName
	}
	if r.FatherJob != nil {
		m.FatherJob = *r.FatherJob
	}
	if r.MotherName != nil {
		m.MotherName = *r.MotherName
	}
	if r.MotherJob != nil {
		m.MotherJob = *r.MotherJob
	}
	if r.Address != nil {
		m.Address = *r.Address
	}
}

// ToAssessmentData: mapping UpdateAssessmentsRequest -> model.AssessmentData.
// Refleksi orang tua TIDAK ikut dari request (display-only di form digital);
// nilai lama dipertahankan oleh pemanggil.
func (r *UpdateAssessmentsRequest) ToAssessmentData(existing model.AssessmentData) model.AssessmentData {
	return model.AssessmentData{
		Agama:         r.Agama,
		JatiDiri:      r.JatiDiri,
		LiterasiSteam: r.LiterasiSteam,
		ProjekProfil:  r.ProjekProfil,
		Refleksi:      existing.Refleksi, // read-only di editor
		CatatanGuru:   r.CatatanGuru,
		Sakit:         r.Sakit,
		Izin:          r.Izin,
		Alpa:          r.Alpa,
		Height:        r.Height,
		Weight:        r.Weight,
		HeadCircumference: r.HeadCircumference,
		Health: model.HealthData{
			Pendengaran: r.Health.Pendengaran,
			Penglihatan: r.Health.Penglihatan,
			Gigi:        r.Health.Gigi,
		},
	}
}
