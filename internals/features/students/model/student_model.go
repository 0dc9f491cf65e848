// file: internals/features/students/model/student_model.go
package model

import "strings"

// Semester penilaian (ganjil/genap)
type Semester string

const (
	SemesterGanjil Semester = "Semester Ganjil"
	SemesterGenap  Semester = "Semester Genap"
)

// ParseSemester menerima bentuk pendek query ("ganjil"/"genap") maupun
// label penuh. String kosong = default Semester Ganjil.
func ParseSemester(s string) (Semester, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "ganjil", "1", strings.ToLower(string(SemesterGanjil)):
		return SemesterGanjil, true
	case "genap", "2", strings.ToLower(string(SemesterGenap)):
		return SemesterGenap, true
	}
	return "", false
}

// Kelompok belajar (label tampilan, tidak ada efek perilaku)
type StudentGroup string

const (
	GroupKB  StudentGroup = "Kelompok Bermain (KB)"
	GroupTKA StudentGroup = "TK A"
	GroupTKB StudentGroup = "TK B"
)

// HealthData menyimpan hasil pemeriksaan kesehatan (free-text).
// String kosong SAH di penyimpanan; fallback "Baik"/"Sehat" hanya diterapkan
// saat render raport, bukan di sini.
type HealthData struct {
	Pendengaran string `json:"pendengaran"`
	Penglihatan string `json:"penglihatan"`
	Gigi        string `json:"gigi"`
}

// AssessmentData merepresentasikan satu snapshot penilaian per siswa.
// Catatan: tidak ada histori per semester — hanya satu snapshot "saat ini".
type AssessmentData struct {
	Agama         string `json:"agama"`          // Nilai Agama dan Budi Pekerti
	JatiDiri      string `json:"jati_diri"`      // Jati Diri
	LiterasiSteam string `json:"literasi_steam"` // Dasar Literasi & STEAM
	ProjekProfil  string `json:"projek_profil"`  // P5
	Refleksi      string `json:"refleksi"`       // Refleksi Orang Tua (diisi manual di kertas)
	CatatanGuru   string `json:"catatan_guru"`

	// Kehadiran (hari)
	Sakit int `json:"sakit"`
	Izin  int `json:"izin"`
	Alpa  int `json:"alpa"`

	// Pertumbuhan
	Height            float64 `json:"height"`             // cm
	Weight            float64 `json:"weight"`             // kg
	HeadCircumference float64 `json:"head_circumference"` // cm

	Health HealthData `json:"health"`
}

// StudentModel merepresentasikan satu anak didik beserta data penilaiannya
type StudentModel struct {
	StudentID       string       `json:"student_id"`
	StudentName     string       `json:"student_name"`
	StudentNickname string       `json:"student_nickname,omitempty"`
	StudentNIS      string       `json:"student_nis"`
	StudentNISN     string       `json:"student_nisn,omitempty"`
	StudentGroup    StudentGroup `json:"student_group"`
	StudentGender   string       `json:"student_gender"` // "L" | "P"
	BirthPlace      string       `json:"birth_place"`
	BirthDate       string       `json:"birth_date"` // free-text, tidak diparse
	Religion        string       `json:"religion"`
	ChildOrder      int          `json:"child_order"`

	FatherName string `json:"father_name"`
	FatherJob  string `json:"father_job"`
	MotherName string `json:"mother_name"`
	MotherJob  string `json:"mother_job"`
	Address    string `json:"address"`

	Assessments AssessmentData `json:"assessments"`
}

// AssessmentComplete: status "Terisi" di daftar siswa (agama & jati diri terisi)
func (s *StudentModel) AssessmentComplete() bool {
	return s.Assessments.Agama != "" && s.Assessments.JatiDiri != ""
}
