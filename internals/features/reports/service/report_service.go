// file: internals/features/reports/service/report_service.go
//
// Penyusun dokumen raport: fungsi murni dari (siswa, semester, tahun ajaran,
// tanggal cetak) ke enam halaman tetap. Tidak ada I/O di sini — tanggal
// di-inject pemanggil supaya hasilnya deterministik dan mudah dites.
package service

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"raportku_backend/internals/constants"
	"raportku_backend/internals/features/students/model"
	helper "raportku_backend/internals/helpers"
)

/* ===============================
   Struktur dokumen
=================================*/

type KV struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// SignatureBlock: blok tanda tangan. PlaceDate kosong untuk orang tua
// (hanya garis tanda tangan), Preamble "Mengetahui," khusus kepala sekolah
// di halaman penutup.
type SignatureBlock struct {
	Preamble  string `json:"preamble,omitempty"`
	PlaceDate string `json:"place_date,omitempty"`
	Role      string `json:"role"`
	Name      string `json:"name"`
}

// Halaman 1
type CoverPage struct {
	PageNumber     int    `json:"page_number"`
	SchoolName     string `json:"school_name"`
	SchoolAddress  string `json:"school_address"`
	NPSN           string `json:"npsn"`
	TitleLine1     string `json:"title_line_1"`
	TitleLine2     string `json:"title_line_2"`
	SchoolYear     string `json:"school_year"`
	StudentName    string `json:"student_name"`    // selalu uppercase
	StudentNumbers string `json:"student_numbers"` // "NISN / NIS : - / 2023001"
}

// Halaman 2
type SchoolDataPage struct {
	PageNumber int            `json:"page_number"`
	Heading    string         `json:"heading"`
	Rows       []KV           `json:"rows"`
	Signature  SignatureBlock `json:"signature"`
}

// Halaman 3
type IdentityPage struct {
	PageNumber    int            `json:"page_number"`
	Heading       string         `json:"heading"`
	StudentRows   []KV           `json:"student_rows"`
	ParentRows    []KV           `json:"parent_rows"`
	PhotoBoxLabel string         `json:"photo_box_label"`
	Signature     SignatureBlock `json:"signature"`
}

// Satu bingkai narasi (isi verbatim atau "-")
type NarrativeSection struct {
	Number       string `json:"number"`
	Title        string `json:"title"`
	Body         string `json:"body"`
	PhotoCaption string `json:"photo_caption"`
}

type NarrativeGroup struct {
	Heading  string             `json:"heading,omitempty"`
	Sections []NarrativeSection `json:"sections"`
}

// Halaman 4 dan 5
type CurriculumPage struct {
	PageNumber    int              `json:"page_number"`
	Heading       string           `json:"heading"`
	SemesterLabel string           `json:"semester_label"`
	Groups        []NarrativeGroup `json:"groups"`
}

type GrowthRow struct {
	No        int    `json:"no"`
	Aspect    string `json:"aspect"`
	Semester1 string `json:"semester_1"`
	Semester2 string `json:"semester_2"`
}

type HealthRow struct {
	No          int    `json:"no"`
	Examination string `json:"examination"`
	Result      string `json:"result"`
}

// Halaman 6
type ClosingPage struct {
	PageNumber         int              `json:"page_number"`
	GrowthHeading      string           `json:"growth_heading"`
	GrowthRows         []GrowthRow      `json:"growth_rows"`
	HealthHeading      string           `json:"health_heading"`
	HealthRows         []HealthRow      `json:"health_rows"`
	AttendanceHeading  string           `json:"attendance_heading"`
	AttendanceRows     []KV             `json:"attendance_rows"`
	ReflectionHeading  string           `json:"reflection_heading"`
	ReflectionHint     string           `json:"reflection_hint"`
	Reflection         string           `json:"reflection"` // verbatim, boleh kosong
	TeacherNoteHeading string           `json:"teacher_note_heading"`
	TeacherNote        string           `json:"teacher_note"` // verbatim
	ParentSignature    SignatureBlock   `json:"parent_signature"`
	TeacherSignature   SignatureBlock   `json:"teacher_signature"`
	PrincipalSignature SignatureBlock   `json:"principal_signature"`
}

// ReportDocument: enam halaman dalam urutan tetap. Semua halaman selalu
// dirender — data kosong tampil sebagai "-" di dalam bingkainya, tidak
// pernah menghilangkan halaman.
type ReportDocument struct {
	ReportID    string         `json:"report_id"`
	StudentID   string         `json:"student_id"`
	Semester    model.Semester `json:"semester"`
	SchoolYear  string         `json:"school_year"`
	GeneratedAt time.Time      `json:"generated_at"`

	Cover          CoverPage      `json:"cover"`
	SchoolData     SchoolDataPage `json:"school_data"`
	Identity       IdentityPage   `json:"identity"`
	Intrakurikuler CurriculumPage `json:"intrakurikuler"`
	LiterasiProjek CurriculumPage `json:"literasi_projek"`
	Closing        ClosingPage    `json:"closing"`
}

// PageNumbers: urutan halaman (untuk sanity check urutan cetak)
func (d *ReportDocument) PageNumbers() []int {
	return []int{
		d.Cover.PageNumber,
		d.SchoolData.PageNumber,
		d.Identity.PageNumber,
		d.Intrakurikuler.PageNumber,
		d.LiterasiProjek.PageNumber,
		d.Closing.PageNumber,
	}
}

/* ===============================
   Builder
=================================*/

// BuildReport menyusun dokumen raport satu siswa untuk satu semester.
func BuildReport(s model.StudentModel, semester model.Semester, schoolYear string, now time.Time) ReportDocument {
	placeDate := constants.SignatureCity + ", " + helper.FormatTanggal(now)

	principalSig := SignatureBlock{
		PlaceDate: placeDate,
		Role:      constants.PrincipalTitle,
		Name:      constants.PrincipalName,
	}

	doc := ReportDocument{
		ReportID:    reportID(s, semester, schoolYear, now),
		StudentID:   s.StudentID,
		Semester:    semester,
		SchoolYear:  schoolYear,
		GeneratedAt: now,

		Cover: CoverPage{
			PageNumber:     1,
			SchoolName:     constants.SchoolName,
			SchoolAddress:  constants.SchoolCoverAddr,
			NPSN:           constants.SchoolNPSN,
			TitleLine1:     "LAPORAN ASESMEN CAPAIAN",
			TitleLine2:     "PEMBELAJARAN ANAK DIDIK",
			SchoolYear:     "TAHUN PELAJARAN " + schoolYear,
			StudentName:    strings.ToUpper(s.StudentName),
			StudentNumbers: "NISN / NIS : " + nisnNIS(s),
		},

		SchoolData: SchoolDataPage{
			PageNumber: 2,
			Heading:    "DATA SEKOLAH",
			Rows: []KV{
				{"Nama TK", constants.SchoolName},
				{"NPSN", constants.SchoolNPSN},
				{"Alamat", constants.SchoolAddress},
				{"Kelurahan", constants.SchoolVillage},
				{"Kecamatan", constants.SchoolDistrict},
				{"Kabupaten / Kota", constants.SchoolCity},
				{"Provinsi", constants.SchoolProvince},
				{"Email", constants.SchoolEmail},
			},
			Signature: principalSig,
		},

		Identity: IdentityPage{
			PageNumber: 3,
			Heading:    "DATA DIRI ANAK",
			StudentRows: []KV{
				{"Nama Anak Didik", s.StudentName},
				{"Nama Panggilan", dashIfEmpty(s.StudentNickname)},
				{"NISN / NIS", nisnNIS(s)},
				{"Jenis Kelamin", genderLabel(s.StudentGender)},
				{"Tempat, Tanggal Lahir", s.BirthPlace + ", " + s.BirthDate},
				{"Agama", s.Religion},
				{"Anak ke-", strconv.Itoa(s.ChildOrder)},
			},
			ParentRows: []KV{
				{"Nama Ayah", s.FatherName},
				{"Pekerjaan Ayah", s.FatherJob},
				{"Nama Ibu", s.MotherName},
				{"Pekerjaan Ibu", s.MotherJob},
				{"Alamat Lengkap", s.Address},
			},
			PhotoBoxLabel: "FOTO 3x4",
			Signature:     principalSig,
		},

		Intrakurikuler: CurriculumPage{
			PageNumber:    4,
			Heading:       "LAPORAN CAPAIAN PEMBELAJARAN",
			SemesterLabel: "Semester: " + semesterLabel(semester),
			Groups: []NarrativeGroup{
				{
					Heading: "A. INTRAKURIKULER",
					Sections: []NarrativeSection{
						narrativeSection("I", constants.ElementAgama, s.Assessments.Agama),
						narrativeSection("II", constants.ElementJatiDiri, s.Assessments.JatiDiri),
					},
				},
			},
		},

		LiterasiProjek: CurriculumPage{
			PageNumber:    5,
			Heading:       "LAPORAN CAPAIAN PEMBELAJARAN",
			SemesterLabel: "Semester: " + semesterLabel(semester),
			Groups: []NarrativeGroup{
				{
					// lanjutan bagian A dari halaman 4
					Sections: []NarrativeSection{
						narrativeSection("III", constants.ElementLiterasiSteam, s.Assessments.LiterasiSteam),
					},
				},
				{
					Heading: "B. PROJEK PENGUATAN PROFIL PELAJAR PANCASILA",
					Sections: []NarrativeSection{
						narrativeSection("I", constants.ElementProjekProfil, s.Assessments.ProjekProfil),
					},
				},
			},
		},

		Closing: ClosingPage{
			PageNumber:    6,
			GrowthHeading: "C. FISIK & KESEHATAN",
			GrowthRows: []GrowthRow{
				growthRow(1, "Tinggi Badan", s.Assessments.Height, "cm", semester),
				growthRow(2, "Berat Badan", s.Assessments.Weight, "kg", semester),
				growthRow(3, "Lingkar Kepala", s.Assessments.HeadCircumference, "cm", semester),
			},
			HealthHeading: "Kondisi Kesehatan:",
			HealthRows: []HealthRow{
				{1, "Pendengaran", fallback(s.Assessments.Health.Pendengaran, "Baik")},
				{2, "Penglihatan", fallback(s.Assessments.Health.Penglihatan, "Baik")},
				{3, "Gigi", fallback(s.Assessments.Health.Gigi, "Sehat")},
			},
			AttendanceHeading: "D. TINGKAT KEHADIRAN",
			AttendanceRows: []KV{
				{"Sakit", days(s.Assessments.Sakit)},
				{"Izin", days(s.Assessments.Izin)},
				{"Tanpa Keterangan", days(s.Assessments.Alpa)},
			},
			ReflectionHeading:  "E. REFLEKSI ORANG TUA",
			ReflectionHint:     "(Tuliskan pendapat, harapan, atau masukan Orang Tua/Wali di sini...)",
			Reflection:         s.Assessments.Refleksi,
			TeacherNoteHeading: "Catatan Perkembangan dan Saran",
			TeacherNote:        s.Assessments.CatatanGuru,
			ParentSignature: SignatureBlock{
				Role: "Orang Tua / Wali",
				Name: "(.......................................)",
			},
			TeacherSignature: SignatureBlock{
				PlaceDate: placeDate,
				Role:      "Guru Kelas",
				Name:      constants.ClassTeacherName,
			},
			PrincipalSignature: SignatureBlock{
				Preamble:  "Mengetahui,",
				PlaceDate: placeDate,
				Role:      "Kepala KB - TK Gelora Bangsa",
				Name:      constants.PrincipalName,
			},
		},
	}

	return doc
}

/* ===============================
   Aturan field & fallback
=================================*/

// reportID: UUID v5 deterministik dari (siswa, semester, tahun, tanggal cetak),
// supaya render ulang di hari yang sama menghasilkan dokumen identik.
func reportID(s model.StudentModel, semester model.Semester, schoolYear string, now time.Time) string {
	seed := strings.Join([]string{
		s.StudentID, string(semester), schoolYear, now.Format("2006-01-02"),
	}, "|")
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte(seed)).String()
}

func nisnNIS(s model.StudentModel) string {
	return dashIfEmpty(s.StudentNISN) + " / " + s.StudentNIS
}

func genderLabel(g string) string {
	if g == "L" {
		return "Laki-laki"
	}
	return "Perempuan"
}

func semesterLabel(sem model.Semester) string {
	if sem == model.SemesterGanjil {
		return "1 (Ganjil)"
	}
	return "2 (Genap)"
}

func narrativeSection(number, title, body string) NarrativeSection {
	return NarrativeSection{
		Number:       number,
		Title:        title,
		Body:         dashIfEmpty(body),
		PhotoCaption: "Foto Kegiatan",
	}
}

// growthRow mengisi kolom semester yang dipilih dengan nilai hidup + satuan;
// kolom lainnya selalu "-" karena model data hanya punya satu snapshot
// (tidak ada histori per semester — perilaku warisan yang dipertahankan).
// Nilai 0 dirender "0 cm" sebagaimana pengukuran nol sungguhan.
func growthRow(no int, aspect string, value float64, unit string, sem model.Semester) GrowthRow {
	live := formatMeasurement(value) + " " + unit
	if sem == model.SemesterGanjil {
		return GrowthRow{No: no, Aspect: aspect, Semester1: live, Semester2: "-"}
	}
	return GrowthRow{No: no, Aspect: aspect, Semester1: "-", Semester2: live}
}

// formatMeasurement: tanpa trailing zero ("110", "18.5")
func formatMeasurement(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func days(n int) string {
	return fmt.Sprintf("%d Hari", n)
}

func dashIfEmpty(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func fallback(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
