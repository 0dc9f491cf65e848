package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"raportku_backend/internals/features/students/model"
)

var frozenNow = time.Date(2024, time.June, 15, 9, 30, 0, 0, time.UTC)

// Siswa contoh dari skenario acuan: tanpa NISN, tanpa nama panggilan.
func adityaTanpaNISN() model.StudentModel {
	return model.StudentModel{
		StudentID:     "1",
		StudentName:   "Aditya Pratama",
		StudentNIS:    "2023001",
		StudentGroup:  model.GroupTKB,
		StudentGender: "L",
		BirthPlace:    "Jakarta",
		BirthDate:     "15 Mei 2018",
		Religion:      "Islam",
		ChildOrder:    1,
		FatherName:    "Budi Pratama",
		FatherJob:     "Wiraswasta",
		MotherName:    "Siti Aminah",
		MotherJob:     "Ibu Rumah Tangga",
		Address:       "Jl. Warakas I No. 12",
		Assessments: model.AssessmentData{
			Agama:             "Ananda Aditya mulai terbiasa beribadah.",
			JatiDiri:          "Aditya menunjukkan kemandirian.",
			Sakit:             0,
			Izin:              1,
			Alpa:              0,
			Height:            110,
			Weight:            18,
			HeadCircumference: 50,
		},
	}
}

func TestBuildReport_PageOrderFixed(t *testing.T) {
	doc := BuildReport(adityaTanpaNISN(), model.SemesterGanjil, "2023/2024", frozenNow)
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6}, doc.PageNumbers())
}

func TestBuildReport_IdempotentWithFrozenClock(t *testing.T) {
	s := adityaTanpaNISN()
	a := BuildReport(s, model.SemesterGanjil, "2023/2024", frozenNow)
	b := BuildReport(s, model.SemesterGanjil, "2023/2024", frozenNow)
	assert.Equal(t, a, b)
}

func TestBuildReport_Cover(t *testing.T) {
	doc := BuildReport(adityaTanpaNISN(), model.SemesterGanjil, "2023/2024", frozenNow)

	assert.Equal(t, "ADITYA PRATAMA", doc.Cover.StudentName)
	assert.Equal(t, "NISN / NIS : - / 2023001", doc.Cover.StudentNumbers)
	assert.Equal(t, "TAHUN PELAJARAN 2023/2024", doc.Cover.SchoolYear)
	assert.Equal(t, "KB - TK GELORA BANGSA", doc.Cover.SchoolName)
}

func TestBuildReport_CoverWithNISN(t *testing.T) {
	s := adityaTanpaNISN()
	s.StudentNISN = "3124567890"
	doc := BuildReport(s, model.SemesterGanjil, "2023/2024", frozenNow)
	assert.Equal(t, "NISN / NIS : 3124567890 / 2023001", doc.Cover.StudentNumbers)
}

func TestBuildReport_SchoolDataSignatureDated(t *testing.T) {
	doc := BuildReport(adityaTanpaNISN(), model.SemesterGanjil, "2023/2024", frozenNow)

	sig := doc.SchoolData.Signature
	assert.Equal(t, "Jakarta, 15 Juni 2024", sig.PlaceDate)
	assert.Equal(t, "Kepala Sekolah", sig.Role)
	assert.Equal(t, "Rina S.E", sig.Name)

	// tabel data sekolah: fakta institusi tetap, bukan turunan data siswa
	require.Len(t, doc.SchoolData.Rows, 8)
	assert.Equal(t, KV{"Nama TK", "KB - TK GELORA BANGSA"}, doc.SchoolData.Rows[0])
	assert.Equal(t, KV{"NPSN", "69900048"}, doc.SchoolData.Rows[1])
	assert.Equal(t, KV{"Email", "gelorabangsa@gmail.com"}, doc.SchoolData.Rows[7])
}

func TestBuildReport_IdentityFallbacks(t *testing.T) {
	doc := BuildReport(adityaTanpaNISN(), model.SemesterGanjil, "2023/2024", frozenNow)

	rows := doc.Identity.StudentRows
	require.Len(t, rows, 7)
	assert.Equal(t, KV{"Nama Panggilan", "-"}, rows[1])
	assert.Equal(t, KV{"NISN / NIS", "- / 2023001"}, rows[2])
	assert.Equal(t, KV{"Jenis Kelamin", "Laki-laki"}, rows[3])
	assert.Equal(t, KV{"Tempat, Tanggal Lahir", "Jakarta, 15 Mei 2018"}, rows[4])
	assert.Equal(t, KV{"Anak ke-", "1"}, rows[6])

	// baris orang tua tanpa fallback
	assert.Equal(t, KV{"Nama Ayah", "Budi Pratama"}, doc.Identity.ParentRows[0])
	assert.Equal(t, "FOTO 3x4", doc.Identity.PhotoBoxLabel)
}

func TestBuildReport_IdentityWithNicknameAndFemale(t *testing.T) {
	s := adityaTanpaNISN()
	s.StudentNickname = "Adit"
	s.StudentGender = "P"
	doc := BuildReport(s, model.SemesterGenap, "2023/2024", frozenNow)

	assert.Equal(t, KV{"Nama Panggilan", "Adit"}, doc.Identity.StudentRows[1])
	assert.Equal(t, KV{"Jenis Kelamin", "Perempuan"}, doc.Identity.StudentRows[3])
}

func TestBuildReport_NarrativePages(t *testing.T) {
	s := adityaTanpaNISN()
	doc := BuildReport(s, model.SemesterGanjil, "2023/2024", frozenNow)

	assert.Equal(t, "Semester: 1 (Ganjil)", doc.Intrakurikuler.SemesterLabel)

	require.Len(t, doc.Intrakurikuler.Groups, 1)
	secs := doc.Intrakurikuler.Groups[0].Sections
	require.Len(t, secs, 2)
	assert.Equal(t, "I", secs[0].Number)
	assert.Equal(t, "Nilai Agama dan Budi Pekerti", secs[0].Title)
	assert.Equal(t, "Ananda Aditya mulai terbiasa beribadah.", secs[0].Body)
	assert.Equal(t, "Foto Kegiatan", secs[0].PhotoCaption)

	// narasi kosong dirender "-" — halaman tetap ada
	require.Len(t, doc.LiterasiProjek.Groups, 2)
	assert.Equal(t, "-", doc.LiterasiProjek.Groups[0].Sections[0].Body)
	assert.Equal(t, "B. PROJEK PENGUATAN PROFIL PELAJAR PANCASILA", doc.LiterasiProjek.Groups[1].Heading)
	assert.Equal(t, "-", doc.LiterasiProjek.Groups[1].Sections[0].Body)
}

func TestBuildReport_GrowthTableSemesterGanjil(t *testing.T) {
	doc := BuildReport(adityaTanpaNISN(), model.SemesterGanjil, "2023/2024", frozenNow)

	rows := doc.Closing.GrowthRows
	require.Len(t, rows, 3)
	assert.Equal(t, GrowthRow{1, "Tinggi Badan", "110 cm", "-"}, rows[0])
	assert.Equal(t, GrowthRow{2, "Berat Badan", "18 kg", "-"}, rows[1])
	assert.Equal(t, GrowthRow{3, "Lingkar Kepala", "50 cm", "-"}, rows[2])
}

func TestBuildReport_GrowthTableSemesterGenapInverts(t *testing.T) {
	doc := BuildReport(adityaTanpaNISN(), model.SemesterGenap, "2023/2024", frozenNow)

	rows := doc.Closing.GrowthRows
	assert.Equal(t, GrowthRow{1, "Tinggi Badan", "-", "110 cm"}, rows[0])
	assert.Equal(t, GrowthRow{2, "Berat Badan", "-", "18 kg"}, rows[1])
	assert.Equal(t, GrowthRow{3, "Lingkar Kepala", "-", "50 cm"}, rows[2])
	assert.Equal(t, "Semester: 2 (Genap)", doc.Intrakurikuler.SemesterLabel)
}

func TestBuildReport_GrowthZeroRendersAsZero(t *testing.T) {
	s := adityaTanpaNISN()
	s.Assessments.Height = 0
	doc := BuildReport(s, model.SemesterGanjil, "2023/2024", frozenNow)
	assert.Equal(t, "0 cm", doc.Closing.GrowthRows[0].Semester1)
}

func TestBuildReport_HealthFallbacksAppliedAtRenderOnly(t *testing.T) {
	s := adityaTanpaNISN() // semua field kesehatan kosong
	doc := BuildReport(s, model.SemesterGanjil, "2023/2024", frozenNow)

	rows := doc.Closing.HealthRows
	require.Len(t, rows, 3)
	assert.Equal(t, HealthRow{1, "Pendengaran", "Baik"}, rows[0])
	assert.Equal(t, HealthRow{2, "Penglihatan", "Baik"}, rows[1])
	assert.Equal(t, HealthRow{3, "Gigi", "Sehat"}, rows[2])
}

func TestBuildReport_HealthExplicitValuesVerbatim(t *testing.T) {
	s := adityaTanpaNISN()
	s.Assessments.Health = model.HealthData{
		Pendengaran: "Baik",
		Penglihatan: "Minus ringan",
		Gigi:        "Sedikit berlubang",
	}
	doc := BuildReport(s, model.SemesterGanjil, "2023/2024", frozenNow)

	assert.Equal(t, "Minus ringan", doc.Closing.HealthRows[1].Result)
	assert.Equal(t, "Sedikit berlubang", doc.Closing.HealthRows[2].Result)
}

func TestBuildReport_AttendanceRows(t *testing.T) {
	doc := BuildReport(adityaTanpaNISN(), model.SemesterGanjil, "2023/2024", frozenNow)

	rows := doc.Closing.AttendanceRows
	require.Len(t, rows, 3)
	assert.Equal(t, KV{"Sakit", "0 Hari"}, rows[0])
	assert.Equal(t, KV{"Izin", "1 Hari"}, rows[1])
	assert.Equal(t, KV{"Tanpa Keterangan", "0 Hari"}, rows[2])
}

func TestBuildReport_ReflectionAndNoteVerbatim(t *testing.T) {
	s := adityaTanpaNISN()
	s.Assessments.Refleksi = "" // boleh kosong, tanpa fallback
	s.Assessments.CatatanGuru = "Mohon dukungan orang tua."
	doc := BuildReport(s, model.SemesterGanjil, "2023/2024", frozenNow)

	assert.Equal(t, "", doc.Closing.Reflection)
	assert.Equal(t, "Mohon dukungan orang tua.", doc.Closing.TeacherNote)
}

func TestBuildReport_ClosingSignatures(t *testing.T) {
	doc := BuildReport(adityaTanpaNISN(), model.SemesterGanjil, "2023/2024", frozenNow)

	assert.Equal(t, "Orang Tua / Wali", doc.Closing.ParentSignature.Role)
	assert.Empty(t, doc.Closing.ParentSignature.PlaceDate) // hanya garis tanda tangan
	assert.Equal(t, "(.......................................)", doc.Closing.ParentSignature.Name)

	assert.Equal(t, "RINI", doc.Closing.TeacherSignature.Name)
	assert.Equal(t, "Jakarta, 15 Juni 2024", doc.Closing.TeacherSignature.PlaceDate)

	assert.Equal(t, "Mengetahui,", doc.Closing.PrincipalSignature.Preamble)
	assert.Equal(t, "Rina S.E", doc.Closing.PrincipalSignature.Name)
}

func TestBuildReport_ReportIDStableWithinDay(t *testing.T) {
	s := adityaTanpaNISN()
	a := BuildReport(s, model.SemesterGanjil, "2023/2024", frozenNow)
	b := BuildReport(s, model.SemesterGanjil, "2023/2024", frozenNow.Add(2*time.Hour))
	c := BuildReport(s, model.SemesterGenap, "2023/2024", frozenNow)

	assert.Equal(t, a.ReportID, b.ReportID)    // hari sama → id sama
	assert.NotEqual(t, a.ReportID, c.ReportID) // semester beda → id beda
}
