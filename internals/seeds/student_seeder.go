// file: internals/seeds/student_seeder.go
package seeds

import (
	"log"

	"raportku_backend/internals/features/students/model"
	"raportku_backend/internals/features/students/repository"
)

// SeedStudents mengisi roster awal (data contoh dari sekolah).
// Dipanggil sekali di startup sebelum server menerima request.
func SeedStudents(roster *repository.RosterStore) {
	roster.Seed(initialStudents())
	log.Printf("✅ Roster awal dimuat: %d siswa", len(roster.All()))
}

func initialStudents() []model.StudentModel {
	return []model.StudentModel{
		{
			StudentID:       "1",
			StudentName:     "Aditya Pratama",
			StudentNickname: "Adit",
			StudentNIS:      "2023001",
			StudentNISN:     "3124567890",
			StudentGroup:    model.GroupTKB,
			StudentGender:   "L",
			BirthPlace:      "Jakarta",
			BirthDate:       "15 Mei 2018",
			Religion:        "Islam",
			ChildOrder:      1,
			FatherName:      "Budi Pratama",
			FatherJob:       "Wiraswasta",
			MotherName:      "Siti Aminah",
			MotherJob:       "Ibu Rumah Tangga",
			Address:         "Jl. Warakas I No. 12, Tanjung Priok, Jakarta Utara",
			Assessments: model.AssessmentData{
				Agama:         "Ananda Aditya mulai terbiasa melakukan kegiatan ibadah sehari-hari dengan tuntunan orang dewasa. Ia mampu melafalkan doa sebelum makan dengan lancar.",
				JatiDiri:      "Aditya menunjukkan kemandirian dalam hal merawat diri sendiri, seperti mencuci tangan sebelum makan. Ia juga mulai mampu mengelola emosi saat bermain dengan teman.",
				LiterasiSteam: "Ananda sudah mengenal berbagai bentuk geometri dasar dan mulai tertarik pada buku cerita bergambar. Ia mampu menceritakan kembali isi cerita sederhana.",
				ProjekProfil:  "Aditya berpartisipasi aktif dalam kegiatan gotong royong membersihkan kelas (Dimensi: Bergotong Royong).",
				CatatanGuru:   "Mohon dukungan orang tua untuk membiasakan Ananda tidur siang teratur.",
				Sakit:         0,
				Izin:          1,
				Alpa:          0,
				Height:        110,
				Weight:        18,
				HeadCircumference: 50,
				Health: model.HealthData{
					Pendengaran: "Baik",
					Penglihatan: "Baik",
					Gigi:        "Sehat",
				},
			},
		},
		{
			StudentID:       "2",
			StudentName:     "Bunga Citra",
			StudentNickname: "Bunga",
			StudentNIS:      "2023002",
			StudentNISN:     "3124567891",
			StudentGroup:    model.GroupTKA,
			StudentGender:   "P",
			BirthPlace:      "Jakarta",
			BirthDate:       "20 Agustus 2019",
			Religion:        "Islam",
			ChildOrder:      2,
			FatherName:      "Joko Susilo",
			FatherJob:       "Karyawan Swasta",
			MotherName:      "Rina Wati",
			MotherJob:       "Guru",
			Address:         "Jl. Bahari No. 45, Tanjung Priok, Jakarta Utara",
			Assessments: model.AssessmentData{
				Agama:         "Ananda Bunga sudah hafal surat-surat pendek seperti Al-Fatihah dan Al-Ikhlas. Sikap santun kepada guru selalu ditunjukkan saat datang ke sekolah.",
				JatiDiri:      "Bunga memiliki rasa percaya diri yang baik saat tampil di depan kelas. Ia senang membantu teman yang kesulitan.",
				LiterasiSteam: "Ananda sangat antusias dalam kegiatan seni, terutama menggambar dan mewarnai. Kemampuan mengenal huruf abjad berkembang sangat pesat.",
				ProjekProfil:  "Bunga menunjukkan kreativitas tinggi dalam membuat kerajinan dari bahan bekas (Dimensi: Kreatif).",
				CatatanGuru:   "Pertahankan semangat belajarnya, Bunga!",
				Sakit:         1,
				Izin:          0,
				Alpa:          0,
				Height:        105,
				Weight:        16,
				HeadCircumference: 48,
				Health: model.HealthData{
					Pendengaran: "Baik",
					Penglihatan: "Baik",
					Gigi:        "Sedikit berlubang",
				},
			},
		},
	}
}
