// file: internals/features/students/repository/roster_store.go
package repository

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"raportku_backend/internals/constants"
	"raportku_backend/internals/features/students/model"
)

var (
	ErrStudentNotFound = errors.New("siswa tidak ditemukan")
	ErrNameRequired    = errors.New("nama siswa wajib diisi")
)

// RosterStore menyimpan daftar siswa di memori (satu sekolah, satu proses).
// Tidak ada persistensi: restart proses = data kembali ke seed.
// Server HTTP melayani request secara paralel, jadi semua akses dijaga RWMutex.
type RosterStore struct {
	mu       sync.RWMutex
	students []model.StudentModel // urutan insert dipertahankan (untuk listing)
}

func NewRosterStore() *RosterStore {
	return &RosterStore{}
}

// Seed mengisi roster awal. Dipanggil sekali saat startup, sebelum server menerima request.
func (r *RosterStore) Seed(students []model.StudentModel) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.students = append(r.students, students...)
}

// Add membuat siswa baru dengan id = max(id numerik)+1 dan NIS turunan
// (prefix tahun + id 3 digit). Field biodata diisi "-" dan penilaian kosong;
// guru melengkapinya lewat update.
func (r *RosterStore) Add(name string, group model.StudentGroup) (*model.StudentModel, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrNameRequired
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	maxID := 0
	for i := range r.students {
		if n, err := strconv.Atoi(r.students[i].StudentID); err == nil && n > maxID {
			maxID = n
		}
	}
	newID := strconv.Itoa(maxID + 1)

	s := model.StudentModel{
		StudentID:     newID,
		StudentName:   name,
		StudentNIS:    fmt.Sprintf("%s%03d", constants.NISYearPrefix, maxID+1),
		StudentGroup:  group,
		StudentGender: "L",
		BirthPlace:    "-",
		BirthDate:     "-",
		Religion:      "-",
		ChildOrder:    1,
		FatherName:    "-",
		FatherJob:     "-",
		MotherName:    "-",
		MotherJob:     "-",
		Address:       "-",
		// Assessments: zero value (semua narasi kosong, angka 0)
	}
	r.students = append(r.students, s)

	out := s
	return &out, nil
}

// Update mengganti seluruh record siswa yang id-nya cocok.
func (r *RosterStore) Update(s model.StudentModel) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.students {
		if r.students[i].StudentID == s.StudentID {
			r.students[i] = s
			return nil
		}
	}
	return ErrStudentNotFound
}

// ReplaceAssessments mengganti seluruh sub-record penilaian siswa (jalur "Simpan"
// dari form input nilai — bukan merge per field).
func (r *RosterStore) ReplaceAssessments(id string, a model.AssessmentData) (*model.StudentModel, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.students {
		if r.students[i].StudentID == id {
			r.students[i].Assessments = a
			out := r.students[i]
			return &out, nil
		}
	}
	return nil, ErrStudentNotFound
}

// Find mengambil satu siswa berdasarkan id. Mengembalikan salinan supaya
// pemanggil tidak bisa memodifikasi record kanonik tanpa lewat Update.
func (r *RosterStore) Find(id string) (*model.StudentModel, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.students {
		if r.students[i].StudentID == id {
			out := r.students[i]
			return &out, true
		}
	}
	return nil, false
}

// Filter mencari siswa: substring nama (case-insensitive) ATAU substring NIS.
// Term kosong = seluruh roster. Urutan insert dipertahankan.
func (r *RosterStore) Filter(term string) []model.StudentModel {
	r.mu.RLock()
	defer r.mu.RUnlock()

	lowered := strings.ToLower(term)
	out := make([]model.StudentModel, 0, len(r.students))
	for i := range r.students {
		s := r.students[i]
		if term == "" ||
			strings.Contains(strings.ToLower(s.StudentName), lowered) ||
			strings.Contains(s.StudentNIS, term) {
			out = append(out, s)
		}
	}
	return out
}

// All mengembalikan seluruh roster dalam urutan insert.
func (r *RosterStore) All() []model.StudentModel {
	return r.Filter("")
}
