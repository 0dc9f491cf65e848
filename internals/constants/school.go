package constants

// Profil sekolah (satu sekolah, fix — bukan multi-tenant)
const (
	SchoolName      = "KB - TK GELORA BANGSA"
	SchoolNPSN      = "69900048"
	SchoolAddress   = "Jl. Kampung Baru Rt 10 Rw 15"
	SchoolVillage   = "Penjaringan"
	SchoolDistrict  = "Penjaringan"
	SchoolCity      = "Jakarta Utara"
	SchoolProvince  = "DKI Jakarta"
	SchoolEmail     = "gelorabangsa@gmail.com"
	SchoolCoverAddr = "Jl. Kampung Baru Kubur Koja, Penjaringan, Jakarta Utara"

	// Kota untuk blok tanda tangan ("Jakarta, 12 Januari 2025")
	SignatureCity = "Jakarta"

	PrincipalName   = "Rina S.E"
	PrincipalTitle  = "Kepala Sekolah"
	ClassTeacherName = "RINI"
)

// Default administrasi raport
const (
	DefaultSchoolYear = "2023/2024"

	// Prefix tahun untuk NIS siswa baru: "2024" + id 3 digit → "2024003"
	NISYearPrefix = "2024"
)

// Label elemen capaian pembelajaran (Kurikulum Merdeka PAUD)
const (
	ElementAgama         = "Nilai Agama dan Budi Pekerti"
	ElementJatiDiri      = "Jati Diri"
	ElementLiterasiSteam = "Dasar-dasar Literasi, Matematika, Sains, Teknologi, Rekayasa, dan Seni"
	ElementProjekProfil  = "Projek Penguatan Profil Pelajar Pancasila (P5)"
)
