// file: internals/helpers/tanggal.go
package helper

import (
	"fmt"
	"time"
)

var namaBulan = [12]string{
	"Januari", "Februari", "Maret", "April", "Mei", "Juni",
	"Juli", "Agustus", "September", "Oktober", "November", "Desember",
}

// FormatTanggal memformat tanggal gaya id-ID: "15 Mei 2018"
// (hari tanpa leading zero, nama bulan penuh, tahun 4 digit).
func FormatTanggal(t time.Time) string {
	return fmt.Sprintf("%d %s %d", t.Day(), namaBulan[t.Month()-1], t.Year())
}

// JakartaLocation: zona waktu sekolah. Fallback ke WIB statis kalau
// database tzdata tidak tersedia di image deploy.
func JakartaLocation() *time.Location {
	loc, err := time.LoadLocation("Asia/Jakarta")
	if err != nil {
		return time.FixedZone("WIB", 7*60*60)
	}
	return loc
}
