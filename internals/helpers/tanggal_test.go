package helper

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatTanggal(t *testing.T) {
	cases := []struct {
		in   time.Time
		want string
	}{
		{time.Date(2018, time.May, 15, 0, 0, 0, 0, time.UTC), "15 Mei 2018"},
		{time.Date(2024, time.January, 2, 0, 0, 0, 0, time.UTC), "2 Januari 2024"},
		{time.Date(2023, time.August, 20, 0, 0, 0, 0, time.UTC), "20 Agustus 2023"},
		{time.Date(2025, time.December, 31, 0, 0, 0, 0, time.UTC), "31 Desember 2025"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, FormatTanggal(tc.in))
	}
}
