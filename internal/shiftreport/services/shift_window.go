package services

import (
	"fmt"
	"time"

	"github.com/c14220110/caregiver-backend/internal/shiftreport/models"
)

// Tiga shift tetap per hari, masing-masing 8 jam.
const (
	MorningShiftStart = 6
	EveningShiftStart = 14
	NightShiftStart   = 22

	// ShiftRingSize adalah jumlah shift dalam setahun 365 hari; shift 1 didahului shift ShiftRingSize.
	ShiftRingSize = 365 * 3
)

// ResolveShiftBoundary mengembalikan awal shift yang mencakup t.
// Jam 00:00-05:59 termasuk shift 22:00 hari sebelumnya.
func ResolveShiftBoundary(t time.Time) models.ShiftBoundary {
	y, m, d := t.Date()
	loc := t.Location()

	h := t.Hour()
	switch {
	case h >= MorningShiftStart && h < EveningShiftStart:
		return models.ShiftBoundary{Start: time.Date(y, m, d, MorningShiftStart, 0, 0, 0, loc)}
	case h >= EveningShiftStart && h < NightShiftStart:
		return models.ShiftBoundary{Start: time.Date(y, m, d, EveningShiftStart, 0, 0, 0, loc)}
	case h >= NightShiftStart:
		return models.ShiftBoundary{Start: time.Date(y, m, d, NightShiftStart, 0, 0, 0, loc)}
	default:
		// time.Date menormalkan d-1 menjadi akhir bulan/tahun sebelumnya
		return models.ShiftBoundary{Start: time.Date(y, m, d-1, NightShiftStart, 0, 0, 0, loc)}
	}
}

// ShiftIndex: 1 untuk 06:00, 2 untuk 14:00, 3 untuk 22:00.
func ShiftIndex(b models.ShiftBoundary) int {
	switch b.StartHour() {
	case MorningShiftStart:
		return 1
	case EveningShiftStart:
		return 2
	default:
		return 3
	}
}

// ShiftNumber = (day_of_year - 1) * 3 + index, dihitung dari tanggal awal shift.
// Tidak kontinu di pergantian tahun; 31 Desember tahun kabisat menghasilkan 1096-1098.
func ShiftNumber(t time.Time) int {
	b := ResolveShiftBoundary(t)
	return (b.Start.YearDay()-1)*3 + ShiftIndex(b)
}

// PreviousShiftNumber selalu memutar shift 1 ke ShiftRingSize. Setelah tahun kabisat,
// record yang ditulis 31 Desember (1096-1098) tidak terbaca oleh summary 1 Januari.
func PreviousShiftNumber(n int) int {
	if n <= 1 {
		return ShiftRingSize
	}
	return n - 1
}

// ShiftDocID adalah id dokumen record shift: "{patient}-shift-{n}".
func ShiftDocID(patientID string, shiftNumber int) string {
	return fmt.Sprintf("%s-shift-%d", patientID, shiftNumber)
}
