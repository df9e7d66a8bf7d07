package services

import (
	"strings"
	"time"
)

// TimestampLayout adalah format timestamp naive (tanpa zona) yang ditulis ke store dan response.
const TimestampLayout = "2006-01-02T15:04:05"

const dateLayout = "2006-01-02"

var isoLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04",
	dateLayout,
}

// Epoch dipakai untuk timestamp note yang tidak bisa di-parse, sehingga terurut paling akhir
// dan tersaring oleh jendela 7 hari.
var Epoch = time.Date(1970, 1, 1, 0, 0, 0, 0, time.UTC)

// ParseReferenceTime mem-parse current_date. Tanggal tanpa jam diartikan 07:00 (shift pagi).
// Berbeda dengan ParseNoteTime, suffix zona ("Z", "+07:00") ditolak: current_date selalu jam dinding lokal.
func ParseReferenceTime(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range isoLayouts {
		t, err := time.Parse(layout, s)
		if err != nil {
			continue
		}
		if layout == dateLayout {
			t = t.Add(7 * time.Hour)
		}
		return t, nil
	}
	return time.Time{}, &ValidationError{Message: "current_date must be ISO-like, e.g. '2025-10-27T07:00:00'"}
}

// ParseNoteTime mem-parse timestamp note/appointment secara longgar (pecahan detik diterima time.Parse).
// Gagal parse menghasilkan Epoch. Timestamp berzona diambil jam dinding-nya saja.
func ParseNoteTime(s string) time.Time {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return naive(t)
	}
	s = strings.ReplaceAll(s, "Z", "")
	for _, layout := range isoLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return Epoch
}

// FormatTimestamp menulis waktu naive tanpa pecahan detik.
func FormatTimestamp(t time.Time) string {
	return t.Format(TimestampLayout)
}

func naive(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), time.UTC)
}

// ParseEntryTime dipakai saat menulis note/record: string kosong berarti now (naive UTC).
func ParseEntryTime(s string, now time.Time) (time.Time, error) {
	if strings.TrimSpace(s) == "" {
		return naive(now.UTC()).Truncate(time.Second), nil
	}
	t := ParseNoteTime(s)
	if t.Equal(Epoch) {
		return time.Time{}, &ValidationError{Message: "timestamp must be ISO-like, e.g. '2025-10-27T07:00:00'"}
	}
	return t, nil
}
