package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func at(y int, m time.Month, d, h, min int) time.Time {
	return time.Date(y, m, d, h, min, 0, 0, time.UTC)
}

func TestResolveShiftBoundary(t *testing.T) {
	tests := []struct {
		name string
		in   time.Time
		want time.Time
	}{
		{"morning start", at(2025, 10, 27, 6, 0), at(2025, 10, 27, 6, 0)},
		{"morning end", at(2025, 10, 27, 13, 59), at(2025, 10, 27, 6, 0)},
		{"evening", at(2025, 10, 27, 14, 0), at(2025, 10, 27, 14, 0)},
		{"evening end", at(2025, 10, 27, 21, 59), at(2025, 10, 27, 14, 0)},
		{"night", at(2025, 10, 27, 22, 0), at(2025, 10, 27, 22, 0)},
		{"night 23:59", at(2025, 10, 27, 23, 59), at(2025, 10, 27, 22, 0)},
		{"midnight", at(2025, 10, 28, 0, 0), at(2025, 10, 27, 22, 0)},
		{"early morning", at(2025, 10, 28, 5, 59), at(2025, 10, 27, 22, 0)},
		{"new year early morning", at(2026, 1, 1, 3, 0), at(2025, 12, 31, 22, 0)},
		{"first of month", at(2025, 3, 1, 1, 0), at(2025, 2, 28, 22, 0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolveShiftBoundary(tt.in).Start)
		})
	}
}

func TestResolveShiftBoundaryEveryHour(t *testing.T) {
	day := at(2025, 6, 15, 0, 0)
	for h := 0; h < 24; h++ {
		b := ResolveShiftBoundary(day.Add(time.Duration(h) * time.Hour))
		switch {
		case h >= 6 && h < 14:
			assert.Equal(t, at(2025, 6, 15, 6, 0), b.Start, "hour %d", h)
		case h >= 14 && h < 22:
			assert.Equal(t, at(2025, 6, 15, 14, 0), b.Start, "hour %d", h)
		case h >= 22:
			assert.Equal(t, at(2025, 6, 15, 22, 0), b.Start, "hour %d", h)
		default:
			assert.Equal(t, at(2025, 6, 14, 22, 0), b.Start, "hour %d", h)
		}
	}
}

func TestShiftNumber(t *testing.T) {
	// 27 Oktober 2025 adalah hari ke-300
	assert.Equal(t, 299*3+1, ShiftNumber(at(2025, 10, 27, 7, 0)))
	assert.Equal(t, 299*3+2, ShiftNumber(at(2025, 10, 27, 14, 0)))
	assert.Equal(t, 299*3+3, ShiftNumber(at(2025, 10, 27, 23, 0)))
	assert.Equal(t, 299*3+3, ShiftNumber(at(2025, 10, 28, 2, 0)))

	assert.Equal(t, 1, ShiftNumber(at(2025, 1, 1, 6, 0)))
	assert.Equal(t, 1095, ShiftNumber(at(2025, 12, 31, 23, 0)))
}

func TestShiftNumberConstantWithinShift(t *testing.T) {
	assert.Equal(t, ShiftNumber(at(2025, 10, 27, 7, 0)), ShiftNumber(at(2025, 10, 27, 13, 59)))
	assert.Equal(t, ShiftNumber(at(2025, 10, 27, 22, 0)), ShiftNumber(at(2025, 10, 28, 5, 59)))
}

func TestShiftNumberStrictlyIncreasingWithinYear(t *testing.T) {
	prev := ShiftNumber(at(2025, 1, 1, 6, 0))
	for ts := at(2025, 1, 1, 14, 0); ts.Year() == 2025; ts = ts.Add(8 * time.Hour) {
		n := ShiftNumber(ts)
		assert.Equal(t, prev+1, n, "at %s", ts)
		prev = n
	}
}

func TestPreviousShiftNumber(t *testing.T) {
	assert.Equal(t, 1095, PreviousShiftNumber(1))
	assert.Equal(t, 1095, PreviousShiftNumber(0))
	assert.Equal(t, 1, PreviousShiftNumber(2))
	assert.Equal(t, 897, PreviousShiftNumber(898))
}

func TestShiftDocID(t *testing.T) {
	assert.Equal(t, "John-shift-897", ShiftDocID("John", 897))
}

func TestPreviousShiftAfterLeapYear(t *testing.T) {
	written := ShiftNumber(at(2024, 12, 31, 22, 0))
	assert.Equal(t, 1098, written)

	read := PreviousShiftNumber(ShiftNumber(at(2025, 1, 1, 7, 0)))
	assert.Equal(t, ShiftRingSize, read)
	assert.NotEqual(t, ShiftDocID("John", written), ShiftDocID("John", read))
}
