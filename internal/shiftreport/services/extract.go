package services

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/c14220110/caregiver-backend/pkg/storage/docstore"
)

// Collection untuk record per shift; id dokumen = ShiftDocID(patient, n).
const (
	CategoryCaregiverInCharge = "caregiver_in_charge"
	CategoryAnythingUnusual   = "anything_unusual"
	CategoryShiftSummary      = "shift_summary"
	CategoryMeds              = "meds"
	CategoryFood              = "food"
	CategoryHR                = "hr"
	CategoryMovement          = "movement"
)

// Collection per pasien; id dokumen = nama pasien.
const (
	CollectionParentNotes    = "parent-notes"
	CollectionCaregiverNotes = "caregiver-notes"
	CollectionAppointments   = "appointments"
)

// PronounsField disimpan di dokumen caregiver_in_charge.
const PronounsField = "caregiver_in_charge_pronouns"

// RecordCategories berurutan sesuai field previous_shift.
var RecordCategories = []string{
	CategoryCaregiverInCharge,
	CategoryAnythingUnusual,
	CategoryShiftSummary,
	CategoryMeds,
	CategoryFood,
	CategoryHR,
	CategoryMovement,
}

// recordValueFields: urutan field yang diambil dari dokumen record, sama untuk semua kategori.
var recordValueFields = []string{"value", "summary", "text", "status"}

// IsRecordCategory melaporkan apakah name adalah salah satu kategori record shift.
func IsRecordCategory(name string) bool {
	for _, c := range RecordCategories {
		if c == name {
			return true
		}
	}
	return false
}

// ExtractRecordValue mengambil field pertama yang ada sesuai recordValueFields,
// atau seluruh dokumen sebagai JSON jika tidak ada satupun.
func ExtractRecordValue(doc docstore.Document) string {
	if doc == nil {
		return ""
	}
	for _, f := range recordValueFields {
		if v, ok := doc[f]; ok {
			return Stringify(v)
		}
	}
	return Stringify(map[string]any(doc))
}

// Stringify mengubah nilai hasil decode JSON menjadi string. nil menjadi "".
// Boolean ditulis True/False, format yang sudah dipakai konsumen summary.
func Stringify(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case bool:
		if x {
			return "True"
		}
		return "False"
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case int, int32, int64:
		return fmt.Sprint(x)
	default:
		b, err := json.Marshal(x)
		if err != nil {
			return fmt.Sprint(x)
		}
		return string(b)
	}
}
