package models

// Author adalah caregiver yang sedang login (dari klaim JWT).
type Author struct {
	Username string
	Name     string
}

type NoteRequest struct {
	PatientName string `json:"patient_name"`
	Note        string `json:"note"`
	Timestamp   string `json:"timestamp,omitempty"`
}

type NoteRecorded struct {
	IDOfNoteJustRecorded string `json:"id_of_note_just_recorded"`
}

// Note adalah satu elemen caregiver-notes/{patient}.notes.
type Note struct {
	ID        string `json:"id"`
	Timestamp string `json:"timestamp"`
	Caregiver string `json:"caregiver"`
	Note      string `json:"note"`
	EditedAt  string `json:"edited_at,omitempty"`
}

// ShiftRecordRequest menulis satu kategori record untuk shift yang memuat Timestamp.
type ShiftRecordRequest struct {
	PatientName string      `json:"patient_name"`
	Category    string      `json:"category"`
	Value       interface{} `json:"value"`
	Timestamp   string      `json:"timestamp,omitempty"`
}

type ShiftRecordSaved struct {
	Category    string `json:"category"`
	DocID       string `json:"doc_id"`
	ShiftNumber int    `json:"shift_number"`
	RecordedBy  string `json:"recorded_by"`
	Timestamp   string `json:"timestamp"`
}
