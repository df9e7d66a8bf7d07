package models

import "time"

// ShiftBoundary adalah awal shift (06:00, 14:00, atau 22:00) yang mencakup suatu waktu.
type ShiftBoundary struct {
	Start time.Time
}

func (b ShiftBoundary) StartHour() int { return b.Start.Hour() }

// Date adalah tanggal kalender awal shift (jam 00:00).
func (b ShiftBoundary) Date() time.Time {
	y, m, d := b.Start.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, b.Start.Location())
}

// SummaryRequest adalah body POST shift summary.
type SummaryRequest struct {
	PatientName         string `json:"patient_name"`
	Patient             string `json:"patient"` // alias lama untuk patient_name
	CurrentDate         string `json:"current_date"`
	CaregiverTakingOver string `json:"caregiver_taking_over"`
}

// PatientID mengembalikan patient_name, atau patient jika patient_name kosong.
func (r SummaryRequest) PatientID() string {
	if r.PatientName != "" {
		return r.PatientName
	}
	return r.Patient
}

type Appointment struct {
	AppointmentDate string `json:"appointment_date"`
	Type            string `json:"type"`
	Details         string `json:"details"`
	Where           string `json:"where"`
}

type CaregiverNote struct {
	Timestamp string `json:"timestamp"`
	Caregiver string `json:"caregiver"`
	Note      string `json:"note"`
}

type ParentNote struct {
	Timestamp string `json:"timestamp"`
	Note      string `json:"note"`
}

// PreviousShift berisi record shift sebelumnya; field yang tidak ada bernilai "".
type PreviousShift struct {
	CaregiverInCharge         string `json:"caregiver_in_charge"`
	CaregiverInChargePronouns string `json:"caregiver_in_charge_pronouns"`
	AnythingUnusual           string `json:"anything_unusual"`
	ShiftSummary              string `json:"shift_summary"`
	Meds                      string `json:"meds"`
	Food                      string `json:"food"`
	HR                        string `json:"hr"`
	Movement                  string `json:"movement"`
}

type SummaryMeta struct {
	PatientName         string `json:"patient_name"`
	CurrentDate         string `json:"current_date"`
	CurrentShiftNumber  int    `json:"current_shift_number"`
	PreviousShiftNumber int    `json:"previous_shift_number"`
}

type ShiftStartSummary struct {
	AppointmentsScheduledToday []Appointment   `json:"appointments_scheduled_today"`
	CaregiverNotes             []CaregiverNote `json:"caregiver-notes"`
	ParentNotes                []ParentNote    `json:"parent-notes"`
	PreviousShift              PreviousShift   `json:"previous_shift"`
	Meta                       SummaryMeta     `json:"meta"`
}

type SummaryResponse struct {
	ShiftStartSummary *ShiftStartSummary `json:"shift_start_summary"`
}
