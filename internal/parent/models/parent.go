package models

type NoteRequest struct {
	PatientName string `json:"patient_name"`
	Note        string `json:"note"`
	Timestamp   string `json:"timestamp,omitempty"`
}

type CareInstructionRequest struct {
	PatientName string `json:"patient_name"`
	Instruction string `json:"instruction"`
}

type AppointmentRequest struct {
	PatientName     string `json:"patient_name"`
	AppointmentDate string `json:"appointment_date"`
	Type            string `json:"type"`
	Details         string `json:"details"`
	Where           string `json:"where"`
}

// StoredAppointment adalah elemen appointments/{patient}.appointments beserta id-nya.
type StoredAppointment struct {
	ID              string `json:"id"`
	AppointmentDate string `json:"appointment_date"`
	Type            string `json:"type"`
	Details         string `json:"details"`
	Where           string `json:"where"`
}
