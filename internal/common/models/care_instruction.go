package models

// CollectionCareInstructions: id dokumen = nama pasien, array di field "instructions".
const CollectionCareInstructions = "care-instructions"

// CareInstruction ditulis keluarga dan dibaca caregiver.
type CareInstruction struct {
	ID          string `json:"id"`
	Instruction string `json:"instruction"`
	AddedBy     string `json:"added_by,omitempty"`
	Timestamp   string `json:"timestamp"`
}
