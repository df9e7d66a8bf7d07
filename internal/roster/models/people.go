package models

// People adalah daftar nama di sekitar seorang pasien, dipakai untuk mengenali
// siapa yang dimaksud dalam note ("tinggalkan pesan untuk Bob").
type People struct {
	CaregiverNames []string `json:"caregiver_names" yaml:"caregiver_names"`
	ParentNames    []string `json:"parent_names" yaml:"parent_names"`
	Patient        string   `json:"patient" yaml:"patient"`
}

// RosterFile adalah isi ROSTER_FILE.
type RosterFile struct {
	Patients []People `yaml:"patients"`
}
