package services

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/c14220110/caregiver-backend/internal/roster/models"
	summary "github.com/c14220110/caregiver-backend/internal/shiftreport/services"
	"github.com/c14220110/caregiver-backend/pkg/storage/docstore"
)

// CollectionPeople: id dokumen = nama pasien.
const CollectionPeople = "people"

var ErrPatientNotFound = errors.New("patient not found in roster")

type RosterService struct {
	Store   docstore.Store
	entries map[string]models.People
}

func NewRosterService(store docstore.Store, file *models.RosterFile) *RosterService {
	s := &RosterService{Store: store, entries: map[string]models.People{}}
	if file != nil {
		for _, p := range file.Patients {
			s.entries[key(p.Patient)] = p
		}
	}
	return s
}

// LoadRosterFile membaca file YAML roster. path kosong berarti tanpa roster file.
func LoadRosterFile(path string) (*models.RosterFile, error) {
	if path == "" {
		return nil, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("gagal membaca roster %s: %w", path, err)
	}
	return ParseRoster(raw)
}

func ParseRoster(raw []byte) (*models.RosterFile, error) {
	var f models.RosterFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("roster tidak valid: %w", err)
	}
	for i, p := range f.Patients {
		if strings.TrimSpace(p.Patient) == "" {
			return nil, fmt.Errorf("roster: entri ke-%d tanpa nama pasien", i+1)
		}
	}
	return &f, nil
}

// People mencari roster dari file lebih dulu, lalu dokumen people/{patient}.
func (s *RosterService) People(ctx context.Context, patient string) (*models.People, error) {
	patient = strings.TrimSpace(patient)
	if patient == "" {
		return nil, &summary.ValidationError{Message: "patient_name is required"}
	}
	if p, ok := s.entries[key(patient)]; ok {
		return normalize(p), nil
	}

	doc, ok, err := s.Store.Get(ctx, CollectionPeople, patient)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrPatientNotFound
	}
	return normalize(models.People{
		Patient:        firstNonEmpty(summary.Stringify(doc["patient"]), patient),
		CaregiverNames: stringList(doc["caregiver_names"]),
		ParentNames:    stringList(doc["parent_names"]),
	}), nil
}

// Patients mengembalikan nama semua pasien yang dikenal, dari roster file dan store, urut nama.
func (s *RosterService) Patients(ctx context.Context) ([]string, error) {
	snaps, err := s.Store.List(ctx, CollectionPeople)
	if err != nil {
		return nil, err
	}
	seen := map[string]bool{}
	out := []string{}
	add := func(name string) {
		if name != "" && !seen[key(name)] {
			seen[key(name)] = true
			out = append(out, name)
		}
	}
	for _, p := range s.entries {
		add(p.Patient)
	}
	for _, snap := range snaps {
		add(firstNonEmpty(summary.Stringify(snap.Data["patient"]), snap.ID))
	}
	sort.Slice(out, func(i, j int) bool { return key(out[i]) < key(out[j]) })
	return out, nil
}

// SavePeople menulis roster pasien ke store (dipakai seeding).
func (s *RosterService) SavePeople(ctx context.Context, p models.People) error {
	return s.Store.Set(ctx, CollectionPeople, p.Patient, docstore.Document{
		"patient":         p.Patient,
		"caregiver_names": toAny(p.CaregiverNames),
		"parent_names":    toAny(p.ParentNames),
	}, false)
}

func key(name string) string { return strings.ToLower(strings.TrimSpace(name)) }

func normalize(p models.People) *models.People {
	if p.CaregiverNames == nil {
		p.CaregiverNames = []string{}
	}
	if p.ParentNames == nil {
		p.ParentNames = []string{}
	}
	return &p
}

func stringList(v any) []string {
	raw, _ := v.([]any)
	out := make([]string, 0, len(raw))
	for _, it := range raw {
		if s := summary.Stringify(it); s != "" {
			out = append(out, s)
		}
	}
	return out
}

func toAny(in []string) []any {
	out := make([]any, len(in))
	for i, s := range in {
		out[i] = s
	}
	return out
}

func firstNonEmpty(a, b string) string {
	if a != "" {
		return a
	}
	return b
}
