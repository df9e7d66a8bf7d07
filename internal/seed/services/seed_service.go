package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	accountModels "github.com/c14220110/caregiver-backend/internal/account/models"
	accountServices "github.com/c14220110/caregiver-backend/internal/account/services"
	commonModels "github.com/c14220110/caregiver-backend/internal/common/models"
	rosterModels "github.com/c14220110/caregiver-backend/internal/roster/models"
	rosterServices "github.com/c14220110/caregiver-backend/internal/roster/services"
	summary "github.com/c14220110/caregiver-backend/internal/shiftreport/services"
	"github.com/c14220110/caregiver-backend/pkg/storage/docstore"
	"github.com/c14220110/caregiver-backend/pkg/utils"
)

// Data demo: pasien John, caregiver Alice, sekitar 27 Oktober 2025 07:00 (shift pagi).
const (
	DemoPatient   = "John"
	DemoCaregiver = "Alice"
	DemoPassword  = "demo123"
)

var DemoAnchor = time.Date(2025, 10, 27, 7, 0, 0, 0, time.UTC)

var demoAccounts = []accountModels.Account{
	{Username: "alice", DisplayName: "Alice", Role: utils.RoleCaregiver, Pronouns: "she/her"},
	{Username: "bob", DisplayName: "Bob", Role: utils.RoleCaregiver, Pronouns: "he/him"},
	{Username: "rose", DisplayName: "Rose", Role: utils.RoleParent},
}

func demoPrevShiftDocID() string {
	return summary.ShiftDocID(DemoPatient, summary.PreviousShiftNumber(summary.ShiftNumber(DemoAnchor)))
}

type Result struct {
	Status               string `json:"status"`
	SeededPrevShiftDocID string `json:"seeded_prev_shift_doc_id"`
	PatientName          string `json:"patient_name"`
	CaregiverName        string `json:"caregiver_name"`
}

type SeedService struct {
	Store    docstore.Store
	Accounts *accountServices.AccountService
	Roster   *rosterServices.RosterService
	Logger   *slog.Logger
}

func NewSeedService(store docstore.Store, accounts *accountServices.AccountService, roster *rosterServices.RosterService, logger *slog.Logger) *SeedService {
	return &SeedService{Store: store, Accounts: accounts, Roster: roster, Logger: logger}
}

// Seed menimpa data demo. Aman dipanggil berulang kali.
func (s *SeedService) Seed(ctx context.Context) (*Result, error) {
	anchor := DemoAnchor
	at := func(d time.Duration) string { return summary.FormatTimestamp(anchor.Add(d)) }
	times := []string{
		at(-(2*24 + 3) * time.Hour),
		at(-(24 + 1) * time.Hour),
		at(-5 * time.Hour),
		at(-1 * time.Hour),
		at(0),
		at(4 * time.Hour),
		at((24 + 2) * time.Hour),
		at((2*24 + 1) * time.Hour),
	}

	prevDocID := demoPrevShiftDocID()
	records := map[string]docstore.Document{
		summary.CategoryCaregiverInCharge: {"value": DemoCaregiver, summary.PronounsField: "she/her"},
		summary.CategoryAnythingUnusual:   {"value": false, "details": "Slept through the night without issues"},
		summary.CategoryShiftSummary:      {"summary": "Good night's sleep; responsive in the morning; enjoyed reading time."},
		summary.CategoryMeds:              {"value": "All taken as scheduled; Vitamin D at 07:30."},
		summary.CategoryFood:              {"value": "Breakfast: oatmeal + berries; Snack: yogurt."},
		summary.CategoryHR:                {"value": "normal (resting 62–68 bpm)"},
		summary.CategoryMovement:          {"value": "average movement; short walk after breakfast."},
	}
	for _, category := range summary.RecordCategories {
		if err := s.Store.Set(ctx, category, prevDocID, records[category], false); err != nil {
			return nil, fmt.Errorf("seed %s: %w", category, err)
		}
	}

	writes := []struct {
		collection string
		doc        docstore.Document
	}{
		{summary.CollectionParentNotes, docstore.Document{"notes": []any{
			map[string]any{"timestamp": times[1], "note": "Asked about favorite songs; perked up hearing old playlist."},
			map[string]any{"timestamp": times[3], "note": "Please encourage water intake this afternoon."},
			map[string]any{"timestamp": times[4], "note": "We’ll visit tomorrow after lunch."},
			map[string]any{"timestamp": times[6], "note": "Brought a new sweater; it's in the top drawer."},
		}}},
		{summary.CollectionCaregiverNotes, docstore.Document{"notes": []any{
			map[string]any{"timestamp": times[0], "caregiver": "Bob", "note": "Light stretching helped ease stiffness."},
			map[string]any{"timestamp": times[2], "caregiver": "Alice", "note": "Refused tea; preferred warm water."},
			map[string]any{"timestamp": times[3], "caregiver": "Carol", "note": "Enjoyed a short story; calm mood."},
			map[string]any{"timestamp": times[5], "caregiver": "Alice", "note": "Walked 200m around the garden."},
			map[string]any{"timestamp": times[7], "caregiver": "Derek", "note": "Prefers the blue slippers."},
		}}},
		{summary.CollectionAppointments, docstore.Document{"appointments": []any{
			map[string]any{"appointment_date": "2025-10-27T11:00:00", "type": "doctor consult", "details": "Dietician check-in", "where": "Clinic A, Main St 123"},
			map[string]any{"appointment_date": "2025-10-27T16:30:00", "type": "physio", "details": "Gait assessment", "where": "Physio Center, Park Ave 5"},
			map[string]any{"appointment_date": "2025-10-28T09:00:00", "type": "lab", "details": "Routine bloodwork", "where": "Lab B, Riverside 9"},
		}}},
		{commonModels.CollectionCareInstructions, docstore.Document{"instructions": []any{
			map[string]any{"id": "demo-1", "instruction": "Offer water every two hours.", "added_by": "Rose", "timestamp": times[1]},
		}}},
	}
	for _, w := range writes {
		if err := s.Store.Set(ctx, w.collection, DemoPatient, w.doc, false); err != nil {
			return nil, fmt.Errorf("seed %s: %w", w.collection, err)
		}
	}

	if err := s.Roster.SavePeople(ctx, rosterModels.People{
		Patient:        DemoPatient,
		CaregiverNames: []string{"Derek", "Carol", "Bob"},
		ParentNames:    []string{"Alfred", "Rose"},
	}); err != nil {
		return nil, fmt.Errorf("seed people: %w", err)
	}

	for _, acc := range demoAccounts {
		if err := s.Accounts.Register(ctx, acc, DemoPassword); err != nil {
			return nil, fmt.Errorf("seed akun %s: %w", acc.Username, err)
		}
	}

	s.Logger.Info("data demo ditulis", "patient_name", DemoPatient, "prev_shift_doc", prevDocID)
	return &Result{
		Status:               "ok",
		SeededPrevShiftDocID: prevDocID,
		PatientName:          DemoPatient,
		CaregiverName:        DemoCaregiver,
	}, nil
}

// Reset menghapus semua dokumen yang ditulis Seed, termasuk note/janji temu yang ditambahkan
// lewat API untuk pasien demo.
func (s *SeedService) Reset(ctx context.Context) error {
	type ref struct{ collection, id string }
	var refs []ref
	for _, category := range summary.RecordCategories {
		refs = append(refs, ref{category, demoPrevShiftDocID()})
	}
	for _, c := range []string{
		summary.CollectionParentNotes,
		summary.CollectionCaregiverNotes,
		summary.CollectionAppointments,
		commonModels.CollectionCareInstructions,
		rosterServices.CollectionPeople,
	} {
		refs = append(refs, ref{c, DemoPatient})
	}
	for _, acc := range demoAccounts {
		refs = append(refs, ref{accountServices.CollectionAccounts, acc.Username})
	}

	for _, r := range refs {
		if err := s.Store.Delete(ctx, r.collection, r.id); err != nil {
			return fmt.Errorf("reset %s/%s: %w", r.collection, r.id, err)
		}
	}
	s.Logger.Info("data demo dihapus", "documents", len(refs))
	return nil
}
