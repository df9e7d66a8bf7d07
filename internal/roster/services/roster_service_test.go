package services

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c14220110/caregiver-backend/internal/roster/models"
	"github.com/c14220110/caregiver-backend/pkg/storage/docstore"
)

const rosterYAML = `
patients:
  - patient: John
    caregiver_names: [Derek, Carol, Bob]
    parent_names: [Alfred, Rose]
`

func TestPeopleFromRosterFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "roster.yaml")
	require.NoError(t, os.WriteFile(path, []byte(rosterYAML), 0o600))

	f, err := LoadRosterFile(path)
	require.NoError(t, err)
	svc := NewRosterService(docstore.NewMemoryStore(), f)

	p, err := svc.People(context.Background(), " john ")
	require.NoError(t, err)
	assert.Equal(t, &models.People{
		CaregiverNames: []string{"Derek", "Carol", "Bob"},
		ParentNames:    []string{"Alfred", "Rose"},
		Patient:        "John",
	}, p)
}

func TestPeopleFallsBackToStore(t *testing.T) {
	ctx := context.Background()
	store := docstore.NewMemoryStore()
	svc := NewRosterService(store, nil)

	_, err := svc.People(ctx, "Mary")
	assert.ErrorIs(t, err, ErrPatientNotFound)

	require.NoError(t, svc.SavePeople(ctx, models.People{Patient: "Mary", ParentNames: []string{"Tom"}}))
	p, err := svc.People(ctx, "Mary")
	require.NoError(t, err)
	assert.Equal(t, []string{"Tom"}, p.ParentNames)
	assert.Equal(t, []string{}, p.CaregiverNames)
}

func TestParseRosterErrors(t *testing.T) {
	_, err := ParseRoster([]byte("patients: ["))
	assert.Error(t, err)
	_, err = ParseRoster([]byte("patients:\n  - caregiver_names: [A]\n"))
	assert.Error(t, err)

	f, err := LoadRosterFile("")
	assert.NoError(t, err)
	assert.Nil(t, f)
}

func TestPatientsMergesFileAndStore(t *testing.T) {
	ctx := context.Background()
	f, err := ParseRoster([]byte(rosterYAML))
	require.NoError(t, err)
	store := docstore.NewMemoryStore()
	svc := NewRosterService(store, f)

	require.NoError(t, svc.SavePeople(ctx, models.People{Patient: "Mary"}))
	require.NoError(t, svc.SavePeople(ctx, models.People{Patient: "John"}))

	names, err := svc.Patients(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"John", "Mary"}, names)
}
