package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c14220110/caregiver-backend/internal/parent/models"
	summary "github.com/c14220110/caregiver-backend/internal/shiftreport/services"
	"github.com/c14220110/caregiver-backend/pkg/logger"
	"github.com/c14220110/caregiver-backend/pkg/storage/docstore"
)

func newTestService() (*ParentService, docstore.Store) {
	store := docstore.NewMemoryStore()
	svc := NewParentService(docstore.NewListEditor(store), nil, logger.Discard())
	svc.now = func() time.Time { return time.Date(2025, 10, 27, 7, 0, 0, 0, time.UTC) }
	return svc, store
}

func TestParentNoteShowsInSummary(t *testing.T) {
	svc, store := newTestService()
	ctx := context.Background()

	_, err := svc.RecordNote(ctx, "Rose", models.NoteRequest{PatientName: "John", Note: "Tolong ingatkan minum air", Timestamp: "2025-10-26T20:00:00"})
	require.NoError(t, err)
	_, err = svc.RecordNote(ctx, "Rose", models.NoteRequest{PatientName: "John", Note: "sekarang"})
	require.NoError(t, err)

	sum, err := summary.NewShiftSummaryService(store, logger.Discard(), false).
		BuildShiftSummary(ctx, "John", time.Date(2025, 10, 27, 7, 0, 0, 0, time.UTC), "")
	require.NoError(t, err)
	require.Len(t, sum.ParentNotes, 2)
	assert.Equal(t, "sekarang", sum.ParentNotes[0].Note)
	assert.Equal(t, "2025-10-26T20:00:00", sum.ParentNotes[1].Timestamp)

	_, err = svc.RecordNote(ctx, "Rose", models.NoteRequest{PatientName: "", Note: "x"})
	var verr *summary.ValidationError
	assert.ErrorAs(t, err, &verr)
}

func TestAddCareInstruction(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	ci, err := svc.AddCareInstruction(ctx, "Rose", models.CareInstructionRequest{PatientName: "John", Instruction: "Jalan sore 15 menit"})
	require.NoError(t, err)
	assert.Equal(t, "Rose", ci.AddedBy)
	assert.Equal(t, "2025-10-27T07:00:00", ci.Timestamp)

	items, err := svc.Lists.Items(ctx, "care-instructions", "John", "instructions")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Jalan sore 15 menit", items[0]["instruction"])

	_, err = svc.AddCareInstruction(ctx, "Rose", models.CareInstructionRequest{PatientName: "John"})
	assert.Error(t, err)
}

func TestAppointments(t *testing.T) {
	svc, store := newTestService()
	ctx := context.Background()

	add := func(date, typ string) {
		t.Helper()
		_, err := svc.AddAppointment(ctx, models.AppointmentRequest{PatientName: "John", AppointmentDate: date, Type: typ, Where: "Clinic A"})
		require.NoError(t, err)
	}
	add("2025-10-28T09:00:00", "lab")
	add("2025-10-27T11:00:00", "doctor")
	add("2025-10-26T11:00:00", "kemarin")
	add("2025-11-10T11:00:00", "jauh")

	_, err := svc.AddAppointment(ctx, models.AppointmentRequest{PatientName: "John", AppointmentDate: "minggu depan"})
	var verr *summary.ValidationError
	assert.ErrorAs(t, err, &verr)

	list, err := svc.UpcomingAppointments(ctx, "John", 0)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "doctor", list[0].Type)
	assert.Equal(t, "lab", list[1].Type)
	assert.NotEmpty(t, list[0].ID)

	list, err = svc.UpcomingAppointments(ctx, "John", 30)
	require.NoError(t, err)
	assert.Len(t, list, 3)

	// janji temu hari ini ikut muncul di summary
	sum, err := summary.NewShiftSummaryService(store, logger.Discard(), false).
		BuildShiftSummary(ctx, "John", time.Date(2025, 10, 27, 7, 0, 0, 0, time.UTC), "")
	require.NoError(t, err)
	require.Len(t, sum.AppointmentsScheduledToday, 1)
	assert.Equal(t, "Clinic A", sum.AppointmentsScheduledToday[0].Where)
}
