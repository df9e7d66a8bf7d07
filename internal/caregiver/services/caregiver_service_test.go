package services

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	accountModels "github.com/c14220110/caregiver-backend/internal/account/models"
	accountServices "github.com/c14220110/caregiver-backend/internal/account/services"
	"github.com/c14220110/caregiver-backend/internal/caregiver/models"
	summary "github.com/c14220110/caregiver-backend/internal/shiftreport/services"
	"github.com/c14220110/caregiver-backend/pkg/logger"
	"github.com/c14220110/caregiver-backend/pkg/storage/docstore"
	"github.com/c14220110/caregiver-backend/pkg/utils"
	"github.com/c14220110/caregiver-backend/ws"
)

type recordingPublisher struct {
	mu     sync.Mutex
	events []ws.Event
}

func (p *recordingPublisher) Publish(ev ws.Event) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, ev)
}

func (p *recordingPublisher) types() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]string, len(p.events))
	for i, ev := range p.events {
		out[i] = ev.Type
	}
	return out
}

var (
	alice = models.Author{Username: "alice", Name: "Alice"}
	bob   = models.Author{Username: "bob", Name: "Bob"}
)

func newTestService(t *testing.T) (*CaregiverService, docstore.Store, *recordingPublisher) {
	t.Helper()
	store := docstore.NewMemoryStore()
	accounts := accountServices.NewAccountService(store)
	require.NoError(t, accounts.Register(context.Background(), accountModels.Account{
		Username: "alice", DisplayName: "Alice", Role: utils.RoleCaregiver, Pronouns: "she/her",
	}, "pw"))

	pub := &recordingPublisher{}
	svc := NewCaregiverService(store, docstore.NewListEditor(store), accounts, pub, logger.Discard())
	svc.now = func() time.Time { return time.Date(2025, 10, 27, 9, 0, 0, 0, time.UTC) }
	return svc, store, pub
}

func TestRecordNote(t *testing.T) {
	svc, store, pub := newTestService(t)
	ctx := context.Background()

	id, err := svc.RecordNote(ctx, alice, models.NoteRequest{PatientName: "John", Note: " minum obat tepat waktu "})
	require.NoError(t, err)
	assert.NotEmpty(t, id)

	items, err := svc.Lists.Items(ctx, summary.CollectionCaregiverNotes, "John", "notes")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, id, items[0]["id"])
	assert.Equal(t, "Alice", items[0]["caregiver"])
	assert.Equal(t, "minum obat tepat waktu", items[0]["note"])
	assert.Equal(t, "2025-10-27T09:00:00", items[0]["timestamp"])
	assert.Equal(t, []string{ws.EventNoteRecorded}, pub.types())

	// note langsung terbaca oleh summary caregiver lain
	sum, err := summary.NewShiftSummaryService(store, logger.Discard(), false).
		BuildShiftSummary(ctx, "John", time.Date(2025, 10, 27, 14, 0, 0, 0, time.UTC), "Bob")
	require.NoError(t, err)
	require.Len(t, sum.CaregiverNotes, 1)
	assert.Equal(t, "Alice", sum.CaregiverNotes[0].Caregiver)
}

func TestRecordNoteValidation(t *testing.T) {
	svc, _, pub := newTestService(t)
	ctx := context.Background()
	var verr *summary.ValidationError

	_, err := svc.RecordNote(ctx, alice, models.NoteRequest{PatientName: "John"})
	assert.ErrorAs(t, err, &verr)
	_, err = svc.RecordNote(ctx, alice, models.NoteRequest{PatientName: "John", Note: "x", Timestamp: "besok"})
	assert.ErrorAs(t, err, &verr)
	assert.Empty(t, pub.types())
}

func TestEditAndDeleteOnlyByAuthor(t *testing.T) {
	svc, _, pub := newTestService(t)
	ctx := context.Background()

	id, err := svc.RecordNote(ctx, alice, models.NoteRequest{PatientName: "John", Note: "awal"})
	require.NoError(t, err)

	_, err = svc.EditNote(ctx, bob, id, models.NoteRequest{PatientName: "John", Note: "diubah bob"})
	assert.ErrorIs(t, err, ErrNotNoteAuthor)

	edited, err := svc.EditNote(ctx, models.Author{Username: "alice", Name: "alice "}, id, models.NoteRequest{PatientName: "John", Note: "diubah"})
	require.NoError(t, err)
	assert.Equal(t, "diubah", edited.Note)
	assert.Equal(t, "2025-10-27T09:00:00", edited.EditedAt)

	_, err = svc.EditNote(ctx, alice, "tidak-ada", models.NoteRequest{PatientName: "John", Note: "x"})
	assert.ErrorIs(t, err, ErrNoteNotFound)

	assert.ErrorIs(t, svc.DeleteNote(ctx, bob, "John", id), ErrNotNoteAuthor)
	require.NoError(t, svc.DeleteNote(ctx, alice, "John", id))
	assert.ErrorIs(t, svc.DeleteNote(ctx, alice, "John", id), ErrNoteNotFound)

	assert.Equal(t, []string{ws.EventNoteRecorded, ws.EventNoteEdited, ws.EventNoteDeleted}, pub.types())
}

func TestRecordShiftValue(t *testing.T) {
	svc, store, pub := newTestService(t)
	ctx := context.Background()

	saved, err := svc.RecordShiftValue(ctx, alice, models.ShiftRecordRequest{
		PatientName: "John", Category: summary.CategoryCaregiverInCharge, Value: "Alice", Timestamp: "2025-10-27T03:00:00",
	})
	require.NoError(t, err)
	// 03:00 masih termasuk shift malam 26 Oktober
	assert.Equal(t, 897, saved.ShiftNumber)
	assert.Equal(t, "John-shift-897", saved.DocID)

	doc, ok, err := store.Get(ctx, summary.CategoryCaregiverInCharge, "John-shift-897")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "Alice", doc["value"])
	assert.Equal(t, "she/her", doc[summary.PronounsField])
	assert.Equal(t, "Alice", doc["recorded_by"])

	// merge: field lain tidak hilang
	require.NoError(t, store.Set(ctx, summary.CategoryMeds, "John-shift-897", docstore.Document{"details": "setelah makan"}, false))
	_, err = svc.RecordShiftValue(ctx, alice, models.ShiftRecordRequest{
		PatientName: "John", Category: summary.CategoryMeds, Value: "Paracetamol 500mg", Timestamp: "2025-10-27T04:00:00",
	})
	require.NoError(t, err)
	doc, _, err = store.Get(ctx, summary.CategoryMeds, "John-shift-897")
	require.NoError(t, err)
	assert.Equal(t, "setelah makan", doc["details"])
	assert.Equal(t, "Paracetamol 500mg", doc["value"])

	sum, err := summary.NewShiftSummaryService(store, logger.Discard(), false).
		BuildShiftSummary(ctx, "John", time.Date(2025, 10, 27, 7, 0, 0, 0, time.UTC), "")
	require.NoError(t, err)
	assert.Equal(t, "Alice", sum.PreviousShift.CaregiverInCharge)
	assert.Equal(t, "she/her", sum.PreviousShift.CaregiverInChargePronouns)
	assert.Equal(t, "Paracetamol 500mg", sum.PreviousShift.Meds)

	assert.Equal(t, []string{ws.EventShiftRecord, ws.EventShiftRecord}, pub.types())
}

func TestRecordShiftValueValidation(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()
	var verr *summary.ValidationError

	_, err := svc.RecordShiftValue(ctx, alice, models.ShiftRecordRequest{PatientName: "John", Category: "mood", Value: "ok"})
	assert.ErrorAs(t, err, &verr)
	_, err = svc.RecordShiftValue(ctx, alice, models.ShiftRecordRequest{PatientName: "John", Category: summary.CategoryHR})
	assert.ErrorAs(t, err, &verr)

	// akun tidak terdaftar: record tetap tersimpan tanpa pronouns
	saved, err := svc.RecordShiftValue(ctx, bob, models.ShiftRecordRequest{PatientName: "John", Category: summary.CategoryCaregiverInCharge, Value: "Bob"})
	require.NoError(t, err)
	assert.Equal(t, "John-shift-898", saved.DocID)
}

func TestCareInstructions(t *testing.T) {
	svc, store, _ := newTestService(t)
	ctx := context.Background()

	list, err := svc.CareInstructions(ctx, "John")
	require.NoError(t, err)
	assert.Empty(t, list)

	require.NoError(t, store.Set(ctx, "care-instructions", "John", docstore.Document{"instructions": []any{
		map[string]any{"id": "1", "instruction": "Beri air hangat sebelum tidur", "added_by": "Rose", "timestamp": "2025-10-20T20:00:00"},
	}}, false))
	list, err = svc.CareInstructions(ctx, "John")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Rose", list[0].AddedBy)

	_, err = svc.CareInstructions(ctx, " ")
	var verr *summary.ValidationError
	assert.ErrorAs(t, err, &verr)
}
