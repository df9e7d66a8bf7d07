package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	accountServices "github.com/c14220110/caregiver-backend/internal/account/services"
	"github.com/c14220110/caregiver-backend/internal/caregiver/models"
	commonModels "github.com/c14220110/caregiver-backend/internal/common/models"
	summary "github.com/c14220110/caregiver-backend/internal/shiftreport/services"
	"github.com/c14220110/caregiver-backend/pkg/storage/docstore"
	"github.com/c14220110/caregiver-backend/ws"
)

var (
	ErrNoteNotFound  = errors.New("note not found")
	ErrNotNoteAuthor = errors.New("only the author can change this note")
)

type CaregiverService struct {
	Store     docstore.Store
	Lists     *docstore.ListEditor
	Accounts  *accountServices.AccountService
	Publisher ws.Publisher
	Logger    *slog.Logger
	now       func() time.Time
}

func NewCaregiverService(store docstore.Store, lists *docstore.ListEditor, accounts *accountServices.AccountService, publisher ws.Publisher, logger *slog.Logger) *CaregiverService {
	return &CaregiverService{
		Store:     store,
		Lists:     lists,
		Accounts:  accounts,
		Publisher: publisher,
		Logger:    logger,
		now:       time.Now,
	}
}

// RecordNote menambahkan note caregiver untuk pasien dan mengembalikan id note.
func (s *CaregiverService) RecordNote(ctx context.Context, author models.Author, req models.NoteRequest) (string, error) {
	patient := strings.TrimSpace(req.PatientName)
	text := strings.TrimSpace(req.Note)
	if patient == "" || text == "" {
		return "", &summary.ValidationError{Message: "patient_name and note are required"}
	}
	ts, err := summary.ParseEntryTime(req.Timestamp, s.now())
	if err != nil {
		return "", err
	}

	note := models.Note{
		ID:        uuid.NewString(),
		Timestamp: summary.FormatTimestamp(ts),
		Caregiver: author.Name,
		Note:      text,
	}
	if err := s.Lists.Append(ctx, summary.CollectionCaregiverNotes, patient, "notes", noteItem(note)); err != nil {
		return "", fmt.Errorf("gagal menyimpan note: %w", err)
	}

	s.Logger.Info("note caregiver dicatat", "patient_name", patient, "caregiver", author.Name, "note_id", note.ID)
	s.publish(ws.EventNoteRecorded, patient, note)
	return note.ID, nil
}

// EditNote mengganti isi note. Hanya penulis note yang boleh mengubah.
func (s *CaregiverService) EditNote(ctx context.Context, author models.Author, id string, req models.NoteRequest) (*models.Note, error) {
	patient := strings.TrimSpace(req.PatientName)
	text := strings.TrimSpace(req.Note)
	if patient == "" || text == "" {
		return nil, &summary.ValidationError{Message: "patient_name and note are required"}
	}

	var edited models.Note
	found, err := s.Lists.Update(ctx, summary.CollectionCaregiverNotes, patient, "notes", matchID(id), func(item map[string]any) error {
		if !isAuthor(item, author) {
			return ErrNotNoteAuthor
		}
		item["note"] = text
		item["edited_at"] = summary.FormatTimestamp(s.now().UTC())
		edited = itemNote(item)
		return nil
	})
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, ErrNoteNotFound
	}

	s.publish(ws.EventNoteEdited, patient, edited)
	return &edited, nil
}

// DeleteNote menghapus note milik author.
func (s *CaregiverService) DeleteNote(ctx context.Context, author models.Author, patientName, id string) error {
	patient := strings.TrimSpace(patientName)
	if patient == "" {
		return &summary.ValidationError{Message: "patient_name is required"}
	}
	found, err := s.Lists.Remove(ctx, summary.CollectionCaregiverNotes, patient, "notes", matchID(id), func(item map[string]any) error {
		if !isAuthor(item, author) {
			return ErrNotNoteAuthor
		}
		return nil
	})
	if err != nil {
		return err
	}
	if !found {
		return ErrNoteNotFound
	}

	s.publish(ws.EventNoteDeleted, patient, map[string]string{"id": id})
	return nil
}

// RecordShiftValue menulis satu kategori record ke dokumen shift yang memuat timestamp.
// Dokumen di-merge sehingga field lain (mis. details) tetap ada.
func (s *CaregiverService) RecordShiftValue(ctx context.Context, author models.Author, req models.ShiftRecordRequest) (*models.ShiftRecordSaved, error) {
	patient := strings.TrimSpace(req.PatientName)
	if patient == "" || req.Value == nil {
		return nil, &summary.ValidationError{Message: "patient_name and value are required"}
	}
	if !summary.IsRecordCategory(req.Category) {
		return nil, &summary.ValidationError{Message: fmt.Sprintf("unknown category %q", req.Category)}
	}
	ts, err := summary.ParseEntryTime(req.Timestamp, s.now())
	if err != nil {
		return nil, err
	}

	n := summary.ShiftNumber(ts)
	docID := summary.ShiftDocID(patient, n)
	doc := docstore.Document{
		"value":       req.Value,
		"recorded_by": author.Name,
		"timestamp":   summary.FormatTimestamp(ts),
	}
	if req.Category == summary.CategoryCaregiverInCharge {
		acc, err := s.Accounts.Get(ctx, author.Username)
		switch {
		case err == nil:
			doc[summary.PronounsField] = acc.Pronouns
		case errors.Is(err, accountServices.ErrAccountNotFound):
			s.Logger.Warn("akun caregiver tidak ditemukan, pronouns dikosongkan", "username", author.Username)
		default:
			return nil, err
		}
	}
	if err := s.Store.Set(ctx, req.Category, docID, doc, true); err != nil {
		return nil, fmt.Errorf("gagal menyimpan record %s: %w", req.Category, err)
	}

	saved := &models.ShiftRecordSaved{
		Category:    req.Category,
		DocID:       docID,
		ShiftNumber: n,
		RecordedBy:  author.Name,
		Timestamp:   summary.FormatTimestamp(ts),
	}
	s.publish(ws.EventShiftRecord, patient, saved)
	return saved, nil
}

// CareInstructions membaca instruksi perawatan yang ditulis keluarga.
func (s *CaregiverService) CareInstructions(ctx context.Context, patientName string) ([]commonModels.CareInstruction, error) {
	patient := strings.TrimSpace(patientName)
	if patient == "" {
		return nil, &summary.ValidationError{Message: "patient_name is required"}
	}
	items, err := s.Lists.Items(ctx, commonModels.CollectionCareInstructions, patient, "instructions")
	if err != nil {
		return nil, err
	}
	out := make([]commonModels.CareInstruction, 0, len(items))
	for _, it := range items {
		out = append(out, commonModels.CareInstruction{
			ID:          summary.Stringify(it["id"]),
			Instruction: summary.Stringify(it["instruction"]),
			AddedBy:     summary.Stringify(it["added_by"]),
			Timestamp:   summary.Stringify(it["timestamp"]),
		})
	}
	return out, nil
}

func (s *CaregiverService) publish(eventType, patient string, payload interface{}) {
	if s.Publisher == nil {
		return
	}
	s.Publisher.Publish(ws.Event{
		Type:        eventType,
		PatientName: patient,
		Payload:     payload,
		At:          summary.FormatTimestamp(s.now().UTC()),
	})
}

func matchID(id string) func(map[string]any) bool {
	return func(item map[string]any) bool { return id != "" && summary.Stringify(item["id"]) == id }
}

func isAuthor(item map[string]any, author models.Author) bool {
	return strings.EqualFold(strings.TrimSpace(summary.Stringify(item["caregiver"])), strings.TrimSpace(author.Name))
}

func noteItem(n models.Note) map[string]any {
	item := map[string]any{
		"id":        n.ID,
		"timestamp": n.Timestamp,
		"caregiver": n.Caregiver,
		"note":      n.Note,
	}
	if n.EditedAt != "" {
		item["edited_at"] = n.EditedAt
	}
	return item
}

func itemNote(item map[string]any) models.Note {
	return models.Note{
		ID:        summary.Stringify(item["id"]),
		Timestamp: summary.Stringify(item["timestamp"]),
		Caregiver: summary.Stringify(item["caregiver"]),
		Note:      summary.Stringify(item["note"]),
		EditedAt:  summary.Stringify(item["edited_at"]),
	}
}
