package services

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	commonModels "github.com/c14220110/caregiver-backend/internal/common/models"
	"github.com/c14220110/caregiver-backend/internal/parent/models"
	summary "github.com/c14220110/caregiver-backend/internal/shiftreport/services"
	"github.com/c14220110/caregiver-backend/pkg/storage/docstore"
	"github.com/c14220110/caregiver-backend/ws"
)

// DefaultUpcomingDays dipakai jika parameter days tidak diisi.
const DefaultUpcomingDays = 7

// ParentService menangani input dari keluarga: note, instruksi perawatan, janji temu.
type ParentService struct {
	Lists     *docstore.ListEditor
	Publisher ws.Publisher
	Logger    *slog.Logger
	now       func() time.Time
}

func NewParentService(lists *docstore.ListEditor, publisher ws.Publisher, logger *slog.Logger) *ParentService {
	return &ParentService{Lists: lists, Publisher: publisher, Logger: logger, now: time.Now}
}

func (s *ParentService) RecordNote(ctx context.Context, author string, req models.NoteRequest) (string, error) {
	patient := strings.TrimSpace(req.PatientName)
	text := strings.TrimSpace(req.Note)
	if patient == "" || text == "" {
		return "", &summary.ValidationError{Message: "patient_name and note are required"}
	}
	ts, err := summary.ParseEntryTime(req.Timestamp, s.now())
	if err != nil {
		return "", err
	}

	item := map[string]any{
		"id":        uuid.NewString(),
		"timestamp": summary.FormatTimestamp(ts),
		"note":      text,
		"author":    author,
	}
	if err := s.Lists.Append(ctx, summary.CollectionParentNotes, patient, "notes", item); err != nil {
		return "", fmt.Errorf("gagal menyimpan note keluarga: %w", err)
	}
	s.Logger.Info("note keluarga dicatat", "patient_name", patient, "author", author)
	s.publish(ws.EventNoteRecorded, patient, item)
	return item["id"].(string), nil
}

func (s *ParentService) AddCareInstruction(ctx context.Context, author string, req models.CareInstructionRequest) (*commonModels.CareInstruction, error) {
	patient := strings.TrimSpace(req.PatientName)
	text := strings.TrimSpace(req.Instruction)
	if patient == "" || text == "" {
		return nil, &summary.ValidationError{Message: "patient_name and instruction are required"}
	}
	ci := commonModels.CareInstruction{
		ID:          uuid.NewString(),
		Instruction: text,
		AddedBy:     author,
		Timestamp:   summary.FormatTimestamp(s.now().UTC()),
	}
	err := s.Lists.Append(ctx, commonModels.CollectionCareInstructions, patient, "instructions", map[string]any{
		"id":          ci.ID,
		"instruction": ci.Instruction,
		"added_by":    ci.AddedBy,
		"timestamp":   ci.Timestamp,
	})
	if err != nil {
		return nil, fmt.Errorf("gagal menyimpan care instruction: %w", err)
	}
	return &ci, nil
}

// AddAppointment menyimpan janji temu; appointment_date harus bisa di-parse.
func (s *ParentService) AddAppointment(ctx context.Context, req models.AppointmentRequest) (*models.StoredAppointment, error) {
	patient := strings.TrimSpace(req.PatientName)
	if patient == "" || strings.TrimSpace(req.AppointmentDate) == "" {
		return nil, &summary.ValidationError{Message: "patient_name and appointment_date are required"}
	}
	at := summary.ParseNoteTime(req.AppointmentDate)
	if at.Equal(summary.Epoch) {
		return nil, &summary.ValidationError{Message: "appointment_date must be ISO-like, e.g. '2025-10-27T11:00:00'"}
	}

	appt := models.StoredAppointment{
		ID:              uuid.NewString(),
		AppointmentDate: summary.FormatTimestamp(at),
		Type:            strings.TrimSpace(req.Type),
		Details:         strings.TrimSpace(req.Details),
		Where:           strings.TrimSpace(req.Where),
	}
	err := s.Lists.Append(ctx, summary.CollectionAppointments, patient, "appointments", map[string]any{
		"id":               appt.ID,
		"appointment_date": appt.AppointmentDate,
		"type":             appt.Type,
		"details":          appt.Details,
		"where":            appt.Where,
	})
	if err != nil {
		return nil, fmt.Errorf("gagal menyimpan janji temu: %w", err)
	}
	s.publish(ws.EventAppointment, patient, appt)
	return &appt, nil
}

// UpcomingAppointments: janji temu dari sekarang sampai days hari ke depan, urut waktu.
func (s *ParentService) UpcomingAppointments(ctx context.Context, patientName string, days int) ([]models.StoredAppointment, error) {
	patient := strings.TrimSpace(patientName)
	if patient == "" {
		return nil, &summary.ValidationError{Message: "patient_name is required"}
	}
	if days <= 0 {
		days = DefaultUpcomingDays
	}
	items, err := s.Lists.Items(ctx, summary.CollectionAppointments, patient, "appointments")
	if err != nil {
		return nil, err
	}

	from := s.now().UTC()
	from = time.Date(from.Year(), from.Month(), from.Day(), from.Hour(), from.Minute(), from.Second(), 0, time.UTC)
	until := from.Add(time.Duration(days) * 24 * time.Hour)

	type dated struct {
		at   time.Time
		appt models.StoredAppointment
	}
	var list []dated
	for _, it := range items {
		at := summary.ParseNoteTime(summary.Stringify(it["appointment_date"]))
		if at.Before(from) || at.After(until) {
			continue
		}
		list = append(list, dated{at: at, appt: models.StoredAppointment{
			ID:              summary.Stringify(it["id"]),
			AppointmentDate: summary.FormatTimestamp(at),
			Type:            summary.Stringify(it["type"]),
			Details:         summary.Stringify(it["details"]),
			Where:           summary.Stringify(it["where"]),
		}})
	}
	sort.SliceStable(list, func(i, j int) bool { return list[i].at.Before(list[j].at) })

	out := make([]models.StoredAppointment, 0, len(list))
	for _, d := range list {
		out = append(out, d.appt)
	}
	return out, nil
}

func (s *ParentService) publish(eventType, patient string, payload interface{}) {
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
