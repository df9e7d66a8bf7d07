package services

import (
	"context"
	"log/slog"
	"sort"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/c14220110/caregiver-backend/internal/shiftreport/models"
	"github.com/c14220110/caregiver-backend/pkg/storage/docstore"
)

const (
	// NoteWindow: note yang lebih tua dari ini terhadap waktu referensi tidak ditampilkan.
	NoteWindow = 7 * 24 * time.Hour
	// MaxNotes per daftar note di summary.
	MaxNotes = 3
)

type ShiftSummaryService struct {
	Store  docstore.Store
	Logger *slog.Logger
	// TolerateFetchErrors: jika true, kegagalan fetch per kategori diganti nilai kosong
	// dan hanya dicatat sebagai warning. Default false: satu fetch gagal menggagalkan request.
	TolerateFetchErrors bool
}

func NewShiftSummaryService(store docstore.Store, logger *slog.Logger, tolerateFetchErrors bool) *ShiftSummaryService {
	return &ShiftSummaryService{Store: store, Logger: logger, TolerateFetchErrors: tolerateFetchErrors}
}

// HandleRequest memvalidasi request lalu membangun summary.
func (s *ShiftSummaryService) HandleRequest(ctx context.Context, req models.SummaryRequest) (*models.ShiftStartSummary, error) {
	patient := req.PatientID()
	if patient == "" || req.CurrentDate == "" {
		return nil, &ValidationError{Message: "patient_name and current_date are required"}
	}
	ref, err := ParseReferenceTime(req.CurrentDate)
	if err != nil {
		return nil, err
	}
	return s.BuildShiftSummary(ctx, patient, ref, req.CaregiverTakingOver)
}

// BuildShiftSummary merangkum shift sebelumnya, note terbaru, dan janji temu hari ini
// untuk caregiver yang akan mulai shift pada waktu ref.
func (s *ShiftSummaryService) BuildShiftSummary(ctx context.Context, patientID string, ref time.Time, incomingCaregiver string) (*models.ShiftStartSummary, error) {
	if patientID == "" || ref.IsZero() {
		return nil, &ValidationError{Message: "patient_name and current_date are required"}
	}

	current := ShiftNumber(ref)
	prev := PreviousShiftNumber(current)
	prevDocID := ShiftDocID(patientID, prev)

	records := make([]docstore.Document, len(RecordCategories))
	var parentDoc, caregiverDoc, apptDoc docstore.Document

	g, gctx := errgroup.WithContext(ctx)
	for i, category := range RecordCategories {
		i, category := i, category
		g.Go(func() error {
			doc, err := s.fetch(gctx, category, prevDocID)
			records[i] = doc
			return err
		})
	}
	g.Go(func() (err error) {
		parentDoc, err = s.fetch(gctx, CollectionParentNotes, patientID)
		return err
	})
	g.Go(func() (err error) {
		caregiverDoc, err = s.fetch(gctx, CollectionCaregiverNotes, patientID)
		return err
	})
	g.Go(func() (err error) {
		apptDoc, err = s.fetch(gctx, CollectionAppointments, patientID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	values := make(map[string]string, len(RecordCategories))
	for i, category := range RecordCategories {
		values[category] = ExtractRecordValue(records[i])
	}

	var pronouns string
	if cg := records[0]; cg != nil {
		if p, ok := cg[PronounsField].(string); ok {
			pronouns = p
		}
	}

	summary := &models.ShiftStartSummary{
		AppointmentsScheduledToday: AppointmentsOnDay(apptDoc, ref),
		CaregiverNotes:             RecentCaregiverNotes(caregiverDoc, ref, incomingCaregiver),
		ParentNotes:                RecentParentNotes(parentDoc, ref),
		PreviousShift: models.PreviousShift{
			CaregiverInCharge:         values[CategoryCaregiverInCharge],
			CaregiverInChargePronouns: pronouns,
			AnythingUnusual:           values[CategoryAnythingUnusual],
			ShiftSummary:              values[CategoryShiftSummary],
			Meds:                      values[CategoryMeds],
			Food:                      values[CategoryFood],
			HR:                        values[CategoryHR],
			Movement:                  values[CategoryMovement],
		},
		Meta: models.SummaryMeta{
			PatientName:         patientID,
			CurrentDate:         FormatTimestamp(ref),
			CurrentShiftNumber:  current,
			PreviousShiftNumber: prev,
		},
	}

	s.Logger.Debug("shift summary dibangun",
		"patient_name", patientID,
		"current_shift", current,
		"previous_shift_doc", prevDocID,
		"caregiver_notes", len(summary.CaregiverNotes),
		"parent_notes", len(summary.ParentNotes),
		"appointments", len(summary.AppointmentsScheduledToday),
	)
	return summary, nil
}

// fetch membaca satu dokumen; dokumen tidak ada menghasilkan nil tanpa error.
func (s *ShiftSummaryService) fetch(ctx context.Context, collection, id string) (docstore.Document, error) {
	doc, ok, err := s.Store.Get(ctx, collection, id)
	if err != nil {
		if s.TolerateFetchErrors {
			s.Logger.Warn("fetch gagal, memakai nilai kosong", "collection", collection, "doc_id", id, "error", err)
			return nil, nil
		}
		return nil, &FetchError{Collection: collection, DocID: id, Err: err}
	}
	if !ok {
		return nil, nil
	}
	return doc, nil
}

// withinWindow: ref - ts <= 7 hari. Note dari masa depan (selisih negatif) ikut lolos.
func withinWindow(ts, ref time.Time) bool {
	return ref.Sub(ts) <= NoteWindow
}

type datedParentNote struct {
	at   time.Time
	note models.ParentNote
}

type datedCaregiverNote struct {
	at   time.Time
	note models.CaregiverNote
}

// RecentParentNotes: maksimal MaxNotes note dalam jendela 7 hari, terbaru lebih dulu.
func RecentParentNotes(doc docstore.Document, ref time.Time) []models.ParentNote {
	var dated []datedParentNote
	for _, item := range docstore.ItemsOf(doc, "notes") {
		ts := ParseNoteTime(Stringify(item["timestamp"]))
		if !withinWindow(ts, ref) {
			continue
		}
		dated = append(dated, datedParentNote{at: ts, note: models.ParentNote{
			Timestamp: FormatTimestamp(ts),
			Note:      Stringify(item["note"]),
		}})
	}
	sort.SliceStable(dated, func(i, j int) bool { return dated[i].at.After(dated[j].at) })

	out := make([]models.ParentNote, 0, MaxNotes)
	for i := 0; i < len(dated) && i < MaxNotes; i++ {
		out = append(out, dated[i].note)
	}
	return out
}

// RecentCaregiverNotes sama seperti RecentParentNotes, tetapi note milik incomingCaregiver
// (case-insensitive) tidak ditampilkan kembali ke penulisnya.
func RecentCaregiverNotes(doc docstore.Document, ref time.Time, incomingCaregiver string) []models.CaregiverNote {
	incoming := strings.TrimSpace(incomingCaregiver)

	var dated []datedCaregiverNote
	for _, item := range docstore.ItemsOf(doc, "notes") {
		author := Stringify(item["caregiver"])
		if author != "" && incoming != "" && strings.EqualFold(strings.TrimSpace(author), incoming) {
			continue
		}
		ts := ParseNoteTime(Stringify(item["timestamp"]))
		if !withinWindow(ts, ref) {
			continue
		}
		dated = append(dated, datedCaregiverNote{at: ts, note: models.CaregiverNote{
			Timestamp: FormatTimestamp(ts),
			Caregiver: author,
			Note:      Stringify(item["note"]),
		}})
	}
	sort.SliceStable(dated, func(i, j int) bool { return dated[i].at.After(dated[j].at) })

	out := make([]models.CaregiverNote, 0, MaxNotes)
	for i := 0; i < len(dated) && i < MaxNotes; i++ {
		out = append(out, dated[i].note)
	}
	return out
}

// AppointmentsOnDay: janji temu dengan tanggal kalender sama dengan ref, urut jam.
func AppointmentsOnDay(doc docstore.Document, ref time.Time) []models.Appointment {
	type dated struct {
		at   time.Time
		appt models.Appointment
	}
	ry, rm, rd := ref.Date()

	var list []dated
	for _, item := range docstore.ItemsOf(doc, "appointments") {
		ts := ParseNoteTime(Stringify(item["appointment_date"]))
		if y, m, d := ts.Date(); y != ry || m != rm || d != rd {
			continue
		}
		list = append(list, dated{at: ts, appt: models.Appointment{
			AppointmentDate: FormatTimestamp(ts),
			Type:            Stringify(item["type"]),
			Details:         Stringify(item["details"]),
			Where:           Stringify(item["where"]),
		}})
	}
	sort.SliceStable(list, func(i, j int) bool { return list[i].at.Before(list[j].at) })

	out := make([]models.Appointment, 0, len(list))
	for _, a := range list {
		out = append(out, a.appt)
	}
	return out
}
