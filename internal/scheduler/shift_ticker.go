package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	summary "github.com/c14220110/caregiver-backend/internal/shiftreport/services"
	"github.com/c14220110/caregiver-backend/ws"
)

// ShiftStartSpec: awal shift pagi, sore, dan malam.
const ShiftStartSpec = "0 6,14,22 * * *"

// ShiftStarted adalah payload event shift_started.
type ShiftStarted struct {
	ShiftNumber int    `json:"shift_number"`
	StartedAt   string `json:"started_at"`
}

// ShiftTicker mengirim event shift_started ke websocket setiap awal shift,
// supaya dashboard bisa meminta summary baru.
type ShiftTicker struct {
	cron      *cron.Cron
	schedule  cron.Schedule
	publisher ws.Publisher
	logger    *slog.Logger
	now       func() time.Time
}

// NewShiftTicker memakai UTC, sama dengan timestamp naive di store.
func NewShiftTicker(publisher ws.Publisher, logger *slog.Logger) (*ShiftTicker, error) {
	schedule, err := cron.ParseStandard(ShiftStartSpec)
	if err != nil {
		return nil, fmt.Errorf("jadwal shift tidak valid: %w", err)
	}
	return &ShiftTicker{
		cron:      cron.New(cron.WithLocation(time.UTC)),
		schedule:  schedule,
		publisher: publisher,
		logger:    logger,
		now:       time.Now,
	}, nil
}

func (t *ShiftTicker) Start() {
	t.cron.Schedule(t.schedule, cron.FuncJob(t.tick))
	t.cron.Start()
	t.logger.Info("shift ticker berjalan", "spec", ShiftStartSpec, "next", t.Next(t.now()).Format(time.RFC3339))
}

// Stop menghentikan ticker dan menunggu tick yang sedang berjalan.
func (t *ShiftTicker) Stop(ctx context.Context) {
	select {
	case <-t.cron.Stop().Done():
	case <-ctx.Done():
	}
}

// Next mengembalikan awal shift berikutnya setelah from.
func (t *ShiftTicker) Next(from time.Time) time.Time {
	return t.schedule.Next(from.UTC())
}

func (t *ShiftTicker) tick() {
	now := t.now().UTC().Truncate(time.Minute)
	ev := ShiftStarted{
		ShiftNumber: summary.ShiftNumber(now),
		StartedAt:   summary.FormatTimestamp(now),
	}
	t.logger.Info("shift dimulai", "shift_number", ev.ShiftNumber)
	t.publisher.Publish(ws.Event{
		Type:    ws.EventShiftStarted,
		Payload: ev,
		At:      ev.StartedAt,
	})
}
