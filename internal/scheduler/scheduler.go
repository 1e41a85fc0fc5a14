package scheduler

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/AgendlyHQ/booking-scheduler/internal/models"
	"github.com/AgendlyHQ/booking-scheduler/internal/notifier"
)

// Poll cadence per message kind. Reminders are time-sensitive; thank-yous
// can drift a few minutes.
const (
	ReminderInterval = 1 * time.Minute
	ThankYouInterval = 10 * time.Minute
)

// DueMessage is a pending scheduled message joined with the display fields
// of its (still live) appointment.
type DueMessage struct {
	ID      uint
	Kind    models.MessageKind
	SendAt  time.Time
	Message string

	ClientName  string
	ClientEmail string
	StartTime   time.Time
	AdminName   string
}

// Store is the slice of the store gateway the scheduler polls.
type Store interface {
	FetchDue(ctx context.Context, kind models.MessageKind, now time.Time) ([]DueMessage, error)
	MarkStatus(ctx context.Context, id uint, status models.MessageStatus) error
}

// Scheduler runs one polling loop for a single message kind. Ticks are
// synchronous inside the loop goroutine, so a slow tick delays the next one
// instead of overlapping it.
type Scheduler struct {
	store    Store
	mailer   notifier.Mailer
	log      *zap.Logger
	kind     models.MessageKind
	interval time.Duration
}

func New(store Store, mailer notifier.Mailer, log *zap.Logger, kind models.MessageKind, interval time.Duration) *Scheduler {
	return &Scheduler{
		store:    store,
		mailer:   mailer,
		log:      log,
		kind:     kind,
		interval: interval,
	}
}

// Run polls until ctx is cancelled.
func (s *Scheduler) Run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.log.Info("scheduler started",
		zap.String("kind", string(s.kind)),
		zap.Duration("interval", s.interval),
	)

	for {
		select {
		case <-ctx.Done():
			s.log.Info("scheduler stopping", zap.String("kind", string(s.kind)))
			return
		case <-ticker.C:
			s.Tick(ctx)
		}
	}
}

// Tick performs one polling pass: fetch the due set, then send and mark each
// row individually. A send or mark failure is isolated to its row; a fetch
// failure aborts the whole pass. Every due row gets exactly one delivery
// attempt: sent and failed are both terminal.
func (s *Scheduler) Tick(ctx context.Context) {
	now := time.Now().UTC()

	due, err := s.store.FetchDue(ctx, s.kind, now)
	if err != nil {
		s.log.Error("fetching due messages failed",
			zap.Error(err),
			zap.String("kind", string(s.kind)),
		)
		return
	}

	for _, msg := range due {
		status := models.StatusSent

		subject, body := notifier.ScheduledBody(msg.Kind, msg.Message, msg.ClientName, msg.AdminName, msg.StartTime)
		if err := s.mailer.Send(msg.ClientEmail, subject, body); err != nil {
			s.log.Error("send failed",
				zap.Error(err),
				zap.Uint("message_id", msg.ID),
				zap.String("kind", string(s.kind)),
			)
			status = models.StatusFailed
		}

		if err := s.store.MarkStatus(ctx, msg.ID, status); err != nil {
			s.log.Error("marking message status failed",
				zap.Error(err),
				zap.Uint("message_id", msg.ID),
				zap.String("status", string(status)),
			)
		}
	}
}
