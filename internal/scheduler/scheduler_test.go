package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/AgendlyHQ/booking-scheduler/internal/models"
)

// ------------------------------
// fakes
// ------------------------------

type fakeStore struct {
	messages map[uint]*models.ScheduledMessage
	display  map[uint]DueMessage

	fetchErr error
	markErr  map[uint]error
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		messages: map[uint]*models.ScheduledMessage{},
		display:  map[uint]DueMessage{},
		markErr:  map[uint]error{},
	}
}

func (s *fakeStore) add(id uint, kind models.MessageKind, sendAt time.Time, email string) {
	s.messages[id] = &models.ScheduledMessage{
		ID:     id,
		Kind:   kind,
		SendAt: sendAt,
		Status: models.StatusPending,
	}
	s.display[id] = DueMessage{
		ID:          id,
		Kind:        kind,
		SendAt:      sendAt,
		ClientName:  "Client",
		ClientEmail: email,
		StartTime:   sendAt.Add(time.Hour),
		AdminName:   "Jane",
	}
}

func (s *fakeStore) FetchDue(_ context.Context, kind models.MessageKind, now time.Time) ([]DueMessage, error) {
	if s.fetchErr != nil {
		return nil, s.fetchErr
	}
	var due []DueMessage
	for id, msg := range s.messages {
		if msg.Kind == kind && msg.Status == models.StatusPending && !msg.SendAt.After(now) {
			due = append(due, s.display[id])
		}
	}
	return due, nil
}

func (s *fakeStore) MarkStatus(_ context.Context, id uint, status models.MessageStatus) error {
	if err := s.markErr[id]; err != nil {
		return err
	}
	s.messages[id].Status = status
	return nil
}

type fakeMailer struct {
	sent    []string
	failFor map[string]bool
}

func (m *fakeMailer) Send(to, subject, body string) error {
	if m.failFor[to] {
		return errors.New("smtp unavailable")
	}
	m.sent = append(m.sent, to)
	return nil
}

func newScheduler(store Store, mailer *fakeMailer) *Scheduler {
	return New(store, mailer, zap.NewNop(), models.KindReminder, ReminderInterval)
}

// ------------------------------
// tests
// ------------------------------

func TestTick_SendsAndMarksDueMessages(t *testing.T) {
	store := newFakeStore()
	past := time.Now().UTC().Add(-time.Minute)
	store.add(1, models.KindReminder, past, "a@example.com")
	store.add(2, models.KindReminder, past, "b@example.com")

	mailer := &fakeMailer{}
	s := newScheduler(store, mailer)

	s.Tick(context.Background())

	if len(mailer.sent) != 2 {
		t.Fatalf("expected 2 sends, got %d", len(mailer.sent))
	}
	if store.messages[1].Status != models.StatusSent || store.messages[2].Status != models.StatusSent {
		t.Fatal("both messages must be marked sent")
	}
}

func TestTick_SkipsFutureAndForeignKinds(t *testing.T) {
	store := newFakeStore()
	now := time.Now().UTC()
	store.add(1, models.KindReminder, now.Add(time.Hour), "future@example.com")
	store.add(2, models.KindThankYou, now.Add(-time.Hour), "other-kind@example.com")

	mailer := &fakeMailer{}
	s := newScheduler(store, mailer)

	s.Tick(context.Background())

	if len(mailer.sent) != 0 {
		t.Fatalf("expected no sends, got %v", mailer.sent)
	}
	if store.messages[1].Status != models.StatusPending || store.messages[2].Status != models.StatusPending {
		t.Fatal("untouched messages must stay pending")
	}
}

func TestTick_FailureIsIsolatedPerRow(t *testing.T) {
	store := newFakeStore()
	past := time.Now().UTC().Add(-time.Minute)
	store.add(1, models.KindReminder, past, "broken@example.com")
	store.add(2, models.KindReminder, past, "fine@example.com")

	mailer := &fakeMailer{failFor: map[string]bool{"broken@example.com": true}}
	s := newScheduler(store, mailer)

	s.Tick(context.Background())

	if store.messages[1].Status != models.StatusFailed {
		t.Fatalf("failed send must be marked failed, got %s", store.messages[1].Status)
	}
	if store.messages[2].Status != models.StatusSent {
		t.Fatalf("other row must still be processed, got %s", store.messages[2].Status)
	}
}

func TestTick_TerminalStatusesAreNeverRetried(t *testing.T) {
	store := newFakeStore()
	past := time.Now().UTC().Add(-time.Minute)
	store.add(1, models.KindReminder, past, "once@example.com")
	store.add(2, models.KindReminder, past, "broken@example.com")

	mailer := &fakeMailer{failFor: map[string]bool{"broken@example.com": true}}
	s := newScheduler(store, mailer)

	s.Tick(context.Background())
	attemptsAfterFirst := len(mailer.sent)

	// Second and third passes: nothing pending remains, nothing is retried.
	s.Tick(context.Background())
	s.Tick(context.Background())

	if len(mailer.sent) != attemptsAfterFirst {
		t.Fatalf("terminal messages were re-attempted: %v", mailer.sent)
	}
	if store.messages[2].Status != models.StatusFailed {
		t.Fatal("failed stays failed")
	}
}

func TestTick_FetchErrorAbortsPass(t *testing.T) {
	store := newFakeStore()
	past := time.Now().UTC().Add(-time.Minute)
	store.add(1, models.KindReminder, past, "a@example.com")
	store.fetchErr = errors.New("db down")

	mailer := &fakeMailer{}
	s := newScheduler(store, mailer)

	s.Tick(context.Background())

	if len(mailer.sent) != 0 {
		t.Fatal("no sends may happen when the due query fails")
	}
	if store.messages[1].Status != models.StatusPending {
		t.Fatal("message must stay pending for the next pass")
	}
}

func TestTick_MarkErrorDoesNotBlockOtherRows(t *testing.T) {
	store := newFakeStore()
	past := time.Now().UTC().Add(-time.Minute)
	store.add(1, models.KindReminder, past, "a@example.com")
	store.add(2, models.KindReminder, past, "b@example.com")
	store.markErr[1] = errors.New("update failed")

	mailer := &fakeMailer{}
	s := newScheduler(store, mailer)

	s.Tick(context.Background())

	if len(mailer.sent) != 2 {
		t.Fatalf("both rows must be attempted, got %d sends", len(mailer.sent))
	}
	if store.messages[2].Status != models.StatusSent {
		t.Fatal("second row must be marked despite the first mark failing")
	}
}

func TestRun_StopsOnContextCancel(t *testing.T) {
	store := newFakeStore()
	mailer := &fakeMailer{}
	s := New(store, mailer, zap.NewNop(), models.KindReminder, 10*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		s.Run(ctx)
		close(done)
	}()

	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Run must return after cancellation")
	}
}
