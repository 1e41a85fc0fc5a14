package cancellation

import (
	"context"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/AgendlyHQ/booking-scheduler/internal/httperr"
	"github.com/AgendlyHQ/booking-scheduler/internal/models"
	"github.com/AgendlyHQ/booking-scheduler/internal/notifier"
)

type fakeRepo struct {
	appointments map[uint]*models.Appointment
	cancelled    map[uint]*models.CancelledAppointment
}

func (f *fakeRepo) GetAdminBySlug(context.Context, string) (*models.Admin, error) {
	panic("not used")
}

func (f *fakeRepo) GetPageBySlug(context.Context, uint, string) (*models.BookingPage, error) {
	panic("not used")
}

func (f *fakeRepo) ReserveSlot(context.Context, *models.Appointment, []models.CustomFieldValue, *models.ScheduledMessage) error {
	panic("not used")
}

func (f *fakeRepo) ListBookedSlots(context.Context, uint, time.Time) ([]time.Time, error) {
	panic("not used")
}

func (f *fakeRepo) CancelAppointment(_ context.Context, appointmentID uint, adminID uint, now time.Time) (*models.CancelledAppointment, error) {
	ap, ok := f.appointments[appointmentID]
	if !ok || ap.AdminID != adminID {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	cancelled := &models.CancelledAppointment{
		ID:            ap.ID,
		AdminID:       ap.AdminID,
		BookingPageID: ap.BookingPageID,
		StartTime:     ap.StartTime,
		ClientName:    ap.ClientName,
		ClientEmail:   ap.ClientEmail,
		Details:       ap.Details,
		CancelledAt:   now,
	}
	delete(f.appointments, appointmentID)
	f.cancelled[appointmentID] = cancelled
	return cancelled, nil
}

type captureMailer struct {
	sent chan capturedMail
}

type capturedMail struct {
	To   string
	Body string
}

func (m *captureMailer) Send(to, subject, body string) error {
	m.sent <- capturedMail{To: to, Body: body}
	return nil
}

func fixture() (*fakeRepo, *models.Admin) {
	pageID := uint(10)
	repo := &fakeRepo{
		appointments: map[uint]*models.Appointment{
			1: {
				ID:            1,
				AdminID:       1,
				BookingPageID: &pageID,
				StartTime:     time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC),
				ClientName:    "A",
				ClientEmail:   "client@example.com",
				Details:       "first visit",
			},
		},
		cancelled: map[uint]*models.CancelledAppointment{},
	}
	admin := &models.Admin{ID: 1, Name: "Jane Doe", NotificationEmail: "jdoe@example.com"}
	return repo, admin
}

func TestCancel_MigratesAppointment(t *testing.T) {
	repo, admin := fixture()
	mailer := &captureMailer{sent: make(chan capturedMail, 10)}
	uc := NewCancel(repo, notifier.NewDispatcher(mailer, zap.NewNop()))

	cancelled, err := uc.Execute(context.Background(), admin, 1, "")
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	if _, stillActive := repo.appointments[1]; stillActive {
		t.Fatal("appointment must no longer be active")
	}
	if cancelled.ID != 1 || cancelled.ClientName != "A" || cancelled.Details != "first visit" {
		t.Fatalf("fields must carry over: %+v", cancelled)
	}
	if cancelled.BookingPageID == nil || *cancelled.BookingPageID != 10 {
		t.Fatal("page linkage must be preserved")
	}
	if cancelled.CancelledAt.IsZero() {
		t.Fatal("cancellation timestamp must be set")
	}
}

func TestCancel_ForeignAndMissingAreConflated(t *testing.T) {
	repo, admin := fixture()
	mailer := &captureMailer{sent: make(chan capturedMail, 10)}
	uc := NewCancel(repo, notifier.NewDispatcher(mailer, zap.NewNop()))

	other := &models.Admin{ID: 2, Name: "Other"}

	_, foreign := uc.Execute(context.Background(), other, 1, "")
	_, missing := uc.Execute(context.Background(), admin, 999, "")

	if !httperr.IsBusiness(foreign, "appointment_not_found") {
		t.Fatalf("foreign: expected appointment_not_found, got %v", foreign)
	}
	if !httperr.IsBusiness(missing, "appointment_not_found") {
		t.Fatalf("missing: expected appointment_not_found, got %v", missing)
	}
	if foreign.Error() != missing.Error() {
		t.Fatal("foreign ownership and nonexistence must be indistinguishable")
	}
}

func TestCancel_IncludesMessageVerbatim(t *testing.T) {
	repo, admin := fixture()
	mailer := &captureMailer{sent: make(chan capturedMail, 10)}
	uc := NewCancel(repo, notifier.NewDispatcher(mailer, zap.NewNop()))

	note := "Sorry, I'm out sick. Let's rebook next week."
	if _, err := uc.Execute(context.Background(), admin, 1, note); err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	var clientMail *capturedMail
	for i := 0; i < 2; i++ {
		select {
		case m := <-mailer.sent:
			if m.To == "client@example.com" {
				mm := m
				clientMail = &mm
			}
		case <-time.After(2 * time.Second):
			t.Fatal("timed out waiting for mail")
		}
	}

	if clientMail == nil {
		t.Fatal("client must be notified")
	}
	if !strings.Contains(clientMail.Body, note) {
		t.Fatalf("client notification must carry the message verbatim, got %q", clientMail.Body)
	}
}
