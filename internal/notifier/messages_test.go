package notifier

import (
	"strings"
	"testing"
	"time"

	"github.com/AgendlyHQ/booking-scheduler/internal/models"
)

func TestScheduledBody_DefaultTemplates(t *testing.T) {
	start := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)

	subject, body := ScheduledBody(models.KindReminder, "", "Alice", "Jane", start)
	if subject != "Appointment reminder" {
		t.Fatalf("unexpected reminder subject: %q", subject)
	}
	if !strings.Contains(body, "Alice") || !strings.Contains(body, "Jane") {
		t.Fatalf("reminder body must name both sides: %q", body)
	}

	subject, body = ScheduledBody(models.KindThankYou, "", "Alice", "Jane", start)
	if subject != "Thank you for your visit" {
		t.Fatalf("unexpected thank-you subject: %q", subject)
	}
	if !strings.Contains(body, "Jane") {
		t.Fatalf("thank-you body must name the admin: %q", body)
	}
}

func TestScheduledBody_OverrideReplacesBodyOnly(t *testing.T) {
	start := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)

	subject, body := ScheduledBody(models.KindReminder, "custom text", "Alice", "Jane", start)
	if body != "custom text" {
		t.Fatalf("override must replace the body, got %q", body)
	}
	if subject != "Appointment reminder" {
		t.Fatalf("override must not change the subject, got %q", subject)
	}
}

func TestBuildMessage_Headers(t *testing.T) {
	msg := buildMessage("from@example.com", "to@example.com", "Hello", "body text")

	for _, want := range []string{
		"From: from@example.com\r\n",
		"To: to@example.com\r\n",
		"Subject: Hello\r\n",
		"\r\n\r\nbody text",
	} {
		if !strings.Contains(msg, want) {
			t.Fatalf("message missing %q:\n%s", want, msg)
		}
	}
}

func TestCancellationNotice_AppendsNote(t *testing.T) {
	ca := &models.CancelledAppointment{
		ClientName:  "Alice",
		ClientEmail: "alice@example.com",
		StartTime:   time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC),
	}
	admin := &models.Admin{Name: "Jane", NotificationEmail: "jane@example.com"}

	withNote := CancellationNotice(ca, admin, "see you next week")
	if !strings.Contains(withNote.Body, "see you next week") {
		t.Fatalf("note must be appended verbatim: %q", withNote.Body)
	}

	withoutNote := CancellationNotice(ca, admin, "")
	if strings.HasSuffix(withoutNote.Body, "\n\n") {
		t.Fatalf("empty note must not leave a trailing block: %q", withoutNote.Body)
	}
}
