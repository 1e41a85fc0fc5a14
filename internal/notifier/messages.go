package notifier

import (
	"fmt"
	"time"

	"github.com/AgendlyHQ/booking-scheduler/internal/models"
)

const displayLayout = "Mon, 02 Jan 2006 15:04 MST"

func formatInstant(t time.Time) string {
	return t.UTC().Format(displayLayout)
}

// BookingConfirmation is sent to the client right after a successful booking.
func BookingConfirmation(ap *models.Appointment, admin *models.Admin) Message {
	body := fmt.Sprintf(
		"Hi %s,\n\nYour appointment with %s is confirmed for %s.\n\nSee you then!",
		ap.ClientName,
		admin.Name,
		formatInstant(ap.StartTime),
	)
	return Message{
		To:      ap.ClientEmail,
		Subject: "Appointment confirmed",
		Body:    body,
	}
}

// BookingNotice goes to the admin's notification address.
func BookingNotice(ap *models.Appointment, admin *models.Admin) Message {
	body := fmt.Sprintf(
		"New appointment: %s (%s) booked %s.",
		ap.ClientName,
		ap.ClientEmail,
		formatInstant(ap.StartTime),
	)
	return Message{
		To:      admin.NotificationEmail,
		Subject: "New appointment booked",
		Body:    body,
	}
}

// CancellationNotice tells the client their appointment was cancelled. The
// admin-provided message, if any, is included verbatim.
func CancellationNotice(ca *models.CancelledAppointment, admin *models.Admin, note string) Message {
	body := fmt.Sprintf(
		"Hi %s,\n\nYour appointment with %s on %s has been cancelled.",
		ca.ClientName,
		admin.Name,
		formatInstant(ca.StartTime),
	)
	if note != "" {
		body += "\n\n" + note
	}
	return Message{
		To:      ca.ClientEmail,
		Subject: "Appointment cancelled",
		Body:    body,
	}
}

// CancellationAdminCopy confirms the cancellation to the admin.
func CancellationAdminCopy(ca *models.CancelledAppointment, admin *models.Admin) Message {
	body := fmt.Sprintf(
		"Cancelled: %s (%s), originally %s.",
		ca.ClientName,
		ca.ClientEmail,
		formatInstant(ca.StartTime),
	)
	return Message{
		To:      admin.NotificationEmail,
		Subject: "Appointment cancelled",
		Body:    body,
	}
}

// PasswordReset carries the single-use reset token to the admin's login
// address.
func PasswordReset(admin *models.Admin, token string) Message {
	body := fmt.Sprintf(
		"Hi %s,\n\nUse this token to reset your password: %s\n\nIf you did not request a reset, ignore this message.",
		admin.Name,
		token,
	)
	return Message{
		To:      admin.Email,
		Subject: "Password reset",
		Body:    body,
	}
}

// ScheduledBody picks the explicit override when one was stored, otherwise a
// default template per message kind.
func ScheduledBody(kind models.MessageKind, override, clientName, adminName string, startTime time.Time) (subject, body string) {
	switch kind {
	case models.KindReminder:
		subject = "Appointment reminder"
		body = fmt.Sprintf(
			"Hi %s,\n\nThis is a reminder of your appointment with %s on %s.",
			clientName, adminName, formatInstant(startTime),
		)
	default:
		subject = "Thank you for your visit"
		body = fmt.Sprintf(
			"Hi %s,\n\nThank you for meeting with %s. We hope to see you again!",
			clientName, adminName,
		)
	}
	if override != "" {
		body = override
	}
	return subject, body
}
