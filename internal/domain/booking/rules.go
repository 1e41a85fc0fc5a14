package booking

import (
	"time"

	"github.com/AgendlyHQ/booking-scheduler/internal/httperr"
)

// ThankYouDelay is how long after the appointment the auto-scheduled
// thank-you goes out.
const ThankYouDelay = 24 * time.Hour

// ValidateReminderTime enforces that a reminder fires strictly before the
// appointment. Equality is rejected.
func ValidateReminderTime(sendAt, appointmentAt time.Time) error {
	if !sendAt.Before(appointmentAt) {
		return httperr.ErrBusiness("invalid_send_time")
	}
	return nil
}

// ValidateThankYouTime enforces that a thank-you fires strictly after the
// appointment. Equality is rejected.
func ValidateThankYouTime(sendAt, appointmentAt time.Time) error {
	if !sendAt.After(appointmentAt) {
		return httperr.ErrBusiness("invalid_send_time")
	}
	return nil
}

// DefaultThankYouAt is the send instant booked alongside every appointment.
func DefaultThankYouAt(appointmentAt time.Time) time.Time {
	return appointmentAt.Add(ThankYouDelay)
}
