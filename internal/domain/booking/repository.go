package booking

import (
	"context"
	"time"

	"github.com/AgendlyHQ/booking-scheduler/internal/models"
)

// Repository is the store gateway the booking and cancellation engines run
// against. Implementations own the transaction boundaries: ReserveSlot and
// CancelAppointment must be atomic, including their conflict/ownership
// checks.
type Repository interface {
	// -------- Page resolution --------
	GetAdminBySlug(
		ctx context.Context,
		slug string,
	) (*models.Admin, error)

	GetPageBySlug(
		ctx context.Context,
		adminID uint,
		slug string,
	) (*models.BookingPage, error)

	// -------- Booking --------

	// ReserveSlot atomically checks the exact-instant conflict for the
	// appointment's admin, inserts the appointment, its field values and the
	// auto-scheduled thank-you. Returns ErrBusiness("slot_conflict") when the
	// instant is taken.
	ReserveSlot(
		ctx context.Context,
		ap *models.Appointment,
		values []models.CustomFieldValue,
		thankYou *models.ScheduledMessage,
	) error

	ListBookedSlots(
		ctx context.Context,
		adminID uint,
		from time.Time,
	) ([]time.Time, error)

	// -------- Cancellation --------

	// CancelAppointment lock-reads the appointment scoped to the admin,
	// migrates it into the cancelled table and deletes the original. A miss
	// and an ownership mismatch are both ErrBusiness("appointment_not_found").
	CancelAppointment(
		ctx context.Context,
		appointmentID uint,
		adminID uint,
		now time.Time,
	) (*models.CancelledAppointment, error)
}
