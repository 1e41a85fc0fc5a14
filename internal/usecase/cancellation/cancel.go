package cancellation

import (
	"context"
	"time"

	domain "github.com/AgendlyHQ/booking-scheduler/internal/domain/booking"
	"github.com/AgendlyHQ/booking-scheduler/internal/models"
	"github.com/AgendlyHQ/booking-scheduler/internal/notifier"
)

type Cancel struct {
	repo domain.Repository
	mail *notifier.Dispatcher
}

func NewCancel(
	repo domain.Repository,
	mail *notifier.Dispatcher,
) *Cancel {
	return &Cancel{
		repo: repo,
		mail: mail,
	}
}

// Execute migrates the appointment into the cancelled table and notifies
// both sides. An appointment of another admin and a nonexistent one are the
// same appointment_not_found to the caller.
func (uc *Cancel) Execute(
	ctx context.Context,
	admin *models.Admin,
	appointmentID uint,
	message string,
) (*models.CancelledAppointment, error) {

	cancelled, err := uc.repo.CancelAppointment(
		ctx,
		appointmentID,
		admin.ID,
		time.Now().UTC(),
	)
	if err != nil {
		return nil, err
	}

	uc.mail.Dispatch(notifier.CancellationNotice(cancelled, admin, message))
	uc.mail.Dispatch(notifier.CancellationAdminCopy(cancelled, admin))

	return cancelled, nil
}
