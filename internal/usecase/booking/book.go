package booking

import (
	"context"

	domain "github.com/AgendlyHQ/booking-scheduler/internal/domain/booking"
	"github.com/AgendlyHQ/booking-scheduler/internal/httperr"
	"github.com/AgendlyHQ/booking-scheduler/internal/models"
	"github.com/AgendlyHQ/booking-scheduler/internal/notifier"
	"github.com/AgendlyHQ/booking-scheduler/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type BookInput struct {
	ClientName  string
	ClientEmail string

	// LocalTime is a naive date-time string interpreted in Timezone (or the
	// configured default zone when empty).
	LocalTime string
	Timezone  string

	Details string

	// CustomFields maps field names to values. Keys that match no defined
	// field on the page are silently dropped.
	CustomFields map[string]string

	// ThankYouMessage overrides the default thank-you body when non-empty.
	ThankYouMessage string
}

// ======================================================
// USE CASE
// ======================================================

type Book struct {
	repo      domain.Repository
	mail      *notifier.Dispatcher
	defaultTZ string
}

func NewBook(
	repo domain.Repository,
	mail *notifier.Dispatcher,
	defaultTZ string,
) *Book {
	return &Book{
		repo:      repo,
		mail:      mail,
		defaultTZ: defaultTZ,
	}
}

func (uc *Book) Execute(
	ctx context.Context,
	page *PageContext,
	in BookInput,
) (*models.Appointment, error) {

	if in.ClientName == "" || in.ClientEmail == "" || in.LocalTime == "" {
		return nil, httperr.ErrBusiness("missing_required_fields")
	}

	start, err := timezone.ToUTC(in.LocalTime, in.Timezone, uc.defaultTZ)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date_or_time")
	}

	pageID := page.Page.ID
	ap := &models.Appointment{
		AdminID:       page.Admin.ID,
		BookingPageID: &pageID,
		StartTime:     start,
		ClientName:    in.ClientName,
		ClientEmail:   in.ClientEmail,
		Details:       in.Details,
	}

	// Values are matched against the page's field definitions by name;
	// anything else in the payload is ignored.
	var values []models.CustomFieldValue
	for _, def := range page.Page.Fields {
		if v, ok := in.CustomFields[def.Name]; ok {
			values = append(values, models.CustomFieldValue{
				FieldDefinitionID: def.ID,
				Value:             v,
			})
		}
	}

	thankYou := &models.ScheduledMessage{
		Kind:    models.KindThankYou,
		SendAt:  domain.DefaultThankYouAt(start),
		Message: in.ThankYouMessage,
		Status:  models.StatusPending,
	}

	if err := uc.repo.ReserveSlot(ctx, ap, values, thankYou); err != nil {
		return nil, err
	}

	// Post-commit side effects only; a mail problem never fails the booking.
	uc.mail.Dispatch(notifier.BookingConfirmation(ap, page.Admin))
	uc.mail.Dispatch(notifier.BookingNotice(ap, page.Admin))

	return ap, nil
}
