package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/AgendlyHQ/booking-scheduler/internal/domain/booking"
	"github.com/AgendlyHQ/booking-scheduler/internal/httperr"
	"github.com/AgendlyHQ/booking-scheduler/internal/models"
	"github.com/AgendlyHQ/booking-scheduler/internal/scheduler"
)

type BookingGormRepository struct {
	db *gorm.DB
}

func NewBookingGormRepository(db *gorm.DB) *BookingGormRepository {
	return &BookingGormRepository{db: db}
}

// --------------------------------------------------
// Page resolution
// --------------------------------------------------

func (r *BookingGormRepository) GetAdminBySlug(
	ctx context.Context,
	slug string,
) (*models.Admin, error) {

	var admin models.Admin
	if err := r.db.WithContext(ctx).
		Where("slug = ?", slug).
		First(&admin).Error; err != nil {
		return nil, err
	}
	return &admin, nil
}

func (r *BookingGormRepository) GetPageBySlug(
	ctx context.Context,
	adminID uint,
	slug string,
) (*models.BookingPage, error) {

	var page models.BookingPage
	if err := r.db.WithContext(ctx).
		Preload("Fields", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		Where("admin_id = ? AND slug = ?", adminID, slug).
		First(&page).Error; err != nil {
		return nil, err
	}
	return &page, nil
}

// --------------------------------------------------
// Booking
// --------------------------------------------------

// ReserveSlot holds the conflict check and all three writes in one
// transaction. The lock on the conflict query serializes concurrent bookings
// of the same instant; the unique (admin_id, start_time) index backstops it,
// and a duplicate-key error is reported as the same business conflict.
func (r *BookingGormRepository) ReserveSlot(
	ctx context.Context,
	ap *models.Appointment,
	values []models.CustomFieldValue,
	thankYou *models.ScheduledMessage,
) error {

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		var conflicts []models.Appointment
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where(
				"admin_id = ? AND start_time = ?",
				ap.AdminID, ap.StartTime,
			).
			Find(&conflicts).Error; err != nil {
			return err
		}

		if len(conflicts) > 0 {
			return httperr.ErrBusiness("slot_conflict")
		}

		if err := tx.Create(ap).Error; err != nil {
			return err
		}

		for i := range values {
			values[i].AppointmentID = ap.ID
		}
		if len(values) > 0 {
			if err := tx.Create(&values).Error; err != nil {
				return err
			}
		}

		thankYou.AppointmentID = ap.ID
		return tx.Create(thankYou).Error
	})

	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return httperr.ErrBusiness("slot_conflict")
	}
	return err
}

func (r *BookingGormRepository) ListBookedSlots(
	ctx context.Context,
	adminID uint,
	from time.Time,
) ([]time.Time, error) {

	var aps []models.Appointment
	if err := r.db.WithContext(ctx).
		Select("start_time").
		Where("admin_id = ? AND start_time >= ?", adminID, from).
		Order("start_time ASC").
		Find(&aps).Error; err != nil {
		return nil, err
	}

	slots := make([]time.Time, 0, len(aps))
	for _, ap := range aps {
		slots = append(slots, ap.StartTime.UTC())
	}
	return slots, nil
}

// --------------------------------------------------
// Cancellation
// --------------------------------------------------

// CancelAppointment migrates the row into the cancelled table. The lock-read
// prevents a concurrent cancel or rebook from racing the migration. Scheduled
// messages are deliberately left behind; the due queries join live
// appointments, so they never fire.
func (r *BookingGormRepository) CancelAppointment(
	ctx context.Context,
	appointmentID uint,
	adminID uint,
	now time.Time,
) (*models.CancelledAppointment, error) {

	var cancelled models.CancelledAppointment

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		var ap models.Appointment
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ? AND admin_id = ?", appointmentID, adminID).
			First(&ap).Error; err != nil {

			if errors.Is(err, gorm.ErrRecordNotFound) {
				return httperr.ErrBusiness("appointment_not_found")
			}
			return err
		}

		cancelled = models.CancelledAppointment{
			ID:            ap.ID,
			AdminID:       ap.AdminID,
			BookingPageID: ap.BookingPageID,
			StartTime:     ap.StartTime,
			ClientName:    ap.ClientName,
			ClientEmail:   ap.ClientEmail,
			Details:       ap.Details,
			CancelledAt:   now,
		}

		if err := tx.Create(&cancelled).Error; err != nil {
			return err
		}

		return tx.Delete(&models.Appointment{}, ap.ID).Error
	})

	if err != nil {
		return nil, err
	}
	return &cancelled, nil
}

// --------------------------------------------------
// Scheduled messages (scheduler store)
// --------------------------------------------------

func (r *BookingGormRepository) FetchDue(
	ctx context.Context,
	kind models.MessageKind,
	now time.Time,
) ([]scheduler.DueMessage, error) {

	var due []scheduler.DueMessage
	err := r.db.WithContext(ctx).
		Table("scheduled_messages").
		Select(`scheduled_messages.id,
			scheduled_messages.kind,
			scheduled_messages.send_at,
			scheduled_messages.message,
			appointments.client_name,
			appointments.client_email,
			appointments.start_time,
			admins.name AS admin_name`).
		Joins("JOIN appointments ON appointments.id = scheduled_messages.appointment_id").
		Joins("JOIN admins ON admins.id = appointments.admin_id").
		Where(
			"scheduled_messages.kind = ? AND scheduled_messages.status = ? AND scheduled_messages.send_at <= ?",
			kind, models.StatusPending, now,
		).
		Order("scheduled_messages.send_at ASC").
		Scan(&due).Error

	if err != nil {
		return nil, err
	}
	return due, nil
}

func (r *BookingGormRepository) MarkStatus(
	ctx context.Context,
	id uint,
	status models.MessageStatus,
) error {
	return r.db.WithContext(ctx).
		Model(&models.ScheduledMessage{}).
		Where("id = ?", id).
		Update("status", status).Error
}

// Compile-time checks
var (
	_ domain.Repository = (*BookingGormRepository)(nil)
	_ scheduler.Store   = (*BookingGormRepository)(nil)
)
