package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/AgendlyHQ/booking-scheduler/internal/config"
	"github.com/AgendlyHQ/booking-scheduler/internal/httperr"
	"github.com/AgendlyHQ/booking-scheduler/internal/httpresp"
	"github.com/AgendlyHQ/booking-scheduler/internal/middleware"
	"github.com/AgendlyHQ/booking-scheduler/internal/models"
	"github.com/AgendlyHQ/booking-scheduler/internal/timezone"
	ucCancel "github.com/AgendlyHQ/booking-scheduler/internal/usecase/cancellation"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	db     *gorm.DB
	cancel *ucCancel.Cancel
	config *config.Config
}

func NewAppointmentHandler(db *gorm.DB, cancel *ucCancel.Cancel, cfg *config.Config) *AppointmentHandler {
	return &AppointmentHandler{
		db:     db,
		cancel: cancel,
		config: cfg,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CancelRequest struct {
	Message string `json:"message"`
}

// ======================================================
// LIST
// ======================================================

// List returns the admin's active appointments, optionally windowed by
// from/to local date-times in the configured default zone.
func (h *AppointmentHandler) List(c *gin.Context) {
	adminID := c.MustGet(middleware.ContextAdminID).(uint)

	q := h.db.
		Preload("BookingPage").
		Preload("FieldValues").
		Preload("FieldValues.FieldDefinition").
		Where("admin_id = ?", adminID)

	if fromStr := c.Query("from"); fromStr != "" {
		from, err := timezone.ToUTC(fromStr+" 00:00", c.Query("timezone"), h.config.DefaultTimezone)
		if err != nil {
			httperr.BadRequest(c, "invalid_date_or_time", "Invalid from date.")
			return
		}
		q = q.Where("start_time >= ?", from)
	}

	if toStr := c.Query("to"); toStr != "" {
		to, err := timezone.ToUTC(toStr+" 00:00", c.Query("timezone"), h.config.DefaultTimezone)
		if err != nil {
			httperr.BadRequest(c, "invalid_date_or_time", "Invalid to date.")
			return
		}
		q = q.Where("start_time < ?", to.AddDate(0, 0, 1))
	}

	var aps []models.Appointment
	if err := q.Order("start_time ASC").Find(&aps).Error; err != nil {
		httperr.Internal(c, "failed_to_list_appointments", "Something went wrong.")
		return
	}

	httpresp.List(c, aps)
}

// ======================================================
// CANCELLED HISTORY
// ======================================================

func (h *AppointmentHandler) ListCancelled(c *gin.Context) {
	adminID := c.MustGet(middleware.ContextAdminID).(uint)

	var cancelled []models.CancelledAppointment
	if err := h.db.
		Where("admin_id = ?", adminID).
		Order("cancelled_at DESC").
		Find(&cancelled).Error; err != nil {

		httperr.Internal(c, "failed_to_list_cancelled", "Something went wrong.")
		return
	}

	httpresp.List(c, cancelled)
}

// ======================================================
// CANCEL
// ======================================================

func (h *AppointmentHandler) Cancel(c *gin.Context) {
	admin := c.MustGet(middleware.ContextAdmin).(*models.Admin)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_appointment_id", "Invalid appointment id.")
		return
	}

	// Body is optional; an empty cancel is still a cancel.
	var req CancelRequest
	_ = c.ShouldBindJSON(&req)

	cancelled, err := h.cancel.Execute(c.Request.Context(), admin, uint(id), req.Message)
	if err != nil {
		if httperr.IsBusiness(err, "appointment_not_found") {
			httperr.NotFound(c, "appointment_not_found", "Appointment not found.")
			return
		}
		httperr.Internal(c, "failed_to_cancel", "Something went wrong.")
		return
	}

	httpresp.OK(c, cancelled)
}
