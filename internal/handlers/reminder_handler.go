package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/AgendlyHQ/booking-scheduler/internal/config"
	domain "github.com/AgendlyHQ/booking-scheduler/internal/domain/booking"
	"github.com/AgendlyHQ/booking-scheduler/internal/httperr"
	"github.com/AgendlyHQ/booking-scheduler/internal/httpresp"
	"github.com/AgendlyHQ/booking-scheduler/internal/middleware"
	"github.com/AgendlyHQ/booking-scheduler/internal/models"
	"github.com/AgendlyHQ/booking-scheduler/internal/timezone"
)

type ReminderHandler struct {
	db     *gorm.DB
	config *config.Config
}

func NewReminderHandler(db *gorm.DB, cfg *config.Config) *ReminderHandler {
	return &ReminderHandler{db: db, config: cfg}
}

type ReminderRequest struct {
	SendTime string `json:"send_time" binding:"required"`
	Timezone string `json:"timezone"`
	Message  string `json:"message"`
}

// ------------------------------
// LIST / CREATE (per appointment)
// ------------------------------

func (h *ReminderHandler) ListForAppointment(c *gin.Context) {
	adminID := c.MustGet(middleware.ContextAdminID).(uint)

	ap, ok := getOwnedAppointment(h.db, c, adminID)
	if !ok {
		return
	}

	var reminders []models.ScheduledMessage
	if err := h.db.
		Where("appointment_id = ? AND kind = ?", ap.ID, models.KindReminder).
		Order("send_at ASC").
		Find(&reminders).Error; err != nil {

		httperr.Internal(c, "failed_to_list_reminders", "Something went wrong.")
		return
	}

	httpresp.List(c, reminders)
}

func (h *ReminderHandler) Create(c *gin.Context) {
	adminID := c.MustGet(middleware.ContextAdminID).(uint)

	ap, ok := getOwnedAppointment(h.db, c, adminID)
	if !ok {
		return
	}

	var req ReminderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	sendAt, err := timezone.ToUTC(req.SendTime, req.Timezone, h.config.DefaultTimezone)
	if err != nil {
		httperr.BadRequest(c, "invalid_date_or_time", "Date, time or timezone is invalid.")
		return
	}

	if err := domain.ValidateReminderTime(sendAt, ap.StartTime); err != nil {
		httperr.BadRequest(c, "invalid_send_time", "Reminder must be before the appointment.")
		return
	}

	reminder := models.ScheduledMessage{
		AppointmentID: ap.ID,
		Kind:          models.KindReminder,
		SendAt:        sendAt,
		Message:       req.Message,
		Status:        models.StatusPending,
	}

	if err := h.db.Create(&reminder).Error; err != nil {
		httperr.Internal(c, "failed_to_create_reminder", "Something went wrong.")
		return
	}

	httpresp.Created(c, reminder)
}

// ------------------------------
// UPDATE / DELETE (by reminder id)
// ------------------------------

func (h *ReminderHandler) Update(c *gin.Context) {
	adminID := c.MustGet(middleware.ContextAdminID).(uint)

	reminder, ap, ok := h.getOwnedReminder(c, adminID)
	if !ok {
		return
	}

	var req ReminderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	sendAt, err := timezone.ToUTC(req.SendTime, req.Timezone, h.config.DefaultTimezone)
	if err != nil {
		httperr.BadRequest(c, "invalid_date_or_time", "Date, time or timezone is invalid.")
		return
	}

	if err := domain.ValidateReminderTime(sendAt, ap.StartTime); err != nil {
		httperr.BadRequest(c, "invalid_send_time", "Reminder must be before the appointment.")
		return
	}

	reminder.SendAt = sendAt
	reminder.Message = req.Message

	if err := h.db.Save(reminder).Error; err != nil {
		httperr.Internal(c, "failed_to_update_reminder", "Something went wrong.")
		return
	}

	c.JSON(http.StatusOK, reminder)
}

func (h *ReminderHandler) Delete(c *gin.Context) {
	adminID := c.MustGet(middleware.ContextAdminID).(uint)

	reminder, _, ok := h.getOwnedReminder(c, adminID)
	if !ok {
		return
	}

	if err := h.db.Delete(&models.ScheduledMessage{}, reminder.ID).Error; err != nil {
		httperr.Internal(c, "failed_to_delete_reminder", "Something went wrong.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

// getOwnedReminder loads a reminder and its live appointment, scoped to the
// admin. Any miss (no reminder, orphaned reminder, foreign appointment) is
// the same not-found.
func (h *ReminderHandler) getOwnedReminder(c *gin.Context, adminID uint) (*models.ScheduledMessage, *models.Appointment, bool) {
	var reminder models.ScheduledMessage
	if err := h.db.
		Where("id = ? AND kind = ?", c.Param("id"), models.KindReminder).
		First(&reminder).Error; err != nil {

		httperr.NotFound(c, "reminder_not_found", "Reminder not found.")
		return nil, nil, false
	}

	var ap models.Appointment
	if err := h.db.
		Where("id = ? AND admin_id = ?", reminder.AppointmentID, adminID).
		First(&ap).Error; err != nil {

		httperr.NotFound(c, "reminder_not_found", "Reminder not found.")
		return nil, nil, false
	}

	return &reminder, &ap, true
}
