package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/AgendlyHQ/booking-scheduler/internal/config"
	domain "github.com/AgendlyHQ/booking-scheduler/internal/domain/booking"
	"github.com/AgendlyHQ/booking-scheduler/internal/httperr"
	"github.com/AgendlyHQ/booking-scheduler/internal/middleware"
	"github.com/AgendlyHQ/booking-scheduler/internal/models"
	"github.com/AgendlyHQ/booking-scheduler/internal/timezone"
)

// ThankYouHandler manages the single auto-scheduled thank-you of an
// appointment.
type ThankYouHandler struct {
	db     *gorm.DB
	config *config.Config
}

func NewThankYouHandler(db *gorm.DB, cfg *config.Config) *ThankYouHandler {
	return &ThankYouHandler{db: db, config: cfg}
}

type ThankYouUpdateRequest struct {
	SendTime string `json:"send_time"`
	Timezone string `json:"timezone"`
	Message  string `json:"message"`
}

func (h *ThankYouHandler) Get(c *gin.Context) {
	adminID := c.MustGet(middleware.ContextAdminID).(uint)

	_, thankYou, ok := h.getOwnedThankYou(c, adminID)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, thankYou)
}

func (h *ThankYouHandler) Update(c *gin.Context) {
	adminID := c.MustGet(middleware.ContextAdminID).(uint)

	ap, thankYou, ok := h.getOwnedThankYou(c, adminID)
	if !ok {
		return
	}

	var req ThankYouUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	if req.SendTime != "" {
		sendAt, err := timezone.ToUTC(req.SendTime, req.Timezone, h.config.DefaultTimezone)
		if err != nil {
			httperr.BadRequest(c, "invalid_date_or_time", "Date, time or timezone is invalid.")
			return
		}
		if err := domain.ValidateThankYouTime(sendAt, ap.StartTime); err != nil {
			httperr.BadRequest(c, "invalid_send_time", "Thank-you must be after the appointment.")
			return
		}
		thankYou.SendAt = sendAt
	}

	thankYou.Message = req.Message

	if err := h.db.Save(thankYou).Error; err != nil {
		httperr.Internal(c, "failed_to_update_thank_you", "Something went wrong.")
		return
	}

	c.JSON(http.StatusOK, thankYou)
}

func (h *ThankYouHandler) Delete(c *gin.Context) {
	adminID := c.MustGet(middleware.ContextAdminID).(uint)

	_, thankYou, ok := h.getOwnedThankYou(c, adminID)
	if !ok {
		return
	}

	if err := h.db.Delete(&models.ScheduledMessage{}, thankYou.ID).Error; err != nil {
		httperr.Internal(c, "failed_to_delete_thank_you", "Something went wrong.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

func (h *ThankYouHandler) getOwnedThankYou(c *gin.Context, adminID uint) (*models.Appointment, *models.ScheduledMessage, bool) {
	ap, ok := getOwnedAppointment(h.db, c, adminID)
	if !ok {
		return nil, nil, false
	}

	var thankYou models.ScheduledMessage
	if err := h.db.
		Where("appointment_id = ? AND kind = ?", ap.ID, models.KindThankYou).
		First(&thankYou).Error; err != nil {

		httperr.NotFound(c, "thank_you_not_found", "Thank-you message not found.")
		return nil, nil, false
	}

	return ap, &thankYou, true
}
