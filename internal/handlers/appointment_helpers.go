package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/AgendlyHQ/booking-scheduler/internal/httperr"
	"github.com/AgendlyHQ/booking-scheduler/internal/models"
)

// getOwnedAppointment loads the :id appointment scoped to the admin and
// writes the 404 itself on a miss. Nonexistence and foreign ownership are
// indistinguishable to the caller.
func getOwnedAppointment(db *gorm.DB, c *gin.Context, adminID uint) (*models.Appointment, bool) {
	var ap models.Appointment
	if err := db.
		Where("id = ? AND admin_id = ?", c.Param("id"), adminID).
		First(&ap).Error; err != nil {

		httperr.NotFound(c, "appointment_not_found", "Appointment not found.")
		return nil, false
	}
	return &ap, true
}
