package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/AgendlyHQ/booking-scheduler/internal/httperr"
	"github.com/AgendlyHQ/booking-scheduler/internal/middleware"
	"github.com/AgendlyHQ/booking-scheduler/internal/models"
)

type MeHandler struct {
	db *gorm.DB
}

func NewMeHandler(db *gorm.DB) *MeHandler {
	return &MeHandler{db: db}
}

type UpdateMeRequest struct {
	Name              string `json:"name"`
	NotificationEmail string `json:"notification_email"`

	// Password change requires the current one.
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

func (h *MeHandler) GetMe(c *gin.Context) {
	admin := c.MustGet(middleware.ContextAdmin).(*models.Admin)

	c.JSON(http.StatusOK, gin.H{
		"id":                 admin.ID,
		"name":               admin.Name,
		"email":              admin.Email,
		"notification_email": admin.NotificationEmail,
		"slug":               admin.Slug,
	})
}

func (h *MeHandler) UpdateMe(c *gin.Context) {
	admin := c.MustGet(middleware.ContextAdmin).(*models.Admin)

	var req UpdateMeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	if req.Name != "" {
		admin.Name = req.Name
	}
	if req.NotificationEmail != "" {
		admin.NotificationEmail = strings.ToLower(strings.TrimSpace(req.NotificationEmail))
	}

	if req.NewPassword != "" {
		if len(req.NewPassword) < 6 {
			httperr.BadRequest(c, "password_too_short", "Password must have at least 6 characters.")
			return
		}
		if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(req.CurrentPassword)); err != nil {
			httperr.Unauthorized(c, "invalid_credentials", "Wrong current password.")
			return
		}
		hashed, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
		if err != nil {
			httperr.Internal(c, "failed_to_hash_password", "Something went wrong.")
			return
		}
		admin.PasswordHash = string(hashed)
	}

	if err := h.db.Save(admin).Error; err != nil {
		httperr.Internal(c, "failed_to_update_profile", "Something went wrong.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":                 admin.ID,
		"name":               admin.Name,
		"email":              admin.Email,
		"notification_email": admin.NotificationEmail,
		"slug":               admin.Slug,
	})
}
