package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/AgendlyHQ/booking-scheduler/internal/config"
	"github.com/AgendlyHQ/booking-scheduler/internal/httperr"
	"github.com/AgendlyHQ/booking-scheduler/internal/middleware"
	"github.com/AgendlyHQ/booking-scheduler/internal/models"
	"github.com/AgendlyHQ/booking-scheduler/internal/notifier"
	"github.com/AgendlyHQ/booking-scheduler/internal/tokens"
	"github.com/AgendlyHQ/booking-scheduler/internal/validators"
)

type AuthHandler struct {
	db     *gorm.DB
	config *config.Config
	resets *tokens.ResetStore
	mail   *notifier.Dispatcher
}

func NewAuthHandler(db *gorm.DB, cfg *config.Config, resets *tokens.ResetStore, mail *notifier.Dispatcher) *AuthHandler {
	return &AuthHandler{db: db, config: cfg, resets: resets, mail: mail}
}

// --------- Requests ---------

type SignupRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Slug     string `json:"slug" binding:"required"`

	NotificationEmail string `json:"notification_email"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email" binding:"required,email"`
}

type ResetPasswordRequest struct {
	Password string `json:"password" binding:"required,min=6"`
}

type DeleteAccountRequest struct {
	Password string `json:"password" binding:"required"`
}

// --------- Handlers ---------

func (h *AuthHandler) Signup(c *gin.Context) {
	var req SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	slug := strings.ToLower(strings.TrimSpace(req.Slug))
	email := strings.ToLower(strings.TrimSpace(req.Email))

	var count int64
	h.db.Model(&models.Admin{}).Where("slug = ?", slug).Count(&count)
	if count > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "slug_already_exists"})
		return
	}

	h.db.Model(&models.Admin{}).Where("email = ?", email).Count(&count)
	if count > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email_already_exists"})
		return
	}

	if !validators.IsEmailDomainValid(email) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_email_domain"})
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_hash_password"})
		return
	}

	notify := strings.ToLower(strings.TrimSpace(req.NotificationEmail))
	if notify == "" {
		notify = email
	}

	admin := models.Admin{
		Name:              req.Name,
		Email:             email,
		PasswordHash:      string(hashed),
		NotificationEmail: notify,
		Slug:              slug,
	}

	if err := h.db.Create(&admin).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_create_admin"})
		return
	}

	token, err := h.generateToken(&admin)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_generate_token"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"admin": adminPayload(&admin),
		"token": token,
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	var admin models.Admin
	if err := h.db.Where("email = ?", email).First(&admin).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid_credentials"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal_error"})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(req.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid_credentials"})
		return
	}

	token, err := h.generateToken(&admin)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_generate_token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"admin": adminPayload(&admin),
		"token": token,
	})
}

// ForgotPassword always answers 200 so the endpoint cannot be used to probe
// which emails have accounts.
func (h *AuthHandler) ForgotPassword(c *gin.Context) {
	var req ForgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	var admin models.Admin
	if err := h.db.Where("email = ?", email).First(&admin).Error; err == nil {
		token, err := h.resets.Issue(c.Request.Context(), admin.ID)
		if err != nil {
			httperr.Internal(c, "internal_error", "Something went wrong.")
			return
		}
		h.mail.Dispatch(notifier.PasswordReset(&admin, token))
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *AuthHandler) ResetPassword(c *gin.Context) {
	token := c.Param("token")

	var req ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	adminID, ok, err := h.resets.Consume(c.Request.Context(), token)
	if err != nil {
		httperr.Internal(c, "internal_error", "Something went wrong.")
		return
	}
	if !ok {
		httperr.BadRequest(c, "invalid_or_expired_token", "Reset token is invalid or expired.")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		httperr.Internal(c, "failed_to_hash_password", "Something went wrong.")
		return
	}

	if err := h.db.Model(&models.Admin{}).
		Where("id = ?", adminID).
		Update("password_hash", string(hashed)).Error; err != nil {
		httperr.Internal(c, "internal_error", "Something went wrong.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// DeleteAccount requires the current password on top of a valid bearer
// token. The admin row cascades to pages, appointments and history.
func (h *AuthHandler) DeleteAccount(c *gin.Context) {
	admin := c.MustGet(middleware.ContextAdmin).(*models.Admin)

	var req DeleteAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(req.Password)); err != nil {
		httperr.Unauthorized(c, "invalid_credentials", "Wrong password.")
		return
	}

	if err := h.db.Delete(&models.Admin{}, admin.ID).Error; err != nil {
		httperr.Internal(c, "failed_to_delete_account", "Something went wrong.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

// --------- JWT ---------

func (h *AuthHandler) generateToken(admin *models.Admin) (string, error) {
	claims := jwt.MapClaims{
		"sub": admin.ID,
		"exp": time.Now().Add(24 * time.Hour).Unix(),
		"iat": time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(h.config.JWTSecret))
}

func adminPayload(admin *models.Admin) gin.H {
	return gin.H{
		"id":                 admin.ID,
		"name":               admin.Name,
		"email":              admin.Email,
		"notification_email": admin.NotificationEmail,
		"slug":               admin.Slug,
	}
}
