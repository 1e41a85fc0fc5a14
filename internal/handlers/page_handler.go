package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/AgendlyHQ/booking-scheduler/internal/httperr"
	"github.com/AgendlyHQ/booking-scheduler/internal/httpresp"
	"github.com/AgendlyHQ/booking-scheduler/internal/middleware"
	"github.com/AgendlyHQ/booking-scheduler/internal/models"
)

type PageHandler struct {
	db *gorm.DB
}

func NewPageHandler(db *gorm.DB) *PageHandler {
	return &PageHandler{db: db}
}

type FieldConfig struct {
	Name     string `json:"name" binding:"required"`
	Label    string `json:"label" binding:"required"`
	Type     string `json:"type"`
	Required bool   `json:"required"`
}

type PageRequest struct {
	Slug   string        `json:"slug" binding:"required"`
	Title  string        `json:"title"`
	Fields []FieldConfig `json:"fields"`
}

func (h *PageHandler) List(c *gin.Context) {
	adminID := c.MustGet(middleware.ContextAdminID).(uint)

	var pages []models.BookingPage
	if err := h.db.
		Preload("Fields", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		Where("admin_id = ?", adminID).
		Order("id ASC").
		Find(&pages).Error; err != nil {

		httperr.Internal(c, "failed_to_list_pages", "Something went wrong.")
		return
	}

	httpresp.List(c, pages)
}

func (h *PageHandler) Get(c *gin.Context) {
	adminID := c.MustGet(middleware.ContextAdminID).(uint)

	var page models.BookingPage
	if err := h.db.
		Preload("Fields", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		Where("id = ? AND admin_id = ?", c.Param("id"), adminID).
		First(&page).Error; err != nil {

		httperr.NotFound(c, "page_not_found", "Booking page not found.")
		return
	}

	c.JSON(http.StatusOK, page)
}

func (h *PageHandler) Create(c *gin.Context) {
	adminID := c.MustGet(middleware.ContextAdminID).(uint)

	var req PageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	slug := strings.ToLower(strings.TrimSpace(req.Slug))

	var count int64
	h.db.Model(&models.BookingPage{}).
		Where("admin_id = ? AND slug = ?", adminID, slug).
		Count(&count)
	if count > 0 {
		httperr.BadRequest(c, "slug_already_exists", "A page with this slug already exists.")
		return
	}

	page := models.BookingPage{
		AdminID: adminID,
		Slug:    slug,
		Title:   req.Title,
		Fields:  buildFields(req.Fields),
	}

	if err := h.db.Create(&page).Error; err != nil {
		httperr.Internal(c, "failed_to_create_page", "Something went wrong.")
		return
	}

	httpresp.Created(c, page)
}

// Update replaces the page as a unit: the field set is deleted and recreated
// from the request body.
func (h *PageHandler) Update(c *gin.Context) {
	adminID := c.MustGet(middleware.ContextAdminID).(uint)

	var req PageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	var page models.BookingPage
	if err := h.db.
		Where("id = ? AND admin_id = ?", c.Param("id"), adminID).
		First(&page).Error; err != nil {

		httperr.NotFound(c, "page_not_found", "Booking page not found.")
		return
	}

	slug := strings.ToLower(strings.TrimSpace(req.Slug))

	var count int64
	h.db.Model(&models.BookingPage{}).
		Where("admin_id = ? AND slug = ? AND id <> ?", adminID, slug, page.ID).
		Count(&count)
	if count > 0 {
		httperr.BadRequest(c, "slug_already_exists", "A page with this slug already exists.")
		return
	}

	err := h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("booking_page_id = ?", page.ID).
			Delete(&models.CustomFieldDefinition{}).Error; err != nil {
			return err
		}

		page.Slug = slug
		page.Title = req.Title
		if err := tx.Save(&page).Error; err != nil {
			return err
		}

		fields := buildFields(req.Fields)
		for i := range fields {
			fields[i].BookingPageID = page.ID
		}
		if len(fields) > 0 {
			if err := tx.Create(&fields).Error; err != nil {
				return err
			}
		}
		page.Fields = fields
		return nil
	})

	if err != nil {
		httperr.Internal(c, "failed_to_update_page", "Something went wrong.")
		return
	}

	c.JSON(http.StatusOK, page)
}

func (h *PageHandler) Delete(c *gin.Context) {
	adminID := c.MustGet(middleware.ContextAdminID).(uint)

	res := h.db.
		Where("id = ? AND admin_id = ?", c.Param("id"), adminID).
		Delete(&models.BookingPage{})

	if res.Error != nil {
		httperr.Internal(c, "failed_to_delete_page", "Something went wrong.")
		return
	}
	if res.RowsAffected == 0 {
		httperr.NotFound(c, "page_not_found", "Booking page not found.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

func buildFields(configs []FieldConfig) []models.CustomFieldDefinition {
	var fields []models.CustomFieldDefinition
	for i, f := range configs {
		fieldType := f.Type
		if fieldType == "" {
			fieldType = "text"
		}
		fields = append(fields, models.CustomFieldDefinition{
			Name:     f.Name,
			Label:    f.Label,
			Type:     fieldType,
			Required: f.Required,
			Position: i,
		})
	}
	return fields
}
