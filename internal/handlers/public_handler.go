package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/AgendlyHQ/booking-scheduler/internal/config"
	domain "github.com/AgendlyHQ/booking-scheduler/internal/domain/booking"
	"github.com/AgendlyHQ/booking-scheduler/internal/httperr"
	"github.com/AgendlyHQ/booking-scheduler/internal/timezone"
	ucBooking "github.com/AgendlyHQ/booking-scheduler/internal/usecase/booking"
	"github.com/AgendlyHQ/booking-scheduler/internal/validators"
)

////////////////////////////////////////////////////////
// HANDLER
////////////////////////////////////////////////////////

type PublicHandler struct {
	repo    domain.Repository
	resolve *ucBooking.ResolvePage
	book    *ucBooking.Book
	config  *config.Config
}

func NewPublicHandler(
	repo domain.Repository,
	resolve *ucBooking.ResolvePage,
	book *ucBooking.Book,
	cfg *config.Config,
) *PublicHandler {
	return &PublicHandler{
		repo:    repo,
		resolve: resolve,
		book:    book,
		config:  cfg,
	}
}

////////////////////////////////////////////////////////
// DTOs
////////////////////////////////////////////////////////

type PublicBookRequest struct {
	ClientName  string `json:"client_name" binding:"required"`
	ClientEmail string `json:"client_email" binding:"required"`

	// Datetime is a local "YYYY-MM-DD HH:mm" string; Timezone is an IANA
	// zone name, defaulting to the configured zone when omitted.
	Datetime string `json:"datetime" binding:"required"`
	Timezone string `json:"timezone"`

	Details string `json:"details"`

	CustomFields map[string]string `json:"custom_fields"`

	ThankYouMessage string `json:"thank_you_message"`
}

type PublicFieldDTO struct {
	Name     string `json:"name"`
	Label    string `json:"label"`
	Type     string `json:"type"`
	Required bool   `json:"required"`
}

////////////////////////////////////////////////////////
// FORM
////////////////////////////////////////////////////////

func (h *PublicHandler) Form(c *gin.Context) {
	pc, err := h.resolve.Execute(c.Request.Context(), c.Param("adminSlug"), c.Param("pageSlug"))
	if err != nil {
		h.mapResolveError(c, err)
		return
	}

	fields := make([]PublicFieldDTO, 0, len(pc.Page.Fields))
	for _, f := range pc.Page.Fields {
		fields = append(fields, PublicFieldDTO{
			Name:     f.Name,
			Label:    f.Label,
			Type:     f.Type,
			Required: f.Required,
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"title":  pc.Page.Title,
		"slug":   pc.Page.Slug,
		"fields": fields,
	})
}

////////////////////////////////////////////////////////
// BOOKED SLOTS
////////////////////////////////////////////////////////

func (h *PublicHandler) BookedSlots(c *gin.Context) {
	pc, err := h.resolve.Execute(c.Request.Context(), c.Param("adminSlug"), c.Param("pageSlug"))
	if err != nil {
		h.mapResolveError(c, err)
		return
	}

	// Admin-wide, not page-scoped: a slot booked through any page blocks the
	// instant for the whole admin.
	slots, err := h.repo.ListBookedSlots(c.Request.Context(), pc.Admin.ID, time.Now().UTC())
	if err != nil {
		httperr.Internal(c, "failed_to_list_slots", "Something went wrong.")
		return
	}

	formatted := make([]string, 0, len(slots))
	for _, s := range slots {
		formatted = append(formatted, timezone.FormatUTC(s))
	}

	c.JSON(http.StatusOK, gin.H{
		"timezone":     h.config.DefaultTimezone,
		"booked_slots": formatted,
	})
}

////////////////////////////////////////////////////////
// BOOK
////////////////////////////////////////////////////////

func (h *PublicHandler) Book(c *gin.Context) {
	pc, err := h.resolve.Execute(c.Request.Context(), c.Param("adminSlug"), c.Param("pageSlug"))
	if err != nil {
		h.mapResolveError(c, err)
		return
	}

	var req PublicBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	if !validators.IsEmailAddress(req.ClientEmail) {
		httperr.BadRequest(c, "invalid_email", "Client email is invalid.")
		return
	}

	ap, err := h.book.Execute(c.Request.Context(), pc, ucBooking.BookInput{
		ClientName:      req.ClientName,
		ClientEmail:     req.ClientEmail,
		LocalTime:       req.Datetime,
		Timezone:        req.Timezone,
		Details:         req.Details,
		CustomFields:    req.CustomFields,
		ThankYouMessage: req.ThankYouMessage,
	})

	if err != nil {
		switch {
		case httperr.IsBusiness(err, "missing_required_fields"):
			httperr.BadRequest(c, "missing_required_fields", "Name, email and datetime are required.")
		case httperr.IsBusiness(err, "invalid_date_or_time"):
			httperr.BadRequest(c, "invalid_date_or_time", "Date, time or timezone is invalid.")
		case httperr.IsBusiness(err, "slot_conflict"):
			httperr.Conflict(c, "slot_conflict", "This slot is already booked.")
		default:
			httperr.Internal(c, "failed_to_book", "Something went wrong.")
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"id":         ap.ID,
		"start_time": timezone.FormatUTC(ap.StartTime),
	})
}

func (h *PublicHandler) mapResolveError(c *gin.Context, err error) {
	if httperr.IsBusiness(err, "page_not_found") {
		httperr.NotFound(c, "page_not_found", "Booking page not found.")
		return
	}
	httperr.Internal(c, "internal_error", "Something went wrong.")
}
