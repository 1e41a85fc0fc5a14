package booking

import (
	"context"
	"errors"

	"gorm.io/gorm"

	domain "github.com/AgendlyHQ/booking-scheduler/internal/domain/booking"
	"github.com/AgendlyHQ/booking-scheduler/internal/httperr"
	"github.com/AgendlyHQ/booking-scheduler/internal/models"
)

// PageContext is a resolved public booking target.
type PageContext struct {
	Admin *models.Admin
	Page  *models.BookingPage
}

type ResolvePage struct {
	repo domain.Repository
}

func NewResolvePage(repo domain.Repository) *ResolvePage {
	return &ResolvePage{repo: repo}
}

// Execute resolves /:adminSlug/:pageSlug. A missing admin and a missing page
// produce the same code on purpose: public callers must not be able to probe
// which admin slugs exist.
func (uc *ResolvePage) Execute(
	ctx context.Context,
	adminSlug string,
	pageSlug string,
) (*PageContext, error) {

	admin, err := uc.repo.GetAdminBySlug(ctx, adminSlug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness("page_not_found")
		}
		return nil, err
	}

	page, err := uc.repo.GetPageBySlug(ctx, admin.ID, pageSlug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness("page_not_found")
		}
		return nil, err
	}

	return &PageContext{Admin: admin, Page: page}, nil
}
