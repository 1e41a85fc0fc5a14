package booking

import (
	"context"
	"testing"

	"github.com/AgendlyHQ/booking-scheduler/internal/httperr"
)

func TestResolvePage_Found(t *testing.T) {
	repo := newFakeRepo()
	testContext(repo)
	uc := NewResolvePage(repo)

	pc, err := uc.Execute(context.Background(), "jdoe", "consult")
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if pc.Admin.Slug != "jdoe" || pc.Page.Slug != "consult" {
		t.Fatalf("unexpected context: admin=%s page=%s", pc.Admin.Slug, pc.Page.Slug)
	}
}

// A missing admin and a missing page must be indistinguishable so the public
// endpoint cannot be used to probe admin slugs.
func TestResolvePage_MissesAreConflated(t *testing.T) {
	repo := newFakeRepo()
	testContext(repo)
	uc := NewResolvePage(repo)

	_, adminMiss := uc.Execute(context.Background(), "nobody", "consult")
	_, pageMiss := uc.Execute(context.Background(), "jdoe", "nothing")

	if !httperr.IsBusiness(adminMiss, "page_not_found") {
		t.Fatalf("admin miss: expected page_not_found, got %v", adminMiss)
	}
	if !httperr.IsBusiness(pageMiss, "page_not_found") {
		t.Fatalf("page miss: expected page_not_found, got %v", pageMiss)
	}
	if adminMiss.Error() != pageMiss.Error() {
		t.Fatalf("misses must be indistinguishable: %v vs %v", adminMiss, pageMiss)
	}
}
