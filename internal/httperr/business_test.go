package httperr

import (
	"fmt"
	"testing"
)

func TestIsBusiness(t *testing.T) {
	err := ErrBusiness("slot_conflict")
	if !IsBusiness(err, "slot_conflict") {
		t.Fatal("expected slot_conflict to match")
	}
	if IsBusiness(err, "invalid_send_time") {
		t.Fatal("different code must not match")
	}
	if IsBusiness(fmt.Errorf("plain"), "slot_conflict") {
		t.Fatal("plain error must not match")
	}
}

func TestIsBusiness_Wrapped(t *testing.T) {
	err := fmt.Errorf("reserving slot: %w", ErrBusiness("slot_conflict"))
	if !IsBusiness(err, "slot_conflict") {
		t.Fatal("expected wrapped business error to match")
	}
}
