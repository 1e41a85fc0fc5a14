package timezone

import (
	"testing"
	"time"
)

func TestToUTC_ConvertsZone(t *testing.T) {
	got, err := ToUTC("2025-06-01 10:00", "Europe/London", "UTC")
	if err != nil {
		t.Fatalf("ToUTC failed: %v", err)
	}
	want := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("expected %s, got %s", want, got)
	}
}

func TestToUTC_WinterOffset(t *testing.T) {
	got, err := ToUTC("2025-03-10 14:00", "America/New_York", "UTC")
	if err != nil {
		t.Fatalf("ToUTC failed: %v", err)
	}
	// EDT by March 10, UTC-4.
	want := time.Date(2025, 3, 10, 18, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("expected %s, got %s", want, got)
	}
}

func TestToUTC_DefaultZoneFallback(t *testing.T) {
	got, err := ToUTC("2025-06-01 10:00", "", "Europe/London")
	if err != nil {
		t.Fatalf("ToUTC failed: %v", err)
	}
	want := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("expected %s, got %s", want, got)
	}
}

func TestToUTC_RejectsBadInput(t *testing.T) {
	cases := []struct {
		name  string
		value string
		tz    string
	}{
		{"unknown zone", "2025-06-01 10:00", "Mars/Olympus"},
		{"garbage datetime", "not-a-date", "UTC"},
		{"empty datetime", "", "UTC"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := ToUTC(tc.value, tc.tz, "UTC"); err == nil {
				t.Fatalf("expected error for %q in %q", tc.value, tc.tz)
			}
		})
	}
}

func TestToUTC_SameInstantAcrossRepresentations(t *testing.T) {
	local, err := ToUTC("2025-03-10 14:00", "America/New_York", "UTC")
	if err != nil {
		t.Fatalf("ToUTC failed: %v", err)
	}
	direct, err := ToUTC("2025-03-10 18:00", "UTC", "UTC")
	if err != nil {
		t.Fatalf("ToUTC failed: %v", err)
	}
	if !local.Equal(direct) {
		t.Fatalf("expected same instant, got %s vs %s", local, direct)
	}
}
