package booking

import (
	"testing"
	"time"

	"github.com/AgendlyHQ/booking-scheduler/internal/httperr"
)

func TestValidateReminderTime(t *testing.T) {
	appt := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)

	cases := []struct {
		name   string
		sendAt time.Time
		ok     bool
	}{
		{"one minute before", appt.Add(-time.Minute), true},
		{"a day before", appt.Add(-24 * time.Hour), true},
		{"exactly at appointment", appt, false},
		{"one second after", appt.Add(time.Second), false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateReminderTime(tc.sendAt, appt)
			if tc.ok && err != nil {
				t.Fatalf("expected valid, got %v", err)
			}
			if !tc.ok {
				if !httperr.IsBusiness(err, "invalid_send_time") {
					t.Fatalf("expected invalid_send_time, got %v", err)
				}
			}
		})
	}
}

func TestValidateThankYouTime(t *testing.T) {
	appt := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)

	cases := []struct {
		name   string
		sendAt time.Time
		ok     bool
	}{
		{"one minute after", appt.Add(time.Minute), true},
		{"next day", appt.Add(24 * time.Hour), true},
		{"exactly at appointment", appt, false},
		{"before appointment", appt.Add(-time.Hour), false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateThankYouTime(tc.sendAt, appt)
			if tc.ok && err != nil {
				t.Fatalf("expected valid, got %v", err)
			}
			if !tc.ok && !httperr.IsBusiness(err, "invalid_send_time") {
				t.Fatalf("expected invalid_send_time, got %v", err)
			}
		})
	}
}

func TestDefaultThankYouAt(t *testing.T) {
	appt := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	got := DefaultThankYouAt(appt)
	want := time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("expected %s, got %s", want, got)
	}
	if err := ValidateThankYouTime(got, appt); err != nil {
		t.Fatalf("default thank-you time must satisfy its own rule: %v", err)
	}
}
