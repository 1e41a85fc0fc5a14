package timezone

import (
	"errors"
	"time"
)

var ErrInvalid = errors.New("invalid date, time or timezone")

// Accepted layouts for client-supplied local date-times.
var layouts = []string{
	"2006-01-02 15:04",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	time.RFC3339,
}

// ToUTC converts a naive local date-time string plus an IANA zone name into
// an absolute UTC instant. An empty tz falls back to the process default
// zone; an unknown zone or unparsable string is a client error, not a fault.
func ToUTC(value, tz, defaultTZ string) (time.Time, error) {
	if tz == "" {
		tz = defaultTZ
	}

	loc, err := time.LoadLocation(tz)
	if err != nil {
		return time.Time{}, ErrInvalid
	}

	for _, layout := range layouts {
		if t, err := time.ParseInLocation(layout, value, loc); err == nil {
			return t.UTC(), nil
		}
	}

	return time.Time{}, ErrInvalid
}

// FormatUTC renders a stored instant the way the public API exposes it.
func FormatUTC(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}
