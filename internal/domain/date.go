package domain

import (
	"fmt"
	"time"
)

// DateFormat is the layout of every date field in the dataset.
// Zero-padded ISO dates compare correctly as plain strings.
const DateFormat = "2006-01-02"

// IsDate reports whether s is a valid YYYY-MM-DD date
func IsDate(s string) bool {
	if len(s) != len(DateFormat) {
		return false
	}
	_, err := time.Parse(DateFormat, s)
	return err == nil
}

// FormatDate formats t as YYYY-MM-DD in t's location
func FormatDate(t time.Time) string {
	return t.Format(DateFormat)
}

func invalid(msg string) error {
	return fmt.Errorf("%w: %s", ErrInvalid, msg)
}
