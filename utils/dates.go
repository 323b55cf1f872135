package utils

import (
	"fmt"
	"strings"
	"time"
)

// ValidateDate checks that value is a calendar date in the canonical layout and
// returns it trimmed. Bookings and availability queries must agree on this form.
func ValidateDate(value, layout string) (string, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return "", fmt.Errorf("date is required")
	}
	parsed, err := time.Parse(layout, value)
	if err != nil {
		return "", fmt.Errorf("date %q does not match layout %q", value, layout)
	}
	// Reject values time.Parse accepts but that do not round-trip, e.g. "Jan 05, 2024" under "Jan 2, 2006".
	if parsed.Format(layout) != value {
		return "", fmt.Errorf("date %q is not in canonical form %q", value, parsed.Format(layout))
	}
	return value, nil
}
