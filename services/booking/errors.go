package booking

import (
	"errors"
	"fmt"
)

var (
	ErrBookingNotFound  = errors.New("booking not found")
	ErrInvalidBookingID = errors.New("invalid booking id")
)

// duplicateMessage is the rejection text for a second booking of the same
// service by the same user on the same date.
func duplicateMessage(date string) string {
	return fmt.Sprintf("You already have booking on %s", date)
}

// slotTakenMessage is the rejection text used when slot uniqueness is enforced.
func slotTakenMessage(treatmentName, date, slot string) string {
	return fmt.Sprintf("%s at %s on %s is already booked", treatmentName, slot, date)
}
