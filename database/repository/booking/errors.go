package bookingRepo

import "errors"

var (
	// ErrNotFound is returned when no booking matches the given id.
	ErrNotFound = errors.New("bookingRepo: booking not found")
	// ErrInvalidID is returned for ids that are not 24-char hex object ids.
	ErrInvalidID = errors.New("bookingRepo: invalid booking id")
	// ErrDuplicate is returned when an insert violates a unique booking index.
	ErrDuplicate = errors.New("bookingRepo: duplicate booking")
	// ErrSlotTaken accompanies ErrDuplicate when the violated index is the
	// (service, date, slot) one rather than the per-user one.
	ErrSlotTaken = errors.New("bookingRepo: slot already booked")
)
