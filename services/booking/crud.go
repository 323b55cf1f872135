package booking

import (
	"context"
	"errors"
	"fmt"

	bookingRepo "doctorsportal/database/repository/booking"
	"doctorsportal/models"
)

// GetBooking returns a single booking by id.
func (s *DefaultBookingService) GetBooking(ctx context.Context, id string) (*models.Booking, error) {
	b, err := s.Repo.GetByID(ctx, id)
	switch {
	case errors.Is(err, bookingRepo.ErrInvalidID):
		return nil, ErrInvalidBookingID
	case errors.Is(err, bookingRepo.ErrNotFound):
		return nil, ErrBookingNotFound
	case err != nil:
		return nil, fmt.Errorf("failed to fetch booking: %w", err)
	}
	return b, nil
}

// ListUserBookings returns every booking made with the given email.
func (s *DefaultBookingService) ListUserBookings(ctx context.Context, email string) ([]models.Booking, error) {
	bookings, err := s.Repo.FindByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch bookings: %w", err)
	}
	return bookings, nil
}
