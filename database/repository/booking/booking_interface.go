package bookingRepo

import (
	"context"

	"doctorsportal/models"
)

// BookingRepository defines the booking data access used by admission,
// availability and payment finalization.
type BookingRepository interface {
	// FindByDate returns every booking on the given date, all services and users.
	FindByDate(ctx context.Context, date string) ([]models.Booking, error)
	// FindByUserServiceDate returns the user's bookings for one service on one date.
	FindByUserServiceDate(ctx context.Context, email, treatmentName, date string) ([]models.Booking, error)
	// FindByServiceDateSlot returns the bookings holding one slot of a service on a date.
	FindByServiceDateSlot(ctx context.Context, treatmentName, date, slot string) ([]models.Booking, error)
	// FindByEmail returns all bookings of a user.
	FindByEmail(ctx context.Context, email string) ([]models.Booking, error)
	// GetByID retrieves a booking by its hex object id.
	GetByID(ctx context.Context, id string) (*models.Booking, error)
	// Insert persists a new booking and returns its id.
	Insert(ctx context.Context, booking *models.Booking) (string, error)
	// UpdateOne applies patch to the booking with the given id.
	UpdateOne(ctx context.Context, id string, patch models.BookingPatch) (*models.UpdateResult, error)
}
