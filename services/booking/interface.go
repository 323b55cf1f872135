package booking

import (
	"context"

	bookingRepo "doctorsportal/database/repository/booking"
	"doctorsportal/models"

	"go.uber.org/zap"
)

// BookingService defines admission and lookup of bookings.
type BookingService interface {
	RequestBooking(ctx context.Context, req models.BookingRequest) (*models.BookingResult, error)
	GetBooking(ctx context.Context, id string) (*models.Booking, error)
	ListUserBookings(ctx context.Context, email string) ([]models.Booking, error)
}

// ReminderScheduler queues the follow-up for a booking that is still unpaid.
type ReminderScheduler interface {
	SchedulePaymentReminder(ctx context.Context, booking models.Booking) error
}

// DefaultBookingService implements BookingService.
type DefaultBookingService struct {
	Repo      bookingRepo.BookingRepository
	Reminders ReminderScheduler // optional
	Logger    *zap.Logger

	// EnforceSlotUniqueness rejects a request whose slot is already held by
	// anyone. Off by default: only the per-user rule is checked.
	EnforceSlotUniqueness bool
}

func NewBookingService(repo bookingRepo.BookingRepository, reminders ReminderScheduler, logger *zap.Logger, enforceSlotUniqueness bool) *DefaultBookingService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DefaultBookingService{
		Repo:                  repo,
		Reminders:             reminders,
		Logger:                logger,
		EnforceSlotUniqueness: enforceSlotUniqueness,
	}
}
