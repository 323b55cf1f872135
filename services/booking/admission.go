package booking

import (
	"context"
	"errors"
	"fmt"

	bookingRepo "doctorsportal/database/repository/booking"
	"doctorsportal/models"

	"go.uber.org/zap"
)

// RequestBooking admits or rejects a booking request.
//
// A user may hold one booking per service per date; a second request is
// rejected with a message, not an error. The check is read-then-write, and the
// store's unique index turns a lost race into the same rejection. Unless
// EnforceSlotUniqueness is set, two users can still claim the same slot.
func (s *DefaultBookingService) RequestBooking(ctx context.Context, req models.BookingRequest) (*models.BookingResult, error) {
	existing, err := s.Repo.FindByUserServiceDate(ctx, req.Email, req.TreatmentName, req.AppointmentDate)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing bookings: %w", err)
	}
	if len(existing) > 0 {
		s.Logger.Info("booking rejected: user already booked this service on date",
			zap.String("email", req.Email),
			zap.String("treatment", req.TreatmentName),
			zap.String("date", req.AppointmentDate),
		)
		return rejected(duplicateMessage(req.AppointmentDate)), nil
	}

	if s.EnforceSlotUniqueness {
		holders, err := s.Repo.FindByServiceDateSlot(ctx, req.TreatmentName, req.AppointmentDate, req.Slot)
		if err != nil {
			return nil, fmt.Errorf("failed to check slot holders: %w", err)
		}
		if len(holders) > 0 {
			s.Logger.Info("booking rejected: slot already taken",
				zap.String("treatment", req.TreatmentName),
				zap.String("date", req.AppointmentDate),
				zap.String("slot", req.Slot),
			)
			return rejected(slotTakenMessage(req.TreatmentName, req.AppointmentDate, req.Slot)), nil
		}
	}

	booking := models.Booking{
		Email:           req.Email,
		Patient:         req.Patient,
		Phone:           req.Phone,
		TreatmentName:   req.TreatmentName,
		TreatmentID:     req.TreatmentID,
		AppointmentDate: req.AppointmentDate,
		Slot:            req.Slot,
		Price:           req.Price,
		Paid:            false,
	}
	id, err := s.Repo.Insert(ctx, &booking)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrDuplicate) {
			s.Logger.Warn("booking rejected by unique index", zap.Error(err))
			if errors.Is(err, bookingRepo.ErrSlotTaken) {
				return rejected(slotTakenMessage(req.TreatmentName, req.AppointmentDate, req.Slot)), nil
			}
			return rejected(duplicateMessage(req.AppointmentDate)), nil
		}
		return nil, fmt.Errorf("failed to create booking: %w", err)
	}

	if s.Reminders != nil {
		if err := s.Reminders.SchedulePaymentReminder(ctx, booking); err != nil {
			// The booking stands; only the follow-up is lost.
			s.Logger.Warn("failed to schedule payment reminder", zap.String("bookingID", id), zap.Error(err))
		}
	}

	s.Logger.Info("booking accepted",
		zap.String("bookingID", id),
		zap.String("treatment", req.TreatmentName),
		zap.String("date", req.AppointmentDate),
		zap.String("slot", req.Slot),
	)
	return &models.BookingResult{Acknowledged: true, InsertedID: id}, nil
}

func rejected(message string) *models.BookingResult {
	return &models.BookingResult{Acknowledged: false, Message: message}
}
