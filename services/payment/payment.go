package payment

import (
	"context"
	"errors"
	"fmt"
	"math"

	bookingRepo "doctorsportal/database/repository/booking"
	paymentRepo "doctorsportal/database/repository/payment"
	"doctorsportal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

var (
	ErrInvalidAmount  = errors.New("invalid payment amount")
	ErrInvalidPayment = errors.New("payment must reference a booking and a transaction")
	ErrUnknownBooking = errors.New("payment references an unknown booking")
	// ErrBookingNotUpdated means the payment was stored but the booking is still unpaid.
	ErrBookingNotUpdated = errors.New("payment recorded but booking was not marked paid")
)

// BookingUpdater looks up bookings and marks them as paid.
type BookingUpdater interface {
	GetByID(ctx context.Context, id string) (*models.Booking, error)
	UpdateOne(ctx context.Context, id string, patch models.BookingPatch) (*models.UpdateResult, error)
}

// PaymentService defines payment intent creation and payment finalization.
type PaymentService interface {
	CreateIntent(ctx context.Context, price float64) (string, error)
	Finalize(ctx context.Context, p models.Payment) (*models.InsertResult, error)
}

// DefaultPaymentService implements PaymentService.
type DefaultPaymentService struct {
	Gateway  PaymentGateway
	Payments paymentRepo.PaymentRepository
	Bookings BookingUpdater
	Currency string
	Logger   *zap.Logger
}

func NewPaymentService(gateway PaymentGateway, payments paymentRepo.PaymentRepository, bookings BookingUpdater, currency string, logger *zap.Logger) *DefaultPaymentService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if currency == "" {
		currency = "usd"
	}
	return &DefaultPaymentService{
		Gateway:  gateway,
		Payments: payments,
		Bookings: bookings,
		Currency: currency,
		Logger:   logger,
	}
}

// ToMinorUnits converts a price in major units to the gateway's integer amount.
func ToMinorUnits(price float64) (int64, error) {
	if price <= 0 || math.IsNaN(price) || math.IsInf(price, 0) {
		return 0, ErrInvalidAmount
	}
	return int64(math.Round(price * 100)), nil
}

// CreateIntent asks the gateway for a client secret covering price.
func (s *DefaultPaymentService) CreateIntent(ctx context.Context, price float64) (string, error) {
	amount, err := ToMinorUnits(price)
	if err != nil {
		return "", err
	}
	secret, err := s.Gateway.CreateIntent(ctx, amount, s.Currency)
	if err != nil {
		s.Logger.Error("payment intent creation failed", zap.Int64("amount", amount), zap.Error(err))
		return "", err
	}
	s.Logger.Info("payment intent created", zap.Int64("amount", amount), zap.String("currency", s.Currency))
	return secret, nil
}

// Finalize checks the booking exists, records the payment, then marks the
// booking paid. The two writes are not atomic: when the second fails the payment stays recorded and
// ErrBookingNotUpdated is returned together with the insert result.
func (s *DefaultPaymentService) Finalize(ctx context.Context, p models.Payment) (*models.InsertResult, error) {
	if p.BookingID == "" || p.TransactionID == "" {
		return nil, ErrInvalidPayment
	}
	// Nothing is written for a payment that cannot be attached to a booking.
	if _, err := primitive.ObjectIDFromHex(p.BookingID); err != nil {
		return nil, fmt.Errorf("%w: booking id %q is not an object id", ErrInvalidPayment, p.BookingID)
	}
	if _, err := s.Bookings.GetByID(ctx, p.BookingID); err != nil {
		if errors.Is(err, bookingRepo.ErrNotFound) {
			return nil, ErrUnknownBooking
		}
		return nil, fmt.Errorf("failed to load booking %s: %w", p.BookingID, err)
	}

	id, err := s.Payments.Insert(ctx, &p)
	if err != nil {
		return nil, fmt.Errorf("failed to record payment: %w", err)
	}
	result := &models.InsertResult{Acknowledged: true, InsertedID: id}

	paid := true
	patch := models.BookingPatch{Paid: &paid, TransactionID: &p.TransactionID}
	if _, err := s.Bookings.UpdateOne(ctx, p.BookingID, patch); err != nil {
		s.Logger.Error("booking not marked paid after payment",
			zap.String("paymentID", id),
			zap.String("bookingID", p.BookingID),
			zap.Error(err),
		)
		return result, fmt.Errorf("%w: %v", ErrBookingNotUpdated, err)
	}

	s.Logger.Info("payment finalized", zap.String("paymentID", id), zap.String("bookingID", p.BookingID))
	return result, nil
}
