package availability

import (
	"context"
	"fmt"

	"doctorsportal/models"

	"go.uber.org/zap"
)

// CatalogReader lists the service catalog.
type CatalogReader interface {
	ListAll(ctx context.Context) ([]models.ServiceOffering, error)
}

// BookingReader lists the bookings of one date.
type BookingReader interface {
	FindByDate(ctx context.Context, date string) ([]models.Booking, error)
}

// AvailabilityService computes the open slots of every service for a date.
type AvailabilityService interface {
	ComputeAvailability(ctx context.Context, date string) ([]models.ServiceOffering, error)
}

// DefaultAvailabilityService implements AvailabilityService.
type DefaultAvailabilityService struct {
	Catalog  CatalogReader
	Bookings BookingReader
	Logger   *zap.Logger
}

func NewAvailabilityService(catalog CatalogReader, bookings BookingReader, logger *zap.Logger) *DefaultAvailabilityService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DefaultAvailabilityService{Catalog: catalog, Bookings: bookings, Logger: logger}
}

// ComputeAvailability returns every offering with its slots narrowed to those
// not yet booked on date. The date is compared verbatim with stored bookings.
func (s *DefaultAvailabilityService) ComputeAvailability(ctx context.Context, date string) ([]models.ServiceOffering, error) {
	offerings, err := s.Catalog.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load service catalog: %w", err)
	}

	booked, err := s.Bookings.FindByDate(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("failed to load bookings for %s: %w", date, err)
	}

	result := Narrow(offerings, booked)
	s.Logger.Debug("availability computed",
		zap.String("date", date),
		zap.Int("services", len(result)),
		zap.Int("bookings", len(booked)),
	)
	return result, nil
}

// Narrow removes booked slots from each offering's template. Bookings are
// grouped by treatment name first; remaining slots keep template order.
// The input offerings are not modified.
func Narrow(offerings []models.ServiceOffering, booked []models.Booking) []models.ServiceOffering {
	taken := make(map[string]map[string]struct{}, len(offerings))
	for _, b := range booked {
		slots, ok := taken[b.TreatmentName]
		if !ok {
			slots = make(map[string]struct{})
			taken[b.TreatmentName] = slots
		}
		slots[b.Slot] = struct{}{}
	}

	result := make([]models.ServiceOffering, 0, len(offerings))
	for _, o := range offerings {
		consumed := taken[o.Name]
		remaining := make([]string, 0, len(o.Slots))
		for _, slot := range o.Slots {
			if _, isTaken := consumed[slot]; isTaken {
				continue
			}
			remaining = append(remaining, slot)
		}
		o.Slots = remaining
		result = append(result, o)
	}
	return result
}
