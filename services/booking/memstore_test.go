package booking_test

import (
	"context"
	"fmt"
	"sync"

	bookingRepo "doctorsportal/database/repository/booking"
	"doctorsportal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// memStore is an in-memory BookingRepository. uniqueUserServiceDate and
// uniqueSlots emulate the store's unique indexes.
type memStore struct {
	mu       sync.Mutex
	bookings []models.Booking

	uniqueUserServiceDate bool
	uniqueSlots           bool

	// hideFromFind makes the pre-insert lookups miss, simulating a lost race.
	hideFromFind bool
	findErr      error
	insertErr    error
	inserts      int
}

func (m *memStore) filter(keep func(models.Booking) bool) ([]models.Booking, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.findErr != nil {
		return nil, m.findErr
	}
	out := []models.Booking{}
	if m.hideFromFind {
		return out, nil
	}
	for _, b := range m.bookings {
		if keep(b) {
			out = append(out, b)
		}
	}
	return out, nil
}

func (m *memStore) FindByDate(ctx context.Context, date string) ([]models.Booking, error) {
	return m.filter(func(b models.Booking) bool { return b.AppointmentDate == date })
}

func (m *memStore) FindByUserServiceDate(ctx context.Context, email, treatmentName, date string) ([]models.Booking, error) {
	return m.filter(func(b models.Booking) bool {
		return b.Email == email && b.TreatmentName == treatmentName && b.AppointmentDate == date
	})
}

func (m *memStore) FindByServiceDateSlot(ctx context.Context, treatmentName, date, slot string) ([]models.Booking, error) {
	return m.filter(func(b models.Booking) bool {
		return b.TreatmentName == treatmentName && b.AppointmentDate == date && b.Slot == slot
	})
}

func (m *memStore) FindByEmail(ctx context.Context, email string) ([]models.Booking, error) {
	return m.filter(func(b models.Booking) bool { return b.Email == email })
}

func (m *memStore) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, bookingRepo.ErrInvalidID
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.bookings {
		if m.bookings[i].ID == oid {
			b := m.bookings[i]
			return &b, nil
		}
	}
	return nil, bookingRepo.ErrNotFound
}

func (m *memStore) Insert(ctx context.Context, booking *models.Booking) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.insertErr != nil {
		return "", m.insertErr
	}
	for _, b := range m.bookings {
		if m.uniqueUserServiceDate && b.Email == booking.Email && b.TreatmentName == booking.TreatmentName && b.AppointmentDate == booking.AppointmentDate {
			return "", bookingRepo.ErrDuplicate
		}
		if m.uniqueSlots && b.TreatmentName == booking.TreatmentName && b.AppointmentDate == booking.AppointmentDate && b.Slot == booking.Slot {
			return "", fmt.Errorf("%w: %w", bookingRepo.ErrDuplicate, bookingRepo.ErrSlotTaken)
		}
	}
	booking.ID = primitive.NewObjectID()
	m.bookings = append(m.bookings, *booking)
	m.inserts++
	return booking.ID.Hex(), nil
}

func (m *memStore) UpdateOne(ctx context.Context, id string, patch models.BookingPatch) (*models.UpdateResult, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, bookingRepo.ErrInvalidID
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.bookings {
		if m.bookings[i].ID != oid {
			continue
		}
		if patch.Paid != nil {
			m.bookings[i].Paid = *patch.Paid
		}
		if patch.TransactionID != nil {
			m.bookings[i].TransactionID = *patch.TransactionID
		}
		return &models.UpdateResult{Acknowledged: true, MatchedCount: 1, ModifiedCount: 1}, nil
	}
	return nil, bookingRepo.ErrNotFound
}

func (m *memStore) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.bookings)
}
