package availability

import (
	"context"
	"errors"
	"testing"

	"doctorsportal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubCatalog struct {
	offerings []models.ServiceOffering
	err       error
}

func (s *stubCatalog) ListAll(ctx context.Context) ([]models.ServiceOffering, error) {
	return s.offerings, s.err
}

type stubBookings struct {
	byDate map[string][]models.Booking
	err    error
	dates  []string
}

func (s *stubBookings) FindByDate(ctx context.Context, date string) ([]models.Booking, error) {
	s.dates = append(s.dates, date)
	return s.byDate[date], s.err
}

func catalogFixture() []models.ServiceOffering {
	return []models.ServiceOffering{
		{Name: "Cleaning", Price: 100, Slots: []string{"9AM", "10AM", "11AM"}},
		{Name: "Whitening", Price: 250, Slots: []string{"9AM", "1PM"}},
		{Name: "Checkup", Price: 50, Slots: []string{}},
	}
}

func booking(email, treatment, date, slot string) models.Booking {
	return models.Booking{Email: email, TreatmentName: treatment, AppointmentDate: date, Slot: slot}
}

func TestComputeAvailability_NoBookingsReturnsFullTemplates(t *testing.T) {
	svc := NewAvailabilityService(&stubCatalog{offerings: catalogFixture()}, &stubBookings{}, nil)

	got, err := svc.ComputeAvailability(context.Background(), "2024-01-05")
	require.NoError(t, err)
	assert.Equal(t, catalogFixture(), got)
}

func TestComputeAvailability_RemovesOnlyBookedSlotsOfSameService(t *testing.T) {
	bookings := &stubBookings{byDate: map[string][]models.Booking{
		"2024-01-05": {
			booking("a@x.com", "Cleaning", "2024-01-05", "10AM"),
			booking("c@x.com", "Whitening", "2024-01-05", "1PM"),
		},
	}}
	svc := NewAvailabilityService(&stubCatalog{offerings: catalogFixture()}, bookings, nil)

	got, err := svc.ComputeAvailability(context.Background(), "2024-01-05")
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, []string{"9AM", "11AM"}, got[0].Slots)
	assert.Equal(t, []string{"9AM"}, got[1].Slots, "9AM of another service stays open")
	assert.Equal(t, []string{}, got[2].Slots)
	assert.Equal(t, []string{"2024-01-05"}, bookings.dates)
}

func TestComputeAvailability_OtherDatesDoNotNarrow(t *testing.T) {
	bookings := &stubBookings{byDate: map[string][]models.Booking{
		"2024-01-06": {booking("a@x.com", "Cleaning", "2024-01-06", "10AM")},
	}}
	svc := NewAvailabilityService(&stubCatalog{offerings: catalogFixture()}, bookings, nil)

	got, err := svc.ComputeAvailability(context.Background(), "2024-01-05")
	require.NoError(t, err)
	assert.Equal(t, []string{"9AM", "10AM", "11AM"}, got[0].Slots)
}

func TestComputeAvailability_FullyBookedServiceStillListed(t *testing.T) {
	bookings := &stubBookings{byDate: map[string][]models.Booking{
		"2024-01-05": {
			booking("a@x.com", "Whitening", "2024-01-05", "9AM"),
			booking("b@x.com", "Whitening", "2024-01-05", "1PM"),
		},
	}}
	svc := NewAvailabilityService(&stubCatalog{offerings: catalogFixture()}, bookings, nil)

	got, err := svc.ComputeAvailability(context.Background(), "2024-01-05")
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "Whitening", got[1].Name)
	assert.NotNil(t, got[1].Slots)
	assert.Empty(t, got[1].Slots)
}

func TestComputeAvailability_CatalogErrorPropagates(t *testing.T) {
	storeErr := errors.New("connection refused")
	svc := NewAvailabilityService(&stubCatalog{err: storeErr}, &stubBookings{}, nil)

	_, err := svc.ComputeAvailability(context.Background(), "2024-01-05")
	require.Error(t, err)
	assert.ErrorIs(t, err, storeErr)
}

func TestComputeAvailability_BookingErrorPropagates(t *testing.T) {
	storeErr := errors.New("timeout")
	svc := NewAvailabilityService(&stubCatalog{offerings: catalogFixture()}, &stubBookings{err: storeErr}, nil)

	got, err := svc.ComputeAvailability(context.Background(), "2024-01-05")
	require.Error(t, err)
	assert.ErrorIs(t, err, storeErr)
	assert.Nil(t, got)
}

func TestNarrow_DoesNotMutateTemplates(t *testing.T) {
	offerings := catalogFixture()
	template := offerings[0].Slots

	got := Narrow(offerings, []models.Booking{booking("a@x.com", "Cleaning", "d", "9AM")})

	assert.Equal(t, []string{"9AM", "10AM", "11AM"}, template)
	assert.Equal(t, []string{"9AM", "10AM", "11AM"}, offerings[0].Slots)
	assert.Equal(t, []string{"10AM", "11AM"}, got[0].Slots)

	got[1].Slots[0] = "changed"
	assert.Equal(t, "9AM", offerings[1].Slots[0])
}

func TestNarrow_IsIdempotent(t *testing.T) {
	booked := []models.Booking{
		booking("a@x.com", "Cleaning", "d", "10AM"),
		booking("b@x.com", "Cleaning", "d", "10AM"),
	}
	once := Narrow(catalogFixture(), booked)
	twice := Narrow(once, booked)
	assert.Equal(t, once, twice)
}

func TestNarrow_IgnoresStraySlotsAndUnknownServices(t *testing.T) {
	booked := []models.Booking{
		booking("a@x.com", "Cleaning", "d", "3AM"),
		booking("b@x.com", "Surgery", "d", "9AM"),
	}
	got := Narrow(catalogFixture(), booked)
	assert.Equal(t, catalogFixture(), got)
}

func TestNarrow_PreservesTemplateOrder(t *testing.T) {
	offerings := []models.ServiceOffering{{Name: "X", Slots: []string{"c", "a", "d", "b"}}}
	got := Narrow(offerings, []models.Booking{booking("e", "X", "d", "d")})
	assert.Equal(t, []string{"c", "a", "b"}, got[0].Slots)
}
