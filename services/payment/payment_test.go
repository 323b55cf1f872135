package payment

import (
	"context"
	"errors"
	"testing"

	bookingRepo "doctorsportal/database/repository/booking"
	"doctorsportal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type fakeGateway struct {
	amount   int64
	currency string
	err      error
}

func (g *fakeGateway) CreateIntent(ctx context.Context, amount int64, currency string) (string, error) {
	g.amount, g.currency = amount, currency
	if g.err != nil {
		return "", g.err
	}
	return "pi_123_secret_456", nil
}

type fakePayments struct {
	stored []models.Payment
	err    error
}

func (f *fakePayments) Insert(ctx context.Context, p *models.Payment) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	p.ID = primitive.NewObjectID()
	f.stored = append(f.stored, *p)
	return p.ID.Hex(), nil
}

type fakeBookings struct {
	id     string
	patch  models.BookingPatch
	err    error
	getErr error
}

func (f *fakeBookings) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return &models.Booking{Email: "a@x.com", TreatmentName: "Cleaning"}, nil
}

func (f *fakeBookings) UpdateOne(ctx context.Context, id string, patch models.BookingPatch) (*models.UpdateResult, error) {
	f.id, f.patch = id, patch
	if f.err != nil {
		return nil, f.err
	}
	return &models.UpdateResult{Acknowledged: true, MatchedCount: 1, ModifiedCount: 1}, nil
}

func TestToMinorUnits(t *testing.T) {
	cases := []struct {
		price float64
		want  int64
	}{
		{100, 10000},
		{19.99, 1999},
		{0.29, 29},
	}
	for _, tc := range cases {
		got, err := ToMinorUnits(tc.price)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got, "price %v", tc.price)
	}

	for _, bad := range []float64{0, -5} {
		_, err := ToMinorUnits(bad)
		assert.ErrorIs(t, err, ErrInvalidAmount)
	}
}

func TestCreateIntent_UsesMinorUnitsAndCurrency(t *testing.T) {
	gw := &fakeGateway{}
	svc := NewPaymentService(gw, &fakePayments{}, &fakeBookings{}, "", nil)

	secret, err := svc.CreateIntent(context.Background(), 100)
	require.NoError(t, err)
	assert.Equal(t, "pi_123_secret_456", secret)
	assert.Equal(t, int64(10000), gw.amount)
	assert.Equal(t, "usd", gw.currency)
}

func TestCreateIntent_GatewayErrorPropagates(t *testing.T) {
	gwErr := errors.New("card_declined")
	svc := NewPaymentService(&fakeGateway{err: gwErr}, &fakePayments{}, &fakeBookings{}, "eur", nil)

	_, err := svc.CreateIntent(context.Background(), 10)
	assert.ErrorIs(t, err, gwErr)
}

func TestFinalize_RecordsPaymentThenMarksBookingPaid(t *testing.T) {
	payments := &fakePayments{}
	bookings := &fakeBookings{}
	svc := NewPaymentService(&fakeGateway{}, payments, bookings, "usd", nil)

	res, err := svc.Finalize(context.Background(), models.Payment{
		BookingID:     "65a000000000000000000001",
		TransactionID: "pi_abc",
		Email:         "a@x.com",
		Price:         100,
	})
	require.NoError(t, err)
	assert.True(t, res.Acknowledged)
	require.Len(t, payments.stored, 1)
	assert.Equal(t, payments.stored[0].ID.Hex(), res.InsertedID)

	assert.Equal(t, "65a000000000000000000001", bookings.id)
	require.NotNil(t, bookings.patch.Paid)
	assert.True(t, *bookings.patch.Paid)
	require.NotNil(t, bookings.patch.TransactionID)
	assert.Equal(t, "pi_abc", *bookings.patch.TransactionID)
}

func TestFinalize_BookingUpdateFailureKeepsPayment(t *testing.T) {
	payments := &fakePayments{}
	svc := NewPaymentService(&fakeGateway{}, payments, &fakeBookings{err: errors.New("not found")}, "usd", nil)

	res, err := svc.Finalize(context.Background(), models.Payment{BookingID: "65a000000000000000000001", TransactionID: "pi_abc"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrBookingNotUpdated)
	require.NotNil(t, res)
	assert.NotEmpty(t, res.InsertedID)
	assert.Len(t, payments.stored, 1)
}

func TestFinalize_PaymentInsertFailureSkipsBookingUpdate(t *testing.T) {
	bookings := &fakeBookings{}
	svc := NewPaymentService(&fakeGateway{}, &fakePayments{err: errors.New("write concern")}, bookings, "usd", nil)

	res, err := svc.Finalize(context.Background(), models.Payment{BookingID: "65a000000000000000000001", TransactionID: "pi_abc"})
	require.Error(t, err)
	assert.Nil(t, res)
	assert.Empty(t, bookings.id)
}

func TestFinalize_RequiresBookingAndTransaction(t *testing.T) {
	svc := NewPaymentService(&fakeGateway{}, &fakePayments{}, &fakeBookings{}, "usd", nil)

	_, err := svc.Finalize(context.Background(), models.Payment{TransactionID: "pi_abc"})
	assert.ErrorIs(t, err, ErrInvalidPayment)
	_, err = svc.Finalize(context.Background(), models.Payment{BookingID: "65a000000000000000000001"})
	assert.ErrorIs(t, err, ErrInvalidPayment)
}

func TestFinalize_RejectsMalformedBookingIDBeforeWriting(t *testing.T) {
	payments := &fakePayments{}
	bookings := &fakeBookings{err: bookingRepo.ErrInvalidID}
	svc := NewPaymentService(&fakeGateway{}, payments, bookings, "usd", nil)

	res, err := svc.Finalize(context.Background(), models.Payment{BookingID: "not-an-id", TransactionID: "pi_1"})
	assert.ErrorIs(t, err, ErrInvalidPayment)
	assert.NotErrorIs(t, err, ErrBookingNotUpdated)
	assert.Nil(t, res)
	assert.Empty(t, payments.stored)
	assert.Empty(t, bookings.id)
}

func TestFinalize_UnknownBookingStoresNothing(t *testing.T) {
	payments := &fakePayments{}
	bookings := &fakeBookings{getErr: bookingRepo.ErrNotFound}
	svc := NewPaymentService(&fakeGateway{}, payments, bookings, "usd", nil)

	res, err := svc.Finalize(context.Background(), models.Payment{BookingID: "65a000000000000000000009", TransactionID: "pi_1"})
	assert.ErrorIs(t, err, ErrUnknownBooking)
	assert.Nil(t, res)
	assert.Empty(t, payments.stored)
}

func TestFinalize_BookingLookupFailureStoresNothing(t *testing.T) {
	payments := &fakePayments{}
	lookupErr := errors.New("server selection timeout")
	svc := NewPaymentService(&fakeGateway{}, payments, &fakeBookings{getErr: lookupErr}, "usd", nil)

	_, err := svc.Finalize(context.Background(), models.Payment{BookingID: "65a000000000000000000001", TransactionID: "pi_1"})
	assert.ErrorIs(t, err, lookupErr)
	assert.Empty(t, payments.stored)
}
