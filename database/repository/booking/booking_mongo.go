package bookingRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"doctorsportal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoBookingRepo implements BookingRepository using MongoDB.
type MongoBookingRepo struct {
	coll    *mongo.Collection
	timeout time.Duration
}

// NewMongoBookingRepo creates a booking repository on the "bookings" collection.
func NewMongoBookingRepo(db *mongo.Database, timeout time.Duration) *MongoBookingRepo {
	return NewMongoBookingRepoWithCollection(db.Collection("bookings"), timeout)
}

// NewMongoBookingRepoWithCollection allows injecting a specific collection (tests, migrations).
func NewMongoBookingRepoWithCollection(coll *mongo.Collection, timeout time.Duration) *MongoBookingRepo {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &MongoBookingRepo{coll: coll, timeout: timeout}
}

// newContext bounds a single store call.
func (r *MongoBookingRepo) newContext(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, r.timeout)
}

func (r *MongoBookingRepo) find(ctx context.Context, filter bson.M) ([]models.Booking, error) {
	ctx, cancel := r.newContext(ctx)
	defer cancel()

	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	bookings := []models.Booking{}
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *MongoBookingRepo) FindByDate(ctx context.Context, date string) ([]models.Booking, error) {
	bookings, err := r.find(ctx, bson.M{"appointmentDate": date})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch bookings for %s: %w", date, err)
	}
	return bookings, nil
}

func (r *MongoBookingRepo) FindByUserServiceDate(ctx context.Context, email, treatmentName, date string) ([]models.Booking, error) {
	filter := bson.M{
		"appointmentDate": date,
		"email":           email,
		"treatmentName":   treatmentName,
	}
	bookings, err := r.find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch bookings of %s for %s on %s: %w", email, treatmentName, date, err)
	}
	return bookings, nil
}

func (r *MongoBookingRepo) FindByServiceDateSlot(ctx context.Context, treatmentName, date, slot string) ([]models.Booking, error) {
	filter := bson.M{
		"appointmentDate": date,
		"treatmentName":   treatmentName,
		"slot":            slot,
	}
	bookings, err := r.find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch bookings of slot %s for %s on %s: %w", slot, treatmentName, date, err)
	}
	return bookings, nil
}

func (r *MongoBookingRepo) FindByEmail(ctx context.Context, email string) ([]models.Booking, error) {
	bookings, err := r.find(ctx, bson.M{"email": email})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch bookings of %s: %w", email, err)
	}
	return bookings, nil
}

func (r *MongoBookingRepo) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidID
	}

	ctx, cancel := r.newContext(ctx)
	defer cancel()

	var booking models.Booking
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&booking); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch booking %s: %w", id, err)
	}
	return &booking, nil
}

// Insert stores the booking. Unique index violations surface as ErrDuplicate,
// and additionally as ErrSlotTaken when the slot index was hit.
func (r *MongoBookingRepo) Insert(ctx context.Context, booking *models.Booking) (string, error) {
	ctx, cancel := r.newContext(ctx)
	defer cancel()

	if booking.ID.IsZero() {
		booking.ID = primitive.NewObjectID()
	}
	if booking.CreatedAt.IsZero() {
		booking.CreatedAt = time.Now().UTC()
	}

	if _, err := r.coll.InsertOne(ctx, booking); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			if violatesSlotIndex(err) {
				return "", fmt.Errorf("%w: %w: %v", ErrDuplicate, ErrSlotTaken, err)
			}
			return "", fmt.Errorf("%w: %v", ErrDuplicate, err)
		}
		return "", fmt.Errorf("error creating booking: %w", err)
	}
	return booking.ID.Hex(), nil
}

func (r *MongoBookingRepo) UpdateOne(ctx context.Context, id string, patch models.BookingPatch) (*models.UpdateResult, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidID
	}

	ctx, cancel := r.newContext(ctx)
	defer cancel()

	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": patch})
	if err != nil {
		return nil, fmt.Errorf("error updating booking %s: %w", id, err)
	}
	if res.MatchedCount == 0 {
		return nil, ErrNotFound
	}
	return &models.UpdateResult{
		Acknowledged:  true,
		MatchedCount:  res.MatchedCount,
		ModifiedCount: res.ModifiedCount,
	}, nil
}
