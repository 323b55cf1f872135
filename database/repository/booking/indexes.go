package bookingRepo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	userServiceDateIndex = "user_service_date_unique"
	dateServiceIndex     = "date_service_idx"
	serviceDateSlotIndex = "service_date_slot_unique"
)

// EnsureIndexes creates the booking indexes. The user/service/date index is
// always unique so concurrent duplicate admissions cannot both be written.
// With uniqueSlots the (service, date, slot) triple is unique as well.
//
// The lookup index is created on its own first: existing duplicates can block
// the unique indexes but must not cost FindByDate its index.
func (r *MongoBookingRepo) EnsureIndexes(ctx context.Context, uniqueSlots bool) error {
	ctx, cancel := r.newContext(ctx)
	defer cancel()

	lookup := mongo.IndexModel{
		Keys:    bson.D{{Key: "appointmentDate", Value: 1}, {Key: "treatmentName", Value: 1}},
		Options: options.Index().SetName(dateServiceIndex),
	}
	if _, err := r.coll.Indexes().CreateOne(ctx, lookup); err != nil {
		return fmt.Errorf("failed to create booking lookup index: %w", err)
	}

	unique := []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "email", Value: 1},
				{Key: "treatmentName", Value: 1},
				{Key: "appointmentDate", Value: 1},
			},
			Options: options.Index().SetUnique(true).SetName(userServiceDateIndex),
		},
	}
	if uniqueSlots {
		unique = append(unique, mongo.IndexModel{
			Keys: bson.D{
				{Key: "treatmentName", Value: 1},
				{Key: "appointmentDate", Value: 1},
				{Key: "slot", Value: 1},
			},
			Options: options.Index().SetUnique(true).SetName(serviceDateSlotIndex),
		})
	}

	if _, err := r.coll.Indexes().CreateMany(ctx, unique); err != nil {
		return fmt.Errorf("failed to create unique booking indexes: %w", err)
	}
	return nil
}

// violatesSlotIndex reports whether a duplicate key error came from the
// (service, date, slot) index, judged by the keyPattern the server attaches.
func violatesSlotIndex(err error) bool {
	var we mongo.WriteException
	if !errors.As(err, &we) {
		return false
	}
	for _, e := range we.WriteErrors {
		pattern, ok := e.Raw.Lookup("keyPattern").DocumentOK()
		if !ok {
			continue
		}
		if _, err := pattern.LookupErr("slot"); err == nil {
			return true
		}
	}
	return false
}
