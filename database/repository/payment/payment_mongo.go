package paymentRepo

import (
	"context"
	"fmt"
	"time"

	"doctorsportal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// PaymentRepository persists payment records.
type PaymentRepository interface {
	Insert(ctx context.Context, payment *models.Payment) (string, error)
}

type MongoPaymentRepo struct {
	coll    *mongo.Collection
	timeout time.Duration
}

func NewMongoPaymentRepo(db *mongo.Database, timeout time.Duration) *MongoPaymentRepo {
	return NewMongoPaymentRepoWithCollection(db.Collection("payments"), timeout)
}

func NewMongoPaymentRepoWithCollection(coll *mongo.Collection, timeout time.Duration) *MongoPaymentRepo {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &MongoPaymentRepo{coll: coll, timeout: timeout}
}

func (r *MongoPaymentRepo) Insert(ctx context.Context, payment *models.Payment) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	if payment.ID.IsZero() {
		payment.ID = primitive.NewObjectID()
	}
	if payment.CreatedAt.IsZero() {
		payment.CreatedAt = time.Now().UTC()
	}
	if _, err := r.coll.InsertOne(ctx, payment); err != nil {
		return "", fmt.Errorf("failed to record payment for booking %s: %w", payment.BookingID, err)
	}
	return payment.ID.Hex(), nil
}
