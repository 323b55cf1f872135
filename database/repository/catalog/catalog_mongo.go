package catalogRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"doctorsportal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrDuplicateName is returned when an offering with the same name exists.
var ErrDuplicateName = errors.New("catalogRepo: service name already exists")

// MongoCatalogRepo implements CatalogRepository on the "appointmentServices" collection.
type MongoCatalogRepo struct {
	coll    *mongo.Collection
	timeout time.Duration
}

func NewMongoCatalogRepo(db *mongo.Database, timeout time.Duration) *MongoCatalogRepo {
	return NewMongoCatalogRepoWithCollection(db.Collection("appointmentServices"), timeout)
}

func NewMongoCatalogRepoWithCollection(coll *mongo.Collection, timeout time.Duration) *MongoCatalogRepo {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &MongoCatalogRepo{coll: coll, timeout: timeout}
}

func (r *MongoCatalogRepo) ListAll(ctx context.Context) ([]models.ServiceOffering, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve service offerings: %w", err)
	}
	defer cursor.Close(ctx)

	offerings := []models.ServiceOffering{}
	if err := cursor.All(ctx, &offerings); err != nil {
		return nil, fmt.Errorf("failed to decode service offerings: %w", err)
	}
	return offerings, nil
}

func (r *MongoCatalogRepo) ListNames(ctx context.Context) ([]models.ServiceName, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	opts := options.Find().SetProjection(bson.M{"name": 1})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve service names: %w", err)
	}
	defer cursor.Close(ctx)

	names := []models.ServiceName{}
	if err := cursor.All(ctx, &names); err != nil {
		return nil, fmt.Errorf("failed to decode service names: %w", err)
	}
	return names, nil
}

func (r *MongoCatalogRepo) Create(ctx context.Context, offering *models.ServiceOffering) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	if offering.ID.IsZero() {
		offering.ID = primitive.NewObjectID()
	}
	if offering.Slots == nil {
		offering.Slots = []string{}
	}
	if _, err := r.coll.InsertOne(ctx, offering); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return "", ErrDuplicateName
		}
		return "", fmt.Errorf("failed to create service offering: %w", err)
	}
	return offering.ID.Hex(), nil
}

// EnsureIndexes makes the service name unique; bookings join on it.
func (r *MongoCatalogRepo) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "name", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("unique_name"),
	})
	if err != nil {
		return fmt.Errorf("failed to create catalog indexes: %w", err)
	}
	return nil
}
