package doctorRepo

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

// ErrInvalidID is returned for ids that are not hex object ids.
var ErrInvalidID = errors.New("doctorRepo: invalid doctor id")

// DoctorRepository defines doctor data access.
type DoctorRepository interface {
	Create(ctx context.Context, doctor *models.Doctor) (string, error)
	GetAll(ctx context.Context) ([]models.Doctor, error)
	Delete(ctx context.Context, id string) (int64, error)
}

type MongoDoctorRepo struct {
	coll    *mongo.Collection
	timeout time.Duration
}

func NewMongoDoctorRepo(db *mongo.Database, timeout time.Duration) *MongoDoctorRepo {
	return NewMongoDoctorRepoWithCollection(db.Collection("doctors"), timeout)
}

func NewMongoDoctorRepoWithCollection(coll *mongo.Collection, timeout time.Duration) *MongoDoctorRepo {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &MongoDoctorRepo{coll: coll, timeout: timeout}
}

func (r *MongoDoctorRepo) Create(ctx context.Context, doctor *models.Doctor) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	if doctor.ID.IsZero() {
		doctor.ID = primitive.NewObjectID()
	}
	if _, err := r.coll.InsertOne(ctx, doctor); err != nil {
		return "", fmt.Errorf("failed to create doctor: %w", err)
	}
	return doctor.ID.Hex(), nil
}

func (r *MongoDoctorRepo) GetAll(ctx context.Context) ([]models.Doctor, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve doctors: %w", err)
	}
	defer cursor.Close(ctx)

	doctors := []models.Doctor{}
	if err := cursor.All(ctx, &doctors); err != nil {
		return nil, fmt.Errorf("failed to decode doctors: %w", err)
	}
	return doctors, nil
}

// Delete removes a doctor and reports how many documents were deleted.
func (r *MongoDoctorRepo) Delete(ctx context.Context, id string) (int64, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return 0, ErrInvalidID
	}

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return 0, fmt.Errorf("failed to delete doctor with id %s: %w", id, err)
	}
	return res.DeletedCount, nil
}
