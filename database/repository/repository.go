package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	bookingRepo "doctorsportal/database/repository/booking"
	catalogRepo "doctorsportal/database/repository/catalog"
	doctorRepo "doctorsportal/database/repository/doctor"
	paymentRepo "doctorsportal/database/repository/payment"
	userRepo "doctorsportal/database/repository/user"

	"go.mongodb.org/mongo-driver/mongo"
)

// Re-export the repository interfaces so services depend on one package.
type (
	BookingRepository = bookingRepo.BookingRepository
	CatalogRepository = catalogRepo.CatalogRepository
	UserRepository    = userRepo.UserRepository
	DoctorRepository  = doctorRepo.DoctorRepository
	PaymentRepository = paymentRepo.PaymentRepository
)

// Repositories bundles the Mongo-backed repositories of one database.
type Repositories struct {
	Bookings *bookingRepo.MongoBookingRepo
	Catalog  *catalogRepo.MongoCatalogRepo
	Users    *userRepo.MongoUserRepo
	Doctors  *doctorRepo.MongoDoctorRepo
	Payments *paymentRepo.MongoPaymentRepo
}

// NewMongoRepositories builds every repository on db with the given per-call timeout.
func NewMongoRepositories(db *mongo.Database, timeout time.Duration) *Repositories {
	return &Repositories{
		Bookings: bookingRepo.NewMongoBookingRepo(db, timeout),
		Catalog:  catalogRepo.NewMongoCatalogRepo(db, timeout),
		Users:    userRepo.NewMongoUserRepo(db, timeout),
		Doctors:  doctorRepo.NewMongoDoctorRepo(db, timeout),
		Payments: paymentRepo.NewMongoPaymentRepo(db, timeout),
	}
}

// EnsureIndexes installs the indexes admission and lookups rely on. Every
// collection is attempted; the failures are joined.
func (r *Repositories) EnsureIndexes(ctx context.Context, uniqueSlots bool) error {
	var errs []error
	if err := r.Bookings.EnsureIndexes(ctx, uniqueSlots); err != nil {
		errs = append(errs, fmt.Errorf("bookings: %w", err))
	}
	if err := r.Catalog.EnsureIndexes(ctx); err != nil {
		errs = append(errs, fmt.Errorf("appointmentServices: %w", err))
	}
	if err := r.Users.EnsureIndexes(ctx); err != nil {
		errs = append(errs, fmt.Errorf("users: %w", err))
	}
	return errors.Join(errs...)
}
