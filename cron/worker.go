package cron

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	bookingRepo "doctorsportal/database/repository/booking"
	"doctorsportal/models"
	"doctorsportal/services/tasks"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// BookingLookup is the read used to decide whether a reminder is still due.
type BookingLookup interface {
	GetByID(ctx context.Context, id string) (*models.Booking, error)
}

// NewReminderMux routes reminder tasks to their handlers.
func NewReminderMux(bookings BookingLookup, logger *zap.Logger) *asynq.ServeMux {
	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypePaymentReminder, HandlePaymentReminder(bookings, logger))
	return mux
}

// InitReminderWorker runs the async worker in background and returns the
// server so the caller can shut it down.
func InitReminderWorker(redisOpts asynq.RedisClientOpt, bookings BookingLookup, logger *zap.Logger) *asynq.Server {
	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
			Logger: logger.Sugar(),
		},
	)
	mux := NewReminderMux(bookings, logger)

	go func() {
		logger.Info("starting reminder worker")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			err := srv.Start(mux)
			if err == nil {
				return
			}
			logger.Error("reminder worker failed to start",
				zap.Int("attempt", attempts),
				zap.Int("maxAttempts", maxAttempts),
				zap.Error(err),
			)
			if attempts == maxAttempts {
				logger.Error("reminder worker disabled after max attempts")
				return
			}
			time.Sleep(time.Duration(attempts*2) * time.Second)
		}
	}()
	return srv
}

// HandlePaymentReminder re-reads the booking and reminds only while it is unpaid.
func HandlePaymentReminder(bookings BookingLookup, logger *zap.Logger) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p models.PaymentReminderPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			logger.Error("invalid reminder payload", zap.Error(err))
			return fmt.Errorf("invalid payload: %v: %w", err, asynq.SkipRetry)
		}

		booking, err := bookings.GetByID(ctx, p.BookingID)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrNotFound) || errors.Is(err, bookingRepo.ErrInvalidID) {
				logger.Warn("reminder dropped: booking not found", zap.String("bookingID", p.BookingID))
				return fmt.Errorf("booking %s: %v: %w", p.BookingID, err, asynq.SkipRetry)
			}
			return fmt.Errorf("failed to load booking %s: %w", p.BookingID, err)
		}

		if booking.Paid {
			logger.Debug("reminder skipped: booking already paid", zap.String("bookingID", p.BookingID))
			return nil
		}

		logger.Info("payment reminder",
			zap.String("bookingID", p.BookingID),
			zap.String("email", booking.Email),
			zap.String("treatment", booking.TreatmentName),
			zap.String("date", booking.AppointmentDate),
			zap.String("slot", booking.Slot),
		)
		return nil
	}
}
