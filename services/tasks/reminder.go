package tasks

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"doctorsportal/models"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

const TypePaymentReminder = "booking:payment-reminder"

// NewPaymentReminderTask builds the delayed reminder for an unpaid booking.
// The task id is derived from the booking so a booking is reminded at most once.
func NewPaymentReminderTask(booking models.Booking, delay time.Duration) (*asynq.Task, []asynq.Option, error) {
	payload := models.PaymentReminderPayload{
		BookingID:       booking.ID.Hex(),
		Email:           booking.Email,
		TreatmentName:   booking.TreatmentName,
		AppointmentDate: booking.AppointmentDate,
	}
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypePaymentReminder, b)
	opts := []asynq.Option{
		asynq.ProcessIn(delay),
		asynq.TaskID("payment-reminder:" + payload.BookingID),
		asynq.MaxRetry(3),
	}
	return task, opts, nil
}

// Enqueuer is the part of *asynq.Client used for scheduling.
type Enqueuer interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

// AsynqReminderScheduler queues payment reminders on Redis.
type AsynqReminderScheduler struct {
	client Enqueuer
	delay  time.Duration
	logger *zap.Logger
}

func NewAsynqReminderScheduler(client Enqueuer, delay time.Duration, logger *zap.Logger) *AsynqReminderScheduler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AsynqReminderScheduler{client: client, delay: delay, logger: logger}
}

func (s *AsynqReminderScheduler) SchedulePaymentReminder(ctx context.Context, booking models.Booking) error {
	task, opts, err := NewPaymentReminderTask(booking, s.delay)
	if err != nil {
		return fmt.Errorf("failed to build reminder task: %w", err)
	}
	info, err := s.client.EnqueueContext(ctx, task, opts...)
	if err != nil {
		return fmt.Errorf("failed to enqueue reminder: %w", err)
	}
	s.logger.Debug("payment reminder scheduled",
		zap.String("taskID", info.ID),
		zap.String("bookingID", booking.ID.Hex()),
		zap.Time("processAt", info.NextProcessAt),
	)
	return nil
}
