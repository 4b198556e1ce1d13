package booking

import (
	"context"
	"time"

	appointmentRepo "medicare/database/repository/appointment"
	bookingRepo "medicare/database/repository/booking"
	userRepo "medicare/database/repository/user"
	"medicare/models"
)

// BookingService covers the booking flow and the appointment lifecycle.
// Methods taking a principal enforce that it owns the requested records.
type BookingService interface {
	Book(ctx context.Context, principal, testID string, req models.AppointmentRequest) (*models.BookingResult, error)
	DecrementSlot(ctx context.Context, testID, date string) (models.UpdateOutcome, error)
	ListUpcoming(ctx context.Context, principal, email string) ([]models.Appointment, error)
	Cancel(ctx context.Context, principal, appointmentID string) (models.UpdateOutcome, error)
	ListAll(ctx context.Context) ([]models.Appointment, error)
	DeliverReport(ctx context.Context, appointmentID, reportLink string) (models.UpdateOutcome, error)
	Results(ctx context.Context, principal, email string) ([]models.Appointment, error)
	Summary(ctx context.Context, principal, email string) (*models.AppointmentSummary, error)
	HandleReminder(ctx context.Context, payload models.ReminderPayload) error
}

// ReminderScheduler queues the day-before reminder for a booking.
type ReminderScheduler interface {
	ScheduleReminder(ctx context.Context, payload models.ReminderPayload) error
}

// DefaultBookingService is the production implementation. Reminders may be
// nil when no queue is configured.
type DefaultBookingService struct {
	Bookings     bookingRepo.BookingRepository
	Appointments appointmentRepo.AppointmentRepository
	Users        userRepo.UserRepository
	Reminders    ReminderScheduler
	Now          func() time.Time
}

func NewBookingService(
	bookings bookingRepo.BookingRepository,
	appointments appointmentRepo.AppointmentRepository,
	users userRepo.UserRepository,
	reminders ReminderScheduler,
) *DefaultBookingService {
	return &DefaultBookingService{
		Bookings:     bookings,
		Appointments: appointments,
		Users:        users,
		Reminders:    reminders,
		Now:          time.Now,
	}
}
