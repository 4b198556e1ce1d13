package appointmentRepo

import (
	"context"
	"time"

	"medicare/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AppointmentRepository is data access for booked appointments. Inserts
// happen only through the booking repository's transaction.
type AppointmentRepository interface {
	ListByEmail(ctx context.Context, email string) ([]models.Appointment, error)
	ListAll(ctx context.Context) ([]models.Appointment, error)
	// ListDelivered returns the email's appointments whose report is delivered.
	ListDelivered(ctx context.Context, email string) ([]models.Appointment, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Appointment, error)
	// Cancel marks the appointment with id AND owner email as Canceled.
	Cancel(ctx context.Context, id primitive.ObjectID, email string) (models.UpdateOutcome, error)
	// DeliverReport sets Done/Delivered and the link; never upserts.
	DeliverReport(ctx context.Context, id primitive.ObjectID, reportLink string) (models.UpdateOutcome, error)
	// MarkReminderSent stamps the appointment unless it was canceled.
	MarkReminderSent(ctx context.Context, id primitive.ObjectID, at time.Time) (models.UpdateOutcome, error)
	// BookingStats groups appointments by test title.
	BookingStats(ctx context.Context) ([]models.TestBookingStat, error)
	Count(ctx context.Context) (int64, error)
}
