package bookingRepo

import (
	"context"
	"errors"

	"medicare/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ErrSlotUnavailable means no date entry matched: the test is missing, the
// date is not offered, or its slots are already at zero.
var ErrSlotUnavailable = errors.New("no matching date with remaining slots")

// BookingRepository owns the writes that touch slot inventory.
type BookingRepository interface {
	// DecrementSlot takes one slot from the given date of a test. A zero
	// MatchedCount means the date was missing or exhausted.
	DecrementSlot(ctx context.Context, testID primitive.ObjectID, date string) (models.UpdateOutcome, error)
	// BookTransactionally decrements the date's slot and inserts appt in one
	// transaction. It returns ErrSlotUnavailable, with nothing written, when
	// the decrement matches no document.
	BookTransactionally(ctx context.Context, testID primitive.ObjectID, date string, appt *models.Appointment) (*models.BookingResult, error)
}
