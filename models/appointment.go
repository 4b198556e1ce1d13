package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	TestStatusPending  = "Pending"
	TestStatusCanceled = "Canceled"
	TestStatusDone     = "Done"

	ReportStatusPending   = "Pending"
	ReportStatusDelivered = "Delivered"
)

// Appointment is one booking of one test by one user on one available date.
type Appointment struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Email           string             `bson:"email" json:"email"`
	Name            string             `bson:"name,omitempty" json:"name,omitempty"`
	TestID          primitive.ObjectID `bson:"testId" json:"testId"`
	Title           string             `bson:"title,omitempty" json:"title,omitempty"`
	Image           string             `bson:"image,omitempty" json:"image,omitempty"`
	Price           float64            `bson:"price,omitempty" json:"price,omitempty"`
	AppointmentDate string             `bson:"appointmentDate" json:"appointmentDate"`
	TestStatus      string             `bson:"testStatus" json:"testStatus"`
	ReportStatus    string             `bson:"reportStatus,omitempty" json:"reportStatus,omitempty"`
	ReportLink      string             `bson:"reportLink,omitempty" json:"reportLink,omitempty"`
	TransactionID   string             `bson:"transactionId,omitempty" json:"transactionId,omitempty"`
	CreatedAt       time.Time          `bson:"createdAt" json:"createdAt"`
	ReminderSentAt  *time.Time         `bson:"reminderSentAt,omitempty" json:"reminderSentAt,omitempty"`
}

// AppointmentRequest is the client payload for the booking flow. The date
// arrives in the client's M/D/YYYY form and is normalized before lookup.
type AppointmentRequest struct {
	Email           string  `json:"email" binding:"required,email"`
	Name            string  `json:"name"`
	AppointmentDate string  `json:"appointmentDate" binding:"required"`
	Title           string  `json:"title"`
	Image           string  `json:"image"`
	Price           float64 `json:"price"`
	TransactionID   string  `json:"transactionId"`
}

// BookingResult reports the inserted appointment and the outcome of the slot
// decrement that guarded it.
type BookingResult struct {
	InsertedID    primitive.ObjectID `json:"insertedId"`
	Acknowledged  bool               `json:"acknowledged"`
	MatchedCount  int64              `json:"matchedCount"`
	ModifiedCount int64              `json:"modifiedCount"`
	Appointment   *Appointment       `json:"appointment"`
}

// UpdateOutcome mirrors the store's matched/modified counts for a write.
type UpdateOutcome struct {
	MatchedCount  int64  `json:"matchedCount"`
	ModifiedCount int64  `json:"modifiedCount"`
	Message       string `json:"message,omitempty"`
}

// ReminderPayload is the queued task body for an appointment reminder.
type ReminderPayload struct {
	AppointmentID string `json:"appointmentId"`
	Email         string `json:"email"`
	Date          string `json:"date"`
}
