package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Payment is a recorded card payment for a booked test.
type Payment struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Email         string             `bson:"email" json:"email"`
	Price         float64            `bson:"price" json:"price"`
	TransactionID string             `bson:"transactionId" json:"transactionId"`
	TestID        string             `bson:"testId,omitempty" json:"testId,omitempty"`
	TestTitle     string             `bson:"testTitle,omitempty" json:"testTitle,omitempty"`
	Status        string             `bson:"status" json:"status"`
	Date          time.Time          `bson:"date" json:"date"`
}

// PaymentIntentRequest asks the gateway for a client secret.
type PaymentIntentRequest struct {
	Price float64 `json:"price" binding:"required"`
}
