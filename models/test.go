package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// AvailableDate is one bookable calendar day of a diagnostic test.
type AvailableDate struct {
	Date  string `bson:"date" json:"date"`   // canonical "YYYY-MM-DD"
	Slots int    `bson:"slots" json:"slots"` // remaining capacity, never below zero
}

// DiagnosticTest is a catalog entry in the allTests collection.
type DiagnosticTest struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Title          string             `bson:"title" json:"title"`
	Image          string             `bson:"image,omitempty" json:"image,omitempty"`
	Price          float64            `bson:"price" json:"price"`
	Details        string             `bson:"details,omitempty" json:"details,omitempty"`
	Category       string             `bson:"category,omitempty" json:"category,omitempty"`
	AvailableDates []AvailableDate    `bson:"availableDates" json:"availableDates"`
}

// DiagnosticTestInput is the admin payload for creating or editing a test.
type DiagnosticTestInput struct {
	Title          string          `json:"title" binding:"required"`
	Image          string          `json:"image"`
	Price          float64         `json:"price" binding:"gte=0"`
	Details        string          `json:"details"`
	Category       string          `json:"category"`
	AvailableDates []AvailableDate `json:"availableDates"`
}
