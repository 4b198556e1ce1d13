package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Banner is a promotional entry. At most one banner is active at a time.
type Banner struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name        string             `bson:"name" json:"name"`
	Title       string             `bson:"title" json:"title"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	Image       string             `bson:"image,omitempty" json:"image,omitempty"`
	CouponCode  string             `bson:"couponCode,omitempty" json:"couponCode,omitempty"`
	CouponRate  float64            `bson:"couponRate,omitempty" json:"couponRate,omitempty"`
	IsActive    bool               `bson:"isActive" json:"isActive"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
}

// BannerInput is the admin payload for creating a banner.
type BannerInput struct {
	Name        string  `json:"name" binding:"required"`
	Title       string  `json:"title" binding:"required"`
	Description string  `json:"description"`
	Image       string  `json:"image"`
	CouponCode  string  `json:"couponCode"`
	CouponRate  float64 `json:"couponRate" binding:"gte=0,lte=100"`
}
