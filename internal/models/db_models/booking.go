package db_models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type BookingStatus string

// Booking lifecycle: pending -> In Review -> Accepted | Rejected.
// The status strings are part of the wire contract.
const (
	BookingPending  BookingStatus = "pending"
	BookingInReview BookingStatus = "In Review"
	BookingAccepted BookingStatus = "Accepted"
	BookingRejected BookingStatus = "Rejected"
)

type Booking struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	PackageName   string             `bson:"packageName" json:"packageName"`
	TouristName   string             `bson:"touristName" json:"touristName"`
	TouristEmail  string             `bson:"touristEmail" json:"touristEmail"`
	TouristImage  string             `bson:"touristImage,omitempty" json:"touristImage,omitempty"`
	Price         float64            `bson:"price" json:"price"`
	TourDate      string             `bson:"tourDate" json:"tourDate"`
	GuideName     string             `bson:"guideName,omitempty" json:"guideName,omitempty"`
	GuideEmail    string             `bson:"guideEmail,omitempty" json:"guideEmail,omitempty"`
	Status        BookingStatus      `bson:"status" json:"status"`
	TransactionID string             `bson:"transactionId,omitempty" json:"transactionId,omitempty"`
	CreatedAt     time.Time          `bson:"createdAt" json:"createdAt"`
	PaidAt        *time.Time         `bson:"paidAt,omitempty" json:"paidAt,omitempty"`
	AcceptedAt    *time.Time         `bson:"acceptedAt,omitempty" json:"acceptedAt,omitempty"`
	RejectedAt    *time.Time         `bson:"rejectedAt,omitempty" json:"rejectedAt,omitempty"`
}
