package db_models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TourPlanDay is one entry of a package itinerary.
type TourPlanDay struct {
	Day      int    `bson:"day" json:"day"`
	Headline string `bson:"headline" json:"headline"`
	Details  string `bson:"details,omitempty" json:"details,omitempty"`
}

type TourPackage struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Title         string             `bson:"title" json:"title"`
	Description   string             `bson:"description" json:"description"`
	Price         float64            `bson:"price" json:"price"`
	TourPlan      []TourPlanDay      `bson:"tourPlan" json:"tourPlan"`
	TourType      string             `bson:"tourType,omitempty" json:"tourType,omitempty"`
	CoverImage    string             `bson:"coverImage" json:"coverImage"`
	GalleryImages []string           `bson:"galleryImages,omitempty" json:"galleryImages,omitempty"`
	CreatedAt     time.Time          `bson:"createdAt" json:"createdAt"`
}
