package request_models

import "tourly/internal/models/db_models"

// CreatePackageRequest is the JSON form; later revisions accept pre-uploaded
// image references instead of multipart files.
type CreatePackageRequest struct {
	Title         string                  `json:"title" binding:"required"`
	Description   string                  `json:"description" binding:"required"`
	Price         float64                 `json:"price" binding:"required,gte=0"`
	TourPlan      []db_models.TourPlanDay `json:"tourPlan" binding:"required"`
	TourType      string                  `json:"tourType"`
	CoverImage    string                  `json:"coverImage" binding:"required"`
	GalleryImages []string                `json:"galleryImages"`
}
