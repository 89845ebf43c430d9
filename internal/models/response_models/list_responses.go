package response_models

import "tourly/internal/models/db_models"

// Query endpoints always return a sequence plus a total count, even for a
// single match. This intentionally replaces the inherited behavior of
// collapsing one-element results into a bare object.

type UserList struct {
	Users []db_models.User `json:"users"`
	Total int              `json:"total"`
}

type BookingList struct {
	Bookings []db_models.Booking `json:"bookings"`
	Total    int                 `json:"total"`
}

type PackageList struct {
	Packages []db_models.TourPackage `json:"packages"`
	Total    int                     `json:"total"`
}

type StoryList struct {
	Stories []db_models.Story `json:"stories"`
	Total   int               `json:"total"`
}

type ApplicationList struct {
	Applications []db_models.GuideApplication `json:"applications"`
	Total        int                          `json:"total"`
}
