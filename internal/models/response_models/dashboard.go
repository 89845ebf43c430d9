package response_models

// StatsReport is the admin dashboard aggregate. TotalPayment sums the price
// of every booking regardless of status.
type StatsReport struct {
	TotalPayment  float64 `json:"totalPayment"`
	TotalGuides   int64   `json:"totalGuides"`
	TotalPackages int64   `json:"totalPackages"`
	TotalTourists int64   `json:"totalTourists"`
	TotalStories  int64   `json:"totalStories"`
}
