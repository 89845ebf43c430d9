package request_models

type CreateBookingRequest struct {
	PackageName  string  `json:"packageName" binding:"required"`
	TouristName  string  `json:"touristName" binding:"required"`
	TouristEmail string  `json:"touristEmail" binding:"required,email"`
	TouristImage string  `json:"touristImage"`
	Price        float64 `json:"price" binding:"required,gt=0"`
	TourDate     string  `json:"tourDate" binding:"required"`
	GuideName    string  `json:"guideName"`
	GuideEmail   string  `json:"guideEmail"`
}

type RecordPaymentRequest struct {
	TransactionID string `json:"transactionId" binding:"required"`
}
