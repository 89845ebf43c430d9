package services

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"tourly/internal/models/db_models"
	"tourly/internal/models/request_models"
	"tourly/internal/repositories"
	"tourly/pkg/utils"
)

type BookingServiceInterface interface {
	CreateBooking(ctx context.Context, req request_models.CreateBookingRequest) (string, error)
	RecordPayment(ctx context.Context, id, transactionID string) error
	AcceptTour(ctx context.Context, id string) error
	RejectTour(ctx context.Context, id string) error
	ListByTourist(ctx context.Context, email string) ([]db_models.Booking, error)
	ListByGuide(ctx context.Context, email string) ([]db_models.Booking, error)
	CancelBooking(ctx context.Context, id string) error
}

type BookingService struct {
	bookingRepo repositories.BookingRepository
}

func NewBookingService(bookingRepo repositories.BookingRepository) BookingServiceInterface {
	return &BookingService{
		bookingRepo: bookingRepo,
	}
}

func (s *BookingService) CreateBooking(ctx context.Context, req request_models.CreateBookingRequest) (string, error) {
	if req.PackageName == "" || req.TouristName == "" || req.TouristEmail == "" ||
		req.TourDate == "" || req.Price <= 0 {
		return "", utils.ErrMissingFields
	}

	booking := &db_models.Booking{
		PackageName:  req.PackageName,
		TouristName:  req.TouristName,
		TouristEmail: req.TouristEmail,
		TouristImage: req.TouristImage,
		Price:        req.Price,
		TourDate:     req.TourDate,
		GuideName:    req.GuideName,
		GuideEmail:   req.GuideEmail,
		Status:       db_models.BookingPending,
		CreatedAt:    time.Now(),
	}

	id, err := s.bookingRepo.Insert(ctx, booking)
	if err != nil {
		return "", utils.ErrDatabaseError
	}
	return id.Hex(), nil
}

// RecordPayment moves a booking to In Review and stores the client-reported
// transaction id. Payment completion is not verified server-side.
func (s *BookingService) RecordPayment(ctx context.Context, id, transactionID string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return utils.ErrInvalidID
	}
	if transactionID == "" {
		return utils.ErrMissingFields
	}

	matched, err := s.bookingRepo.SetPayment(ctx, oid, transactionID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if matched == 0 {
		return utils.ErrBookingNotFound
	}
	return nil
}

func (s *BookingService) AcceptTour(ctx context.Context, id string) error {
	return s.decide(ctx, id, db_models.BookingAccepted, "acceptedAt")
}

func (s *BookingService) RejectTour(ctx context.Context, id string) error {
	return s.decide(ctx, id, db_models.BookingRejected, "rejectedAt")
}

// decide applies a guide decision. The transition only succeeds when the
// booking is currently In Review; any other status leaves it unchanged.
func (s *BookingService) decide(ctx context.Context, id string, to db_models.BookingStatus, stampField string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return utils.ErrInvalidID
	}

	booking, err := s.bookingRepo.FindByID(ctx, oid)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if booking == nil {
		return utils.ErrBookingNotFound
	}

	matched, err := s.bookingRepo.TransitionStatus(ctx, oid, db_models.BookingInReview, to, stampField)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if matched == 0 {
		return utils.ErrBookingNotInReview
	}
	return nil
}

func (s *BookingService) ListByTourist(ctx context.Context, email string) ([]db_models.Booking, error) {
	bookings, err := s.bookingRepo.FindByTourist(ctx, email)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return bookings, nil
}

func (s *BookingService) ListByGuide(ctx context.Context, email string) ([]db_models.Booking, error) {
	bookings, err := s.bookingRepo.FindByGuide(ctx, email)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return bookings, nil
}

// CancelBooking deletes unconditionally, no state guard.
func (s *BookingService) CancelBooking(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return utils.ErrInvalidID
	}

	deleted, err := s.bookingRepo.Delete(ctx, oid)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if deleted == 0 {
		return utils.ErrBookingNotFound
	}
	return nil
}
