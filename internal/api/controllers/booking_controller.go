package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tourly/internal/models/request_models"
	"tourly/internal/models/response_models"
	"tourly/internal/services"
	"tourly/pkg/utils"
)

type BookingController struct {
	bookingService services.BookingServiceInterface
}

func NewBookingController(bookingService services.BookingServiceInterface) *BookingController {
	return &BookingController{
		bookingService: bookingService,
	}
}

// CreateBooking godoc
// @Summary Create a booking
// @Tags Bookings
// @Accept json
// @Produce json
// @Param request body request_models.CreateBookingRequest true "Booking payload"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /bookings [post]
func (b *BookingController) CreateBooking(c *gin.Context) {
	var req request_models.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	id, err := b.bookingService.CreateBooking(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"bookingId": id}, "Booking created successfully")
}

// RecordPayment godoc
// @Summary Record a payment on a booking
// @Description Moves the booking to In Review and stores the transaction id
// @Tags Bookings
// @Accept json
// @Produce json
// @Param id path string true "Booking id"
// @Param request body request_models.RecordPaymentRequest true "Payment payload"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /bookings/payment/{id} [patch]
func (b *BookingController) RecordPayment(c *gin.Context) {
	var req request_models.RecordPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := b.bookingService.RecordPayment(c.Request.Context(), c.Param("id"), req.TransactionID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Payment recorded successfully")
}

// AcceptTour godoc
// @Summary Accept a booking (guide decision)
// @Description Only valid while the booking is In Review
// @Tags Bookings
// @Produce json
// @Param id path string true "Booking id"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Security BearerAuth
// @Router /bookings/accept/{id} [patch]
func (b *BookingController) AcceptTour(c *gin.Context) {
	if err := b.bookingService.AcceptTour(c.Request.Context(), c.Param("id")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Booking accepted")
}

// RejectTour godoc
// @Summary Reject a booking (guide decision)
// @Description Only valid while the booking is In Review
// @Tags Bookings
// @Produce json
// @Param id path string true "Booking id"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Security BearerAuth
// @Router /bookings/reject/{id} [patch]
func (b *BookingController) RejectTour(c *gin.Context) {
	if err := b.bookingService.RejectTour(c.Request.Context(), c.Param("id")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Booking rejected")
}

// ListByTourist godoc
// @Summary List a tourist's bookings
// @Tags Bookings
// @Produce json
// @Param email query string true "Tourist email"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /bookings [get]
func (b *BookingController) ListByTourist(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		utils.RespondError(c, http.StatusBadRequest, "email query parameter is required")
		return
	}

	bookings, err := b.bookingService.ListByTourist(c.Request.Context(), email)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.BookingList{
		Bookings: bookings,
		Total:    len(bookings),
	}, "Bookings fetched successfully")
}

// ListByGuide godoc
// @Summary List bookings assigned to a guide
// @Tags Bookings
// @Produce json
// @Param email query string true "Guide email"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /bookings/guide [get]
func (b *BookingController) ListByGuide(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		utils.RespondError(c, http.StatusBadRequest, "email query parameter is required")
		return
	}

	bookings, err := b.bookingService.ListByGuide(c.Request.Context(), email)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.BookingList{
		Bookings: bookings,
		Total:    len(bookings),
	}, "Bookings fetched successfully")
}

// CancelBooking godoc
// @Summary Cancel a booking
// @Description Unconditional deletion, no state guard
// @Tags Bookings
// @Produce json
// @Param id path string true "Booking id"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /bookings/{id} [delete]
func (b *BookingController) CancelBooking(c *gin.Context) {
	if err := b.bookingService.CancelBooking(c.Request.Context(), c.Param("id")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Booking cancelled successfully")
}
