package utils

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type APIResponse struct {
	Status  string      `json:"status"`
	Code    int         `json:"code"`
	Message string      `json:"message,omitempty"`
	TraceID string      `json:"trace_id,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func RespondSuccess(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusOK, APIResponse{
		Status:  "success",
		Code:    http.StatusOK,
		Message: message,
		TraceID: c.GetString("trace_id"),
		Data:    data,
	})
}

func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, APIResponse{
		Status:  "error",
		Code:    code,
		Message: message,
		TraceID: c.GetString("trace_id"),
	})
}

// HandleServiceError maps service errors to HTTP status codes. Store
// failures are logged with their cause and downgraded to a generic 500.
func HandleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrInvalidID), errors.Is(err, ErrMissingFields), errors.Is(err, ErrInvalidRole):
		RespondError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrForbidden):
		RespondError(c, http.StatusForbidden, err.Error())
	case errors.Is(err, ErrUserNotFound),
		errors.Is(err, ErrGuideNotFound),
		errors.Is(err, ErrApplicationNotFound),
		errors.Is(err, ErrBookingNotFound),
		errors.Is(err, ErrPackageNotFound),
		errors.Is(err, ErrStoryNotFound):
		RespondError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, ErrUserAlreadyExist),
		errors.Is(err, ErrApplicationPending),
		errors.Is(err, ErrApplicantRoleUpdate),
		errors.Is(err, ErrBookingNotInReview):
		RespondError(c, http.StatusConflict, err.Error())
	default:
		log.Error().
			Str("trace_id", c.GetString("trace_id")).
			Err(err).
			Msg("internal error")
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	}
}
