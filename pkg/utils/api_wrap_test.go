package utils

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func serveError(t *testing.T, err error) (*httptest.ResponseRecorder, APIResponse) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	c.Set("trace_id", "trace-123")

	HandleServiceError(c, err)

	var body APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return w, body
}

func TestHandleServiceErrorMapping(t *testing.T) {
	cases := []struct {
		err  error
		code int
	}{
		{ErrInvalidID, http.StatusBadRequest},
		{ErrMissingFields, http.StatusBadRequest},
		{ErrInvalidRole, http.StatusBadRequest},
		{ErrForbidden, http.StatusForbidden},
		{ErrUserNotFound, http.StatusNotFound},
		{ErrBookingNotFound, http.StatusNotFound},
		{ErrStoryNotFound, http.StatusNotFound},
		{ErrUserAlreadyExist, http.StatusConflict},
		{ErrApplicationPending, http.StatusConflict},
		{ErrApplicantRoleUpdate, http.StatusConflict},
		{ErrBookingNotInReview, http.StatusConflict},
	}

	for _, tc := range cases {
		w, body := serveError(t, tc.err)
		assert.Equal(t, tc.code, w.Code, tc.err.Error())
		assert.Equal(t, "error", body.Status)
		assert.Equal(t, tc.code, body.Code)
		assert.Equal(t, "trace-123", body.TraceID)
		assert.Equal(t, tc.err.Error(), body.Message)
	}
}

func TestHandleServiceErrorHidesInternalCause(t *testing.T) {
	w, body := serveError(t, errors.New("dial tcp: connection refused"))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "Internal server error", body.Message)
	assert.NotContains(t, body.Message, "dial tcp")
}
