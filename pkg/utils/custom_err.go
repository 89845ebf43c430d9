package utils

import "errors"

var (
	ErrInvalidID     = errors.New("invalid id format")
	ErrMissingFields = errors.New("missing required fields")
	ErrInvalidRole   = errors.New("invalid role")

	ErrUserNotFound     = errors.New("user not found")
	ErrGuideNotFound    = errors.New("guide not found")
	ErrUserAlreadyExist = errors.New("user already exists")

	ErrApplicationNotFound = errors.New("application not found")
	ErrApplicationPending  = errors.New("pending application already exists")
	ErrApplicantRoleUpdate = errors.New("applicant role update matched no user")

	ErrBookingNotFound    = errors.New("booking not found")
	ErrBookingNotInReview = errors.New("booking is not in review")

	ErrPackageNotFound = errors.New("package not found")
	ErrStoryNotFound   = errors.New("story not found")

	ErrForbidden     = errors.New("forbidden")
	ErrDatabaseError = errors.New("database error")
)
