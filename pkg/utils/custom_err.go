package utils

import "errors"

// Validation failures carry a distinct sentinel per reason so the API
// layer can surface a specific message without string matching.
var (
	ErrMissingField     = errors.New("required field missing")
	ErrBadDateFormat    = errors.New("invalid date format")
	ErrDateOutOfWindow  = errors.New("date outside check-in window")
	ErrInvalidEffort    = errors.New("effort level must be between 1 and 5")
	ErrNotAMember       = errors.New("not a member of this journey")
	ErrUnknownDimension = errors.New("dimension does not belong to journey")
)

var (
	ErrInvalidInput    = errors.New("invalid input")
	ErrJourneyNotFound = errors.New("journey not found")
	ErrAccountNotFound = errors.New("account not found")
	ErrAlreadyMember   = errors.New("already a member of this journey")
	ErrInviteInvalid   = errors.New("invalid or expired invite")
	ErrForbidden       = errors.New("insufficient permissions")
	ErrEmailTaken      = errors.New("email already registered")
	ErrBadCredentials  = errors.New("invalid email or password")
	ErrDatabaseError   = errors.New("database error")
)
