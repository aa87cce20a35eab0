package domain

import "errors"

// Sentinel errors shared between services, repositories and the HTTP layer.
// The central error handler in internal/api maps each one to a status code and
// a user-facing message.
var (
	ErrMissingFields     = errors.New("missing required fields")
	ErrEmailTaken        = errors.New("email already registered")
	ErrUserNotFound      = errors.New("user not found")
	ErrWrongPassword     = errors.New("wrong password")
	ErrPromotionNotFound = errors.New("promotion not found")
	ErrForbidden         = errors.New("access forbidden")
)
