package services

import "errors"

// Domain errors shared across validators and services. The transport layer
// maps these to protocol responses; nothing below it retries them.
var (
	ErrInvalidField        = errors.New("invalid field")
	ErrInvalidDateRange    = errors.New("invalid date range")
	ErrEventNotFound       = errors.New("event not found")
	ErrTaskNotFound        = errors.New("task not found")
	ErrNotOwner            = errors.New("not owner")
	ErrUserNotFound        = errors.New("user not found")
	ErrUserAlreadyExists   = errors.New("user already exists")
	ErrUserSuspended       = errors.New("user suspended")
	ErrInvalidRefreshToken = errors.New("invalid refresh token")
)
