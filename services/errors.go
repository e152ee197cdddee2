package services

import "errors"

// Business-rule rejections surfaced directly to the caller. All terminal; the
// only retried failure class is persistence-layer contention, handled inside
// the services themselves.
var (
	ErrAccessDenied        = errors.New("access denied")
	ErrInvalidInput        = errors.New("invalid input")
	ErrNotFound            = errors.New("not found")
	ErrCharityUnavailable  = errors.New("charity not available")
	ErrInsufficientCredits = errors.New("insufficient credits")
)
