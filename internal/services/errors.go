package services

import "errors"

// Sentinel errors returned by the service layer. Handlers translate these to
// HTTP status codes; anything else is treated as an internal failure.
var (
	ErrNotFound           = errors.New("resource not found")
	ErrForbidden          = errors.New("forbidden")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrDuplicateIdentity  = errors.New("username or email already exists")
	ErrDuplicateRating    = errors.New("rating already exists for this content")
)
