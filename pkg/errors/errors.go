package portal_errors

import "errors"

// Common errors
var (
	ErrUnauthorized       = errors.New("unauthorized")
	ErrForbidden          = errors.New("forbidden")
	ErrNotFound           = errors.New("not found")
	ErrConflict           = errors.New("conflict")
	ErrInvalidInput       = errors.New("invalid input")
	ErrAlreadyExists      = errors.New("already exists")
	ErrInvalidCredentials = errors.New("Invalid Credentials")
	ErrTooLarge           = errors.New("file too large")
	ErrUnsupportedType    = errors.New("unsupported file type")
	ErrNoFile             = errors.New("no file provided")
	ErrServiceUnavailable = errors.New("service unavailable")
)
