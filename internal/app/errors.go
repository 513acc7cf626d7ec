package app

import "errors"

// Sentinel errors shared across services. Handlers translate these into
// HTTP statuses and the uniform JSON envelope.
var (
	ErrValidation   = errors.New("invalid input")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
	ErrConflict     = errors.New("already exists")
	ErrNotFound     = errors.New("not found")
	ErrDatastore    = errors.New("datastore error")
)
