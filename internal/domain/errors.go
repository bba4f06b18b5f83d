package domain

import "errors"

// ErrNotFound is returned by repo and service functions when no note matches
// the requested id.
// Handlers should map this to HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrValidation is returned by service functions when input fails a presence
// check (e.g. a note created without a title or body).
// Handlers should map this to HTTP 400 Bad Request.
var ErrValidation = errors.New("validation error")

// ErrConflict is returned by the repo when a note is inserted with an id that
// is already present in the store.
var ErrConflict = errors.New("conflict")
