package store

import "errors"

var (
	// ErrNotFound is returned when no document matches the given identifier
	// (or an owner query yields nothing, which handlers also surface as 404).
	ErrNotFound = errors.New("document not found")

	// ErrDuplicateEmail is returned by the user store when the email
	// uniqueness constraint rejects an insert or update.
	ErrDuplicateEmail = errors.New("email already registered")
)
