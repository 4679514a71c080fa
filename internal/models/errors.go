package models

import "errors"

var (
	// ErrNotFound is returned when a record does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrAlreadyExists is returned when an insert collides with an existing
	// record, e.g. two titles deriving the same slug.
	ErrAlreadyExists = errors.New("record already exists")
)
