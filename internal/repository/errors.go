package repository

import "errors"

var (
	// ErrNotFound is returned when a requested entity does not exist.
	ErrNotFound = errors.New("entity not found")

	// ErrStorageUnavailable is returned when the spatial store cannot be
	// reached or a query fails. Callers never receive partial results.
	ErrStorageUnavailable = errors.New("spatial store unavailable")
)
