package persistence

import "errors"

var (
	// ErrNotFound is returned when the requested record does not exist.
	ErrNotFound = errors.New("persistence: not found")
	// ErrDuplicate is returned when an insert collides with a unique constraint.
	ErrDuplicate = errors.New("persistence: duplicate")
	// ErrForeignKeyViolation is returned when a write is rejected because a
	// referential-integrity constraint still holds, for example deleting a
	// room type that rooms reference.
	ErrForeignKeyViolation = errors.New("persistence: foreign key violation")
)
