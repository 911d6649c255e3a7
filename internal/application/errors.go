package application

import "errors"

// Domain errors surfaced to the boundary. They classify client-caused
// failures; infrastructure errors are never wrapped in these.
var (
	// ErrInvalidDateRange is returned when a reservation end does not fall
	// strictly after its start.
	ErrInvalidDateRange = errors.New("application: end must be after start")
	// ErrInvalidPrice is returned when a per-day price is not strictly positive.
	ErrInvalidPrice = errors.New("application: price per day must be positive")
	// ErrInvalidCeilingPrice is returned when a ceiling price is unparsable
	// or falls below the floor price.
	ErrInvalidCeilingPrice = errors.New("application: invalid ceiling price")
	// ErrOccupantNotFound is returned when a referenced occupant does not exist.
	ErrOccupantNotFound = errors.New("application: occupant not found")
	// ErrRoomNotFound is returned when a referenced room does not exist.
	ErrRoomNotFound = errors.New("application: room not found")
	// ErrRoomTypeNotFound is returned when a room type name or id resolves to nothing.
	ErrRoomTypeNotFound = errors.New("application: room type not found")
	// ErrReservationNotFound is returned when an update targets a missing reservation.
	ErrReservationNotFound = errors.New("application: reservation not found")
	// ErrDependencyExists is returned when a delete is blocked because other
	// rows still reference the entity.
	ErrDependencyExists = errors.New("application: dependent records exist")
)

// ValidationError captures field level input problems that callers can
// surface to users alongside the sentinel errors above.
type ValidationError struct {
	FieldErrors map[string]string
}

func (v *ValidationError) Error() string {
	return "validation failed"
}

// HasErrors reports whether any field level issues were recorded.
func (v *ValidationError) HasErrors() bool {
	return v != nil && len(v.FieldErrors) > 0
}

func (v *ValidationError) add(field, message string) {
	if v.FieldErrors == nil {
		v.FieldErrors = make(map[string]string)
	}
	v.FieldErrors[field] = message
}
