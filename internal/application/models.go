package application

import "time"

// RoomTypeView is the externally visible shape of a room type. CeilingPrice
// renders in the legacy fixed-width text form when present.
type RoomTypeView struct {
	ID           string
	Name         string
	FloorPrice   float64
	CeilingPrice *string
	Description  *string
}

// RoomView is the externally visible shape of a room, optionally embedding
// a snapshot of its type.
type RoomView struct {
	ID        string
	Number    int
	Available bool
	Notes     *string
	RoomType  *RoomTypeView
}

// OccupantView is the externally visible shape of an occupant. The stored
// credential is deliberately absent.
type OccupantView struct {
	ID        string
	FirstName string
	LastName  string
	Address   string
	Mobile    string
	Category  string
}

// ReservationView is the fully hydrated reservation shape: the embedded room
// and occupant are snapshots taken from storage at read time, never live
// references.
type ReservationView struct {
	ID          string
	Start       time.Time
	End         time.Time
	PricePerDay float64
	Note        *string
	Room        RoomView
	Occupant    OccupantView
}

// ReservationInput carries the minimal payload needed to create a reservation.
type ReservationInput struct {
	OccupantID  string
	RoomID      string
	Start       time.Time
	End         time.Time
	PricePerDay float64
	Note        *string
}

// ReservationPatch describes a partial reservation update. Nil fields are
// left untouched; a pointer to the zero value sets that value, so a note can
// be cleared with a pointer to the empty string.
type ReservationPatch struct {
	OccupantID  *string
	RoomID      *string
	Start       *time.Time
	End         *time.Time
	PricePerDay *float64
	Note        *string
}

// ReservationCriteria is the legacy search shape. Only the reservation id
// is honoured; criteria without one match nothing.
type ReservationCriteria struct {
	ReservationID string
}

// RoomTypeInput carries the fields needed to create a room type.
type RoomTypeInput struct {
	Name         string
	FloorPrice   float64
	CeilingPrice *string
	Description  *string
}

// RoomTypePatch describes a partial room type update.
type RoomTypePatch struct {
	Name         *string
	FloorPrice   *float64
	CeilingPrice *string
	Description  *string
}

// RoomInput carries the fields needed to create a room. The type is bound
// by name and must resolve to an existing room type.
type RoomInput struct {
	Number       int
	Available    bool
	Notes        *string
	RoomTypeName string
}

// RoomPatch describes a partial room update. RoomTypeName, when set,
// repoints the room at the type with that name.
type RoomPatch struct {
	Number       *int
	Available    *bool
	Notes        *string
	RoomTypeName *string
}

// OccupantInput carries the fields needed to create an occupant. Credential
// is the raw input; it is normalized by the configured codec before storage.
type OccupantInput struct {
	FirstName  string
	LastName   string
	Address    string
	Mobile     string
	Credential string
	Category   string
}

// OccupantPatch describes a partial occupant update.
type OccupantPatch struct {
	FirstName  *string
	LastName   *string
	Address    *string
	Mobile     *string
	Credential *string
	Category   *string
}

// asCivil strips any timezone offset from t, keeping the wall-clock fields.
// Reservation timestamps are stored timezone-naive, so an aware input such
// as 15:00+02:00 persists as 15:00.
func asCivil(t time.Time) time.Time {
	year, month, day := t.Date()
	hour, minute, second := t.Clock()
	return time.Date(year, month, day, hour, minute, second, 0, time.UTC)
}
