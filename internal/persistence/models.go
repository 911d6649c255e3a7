package persistence

import "time"

// RoomType represents a room category row. CeilingPrice carries the legacy
// fixed-width numeric text exactly as stored.
type RoomType struct {
	ID           string
	Name         string
	FloorPrice   float64
	CeilingPrice *string
	Description  *string
}

// Room represents a bookable room row. RoomTypeID is nullable: a room may
// reference no type at all.
type Room struct {
	ID         string
	Number     int
	Available  bool
	Notes      *string
	RoomTypeID *string
}

// Occupant represents a guest row. Credential holds the fixed-width stored
// form, never the raw input.
type Occupant struct {
	ID         string
	FirstName  string
	LastName   string
	Address    string
	Mobile     string
	Credential string
	Category   string
}

// Reservation represents a reservation row. Start and End are civil
// wall-clock values with no offset.
type Reservation struct {
	ID          string
	Start       time.Time
	End         time.Time
	PricePerDay float64
	Note        *string
	OccupantID  string
	RoomID      string
}

// HydratedReservation bundles a reservation with snapshots of the rows it
// references, read in a single query so callers never chase relations lazily.
type HydratedReservation struct {
	Reservation Reservation
	Room        Room
	RoomType    *RoomType
	Occupant    Occupant
}
