package persistence

import "context"

// RoomTypeRepository exposes CRUD operations for room types.
type RoomTypeRepository interface {
	CreateRoomType(ctx context.Context, roomType RoomType) error
	UpdateRoomType(ctx context.Context, roomType RoomType) error
	GetRoomType(ctx context.Context, id string) (RoomType, error)
	GetRoomTypeByName(ctx context.Context, name string) (RoomType, error)
	ListRoomTypes(ctx context.Context) ([]RoomType, error)
	DeleteRoomType(ctx context.Context, id string) error
}

// RoomRepository exposes CRUD operations for rooms.
type RoomRepository interface {
	CreateRoom(ctx context.Context, room Room) error
	UpdateRoom(ctx context.Context, room Room) error
	GetRoom(ctx context.Context, id string) (Room, error)
	GetRoomByNumber(ctx context.Context, number int) (Room, error)
	ListRooms(ctx context.Context) ([]Room, error)
	DeleteRoom(ctx context.Context, id string) error
}

// OccupantRepository exposes CRUD operations for occupants.
type OccupantRepository interface {
	CreateOccupant(ctx context.Context, occupant Occupant) error
	UpdateOccupant(ctx context.Context, occupant Occupant) error
	GetOccupant(ctx context.Context, id string) (Occupant, error)
	// FindOccupantByIdentity locates an occupant by the
	// (last name, first name, mobile) triple used for create deduplication.
	FindOccupantByIdentity(ctx context.Context, lastName, firstName, mobile string) (Occupant, error)
	ListOccupants(ctx context.Context) ([]Occupant, error)
	DeleteOccupant(ctx context.Context, id string) error
}

// ReservationRepository exposes CRUD operations for reservations together
// with the hydrating reads the engine relies on.
type ReservationRepository interface {
	CreateReservation(ctx context.Context, reservation Reservation) error
	UpdateReservation(ctx context.Context, reservation Reservation) error
	GetReservation(ctx context.Context, id string) (Reservation, error)
	GetHydratedReservation(ctx context.Context, id string) (HydratedReservation, error)
	ListHydratedReservations(ctx context.Context) ([]HydratedReservation, error)
	DeleteReservation(ctx context.Context, id string) error
}

// TxRunner executes a function inside a single storage transaction. The
// context passed to fn carries the transaction; repository calls made with
// it join the same unit of work. Nested calls reuse the outer transaction.
type TxRunner interface {
	InTx(ctx context.Context, fn func(ctx context.Context) error) error
}
