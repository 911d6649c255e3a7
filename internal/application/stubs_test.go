package application

import (
	"context"
	"sort"

	"github.com/Donovan7777/hotel/internal/persistence"
)

// txRunnerStub runs the unit of work inline and counts invocations.
type txRunnerStub struct {
	calls int
}

func (t *txRunnerStub) InTx(ctx context.Context, fn func(ctx context.Context) error) error {
	t.calls++
	return fn(ctx)
}

// storeStub is an in-memory stand-in for the persistence layer. It honours
// the same contracts the real store does: sentinel errors for absence, a
// foreign key rejection when a referenced row is missing or still referenced,
// and the documented list orderings.
type storeStub struct {
	roomTypes    map[string]persistence.RoomType
	rooms        map[string]persistence.Room
	occupants    map[string]persistence.Occupant
	reservations map[string]persistence.Reservation

	failCreateReservation error
}

func newStoreStub() *storeStub {
	return &storeStub{
		roomTypes:    map[string]persistence.RoomType{},
		rooms:        map[string]persistence.Room{},
		occupants:    map[string]persistence.Occupant{},
		reservations: map[string]persistence.Reservation{},
	}
}

func (s *storeStub) CreateRoomType(_ context.Context, roomType persistence.RoomType) error {
	s.roomTypes[roomType.ID] = roomType
	return nil
}

func (s *storeStub) UpdateRoomType(_ context.Context, roomType persistence.RoomType) error {
	if _, ok := s.roomTypes[roomType.ID]; !ok {
		return persistence.ErrNotFound
	}
	s.roomTypes[roomType.ID] = roomType
	return nil
}

func (s *storeStub) GetRoomType(_ context.Context, id string) (persistence.RoomType, error) {
	roomType, ok := s.roomTypes[id]
	if !ok {
		return persistence.RoomType{}, persistence.ErrNotFound
	}
	return roomType, nil
}

func (s *storeStub) GetRoomTypeByName(_ context.Context, name string) (persistence.RoomType, error) {
	var matches []persistence.RoomType
	for _, roomType := range s.roomTypes {
		if roomType.Name == name {
			matches = append(matches, roomType)
		}
	}
	if len(matches) == 0 {
		return persistence.RoomType{}, persistence.ErrNotFound
	}
	sort.Slice(matches, func(i, j int) bool { return matches[i].ID < matches[j].ID })
	return matches[0], nil
}

func (s *storeStub) ListRoomTypes(_ context.Context) ([]persistence.RoomType, error) {
	roomTypes := make([]persistence.RoomType, 0, len(s.roomTypes))
	for _, roomType := range s.roomTypes {
		roomTypes = append(roomTypes, roomType)
	}
	sort.Slice(roomTypes, func(i, j int) bool {
		if roomTypes[i].Name != roomTypes[j].Name {
			return roomTypes[i].Name < roomTypes[j].Name
		}
		return roomTypes[i].ID < roomTypes[j].ID
	})
	return roomTypes, nil
}

func (s *storeStub) DeleteRoomType(_ context.Context, id string) error {
	if _, ok := s.roomTypes[id]; !ok {
		return persistence.ErrNotFound
	}
	for _, room := range s.rooms {
		if room.RoomTypeID != nil && *room.RoomTypeID == id {
			return persistence.ErrForeignKeyViolation
		}
	}
	delete(s.roomTypes, id)
	return nil
}

func (s *storeStub) CreateRoom(_ context.Context, room persistence.Room) error {
	if room.RoomTypeID != nil {
		if _, ok := s.roomTypes[*room.RoomTypeID]; !ok {
			return persistence.ErrForeignKeyViolation
		}
	}
	s.rooms[room.ID] = room
	return nil
}

func (s *storeStub) UpdateRoom(_ context.Context, room persistence.Room) error {
	if _, ok := s.rooms[room.ID]; !ok {
		return persistence.ErrNotFound
	}
	s.rooms[room.ID] = room
	return nil
}

func (s *storeStub) GetRoom(_ context.Context, id string) (persistence.Room, error) {
	room, ok := s.rooms[id]
	if !ok {
		return persistence.Room{}, persistence.ErrNotFound
	}
	return room, nil
}

func (s *storeStub) GetRoomByNumber(_ context.Context, number int) (persistence.Room, error) {
	var matches []persistence.Room
	for _, room := range s.rooms {
		if room.Number == number {
			matches = append(matches, room)
		}
	}
	if len(matches) == 0 {
		return persistence.Room{}, persistence.ErrNotFound
	}
	sort.Slice(matches, func(i, j int) bool { return matches[i].ID < matches[j].ID })
	return matches[0], nil
}

func (s *storeStub) ListRooms(_ context.Context) ([]persistence.Room, error) {
	rooms := make([]persistence.Room, 0, len(s.rooms))
	for _, room := range s.rooms {
		rooms = append(rooms, room)
	}
	sort.Slice(rooms, func(i, j int) bool {
		if rooms[i].Number != rooms[j].Number {
			return rooms[i].Number < rooms[j].Number
		}
		return rooms[i].ID < rooms[j].ID
	})
	return rooms, nil
}

func (s *storeStub) DeleteRoom(_ context.Context, id string) error {
	if _, ok := s.rooms[id]; !ok {
		return persistence.ErrNotFound
	}
	for _, reservation := range s.reservations {
		if reservation.RoomID == id {
			return persistence.ErrForeignKeyViolation
		}
	}
	delete(s.rooms, id)
	return nil
}

func (s *storeStub) CreateOccupant(_ context.Context, occupant persistence.Occupant) error {
	s.occupants[occupant.ID] = occupant
	return nil
}

func (s *storeStub) UpdateOccupant(_ context.Context, occupant persistence.Occupant) error {
	if _, ok := s.occupants[occupant.ID]; !ok {
		return persistence.ErrNotFound
	}
	s.occupants[occupant.ID] = occupant
	return nil
}

func (s *storeStub) GetOccupant(_ context.Context, id string) (persistence.Occupant, error) {
	occupant, ok := s.occupants[id]
	if !ok {
		return persistence.Occupant{}, persistence.ErrNotFound
	}
	return occupant, nil
}

func (s *storeStub) FindOccupantByIdentity(_ context.Context, lastName, firstName, mobile string) (persistence.Occupant, error) {
	var matches []persistence.Occupant
	for _, occupant := range s.occupants {
		if occupant.LastName == lastName && occupant.FirstName == firstName && occupant.Mobile == mobile {
			matches = append(matches, occupant)
		}
	}
	if len(matches) == 0 {
		return persistence.Occupant{}, persistence.ErrNotFound
	}
	sort.Slice(matches, func(i, j int) bool { return matches[i].ID < matches[j].ID })
	return matches[0], nil
}

func (s *storeStub) ListOccupants(_ context.Context) ([]persistence.Occupant, error) {
	occupants := make([]persistence.Occupant, 0, len(s.occupants))
	for _, occupant := range s.occupants {
		occupants = append(occupants, occupant)
	}
	sort.Slice(occupants, func(i, j int) bool {
		if occupants[i].LastName != occupants[j].LastName {
			return occupants[i].LastName < occupants[j].LastName
		}
		if occupants[i].FirstName != occupants[j].FirstName {
			return occupants[i].FirstName < occupants[j].FirstName
		}
		return occupants[i].ID < occupants[j].ID
	})
	return occupants, nil
}

func (s *storeStub) DeleteOccupant(_ context.Context, id string) error {
	if _, ok := s.occupants[id]; !ok {
		return persistence.ErrNotFound
	}
	delete(s.occupants, id)
	return nil
}

func (s *storeStub) CreateReservation(_ context.Context, reservation persistence.Reservation) error {
	if s.failCreateReservation != nil {
		return s.failCreateReservation
	}
	if _, ok := s.occupants[reservation.OccupantID]; !ok {
		return persistence.ErrForeignKeyViolation
	}
	if _, ok := s.rooms[reservation.RoomID]; !ok {
		return persistence.ErrForeignKeyViolation
	}
	s.reservations[reservation.ID] = reservation
	return nil
}

func (s *storeStub) UpdateReservation(_ context.Context, reservation persistence.Reservation) error {
	if _, ok := s.reservations[reservation.ID]; !ok {
		return persistence.ErrNotFound
	}
	s.reservations[reservation.ID] = reservation
	return nil
}

func (s *storeStub) GetReservation(_ context.Context, id string) (persistence.Reservation, error) {
	reservation, ok := s.reservations[id]
	if !ok {
		return persistence.Reservation{}, persistence.ErrNotFound
	}
	return reservation, nil
}

func (s *storeStub) GetHydratedReservation(_ context.Context, id string) (persistence.HydratedReservation, error) {
	reservation, ok := s.reservations[id]
	if !ok {
		return persistence.HydratedReservation{}, persistence.ErrNotFound
	}
	return s.hydrate(reservation), nil
}

func (s *storeStub) ListHydratedReservations(_ context.Context) ([]persistence.HydratedReservation, error) {
	reservations := make([]persistence.Reservation, 0, len(s.reservations))
	for _, reservation := range s.reservations {
		reservations = append(reservations, reservation)
	}
	sort.Slice(reservations, func(i, j int) bool {
		if !reservations[i].Start.Equal(reservations[j].Start) {
			return reservations[i].Start.Before(reservations[j].Start)
		}
		return reservations[i].ID < reservations[j].ID
	})

	hydrated := make([]persistence.HydratedReservation, 0, len(reservations))
	for _, reservation := range reservations {
		hydrated = append(hydrated, s.hydrate(reservation))
	}
	return hydrated, nil
}

func (s *storeStub) DeleteReservation(_ context.Context, id string) error {
	if _, ok := s.reservations[id]; !ok {
		return persistence.ErrNotFound
	}
	delete(s.reservations, id)
	return nil
}

func (s *storeStub) hydrate(reservation persistence.Reservation) persistence.HydratedReservation {
	hydrated := persistence.HydratedReservation{
		Reservation: reservation,
		Room:        s.rooms[reservation.RoomID],
		Occupant:    s.occupants[reservation.OccupantID],
	}
	if hydrated.Room.RoomTypeID != nil {
		if roomType, ok := s.roomTypes[*hydrated.Room.RoomTypeID]; ok {
			hydrated.RoomType = &roomType
		}
	}
	return hydrated
}

func strPtr(value string) *string {
	return &value
}

func floatPtr(value float64) *float64 {
	return &value
}

func intPtr(value int) *int {
	return &value
}

func boolPtr(value bool) *bool {
	return &value
}
