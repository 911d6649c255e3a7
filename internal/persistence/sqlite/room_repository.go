package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"github.com/Donovan7777/hotel/internal/persistence"
)

// CreateRoom inserts a new room.
func (s *Store) CreateRoom(ctx context.Context, room persistence.Room) error {
	const query = `
		INSERT INTO rooms (id, number, available, notes, room_type_id)
		VALUES (?, ?, ?, ?, ?)`

	_, err := s.q(ctx).ExecContext(ctx, query,
		room.ID,
		room.Number,
		room.Available,
		nullString(room.Notes),
		nullString(room.RoomTypeID),
	)
	return classify(err)
}

// UpdateRoom rewrites an existing room row.
func (s *Store) UpdateRoom(ctx context.Context, room persistence.Room) error {
	const query = `
		UPDATE rooms
		SET number = ?, available = ?, notes = ?, room_type_id = ?
		WHERE id = ?`

	result, err := s.q(ctx).ExecContext(ctx, query,
		room.Number,
		room.Available,
		nullString(room.Notes),
		nullString(room.RoomTypeID),
		room.ID,
	)
	if err != nil {
		return classify(err)
	}
	return requireRowsAffected(result)
}

// GetRoom retrieves a room by id.
func (s *Store) GetRoom(ctx context.Context, id string) (persistence.Room, error) {
	const query = `
		SELECT id, number, available, notes, room_type_id
		FROM rooms WHERE id = ?`

	return scanRoom(s.q(ctx).QueryRowContext(ctx, query, id))
}

// GetRoomByNumber retrieves a room by its room number.
func (s *Store) GetRoomByNumber(ctx context.Context, number int) (persistence.Room, error) {
	const query = `
		SELECT id, number, available, notes, room_type_id
		FROM rooms WHERE number = ? ORDER BY id ASC LIMIT 1`

	return scanRoom(s.q(ctx).QueryRowContext(ctx, query, number))
}

// ListRooms returns all rooms ordered by room number.
func (s *Store) ListRooms(ctx context.Context) ([]persistence.Room, error) {
	const query = `
		SELECT id, number, available, notes, room_type_id
		FROM rooms ORDER BY number ASC, id ASC`

	rows, err := s.q(ctx).QueryContext(ctx, query)
	if err != nil {
		return nil, classify(err)
	}
	defer rows.Close()

	var rooms []persistence.Room
	for rows.Next() {
		room, err := scanRoom(rows)
		if err != nil {
			return nil, err
		}
		rooms = append(rooms, room)
	}
	if err := rows.Err(); err != nil {
		return nil, classify(err)
	}
	return rooms, nil
}

// DeleteRoom removes a room. The delete is rejected with
// persistence.ErrForeignKeyViolation while reservations still reference it.
func (s *Store) DeleteRoom(ctx context.Context, id string) error {
	result, err := s.q(ctx).ExecContext(ctx, `DELETE FROM rooms WHERE id = ?`, id)
	if err != nil {
		return classify(err)
	}
	return requireRowsAffected(result)
}

func scanRoom(row rowScanner) (persistence.Room, error) {
	var (
		room       persistence.Room
		notes      sql.NullString
		roomTypeID sql.NullString
	)
	err := row.Scan(&room.ID, &room.Number, &room.Available, &notes, &roomTypeID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return persistence.Room{}, persistence.ErrNotFound
		}
		return persistence.Room{}, classify(err)
	}
	room.Notes = stringPtr(notes)
	room.RoomTypeID = stringPtr(roomTypeID)
	return room, nil
}
