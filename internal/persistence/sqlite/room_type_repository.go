package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"github.com/Donovan7777/hotel/internal/persistence"
)

// CreateRoomType inserts a new room type.
func (s *Store) CreateRoomType(ctx context.Context, roomType persistence.RoomType) error {
	const query = `
		INSERT INTO room_types (id, name, floor_price, ceiling_price, description)
		VALUES (?, ?, ?, ?, ?)`

	_, err := s.q(ctx).ExecContext(ctx, query,
		roomType.ID,
		roomType.Name,
		roomType.FloorPrice,
		nullString(roomType.CeilingPrice),
		nullString(roomType.Description),
	)
	return classify(err)
}

// UpdateRoomType rewrites an existing room type row.
func (s *Store) UpdateRoomType(ctx context.Context, roomType persistence.RoomType) error {
	const query = `
		UPDATE room_types
		SET name = ?, floor_price = ?, ceiling_price = ?, description = ?
		WHERE id = ?`

	result, err := s.q(ctx).ExecContext(ctx, query,
		roomType.Name,
		roomType.FloorPrice,
		nullString(roomType.CeilingPrice),
		nullString(roomType.Description),
		roomType.ID,
	)
	if err != nil {
		return classify(err)
	}
	return requireRowsAffected(result)
}

// GetRoomType retrieves a room type by id.
func (s *Store) GetRoomType(ctx context.Context, id string) (persistence.RoomType, error) {
	const query = `
		SELECT id, name, floor_price, ceiling_price, description
		FROM room_types WHERE id = ?`

	return scanRoomType(s.q(ctx).QueryRowContext(ctx, query, id))
}

// GetRoomTypeByName retrieves a room type by its unique name.
func (s *Store) GetRoomTypeByName(ctx context.Context, name string) (persistence.RoomType, error) {
	const query = `
		SELECT id, name, floor_price, ceiling_price, description
		FROM room_types WHERE name = ?`

	return scanRoomType(s.q(ctx).QueryRowContext(ctx, query, name))
}

// ListRoomTypes returns all room types ordered by name.
func (s *Store) ListRoomTypes(ctx context.Context) ([]persistence.RoomType, error) {
	const query = `
		SELECT id, name, floor_price, ceiling_price, description
		FROM room_types ORDER BY name ASC, id ASC`

	rows, err := s.q(ctx).QueryContext(ctx, query)
	if err != nil {
		return nil, classify(err)
	}
	defer rows.Close()

	var roomTypes []persistence.RoomType
	for rows.Next() {
		roomType, err := scanRoomType(rows)
		if err != nil {
			return nil, err
		}
		roomTypes = append(roomTypes, roomType)
	}
	if err := rows.Err(); err != nil {
		return nil, classify(err)
	}
	return roomTypes, nil
}

// DeleteRoomType removes a room type. The delete is rejected with
// persistence.ErrForeignKeyViolation while rooms still reference it.
func (s *Store) DeleteRoomType(ctx context.Context, id string) error {
	result, err := s.q(ctx).ExecContext(ctx, `DELETE FROM room_types WHERE id = ?`, id)
	if err != nil {
		return classify(err)
	}
	return requireRowsAffected(result)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRoomType(row rowScanner) (persistence.RoomType, error) {
	var (
		roomType     persistence.RoomType
		ceilingPrice sql.NullString
		description  sql.NullString
	)
	err := row.Scan(&roomType.ID, &roomType.Name, &roomType.FloorPrice, &ceilingPrice, &description)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return persistence.RoomType{}, persistence.ErrNotFound
		}
		return persistence.RoomType{}, classify(err)
	}
	roomType.CeilingPrice = stringPtr(ceilingPrice)
	roomType.Description = stringPtr(description)
	return roomType, nil
}

func requireRowsAffected(result sql.Result) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return persistence.ErrNotFound
	}
	return nil
}
