package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"github.com/Donovan7777/hotel/internal/persistence"
)

// hydratedColumns joins a reservation to its room, the room's type, and its
// occupant so a single read returns the fully resolved row. The room type
// columns are nullable because a room may reference no type.
const hydratedColumns = `
	r.id, r.start_at, r.end_at, r.price_per_day, r.note, r.occupant_id, r.room_id,
	rm.id, rm.number, rm.available, rm.notes, rm.room_type_id,
	rt.id, rt.name, rt.floor_price, rt.ceiling_price, rt.description,
	o.id, o.first_name, o.last_name, o.address, o.mobile, o.credential, o.category
	FROM reservations r
	JOIN rooms rm ON rm.id = r.room_id
	LEFT JOIN room_types rt ON rt.id = rm.room_type_id
	JOIN occupants o ON o.id = r.occupant_id`

// CreateReservation inserts a new reservation row.
func (s *Store) CreateReservation(ctx context.Context, reservation persistence.Reservation) error {
	const query = `
		INSERT INTO reservations (id, start_at, end_at, price_per_day, note, occupant_id, room_id)
		VALUES (?, ?, ?, ?, ?, ?, ?)`

	_, err := s.q(ctx).ExecContext(ctx, query,
		reservation.ID,
		formatTime(reservation.Start),
		formatTime(reservation.End),
		reservation.PricePerDay,
		nullString(reservation.Note),
		reservation.OccupantID,
		reservation.RoomID,
	)
	return classify(err)
}

// UpdateReservation rewrites an existing reservation row.
func (s *Store) UpdateReservation(ctx context.Context, reservation persistence.Reservation) error {
	const query = `
		UPDATE reservations
		SET start_at = ?, end_at = ?, price_per_day = ?, note = ?, occupant_id = ?, room_id = ?
		WHERE id = ?`

	result, err := s.q(ctx).ExecContext(ctx, query,
		formatTime(reservation.Start),
		formatTime(reservation.End),
		reservation.PricePerDay,
		nullString(reservation.Note),
		reservation.OccupantID,
		reservation.RoomID,
		reservation.ID,
	)
	if err != nil {
		return classify(err)
	}
	return requireRowsAffected(result)
}

// GetReservation retrieves a bare reservation row by id.
func (s *Store) GetReservation(ctx context.Context, id string) (persistence.Reservation, error) {
	const query = `
		SELECT id, start_at, end_at, price_per_day, note, occupant_id, room_id
		FROM reservations WHERE id = ?`

	row := s.q(ctx).QueryRowContext(ctx, query, id)

	var (
		reservation      persistence.Reservation
		startAt, endAt   string
		note             sql.NullString
	)
	err := row.Scan(
		&reservation.ID,
		&startAt,
		&endAt,
		&reservation.PricePerDay,
		&note,
		&reservation.OccupantID,
		&reservation.RoomID,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return persistence.Reservation{}, persistence.ErrNotFound
		}
		return persistence.Reservation{}, classify(err)
	}

	reservation.Note = stringPtr(note)
	if reservation.Start, err = parseTime(startAt); err != nil {
		return persistence.Reservation{}, err
	}
	if reservation.End, err = parseTime(endAt); err != nil {
		return persistence.Reservation{}, err
	}
	return reservation, nil
}

// GetHydratedReservation reads a reservation together with snapshots of its
// room, room type, and occupant in one query.
func (s *Store) GetHydratedReservation(ctx context.Context, id string) (persistence.HydratedReservation, error) {
	query := `SELECT` + hydratedColumns + ` WHERE r.id = ?`
	return scanHydratedReservation(s.q(ctx).QueryRowContext(ctx, query, id))
}

// ListHydratedReservations returns every reservation fully resolved, ordered
// by start timestamp ascending with id as the tie-break.
func (s *Store) ListHydratedReservations(ctx context.Context) ([]persistence.HydratedReservation, error) {
	query := `SELECT` + hydratedColumns + ` ORDER BY r.start_at ASC, r.id ASC`

	rows, err := s.q(ctx).QueryContext(ctx, query)
	if err != nil {
		return nil, classify(err)
	}
	defer rows.Close()

	var reservations []persistence.HydratedReservation
	for rows.Next() {
		hydrated, err := scanHydratedReservation(rows)
		if err != nil {
			return nil, err
		}
		reservations = append(reservations, hydrated)
	}
	if err := rows.Err(); err != nil {
		return nil, classify(err)
	}
	return reservations, nil
}

// DeleteReservation removes a reservation by id.
func (s *Store) DeleteReservation(ctx context.Context, id string) error {
	result, err := s.q(ctx).ExecContext(ctx, `DELETE FROM reservations WHERE id = ?`, id)
	if err != nil {
		return classify(err)
	}
	return requireRowsAffected(result)
}

func scanHydratedReservation(row rowScanner) (persistence.HydratedReservation, error) {
	var (
		hydrated       persistence.HydratedReservation
		startAt, endAt string
		note           sql.NullString
		roomNotes      sql.NullString
		roomTypeID     sql.NullString

		typeID, typeName           sql.NullString
		typeFloorPrice             sql.NullFloat64
		typeCeilingPrice, typeDesc sql.NullString
	)

	err := row.Scan(
		&hydrated.Reservation.ID,
		&startAt,
		&endAt,
		&hydrated.Reservation.PricePerDay,
		&note,
		&hydrated.Reservation.OccupantID,
		&hydrated.Reservation.RoomID,
		&hydrated.Room.ID,
		&hydrated.Room.Number,
		&hydrated.Room.Available,
		&roomNotes,
		&roomTypeID,
		&typeID,
		&typeName,
		&typeFloorPrice,
		&typeCeilingPrice,
		&typeDesc,
		&hydrated.Occupant.ID,
		&hydrated.Occupant.FirstName,
		&hydrated.Occupant.LastName,
		&hydrated.Occupant.Address,
		&hydrated.Occupant.Mobile,
		&hydrated.Occupant.Credential,
		&hydrated.Occupant.Category,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return persistence.HydratedReservation{}, persistence.ErrNotFound
		}
		return persistence.HydratedReservation{}, classify(err)
	}

	hydrated.Reservation.Note = stringPtr(note)
	hydrated.Room.Notes = stringPtr(roomNotes)
	hydrated.Room.RoomTypeID = stringPtr(roomTypeID)

	if hydrated.Reservation.Start, err = parseTime(startAt); err != nil {
		return persistence.HydratedReservation{}, err
	}
	if hydrated.Reservation.End, err = parseTime(endAt); err != nil {
		return persistence.HydratedReservation{}, err
	}

	if typeID.Valid {
		hydrated.RoomType = &persistence.RoomType{
			ID:           typeID.String,
			Name:         typeName.String,
			FloorPrice:   typeFloorPrice.Float64,
			CeilingPrice: stringPtr(typeCeilingPrice),
			Description:  stringPtr(typeDesc),
		}
	}

	return hydrated, nil
}
