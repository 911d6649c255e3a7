package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"github.com/Donovan7777/hotel/internal/persistence"
)

// CreateOccupant inserts a new occupant.
func (s *Store) CreateOccupant(ctx context.Context, occupant persistence.Occupant) error {
	const query = `
		INSERT INTO occupants (id, first_name, last_name, address, mobile, credential, category)
		VALUES (?, ?, ?, ?, ?, ?, ?)`

	_, err := s.q(ctx).ExecContext(ctx, query,
		occupant.ID,
		occupant.FirstName,
		occupant.LastName,
		occupant.Address,
		occupant.Mobile,
		occupant.Credential,
		occupant.Category,
	)
	return classify(err)
}

// UpdateOccupant rewrites an existing occupant row.
func (s *Store) UpdateOccupant(ctx context.Context, occupant persistence.Occupant) error {
	const query = `
		UPDATE occupants
		SET first_name = ?, last_name = ?, address = ?, mobile = ?, credential = ?, category = ?
		WHERE id = ?`

	result, err := s.q(ctx).ExecContext(ctx, query,
		occupant.FirstName,
		occupant.LastName,
		occupant.Address,
		occupant.Mobile,
		occupant.Credential,
		occupant.Category,
		occupant.ID,
	)
	if err != nil {
		return classify(err)
	}
	return requireRowsAffected(result)
}

// GetOccupant retrieves an occupant by id.
func (s *Store) GetOccupant(ctx context.Context, id string) (persistence.Occupant, error) {
	const query = `
		SELECT id, first_name, last_name, address, mobile, credential, category
		FROM occupants WHERE id = ?`

	return scanOccupant(s.q(ctx).QueryRowContext(ctx, query, id))
}

// FindOccupantByIdentity locates an occupant by the exact
// (last name, first name, mobile) triple.
func (s *Store) FindOccupantByIdentity(ctx context.Context, lastName, firstName, mobile string) (persistence.Occupant, error) {
	const query = `
		SELECT id, first_name, last_name, address, mobile, credential, category
		FROM occupants WHERE last_name = ? AND first_name = ? AND mobile = ?
		ORDER BY id ASC LIMIT 1`

	return scanOccupant(s.q(ctx).QueryRowContext(ctx, query, lastName, firstName, mobile))
}

// ListOccupants returns all occupants ordered by last then first name.
func (s *Store) ListOccupants(ctx context.Context) ([]persistence.Occupant, error) {
	const query = `
		SELECT id, first_name, last_name, address, mobile, credential, category
		FROM occupants ORDER BY last_name ASC, first_name ASC, id ASC`

	rows, err := s.q(ctx).QueryContext(ctx, query)
	if err != nil {
		return nil, classify(err)
	}
	defer rows.Close()

	var occupants []persistence.Occupant
	for rows.Next() {
		occupant, err := scanOccupant(rows)
		if err != nil {
			return nil, err
		}
		occupants = append(occupants, occupant)
	}
	if err := rows.Err(); err != nil {
		return nil, classify(err)
	}
	return occupants, nil
}

// DeleteOccupant removes an occupant by id. Occupants carry no dependency
// guard of their own; a foreign key failure propagates classified but
// untranslated.
func (s *Store) DeleteOccupant(ctx context.Context, id string) error {
	result, err := s.q(ctx).ExecContext(ctx, `DELETE FROM occupants WHERE id = ?`, id)
	if err != nil {
		return classify(err)
	}
	return requireRowsAffected(result)
}

func scanOccupant(row rowScanner) (persistence.Occupant, error) {
	var occupant persistence.Occupant
	err := row.Scan(
		&occupant.ID,
		&occupant.FirstName,
		&occupant.LastName,
		&occupant.Address,
		&occupant.Mobile,
		&occupant.Credential,
		&occupant.Category,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return persistence.Occupant{}, persistence.ErrNotFound
		}
		return persistence.Occupant{}, classify(err)
	}
	return occupant, nil
}
