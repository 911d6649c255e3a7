package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/Donovan7777/hotel/internal/persistence"
)

// ReservationRepository captures the reservation storage operations the
// engine needs, including the hydrating reads.
type ReservationRepository interface {
	CreateReservation(ctx context.Context, reservation persistence.Reservation) error
	UpdateReservation(ctx context.Context, reservation persistence.Reservation) error
	GetReservation(ctx context.Context, id string) (persistence.Reservation, error)
	GetHydratedReservation(ctx context.Context, id string) (persistence.HydratedReservation, error)
	ListHydratedReservations(ctx context.Context) ([]persistence.HydratedReservation, error)
	DeleteReservation(ctx context.Context, id string) error
}

// OccupantDirectory resolves an occupant id to the stored entity or absence.
type OccupantDirectory interface {
	GetOccupant(ctx context.Context, id string) (persistence.Occupant, error)
}

// RoomDirectory resolves a room id to the stored entity or absence.
type RoomDirectory interface {
	GetRoom(ctx context.Context, id string) (persistence.Room, error)
}

// ReservationService owns the reservation lifecycle: validation, reference
// resolution, persistence, and hydration. Every mutating operation runs as
// one unit of work against the store.
type ReservationService struct {
	reservations ReservationRepository
	occupants    OccupantDirectory
	rooms        RoomDirectory
	tx           persistence.TxRunner
	idGenerator  func() string
	logger       *slog.Logger
}

// NewReservationService constructs the reservation engine.
func NewReservationService(
	reservations ReservationRepository,
	occupants OccupantDirectory,
	rooms RoomDirectory,
	tx persistence.TxRunner,
	idGenerator func() string,
	logger *slog.Logger,
) *ReservationService {
	if idGenerator == nil {
		idGenerator = func() string { return "" }
	}
	return &ReservationService{
		reservations: reservations,
		occupants:    occupants,
		rooms:        rooms,
		tx:           tx,
		idGenerator:  idGenerator,
		logger:       defaultLogger(logger),
	}
}

func (s *ReservationService) loggerWith(ctx context.Context, operation string, attrs ...any) *slog.Logger {
	return serviceLogger(ctx, s.logger, "ReservationService", operation, attrs...)
}

// List returns every reservation fully hydrated, ordered by start timestamp
// ascending. An empty store yields an empty slice.
func (s *ReservationService) List(ctx context.Context) (views []ReservationView, err error) {
	logger := s.loggerWith(ctx, "List")
	defer func() {
		if err != nil {
			logger.ErrorContext(ctx, "failed to list reservations", "error", err, "error_kind", ErrorKind(err))
			return
		}
		logger.With("result_count", len(views)).InfoContext(ctx, "reservations listed")
	}()

	hydrated, err := s.reservations.ListHydratedReservations(ctx)
	if err != nil {
		return nil, err
	}

	views = make([]ReservationView, 0, len(hydrated))
	for _, h := range hydrated {
		views = append(views, toReservationView(h))
	}
	return views, nil
}

// Get returns the hydrated reservation for id. Absence is reported through
// the boolean, never as an error.
func (s *ReservationService) Get(ctx context.Context, id string) (ReservationView, bool, error) {
	hydrated, err := s.reservations.GetHydratedReservation(ctx, id)
	if err != nil {
		if errors.Is(err, persistence.ErrNotFound) {
			return ReservationView{}, false, nil
		}
		s.loggerWith(ctx, "Get", "reservation_id", id).
			ErrorContext(ctx, "failed to get reservation", "error", err)
		return ReservationView{}, false, err
	}
	return toReservationView(hydrated), true, nil
}

// Search is the legacy criteria search: without a reservation id it matches
// nothing, otherwise it returns at most one element.
func (s *ReservationService) Search(ctx context.Context, criteria ReservationCriteria) ([]ReservationView, error) {
	if criteria.ReservationID == "" {
		return []ReservationView{}, nil
	}

	view, found, err := s.Get(ctx, criteria.ReservationID)
	if err != nil {
		return nil, err
	}
	if !found {
		return []ReservationView{}, nil
	}
	return []ReservationView{view}, nil
}

// Create validates the date range and price, confirms both referenced
// entities exist, persists the reservation with timezone-naive timestamps,
// and re-reads it hydrated so the returned view is fully populated.
func (s *ReservationService) Create(ctx context.Context, input ReservationInput) (view ReservationView, err error) {
	logger := s.loggerWith(ctx, "Create",
		"occupant_id", input.OccupantID,
		"room_id", input.RoomID,
	)
	defer func() {
		if err != nil {
			logger.ErrorContext(ctx, "failed to create reservation", "error", err, "error_kind", ErrorKind(err))
			return
		}
		logger.With("reservation_id", view.ID).InfoContext(ctx, "reservation created")
	}()

	if !input.End.After(input.Start) {
		err = ErrInvalidDateRange
		return
	}
	if input.PricePerDay <= 0 {
		err = ErrInvalidPrice
		return
	}

	err = s.tx.InTx(ctx, func(ctx context.Context) error {
		if _, dirErr := s.occupants.GetOccupant(ctx, input.OccupantID); dirErr != nil {
			return asReferenceError(dirErr, ErrOccupantNotFound)
		}
		if _, dirErr := s.rooms.GetRoom(ctx, input.RoomID); dirErr != nil {
			return asReferenceError(dirErr, ErrRoomNotFound)
		}

		reservation := persistence.Reservation{
			ID:          s.idGenerator(),
			Start:       asCivil(input.Start),
			End:         asCivil(input.End),
			PricePerDay: input.PricePerDay,
			Note:        copyString(input.Note),
			OccupantID:  input.OccupantID,
			RoomID:      input.RoomID,
		}

		if createErr := s.reservations.CreateReservation(ctx, reservation); createErr != nil {
			// The NOT NULL foreign keys are a storage-level backstop for
			// the resolution above; a violation still surfaces as the
			// reference failure it is.
			if errors.Is(createErr, persistence.ErrForeignKeyViolation) {
				return ErrRoomNotFound
			}
			return createErr
		}

		hydrated, readErr := s.reservations.GetHydratedReservation(ctx, reservation.ID)
		if readErr != nil {
			return fmt.Errorf("re-read created reservation: %w", readErr)
		}
		view = toReservationView(hydrated)
		return nil
	})
	return
}

// Update applies a partial patch. Nil fields leave the stored value
// untouched. A patched start is validated against the *stored* end and a
// patched end against the *stored* start, matching the legacy per-field
// semantics: a patch moving both endpoints can be rejected even when the
// combined result would be valid.
func (s *ReservationService) Update(ctx context.Context, id string, patch ReservationPatch) (view ReservationView, err error) {
	logger := s.loggerWith(ctx, "Update", "reservation_id", id)
	defer func() {
		if err != nil {
			logger.ErrorContext(ctx, "failed to update reservation", "error", err, "error_kind", ErrorKind(err))
			return
		}
		logger.InfoContext(ctx, "reservation updated")
	}()

	err = s.tx.InTx(ctx, func(ctx context.Context) error {
		reservation, getErr := s.reservations.GetReservation(ctx, id)
		if getErr != nil {
			if errors.Is(getErr, persistence.ErrNotFound) {
				return ErrReservationNotFound
			}
			return getErr
		}

		if patch.OccupantID != nil {
			occupant, dirErr := s.occupants.GetOccupant(ctx, *patch.OccupantID)
			if dirErr != nil {
				return asReferenceError(dirErr, ErrOccupantNotFound)
			}
			reservation.OccupantID = occupant.ID
		}

		if patch.RoomID != nil {
			room, dirErr := s.rooms.GetRoom(ctx, *patch.RoomID)
			if dirErr != nil {
				return asReferenceError(dirErr, ErrRoomNotFound)
			}
			reservation.RoomID = room.ID
		}

		if patch.Start != nil {
			start := asCivil(*patch.Start)
			if !start.Before(reservation.End) {
				return ErrInvalidDateRange
			}
			reservation.Start = start
		}

		if patch.End != nil {
			end := asCivil(*patch.End)
			if !end.After(reservation.Start) {
				return ErrInvalidDateRange
			}
			reservation.End = end
		}

		if patch.PricePerDay != nil {
			if *patch.PricePerDay <= 0 {
				return ErrInvalidPrice
			}
			reservation.PricePerDay = *patch.PricePerDay
		}

		if patch.Note != nil {
			reservation.Note = copyString(patch.Note)
		}

		if updateErr := s.reservations.UpdateReservation(ctx, reservation); updateErr != nil {
			return updateErr
		}

		hydrated, readErr := s.reservations.GetHydratedReservation(ctx, id)
		if readErr != nil {
			return fmt.Errorf("re-read updated reservation: %w", readErr)
		}
		view = toReservationView(hydrated)
		return nil
	})
	return
}

// Delete removes the reservation when it exists. The boolean reports whether
// a row was removed; a missing id is not an error, making repeated deletes
// of the same id safe.
func (s *ReservationService) Delete(ctx context.Context, id string) (deleted bool, err error) {
	logger := s.loggerWith(ctx, "Delete", "reservation_id", id)
	defer func() {
		if err != nil {
			logger.ErrorContext(ctx, "failed to delete reservation", "error", err, "error_kind", ErrorKind(err))
			return
		}
		logger.With("deleted", deleted).InfoContext(ctx, "reservation delete finished")
	}()

	err = s.tx.InTx(ctx, func(ctx context.Context) error {
		if delErr := s.reservations.DeleteReservation(ctx, id); delErr != nil {
			if errors.Is(delErr, persistence.ErrNotFound) {
				return nil
			}
			return delErr
		}
		deleted = true
		return nil
	})
	return
}

// asReferenceError translates a directory miss into the matching domain
// error; any other failure passes through as infrastructure trouble.
func asReferenceError(err error, notFound error) error {
	if errors.Is(err, persistence.ErrNotFound) {
		return notFound
	}
	return err
}
