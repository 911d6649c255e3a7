package application

import (
	"context"
	"errors"
	"log/slog"

	"github.com/Donovan7777/hotel/internal/persistence"
)

// RoomRepository captures the room storage operations the service needs.
type RoomRepository interface {
	CreateRoom(ctx context.Context, room persistence.Room) error
	UpdateRoom(ctx context.Context, room persistence.Room) error
	GetRoom(ctx context.Context, id string) (persistence.Room, error)
	GetRoomByNumber(ctx context.Context, number int) (persistence.Room, error)
	ListRooms(ctx context.Context) ([]persistence.Room, error)
	DeleteRoom(ctx context.Context, id string) error
}

// RoomTypeDirectory resolves room types for binding rooms by type name.
type RoomTypeDirectory interface {
	GetRoomType(ctx context.Context, id string) (persistence.RoomType, error)
	GetRoomTypeByName(ctx context.Context, name string) (persistence.RoomType, error)
}

// RoomService manages bookable rooms. Rooms bind to their type by name at
// creation, may be repointed by name on update, and cannot be deleted while
// reservations reference them.
type RoomService struct {
	rooms       RoomRepository
	roomTypes   RoomTypeDirectory
	tx          persistence.TxRunner
	idGenerator func() string
	logger      *slog.Logger
}

// NewRoomService constructs a room service.
func NewRoomService(rooms RoomRepository, roomTypes RoomTypeDirectory, tx persistence.TxRunner, idGenerator func() string, logger *slog.Logger) *RoomService {
	if idGenerator == nil {
		idGenerator = func() string { return "" }
	}
	return &RoomService{
		rooms:       rooms,
		roomTypes:   roomTypes,
		tx:          tx,
		idGenerator: idGenerator,
		logger:      defaultLogger(logger),
	}
}

func (s *RoomService) loggerWith(ctx context.Context, operation string, attrs ...any) *slog.Logger {
	return serviceLogger(ctx, s.logger, "RoomService", operation, attrs...)
}

// Create persists a new room bound to the type named in the input. The type
// must exist; otherwise creation fails with ErrRoomTypeNotFound.
func (s *RoomService) Create(ctx context.Context, input RoomInput) (view RoomView, err error) {
	logger := s.loggerWith(ctx, "Create",
		"room_number", input.Number,
		"room_type_name", input.RoomTypeName,
	)
	defer func() {
		if err != nil {
			logger.ErrorContext(ctx, "failed to create room", "error", err, "error_kind", ErrorKind(err))
			return
		}
		logger.With("room_id", view.ID).InfoContext(ctx, "room created")
	}()

	err = s.tx.InTx(ctx, func(ctx context.Context) error {
		roomType, typeErr := s.roomTypes.GetRoomTypeByName(ctx, input.RoomTypeName)
		if typeErr != nil {
			return asReferenceError(typeErr, ErrRoomTypeNotFound)
		}

		room := persistence.Room{
			ID:         s.idGenerator(),
			Number:     input.Number,
			Available:  input.Available,
			Notes:      copyString(input.Notes),
			RoomTypeID: &roomType.ID,
		}
		if createErr := s.rooms.CreateRoom(ctx, room); createErr != nil {
			return createErr
		}
		view = toRoomView(room, &roomType)
		return nil
	})
	return
}

// Get returns the room for id with its type snapshot embedded when the room
// references one; absence is reported through the boolean.
func (s *RoomService) Get(ctx context.Context, id string) (RoomView, bool, error) {
	room, err := s.rooms.GetRoom(ctx, id)
	if err != nil {
		if errors.Is(err, persistence.ErrNotFound) {
			return RoomView{}, false, nil
		}
		return RoomView{}, false, err
	}
	return s.hydrateRoom(ctx, room)
}

// GetByNumber returns the room carrying the given room number.
func (s *RoomService) GetByNumber(ctx context.Context, number int) (RoomView, bool, error) {
	room, err := s.rooms.GetRoomByNumber(ctx, number)
	if err != nil {
		if errors.Is(err, persistence.ErrNotFound) {
			return RoomView{}, false, nil
		}
		return RoomView{}, false, err
	}
	return s.hydrateRoom(ctx, room)
}

// List returns all rooms ordered by room number, each with its type snapshot.
func (s *RoomService) List(ctx context.Context) ([]RoomView, error) {
	rooms, err := s.rooms.ListRooms(ctx)
	if err != nil {
		s.loggerWith(ctx, "List").ErrorContext(ctx, "failed to list rooms", "error", err)
		return nil, err
	}

	views := make([]RoomView, 0, len(rooms))
	for _, room := range rooms {
		view, _, hydrateErr := s.hydrateRoom(ctx, room)
		if hydrateErr != nil {
			return nil, hydrateErr
		}
		views = append(views, view)
	}
	return views, nil
}

// Update applies a partial patch. A set RoomTypeName repoints the room at
// the type with that name, which must exist.
func (s *RoomService) Update(ctx context.Context, id string, patch RoomPatch) (view RoomView, err error) {
	logger := s.loggerWith(ctx, "Update", "room_id", id)
	defer func() {
		if err != nil {
			logger.ErrorContext(ctx, "failed to update room", "error", err, "error_kind", ErrorKind(err))
			return
		}
		logger.InfoContext(ctx, "room updated")
	}()

	err = s.tx.InTx(ctx, func(ctx context.Context) error {
		room, getErr := s.rooms.GetRoom(ctx, id)
		if getErr != nil {
			if errors.Is(getErr, persistence.ErrNotFound) {
				return ErrRoomNotFound
			}
			return getErr
		}

		if patch.Number != nil {
			room.Number = *patch.Number
		}
		if patch.Available != nil {
			room.Available = *patch.Available
		}
		if patch.Notes != nil {
			room.Notes = copyString(patch.Notes)
		}
		if patch.RoomTypeName != nil {
			roomType, typeErr := s.roomTypes.GetRoomTypeByName(ctx, *patch.RoomTypeName)
			if typeErr != nil {
				return asReferenceError(typeErr, ErrRoomTypeNotFound)
			}
			room.RoomTypeID = &roomType.ID
		}

		if updateErr := s.rooms.UpdateRoom(ctx, room); updateErr != nil {
			return updateErr
		}

		hydrated, _, hydrateErr := s.hydrateRoom(ctx, room)
		if hydrateErr != nil {
			return hydrateErr
		}
		view = hydrated
		return nil
	})
	return
}

// Delete removes a room when no reservation references it. A storage-level
// referential-integrity rejection surfaces as ErrDependencyExists; a missing
// id reports false without error.
func (s *RoomService) Delete(ctx context.Context, id string) (deleted bool, err error) {
	logger := s.loggerWith(ctx, "Delete", "room_id", id)
	defer func() {
		if err != nil {
			logger.ErrorContext(ctx, "failed to delete room", "error", err, "error_kind", ErrorKind(err))
			return
		}
		logger.With("deleted", deleted).InfoContext(ctx, "room delete finished")
	}()

	err = s.tx.InTx(ctx, func(ctx context.Context) error {
		if delErr := s.rooms.DeleteRoom(ctx, id); delErr != nil {
			switch {
			case errors.Is(delErr, persistence.ErrNotFound):
				return nil
			case errors.Is(delErr, persistence.ErrForeignKeyViolation):
				return ErrDependencyExists
			}
			return delErr
		}
		deleted = true
		return nil
	})
	return
}

// hydrateRoom resolves the room's type snapshot when one is referenced. A
// dangling reference degrades to an untyped view rather than failing reads.
func (s *RoomService) hydrateRoom(ctx context.Context, room persistence.Room) (RoomView, bool, error) {
	if room.RoomTypeID == nil {
		return toRoomView(room, nil), true, nil
	}

	roomType, err := s.roomTypes.GetRoomType(ctx, *room.RoomTypeID)
	if err != nil {
		if errors.Is(err, persistence.ErrNotFound) {
			return toRoomView(room, nil), true, nil
		}
		return RoomView{}, false, err
	}
	return toRoomView(room, &roomType), true, nil
}
