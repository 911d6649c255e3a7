package application

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/Donovan7777/hotel/internal/persistence"
)

// RoomTypeRepository captures the room type storage operations the service needs.
type RoomTypeRepository interface {
	CreateRoomType(ctx context.Context, roomType persistence.RoomType) error
	UpdateRoomType(ctx context.Context, roomType persistence.RoomType) error
	GetRoomType(ctx context.Context, id string) (persistence.RoomType, error)
	GetRoomTypeByName(ctx context.Context, name string) (persistence.RoomType, error)
	ListRoomTypes(ctx context.Context) ([]persistence.RoomType, error)
	DeleteRoomType(ctx context.Context, id string) error
}

// RoomTypeService manages room categories: creation deduplicated by name,
// partial updates with ceiling-price validation, and deletion guarded by
// referencing rooms.
type RoomTypeService struct {
	roomTypes   RoomTypeRepository
	tx          persistence.TxRunner
	idGenerator func() string
	logger      *slog.Logger
}

// NewRoomTypeService constructs a room type service.
func NewRoomTypeService(roomTypes RoomTypeRepository, tx persistence.TxRunner, idGenerator func() string, logger *slog.Logger) *RoomTypeService {
	if idGenerator == nil {
		idGenerator = func() string { return "" }
	}
	return &RoomTypeService{
		roomTypes:   roomTypes,
		tx:          tx,
		idGenerator: idGenerator,
		logger:      defaultLogger(logger),
	}
}

func (s *RoomTypeService) loggerWith(ctx context.Context, operation string, attrs ...any) *slog.Logger {
	return serviceLogger(ctx, s.logger, "RoomTypeService", operation, attrs...)
}

// Create validates input and persists a new room type. A type whose name
// already exists is not duplicated; the existing row is returned instead.
func (s *RoomTypeService) Create(ctx context.Context, input RoomTypeInput) (view RoomTypeView, err error) {
	logger := s.loggerWith(ctx, "Create", "name", input.Name)
	defer func() {
		if err != nil {
			logger.ErrorContext(ctx, "failed to create room type", "error", err, "error_kind", ErrorKind(err))
			return
		}
		logger.With("room_type_id", view.ID).InfoContext(ctx, "room type created")
	}()

	if vErr := validateRoomTypeInput(input); vErr.HasErrors() {
		err = vErr
		return
	}

	err = s.tx.InTx(ctx, func(ctx context.Context) error {
		existing, getErr := s.roomTypes.GetRoomTypeByName(ctx, input.Name)
		if getErr == nil {
			view = toRoomTypeView(existing)
			return nil
		}
		if !errors.Is(getErr, persistence.ErrNotFound) {
			return getErr
		}

		ceiling, ceilErr := validateCeilingPrice(input.FloorPrice, input.CeilingPrice)
		if ceilErr != nil {
			return ceilErr
		}

		roomType := persistence.RoomType{
			ID:           s.idGenerator(),
			Name:         input.Name,
			FloorPrice:   input.FloorPrice,
			CeilingPrice: ceiling,
			Description:  copyString(input.Description),
		}
		if createErr := s.roomTypes.CreateRoomType(ctx, roomType); createErr != nil {
			return createErr
		}
		view = toRoomTypeView(roomType)
		return nil
	})
	return
}

// Get returns the room type for id; absence is reported through the boolean.
func (s *RoomTypeService) Get(ctx context.Context, id string) (RoomTypeView, bool, error) {
	roomType, err := s.roomTypes.GetRoomType(ctx, id)
	if err != nil {
		if errors.Is(err, persistence.ErrNotFound) {
			return RoomTypeView{}, false, nil
		}
		return RoomTypeView{}, false, err
	}
	return toRoomTypeView(roomType), true, nil
}

// List returns all room types ordered by name.
func (s *RoomTypeService) List(ctx context.Context) ([]RoomTypeView, error) {
	roomTypes, err := s.roomTypes.ListRoomTypes(ctx)
	if err != nil {
		s.loggerWith(ctx, "List").ErrorContext(ctx, "failed to list room types", "error", err)
		return nil, err
	}

	views := make([]RoomTypeView, 0, len(roomTypes))
	for _, roomType := range roomTypes {
		views = append(views, toRoomTypeView(roomType))
	}
	return views, nil
}

// Search is the legacy id-keyed search shim: no id matches nothing.
func (s *RoomTypeService) Search(ctx context.Context, roomTypeID string) ([]RoomTypeView, error) {
	if roomTypeID == "" {
		return []RoomTypeView{}, nil
	}
	view, found, err := s.Get(ctx, roomTypeID)
	if err != nil {
		return nil, err
	}
	if !found {
		return []RoomTypeView{}, nil
	}
	return []RoomTypeView{view}, nil
}

// Update applies a partial patch. The ceiling price is validated against the
// incoming floor price when both change, otherwise against the stored one.
func (s *RoomTypeService) Update(ctx context.Context, id string, patch RoomTypePatch) (view RoomTypeView, err error) {
	logger := s.loggerWith(ctx, "Update", "room_type_id", id)
	defer func() {
		if err != nil {
			logger.ErrorContext(ctx, "failed to update room type", "error", err, "error_kind", ErrorKind(err))
			return
		}
		logger.InfoContext(ctx, "room type updated")
	}()

	err = s.tx.InTx(ctx, func(ctx context.Context) error {
		roomType, getErr := s.roomTypes.GetRoomType(ctx, id)
		if getErr != nil {
			if errors.Is(getErr, persistence.ErrNotFound) {
				return ErrRoomTypeNotFound
			}
			return getErr
		}

		floor := roomType.FloorPrice
		if patch.FloorPrice != nil {
			floor = *patch.FloorPrice
		}
		ceilingText := roomType.CeilingPrice
		if patch.CeilingPrice != nil {
			ceilingText = patch.CeilingPrice
		}
		ceiling, ceilErr := validateCeilingPrice(floor, ceilingText)
		if ceilErr != nil {
			return ceilErr
		}

		if patch.Name != nil {
			if vErr := validateRoomTypeName(*patch.Name); vErr != nil {
				return vErr
			}
			roomType.Name = *patch.Name
		}
		if patch.FloorPrice != nil {
			roomType.FloorPrice = *patch.FloorPrice
		}
		if patch.CeilingPrice != nil {
			roomType.CeilingPrice = ceiling
		}
		if patch.Description != nil {
			roomType.Description = copyString(patch.Description)
		}

		if updateErr := s.roomTypes.UpdateRoomType(ctx, roomType); updateErr != nil {
			return updateErr
		}
		view = toRoomTypeView(roomType)
		return nil
	})
	return
}

// Delete removes a room type when nothing references it. A storage-level
// referential-integrity rejection surfaces as ErrDependencyExists; a missing
// id reports false without error.
func (s *RoomTypeService) Delete(ctx context.Context, id string) (deleted bool, err error) {
	logger := s.loggerWith(ctx, "Delete", "room_type_id", id)
	defer func() {
		if err != nil {
			logger.ErrorContext(ctx, "failed to delete room type", "error", err, "error_kind", ErrorKind(err))
			return
		}
		logger.With("deleted", deleted).InfoContext(ctx, "room type delete finished")
	}()

	err = s.tx.InTx(ctx, func(ctx context.Context) error {
		if delErr := s.roomTypes.DeleteRoomType(ctx, id); delErr != nil {
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

func validateRoomTypeInput(input RoomTypeInput) *ValidationError {
	vErr := &ValidationError{}
	if nameErr := validateRoomTypeName(input.Name); nameErr != nil {
		vErr.add("name", "name must be between 1 and 50 characters")
	}
	if input.FloorPrice <= 0 {
		vErr.add("floor_price", "floor price must be positive")
	}
	if input.Description != nil && len(*input.Description) > 200 {
		vErr.add("description", "description must not exceed 200 characters")
	}
	return vErr
}

func validateRoomTypeName(name string) error {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" || len(name) > 50 {
		vErr := &ValidationError{}
		vErr.add("name", "name must be between 1 and 50 characters")
		return vErr
	}
	return nil
}
