package application

import (
	"context"
	"errors"
	"log/slog"

	"github.com/Donovan7777/hotel/internal/persistence"
)

// OccupantRepository captures the occupant storage operations the service needs.
type OccupantRepository interface {
	CreateOccupant(ctx context.Context, occupant persistence.Occupant) error
	UpdateOccupant(ctx context.Context, occupant persistence.Occupant) error
	GetOccupant(ctx context.Context, id string) (persistence.Occupant, error)
	FindOccupantByIdentity(ctx context.Context, lastName, firstName, mobile string) (persistence.Occupant, error)
	ListOccupants(ctx context.Context) ([]persistence.Occupant, error)
	DeleteOccupant(ctx context.Context, id string) error
}

// OccupantService manages guests. Creation deduplicates on the
// (last name, first name, mobile) triple, and credentials pass through the
// configured codec before they reach storage.
type OccupantService struct {
	occupants   OccupantRepository
	codec       CredentialCodec
	tx          persistence.TxRunner
	idGenerator func() string
	logger      *slog.Logger
}

// NewOccupantService constructs an occupant service. A nil codec falls back
// to the legacy fixed-width normalization.
func NewOccupantService(occupants OccupantRepository, codec CredentialCodec, tx persistence.TxRunner, idGenerator func() string, logger *slog.Logger) *OccupantService {
	if codec == nil {
		codec = NewFixedWidthCodec()
	}
	if idGenerator == nil {
		idGenerator = func() string { return "" }
	}
	return &OccupantService{
		occupants:   occupants,
		codec:       codec,
		tx:          tx,
		idGenerator: idGenerator,
		logger:      defaultLogger(logger),
	}
}

func (s *OccupantService) loggerWith(ctx context.Context, operation string, attrs ...any) *slog.Logger {
	return serviceLogger(ctx, s.logger, "OccupantService", operation, attrs...)
}

// Create persists a new occupant unless one with the same
// (last name, first name, mobile) triple already exists, in which case the
// existing occupant is returned and no row is written.
func (s *OccupantService) Create(ctx context.Context, input OccupantInput) (view OccupantView, err error) {
	logger := s.loggerWith(ctx, "Create")
	defer func() {
		if err != nil {
			logger.ErrorContext(ctx, "failed to create occupant", "error", err, "error_kind", ErrorKind(err))
			return
		}
		logger.With("occupant_id", view.ID).InfoContext(ctx, "occupant create finished")
	}()

	if vErr := validateOccupantInput(input); vErr.HasErrors() {
		err = vErr
		return
	}

	err = s.tx.InTx(ctx, func(ctx context.Context) error {
		existing, findErr := s.occupants.FindOccupantByIdentity(ctx, input.LastName, input.FirstName, input.Mobile)
		if findErr == nil {
			view = toOccupantView(existing)
			return nil
		}
		if !errors.Is(findErr, persistence.ErrNotFound) {
			return findErr
		}

		credential, encErr := s.codec.Encode(input.Credential)
		if encErr != nil {
			return encErr
		}

		occupant := persistence.Occupant{
			ID:         s.idGenerator(),
			FirstName:  input.FirstName,
			LastName:   input.LastName,
			Address:    input.Address,
			Mobile:     input.Mobile,
			Credential: credential,
			Category:   input.Category,
		}
		if createErr := s.occupants.CreateOccupant(ctx, occupant); createErr != nil {
			return createErr
		}
		view = toOccupantView(occupant)
		return nil
	})
	return
}

// Get returns the occupant for id; absence is reported through the boolean.
func (s *OccupantService) Get(ctx context.Context, id string) (OccupantView, bool, error) {
	occupant, err := s.occupants.GetOccupant(ctx, id)
	if err != nil {
		if errors.Is(err, persistence.ErrNotFound) {
			return OccupantView{}, false, nil
		}
		return OccupantView{}, false, err
	}
	return toOccupantView(occupant), true, nil
}

// List returns all occupants ordered by last then first name.
func (s *OccupantService) List(ctx context.Context) ([]OccupantView, error) {
	occupants, err := s.occupants.ListOccupants(ctx)
	if err != nil {
		s.loggerWith(ctx, "List").ErrorContext(ctx, "failed to list occupants", "error", err)
		return nil, err
	}

	views := make([]OccupantView, 0, len(occupants))
	for _, occupant := range occupants {
		views = append(views, toOccupantView(occupant))
	}
	return views, nil
}

// Search is the legacy id-keyed search shim: no id matches nothing.
func (s *OccupantService) Search(ctx context.Context, occupantID string) ([]OccupantView, error) {
	if occupantID == "" {
		return []OccupantView{}, nil
	}
	view, found, err := s.Get(ctx, occupantID)
	if err != nil {
		return nil, err
	}
	if !found {
		return []OccupantView{}, nil
	}
	return []OccupantView{view}, nil
}

// Update applies a partial patch. A patched credential passes through the
// same codec as creation.
func (s *OccupantService) Update(ctx context.Context, id string, patch OccupantPatch) (view OccupantView, err error) {
	logger := s.loggerWith(ctx, "Update", "occupant_id", id)
	defer func() {
		if err != nil {
			logger.ErrorContext(ctx, "failed to update occupant", "error", err, "error_kind", ErrorKind(err))
			return
		}
		logger.InfoContext(ctx, "occupant updated")
	}()

	err = s.tx.InTx(ctx, func(ctx context.Context) error {
		occupant, getErr := s.occupants.GetOccupant(ctx, id)
		if getErr != nil {
			if errors.Is(getErr, persistence.ErrNotFound) {
				return ErrOccupantNotFound
			}
			return getErr
		}

		if patch.FirstName != nil {
			occupant.FirstName = *patch.FirstName
		}
		if patch.LastName != nil {
			occupant.LastName = *patch.LastName
		}
		if patch.Address != nil {
			occupant.Address = *patch.Address
		}
		if patch.Mobile != nil {
			occupant.Mobile = *patch.Mobile
		}
		if patch.Credential != nil {
			credential, encErr := s.codec.Encode(*patch.Credential)
			if encErr != nil {
				return encErr
			}
			occupant.Credential = credential
		}
		if patch.Category != nil {
			occupant.Category = *patch.Category
		}

		if updateErr := s.occupants.UpdateOccupant(ctx, occupant); updateErr != nil {
			return updateErr
		}
		view = toOccupantView(occupant)
		return nil
	})
	return
}

// Delete removes an occupant when it exists; a missing id reports false
// without error. Occupants carry no dependency guard.
func (s *OccupantService) Delete(ctx context.Context, id string) (deleted bool, err error) {
	logger := s.loggerWith(ctx, "Delete", "occupant_id", id)
	defer func() {
		if err != nil {
			logger.ErrorContext(ctx, "failed to delete occupant", "error", err, "error_kind", ErrorKind(err))
			return
		}
		logger.With("deleted", deleted).InfoContext(ctx, "occupant delete finished")
	}()

	err = s.tx.InTx(ctx, func(ctx context.Context) error {
		if delErr := s.occupants.DeleteOccupant(ctx, id); delErr != nil {
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

func validateOccupantInput(input OccupantInput) *ValidationError {
	vErr := &ValidationError{}
	if input.FirstName == "" {
		vErr.add("first_name", "first name is required")
	}
	if input.LastName == "" {
		vErr.add("last_name", "last name is required")
	}
	if input.Address == "" {
		vErr.add("address", "address is required")
	}
	if input.Mobile == "" {
		vErr.add("mobile", "mobile is required")
	}
	if input.Category == "" {
		vErr.add("category", "category is required")
	}
	return vErr
}
