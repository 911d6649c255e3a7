package http

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/Donovan7777/hotel/internal/application"
	"github.com/Donovan7777/hotel/internal/logging"
)

var (
	errBadRequestBody       = errors.New("request body is malformed")
	errInvalidReservationID = errors.New("invalid reservation id")
	errInvalidRoomID        = errors.New("invalid room id")
	errInvalidRoomTypeID    = errors.New("invalid room type id")
	errInvalidOccupantID    = errors.New("invalid occupant id")
	errInvalidRoomNumber    = errors.New("invalid room number")
)

type errorResponse struct {
	Message string            `json:"message"`
	Errors  map[string]string `json:"errors,omitempty"`
}

type responder struct {
	logger *slog.Logger
}

func newResponder(logger *slog.Logger) responder {
	if logger == nil {
		logger = slog.Default()
	}
	return responder{logger: logger}
}

func (r responder) writeJSON(ctx context.Context, w http.ResponseWriter, status int, payload any) {
	if w == nil {
		return
	}

	if status == http.StatusNoContent || payload == nil {
		w.WriteHeader(status)
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		r.loggerFor(ctx).ErrorContext(ctx, "failed to encode response", "error", err)
	}
}

func (r responder) writeError(ctx context.Context, w http.ResponseWriter, status int, err error) {
	message := http.StatusText(status)
	if err != nil {
		if msg := strings.TrimSpace(err.Error()); msg != "" {
			message = msg
		}
	}
	r.writeJSON(ctx, w, status, errorResponse{Message: message})
}

// handleServiceError maps domain errors to transport status codes:
// validation failures 422, missing references 404, blocked deletes 409,
// everything unclassified 500.
func (r responder) handleServiceError(ctx context.Context, w http.ResponseWriter, err error) {
	switch {
	case err == nil:
		r.writeError(ctx, w, http.StatusInternalServerError, errors.New("unknown error"))
	case errors.Is(err, application.ErrInvalidDateRange),
		errors.Is(err, application.ErrInvalidPrice),
		errors.Is(err, application.ErrInvalidCeilingPrice):
		r.writeJSON(ctx, w, http.StatusUnprocessableEntity, errorResponse{Message: err.Error()})
	case errors.Is(err, application.ErrOccupantNotFound),
		errors.Is(err, application.ErrRoomNotFound),
		errors.Is(err, application.ErrRoomTypeNotFound),
		errors.Is(err, application.ErrReservationNotFound):
		r.writeJSON(ctx, w, http.StatusNotFound, errorResponse{Message: err.Error()})
	case errors.Is(err, application.ErrDependencyExists):
		r.writeJSON(ctx, w, http.StatusConflict, errorResponse{Message: err.Error()})
	default:
		var vErr *application.ValidationError
		if errors.As(err, &vErr) {
			r.writeJSON(ctx, w, http.StatusUnprocessableEntity, errorResponse{
				Message: "validation failed",
				Errors:  vErr.FieldErrors,
			})
			return
		}
		r.loggerFor(ctx).ErrorContext(ctx, "unclassified service error", "error", err)
		r.writeJSON(ctx, w, http.StatusInternalServerError, errorResponse{Message: "internal server error"})
	}
}

func (r responder) loggerFor(ctx context.Context) *slog.Logger {
	if logger := logging.FromContext(ctx); logger != nil {
		return logger
	}
	return r.logger
}
