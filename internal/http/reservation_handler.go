package http

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/Donovan7777/hotel/internal/application"
)

// ReservationEngine is the slice of the reservation service the handler needs.
type ReservationEngine interface {
	List(ctx context.Context) ([]application.ReservationView, error)
	Get(ctx context.Context, id string) (application.ReservationView, bool, error)
	Search(ctx context.Context, criteria application.ReservationCriteria) ([]application.ReservationView, error)
	Create(ctx context.Context, input application.ReservationInput) (application.ReservationView, error)
	Update(ctx context.Context, id string, patch application.ReservationPatch) (application.ReservationView, error)
	Delete(ctx context.Context, id string) (bool, error)
}

type ReservationHandler struct {
	engine    ReservationEngine
	responder responder
	logger    *slog.Logger
}

func NewReservationHandler(engine ReservationEngine, logger *slog.Logger) *ReservationHandler {
	logger = defaultLogger(logger)
	return &ReservationHandler{
		engine:    engine,
		responder: newResponder(logger),
		logger:    logger,
	}
}

type createReservationRequest struct {
	OccupantID  string    `json:"occupant_id"`
	RoomID      string    `json:"room_id"`
	Start       civilTime `json:"start"`
	End         civilTime `json:"end"`
	PricePerDay float64   `json:"price_per_day"`
	Note        *string   `json:"note"`
}

func (req createReservationRequest) toInput() application.ReservationInput {
	return application.ReservationInput{
		OccupantID:  req.OccupantID,
		RoomID:      req.RoomID,
		Start:       req.Start.Time,
		End:         req.End.Time,
		PricePerDay: req.PricePerDay,
		Note:        req.Note,
	}
}

type updateReservationRequest struct {
	OccupantID  *string    `json:"occupant_id"`
	RoomID      *string    `json:"room_id"`
	Start       *civilTime `json:"start"`
	End         *civilTime `json:"end"`
	PricePerDay *float64   `json:"price_per_day"`
	Note        *string    `json:"note"`
}

func (req updateReservationRequest) toPatch() application.ReservationPatch {
	patch := application.ReservationPatch{
		OccupantID:  req.OccupantID,
		RoomID:      req.RoomID,
		PricePerDay: req.PricePerDay,
		Note:        req.Note,
	}
	if req.Start != nil {
		patch.Start = &req.Start.Time
	}
	if req.End != nil {
		patch.End = &req.End.Time
	}
	return patch
}

type searchReservationRequest struct {
	ReservationID string `json:"reservation_id"`
}

type reservationResponse struct {
	ID          string           `json:"id"`
	Start       civilTime        `json:"start"`
	End         civilTime        `json:"end"`
	PricePerDay float64          `json:"price_per_day"`
	Note        *string          `json:"note"`
	Room        roomResponse     `json:"room"`
	Occupant    occupantResponse `json:"occupant"`
}

func toReservationResponse(view application.ReservationView) reservationResponse {
	return reservationResponse{
		ID:          view.ID,
		Start:       civilTime{view.Start},
		End:         civilTime{view.End},
		PricePerDay: view.PricePerDay,
		Note:        view.Note,
		Room:        toRoomResponse(view.Room),
		Occupant:    toOccupantResponse(view.Occupant),
	}
}

func toReservationResponses(views []application.ReservationView) []reservationResponse {
	responses := make([]reservationResponse, 0, len(views))
	for _, view := range views {
		responses = append(responses, toReservationResponse(view))
	}
	return responses
}

func (h *ReservationHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := handlerLogger(ctx, h.logger, "reservation", "list")

	views, err := h.engine.List(ctx)
	if err != nil {
		logger.ErrorContext(ctx, "failed to list reservations", "error", err)
		h.responder.handleServiceError(ctx, w, err)
		return
	}
	h.responder.writeJSON(ctx, w, http.StatusOK, toReservationResponses(views))
}

func (h *ReservationHandler) Get(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id, ok := ReservationIDFromContext(ctx)
	if !ok || id == "" {
		h.responder.writeError(ctx, w, http.StatusBadRequest, errInvalidReservationID)
		return
	}
	logger := handlerLogger(ctx, h.logger, "reservation", "get", "reservation_id", id)

	view, found, err := h.engine.Get(ctx, id)
	if err != nil {
		logger.ErrorContext(ctx, "failed to get reservation", "error", err)
		h.responder.handleServiceError(ctx, w, err)
		return
	}
	if !found {
		h.responder.writeError(ctx, w, http.StatusNotFound, application.ErrReservationNotFound)
		return
	}
	h.responder.writeJSON(ctx, w, http.StatusOK, toReservationResponse(view))
}

func (h *ReservationHandler) Search(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := handlerLogger(ctx, h.logger, "reservation", "search")

	var req searchReservationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.responder.writeError(ctx, w, http.StatusBadRequest, errBadRequestBody)
		return
	}

	views, err := h.engine.Search(ctx, application.ReservationCriteria{ReservationID: req.ReservationID})
	if err != nil {
		logger.ErrorContext(ctx, "failed to search reservations", "error", err)
		h.responder.handleServiceError(ctx, w, err)
		return
	}
	h.responder.writeJSON(ctx, w, http.StatusOK, toReservationResponses(views))
}

func (h *ReservationHandler) Create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := handlerLogger(ctx, h.logger, "reservation", "create")

	var req createReservationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.responder.writeError(ctx, w, http.StatusBadRequest, errBadRequestBody)
		return
	}

	view, err := h.engine.Create(ctx, req.toInput())
	if err != nil {
		logger.WarnContext(ctx, "failed to create reservation", "error", err)
		h.responder.handleServiceError(ctx, w, err)
		return
	}
	h.responder.writeJSON(ctx, w, http.StatusCreated, toReservationResponse(view))
}

func (h *ReservationHandler) Update(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id, ok := ReservationIDFromContext(ctx)
	if !ok || id == "" {
		h.responder.writeError(ctx, w, http.StatusBadRequest, errInvalidReservationID)
		return
	}
	logger := handlerLogger(ctx, h.logger, "reservation", "update", "reservation_id", id)

	var req updateReservationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.responder.writeError(ctx, w, http.StatusBadRequest, errBadRequestBody)
		return
	}

	view, err := h.engine.Update(ctx, id, req.toPatch())
	if err != nil {
		logger.WarnContext(ctx, "failed to update reservation", "error", err)
		h.responder.handleServiceError(ctx, w, err)
		return
	}
	h.responder.writeJSON(ctx, w, http.StatusOK, toReservationResponse(view))
}

func (h *ReservationHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id, ok := ReservationIDFromContext(ctx)
	if !ok || id == "" {
		h.responder.writeError(ctx, w, http.StatusBadRequest, errInvalidReservationID)
		return
	}
	logger := handlerLogger(ctx, h.logger, "reservation", "delete", "reservation_id", id)

	deleted, err := h.engine.Delete(ctx, id)
	if err != nil {
		logger.ErrorContext(ctx, "failed to delete reservation", "error", err)
		h.responder.handleServiceError(ctx, w, err)
		return
	}
	if !deleted {
		h.responder.writeError(ctx, w, http.StatusNotFound, application.ErrReservationNotFound)
		return
	}
	h.responder.writeJSON(ctx, w, http.StatusNoContent, nil)
}
