package http

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/Donovan7777/hotel/internal/application"
)

// RoomTypeEngine is the slice of the room type service the handler needs.
type RoomTypeEngine interface {
	List(ctx context.Context) ([]application.RoomTypeView, error)
	Get(ctx context.Context, id string) (application.RoomTypeView, bool, error)
	Create(ctx context.Context, input application.RoomTypeInput) (application.RoomTypeView, error)
	Update(ctx context.Context, id string, patch application.RoomTypePatch) (application.RoomTypeView, error)
	Delete(ctx context.Context, id string) (bool, error)
}

type RoomTypeHandler struct {
	engine    RoomTypeEngine
	responder responder
	logger    *slog.Logger
}

func NewRoomTypeHandler(engine RoomTypeEngine, logger *slog.Logger) *RoomTypeHandler {
	logger = defaultLogger(logger)
	return &RoomTypeHandler{
		engine:    engine,
		responder: newResponder(logger),
		logger:    logger,
	}
}

type createRoomTypeRequest struct {
	Name         string  `json:"name"`
	FloorPrice   float64 `json:"floor_price"`
	CeilingPrice *string `json:"ceiling_price"`
	Description  *string `json:"description"`
}

func (req createRoomTypeRequest) toInput() application.RoomTypeInput {
	return application.RoomTypeInput{
		Name:         req.Name,
		FloorPrice:   req.FloorPrice,
		CeilingPrice: req.CeilingPrice,
		Description:  req.Description,
	}
}

type updateRoomTypeRequest struct {
	Name         *string  `json:"name"`
	FloorPrice   *float64 `json:"floor_price"`
	CeilingPrice *string  `json:"ceiling_price"`
	Description  *string  `json:"description"`
}

func (req updateRoomTypeRequest) toPatch() application.RoomTypePatch {
	return application.RoomTypePatch{
		Name:         req.Name,
		FloorPrice:   req.FloorPrice,
		CeilingPrice: req.CeilingPrice,
		Description:  req.Description,
	}
}

type roomTypeResponse struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	FloorPrice   float64 `json:"floor_price"`
	CeilingPrice *string `json:"ceiling_price"`
	Description  *string `json:"description"`
}

func toRoomTypeResponse(view application.RoomTypeView) roomTypeResponse {
	return roomTypeResponse{
		ID:           view.ID,
		Name:         view.Name,
		FloorPrice:   view.FloorPrice,
		CeilingPrice: view.CeilingPrice,
		Description:  view.Description,
	}
}

func toRoomTypeResponses(views []application.RoomTypeView) []roomTypeResponse {
	responses := make([]roomTypeResponse, 0, len(views))
	for _, view := range views {
		responses = append(responses, toRoomTypeResponse(view))
	}
	return responses
}

func (h *RoomTypeHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := handlerLogger(ctx, h.logger, "room_type", "list")

	views, err := h.engine.List(ctx)
	if err != nil {
		logger.ErrorContext(ctx, "failed to list room types", "error", err)
		h.responder.handleServiceError(ctx, w, err)
		return
	}
	h.responder.writeJSON(ctx, w, http.StatusOK, toRoomTypeResponses(views))
}

func (h *RoomTypeHandler) Get(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id, ok := RoomTypeIDFromContext(ctx)
	if !ok || id == "" {
		h.responder.writeError(ctx, w, http.StatusBadRequest, errInvalidRoomTypeID)
		return
	}
	logger := handlerLogger(ctx, h.logger, "room_type", "get", "room_type_id", id)

	view, found, err := h.engine.Get(ctx, id)
	if err != nil {
		logger.ErrorContext(ctx, "failed to get room type", "error", err)
		h.responder.handleServiceError(ctx, w, err)
		return
	}
	if !found {
		h.responder.writeError(ctx, w, http.StatusNotFound, application.ErrRoomTypeNotFound)
		return
	}
	h.responder.writeJSON(ctx, w, http.StatusOK, toRoomTypeResponse(view))
}

func (h *RoomTypeHandler) Create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := handlerLogger(ctx, h.logger, "room_type", "create")

	var req createRoomTypeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.responder.writeError(ctx, w, http.StatusBadRequest, errBadRequestBody)
		return
	}

	view, err := h.engine.Create(ctx, req.toInput())
	if err != nil {
		logger.WarnContext(ctx, "failed to create room type", "error", err)
		h.responder.handleServiceError(ctx, w, err)
		return
	}
	h.responder.writeJSON(ctx, w, http.StatusCreated, toRoomTypeResponse(view))
}

func (h *RoomTypeHandler) Update(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id, ok := RoomTypeIDFromContext(ctx)
	if !ok || id == "" {
		h.responder.writeError(ctx, w, http.StatusBadRequest, errInvalidRoomTypeID)
		return
	}
	logger := handlerLogger(ctx, h.logger, "room_type", "update", "room_type_id", id)

	var req updateRoomTypeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.responder.writeError(ctx, w, http.StatusBadRequest, errBadRequestBody)
		return
	}

	view, err := h.engine.Update(ctx, id, req.toPatch())
	if err != nil {
		logger.WarnContext(ctx, "failed to update room type", "error", err)
		h.responder.handleServiceError(ctx, w, err)
		return
	}
	h.responder.writeJSON(ctx, w, http.StatusOK, toRoomTypeResponse(view))
}

func (h *RoomTypeHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id, ok := RoomTypeIDFromContext(ctx)
	if !ok || id == "" {
		h.responder.writeError(ctx, w, http.StatusBadRequest, errInvalidRoomTypeID)
		return
	}
	logger := handlerLogger(ctx, h.logger, "room_type", "delete", "room_type_id", id)

	deleted, err := h.engine.Delete(ctx, id)
	if err != nil {
		logger.WarnContext(ctx, "failed to delete room type", "error", err)
		h.responder.handleServiceError(ctx, w, err)
		return
	}
	if !deleted {
		h.responder.writeError(ctx, w, http.StatusNotFound, application.ErrRoomTypeNotFound)
		return
	}
	h.responder.writeJSON(ctx, w, http.StatusNoContent, nil)
}
