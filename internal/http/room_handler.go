package http

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/Donovan7777/hotel/internal/application"
)

// RoomEngine is the slice of the room service the handler needs.
type RoomEngine interface {
	List(ctx context.Context) ([]application.RoomView, error)
	Get(ctx context.Context, id string) (application.RoomView, bool, error)
	GetByNumber(ctx context.Context, number int) (application.RoomView, bool, error)
	Create(ctx context.Context, input application.RoomInput) (application.RoomView, error)
	Update(ctx context.Context, id string, patch application.RoomPatch) (application.RoomView, error)
	Delete(ctx context.Context, id string) (bool, error)
}

type RoomHandler struct {
	engine    RoomEngine
	responder responder
	logger    *slog.Logger
}

func NewRoomHandler(engine RoomEngine, logger *slog.Logger) *RoomHandler {
	logger = defaultLogger(logger)
	return &RoomHandler{
		engine:    engine,
		responder: newResponder(logger),
		logger:    logger,
	}
}

type createRoomRequest struct {
	Number       int     `json:"number"`
	Available    bool    `json:"available"`
	Notes        *string `json:"notes"`
	RoomTypeName string  `json:"room_type_name"`
}

func (req createRoomRequest) toInput() application.RoomInput {
	return application.RoomInput{
		Number:       req.Number,
		Available:    req.Available,
		Notes:        req.Notes,
		RoomTypeName: req.RoomTypeName,
	}
}

type updateRoomRequest struct {
	Number       *int    `json:"number"`
	Available    *bool   `json:"available"`
	Notes        *string `json:"notes"`
	RoomTypeName *string `json:"room_type_name"`
}

func (req updateRoomRequest) toPatch() application.RoomPatch {
	return application.RoomPatch{
		Number:       req.Number,
		Available:    req.Available,
		Notes:        req.Notes,
		RoomTypeName: req.RoomTypeName,
	}
}

type roomResponse struct {
	ID        string            `json:"id"`
	Number    int               `json:"number"`
	Available bool              `json:"available"`
	Notes     *string           `json:"notes"`
	RoomType  *roomTypeResponse `json:"room_type"`
}

func toRoomResponse(view application.RoomView) roomResponse {
	response := roomResponse{
		ID:        view.ID,
		Number:    view.Number,
		Available: view.Available,
		Notes:     view.Notes,
	}
	if view.RoomType != nil {
		typeResponse := toRoomTypeResponse(*view.RoomType)
		response.RoomType = &typeResponse
	}
	return response
}

func toRoomResponses(views []application.RoomView) []roomResponse {
	responses := make([]roomResponse, 0, len(views))
	for _, view := range views {
		responses = append(responses, toRoomResponse(view))
	}
	return responses
}

func (h *RoomHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := handlerLogger(ctx, h.logger, "room", "list")

	views, err := h.engine.List(ctx)
	if err != nil {
		logger.ErrorContext(ctx, "failed to list rooms", "error", err)
		h.responder.handleServiceError(ctx, w, err)
		return
	}
	h.responder.writeJSON(ctx, w, http.StatusOK, toRoomResponses(views))
}

func (h *RoomHandler) Get(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id, ok := RoomIDFromContext(ctx)
	if !ok || id == "" {
		h.responder.writeError(ctx, w, http.StatusBadRequest, errInvalidRoomID)
		return
	}
	logger := handlerLogger(ctx, h.logger, "room", "get", "room_id", id)

	view, found, err := h.engine.Get(ctx, id)
	if err != nil {
		logger.ErrorContext(ctx, "failed to get room", "error", err)
		h.responder.handleServiceError(ctx, w, err)
		return
	}
	if !found {
		h.responder.writeError(ctx, w, http.StatusNotFound, application.ErrRoomNotFound)
		return
	}
	h.responder.writeJSON(ctx, w, http.StatusOK, toRoomResponse(view))
}

func (h *RoomHandler) GetByNumber(w http.ResponseWriter, r *http.Request, number int) {
	ctx := r.Context()
	logger := handlerLogger(ctx, h.logger, "room", "get_by_number", "room_number", number)

	view, found, err := h.engine.GetByNumber(ctx, number)
	if err != nil {
		logger.ErrorContext(ctx, "failed to get room by number", "error", err)
		h.responder.handleServiceError(ctx, w, err)
		return
	}
	if !found {
		h.responder.writeError(ctx, w, http.StatusNotFound, application.ErrRoomNotFound)
		return
	}
	h.responder.writeJSON(ctx, w, http.StatusOK, toRoomResponse(view))
}

func (h *RoomHandler) Create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := handlerLogger(ctx, h.logger, "room", "create")

	var req createRoomRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.responder.writeError(ctx, w, http.StatusBadRequest, errBadRequestBody)
		return
	}

	view, err := h.engine.Create(ctx, req.toInput())
	if err != nil {
		logger.WarnContext(ctx, "failed to create room", "error", err)
		h.responder.handleServiceError(ctx, w, err)
		return
	}
	h.responder.writeJSON(ctx, w, http.StatusCreated, toRoomResponse(view))
}

func (h *RoomHandler) Update(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id, ok := RoomIDFromContext(ctx)
	if !ok || id == "" {
		h.responder.writeError(ctx, w, http.StatusBadRequest, errInvalidRoomID)
		return
	}
	logger := handlerLogger(ctx, h.logger, "room", "update", "room_id", id)

	var req updateRoomRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.responder.writeError(ctx, w, http.StatusBadRequest, errBadRequestBody)
		return
	}

	view, err := h.engine.Update(ctx, id, req.toPatch())
	if err != nil {
		logger.WarnContext(ctx, "failed to update room", "error", err)
		h.responder.handleServiceError(ctx, w, err)
		return
	}
	h.responder.writeJSON(ctx, w, http.StatusOK, toRoomResponse(view))
}

func (h *RoomHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id, ok := RoomIDFromContext(ctx)
	if !ok || id == "" {
		h.responder.writeError(ctx, w, http.StatusBadRequest, errInvalidRoomID)
		return
	}
	logger := handlerLogger(ctx, h.logger, "room", "delete", "room_id", id)

	deleted, err := h.engine.Delete(ctx, id)
	if err != nil {
		logger.WarnContext(ctx, "failed to delete room", "error", err)
		h.responder.handleServiceError(ctx, w, err)
		return
	}
	if !deleted {
		h.responder.writeError(ctx, w, http.StatusNotFound, application.ErrRoomNotFound)
		return
	}
	h.responder.writeJSON(ctx, w, http.StatusNoContent, nil)
}
