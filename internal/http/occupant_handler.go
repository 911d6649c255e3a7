package http

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/Donovan7777/hotel/internal/application"
)

// OccupantEngine is the slice of the occupant service the handler needs.
type OccupantEngine interface {
	List(ctx context.Context) ([]application.OccupantView, error)
	Get(ctx context.Context, id string) (application.OccupantView, bool, error)
	Create(ctx context.Context, input application.OccupantInput) (application.OccupantView, error)
	Update(ctx context.Context, id string, patch application.OccupantPatch) (application.OccupantView, error)
	Delete(ctx context.Context, id string) (bool, error)
}

type OccupantHandler struct {
	engine    OccupantEngine
	responder responder
	logger    *slog.Logger
}

func NewOccupantHandler(engine OccupantEngine, logger *slog.Logger) *OccupantHandler {
	logger = defaultLogger(logger)
	return &OccupantHandler{
		engine:    engine,
		responder: newResponder(logger),
		logger:    logger,
	}
}

type createOccupantRequest struct {
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	Address    string `json:"address"`
	Mobile     string `json:"mobile"`
	Credential string `json:"credential"`
	Category   string `json:"category"`
}

func (req createOccupantRequest) toInput() application.OccupantInput {
	return application.OccupantInput{
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		Address:    req.Address,
		Mobile:     req.Mobile,
		Credential: req.Credential,
		Category:   req.Category,
	}
}

type updateOccupantRequest struct {
	FirstName  *string `json:"first_name"`
	LastName   *string `json:"last_name"`
	Address    *string `json:"address"`
	Mobile     *string `json:"mobile"`
	Credential *string `json:"credential"`
	Category   *string `json:"category"`
}

func (req updateOccupantRequest) toPatch() application.OccupantPatch {
	return application.OccupantPatch{
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		Address:    req.Address,
		Mobile:     req.Mobile,
		Credential: req.Credential,
		Category:   req.Category,
	}
}

// occupantResponse never carries the stored credential.
type occupantResponse struct {
	ID        string `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Address   string `json:"address"`
	Mobile    string `json:"mobile"`
	Category  string `json:"category"`
}

func toOccupantResponse(view application.OccupantView) occupantResponse {
	return occupantResponse{
		ID:        view.ID,
		FirstName: view.FirstName,
		LastName:  view.LastName,
		Address:   view.Address,
		Mobile:    view.Mobile,
		Category:  view.Category,
	}
}

func toOccupantResponses(views []application.OccupantView) []occupantResponse {
	responses := make([]occupantResponse, 0, len(views))
	for _, view := range views {
		responses = append(responses, toOccupantResponse(view))
	}
	return responses
}

func (h *OccupantHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := handlerLogger(ctx, h.logger, "occupant", "list")

	views, err := h.engine.List(ctx)
	if err != nil {
		logger.ErrorContext(ctx, "failed to list occupants", "error", err)
		h.responder.handleServiceError(ctx, w, err)
		return
	}
	h.responder.writeJSON(ctx, w, http.StatusOK, toOccupantResponses(views))
}

func (h *OccupantHandler) Get(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id, ok := OccupantIDFromContext(ctx)
	if !ok || id == "" {
		h.responder.writeError(ctx, w, http.StatusBadRequest, errInvalidOccupantID)
		return
	}
	logger := handlerLogger(ctx, h.logger, "occupant", "get", "occupant_id", id)

	view, found, err := h.engine.Get(ctx, id)
	if err != nil {
		logger.ErrorContext(ctx, "failed to get occupant", "error", err)
		h.responder.handleServiceError(ctx, w, err)
		return
	}
	if !found {
		h.responder.writeError(ctx, w, http.StatusNotFound, application.ErrOccupantNotFound)
		return
	}
	h.responder.writeJSON(ctx, w, http.StatusOK, toOccupantResponse(view))
}

func (h *OccupantHandler) Create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := handlerLogger(ctx, h.logger, "occupant", "create")

	var req createOccupantRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.responder.writeError(ctx, w, http.StatusBadRequest, errBadRequestBody)
		return
	}

	view, err := h.engine.Create(ctx, req.toInput())
	if err != nil {
		logger.WarnContext(ctx, "failed to create occupant", "error", err)
		h.responder.handleServiceError(ctx, w, err)
		return
	}
	h.responder.writeJSON(ctx, w, http.StatusCreated, toOccupantResponse(view))
}

func (h *OccupantHandler) Update(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id, ok := OccupantIDFromContext(ctx)
	if !ok || id == "" {
		h.responder.writeError(ctx, w, http.StatusBadRequest, errInvalidOccupantID)
		return
	}
	logger := handlerLogger(ctx, h.logger, "occupant", "update", "occupant_id", id)

	var req updateOccupantRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.responder.writeError(ctx, w, http.StatusBadRequest, errBadRequestBody)
		return
	}

	view, err := h.engine.Update(ctx, id, req.toPatch())
	if err != nil {
		logger.WarnContext(ctx, "failed to update occupant", "error", err)
		h.responder.handleServiceError(ctx, w, err)
		return
	}
	h.responder.writeJSON(ctx, w, http.StatusOK, toOccupantResponse(view))
}

func (h *OccupantHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id, ok := OccupantIDFromContext(ctx)
	if !ok || id == "" {
		h.responder.writeError(ctx, w, http.StatusBadRequest, errInvalidOccupantID)
		return
	}
	logger := handlerLogger(ctx, h.logger, "occupant", "delete", "occupant_id", id)

	deleted, err := h.engine.Delete(ctx, id)
	if err != nil {
		logger.ErrorContext(ctx, "failed to delete occupant", "error", err)
		h.responder.handleServiceError(ctx, w, err)
		return
	}
	if !deleted {
		h.responder.writeError(ctx, w, http.StatusNotFound, application.ErrOccupantNotFound)
		return
	}
	h.responder.writeJSON(ctx, w, http.StatusNoContent, nil)
}
