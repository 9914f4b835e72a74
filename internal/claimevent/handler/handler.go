package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"insureco/internal/claimevent"
	"insureco/internal/platform/middleware"
	dErrors "insureco/pkg/domain-errors"
	"insureco/pkg/platform/httputil"
)

// Service defines the interface for claim event operations.
type Service interface {
	List(ctx context.Context) ([]claimevent.EnrichedClaimEvent, error)
	Get(ctx context.Context, id int64) (claimevent.ClaimEvent, error)
	Create(ctx context.Context, req claimevent.UpsertRequest) (claimevent.ClaimEvent, error)
	Update(ctx context.Context, id int64, req claimevent.UpsertRequest) (claimevent.ClaimEvent, error)
	Delete(ctx context.Context, id int64) error
}

// Handler handles claim event endpoints.
type Handler struct {
	service Service
	logger  *slog.Logger
}

// New creates a new claim event Handler.
func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// Register mounts the claim event routes on the router.
func (h *Handler) Register(r chi.Router) {
	r.Route("/events", func(r chi.Router) {
		r.Get("/", h.handleList)
		r.Post("/", h.handleCreate)
		r.Get("/{id}", h.handleGet)
		r.Put("/{id}", h.handleUpdate)
		r.Delete("/{id}", h.handleDelete)
	})
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	events, err := h.service.List(r.Context())
	if err != nil {
		h.logError(r, "failed to list claim events", err)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, events)
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	id, err := httputil.IDParam(r)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	ev, err := h.service.Get(r.Context(), id)
	if err != nil {
		h.logError(r, "failed to load claim event", err)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, ev)
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	req, ok := httputil.DecodeAndPrepare[claimevent.UpsertRequest](w, r, h.logger)
	if !ok {
		return
	}

	ev, err := h.service.Create(r.Context(), *req)
	if err != nil {
		h.logError(r, "failed to create claim event", err)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, ev)
}

func (h *Handler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := httputil.IDParam(r)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	req, ok := httputil.DecodeAndPrepare[claimevent.UpsertRequest](w, r, h.logger)
	if !ok {
		return
	}

	ev, err := h.service.Update(r.Context(), id, *req)
	if err != nil {
		h.logError(r, "failed to update claim event", err)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, ev)
}

func (h *Handler) handleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := httputil.IDParam(r)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		h.logError(r, "failed to delete claim event", err)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, map[string]string{"message": "claim event deleted"})
}

func (h *Handler) logError(r *http.Request, msg string, err error) {
	ctx := r.Context()
	if dErrors.Is(err, dErrors.CodeInternal) {
		h.logger.ErrorContext(ctx, msg, "request_id", middleware.GetRequestID(ctx), "error", err.Error())
		return
	}
	h.logger.WarnContext(ctx, msg, "request_id", middleware.GetRequestID(ctx), "error", err.Error())
}
