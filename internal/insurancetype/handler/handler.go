package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"insureco/internal/insurancetype"
	"insureco/internal/platform/middleware"
	dErrors "insureco/pkg/domain-errors"
	"insureco/pkg/platform/httputil"
)

// Service defines the interface for insurance type operations.
type Service interface {
	List(ctx context.Context) ([]insurancetype.InsuranceType, error)
	Get(ctx context.Context, id int64) (insurancetype.InsuranceType, error)
	Create(ctx context.Context, req insurancetype.UpsertRequest) (insurancetype.InsuranceType, error)
	Update(ctx context.Context, id int64, req insurancetype.UpsertRequest) (insurancetype.InsuranceType, error)
	Delete(ctx context.Context, id int64) error
}

// Handler handles insurance type endpoints.
type Handler struct {
	service Service
	logger  *slog.Logger
}

// New creates a new insurance type Handler.
func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// Register mounts the insurance type routes on the router.
func (h *Handler) Register(r chi.Router) {
	r.Route("/insuranceTypes", func(r chi.Router) {
		r.Get("/", h.handleList)
		r.Post("/", h.handleCreate)
		r.Get("/{id}", h.handleGet)
		r.Put("/{id}", h.handleUpdate)
		r.Delete("/{id}", h.handleDelete)
	})
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	types, err := h.service.List(r.Context())
	if err != nil {
		h.logError(r, "failed to list insurance types", err)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, types)
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	id, err := httputil.IDParam(r)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	t, err := h.service.Get(r.Context(), id)
	if err != nil {
		h.logError(r, "failed to load insurance type", err)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, t)
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	req, ok := httputil.DecodeAndPrepare[insurancetype.UpsertRequest](w, r, h.logger)
	if !ok {
		return
	}

	t, err := h.service.Create(r.Context(), *req)
	if err != nil {
		h.logError(r, "failed to create insurance type", err)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, t)
}

func (h *Handler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := httputil.IDParam(r)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	req, ok := httputil.DecodeAndPrepare[insurancetype.UpsertRequest](w, r, h.logger)
	if !ok {
		return
	}

	t, err := h.service.Update(r.Context(), id, *req)
	if err != nil {
		h.logError(r, "failed to update insurance type", err)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, t)
}

func (h *Handler) handleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := httputil.IDParam(r)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		h.logError(r, "failed to delete insurance type", err)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, map[string]string{"message": "insurance type deleted"})
}

func (h *Handler) logError(r *http.Request, msg string, err error) {
	ctx := r.Context()
	if dErrors.Is(err, dErrors.CodeInternal) {
		h.logger.ErrorContext(ctx, msg, "request_id", middleware.GetRequestID(ctx), "error", err.Error())
		return
	}
	h.logger.WarnContext(ctx, msg, "request_id", middleware.GetRequestID(ctx), "error", err.Error())
}
