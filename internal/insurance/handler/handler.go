package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"insureco/internal/insurance"
	"insureco/internal/platform/middleware"
	dErrors "insureco/pkg/domain-errors"
	"insureco/pkg/platform/httputil"
)

// Service defines the interface for policy operations.
type Service interface {
	List(ctx context.Context, q insurance.Query) (insurance.ListResult, error)
	Get(ctx context.Context, id int64) (insurance.EnrichedPolicy, error)
	Create(ctx context.Context, req insurance.UpsertRequest) (insurance.Policy, error)
	Update(ctx context.Context, id int64, req insurance.UpsertRequest) (insurance.Policy, error)
	Delete(ctx context.Context, id int64) error
}

// Handler handles insurance policy endpoints.
type Handler struct {
	service Service
	logger  *slog.Logger
}

// New creates a new policy Handler.
func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// Register mounts the policy routes on the router.
func (h *Handler) Register(r chi.Router) {
	r.Route("/insurances", func(r chi.Router) {
		r.Get("/", h.handleList)
		r.Post("/", h.handleCreate)
		r.Get("/{id}", h.handleGet)
		r.Put("/{id}", h.handleUpdate)
		r.Delete("/{id}", h.handleDelete)
	})
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	q := insurance.Query{
		InsuredName: r.URL.Query().Get("insuredName"),
	}
	// Unparseable numeric params fall back to their defaults, matching the
	// lenient query handling the client already relies on.
	if v := r.URL.Query().Get("type"); v != "" {
		q.TypeID, _ = strconv.ParseInt(v, 10, 64)
	}
	if v := r.URL.Query().Get("page"); v != "" {
		q.Page, _ = strconv.Atoi(v)
	}
	if v := r.URL.Query().Get("limit"); v != "" {
		q.Limit, _ = strconv.Atoi(v)
	}

	result, err := h.service.List(r.Context(), q)
	if err != nil {
		h.logError(r, "failed to list policies", err)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, result)
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	id, err := httputil.IDParam(r)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	p, err := h.service.Get(r.Context(), id)
	if err != nil {
		h.logError(r, "failed to load policy", err)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, p)
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	req, ok := httputil.DecodeAndPrepare[insurance.UpsertRequest](w, r, h.logger)
	if !ok {
		return
	}

	p, err := h.service.Create(r.Context(), *req)
	if err != nil {
		h.logError(r, "failed to create policy", err)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, p)
}

func (h *Handler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := httputil.IDParam(r)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	req, ok := httputil.DecodeAndPrepare[insurance.UpsertRequest](w, r, h.logger)
	if !ok {
		return
	}

	p, err := h.service.Update(r.Context(), id, *req)
	if err != nil {
		h.logError(r, "failed to update policy", err)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, p)
}

func (h *Handler) handleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := httputil.IDParam(r)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		h.logError(r, "failed to delete policy", err)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, map[string]string{"message": "insurance policy deleted"})
}

func (h *Handler) logError(r *http.Request, msg string, err error) {
	ctx := r.Context()
	if dErrors.Is(err, dErrors.CodeInternal) {
		h.logger.ErrorContext(ctx, msg, "request_id", middleware.GetRequestID(ctx), "error", err.Error())
		return
	}
	h.logger.WarnContext(ctx, msg, "request_id", middleware.GetRequestID(ctx), "error", err.Error())
}
