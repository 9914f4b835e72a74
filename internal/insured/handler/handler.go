package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"insureco/internal/insured"
	"insureco/internal/platform/middleware"
	dErrors "insureco/pkg/domain-errors"
	"insureco/pkg/platform/httputil"
)

// Service defines the interface for insured operations.
type Service interface {
	List(ctx context.Context, filter insured.Filter) ([]insured.Insured, error)
	Get(ctx context.Context, id int64) (insured.Insured, error)
	Create(ctx context.Context, req insured.UpsertRequest) (insured.Insured, error)
	Update(ctx context.Context, id int64, req insured.UpsertRequest) (insured.Insured, error)
	Delete(ctx context.Context, id int64) error
}

// Handler handles insured endpoints.
type Handler struct {
	service Service
	logger  *slog.Logger
}

// New creates a new insured Handler.
func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// Register mounts the insured routes on the router.
func (h *Handler) Register(r chi.Router) {
	r.Route("/insureds", func(r chi.Router) {
		r.Get("/", h.handleList)
		r.Post("/", h.handleCreate)
		r.Get("/{id}", h.handleGet)
		r.Put("/{id}", h.handleUpdate)
		r.Delete("/{id}", h.handleDelete)
	})
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	filter := insured.Filter{
		FirstName: r.URL.Query().Get("firstName"),
		LastName:  r.URL.Query().Get("lastName"),
	}

	insureds, err := h.service.List(r.Context(), filter)
	if err != nil {
		h.logError(r, "failed to list insureds", err)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, insureds)
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	id, err := httputil.IDParam(r)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	ins, err := h.service.Get(r.Context(), id)
	if err != nil {
		h.logError(r, "failed to load insured", err)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, ins)
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	req, ok := httputil.DecodeAndPrepare[insured.UpsertRequest](w, r, h.logger)
	if !ok {
		return
	}

	ins, err := h.service.Create(r.Context(), *req)
	if err != nil {
		h.logError(r, "failed to create insured", err)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, ins)
}

func (h *Handler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := httputil.IDParam(r)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	req, ok := httputil.DecodeAndPrepare[insured.UpsertRequest](w, r, h.logger)
	if !ok {
		return
	}

	ins, err := h.service.Update(r.Context(), id, *req)
	if err != nil {
		h.logError(r, "failed to update insured", err)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, ins)
}

func (h *Handler) handleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := httputil.IDParam(r)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		h.logError(r, "failed to delete insured", err)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, map[string]string{"message": "insured and their policies deleted"})
}

func (h *Handler) logError(r *http.Request, msg string, err error) {
	ctx := r.Context()
	if dErrors.Is(err, dErrors.CodeInternal) {
		h.logger.ErrorContext(ctx, msg, "request_id", middleware.GetRequestID(ctx), "error", err.Error())
		return
	}
	h.logger.WarnContext(ctx, msg, "request_id", middleware.GetRequestID(ctx), "error", err.Error())
}
