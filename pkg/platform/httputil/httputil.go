// Package httputil centralizes JSON encoding and domain error translation
// for HTTP handlers.
package httputil

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	dErrors "insureco/pkg/domain-errors"
)

// ErrorResponse is the wire shape of every failure. The error field carries
// the raw store error text and is only populated for internal failures.
type ErrorResponse struct {
	Message string `json:"message"`
	Err     string `json:"error,omitempty"`
}

// WriteJSON writes v as a JSON response with the given status code.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteError translates a domain error into its HTTP status and JSON body.
func WriteError(w http.ResponseWriter, err error) {
	resp := ErrorResponse{Message: dErrors.MessageOf(err)}
	if dErrors.Is(err, dErrors.CodeInternal) {
		resp.Err = dErrors.CauseOf(err)
	}
	WriteJSON(w, dErrors.HTTPStatus(err), resp)
}

// IDParam parses the {id} route parameter. Ids are positive integers
// assigned by the store.
func IDParam(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, dErrors.New(dErrors.CodeBadRequest, "invalid id")
	}
	return id, nil
}

// requestPtr constrains DecodeAndPrepare to pointer request types that
// normalize and validate themselves.
type requestPtr[T any] interface {
	*T
	Normalize()
	Validate() error
}

// DecodeAndPrepare decodes the request body into T, normalizes it, and
// validates it. On failure it writes the error response and returns false so
// handlers can bail out with a single if.
func DecodeAndPrepare[T any, PT requestPtr[T]](w http.ResponseWriter, r *http.Request, logger *slog.Logger) (*T, bool) {
	var req T
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.WarnContext(r.Context(), "invalid request body", "error", err.Error())
		WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid request body"))
		return nil, false
	}
	p := PT(&req)
	p.Normalize()
	if err := p.Validate(); err != nil {
		logger.WarnContext(r.Context(), "request validation failed", "error", err.Error())
		WriteError(w, err)
		return nil, false
	}
	return &req, true
}
