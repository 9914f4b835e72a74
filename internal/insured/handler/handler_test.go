package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"insureco/internal/insured"
	dErrors "insureco/pkg/domain-errors"
)

// stubService steers handler tests without a real store behind it.
type stubService struct {
	listFn   func(ctx context.Context, filter insured.Filter) ([]insured.Insured, error)
	getFn    func(ctx context.Context, id int64) (insured.Insured, error)
	createFn func(ctx context.Context, req insured.UpsertRequest) (insured.Insured, error)
	updateFn func(ctx context.Context, id int64, req insured.UpsertRequest) (insured.Insured, error)
	deleteFn func(ctx context.Context, id int64) error
}

func (s stubService) List(ctx context.Context, filter insured.Filter) ([]insured.Insured, error) {
	return s.listFn(ctx, filter)
}

func (s stubService) Get(ctx context.Context, id int64) (insured.Insured, error) {
	return s.getFn(ctx, id)
}

func (s stubService) Create(ctx context.Context, req insured.UpsertRequest) (insured.Insured, error) {
	return s.createFn(ctx, req)
}

func (s stubService) Update(ctx context.Context, id int64, req insured.UpsertRequest) (insured.Insured, error) {
	return s.updateFn(ctx, id, req)
}

func (s stubService) Delete(ctx context.Context, id int64) error {
	return s.deleteFn(ctx, id)
}

func newTestRouter(svc Service) chi.Router {
	r := chi.NewRouter()
	New(svc, slog.New(slog.NewTextHandler(io.Discard, nil))).Register(r)
	return r
}

func TestHandleListPassesFilters(t *testing.T) {
	var seen insured.Filter
	router := newTestRouter(stubService{
		listFn: func(_ context.Context, filter insured.Filter) ([]insured.Insured, error) {
			seen = filter
			return []insured.Insured{{ID: 1, FirstName: "Jan", LastName: "Novák"}}, nil
		},
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/insureds?firstName=Jan&lastName=Nov", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, insured.Filter{FirstName: "Jan", LastName: "Nov"}, seen)

	var body []insured.Insured
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body, 1)
	assert.Equal(t, int64(1), body[0].ID)
}

func TestHandleGetUnknownID(t *testing.T) {
	router := newTestRouter(stubService{
		getFn: func(context.Context, int64) (insured.Insured, error) {
			return insured.Insured{}, dErrors.New(dErrors.CodeNotFound, "insured not found")
		},
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/insureds/42", nil))

	require.Equal(t, http.StatusNotFound, w.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "insured not found", body["message"])
}

func TestHandleGetRejectsBadID(t *testing.T) {
	router := newTestRouter(stubService{
		getFn: func(context.Context, int64) (insured.Insured, error) {
			t.Fatal("service must not be called for a malformed id")
			return insured.Insured{}, nil
		},
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/insureds/abc", nil))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandleCreateReturns201(t *testing.T) {
	router := newTestRouter(stubService{
		createFn: func(_ context.Context, req insured.UpsertRequest) (insured.Insured, error) {
			return insured.Insured{
				ID:         7,
				FirstName:  req.FirstName,
				LastName:   req.LastName,
				Street:     req.Street,
				City:       req.City,
				PostalCode: req.PostalCode,
				Email:      req.Email,
				Phone:      req.Phone,
			}, nil
		},
	})

	payload := insured.UpsertRequest{
		FirstName: "Jan", LastName: "Novák", Street: "Dlouhá 12", City: "Praha",
		PostalCode: "11000", Email: "jan@example.com", Phone: "777123456",
	}
	body, err := json.Marshal(payload)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/insureds", bytes.NewReader(body)))

	require.Equal(t, http.StatusCreated, w.Code)
	var created insured.Insured
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, int64(7), created.ID)
	assert.Equal(t, "jan@example.com", created.Email)
}

func TestHandleCreateRejectsMissingField(t *testing.T) {
	router := newTestRouter(stubService{
		createFn: func(context.Context, insured.UpsertRequest) (insured.Insured, error) {
			t.Fatal("service must not be called when validation fails")
			return insured.Insured{}, nil
		},
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/insureds", bytes.NewReader([]byte(`{"firstName":"Jan"}`))))

	require.Equal(t, http.StatusBadRequest, w.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "lastName is required", body["message"])
}

func TestHandleCreateConflict(t *testing.T) {
	router := newTestRouter(stubService{
		createFn: func(context.Context, insured.UpsertRequest) (insured.Insured, error) {
			return insured.Insured{}, dErrors.New(dErrors.CodeConflict, "an insured with this email already exists")
		},
	})

	payload := insured.UpsertRequest{
		FirstName: "Jan", LastName: "Novák", Street: "Dlouhá 12", City: "Praha",
		PostalCode: "11000", Email: "jan@example.com", Phone: "777123456",
	}
	body, err := json.Marshal(payload)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/insureds", bytes.NewReader(body)))

	require.Equal(t, http.StatusBadRequest, w.Code)
	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "an insured with this email already exists", resp["message"])
}

func TestHandleDelete(t *testing.T) {
	var deleted int64
	router := newTestRouter(stubService{
		deleteFn: func(_ context.Context, id int64) error {
			deleted = id
			return nil
		},
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/insureds/3", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, int64(3), deleted)
	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "insured and their policies deleted", body["message"])
}
