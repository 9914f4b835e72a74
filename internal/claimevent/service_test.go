package claimevent

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"insureco/internal/platform/metrics"
	"insureco/internal/storage"
	dErrors "insureco/pkg/domain-errors"
)

type stubStore struct {
	createFn func(ctx context.Context, req UpsertRequest) (ClaimEvent, error)
	deleteFn func(ctx context.Context, id int64) error

	createCalls int
}

func (s *stubStore) List(context.Context) ([]EnrichedClaimEvent, error) { return nil, nil }

func (s *stubStore) Get(context.Context, int64) (ClaimEvent, error) {
	return ClaimEvent{}, storage.ErrNotFound
}

func (s *stubStore) Create(ctx context.Context, req UpsertRequest) (ClaimEvent, error) {
	s.createCalls++
	return s.createFn(ctx, req)
}

func (s *stubStore) Update(context.Context, int64, UpsertRequest) (ClaimEvent, error) {
	return ClaimEvent{}, storage.ErrNotFound
}

func (s *stubStore) Delete(ctx context.Context, id int64) error {
	return s.deleteFn(ctx, id)
}

func newTestService(store Store) *Service {
	return NewService(store, slog.New(slog.NewTextHandler(io.Discard, nil)), metrics.NewForTest())
}

func TestCreateDefaultsEmptyStatus(t *testing.T) {
	store := &stubStore{
		createFn: func(_ context.Context, req UpsertRequest) (ClaimEvent, error) {
			assert.Equal(t, StatusInProgress, req.Status)
			return ClaimEvent{ID: 1, Status: req.Status}, nil
		},
	}

	req := testRequest(1)
	req.Status = ""
	_, err := newTestService(store).Create(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, 1, store.createCalls)
}

func TestCreateRejectsUnknownStatus(t *testing.T) {
	store := &stubStore{}
	req := testRequest(1)
	req.Status = "closed"

	_, err := newTestService(store).Create(context.Background(), req)
	require.Error(t, err)
	assert.True(t, dErrors.Is(err, dErrors.CodeValidation))
	assert.Zero(t, store.createCalls)
}

func TestCreateValidatesRequiredFields(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*UpsertRequest)
		message string
	}{
		{"missing insuredId", func(r *UpsertRequest) { r.InsuredID = 0 }, "insuredId is required"},
		{"missing title", func(r *UpsertRequest) { r.Title = "  " }, "title is required"},
		{"missing date", func(r *UpsertRequest) { r.Date = "" }, "date is required"},
		{"negative payout", func(r *UpsertRequest) { r.Payout = -1 }, "payout must not be negative"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			store := &stubStore{}
			req := testRequest(1)
			tc.mutate(&req)

			_, err := newTestService(store).Create(context.Background(), req)
			require.Error(t, err)
			assert.True(t, dErrors.Is(err, dErrors.CodeValidation))
			assert.Equal(t, tc.message, dErrors.MessageOf(err))
			assert.Zero(t, store.createCalls)
		})
	}
}

func TestCreateAllowsZeroPayout(t *testing.T) {
	store := &stubStore{
		createFn: func(_ context.Context, req UpsertRequest) (ClaimEvent, error) {
			return ClaimEvent{ID: 1}, nil
		},
	}

	req := testRequest(1)
	req.Payout = 0
	_, err := newTestService(store).Create(context.Background(), req)
	require.NoError(t, err)
}

func TestCreateMapsStoreFailureToInternal(t *testing.T) {
	store := &stubStore{
		createFn: func(context.Context, UpsertRequest) (ClaimEvent, error) {
			return ClaimEvent{}, errors.New("disk I/O error")
		},
	}

	_, err := newTestService(store).Create(context.Background(), testRequest(1))
	require.Error(t, err)
	assert.True(t, dErrors.Is(err, dErrors.CodeInternal))
	assert.Equal(t, "disk I/O error", dErrors.CauseOf(err))
}

func TestGetMapsNotFound(t *testing.T) {
	_, err := newTestService(&stubStore{}).Get(context.Background(), 42)
	require.Error(t, err)
	assert.True(t, dErrors.Is(err, dErrors.CodeNotFound))
	assert.Equal(t, "claim event not found", dErrors.MessageOf(err))
}

func TestDeleteMapsNotFound(t *testing.T) {
	store := &stubStore{
		deleteFn: func(context.Context, int64) error { return storage.ErrNotFound },
	}

	err := newTestService(store).Delete(context.Background(), 42)
	require.Error(t, err)
	assert.True(t, dErrors.Is(err, dErrors.CodeNotFound))
}
