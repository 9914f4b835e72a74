package insurancetype

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"insureco/internal/storage"
	dErrors "insureco/pkg/domain-errors"
)

type stubStore struct {
	createFn func(ctx context.Context, req UpsertRequest) (InsuranceType, error)
	deleteFn func(ctx context.Context, id int64) error

	createCalls int
}

func (s *stubStore) List(context.Context) ([]InsuranceType, error) { return nil, nil }

func (s *stubStore) Get(context.Context, int64) (InsuranceType, error) {
	return InsuranceType{}, storage.ErrNotFound
}

func (s *stubStore) Create(ctx context.Context, req UpsertRequest) (InsuranceType, error) {
	s.createCalls++
	return s.createFn(ctx, req)
}

func (s *stubStore) Update(context.Context, int64, UpsertRequest) (InsuranceType, error) {
	return InsuranceType{}, storage.ErrNotFound
}

func (s *stubStore) Delete(ctx context.Context, id int64) error {
	return s.deleteFn(ctx, id)
}

func newTestService(store Store) *Service {
	return NewService(store, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestCreateRequiresName(t *testing.T) {
	store := &stubStore{}
	_, err := newTestService(store).Create(context.Background(), UpsertRequest{Name: "   "})

	require.Error(t, err)
	assert.True(t, dErrors.Is(err, dErrors.CodeValidation))
	assert.Zero(t, store.createCalls)
}

func TestCreateMapsUniqueViolationToConflict(t *testing.T) {
	store := &stubStore{
		createFn: func(context.Context, UpsertRequest) (InsuranceType, error) {
			return InsuranceType{}, errors.New("UNIQUE constraint failed: insuranceTypes.name")
		},
	}

	_, err := newTestService(store).Create(context.Background(), UpsertRequest{Name: "Life"})
	require.Error(t, err)
	assert.True(t, dErrors.Is(err, dErrors.CodeConflict))
	assert.Equal(t, "an insurance type with this name already exists", dErrors.MessageOf(err))
}

func TestDeleteMapsReferencedToConflict(t *testing.T) {
	store := &stubStore{
		deleteFn: func(context.Context, int64) error { return ErrReferenced },
	}

	err := newTestService(store).Delete(context.Background(), 1)
	require.Error(t, err)
	assert.True(t, dErrors.Is(err, dErrors.CodeConflict))
	assert.Equal(t, "insurance type is still referenced by existing policies", dErrors.MessageOf(err))
}

func TestDeleteMapsNotFound(t *testing.T) {
	store := &stubStore{
		deleteFn: func(context.Context, int64) error { return storage.ErrNotFound },
	}

	err := newTestService(store).Delete(context.Background(), 42)
	require.Error(t, err)
	assert.True(t, dErrors.Is(err, dErrors.CodeNotFound))
}

func TestGetMapsNotFound(t *testing.T) {
	_, err := newTestService(&stubStore{}).Get(context.Background(), 42)
	require.Error(t, err)
	assert.True(t, dErrors.Is(err, dErrors.CodeNotFound))
	assert.Equal(t, "insurance type not found", dErrors.MessageOf(err))
}
