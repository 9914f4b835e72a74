package insurancetype

import (
	"context"
	"errors"
	"log/slog"

	"insureco/internal/storage"
	dErrors "insureco/pkg/domain-errors"
)

// Service owns insurance type business rules: unique names and the guard
// against deleting a type that policies still reference.
type Service struct {
	store  Store
	logger *slog.Logger
}

// NewService constructs the insurance type service.
func NewService(store Store, logger *slog.Logger) *Service {
	return &Service{store: store, logger: logger}
}

func (s *Service) List(ctx context.Context) ([]InsuranceType, error) {
	types, err := s.store.List(ctx)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list insurance types")
	}
	return types, nil
}

func (s *Service) Get(ctx context.Context, id int64) (InsuranceType, error) {
	t, err := s.store.Get(ctx, id)
	if errors.Is(err, storage.ErrNotFound) {
		return InsuranceType{}, dErrors.New(dErrors.CodeNotFound, "insurance type not found")
	}
	if err != nil {
		return InsuranceType{}, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load insurance type")
	}
	return t, nil
}

func (s *Service) Create(ctx context.Context, req UpsertRequest) (InsuranceType, error) {
	req.Normalize()
	if err := req.Validate(); err != nil {
		return InsuranceType{}, err
	}

	t, err := s.store.Create(ctx, req)
	if storage.IsUniqueViolation(err) {
		return InsuranceType{}, dErrors.New(dErrors.CodeConflict, "an insurance type with this name already exists")
	}
	if err != nil {
		return InsuranceType{}, dErrors.Wrap(err, dErrors.CodeInternal, "failed to create insurance type")
	}

	s.logger.InfoContext(ctx, "insurance type created", "type_id", t.ID, "name", t.Name)
	return t, nil
}

func (s *Service) Update(ctx context.Context, id int64, req UpsertRequest) (InsuranceType, error) {
	req.Normalize()
	if err := req.Validate(); err != nil {
		return InsuranceType{}, err
	}

	t, err := s.store.Update(ctx, id, req)
	if errors.Is(err, storage.ErrNotFound) {
		return InsuranceType{}, dErrors.New(dErrors.CodeNotFound, "insurance type not found")
	}
	if storage.IsUniqueViolation(err) {
		return InsuranceType{}, dErrors.New(dErrors.CodeConflict, "an insurance type with this name already exists")
	}
	if err != nil {
		return InsuranceType{}, dErrors.Wrap(err, dErrors.CodeInternal, "failed to update insurance type")
	}
	return t, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	err := s.store.Delete(ctx, id)
	if errors.Is(err, storage.ErrNotFound) {
		return dErrors.New(dErrors.CodeNotFound, "insurance type not found")
	}
	if errors.Is(err, ErrReferenced) {
		return dErrors.New(dErrors.CodeConflict, "insurance type is still referenced by existing policies")
	}
	if err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to delete insurance type")
	}
	return nil
}
