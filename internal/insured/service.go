package insured

import (
	"context"
	"errors"
	"log/slog"

	"insureco/internal/platform/metrics"
	"insureco/internal/storage"
	dErrors "insureco/pkg/domain-errors"
)

// Service owns insured business rules: validation before any store call,
// uniqueness conflicts, and the cascade-delete contract.
type Service struct {
	store   Store
	logger  *slog.Logger
	metrics *metrics.Metrics
}

// NewService constructs the insured service.
func NewService(store Store, logger *slog.Logger, m *metrics.Metrics) *Service {
	return &Service{store: store, logger: logger, metrics: m}
}

func (s *Service) List(ctx context.Context, filter Filter) ([]Insured, error) {
	insureds, err := s.store.List(ctx, filter)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list insureds")
	}
	return insureds, nil
}

func (s *Service) Get(ctx context.Context, id int64) (Insured, error) {
	ins, err := s.store.Get(ctx, id)
	if errors.Is(err, storage.ErrNotFound) {
		return Insured{}, dErrors.New(dErrors.CodeNotFound, "insured not found")
	}
	if err != nil {
		return Insured{}, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load insured")
	}
	return ins, nil
}

func (s *Service) Create(ctx context.Context, req UpsertRequest) (Insured, error) {
	req.Normalize()
	if err := req.Validate(); err != nil {
		return Insured{}, err
	}

	ins, err := s.store.Create(ctx, req)
	if storage.IsUniqueViolation(err) {
		return Insured{}, dErrors.New(dErrors.CodeConflict, "an insured with this email already exists")
	}
	if err != nil {
		return Insured{}, dErrors.Wrap(err, dErrors.CodeInternal, "failed to create insured")
	}

	s.metrics.IncrementInsuredsCreated()
	s.logger.InfoContext(ctx, "insured created", "insured_id", ins.ID)
	return ins, nil
}

func (s *Service) Update(ctx context.Context, id int64, req UpsertRequest) (Insured, error) {
	req.Normalize()
	if err := req.Validate(); err != nil {
		return Insured{}, err
	}

	ins, err := s.store.Update(ctx, id, req)
	if errors.Is(err, storage.ErrNotFound) {
		return Insured{}, dErrors.New(dErrors.CodeNotFound, "insured not found")
	}
	if storage.IsUniqueViolation(err) {
		return Insured{}, dErrors.New(dErrors.CodeConflict, "an insured with this email already exists")
	}
	if err != nil {
		return Insured{}, dErrors.Wrap(err, dErrors.CodeInternal, "failed to update insured")
	}
	return ins, nil
}

// Delete removes the insured together with all of their policies.
func (s *Service) Delete(ctx context.Context, id int64) error {
	err := s.store.DeleteCascade(ctx, id)
	if errors.Is(err, storage.ErrNotFound) {
		return dErrors.New(dErrors.CodeNotFound, "insured not found")
	}
	if err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to delete insured")
	}

	s.logger.InfoContext(ctx, "insured deleted with policies", "insured_id", id)
	return nil
}
