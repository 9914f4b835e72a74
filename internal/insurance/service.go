package insurance

import (
	"context"
	"errors"
	"log/slog"

	"insureco/internal/platform/metrics"
	"insureco/internal/storage"
	dErrors "insureco/pkg/domain-errors"
)

const (
	defaultPage  = 1
	defaultLimit = 10
)

// Service owns policy business rules and the pagination contract.
type Service struct {
	store   Store
	logger  *slog.Logger
	metrics *metrics.Metrics
}

// NewService constructs the policy service.
func NewService(store Store, logger *slog.Logger, m *metrics.Metrics) *Service {
	return &Service{store: store, logger: logger, metrics: m}
}

// List returns one page of policies matching the query. A page past the end
// of the result set yields empty data with the unchanged page count.
func (s *Service) List(ctx context.Context, q Query) (ListResult, error) {
	if q.Page < 1 {
		q.Page = defaultPage
	}
	if q.Limit < 1 {
		q.Limit = defaultLimit
	}

	policies, total, err := s.store.List(ctx, q)
	if err != nil {
		return ListResult{}, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list policies")
	}

	totalPages := int((total + int64(q.Limit) - 1) / int64(q.Limit))
	return ListResult{Data: policies, TotalPages: totalPages}, nil
}

func (s *Service) Get(ctx context.Context, id int64) (EnrichedPolicy, error) {
	p, err := s.store.Get(ctx, id)
	if errors.Is(err, storage.ErrNotFound) {
		return EnrichedPolicy{}, dErrors.New(dErrors.CodeNotFound, "insurance policy not found")
	}
	if err != nil {
		return EnrichedPolicy{}, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load insurance policy")
	}
	return p, nil
}

func (s *Service) Create(ctx context.Context, req UpsertRequest) (Policy, error) {
	req.Normalize()
	if err := req.Validate(); err != nil {
		return Policy{}, err
	}

	p, err := s.store.Create(ctx, req)
	if err != nil {
		return Policy{}, dErrors.Wrap(err, dErrors.CodeInternal, "failed to create insurance policy")
	}

	s.metrics.IncrementPoliciesCreated()
	s.logger.InfoContext(ctx, "policy created", "policy_id", p.ID, "insured_id", p.InsuredID, "type_id", p.TypeID)
	return p, nil
}

func (s *Service) Update(ctx context.Context, id int64, req UpsertRequest) (Policy, error) {
	req.Normalize()
	if err := req.Validate(); err != nil {
		return Policy{}, err
	}

	p, err := s.store.Update(ctx, id, req)
	if errors.Is(err, storage.ErrNotFound) {
		return Policy{}, dErrors.New(dErrors.CodeNotFound, "insurance policy not found")
	}
	if err != nil {
		return Policy{}, dErrors.Wrap(err, dErrors.CodeInternal, "failed to update insurance policy")
	}
	return p, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	err := s.store.Delete(ctx, id)
	if errors.Is(err, storage.ErrNotFound) {
		return dErrors.New(dErrors.CodeNotFound, "insurance policy not found")
	}
	if err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to delete insurance policy")
	}
	return nil
}
