package claimevent

import (
	"context"
	"errors"
	"log/slog"

	"insureco/internal/platform/metrics"
	"insureco/internal/storage"
	dErrors "insureco/pkg/domain-errors"
)

// Service owns claim event business rules.
type Service struct {
	store   Store
	logger  *slog.Logger
	metrics *metrics.Metrics
}

// NewService constructs the claim event service.
func NewService(store Store, logger *slog.Logger, m *metrics.Metrics) *Service {
	return &Service{store: store, logger: logger, metrics: m}
}

func (s *Service) List(ctx context.Context) ([]EnrichedClaimEvent, error) {
	events, err := s.store.List(ctx)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list claim events")
	}
	return events, nil
}

func (s *Service) Get(ctx context.Context, id int64) (ClaimEvent, error) {
	ev, err := s.store.Get(ctx, id)
	if errors.Is(err, storage.ErrNotFound) {
		return ClaimEvent{}, dErrors.New(dErrors.CodeNotFound, "claim event not found")
	}
	if err != nil {
		return ClaimEvent{}, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load claim event")
	}
	return ev, nil
}

func (s *Service) Create(ctx context.Context, req UpsertRequest) (ClaimEvent, error) {
	req.Normalize()
	if err := req.Validate(); err != nil {
		return ClaimEvent{}, err
	}

	ev, err := s.store.Create(ctx, req)
	if err != nil {
		return ClaimEvent{}, dErrors.Wrap(err, dErrors.CodeInternal, "failed to create claim event")
	}

	s.metrics.IncrementClaimsCreated()
	s.logger.InfoContext(ctx, "claim event created", "event_id", ev.ID, "insured_id", ev.InsuredID)
	return ev, nil
}

func (s *Service) Update(ctx context.Context, id int64, req UpsertRequest) (ClaimEvent, error) {
	req.Normalize()
	if err := req.Validate(); err != nil {
		return ClaimEvent{}, err
	}

	ev, err := s.store.Update(ctx, id, req)
	if errors.Is(err, storage.ErrNotFound) {
		return ClaimEvent{}, dErrors.New(dErrors.CodeNotFound, "claim event not found")
	}
	if err != nil {
		return ClaimEvent{}, dErrors.Wrap(err, dErrors.CodeInternal, "failed to update claim event")
	}
	return ev, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	err := s.store.Delete(ctx, id)
	if errors.Is(err, storage.ErrNotFound) {
		return dErrors.New(dErrors.CodeNotFound, "claim event not found")
	}
	if err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to delete claim event")
	}
	return nil
}
