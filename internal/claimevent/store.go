package claimevent

import (
	"context"
	"database/sql"
	"fmt"

	"insureco/internal/storage"
)

// Store abstracts claim event persistence.
type Store interface {
	List(ctx context.Context) ([]EnrichedClaimEvent, error)
	Get(ctx context.Context, id int64) (ClaimEvent, error)
	Create(ctx context.Context, req UpsertRequest) (ClaimEvent, error)
	Update(ctx context.Context, id int64, req UpsertRequest) (ClaimEvent, error)
	Delete(ctx context.Context, id int64) error
}

// SQLStore persists claim events in the SQLite database.
type SQLStore struct {
	db *sql.DB
}

// NewStore constructs a SQLite-backed claim event store.
func NewStore(db *sql.DB) *SQLStore {
	return &SQLStore{db: db}
}

// List returns all events newest first, joined with the insured's name.
// The join is LEFT because events outlive their insured.
func (s *SQLStore) List(ctx context.Context) ([]EnrichedClaimEvent, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT e.id, e.insuredId, e.title, e.description, e.date, e.status, e.payout,
		       COALESCE(ins.firstName, ''), COALESCE(ins.lastName, '')
		FROM events e
		LEFT JOIN insureds ins ON e.insuredId = ins.id
		ORDER BY e.id DESC`)
	if err != nil {
		return nil, fmt.Errorf("list claim events: %w", err)
	}
	defer rows.Close()

	events := make([]EnrichedClaimEvent, 0)
	for rows.Next() {
		var ev EnrichedClaimEvent
		var description sql.NullString
		if err := rows.Scan(&ev.ID, &ev.InsuredID, &ev.Title, &description, &ev.Date, &ev.Status, &ev.Payout,
			&ev.FirstName, &ev.LastName); err != nil {
			return nil, fmt.Errorf("scan claim event: %w", err)
		}
		ev.Description = description.String
		events = append(events, ev)
	}
	return events, rows.Err()
}

func (s *SQLStore) Get(ctx context.Context, id int64) (ClaimEvent, error) {
	var ev ClaimEvent
	var description sql.NullString
	err := s.db.QueryRowContext(ctx,
		`SELECT id, insuredId, title, description, date, status, payout FROM events WHERE id = ?`, id,
	).Scan(&ev.ID, &ev.InsuredID, &ev.Title, &description, &ev.Date, &ev.Status, &ev.Payout)
	if err == sql.ErrNoRows {
		return ClaimEvent{}, storage.ErrNotFound
	}
	if err != nil {
		return ClaimEvent{}, fmt.Errorf("get claim event %d: %w", id, err)
	}
	ev.Description = description.String
	return ev, nil
}

func (s *SQLStore) Create(ctx context.Context, req UpsertRequest) (ClaimEvent, error) {
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO events (insuredId, title, description, date, status, payout) VALUES (?, ?, ?, ?, ?, ?)`,
		req.InsuredID, req.Title, req.Description, req.Date, string(req.Status), req.Payout,
	)
	if err != nil {
		return ClaimEvent{}, fmt.Errorf("create claim event: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return ClaimEvent{}, fmt.Errorf("create claim event: %w", err)
	}
	return s.fromRequest(id, req), nil
}

func (s *SQLStore) Update(ctx context.Context, id int64, req UpsertRequest) (ClaimEvent, error) {
	res, err := s.db.ExecContext(ctx,
		`UPDATE events SET insuredId=?, title=?, description=?, date=?, status=?, payout=? WHERE id=?`,
		req.InsuredID, req.Title, req.Description, req.Date, string(req.Status), req.Payout, id,
	)
	if err != nil {
		return ClaimEvent{}, fmt.Errorf("update claim event %d: %w", id, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return ClaimEvent{}, fmt.Errorf("update claim event %d: %w", id, err)
	}
	if affected == 0 {
		return ClaimEvent{}, storage.ErrNotFound
	}
	return s.fromRequest(id, req), nil
}

func (s *SQLStore) Delete(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM events WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete claim event %d: %w", id, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete claim event %d: %w", id, err)
	}
	if affected == 0 {
		return storage.ErrNotFound
	}
	return nil
}

func (s *SQLStore) fromRequest(id int64, req UpsertRequest) ClaimEvent {
	return ClaimEvent{
		ID:          id,
		InsuredID:   req.InsuredID,
		Title:       req.Title,
		Description: req.Description,
		Date:        req.Date,
		Status:      req.Status,
		Payout:      req.Payout,
	}
}
