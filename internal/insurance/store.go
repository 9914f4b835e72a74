package insurance

import (
	"context"
	"database/sql"
	"fmt"

	"insureco/internal/storage"
	"insureco/pkg/platform/tx"
)

// Store abstracts policy persistence.
type Store interface {
	List(ctx context.Context, q Query) ([]EnrichedPolicy, int64, error)
	Get(ctx context.Context, id int64) (EnrichedPolicy, error)
	Create(ctx context.Context, req UpsertRequest) (Policy, error)
	Update(ctx context.Context, id int64, req UpsertRequest) (Policy, error)
	Delete(ctx context.Context, id int64) error
}

// SQLStore persists policies in the SQLite database.
type SQLStore struct {
	db *sql.DB
}

// NewStore constructs a SQLite-backed policy store.
func NewStore(db *sql.DB) *SQLStore {
	return &SQLStore{db: db}
}

// List returns one page of enriched policies plus the total match count.
// The count and the slice share one WHERE predicate and run in a single
// transaction, so totalPages can never drift from the rows returned.
func (s *SQLStore) List(ctx context.Context, q Query) ([]EnrichedPolicy, int64, error) {
	where := ""
	var args []any
	if q.TypeID > 0 {
		where = " WHERE i.typeId = ?"
		args = append(args, q.TypeID)
	}
	if q.InsuredName != "" {
		if where == "" {
			where = " WHERE "
		} else {
			where += " AND "
		}
		where += `lower(ins.firstName || ' ' || ins.lastName) LIKE '%' || lower(?) || '%'`
		args = append(args, q.InsuredName)
	}

	var total int64
	policies := make([]EnrichedPolicy, 0, q.Limit)
	err := tx.Run(ctx, s.db, func(t *sql.Tx) error {
		countQuery := `SELECT COUNT(*) FROM insurances i JOIN insureds ins ON i.insuredId = ins.id` + where
		if err := t.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
			return fmt.Errorf("count policies: %w", err)
		}

		offset := (q.Page - 1) * q.Limit
		dataQuery := `
			SELECT i.id, i.typeId, i.insuredId, i.amount, i.subject, i.validFrom, i.validTo,
			       ty.name AS typeName, ins.firstName, ins.lastName
			FROM insurances i
			JOIN insureds ins ON i.insuredId = ins.id
			JOIN insuranceTypes ty ON i.typeId = ty.id` + where + `
			ORDER BY i.id DESC
			LIMIT ? OFFSET ?`
		rows, err := t.QueryContext(ctx, dataQuery, append(args, q.Limit, offset)...)
		if err != nil {
			return fmt.Errorf("list policies: %w", err)
		}
		defer rows.Close()

		for rows.Next() {
			var p EnrichedPolicy
			if err := rows.Scan(&p.ID, &p.TypeID, &p.InsuredID, &p.Amount, &p.Subject, &p.ValidFrom, &p.ValidTo,
				&p.TypeName, &p.FirstName, &p.LastName); err != nil {
				return fmt.Errorf("scan policy: %w", err)
			}
			policies = append(policies, p)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, 0, err
	}
	return policies, total, nil
}

func (s *SQLStore) Get(ctx context.Context, id int64) (EnrichedPolicy, error) {
	var p EnrichedPolicy
	err := s.db.QueryRowContext(ctx, `
		SELECT i.id, i.typeId, i.insuredId, i.amount, i.subject, i.validFrom, i.validTo,
		       COALESCE(t.name, '') AS typeName,
		       COALESCE(ins.firstName, ''), COALESCE(ins.lastName, '')
		FROM insurances i
		LEFT JOIN insureds ins ON i.insuredId = ins.id
		LEFT JOIN insuranceTypes t ON i.typeId = t.id
		WHERE i.id = ?`, id,
	).Scan(&p.ID, &p.TypeID, &p.InsuredID, &p.Amount, &p.Subject, &p.ValidFrom, &p.ValidTo,
		&p.TypeName, &p.FirstName, &p.LastName)
	if err == sql.ErrNoRows {
		return EnrichedPolicy{}, storage.ErrNotFound
	}
	if err != nil {
		return EnrichedPolicy{}, fmt.Errorf("get policy %d: %w", id, err)
	}
	return p, nil
}

func (s *SQLStore) Create(ctx context.Context, req UpsertRequest) (Policy, error) {
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO insurances (typeId, amount, insuredId, subject, validFrom, validTo)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		req.TypeID, req.Amount, req.InsuredID, req.Subject, req.ValidFrom, req.ValidTo,
	)
	if err != nil {
		return Policy{}, fmt.Errorf("create policy: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return Policy{}, fmt.Errorf("create policy: %w", err)
	}
	return s.fromRequest(id, req), nil
}

func (s *SQLStore) Update(ctx context.Context, id int64, req UpsertRequest) (Policy, error) {
	res, err := s.db.ExecContext(ctx,
		`UPDATE insurances SET typeId=?, amount=?, insuredId=?, subject=?, validFrom=?, validTo=? WHERE id=?`,
		req.TypeID, req.Amount, req.InsuredID, req.Subject, req.ValidFrom, req.ValidTo, id,
	)
	if err != nil {
		return Policy{}, fmt.Errorf("update policy %d: %w", id, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return Policy{}, fmt.Errorf("update policy %d: %w", id, err)
	}
	if affected == 0 {
		return Policy{}, storage.ErrNotFound
	}
	return s.fromRequest(id, req), nil
}

func (s *SQLStore) Delete(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM insurances WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete policy %d: %w", id, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete policy %d: %w", id, err)
	}
	if affected == 0 {
		return storage.ErrNotFound
	}
	return nil
}

func (s *SQLStore) fromRequest(id int64, req UpsertRequest) Policy {
	return Policy{
		ID:        id,
		TypeID:    req.TypeID,
		InsuredID: req.InsuredID,
		Amount:    req.Amount,
		Subject:   req.Subject,
		ValidFrom: req.ValidFrom,
		ValidTo:   req.ValidTo,
	}
}
