package insurancetype

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"insureco/internal/storage"
	"insureco/pkg/platform/tx"
)

// ErrReferenced signals a delete of a type that policies still reference.
var ErrReferenced = errors.New("insurance type is referenced by existing policies")

// Store abstracts insurance type persistence.
type Store interface {
	List(ctx context.Context) ([]InsuranceType, error)
	Get(ctx context.Context, id int64) (InsuranceType, error)
	Create(ctx context.Context, req UpsertRequest) (InsuranceType, error)
	Update(ctx context.Context, id int64, req UpsertRequest) (InsuranceType, error)
	Delete(ctx context.Context, id int64) error
}

// SQLStore persists insurance types in the SQLite database.
type SQLStore struct {
	db *sql.DB
}

// NewStore constructs a SQLite-backed insurance type store.
func NewStore(db *sql.DB) *SQLStore {
	return &SQLStore{db: db}
}

// List returns all types newest first, each with a policy count computed
// fresh by the aggregate join.
func (s *SQLStore) List(ctx context.Context) ([]InsuranceType, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT t.id, t.name, COUNT(i.id) AS policyCount
		FROM insuranceTypes t
		LEFT JOIN insurances i ON t.id = i.typeId
		GROUP BY t.id
		ORDER BY t.id DESC`)
	if err != nil {
		return nil, fmt.Errorf("list insurance types: %w", err)
	}
	defer rows.Close()

	types := make([]InsuranceType, 0)
	for rows.Next() {
		var t InsuranceType
		if err := rows.Scan(&t.ID, &t.Name, &t.PolicyCount); err != nil {
			return nil, fmt.Errorf("scan insurance type: %w", err)
		}
		types = append(types, t)
	}
	return types, rows.Err()
}

func (s *SQLStore) Get(ctx context.Context, id int64) (InsuranceType, error) {
	var t InsuranceType
	err := s.db.QueryRowContext(ctx, `
		SELECT t.id, t.name, COUNT(i.id) AS policyCount
		FROM insuranceTypes t
		LEFT JOIN insurances i ON t.id = i.typeId
		WHERE t.id = ?
		GROUP BY t.id`, id,
	).Scan(&t.ID, &t.Name, &t.PolicyCount)
	if err == sql.ErrNoRows {
		return InsuranceType{}, storage.ErrNotFound
	}
	if err != nil {
		return InsuranceType{}, fmt.Errorf("get insurance type %d: %w", id, err)
	}
	return t, nil
}

func (s *SQLStore) Create(ctx context.Context, req UpsertRequest) (InsuranceType, error) {
	res, err := s.db.ExecContext(ctx, `INSERT INTO insuranceTypes (name) VALUES (?)`, req.Name)
	if err != nil {
		return InsuranceType{}, fmt.Errorf("create insurance type: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return InsuranceType{}, fmt.Errorf("create insurance type: %w", err)
	}
	return InsuranceType{ID: id, Name: req.Name}, nil
}

func (s *SQLStore) Update(ctx context.Context, id int64, req UpsertRequest) (InsuranceType, error) {
	res, err := s.db.ExecContext(ctx, `UPDATE insuranceTypes SET name=? WHERE id=?`, req.Name, id)
	if err != nil {
		return InsuranceType{}, fmt.Errorf("update insurance type %d: %w", id, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return InsuranceType{}, fmt.Errorf("update insurance type %d: %w", id, err)
	}
	if affected == 0 {
		return InsuranceType{}, storage.ErrNotFound
	}
	return InsuranceType{ID: id, Name: req.Name}, nil
}

// Delete refuses to remove a type while policies reference it; the check and
// the delete run in one transaction so a concurrent policy create cannot
// slip between them.
func (s *SQLStore) Delete(ctx context.Context, id int64) error {
	return tx.Run(ctx, s.db, func(t *sql.Tx) error {
		var refs int64
		if err := t.QueryRowContext(ctx, `SELECT COUNT(*) FROM insurances WHERE typeId = ?`, id).Scan(&refs); err != nil {
			return fmt.Errorf("count policies of type %d: %w", id, err)
		}
		if refs > 0 {
			return ErrReferenced
		}

		res, err := t.ExecContext(ctx, `DELETE FROM insuranceTypes WHERE id = ?`, id)
		if err != nil {
			return fmt.Errorf("delete insurance type %d: %w", id, err)
		}
		affected, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("delete insurance type %d: %w", id, err)
		}
		if affected == 0 {
			return storage.ErrNotFound
		}
		return nil
	})
}
