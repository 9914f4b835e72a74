package insured

import (
	"context"
	"database/sql"
	"fmt"

	"insureco/internal/storage"
	"insureco/pkg/platform/tx"
)

// Store abstracts insured persistence so handlers and services stay testable.
type Store interface {
	List(ctx context.Context, filter Filter) ([]Insured, error)
	Get(ctx context.Context, id int64) (Insured, error)
	Create(ctx context.Context, req UpsertRequest) (Insured, error)
	Update(ctx context.Context, id int64, req UpsertRequest) (Insured, error)
	DeleteCascade(ctx context.Context, id int64) error
}

// SQLStore persists insureds in the SQLite database.
type SQLStore struct {
	db *sql.DB
}

// NewStore constructs a SQLite-backed insured store.
func NewStore(db *sql.DB) *SQLStore {
	return &SQLStore{db: db}
}

func (s *SQLStore) List(ctx context.Context, filter Filter) ([]Insured, error) {
	query := `SELECT id, firstName, lastName, street, city, postalCode, email, phone FROM insureds`
	var clauses []string
	var args []any
	if filter.FirstName != "" {
		clauses = append(clauses, `lower(firstName) LIKE '%' || lower(?) || '%'`)
		args = append(args, filter.FirstName)
	}
	if filter.LastName != "" {
		clauses = append(clauses, `lower(lastName) LIKE '%' || lower(?) || '%'`)
		args = append(args, filter.LastName)
	}
	for i, clause := range clauses {
		if i == 0 {
			query += " WHERE " + clause
		} else {
			query += " AND " + clause
		}
	}
	query += " ORDER BY id DESC"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list insureds: %w", err)
	}
	defer rows.Close()

	insureds := make([]Insured, 0)
	for rows.Next() {
		var ins Insured
		if err := rows.Scan(&ins.ID, &ins.FirstName, &ins.LastName, &ins.Street, &ins.City, &ins.PostalCode, &ins.Email, &ins.Phone); err != nil {
			return nil, fmt.Errorf("scan insured: %w", err)
		}
		insureds = append(insureds, ins)
	}
	return insureds, rows.Err()
}

func (s *SQLStore) Get(ctx context.Context, id int64) (Insured, error) {
	var ins Insured
	err := s.db.QueryRowContext(ctx,
		`SELECT id, firstName, lastName, street, city, postalCode, email, phone FROM insureds WHERE id = ?`, id,
	).Scan(&ins.ID, &ins.FirstName, &ins.LastName, &ins.Street, &ins.City, &ins.PostalCode, &ins.Email, &ins.Phone)
	if err == sql.ErrNoRows {
		return Insured{}, storage.ErrNotFound
	}
	if err != nil {
		return Insured{}, fmt.Errorf("get insured %d: %w", id, err)
	}
	return ins, nil
}

func (s *SQLStore) Create(ctx context.Context, req UpsertRequest) (Insured, error) {
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO insureds (firstName, lastName, street, city, postalCode, email, phone)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		req.FirstName, req.LastName, req.Street, req.City, req.PostalCode, req.Email, req.Phone,
	)
	if err != nil {
		return Insured{}, fmt.Errorf("create insured: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return Insured{}, fmt.Errorf("create insured: %w", err)
	}
	return s.fromRequest(id, req), nil
}

func (s *SQLStore) Update(ctx context.Context, id int64, req UpsertRequest) (Insured, error) {
	res, err := s.db.ExecContext(ctx,
		`UPDATE insureds SET firstName=?, lastName=?, street=?, city=?, postalCode=?, email=?, phone=? WHERE id=?`,
		req.FirstName, req.LastName, req.Street, req.City, req.PostalCode, req.Email, req.Phone, id,
	)
	if err != nil {
		return Insured{}, fmt.Errorf("update insured %d: %w", id, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return Insured{}, fmt.Errorf("update insured %d: %w", id, err)
	}
	if affected == 0 {
		return Insured{}, storage.ErrNotFound
	}
	return s.fromRequest(id, req), nil
}

// DeleteCascade removes the insured and every policy referencing it in one
// transaction, so no reader can observe the insured gone while its policies
// remain, or the reverse.
func (s *SQLStore) DeleteCascade(ctx context.Context, id int64) error {
	return tx.Run(ctx, s.db, func(t *sql.Tx) error {
		if _, err := t.ExecContext(ctx, `DELETE FROM insurances WHERE insuredId = ?`, id); err != nil {
			return fmt.Errorf("delete policies of insured %d: %w", id, err)
		}

		res, err := t.ExecContext(ctx, `DELETE FROM insureds WHERE id = ?`, id)
		if err != nil {
			return fmt.Errorf("delete insured %d: %w", id, err)
		}
		affected, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("delete insured %d: %w", id, err)
		}
		if affected == 0 {
			return storage.ErrNotFound
		}
		return nil
	})
}

func (s *SQLStore) fromRequest(id int64, req UpsertRequest) Insured {
	return Insured{
		ID:         id,
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		Street:     req.Street,
		City:       req.City,
		PostalCode: req.PostalCode,
		Email:      req.Email,
		Phone:      req.Phone,
	}
}
