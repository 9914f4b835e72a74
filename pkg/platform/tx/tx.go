// Package tx wraps database/sql transaction boilerplate. Stores hand Run a
// function; the transaction commits when it returns nil and rolls back
// otherwise.
package tx

import (
	"context"
	"database/sql"
	"fmt"
)

// Run executes fn inside a transaction on db. The error from fn is returned
// unwrapped so callers can keep matching sentinel errors with errors.Is.
func Run(ctx context.Context, db *sql.DB, fn func(tx *sql.Tx) error) error {
	t, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer t.Rollback()

	if err := fn(t); err != nil {
		return err
	}
	if err := t.Commit(); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}
