package claimevent

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"insureco/internal/storage"
	"insureco/internal/storage/sqlite"
)

func newTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sqlite.Open(filepath.Join(t.TempDir(), "insurance.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func seedInsured(t *testing.T, db *sql.DB) int64 {
	t.Helper()
	res, err := db.Exec(`INSERT INTO insureds (firstName, lastName, street, city, postalCode, email, phone)
		VALUES ('Jan', 'Novák', 'Dlouhá 1', 'Praha', '11000', 'jan@example.com', '777123456')`)
	require.NoError(t, err)
	id, err := res.LastInsertId()
	require.NoError(t, err)
	return id
}

func testRequest(insuredID int64) UpsertRequest {
	return UpsertRequest{
		InsuredID:   insuredID,
		Title:       "Water damage",
		Description: "Burst pipe in the kitchen",
		Date:        "2025-03-14",
		Status:      StatusInProgress,
		Payout:      12000,
	}
}

func TestCreateThenGet(t *testing.T) {
	db := newTestDB(t)
	store := NewStore(db)
	ctx := context.Background()

	created, err := store.Create(ctx, testRequest(seedInsured(t, db)))
	require.NoError(t, err)
	assert.Positive(t, created.ID)

	got, err := store.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)
	assert.Equal(t, StatusInProgress, got.Status)
}

func TestDefaultStatusComesFromSchema(t *testing.T) {
	db := newTestDB(t)
	store := NewStore(db)
	ctx := context.Background()

	insuredID := seedInsured(t, db)

	// A row inserted without a status picks up the table default.
	res, err := db.Exec(`INSERT INTO events (insuredId, title, date, payout) VALUES (?, 'Theft', '2025-04-01', 0)`, insuredID)
	require.NoError(t, err)
	id, err := res.LastInsertId()
	require.NoError(t, err)

	got, err := store.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, StatusInProgress, got.Status)
	assert.Empty(t, got.Description)
}

func TestListEnrichesWithInsuredName(t *testing.T) {
	db := newTestDB(t)
	store := NewStore(db)
	ctx := context.Background()

	insuredID := seedInsured(t, db)
	first, err := store.Create(ctx, testRequest(insuredID))
	require.NoError(t, err)
	second, err := store.Create(ctx, testRequest(insuredID))
	require.NoError(t, err)

	events, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, events, 2)

	// Newest first.
	assert.Equal(t, second.ID, events[0].ID)
	assert.Equal(t, first.ID, events[1].ID)
	assert.Equal(t, "Jan", events[0].FirstName)
	assert.Equal(t, "Novák", events[0].LastName)
}

func TestListKeepsOrphanEvents(t *testing.T) {
	db := newTestDB(t)
	store := NewStore(db)
	ctx := context.Background()

	insuredID := seedInsured(t, db)
	ev, err := store.Create(ctx, testRequest(insuredID))
	require.NoError(t, err)

	// Deleting the insured leaves the event behind with empty name fields.
	_, err = db.Exec(`DELETE FROM insureds WHERE id = ?`, insuredID)
	require.NoError(t, err)

	events, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, ev.ID, events[0].ID)
	assert.Empty(t, events[0].FirstName)
	assert.Empty(t, events[0].LastName)
}

func TestUpdateReplacesAllFields(t *testing.T) {
	db := newTestDB(t)
	store := NewStore(db)
	ctx := context.Background()

	insuredID := seedInsured(t, db)
	ev, err := store.Create(ctx, testRequest(insuredID))
	require.NoError(t, err)

	req := testRequest(insuredID)
	req.Status = StatusPaidOut
	req.Payout = 9500
	updated, err := store.Update(ctx, ev.ID, req)
	require.NoError(t, err)
	assert.Equal(t, StatusPaidOut, updated.Status)

	got, err := store.Get(ctx, ev.ID)
	require.NoError(t, err)
	assert.Equal(t, StatusPaidOut, got.Status)
	assert.Equal(t, 9500.0, got.Payout)
}

func TestUpdateUnknownID(t *testing.T) {
	store := NewStore(newTestDB(t))
	_, err := store.Update(context.Background(), 42, testRequest(1))
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestDeleteUnknownID(t *testing.T) {
	store := NewStore(newTestDB(t))
	assert.ErrorIs(t, store.Delete(context.Background(), 42), storage.ErrNotFound)
}

func TestDeleteRemovesRow(t *testing.T) {
	db := newTestDB(t)
	store := NewStore(db)
	ctx := context.Background()

	ev, err := store.Create(ctx, testRequest(seedInsured(t, db)))
	require.NoError(t, err)

	require.NoError(t, store.Delete(ctx, ev.ID))
	_, err = store.Get(ctx, ev.ID)
	assert.ErrorIs(t, err, storage.ErrNotFound)
}
