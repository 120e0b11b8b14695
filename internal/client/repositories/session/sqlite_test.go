package session

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE session (
  key   TEXT PRIMARY KEY,
  value TEXT NOT NULL
);`)
	require.NoError(t, err)
	return db
}

func TestSetAndGet(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, r.Set(ctx, KeyRefreshToken, "abc"))

	v, err := r.Get(ctx, KeyRefreshToken)
	require.NoError(t, err)
	require.Equal(t, "abc", v)
}

func TestGet_Absent(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))

	v, err := r.Get(context.Background(), "absent")
	require.NoError(t, err)
	require.Empty(t, v)
}

func TestSet_Upserts(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, r.Set(ctx, KeyEmail, "old@example.com"))
	require.NoError(t, r.Set(ctx, KeyEmail, "new@example.com"))

	v, err := r.Get(ctx, KeyEmail)
	require.NoError(t, err)
	require.Equal(t, "new@example.com", v)
}

func TestDelete_IsIdempotent(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, r.Set(ctx, KeyUserID, "u1"))
	require.NoError(t, r.Delete(ctx, KeyUserID))
	require.NoError(t, r.Delete(ctx, KeyUserID))

	v, err := r.Get(ctx, KeyUserID)
	require.NoError(t, err)
	require.Empty(t, v)
}

func TestClear(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, r.Set(ctx, KeyUserID, "u1"))
	require.NoError(t, r.Set(ctx, KeyEmail, "a@b.c"))
	require.NoError(t, r.Clear(ctx))

	for _, k := range []string{KeyUserID, KeyEmail} {
		v, err := r.Get(ctx, k)
		require.NoError(t, err)
		require.Empty(t, v)
	}
}

func TestClosedDB_ReturnsErrors(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	require.NoError(t, db.Close())
	ctx := context.Background()

	_, err := r.Get(ctx, "k")
	require.Error(t, err)
	require.Error(t, r.Set(ctx, "k", "v"))
	require.Error(t, r.Delete(ctx, "k"))
	require.Error(t, r.Clear(ctx))
}
