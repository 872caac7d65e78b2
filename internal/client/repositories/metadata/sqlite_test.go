package metadata

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "meta.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE metadata (
  key        TEXT PRIMARY KEY,
  value      BLOB NOT NULL,
  updated_at INTEGER NOT NULL DEFAULT 0
);`)
	require.NoError(t, err)
	return db
}

func fixedNow(t time.Time) func() time.Time { return func() time.Time { return t } }

func TestSetAndGet_RecordsWriteTime(t *testing.T) {
	at := time.Date(2024, 5, 1, 8, 30, 0, 0, time.UTC)
	r := NewSQLiteRepository(setupDB(t)).WithNow(fixedNow(at))
	ctx := context.Background()

	require.NoError(t, r.Set(ctx, KeyToken, []byte("eyJ.x.y")))

	e, err := r.Get(ctx, KeyToken)
	require.NoError(t, err)
	require.NotNil(t, e)
	assert.Equal(t, []byte("eyJ.x.y"), e.Value)
	assert.True(t, e.UpdatedAt.Equal(at))
}

func TestGet_MissingKey(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))

	e, err := r.Get(context.Background(), KeyUsername)
	require.NoError(t, err)
	assert.Nil(t, e)
}

func TestSet_UpsertOverwritesValueAndTime(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()
	first := time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)
	later := first.Add(90 * time.Minute)

	require.NoError(t, NewSQLiteRepository(db).WithNow(fixedNow(first)).Set(ctx, KeyUsername, []byte("admin")))
	require.NoError(t, NewSQLiteRepository(db).WithNow(fixedNow(later)).Set(ctx, KeyUsername, []byte("operator")))

	e, err := NewSQLiteRepository(db).Get(ctx, KeyUsername)
	require.NoError(t, err)
	assert.Equal(t, []byte("operator"), e.Value)
	assert.True(t, e.UpdatedAt.Equal(later))
}

func TestGet_LegacyRowWithoutTime(t *testing.T) {
	db := setupDB(t)
	_, err := db.Exec(`INSERT INTO metadata (key, value) VALUES ('token', x'01')`)
	require.NoError(t, err)

	e, err := NewSQLiteRepository(db).Get(context.Background(), KeyToken)
	require.NoError(t, err)
	assert.True(t, e.UpdatedAt.IsZero())
}

func TestDelete_IsIdempotent(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, r.Set(ctx, KeyToken, []byte{0x01}))
	require.NoError(t, r.Delete(ctx, KeyToken))

	e, err := r.Get(ctx, KeyToken)
	require.NoError(t, err)
	assert.Nil(t, e)

	require.NoError(t, r.Delete(ctx, KeyToken))
}

func TestClear_RemovesAllKeys(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, r.Set(ctx, KeyToken, []byte{1}))
	require.NoError(t, r.Set(ctx, KeyUsername, []byte{2}))
	require.NoError(t, r.Clear(ctx))

	for _, k := range []Key{KeyToken, KeyUsername} {
		e, err := r.Get(ctx, k)
		require.NoError(t, err)
		assert.Nil(t, e, k)
	}
}

func TestRepository_DBErrorsWrapped(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	at := time.UnixMilli(1714552200000)
	r := NewSQLiteRepository(db).WithNow(fixedNow(at))
	ctx := context.Background()
	boom := errors.New("database is locked")

	mock.ExpectQuery(`SELECT value, updated_at FROM metadata`).WithArgs("token").WillReturnError(boom)
	_, err = r.Get(ctx, KeyToken)
	require.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "failed to get metadata[token]")

	mock.ExpectExec(`INSERT INTO metadata`).WithArgs("token", []byte("v"), at.UnixMilli()).WillReturnError(boom)
	err = r.Set(ctx, KeyToken, []byte("v"))
	require.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "failed to set metadata[token]")

	mock.ExpectExec(`DELETE FROM metadata WHERE key`).WithArgs("username").WillReturnError(boom)
	err = r.Delete(ctx, KeyUsername)
	require.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "failed to delete metadata[username]")

	mock.ExpectExec(`DELETE FROM metadata`).WillReturnError(boom)
	err = r.Clear(ctx)
	require.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "failed to clear metadata")

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGet_ClosedDB(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	require.NoError(t, db.Close())

	e, err := r.Get(context.Background(), KeyToken)
	require.Error(t, err)
	assert.Nil(t, e)
}
