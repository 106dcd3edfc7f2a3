package ledger

import (
	"database/sql"
	"path/filepath"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSQLiteStore(t *testing.T) (*SQLiteStore, string) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "trades.db")
	s, err := NewSQLiteStore(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	return s, path
}

func TestSQLiteSchemaCreated(t *testing.T) {
	t.Parallel()

	s, path := newTestSQLiteStore(t)
	require.NoError(t, s.Close())

	db, err := sql.Open("sqlite3", path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	var name string
	err = db.QueryRow(`SELECT name FROM sqlite_master WHERE type='table' AND name='trades'`).Scan(&name)
	require.NoError(t, err)
	assert.Equal(t, "trades", name)
}

func TestSQLiteLoadEmpty(t *testing.T) {
	t.Parallel()

	s, _ := newTestSQLiteStore(t)
	l, err := s.Load()
	require.NoError(t, err)
	assert.Empty(t, l)
}

func TestSQLiteRoundTrip(t *testing.T) {
	t.Parallel()

	s, _ := newTestSQLiteStore(t)
	eng, err := NewEngine(s)
	require.NoError(t, err)

	_, err = eng.Append(testEntry(t, "2024-01-02", "09:30:00", "Long", "125.50"))
	require.NoError(t, err)
	_, err = eng.Append(testEntry(t, "2024-01-03", "14:45:10", "Short", "-40.25"))
	require.NoError(t, err)

	want := eng.Snapshot()

	got, err := s.Load()
	require.NoError(t, err)
	require.Len(t, got, len(want))

	for i := range want {
		assert.Equal(t, want[i].ID, got[i].ID)
		assert.True(t, got[i].Timestamp.Equal(want[i].Timestamp))
		assert.Equal(t, want[i].TradeType, got[i].TradeType)
		assert.Equal(t, want[i].Description, got[i].Description)
		assert.True(t, got[i].PnL.Equal(want[i].PnL))
		assert.True(t, got[i].Balance.Equal(want[i].Balance))
	}
}

func TestSQLiteSaveReplacesWholeLedger(t *testing.T) {
	t.Parallel()

	s, _ := newTestSQLiteStore(t)
	eng, err := NewEngine(s)
	require.NoError(t, err)

	_, err = eng.Append(testEntry(t, "2024-01-02", "09:30:00", "Long", "10"))
	require.NoError(t, err)
	_, err = eng.Append(testEntry(t, "2024-01-03", "09:30:00", "Long", "20"))
	require.NoError(t, err)

	// Saving a shorter ledger must not leave the old rows behind.
	require.NoError(t, s.Save(eng.Snapshot()[:1]))

	got, err := s.Load()
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestSQLiteResetIdempotent(t *testing.T) {
	t.Parallel()

	s, _ := newTestSQLiteStore(t)
	eng, err := NewEngine(s)
	require.NoError(t, err)

	_, err = eng.Append(testEntry(t, "2024-01-02", "09:30:00", "Long", "10"))
	require.NoError(t, err)

	require.NoError(t, s.Reset())
	require.NoError(t, s.Reset())

	got, err := s.Load()
	require.NoError(t, err)
	assert.Empty(t, got)
}
