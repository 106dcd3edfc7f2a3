package ledger

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCSVStore(t *testing.T) (*CSVStore, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "trades.csv")
	return NewCSVStore(path), path
}

func TestCSVLoadMissingFileIsEmptyLedger(t *testing.T) {
	t.Parallel()

	s, _ := newTestCSVStore(t)
	l, err := s.Load()
	require.NoError(t, err)
	assert.Empty(t, l)
}

func TestCSVSaveWritesHeader(t *testing.T) {
	t.Parallel()

	s, path := newTestCSVStore(t)
	require.NoError(t, s.Save(Ledger{}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	header, err := csv.NewReader(strings.NewReader(string(data))).Read()
	require.NoError(t, err)
	assert.Equal(t, []string{"Date", "Time", "Trade Type", "Description", "PnL", "Balance"}, header)
}

func TestCSVRoundTrip(t *testing.T) {
	t.Parallel()

	s, _ := newTestCSVStore(t)
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
		assert.True(t, got[i].Timestamp.Equal(want[i].Timestamp))
		assert.Equal(t, want[i].TradeType, got[i].TradeType)
		assert.Equal(t, want[i].Description, got[i].Description)
		assert.True(t, got[i].PnL.Equal(want[i].PnL))
		assert.True(t, got[i].Balance.Equal(want[i].Balance))
	}
}

func TestCSVLoadLegacyDateOnlyRows(t *testing.T) {
	t.Parallel()

	s, path := newTestCSVStore(t)
	rows := strings.Join([]string{
		"Date,Time,Trade Type,Description,PnL,Balance",
		"2023-06-01,09:30:00,Long,opening move,10,10",
		"2023-06-02,,Short,,-4,6",
	}, "\n")
	require.NoError(t, os.WriteFile(path, []byte(rows), 0644))

	l, err := s.Load()
	require.NoError(t, err)
	require.Len(t, l, 2)
	assert.Equal(t, 9, l[0].Timestamp.Hour())
	assert.Equal(t, 0, l[1].Timestamp.Hour())
}

func TestCSVLoadCorruptRowAbortsWholeLoad(t *testing.T) {
	t.Parallel()

	for name, row := range map[string]string{
		"bad date":    "yesterday,09:30:00,Long,,10,10",
		"bad pnl":     "2023-06-01 09:30:00,09:30:00,Long,,ten,10",
		"bad balance": "2023-06-01 09:30:00,09:30:00,Long,,10,plenty",
	} {
		s, path := newTestCSVStore(t)
		rows := strings.Join([]string{
			"Date,Time,Trade Type,Description,PnL,Balance",
			"2023-06-01 09:30:00,09:30:00,Long,fine,10,10",
			row,
		}, "\n")
		require.NoError(t, os.WriteFile(path, []byte(rows), 0644))

		_, err := s.Load()
		require.Error(t, err, name)

		var corrupt *CorruptRecordError
		require.ErrorAs(t, err, &corrupt, name)
		assert.Equal(t, 3, corrupt.Line, name)
	}
}

func TestCSVLoadBlankTypeNormalized(t *testing.T) {
	t.Parallel()

	s, path := newTestCSVStore(t)
	rows := strings.Join([]string{
		"Date,Time,Trade Type,Description,PnL,Balance",
		"2023-06-01 09:30:00,09:30:00,,,10,10",
	}, "\n")
	require.NoError(t, os.WriteFile(path, []byte(rows), 0644))

	l, err := s.Load()
	require.NoError(t, err)
	require.Len(t, l, 1)
	assert.Equal(t, UnknownType, l[0].TradeType)
}

func TestCSVResetIdempotent(t *testing.T) {
	t.Parallel()

	s, path := newTestCSVStore(t)
	require.NoError(t, s.Save(Ledger{}))

	require.NoError(t, s.Reset())
	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))

	// Resetting a store that no longer exists is a no-op.
	require.NoError(t, s.Reset())

	l, err := s.Load()
	require.NoError(t, err)
	assert.Empty(t, l)
}

func TestCSVSaveLeavesNoTempFilesBehind(t *testing.T) {
	t.Parallel()

	s, path := newTestCSVStore(t)
	require.NoError(t, s.Save(Ledger{}))

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, filepath.Base(path), entries[0].Name())
}
