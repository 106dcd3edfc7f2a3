// ledger/csv.go
package ledger

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/shopspring/decimal"

	"github.com/rmaxey/tradelog/pkg/id"
)

const (
	csvTimestampLayout = "2006-01-02 15:04:05"
	csvClockLayout     = "15:04:05"
)

var csvHeader = []string{"Date", "Time", "Trade Type", "Description", "PnL", "Balance"}

// CSVStore persists the ledger as a single flat CSV file with a header row.
// Amounts are written at full stored precision; display rounding to cents is
// the boundary's job.
type CSVStore struct {
	path string
}

func NewCSVStore(path string) *CSVStore {
	return &CSVStore{path: path}
}

func (s *CSVStore) Load() (Ledger, error) {
	f, err := os.Open(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return Ledger{}, nil
	}
	if err != nil {
		return nil, &PersistenceError{Op: "load", Err: err}
	}
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, &PersistenceError{Op: "load", Err: err}
	}
	if len(rows) == 0 {
		return Ledger{}, nil
	}

	out := make(Ledger, 0, len(rows)-1)
	for i, row := range rows[1:] {
		rec, err := parseRow(row)
		if err != nil {
			return nil, &CorruptRecordError{Line: i + 2, Err: err}
		}
		out = append(out, rec)
	}
	out.sort()
	return out, nil
}

func parseRow(row []string) (TradeRecord, error) {
	if len(row) != len(csvHeader) {
		return TradeRecord{}, fmt.Errorf("want %d columns, got %d", len(csvHeader), len(row))
	}
	ts, err := parseStoredTimestamp(row[0], row[1])
	if err != nil {
		return TradeRecord{}, err
	}
	pnl, err := decimal.NewFromString(row[4])
	if err != nil {
		return TradeRecord{}, fmt.Errorf("PnL: %w", err)
	}
	balance, err := decimal.NewFromString(row[5])
	if err != nil {
		return TradeRecord{}, fmt.Errorf("Balance: %w", err)
	}
	return TradeRecord{
		// CSV rows carry no identity column; assign one for this session.
		ID:          id.New(),
		Timestamp:   ts,
		TradeType:   normalizeType(row[2]),
		Description: row[3],
		PnL:         pnl,
		Balance:     balance,
	}, nil
}

// parseStoredTimestamp accepts the full timestamp written by Save plus the
// layouts older files used: RFC3339, or a bare date whose time-of-day lives
// in the Time column.
func parseStoredTimestamp(date, clock string) (time.Time, error) {
	for _, layout := range []string{csvTimestampLayout, time.RFC3339} {
		if ts, err := time.Parse(layout, date); err == nil {
			return ts.UTC(), nil
		}
	}
	d, err := time.Parse("2006-01-02", date)
	if err != nil {
		return time.Time{}, fmt.Errorf("Date: unparseable %q", date)
	}
	if clock == "" {
		return d, nil
	}
	c, err := time.Parse(csvClockLayout, clock)
	if err != nil {
		return time.Time{}, fmt.Errorf("Time: unparseable %q", clock)
	}
	return time.Date(d.Year(), d.Month(), d.Day(), c.Hour(), c.Minute(), c.Second(), 0, time.UTC), nil
}

func (s *CSVStore) Save(l Ledger) error {
	rows := make([][]string, 0, len(l)+1)
	rows = append(rows, csvHeader)
	for _, rec := range l {
		rows = append(rows, []string{
			rec.Timestamp.Format(csvTimestampLayout),
			rec.Timestamp.Format(csvClockLayout),
			rec.TradeType,
			rec.Description,
			rec.PnL.String(),
			rec.Balance.String(),
		})
	}
	if err := atomicWriteCSV(s.path, rows); err != nil {
		return &PersistenceError{Op: "save", Err: err}
	}
	return nil
}

// atomicWriteCSV writes rows to a temp file in the target directory and
// renames it over path, so a crash mid-write never exposes a partial file.
func atomicWriteCSV(path string, rows [][]string) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), "tradelog-*.csv")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()

	w := csv.NewWriter(tmp)
	if err := w.WriteAll(rows); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return err
	}
	w.Flush()
	if err := w.Error(); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return err
	}
	return os.Rename(tmpPath, path)
}

func (s *CSVStore) Reset() error {
	err := os.Remove(s.path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return &PersistenceError{Op: "reset", Err: err}
	}
	return nil
}
