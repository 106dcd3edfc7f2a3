package ledger

import (
	"database/sql"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/shopspring/decimal"
)

// SQLiteStore is the alternate persistence backend, selected by config. It
// satisfies the same whole-ledger replace semantics as the CSV store: Save
// rewrites the trades table in one transaction.
type SQLiteStore struct {
	db *sql.DB
}

func NewSQLiteStore(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, &PersistenceError{Op: "open", Err: err}
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, &PersistenceError{Op: "open", Err: err}
	}
	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) Load() (Ledger, error) {
	rows, err := s.db.Query(`
		SELECT id, ts, trade_type, description, pnl, balance
		FROM trades
		ORDER BY ts ASC, rowid ASC`)
	if err != nil {
		return nil, &PersistenceError{Op: "load", Err: err}
	}
	defer rows.Close()

	out := Ledger{}
	line := 1
	for rows.Next() {
		var rec TradeRecord
		var ts time.Time
		var pnl, balance string
		if err := rows.Scan(&rec.ID, &ts, &rec.TradeType, &rec.Description, &pnl, &balance); err != nil {
			return nil, &PersistenceError{Op: "load", Err: err}
		}
		rec.Timestamp = ts.UTC()
		if rec.PnL, err = decimal.NewFromString(pnl); err != nil {
			return nil, &CorruptRecordError{Line: line, Err: err}
		}
		if rec.Balance, err = decimal.NewFromString(balance); err != nil {
			return nil, &CorruptRecordError{Line: line, Err: err}
		}
		out = append(out, rec)
		line++
	}
	if err := rows.Err(); err != nil {
		return nil, &PersistenceError{Op: "load", Err: err}
	}
	return out, nil
}

func (s *SQLiteStore) Save(l Ledger) error {
	tx, err := s.db.Begin()
	if err != nil {
		return &PersistenceError{Op: "save", Err: err}
	}
	if _, err := tx.Exec(`DELETE FROM trades`); err != nil {
		tx.Rollback()
		return &PersistenceError{Op: "save", Err: err}
	}
	stmt, err := tx.Prepare(`
		INSERT INTO trades (id, ts, trade_type, description, pnl, balance)
		VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		tx.Rollback()
		return &PersistenceError{Op: "save", Err: err}
	}
	defer stmt.Close()

	for _, rec := range l {
		_, err := stmt.Exec(
			rec.ID,
			rec.Timestamp.UTC(),
			rec.TradeType,
			rec.Description,
			rec.PnL.String(),
			rec.Balance.String(),
		)
		if err != nil {
			tx.Rollback()
			return &PersistenceError{Op: "save", Err: err}
		}
	}
	if err := tx.Commit(); err != nil {
		return &PersistenceError{Op: "save", Err: err}
	}
	return nil
}

func (s *SQLiteStore) Reset() error {
	// Idempotent: deleting from an already-empty table is a no-op.
	if _, err := s.db.Exec(`DELETE FROM trades`); err != nil {
		return &PersistenceError{Op: "reset", Err: err}
	}
	return nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
