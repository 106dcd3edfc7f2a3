package ledger

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidTimestamp reports a missing or unparseable date/time pair.
	ErrInvalidTimestamp = errors.New("invalid timestamp")
	// ErrInvalidAmount reports a non-numeric PnL or balance value.
	ErrInvalidAmount = errors.New("invalid amount")
	// ErrIndexOutOfRange reports an edit target that no longer corresponds to
	// an existing record. The caller should refresh its filtered view.
	ErrIndexOutOfRange = errors.New("record index out of range")
)

// CorruptRecordError reports a malformed persisted row. One corrupt row
// aborts the whole load; a partial ledger is never silently constructed.
type CorruptRecordError struct {
	Line int
	Err  error
}

func (e *CorruptRecordError) Error() string {
	return fmt.Sprintf("corrupt record at line %d: %v", e.Line, e.Err)
}

func (e *CorruptRecordError) Unwrap() error { return e.Err }

// PersistenceError reports an I/O failure while loading, saving or resetting
// the store. The engine rolls the in-memory ledger back before returning one.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persist %s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }
