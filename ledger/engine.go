package ledger

import "fmt"

// Engine owns the in-memory ledger and is the only component that mutates it.
// Every mutation persists the full ledger before it is considered committed;
// a failed save rolls the memory image back to its pre-mutation state, so no
// partial success is ever visible to later reads.
type Engine struct {
	store   Store
	records Ledger
}

// NewEngine loads the persisted ledger into memory. A store that does not
// exist yet yields an empty, usable engine.
func NewEngine(store Store) (*Engine, error) {
	records, err := store.Load()
	if err != nil {
		return nil, err
	}
	records.sort()
	return &Engine{store: store, records: records}, nil
}

// Snapshot returns a copy of the current ledger for read-only consumers. The
// engine never hands out its own slice.
func (e *Engine) Snapshot() Ledger {
	return e.records.Clone()
}

// Append adds a validated entry to the ledger. In derived mode the new
// record's balance starts from the chronologically-last existing balance
// (zero for an empty ledger); after the stable re-sort, every record from the
// new record's sorted position onward is rebalanced, so a backdated trade
// recomputes all later balances while earlier records stay untouched. A
// supplied balance is stored as given with no recomputation.
func (e *Engine) Append(entry Entry) (TradeRecord, error) {
	rec := entry.record()
	if entry.Balance != nil {
		rec.Balance = *entry.Balance
	} else {
		rec.Balance = e.records.LastBalance().Add(entry.PnL)
	}

	prev := e.records
	next := append(e.records.Clone(), rec)
	next.sort()
	if entry.Balance == nil {
		next.rebalance(next.indexOf(rec.ID))
	}

	e.records = next
	if err := e.store.Save(e.records); err != nil {
		e.records = prev
		return TradeRecord{}, err
	}
	return e.records[e.records.indexOf(rec.ID)], nil
}

// Edit applies updated fields to the record at index in view, a previously
// filtered snapshot. The index is resolved back to the live record by
// identity, never by re-filtering: the filter may have changed since the view
// was built, and positional indices are not stable across re-filtering.
func (e *Engine) Edit(view Ledger, index int, entry Entry) (TradeRecord, error) {
	if index < 0 || index >= len(view) {
		return TradeRecord{}, fmt.Errorf("%w: index %d, view has %d records", ErrIndexOutOfRange, index, len(view))
	}
	live := e.records.indexOf(view[index].ID)
	if live < 0 {
		return TradeRecord{}, fmt.Errorf("%w: record no longer exists, refresh the view", ErrIndexOutOfRange)
	}

	prev := e.records
	next := e.records.Clone()

	rec := next[live]
	rec.Timestamp = entry.Timestamp
	rec.TradeType = entry.TradeType
	rec.Description = entry.Description
	rec.PnL = entry.PnL
	if entry.Balance != nil {
		rec.Balance = *entry.Balance
	}
	next[live] = rec
	next.sort()

	if entry.Balance == nil {
		// Rebalance from the earliest position the edit could have touched:
		// the record's old slot or its new one, whichever comes first.
		from := next.indexOf(rec.ID)
		if live < from {
			from = live
		}
		next.rebalance(from)
	}

	e.records = next
	if err := e.store.Save(e.records); err != nil {
		e.records = prev
		return TradeRecord{}, err
	}
	return e.records[e.records.indexOf(rec.ID)], nil
}

// ResetAll irreversibly clears the ledger and deletes the persisted store.
// Confirmation is the boundary's job (see ResetGate); the engine only exposes
// the single atomic destructive call.
func (e *Engine) ResetAll() error {
	if err := e.store.Reset(); err != nil {
		return err
	}
	e.records = Ledger{}
	return nil
}
