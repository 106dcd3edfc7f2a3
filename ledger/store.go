package ledger

// Store persists the full ordered ledger. Implementations must replace the
// persisted ledger atomically: a crash mid-save never leaves a truncated
// store visible to a later Load. Exactly one writer process is assumed;
// concurrent external modification of the store is undefined.
type Store interface {
	// Load returns the persisted ledger. A store that does not exist yet is
	// the expected first-run state and yields an empty ledger, not an error.
	Load() (Ledger, error)
	// Save replaces the persisted ledger with l.
	Save(l Ledger) error
	// Reset deletes the persisted store. Resetting a missing store is a
	// no-op, not an error.
	Reset() error
}
