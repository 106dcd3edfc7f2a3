// ledger/schema.go
package ledger

// Amount columns are TEXT so decimal precision survives the round trip.
const schema = `
CREATE TABLE IF NOT EXISTS trades (
	id TEXT PRIMARY KEY,
	ts DATETIME NOT NULL,
	trade_type TEXT NOT NULL,
	description TEXT NOT NULL,
	pnl TEXT NOT NULL,
	balance TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_trades_ts ON trades(ts);
`
