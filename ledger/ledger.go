package ledger

import (
	"sort"

	"github.com/shopspring/decimal"
)

// Ledger is the full ordered collection of trade records, sorted by timestamp
// ascending. Records with equal timestamps keep their insertion order.
type Ledger []TradeRecord

func (l Ledger) sort() {
	sort.SliceStable(l, func(i, j int) bool {
		return l[i].Timestamp.Before(l[j].Timestamp)
	})
}

// Clone returns an independent copy. Records are value types, so the copy
// shares nothing mutable with the original.
func (l Ledger) Clone() Ledger {
	out := make(Ledger, len(l))
	copy(out, l)
	return out
}

// LastBalance returns the balance of the chronologically-last record, or zero
// for an empty ledger.
func (l Ledger) LastBalance() decimal.Decimal {
	if len(l) == 0 {
		return decimal.Zero
	}
	return l[len(l)-1].Balance
}

// rebalance recomputes running balances from sorted position `from` onward as
// a prefix sum of PnL (balance[-1] is zero). Records before `from` are left
// untouched.
func (l Ledger) rebalance(from int) {
	if from < 0 {
		from = 0
	}
	for i := from; i < len(l); i++ {
		prev := decimal.Zero
		if i > 0 {
			prev = l[i-1].Balance
		}
		l[i].Balance = prev.Add(l[i].PnL)
	}
}

// indexOf locates a record by identity, -1 if absent.
func (l Ledger) indexOf(id string) int {
	for i := range l {
		if l[i].ID == id {
			return i
		}
	}
	return -1
}
