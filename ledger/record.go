// ledger/record.go
package ledger

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/rmaxey/tradelog/pkg/id"
)

// UnknownType is the sentinel assigned when the trade type is left blank.
// A blank type is a data-quality default, not a validation failure.
const UnknownType = "Unknown"

// TradeRecord is a single entry in the ledger. Balance is the account balance
// after this trade is applied; in derived mode it is a prefix sum of PnL and
// never entered directly. ID is a session-scoped identity used to resolve
// edits against filtered views; the CSV store does not persist it.
type TradeRecord struct {
	ID          string
	Timestamp   time.Time
	TradeType   string
	Description string
	PnL         decimal.Decimal
	Balance     decimal.Decimal
}

// Entry is a validated field set ready to be applied by the Engine. A nil
// Balance selects derived running-balance mode; a non-nil one is stored as
// given without recomputation.
type Entry struct {
	Timestamp   time.Time
	TradeType   string
	Description string
	PnL         decimal.Decimal
	Balance     *decimal.Decimal
}

var (
	dateLayouts  = []string{"2006-01-02", "2006/01/02", "01/02/2006"}
	clockLayouts = []string{"15:04:05", "15:04"}
)

// ValidateEntry combines raw field values into an Entry. Date and time must
// both parse into one instant (ErrInvalidTimestamp otherwise), pnl must be a
// decimal number (ErrInvalidAmount), and an empty trade type is normalized to
// UnknownType. balance may be empty, which selects derived mode.
func ValidateEntry(date, clock, tradeType, description, pnl, balance string) (Entry, error) {
	ts, err := parseTimestamp(date, clock)
	if err != nil {
		return Entry{}, err
	}
	amount, err := parseAmount(pnl)
	if err != nil {
		return Entry{}, err
	}

	e := Entry{
		Timestamp:   ts,
		TradeType:   normalizeType(tradeType),
		Description: description,
		PnL:         amount,
	}
	if strings.TrimSpace(balance) != "" {
		b, err := parseAmount(balance)
		if err != nil {
			return Entry{}, err
		}
		e.Balance = &b
	}
	return e, nil
}

func normalizeType(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return UnknownType
	}
	return s
}

func parseTimestamp(date, clock string) (time.Time, error) {
	date = strings.TrimSpace(date)
	clock = strings.TrimSpace(clock)
	if date == "" || clock == "" {
		return time.Time{}, fmt.Errorf("%w: date and time are both required", ErrInvalidTimestamp)
	}

	var d time.Time
	var err error
	for _, layout := range dateLayouts {
		if d, err = time.Parse(layout, date); err == nil {
			break
		}
	}
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: unparseable date %q", ErrInvalidTimestamp, date)
	}

	var c time.Time
	for _, layout := range clockLayouts {
		if c, err = time.Parse(layout, clock); err == nil {
			break
		}
	}
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: unparseable time %q", ErrInvalidTimestamp, clock)
	}

	return time.Date(d.Year(), d.Month(), d.Day(), c.Hour(), c.Minute(), c.Second(), 0, time.UTC), nil
}

func parseAmount(s string) (decimal.Decimal, error) {
	v, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("%w: %q is not a number", ErrInvalidAmount, s)
	}
	return v, nil
}

// record materializes the entry as a TradeRecord with a fresh identity.
// Balance is left for the engine to fill in.
func (e Entry) record() TradeRecord {
	return TradeRecord{
		ID:          id.New(),
		Timestamp:   e.Timestamp,
		TradeType:   e.TradeType,
		Description: e.Description,
		PnL:         e.PnL,
	}
}
