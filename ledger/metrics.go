package ledger

import (
	"time"

	"github.com/shopspring/decimal"
)

// FilterSpec is the ephemeral dashboard window: inclusive date bounds plus a
// trade-type set. A zero Start or End leaves that side unbounded; an empty
// type set keeps every type. A FilterSpec never mutates the ledger.
type FilterSpec struct {
	Start      time.Time
	End        time.Time
	TradeTypes []string
}

func (f FilterSpec) matches(rec TradeRecord) bool {
	d := dateOf(rec.Timestamp)
	if !f.Start.IsZero() && d.Before(dateOf(f.Start)) {
		return false
	}
	if !f.End.IsZero() && d.After(dateOf(f.End)) {
		return false
	}
	if len(f.TradeTypes) == 0 {
		return true
	}
	for _, t := range f.TradeTypes {
		if rec.TradeType == t {
			return true
		}
	}
	return false
}

// dateOf truncates to the calendar day; the bound comparison ignores
// time-of-day.
func dateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Filter returns the records matching spec, preserving chronological order.
// An empty result is a valid, reportable state ("no data in range"), distinct
// from an empty ledger.
func Filter(l Ledger, spec FilterSpec) Ledger {
	out := make(Ledger, 0, len(l))
	for _, rec := range l {
		if spec.matches(rec) {
			out = append(out, rec)
		}
	}
	return out
}

// KPISet is the dashboard summary block handed to the renderer.
type KPISet struct {
	CurrentBalance decimal.Decimal
	MonthlyPnL     decimal.Decimal
	YearlyPnL      decimal.Decimal
	WinRate        float64
	TotalTrades    int
}

// ComputeKPIs derives the summary metrics over subset as of now. All sums and
// counts are over the (already filtered) subset, not the full ledger. WinRate
// is zero when the subset is empty, never a division by zero.
func ComputeKPIs(subset Ledger, now time.Time) KPISet {
	kpi := KPISet{
		CurrentBalance: subset.LastBalance(),
		MonthlyPnL:     decimal.Zero,
		YearlyPnL:      decimal.Zero,
		TotalTrades:    len(subset),
	}

	monthAgo := now.AddDate(0, -1, 0)
	yearAgo := now.AddDate(-1, 0, 0)

	wins := 0
	for _, rec := range subset {
		if !rec.Timestamp.Before(monthAgo) {
			kpi.MonthlyPnL = kpi.MonthlyPnL.Add(rec.PnL)
		}
		if !rec.Timestamp.Before(yearAgo) {
			kpi.YearlyPnL = kpi.YearlyPnL.Add(rec.PnL)
		}
		if rec.PnL.IsPositive() {
			wins++
		}
	}
	if len(subset) > 0 {
		kpi.WinRate = 100 * float64(wins) / float64(len(subset))
	}
	return kpi
}

// SeriesPoint is one point of the cumulative-PnL chart series.
type SeriesPoint struct {
	Timestamp     time.Time
	CumulativePnL decimal.Decimal
}

// CumulativeSeries computes the running PnL sum over subset in chronological
// order. The sum restarts at zero for the filtered window; Balance, by
// contrast, carries the whole account history.
func CumulativeSeries(subset Ledger) []SeriesPoint {
	out := make([]SeriesPoint, 0, len(subset))
	sum := decimal.Zero
	for _, rec := range subset {
		sum = sum.Add(rec.PnL)
		out = append(out, SeriesPoint{Timestamp: rec.Timestamp, CumulativePnL: sum})
	}
	return out
}
