package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/rmaxey/tradelog/ledger"
)

// renderTable prints a filtered view with its row indices, which are the
// indices the edit command accepts.
func renderTable(w io.Writer, view ledger.Ledger) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tDate\tTime\tType\tDescription\tPnL\tBalance")
	for i, rec := range view {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\t%s\n",
			i,
			rec.Timestamp.Format("2006-01-02"),
			rec.Timestamp.Format("15:04:05"),
			rec.TradeType,
			rec.Description,
			rec.PnL.StringFixed(2),
			rec.Balance.StringFixed(2),
		)
	}
	tw.Flush()
}

func renderKPIs(w io.Writer, currency string, kpi ledger.KPISet) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "Balance\t%s%s\n", currency, kpi.CurrentBalance.StringFixed(2))
	fmt.Fprintf(tw, "PnL This Month\t%s%s\n", currency, kpi.MonthlyPnL.StringFixed(2))
	fmt.Fprintf(tw, "PnL This Year\t%s%s\n", currency, kpi.YearlyPnL.StringFixed(2))
	fmt.Fprintf(tw, "Win Rate\t%.2f%%\n", kpi.WinRate)
	fmt.Fprintf(tw, "Total Trades\t%d\n", kpi.TotalTrades)
	tw.Flush()
}

func renderSeries(w io.Writer, series []ledger.SeriesPoint) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "Date\tCumulative PnL")
	for _, pt := range series {
		fmt.Fprintf(tw, "%s\t%s\n",
			pt.Timestamp.Format("2006-01-02 15:04:05"),
			pt.CumulativePnL.StringFixed(2),
		)
	}
	tw.Flush()
}
