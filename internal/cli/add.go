package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/rmaxey/tradelog/ledger"
)

func newAddCmd(rc *RootConfig) *cobra.Command {
	var (
		date      string
		clock     string
		tradeType string
		desc      string
		pnl       string
		balance   string
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record a new trade",
		RunE: func(cmd *cobra.Command, args []string) error {
			entry, err := ledger.ValidateEntry(date, clock, tradeType, desc, pnl, balance)
			if err != nil {
				return err
			}

			eng, closeStore, err := rc.openEngine()
			if err != nil {
				return err
			}
			defer closeStore()

			rec, err := eng.Append(entry)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "added %s trade at %s: PnL %s, balance %s\n",
				rec.TradeType,
				rec.Timestamp.Format("2006-01-02 15:04:05"),
				rec.PnL.StringFixed(2),
				rec.Balance.StringFixed(2),
			)
			return nil
		},
	}

	now := time.Now()
	cmd.Flags().StringVar(&date, "date", now.Format("2006-01-02"), "Trade date YYYY-MM-DD")
	cmd.Flags().StringVar(&clock, "time", now.Format("15:04:05"), "Trade time HH:MM:SS")
	cmd.Flags().StringVar(&tradeType, "type", "", "Trade type (Long, Short, ...)")
	cmd.Flags().StringVar(&desc, "desc", "", "Free-text description")
	cmd.Flags().StringVar(&pnl, "pnl", "", "Profit/loss for this trade")
	cmd.Flags().StringVar(&balance, "balance", "", "Account balance after the trade (omit to derive)")
	cmd.MarkFlagRequired("pnl")

	return cmd
}
