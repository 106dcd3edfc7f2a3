package cli

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/rmaxey/tradelog/ledger"
)

func newEditCmd(rc *RootConfig) *cobra.Command {
	ff := &filterFlags{}
	var (
		date      string
		clock     string
		tradeType string
		desc      string
		pnl       string
		balance   string
	)

	cmd := &cobra.Command{
		Use:   "edit INDEX",
		Short: "Edit a trade by its row index from 'list'",
		Long: `Edit a trade addressed by its row index in a filtered view. Pass the same
--from/--to/--type flags that produced the 'list' output the index came from;
the engine resolves the row back to the underlying record by identity.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			index, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("INDEX must be a number, got %q", args[0])
			}

			spec, err := ff.spec()
			if err != nil {
				return err
			}

			eng, closeStore, err := rc.openEngine()
			if err != nil {
				return err
			}
			defer closeStore()

			view := ledger.Filter(eng.Snapshot(), spec)
			if index < 0 || index >= len(view) {
				return fmt.Errorf("%w: row %d not in the current view, re-run 'tradelog list'", ledger.ErrIndexOutOfRange, index)
			}

			// Flags left unset keep the record's current values.
			current := view[index]
			if !cmd.Flags().Changed("date") {
				date = current.Timestamp.Format("2006-01-02")
			}
			if !cmd.Flags().Changed("time") {
				clock = current.Timestamp.Format("15:04:05")
			}
			if !cmd.Flags().Changed("set-type") {
				tradeType = current.TradeType
			}
			if !cmd.Flags().Changed("desc") {
				desc = current.Description
			}
			if !cmd.Flags().Changed("pnl") {
				pnl = current.PnL.String()
			}

			entry, err := ledger.ValidateEntry(date, clock, tradeType, desc, pnl, balance)
			if err != nil {
				return err
			}

			rec, err := eng.Edit(view, index, entry)
			if errors.Is(err, ledger.ErrIndexOutOfRange) {
				return fmt.Errorf("%w; refresh the view with 'tradelog list' and retry", err)
			}
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "updated %s trade at %s: PnL %s, balance %s\n",
				rec.TradeType,
				rec.Timestamp.Format("2006-01-02 15:04:05"),
				rec.PnL.StringFixed(2),
				rec.Balance.StringFixed(2),
			)
			return nil
		},
	}

	ff.register(cmd)
	cmd.Flags().StringVar(&date, "date", "", "New trade date YYYY-MM-DD")
	cmd.Flags().StringVar(&clock, "time", "", "New trade time HH:MM:SS")
	cmd.Flags().StringVar(&tradeType, "set-type", "", "New trade type")
	cmd.Flags().StringVar(&desc, "desc", "", "New description")
	cmd.Flags().StringVar(&pnl, "pnl", "", "New profit/loss")
	cmd.Flags().StringVar(&balance, "balance", "", "Explicit balance (omit to re-derive)")

	return cmd
}
