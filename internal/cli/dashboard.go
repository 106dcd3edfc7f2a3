package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/rmaxey/tradelog/ledger"
)

func newDashboardCmd(rc *RootConfig) *cobra.Command {
	ff := &filterFlags{}
	var showSeries bool

	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Show performance KPIs over the filtered window",
		RunE: func(cmd *cobra.Command, args []string) error {
			spec, err := ff.spec()
			if err != nil {
				return err
			}

			cfg, err := rc.resolveConfig()
			if err != nil {
				return err
			}

			eng, closeStore, err := rc.openEngine()
			if err != nil {
				return err
			}
			defer closeStore()

			snapshot := eng.Snapshot()
			if len(snapshot) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "no trades yet; record one with 'tradelog add'")
				return nil
			}

			view := ledger.Filter(snapshot, spec)
			if len(view) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "no data available for the selected filters")
				return nil
			}

			out := cmd.OutOrStdout()
			renderKPIs(out, cfg.Display.Currency, ledger.ComputeKPIs(view, time.Now()))
			if showSeries {
				fmt.Fprintln(out)
				renderSeries(out, ledger.CumulativeSeries(view))
			}
			return nil
		},
	}

	ff.register(cmd)
	cmd.Flags().BoolVar(&showSeries, "series", false, "Also print the cumulative-PnL series")
	return cmd
}
