package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rmaxey/tradelog/ledger"
)

func newListCmd(rc *RootConfig) *cobra.Command {
	ff := &filterFlags{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Show the filtered trade table",
		RunE: func(cmd *cobra.Command, args []string) error {
			spec, err := ff.spec()
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
			renderTable(cmd.OutOrStdout(), view)
			return nil
		},
	}

	ff.register(cmd)
	return cmd
}
