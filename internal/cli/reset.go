package cli

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rmaxey/tradelog/ledger"
)

func newResetCmd(rc *RootConfig) *cobra.Command {
	var acknowledged bool

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Delete every trade and the persisted ledger",
		Long: `Reset is irreversible and guarded by a two-step confirmation: the --yes
flag acknowledges the deletion, and a typed RESET confirms it. Anything short
of the full sequence leaves the ledger untouched.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			eng, closeStore, err := rc.openEngine()
			if err != nil {
				return err
			}
			defer closeStore()

			var gate ledger.ResetGate
			gate.Request()

			if !acknowledged {
				gate.Cancel()
				return fmt.Errorf("refusing to reset: pass --yes to acknowledge that every trade will be deleted")
			}
			gate.Acknowledge()

			fmt.Fprint(cmd.OutOrStdout(), "Type RESET to confirm: ")
			line, _ := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
			if strings.TrimSpace(line) != "RESET" {
				gate.Cancel()
				fmt.Fprintln(cmd.OutOrStdout(), "cancelled, ledger untouched")
				return nil
			}
			if !gate.Confirm() {
				fmt.Fprintln(cmd.OutOrStdout(), "cancelled, ledger untouched")
				return nil
			}

			if err := gate.Execute(eng.ResetAll); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "ledger reset")
			return nil
		},
	}

	cmd.Flags().BoolVar(&acknowledged, "yes", false, "Acknowledge that the reset is irreversible")
	return cmd
}
