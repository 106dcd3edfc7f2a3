package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// RootConfig carries the persistent flag values shared by every subcommand.
type RootConfig struct {
	ConfigPath string
	DataFile   string
	DBPath     string
	StoreType  string
}

func NewRootCmd() *cobra.Command {
	rc := &RootConfig{}

	cmd := &cobra.Command{
		Use:           "tradelog",
		Short:         "Tradelog — personal trading ledger and performance dashboard",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global / persistent flags
	cmd.PersistentFlags().StringVar(&rc.ConfigPath, "config", "", "Path to config file (optional)")
	cmd.PersistentFlags().StringVar(&rc.DataFile, "data", "", "CSV ledger file (overrides config)")
	cmd.PersistentFlags().StringVar(&rc.DBPath, "db", "", "SQLite ledger database (overrides config)")
	cmd.PersistentFlags().StringVar(&rc.StoreType, "store", "", "Ledger store: csv|sqlite (overrides config)")

	// Subcommands
	cmd.AddCommand(
		newAddCmd(rc),
		newListCmd(rc),
		newEditCmd(rc),
		newDashboardCmd(rc),
		newResetCmd(rc),
	)

	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("tradelog (dev)")
		},
	})

	return cmd
}

func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
