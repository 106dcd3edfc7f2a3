package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/rmaxey/tradelog/ledger"
)

// filterFlags holds the dashboard window flags shared by list, edit and
// dashboard. The same flags that built a view must be passed back to edit so
// its row index lands on the right record.
type filterFlags struct {
	from  string
	to    string
	types []string
}

func (ff *filterFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&ff.from, "from", "", "Start date YYYY-MM-DD (inclusive)")
	cmd.Flags().StringVar(&ff.to, "to", "", "End date YYYY-MM-DD (inclusive)")
	cmd.Flags().StringSliceVar(&ff.types, "type", nil, "Trade types to include (repeatable; default all)")
}

func (ff *filterFlags) spec() (ledger.FilterSpec, error) {
	spec := ledger.FilterSpec{TradeTypes: ff.types}
	var err error
	if ff.from != "" {
		if spec.Start, err = time.Parse("2006-01-02", ff.from); err != nil {
			return ledger.FilterSpec{}, fmt.Errorf("bad --from date %q: %w", ff.from, err)
		}
	}
	if ff.to != "" {
		if spec.End, err = time.Parse("2006-01-02", ff.to); err != nil {
			return ledger.FilterSpec{}, fmt.Errorf("bad --to date %q: %w", ff.to, err)
		}
	}
	return spec, nil
}
