package cmd

import (
	"github.com/spf13/cobra"

	"github.com/traderlab/dipper/pkg/logger"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "dipper",
	Short: "A buy-the-dip / sell-on-profit strategy backtester",
	Long: `Dipper simulates a buy-the-dip trading strategy over a historical
price series and produces a trade ledger and an equity curve.

It provides tools for:
  - Backtesting the strategy in stock (currency) or futures (lot) mode
  - Journaling ledgers and equity curves to CSV or SQLite
  - Querying past runs and exporting trades for review
  - Generating and validating configuration files`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return logger.Init(verbose)
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		logger.Sync()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose (development) logging")
}
