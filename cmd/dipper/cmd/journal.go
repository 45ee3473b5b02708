package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/traderlab/dipper/backtest"
	"github.com/traderlab/dipper/journal"
)

var journalCmd = &cobra.Command{
	Use:   "journal",
	Short: "Query journaled backtest runs",
	Long: `Query and display backtest records from a SQLite journal.

Subcommands:
  runs    - List recent runs
  run     - Show one run's summary
  trades  - Export one run's ledger as Org-mode blocks

Examples:
  dipper journal runs
  dipper journal run <run-id>
  dipper journal trades <run-id>`,
}

var journalRunsCmd = &cobra.Command{
	Use:   "runs",
	Short: "List recent runs",
	Args:  cobra.NoArgs,
	RunE:  runJournalRuns,
}

var journalRunCmd = &cobra.Command{
	Use:   "run <run-id>",
	Short: "Show one run's summary",
	Args:  cobra.ExactArgs(1),
	RunE:  runJournalRun,
}

var journalTradesCmd = &cobra.Command{
	Use:   "trades <run-id>",
	Short: "Export one run's ledger as Org-mode blocks",
	Args:  cobra.ExactArgs(1),
	RunE:  runJournalTrades,
}

var (
	journalDBPath string
	journalLimit  int
)

func init() {
	rootCmd.AddCommand(journalCmd)
	journalCmd.AddCommand(journalRunsCmd)
	journalCmd.AddCommand(journalRunCmd)
	journalCmd.AddCommand(journalTradesCmd)

	journalCmd.PersistentFlags().StringVarP(&journalDBPath, "db", "d", "./dipper.sqlite", "path to SQLite journal DB")
	journalRunsCmd.Flags().IntVarP(&journalLimit, "limit", "n", 20, "maximum runs to list")
}

func openSQLite() (*journal.SQLite, error) {
	j, err := journal.NewSQLite(journalDBPath)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	return j, nil
}

func runJournalRuns(cmd *cobra.Command, args []string) error {
	j, err := openSQLite()
	if err != nil {
		return err
	}
	defer j.Close()

	runs, err := j.ListRuns(journalLimit)
	if err != nil {
		return fmt.Errorf("list runs: %w", err)
	}
	if len(runs) == 0 {
		fmt.Println("No runs journaled yet.")
		return nil
	}

	fmt.Printf("%-28s %-8s %-22s %8s %10s %10s\n", "RUN", "MODE", "CREATED", "TRADES", "PL", "RETURN%")
	for _, r := range runs {
		fmt.Printf("%-28s %-8s %-22s %8d %10.2f %10.2f\n",
			r.RunID, r.Mode, r.Created.Format(time.RFC3339), r.Trades, r.RealizedPL, r.ReturnPct)
	}
	return nil
}

func runJournalRun(cmd *cobra.Command, args []string) error {
	j, err := openSQLite()
	if err != nil {
		return err
	}
	defer j.Close()

	run, err := j.GetRun(args[0])
	if err != nil {
		return fmt.Errorf("get run: %w", err)
	}

	backtest.PrintRun(os.Stdout, run)
	return nil
}

func runJournalTrades(cmd *cobra.Command, args []string) error {
	j, err := openSQLite()
	if err != nil {
		return err
	}
	defer j.Close()

	run, err := j.GetRun(args[0])
	if err != nil {
		return fmt.Errorf("get run: %w", err)
	}
	trades, err := j.ListTradesByRun(run.RunID)
	if err != nil {
		return fmt.Errorf("list trades: %w", err)
	}

	fmt.Println(journal.FormatRunOrg(run))
	fmt.Println(journal.FormatTradesOrg(trades))
	return nil
}
