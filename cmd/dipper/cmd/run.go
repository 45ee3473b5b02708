package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/traderlab/dipper/backtest"
	"github.com/traderlab/dipper/config"
	"github.com/traderlab/dipper/journal"
	"github.com/traderlab/dipper/market"
	"github.com/traderlab/dipper/pkg/logger"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run a backtest over a price series",
	Long: `Run replays the buy-the-dip strategy over a CSV price series
(time,price rows; .gz and .xz files are decompressed transparently) and
journals the trade ledger and equity curve.

Parameters come from a config file or from flags; flags are ignored when
--config is given.

Examples:
  dipper run --data prices.csv --mode stock --initial 10000 --add 10000 --drop 2 --profit 5
  dipper run --data gold.csv.xz --mode futures --lots 1 --lot-value 50 --journal sqlite --db runs.sqlite
  dipper run --config backtest.yaml`,
	RunE: runBacktest,
}

var (
	runConfigPath  string
	runDataPath    string
	runMode        string
	runInitial     float64
	runAdd         float64
	runLots        int
	runLotValue    float64
	runDrop        float64
	runProfit      float64
	runJournalType string
	runTradesFile  string
	runEquityFile  string
	runDBPath      string
)

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringVarP(&runConfigPath, "config", "c", "", "config file (overrides all other flags)")

	runCmd.Flags().StringVarP(&runDataPath, "data", "d", "", "price series CSV (time,price)")
	runCmd.Flags().StringVarP(&runMode, "mode", "m", config.ModeStock, "trading mode (stock, futures)")
	runCmd.Flags().Float64Var(&runInitial, "initial", 10000, "stock: initial investment")
	runCmd.Flags().Float64Var(&runAdd, "add", 10000, "stock: amount added per dip")
	runCmd.Flags().IntVar(&runLots, "lots", 1, "futures: initial lot count")
	runCmd.Flags().Float64Var(&runLotValue, "lot-value", 1, "futures: contract multiplier per lot")
	runCmd.Flags().Float64Var(&runDrop, "drop", 2, "drop percent from last entry that triggers a buy")
	runCmd.Flags().Float64Var(&runProfit, "profit", 5, "profit percent over average entry that triggers the sell")

	runCmd.Flags().StringVar(&runJournalType, "journal", "csv", "journal backend (csv, sqlite)")
	runCmd.Flags().StringVar(&runTradesFile, "trades-file", "./trades.csv", "csv journal: trades output")
	runCmd.Flags().StringVar(&runEquityFile, "equity-file", "./equity.csv", "csv journal: equity output")
	runCmd.Flags().StringVar(&runDBPath, "db", "./dipper.sqlite", "sqlite journal: database path")
}

func runBacktest(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig()
	if err != nil {
		return err
	}

	prices, err := market.LoadCSV(cfg.Data.File)
	if err != nil {
		return fmt.Errorf("load prices: %w", err)
	}
	logger.Info("loaded %d bars (%d valid) from %s", len(prices), prices.ValidBars(), cfg.Data.File)

	j, err := openJournal(cfg.Journal)
	if err != nil {
		return fmt.Errorf("open journal: %w", err)
	}
	defer j.Close()

	run, err := backtest.Run(cfg, prices, j)
	if err != nil {
		return err
	}
	logger.Info("run %s complete: %d trades, realized %.2f", run.RunID, run.Trades, run.RealizedPL)

	backtest.PrintRun(os.Stdout, run)
	return nil
}

func resolveConfig() (*config.Config, error) {
	if runConfigPath != "" {
		return config.LoadFromFile(runConfigPath)
	}

	if runDataPath == "" {
		return nil, fmt.Errorf("either --config or --data is required")
	}

	cfg := &config.Config{
		Strategy: config.StrategyConfig{
			Mode:          runMode,
			InitialAmount: runInitial,
			AddAmount:     runAdd,
			InitialLots:   runLots,
			LotValue:      runLotValue,
			DropPct:       runDrop,
			ProfitPct:     runProfit,
		},
		Data: config.DataConfig{File: runDataPath},
		Journal: config.JournalConfig{
			Type:       runJournalType,
			TradesFile: runTradesFile,
			EquityFile: runEquityFile,
			DBPath:     runDBPath,
		},
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func openJournal(jc config.JournalConfig) (journal.Journal, error) {
	switch jc.Type {
	case "csv":
		return journal.NewCSV(jc.TradesFile, jc.EquityFile)
	case "sqlite":
		return journal.NewSQLite(jc.DBPath)
	default:
		return nil, fmt.Errorf("unknown journal type %q", jc.Type)
	}
}
