package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/traderlab/dipper/sim"
)

// Trading modes.
const (
	ModeStock   = "stock"
	ModeFutures = "futures"
)

// Config is the complete backtest configuration.
type Config struct {
	Strategy StrategyConfig `json:"strategy" yaml:"strategy"`
	Data     DataConfig     `json:"data" yaml:"data"`
	Journal  JournalConfig  `json:"journal" yaml:"journal"`
}

// StrategyConfig holds the engine parameters. InitialAmount and AddAmount
// apply in stock mode; InitialLots and LotValue in futures mode (futures
// always add exactly one lot per dip).
type StrategyConfig struct {
	Mode          string  `json:"mode" yaml:"mode"`
	InitialAmount float64 `json:"initial_amount,omitempty" yaml:"initial_amount,omitempty"`
	AddAmount     float64 `json:"add_amount,omitempty" yaml:"add_amount,omitempty"`
	InitialLots   int     `json:"initial_lots,omitempty" yaml:"initial_lots,omitempty"`
	LotValue      float64 `json:"lot_value,omitempty" yaml:"lot_value,omitempty"`
	DropPct       float64 `json:"drop_pct" yaml:"drop_pct"`
	ProfitPct     float64 `json:"profit_pct" yaml:"profit_pct"`
}

// DataConfig points at the price series input.
type DataConfig struct {
	File string `json:"file" yaml:"file"`
}

// JournalConfig selects where the ledger and equity curve are persisted.
type JournalConfig struct {
	Type       string `json:"type" yaml:"type"` // "csv" or "sqlite"
	TradesFile string `json:"trades_file,omitempty" yaml:"trades_file,omitempty"`
	EquityFile string `json:"equity_file,omitempty" yaml:"equity_file,omitempty"`
	DBPath     string `json:"db_path,omitempty" yaml:"db_path,omitempty"`
}

// StockParams maps the strategy section onto engine parameters.
func (s StrategyConfig) StockParams() sim.StockParams {
	return sim.StockParams{
		InitialAmount: s.InitialAmount,
		AddAmount:     s.AddAmount,
		DropPct:       s.DropPct,
		ProfitPct:     s.ProfitPct,
	}
}

// FuturesParams maps the strategy section onto engine parameters.
func (s StrategyConfig) FuturesParams() sim.FuturesParams {
	return sim.FuturesParams{
		InitialLots: s.InitialLots,
		LotValue:    s.LotValue,
		DropPct:     s.DropPct,
		ProfitPct:   s.ProfitPct,
	}
}

// LoadFromFile loads configuration from a file (YAML or JSON).
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	cfg := &Config{}

	// Try YAML first, fall back to JSON.
	if err := yaml.Unmarshal(data, cfg); err != nil {
		if jerr := json.Unmarshal(data, cfg); jerr != nil {
			return nil, fmt.Errorf("parse config (tried YAML and JSON): %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// SaveToFile saves configuration to a file (format chosen by extension,
// JSON unless the path ends in .yaml/.yml).
func (c *Config) SaveToFile(path string) error {
	var (
		data []byte
		err  error
	)
	if strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml") {
		data, err = yaml.Marshal(c)
	} else {
		data, err = json.MarshalIndent(c, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}
	return nil
}

// Validate checks the configuration. Parameter domains are enforced by the
// engine constructors so a run can never start with out-of-range thresholds;
// nothing is clamped.
func (c *Config) Validate() error {
	switch c.Strategy.Mode {
	case ModeStock:
		if _, err := sim.NewStock(c.Strategy.StockParams()); err != nil {
			return err
		}
	case ModeFutures:
		if _, err := sim.NewFutures(c.Strategy.FuturesParams()); err != nil {
			return err
		}
	default:
		return fmt.Errorf("strategy.mode must be %q or %q, got %q", ModeStock, ModeFutures, c.Strategy.Mode)
	}

	if c.Data.File == "" {
		return fmt.Errorf("data.file is required")
	}

	switch c.Journal.Type {
	case "csv":
		if c.Journal.TradesFile == "" || c.Journal.EquityFile == "" {
			return fmt.Errorf("journal trades_file and equity_file required for CSV type")
		}
	case "sqlite":
		if c.Journal.DBPath == "" {
			return fmt.Errorf("journal db_path required for SQLite type")
		}
	default:
		return fmt.Errorf("journal.type must be 'csv' or 'sqlite'")
	}

	return nil
}

// Default returns a configuration with sensible defaults.
func Default() *Config {
	return &Config{
		Strategy: StrategyConfig{
			Mode:          ModeStock,
			InitialAmount: 10000,
			AddAmount:     10000,
			InitialLots:   1,
			LotValue:      1,
			DropPct:       2,
			ProfitPct:     5,
		},
		Data: DataConfig{
			File: "./prices.csv",
		},
		Journal: JournalConfig{
			Type:       "csv",
			TradesFile: "./trades.csv",
			EquityFile: "./equity.csv",
		},
	}
}
