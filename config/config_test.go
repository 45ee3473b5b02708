package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsValid(t *testing.T) {
	t.Parallel()

	assert.NoError(t, Default().Validate())
}

func TestValidateRejectsBadValues(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"unknown mode", func(c *Config) { c.Strategy.Mode = "options" }},
		{"empty mode", func(c *Config) { c.Strategy.Mode = "" }},
		{"zero initial amount", func(c *Config) { c.Strategy.InitialAmount = 0 }},
		{"drop out of range", func(c *Config) { c.Strategy.DropPct = 0 }},
		{"profit out of range", func(c *Config) { c.Strategy.ProfitPct = 120 }},
		{"missing data file", func(c *Config) { c.Data.File = "" }},
		{"bad journal type", func(c *Config) { c.Journal.Type = "parquet" }},
		{"csv without paths", func(c *Config) { c.Journal.TradesFile = "" }},
		{"sqlite without db path", func(c *Config) {
			c.Journal = JournalConfig{Type: "sqlite"}
		}},
		{"futures without lots", func(c *Config) {
			c.Strategy.Mode = ModeFutures
			c.Strategy.InitialLots = 0
		}},
		{"futures without lot value", func(c *Config) {
			c.Strategy.Mode = ModeFutures
			c.Strategy.LotValue = 0
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestFuturesDefaultValid(t *testing.T) {
	t.Parallel()

	cfg := Default()
	cfg.Strategy.Mode = ModeFutures
	assert.NoError(t, cfg.Validate())
}

func TestSaveAndLoadYAML(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "backtest.yaml")

	cfg := Default()
	cfg.Strategy.DropPct = 3.5
	cfg.Journal = JournalConfig{Type: "sqlite", DBPath: "./runs.sqlite"}
	require.NoError(t, cfg.SaveToFile(path))

	loaded, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestLoadJSON(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "backtest.json")

	cfg := Default()
	require.NoError(t, cfg.SaveToFile(path))

	loaded, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestLoadRejectsInvalidConfig(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("strategy:\n  mode: nope\n"), 0644))

	_, err := LoadFromFile(path)
	assert.ErrorContains(t, err, "invalid config")
}

func TestLoadMissingFile(t *testing.T) {
	t.Parallel()

	_, err := LoadFromFile(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestParamMapping(t *testing.T) {
	t.Parallel()

	s := StrategyConfig{
		Mode:          ModeFutures,
		InitialAmount: 5000,
		AddAmount:     2500,
		InitialLots:   2,
		LotValue:      50,
		DropPct:       3,
		ProfitPct:     7,
	}

	sp := s.StockParams()
	assert.Equal(t, 5000.0, sp.InitialAmount)
	assert.Equal(t, 2500.0, sp.AddAmount)
	assert.Equal(t, 3.0, sp.DropPct)
	assert.Equal(t, 7.0, sp.ProfitPct)

	fp := s.FuturesParams()
	assert.Equal(t, 2, fp.InitialLots)
	assert.Equal(t, 50.0, fp.LotValue)
	assert.Equal(t, 3.0, fp.DropPct)
	assert.Equal(t, 7.0, fp.ProfitPct)
}
