package backtest

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/traderlab/dipper/config"
	"github.com/traderlab/dipper/journal"
	"github.com/traderlab/dipper/market"
)

type testJournal struct {
	trades []journal.TradeRecord
	equity []journal.EquitySnapshot
	closed bool
}

func (j *testJournal) RecordTrade(rec journal.TradeRecord) error {
	j.trades = append(j.trades, rec)
	return nil
}

func (j *testJournal) RecordEquity(rec journal.EquitySnapshot) error {
	j.equity = append(j.equity, rec)
	return nil
}

func (j *testJournal) Close() error {
	j.closed = true
	return nil
}

// recordingJournal also captures run summaries.
type recordingJournal struct {
	testJournal
	runs []journal.BacktestRun
}

func (j *recordingJournal) RecordRun(r journal.BacktestRun) error {
	j.runs = append(j.runs, r)
	return nil
}

func daily(t *testing.T, prices ...float64) market.Series {
	t.Helper()
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	s := make(market.Series, len(prices))
	for i, p := range prices {
		s[i] = market.PricePoint{Time: start.AddDate(0, 0, i), Price: p}
	}
	return s
}

func stockConfig() *config.Config {
	cfg := config.Default()
	cfg.Data.File = "test.csv"
	return cfg
}

func TestRunJournalsLedgerAndEquity(t *testing.T) {
	t.Parallel()

	j := &testJournal{}
	prices := daily(t, 100, 105, 100)

	run, err := Run(stockConfig(), prices, j)
	require.NoError(t, err)

	// BUY_INIT, SELL_ALL at +5%, then a fresh BUY_INIT.
	require.Len(t, j.trades, 3)
	assert.Equal(t, "BUY_INIT", j.trades[0].Action)
	assert.Equal(t, "SELL_ALL", j.trades[1].Action)
	assert.Equal(t, "BUY_INIT", j.trades[2].Action)
	require.Len(t, j.equity, 3)

	// All records share the run's ID; trade IDs are unique.
	assert.NotEmpty(t, run.RunID)
	seen := map[string]bool{}
	for _, tr := range j.trades {
		assert.Equal(t, run.RunID, tr.RunID)
		assert.False(t, seen[tr.TradeID])
		seen[tr.TradeID] = true
	}
	for _, ep := range j.equity {
		assert.Equal(t, run.RunID, ep.RunID)
	}

	assert.Equal(t, "stock", run.Mode)
	assert.Equal(t, "test.csv", run.Dataset)
	assert.Equal(t, 3, run.Bars)
	assert.Equal(t, 3, run.Trades)
	assert.Equal(t, 1, run.Wins)
	assert.Equal(t, 0, run.Losses)
	assert.InDelta(t, 500.0, run.RealizedPL, 1e-9)
	assert.InDelta(t, 10500.0, run.FinalEquity, 1e-9)
	assert.InDelta(t, 5.0, run.ReturnPct, 1e-9)
	assert.Equal(t, prices[0].Time, run.Start)
	assert.Equal(t, prices[2].Time, run.End)
}

func TestRunRecordsSummaryWhenSupported(t *testing.T) {
	t.Parallel()

	j := &recordingJournal{}

	run, err := Run(stockConfig(), daily(t, 100, 105), j)
	require.NoError(t, err)

	require.Len(t, j.runs, 1)
	assert.Equal(t, run, j.runs[0])
}

func TestRunFuturesMode(t *testing.T) {
	t.Parallel()

	cfg := stockConfig()
	cfg.Strategy.Mode = config.ModeFutures

	j := &testJournal{}
	run, err := Run(cfg, daily(t, 100, 95, 103), j)
	require.NoError(t, err)

	require.Len(t, j.trades, 3) // init, add, sell
	assert.Equal(t, "BUY_ADD", j.trades[1].Action)
	assert.InDelta(t, 11.0, run.RealizedPL, 1e-9)

	// Outlay for futures is the opening lot cost.
	assert.InDelta(t, (11.0-100)/100*100, run.ReturnPct, 1e-9)
}

func TestRunEmptySeries(t *testing.T) {
	t.Parallel()

	j := &recordingJournal{}
	run, err := Run(stockConfig(), nil, j)
	require.NoError(t, err)

	assert.Empty(t, j.trades)
	assert.Empty(t, j.equity)
	assert.Equal(t, 0, run.Trades)
	assert.Equal(t, 0, run.Bars)
	assert.Zero(t, run.ReturnPct)
	assert.True(t, run.Start.IsZero())
}

func TestRunRejectsInvalidParams(t *testing.T) {
	t.Parallel()

	cfg := stockConfig()
	cfg.Strategy.DropPct = 0

	j := &testJournal{}
	_, err := Run(cfg, daily(t, 100), j)
	assert.Error(t, err)
	assert.Empty(t, j.trades)
}

func TestPrintRun(t *testing.T) {
	t.Parallel()

	j := &testJournal{}
	run, err := Run(stockConfig(), daily(t, 100, 105), j)
	require.NoError(t, err)

	var b strings.Builder
	PrintRun(&b, run)
	out := b.String()

	assert.Contains(t, out, run.RunID)
	assert.Contains(t, out, "Mode:          stock")
	assert.Contains(t, out, "Realized P/L:  500.00")
	assert.Contains(t, out, "Win Rate:      100.0%")
}
