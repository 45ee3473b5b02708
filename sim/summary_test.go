package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarizeTwoWinningCycles(t *testing.T) {
	t.Parallel()

	res := defaultStock(t).Run(daily(t, 100, 105, 100, 105))

	require.Equal(t, []Action{BuyInit, SellAll, BuyInit, SellAll}, actions(res.Trades))

	s := Summarize(res)
	assert.Equal(t, 4, s.Trades)
	assert.Equal(t, 2, s.Buys)
	assert.Equal(t, 2, s.Sells)
	assert.Equal(t, 2, s.Wins)
	assert.Equal(t, 0, s.Losses)
	assert.Equal(t, 1.0, s.WinRate)
	assert.InDelta(t, 1000.0, s.RealizedPL, 1e-9) // 500 per cycle
	assert.InDelta(t, 1000.0, s.FinalEquity, 1e-9)
}

func TestSummarizeOpenPosition(t *testing.T) {
	t.Parallel()

	res := defaultStock(t).Run(daily(t, 100, 100))

	s := Summarize(res)
	assert.Equal(t, 1, s.Trades)
	assert.Equal(t, 1, s.Buys)
	assert.Equal(t, 0, s.Sells)
	assert.Equal(t, 0.0, s.WinRate)
	assert.InDelta(t, 10000.0, s.FinalEquity, 1e-9)
}

func TestSummarizeEmptyRun(t *testing.T) {
	t.Parallel()

	s := Summarize(&Result{})
	assert.Zero(t, s)
}
