package backtest

import (
	"fmt"
	"time"

	"github.com/traderlab/dipper/config"
	"github.com/traderlab/dipper/journal"
	"github.com/traderlab/dipper/market"
	"github.com/traderlab/dipper/pkg/id"
	"github.com/traderlab/dipper/sim"
)

// Run executes one backtest: it dispatches to the engine selected by the
// config, journals the full ledger and equity curve under a fresh run ID,
// and returns the run summary. Backends implementing journal.RunRecorder
// also receive the summary row.
//
// The engines themselves are pure; everything nondeterministic (run and
// trade IDs, the created timestamp) is assigned here, at journaling time.
func Run(cfg *config.Config, prices market.Series, j journal.Journal) (journal.BacktestRun, error) {
	res, err := simulate(cfg.Strategy, prices)
	if err != nil {
		return journal.BacktestRun{}, err
	}

	runID := id.New()

	for _, tr := range res.Trades {
		rec := journal.TradeRecord{
			TradeID: id.New(),
			RunID:   runID,
			Time:    tr.Time,
			Action:  string(tr.Action),
			Price:   tr.Price,
			Size:    tr.Size,
			Cost:    tr.Cost,
			PnL:     tr.PnL,
		}
		if err := j.RecordTrade(rec); err != nil {
			return journal.BacktestRun{}, fmt.Errorf("record trade: %w", err)
		}
	}
	for _, ep := range res.Equity {
		snap := journal.EquitySnapshot{RunID: runID, Time: ep.Time, Equity: ep.Equity}
		if err := j.RecordEquity(snap); err != nil {
			return journal.BacktestRun{}, fmt.Errorf("record equity: %w", err)
		}
	}

	run := summarize(cfg, res)
	run.RunID = runID
	run.Created = time.Now().UTC()

	if rr, ok := j.(journal.RunRecorder); ok {
		if err := rr.RecordRun(run); err != nil {
			return journal.BacktestRun{}, fmt.Errorf("record run: %w", err)
		}
	}

	return run, nil
}

func simulate(s config.StrategyConfig, prices market.Series) (*sim.Result, error) {
	switch s.Mode {
	case config.ModeStock:
		eng, err := sim.NewStock(s.StockParams())
		if err != nil {
			return nil, err
		}
		return eng.Run(prices), nil

	case config.ModeFutures:
		eng, err := sim.NewFutures(s.FuturesParams())
		if err != nil {
			return nil, err
		}
		return eng.Run(prices), nil

	default:
		return nil, fmt.Errorf("unknown mode %q", s.Mode)
	}
}

func summarize(cfg *config.Config, res *sim.Result) journal.BacktestRun {
	sum := sim.Summarize(res)

	run := journal.BacktestRun{
		Mode:          cfg.Strategy.Mode,
		Dataset:       cfg.Data.File,
		InitialAmount: cfg.Strategy.InitialAmount,
		AddAmount:     cfg.Strategy.AddAmount,
		InitialLots:   cfg.Strategy.InitialLots,
		LotValue:      cfg.Strategy.LotValue,
		DropPct:       cfg.Strategy.DropPct,
		ProfitPct:     cfg.Strategy.ProfitPct,
		Bars:          len(res.Equity),
		Trades:        sum.Trades,
		Wins:          sum.Wins,
		Losses:        sum.Losses,
		RealizedPL:    sum.RealizedPL,
		FinalEquity:   sum.FinalEquity,
		WinRate:       sum.WinRate,
	}

	if n := len(res.Equity); n > 0 {
		run.Start = res.Equity[0].Time
		run.End = res.Equity[n-1].Time
	}

	// Return is measured against the opening trade's cost: the initial
	// currency outlay in stock mode, the initial lot cost in futures mode.
	if len(res.Trades) > 0 && res.Trades[0].Cost > 0 {
		outlay := res.Trades[0].Cost
		run.ReturnPct = (sum.FinalEquity - outlay) / outlay * 100
	}

	return run
}
