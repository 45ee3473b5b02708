package sim

import (
	"fmt"

	"github.com/traderlab/dipper/market"
)

// StockParams configures the currency-denominated engine.
type StockParams struct {
	InitialAmount float64 // spent on the opening buy
	AddAmount     float64 // spent on each dip add
	DropPct       float64 // drawdown from the last entry that triggers an add, in (0,100]
	ProfitPct     float64 // gain over the average entry that triggers liquidation, in (0,100]
}

func (p StockParams) validate() error {
	if p.InitialAmount <= 0 {
		return fmt.Errorf("initial amount must be positive, got %v", p.InitialAmount)
	}
	if p.AddAmount <= 0 {
		return fmt.Errorf("add amount must be positive, got %v", p.AddAmount)
	}
	if p.DropPct <= 0 || p.DropPct > 100 {
		return fmt.Errorf("drop pct must be in (0,100], got %v", p.DropPct)
	}
	if p.ProfitPct <= 0 || p.ProfitPct > 100 {
		return fmt.Errorf("profit pct must be in (0,100], got %v", p.ProfitPct)
	}
	return nil
}

// StockEngine simulates buy-the-dip / sell-on-profit on a divisible asset:
// open with a fixed currency amount, add the same way on each qualifying
// drawdown, liquidate everything once the price clears the average entry by
// the profit threshold.
type StockEngine struct {
	p StockParams
}

// NewStock rejects invalid parameters before any run; thresholds are never
// clamped.
func NewStock(p StockParams) (*StockEngine, error) {
	if err := p.validate(); err != nil {
		return nil, fmt.Errorf("stock params: %w", err)
	}
	return &StockEngine{p: p}, nil
}

// stockPosition is the state folded bar to bar. Invariants: open is
// equivalent to shares > 0, costBasis is 0 whenever shares is 0, and
// lastEntry is meaningful only while open.
type stockPosition struct {
	open      bool
	costBasis float64
	shares    float64
	lastEntry float64
}

// Run replays the strategy over prices, strictly in input order. Bars with a
// missing or non-positive price are skipped entirely: no state change, no
// trade, no equity entry. Within one bar an add is evaluated before the
// profit check, and the profit check uses the post-add average entry price.
// The run owns its position state exclusively and touches no clock, I/O, or
// randomness, so identical inputs always yield identical output.
func (e *StockEngine) Run(prices market.Series) *Result {
	res := &Result{}

	var (
		pos      stockPosition
		realized float64
	)

	for _, bar := range prices {
		if !bar.Valid() {
			continue
		}

		if !pos.open {
			shares := e.p.InitialAmount / bar.Price
			pos = stockPosition{
				open:      true,
				costBasis: e.p.InitialAmount,
				shares:    shares,
				lastEntry: bar.Price,
			}
			res.Trades = append(res.Trades, Trade{
				Time:   bar.Time,
				Action: BuyInit,
				Price:  bar.Price,
				Size:   shares,
				Cost:   e.p.InitialAmount,
			})
		} else {
			// Drawdown is measured from the most recent entry, not the
			// average entry or the position high. At most one add per bar.
			drop := (pos.lastEntry - bar.Price) / pos.lastEntry * 100
			if drop >= e.p.DropPct {
				added := e.p.AddAmount / bar.Price
				pos.shares += added
				pos.costBasis += e.p.AddAmount
				pos.lastEntry = bar.Price
				res.Trades = append(res.Trades, Trade{
					Time:   bar.Time,
					Action: BuyAdd,
					Price:  bar.Price,
					Size:   added,
					Cost:   e.p.AddAmount,
				})
			}

			avg := pos.costBasis / pos.shares
			if bar.Price >= avg*(1+e.p.ProfitPct/100) {
				pnl := pos.shares*bar.Price - pos.costBasis
				realized += pnl
				res.Trades = append(res.Trades, Trade{
					Time:   bar.Time,
					Action: SellAll,
					Price:  bar.Price,
					Size:   pos.shares,
					PnL:    pnl,
				})
				pos = stockPosition{}
			}
		}

		equity := realized
		if pos.open {
			equity += pos.shares * bar.Price
		}
		res.Equity = append(res.Equity, EquityPoint{Time: bar.Time, Equity: equity})
	}

	return res
}
