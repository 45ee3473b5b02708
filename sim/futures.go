package sim

import (
	"fmt"

	"github.com/traderlab/dipper/market"
)

// FuturesParams configures the lot-denominated engine. Each lot costs
// price * LotValue; adds are always exactly one lot.
type FuturesParams struct {
	InitialLots int     // lots bought on the opening trade
	LotValue    float64 // contract multiplier per lot
	DropPct     float64 // drawdown from the last entry that triggers an add, in (0,100]
	ProfitPct   float64 // gain over the average entry that triggers liquidation, in (0,100]
}

func (p FuturesParams) validate() error {
	if p.InitialLots < 1 {
		return fmt.Errorf("initial lots must be at least 1, got %d", p.InitialLots)
	}
	if p.LotValue <= 0 {
		return fmt.Errorf("lot value must be positive, got %v", p.LotValue)
	}
	if p.DropPct <= 0 || p.DropPct > 100 {
		return fmt.Errorf("drop pct must be in (0,100], got %v", p.DropPct)
	}
	if p.ProfitPct <= 0 || p.ProfitPct > 100 {
		return fmt.Errorf("profit pct must be in (0,100], got %v", p.ProfitPct)
	}
	return nil
}

// FuturesEngine simulates buy-the-dip / sell-on-profit on a fixed-lot-size
// instrument. Control flow is identical to StockEngine with an integer lot
// count in place of fractional shares.
type FuturesEngine struct {
	p FuturesParams
}

// NewFutures rejects invalid parameters before any run.
func NewFutures(p FuturesParams) (*FuturesEngine, error) {
	if err := p.validate(); err != nil {
		return nil, fmt.Errorf("futures params: %w", err)
	}
	return &FuturesEngine{p: p}, nil
}

// lots stays a non-negative integer; fractional lot counts are not valid
// states.
type futuresPosition struct {
	open      bool
	costBasis float64
	lots      int
	lastEntry float64
}

// Run replays the strategy over prices, strictly in input order, with the
// same bar handling and add-before-profit ordering as StockEngine.Run.
// Ledger entries record the lot count held after the trade; a BuyAdd's Cost
// is the single added lot's cost.
func (e *FuturesEngine) Run(prices market.Series) *Result {
	res := &Result{}

	var (
		pos      futuresPosition
		realized float64
	)

	for _, bar := range prices {
		if !bar.Valid() {
			continue
		}

		if !pos.open {
			cost := float64(e.p.InitialLots) * bar.Price * e.p.LotValue
			pos = futuresPosition{
				open:      true,
				costBasis: cost,
				lots:      e.p.InitialLots,
				lastEntry: bar.Price,
			}
			res.Trades = append(res.Trades, Trade{
				Time:   bar.Time,
				Action: BuyInit,
				Price:  bar.Price,
				Size:   float64(pos.lots),
				Cost:   cost,
			})
		} else {
			drop := (pos.lastEntry - bar.Price) / pos.lastEntry * 100
			if drop >= e.p.DropPct {
				added := bar.Price * e.p.LotValue
				pos.lots++
				pos.costBasis += added
				pos.lastEntry = bar.Price
				res.Trades = append(res.Trades, Trade{
					Time:   bar.Time,
					Action: BuyAdd,
					Price:  bar.Price,
					Size:   float64(pos.lots),
					Cost:   added,
				})
			}

			avg := pos.costBasis / (float64(pos.lots) * e.p.LotValue)
			if bar.Price >= avg*(1+e.p.ProfitPct/100) {
				pnl := float64(pos.lots)*bar.Price*e.p.LotValue - pos.costBasis
				realized += pnl
				res.Trades = append(res.Trades, Trade{
					Time:   bar.Time,
					Action: SellAll,
					Price:  bar.Price,
					Size:   float64(pos.lots),
					PnL:    pnl,
				})
				pos = futuresPosition{}
			}
		}

		equity := realized
		if pos.open {
			equity += float64(pos.lots) * bar.Price * e.p.LotValue
		}
		res.Equity = append(res.Equity, EquityPoint{Time: bar.Time, Equity: equity})
	}

	return res
}
