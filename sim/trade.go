package sim

import "time"

// Action identifies what a ledger entry did to the position.
type Action string

const (
	BuyInit Action = "BUY_INIT" // opened a new position
	BuyAdd  Action = "BUY_ADD"  // added to an open position on a dip
	SellAll Action = "SELL_ALL" // liquidated the whole position
)

// Trade is one immutable ledger entry. Size is shares for the stock engine;
// for the futures engine it is the lot count held after the trade. Cost is
// set on buys, PnL on sells.
type Trade struct {
	Time   time.Time
	Action Action
	Price  float64
	Size   float64
	Cost   float64
	PnL    float64
}

// EquityPoint is the account value after one processed bar: cumulative
// realized P/L plus the mark-to-market value of any open position at that
// bar's price.
type EquityPoint struct {
	Time   time.Time
	Equity float64
}

// Result is the full output of one engine run: the ordered trade ledger and
// the per-bar equity curve. Both are fully materialized before Run returns.
type Result struct {
	Trades []Trade
	Equity []EquityPoint
}
