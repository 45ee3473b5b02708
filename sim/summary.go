package sim

// Summary holds the figures directly derivable from one run's ledger and
// equity curve. Anything statistical beyond these belongs to downstream
// tooling.
type Summary struct {
	Trades      int // total ledger entries
	Buys        int // BUY_INIT + BUY_ADD entries
	Sells       int // completed position cycles
	Wins        int // sells with positive P/L
	Losses      int
	WinRate     float64 // wins / sells, 0 when nothing was sold
	RealizedPL  float64
	FinalEquity float64 // last equity point, 0 for an empty run
}

// Summarize derives a Summary from a finished run.
func Summarize(res *Result) Summary {
	var s Summary

	s.Trades = len(res.Trades)
	for _, t := range res.Trades {
		switch t.Action {
		case SellAll:
			s.Sells++
			s.RealizedPL += t.PnL
			if t.PnL > 0 {
				s.Wins++
			} else {
				s.Losses++
			}
		default:
			s.Buys++
		}
	}
	if s.Sells > 0 {
		s.WinRate = float64(s.Wins) / float64(s.Sells)
	}
	if n := len(res.Equity); n > 0 {
		s.FinalEquity = res.Equity[n-1].Equity
	}
	return s
}
