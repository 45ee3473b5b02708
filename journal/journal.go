package journal

import "time"

// TradeRecord is one persisted ledger entry, tagged with the run it belongs
// to. Action is one of BUY_INIT, BUY_ADD, SELL_ALL. Size is shares or lots
// depending on the run's mode; Cost is set on buys, PnL on sells.
type TradeRecord struct {
	TradeID string
	RunID   string
	Time    time.Time
	Action  string
	Price   float64
	Size    float64
	Cost    float64
	PnL     float64
}

// EquitySnapshot is one persisted point of a run's equity curve.
type EquitySnapshot struct {
	RunID  string
	Time   time.Time
	Equity float64
}

// BacktestRun is the summary row for one completed run: the configuration it
// ran with plus the figures derived from its ledger.
type BacktestRun struct {
	RunID   string
	Created time.Time
	Mode    string
	Dataset string

	InitialAmount float64
	AddAmount     float64
	InitialLots   int
	LotValue      float64
	DropPct       float64
	ProfitPct     float64

	Start time.Time
	End   time.Time
	Bars  int

	Trades      int
	Wins        int
	Losses      int
	RealizedPL  float64
	FinalEquity float64
	ReturnPct   float64
	WinRate     float64
}

type Journal interface {
	RecordTrade(TradeRecord) error
	RecordEquity(EquitySnapshot) error
	Close() error
}

// RunRecorder is implemented by backends that persist run summaries in
// addition to the ledger and equity curve.
type RunRecorder interface {
	RecordRun(BacktestRun) error
}
