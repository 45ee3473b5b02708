package journal

import (
	"database/sql"

	_ "github.com/mattn/go-sqlite3"
)

// SQLite journals runs, trades, and equity snapshots to a SQLite database.
type SQLite struct {
	db *sql.DB
}

func NewSQLite(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}

	if _, err := db.Exec(Schema); err != nil {
		db.Close()
		return nil, err
	}

	return &SQLite{db: db}, nil
}

func (j *SQLite) RecordTrade(t TradeRecord) error {
	_, err := j.db.Exec(`
		INSERT INTO trades
		(trade_id, run_id, time, action, price, size, cost, pnl)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		t.TradeID, t.RunID, t.Time, t.Action, t.Price, t.Size, t.Cost, t.PnL,
	)
	return err
}

func (j *SQLite) RecordEquity(e EquitySnapshot) error {
	_, err := j.db.Exec(`
		INSERT INTO equity (run_id, time, equity)
		VALUES (?, ?, ?)`,
		e.RunID, e.Time, e.Equity,
	)
	return err
}

func (j *SQLite) RecordRun(r BacktestRun) error {
	_, err := j.db.Exec(`
		INSERT INTO runs
		(run_id, created, mode, dataset,
		 initial_amount, add_amount, initial_lots, lot_value, drop_pct, profit_pct,
		 start_time, end_time, bars,
		 trades, wins, losses, realized_pl, final_equity, return_pct, win_rate)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.RunID, r.Created, r.Mode, r.Dataset,
		r.InitialAmount, r.AddAmount, r.InitialLots, r.LotValue, r.DropPct, r.ProfitPct,
		r.Start, r.End, r.Bars,
		r.Trades, r.Wins, r.Losses, r.RealizedPL, r.FinalEquity, r.ReturnPct, r.WinRate,
	)
	return err
}

func (j *SQLite) Close() error {
	return j.db.Close()
}
