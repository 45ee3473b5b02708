package journal

import (
	"database/sql"
	"fmt"
)

const runColumns = `run_id, created, mode, dataset,
	initial_amount, add_amount, initial_lots, lot_value, drop_pct, profit_pct,
	start_time, end_time, bars,
	trades, wins, losses, realized_pl, final_equity, return_pct, win_rate`

func scanRun(row interface{ Scan(...any) error }) (BacktestRun, error) {
	var r BacktestRun
	err := row.Scan(
		&r.RunID, &r.Created, &r.Mode, &r.Dataset,
		&r.InitialAmount, &r.AddAmount, &r.InitialLots, &r.LotValue, &r.DropPct, &r.ProfitPct,
		&r.Start, &r.End, &r.Bars,
		&r.Trades, &r.Wins, &r.Losses, &r.RealizedPL, &r.FinalEquity, &r.ReturnPct, &r.WinRate,
	)
	return r, err
}

// GetRun returns a single run summary by ID.
func (j *SQLite) GetRun(runID string) (BacktestRun, error) {
	row := j.db.QueryRow(`SELECT `+runColumns+` FROM runs WHERE run_id = ?`, runID)

	r, err := scanRun(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return BacktestRun{}, fmt.Errorf("run %q not found", runID)
		}
		return BacktestRun{}, err
	}
	return r, nil
}

// ListRuns returns the most recent run summaries, newest first.
func (j *SQLite) ListRuns(limit int) ([]BacktestRun, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := j.db.Query(`SELECT `+runColumns+` FROM runs ORDER BY created DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []BacktestRun
	for rows.Next() {
		r, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// GetTrade returns a single trade record by ID.
func (j *SQLite) GetTrade(tradeID string) (TradeRecord, error) {
	var rec TradeRecord

	row := j.db.QueryRow(`
		SELECT trade_id, run_id, time, action, price, size, cost, pnl
		FROM trades
		WHERE trade_id = ?`, tradeID)

	err := row.Scan(
		&rec.TradeID,
		&rec.RunID,
		&rec.Time,
		&rec.Action,
		&rec.Price,
		&rec.Size,
		&rec.Cost,
		&rec.PnL,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return TradeRecord{}, fmt.Errorf("trade %q not found", tradeID)
		}
		return TradeRecord{}, err
	}
	return rec, nil
}

// ListTradesByRun returns a run's ledger in timestamp order. Trade IDs are
// monotonic ULIDs, so they break ties between same-bar entries in insertion
// order.
func (j *SQLite) ListTradesByRun(runID string) ([]TradeRecord, error) {
	rows, err := j.db.Query(`
		SELECT trade_id, run_id, time, action, price, size, cost, pnl
		FROM trades
		WHERE run_id = ?
		ORDER BY time ASC, trade_id ASC`, runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []TradeRecord
	for rows.Next() {
		var rec TradeRecord
		if err := rows.Scan(
			&rec.TradeID,
			&rec.RunID,
			&rec.Time,
			&rec.Action,
			&rec.Price,
			&rec.Size,
			&rec.Cost,
			&rec.PnL,
		); err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

// ListEquityByRun returns a run's equity curve in timestamp order.
func (j *SQLite) ListEquityByRun(runID string) ([]EquitySnapshot, error) {
	rows, err := j.db.Query(`
		SELECT run_id, time, equity
		FROM equity
		WHERE run_id = ?
		ORDER BY time ASC`, runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []EquitySnapshot
	for rows.Next() {
		var e EquitySnapshot
		if err := rows.Scan(&e.RunID, &e.Time, &e.Equity); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}
