package journal

const Schema = `
CREATE TABLE IF NOT EXISTS runs (
	run_id TEXT PRIMARY KEY,
	created DATETIME NOT NULL,
	mode TEXT NOT NULL,
	dataset TEXT NOT NULL,
	initial_amount REAL NOT NULL,
	add_amount REAL NOT NULL,
	initial_lots INTEGER NOT NULL,
	lot_value REAL NOT NULL,
	drop_pct REAL NOT NULL,
	profit_pct REAL NOT NULL,
	start_time DATETIME,
	end_time DATETIME,
	bars INTEGER NOT NULL,
	trades INTEGER NOT NULL,
	wins INTEGER NOT NULL,
	losses INTEGER NOT NULL,
	realized_pl REAL NOT NULL,
	final_equity REAL NOT NULL,
	return_pct REAL NOT NULL,
	win_rate REAL NOT NULL
);

CREATE TABLE IF NOT EXISTS trades (
	trade_id TEXT PRIMARY KEY,
	run_id TEXT NOT NULL,
	time DATETIME NOT NULL,
	action TEXT NOT NULL,
	price REAL NOT NULL,
	size REAL NOT NULL,
	cost REAL NOT NULL,
	pnl REAL NOT NULL
);

CREATE TABLE IF NOT EXISTS equity (
	run_id TEXT NOT NULL,
	time DATETIME NOT NULL,
	equity REAL NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_trades_run ON trades(run_id, time);
CREATE INDEX IF NOT EXISTS idx_equity_run ON equity(run_id, time);
`
