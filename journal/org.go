package journal

import (
	"fmt"
	"strings"
	"time"
)

// FormatTradeOrg renders a TradeRecord as an Org-mode block suitable for
// pasting into a research journal. Structured facts live in a PROPERTIES
// drawer for easy search; a Notes section is left for the researcher.
func FormatTradeOrg(t TradeRecord) string {
	var b strings.Builder

	fmt.Fprintf(&b, "** %s @ %.2f (%s)\n", t.Action, t.Price, shortID(t.TradeID))
	b.WriteString(":PROPERTIES:\n")
	fmt.Fprintf(&b, ":TRADE_ID: %s\n", t.TradeID)
	fmt.Fprintf(&b, ":RUN_ID: %s\n", t.RunID)
	fmt.Fprintf(&b, ":TIME: %s\n", t.Time.UTC().Format(time.RFC3339))
	fmt.Fprintf(&b, ":ACTION: %s\n", t.Action)
	fmt.Fprintf(&b, ":PRICE: %.4f\n", t.Price)
	fmt.Fprintf(&b, ":SIZE: %.4f\n", t.Size)
	if t.Action == "SELL_ALL" {
		fmt.Fprintf(&b, ":PNL: %.2f\n", t.PnL)
	} else {
		fmt.Fprintf(&b, ":COST: %.2f\n", t.Cost)
	}
	b.WriteString(":END:\n")
	b.WriteString("\n*** Notes\n- \n")

	return b.String()
}

// FormatTradesOrg renders multiple trades separated by blank lines.
func FormatTradesOrg(trades []TradeRecord) string {
	var b strings.Builder
	for i, t := range trades {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(FormatTradeOrg(t))
	}
	return b.String()
}

// FormatRunOrg renders a run summary as an Org-mode heading.
func FormatRunOrg(r BacktestRun) string {
	var b strings.Builder

	fmt.Fprintf(&b, "* Run %s (%s on %s)\n", shortID(r.RunID), r.Mode, r.Dataset)
	b.WriteString(":PROPERTIES:\n")
	fmt.Fprintf(&b, ":RUN_ID: %s\n", r.RunID)
	fmt.Fprintf(&b, ":CREATED: %s\n", r.Created.UTC().Format(time.RFC3339))
	fmt.Fprintf(&b, ":MODE: %s\n", r.Mode)
	fmt.Fprintf(&b, ":DROP_PCT: %.2f\n", r.DropPct)
	fmt.Fprintf(&b, ":PROFIT_PCT: %.2f\n", r.ProfitPct)
	fmt.Fprintf(&b, ":TRADES: %d\n", r.Trades)
	fmt.Fprintf(&b, ":WINS: %d\n", r.Wins)
	fmt.Fprintf(&b, ":LOSSES: %d\n", r.Losses)
	fmt.Fprintf(&b, ":REALIZED_PL: %.2f\n", r.RealizedPL)
	fmt.Fprintf(&b, ":FINAL_EQUITY: %.2f\n", r.FinalEquity)
	fmt.Fprintf(&b, ":RETURN_PCT: %.2f\n", r.ReturnPct)
	b.WriteString(":END:\n")

	return b.String()
}

func shortID(full string) string {
	if len(full) <= 8 {
		return full
	}
	return full[:8]
}
