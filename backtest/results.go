package backtest

import (
	"fmt"
	"io"
	"time"

	"github.com/traderlab/dipper/journal"
)

// PrintRun writes a human-readable run summary block.
func PrintRun(w io.Writer, r journal.BacktestRun) {
	fmt.Fprintln(w, "==================================================")
	fmt.Fprintln(w, " Backtest Result")
	fmt.Fprintln(w, "==================================================")

	fmt.Fprintf(w, "Run ID:        %s\n", r.RunID)
	fmt.Fprintf(w, "Created:       %s\n", r.Created.Format(time.RFC3339))
	fmt.Fprintf(w, "Mode:          %s\n", r.Mode)
	fmt.Fprintf(w, "Dataset:       %s\n", r.Dataset)

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Strategy Configuration")
	fmt.Fprintln(w, "--------------------------------------------------")
	switch r.Mode {
	case "futures":
		fmt.Fprintf(w, "Initial Lots:  %d\n", r.InitialLots)
		fmt.Fprintf(w, "Lot Value:     %.2f\n", r.LotValue)
	default:
		fmt.Fprintf(w, "Initial:       %.2f\n", r.InitialAmount)
		fmt.Fprintf(w, "Add on Dip:    %.2f\n", r.AddAmount)
	}
	fmt.Fprintf(w, "Drop %%:        %.2f\n", r.DropPct)
	fmt.Fprintf(w, "Profit %%:      %.2f\n", r.ProfitPct)

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Period")
	fmt.Fprintln(w, "--------------------------------------------------")
	fmt.Fprintf(w, "Start:         %s\n", r.Start.Format(time.RFC3339))
	fmt.Fprintf(w, "End:           %s\n", r.End.Format(time.RFC3339))
	fmt.Fprintf(w, "Bars:          %d\n", r.Bars)

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Results")
	fmt.Fprintln(w, "--------------------------------------------------")
	fmt.Fprintf(w, "Trades:        %d\n", r.Trades)
	fmt.Fprintf(w, "Wins/Losses:   %d/%d\n", r.Wins, r.Losses)
	if r.Wins+r.Losses > 0 {
		fmt.Fprintf(w, "Win Rate:      %.1f%%\n", r.WinRate*100)
	}
	fmt.Fprintf(w, "Realized P/L:  %.2f\n", r.RealizedPL)
	fmt.Fprintf(w, "Final Equity:  %.2f\n", r.FinalEquity)
	fmt.Fprintf(w, "Return:        %.2f%%\n", r.ReturnPct)
}
