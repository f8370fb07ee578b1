package report

import (
	"fmt"
	"math"
	"strings"
	"time"

	"StockPrep/internal/recorder"
)

// FormatLoadReport renders a one-load summary: for each symbol the latest
// price, its normalized level, and the cumulative return over the range.
func FormatLoadReport(snap *recorder.LoadSnapshot) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("StockPrep refresh | %s\n", time.Now().Format("2006-01-02 15:04")))
	b.WriteString(fmt.Sprintf("source: %s | range: %s ~ %s | rows: %d\n\n",
		snap.Source,
		snap.Start.Format("2006-01-02"), snap.End.Format("2006-01-02"),
		snap.Prices.NumRows()))

	last := snap.Prices.NumRows() - 1
	for _, sym := range snap.Prices.Symbols {
		if last < 0 {
			b.WriteString(fmt.Sprintf("  %-8s no data\n", sym))
			continue
		}
		price := snap.Prices.Columns[sym][last]
		if math.IsNaN(price) {
			b.WriteString(fmt.Sprintf("  %-8s no data for range\n", sym))
			continue
		}
		norm := snap.Normalized.Columns[sym][last]
		cum := snap.CumulativeReturns.Columns[sym][last]
		b.WriteString(fmt.Sprintf("  %-8s close %.2f | base-1.0 %.4f | cum %+.2f%%\n",
			sym, price, norm, cum*100))
	}

	return b.String()
}
