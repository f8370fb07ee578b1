package fetcher

import (
	"sort"
	"time"

	"StockPrep/internal/model"
)

// Fetcher defines the interface for fetching raw price data. Implementations
// return a date-indexed table with one column per requested symbol where data
// exists; columns may be a subset and values may be NaN.
type Fetcher interface {
	Fetch(symbols []string, start, end time.Time) (*model.PriceTable, error)
	Name() string
}

// buildTable joins per-symbol date->price maps on the union of their dates,
// sorted ascending, with NaN where a symbol has no value.
func buildTable(symbols []string, series map[string]map[time.Time]float64) *model.PriceTable {
	seen := make(map[time.Time]bool)
	var dates []time.Time
	for _, points := range series {
		for d := range points {
			if !seen[d] {
				seen[d] = true
				dates = append(dates, d)
			}
		}
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })

	table := model.NewPriceTable(dates, symbols)
	for sym, points := range series {
		col := table.Columns[sym]
		for i, d := range dates {
			if v, ok := points[d]; ok {
				col[i] = v
			}
		}
	}
	return table
}

// dateOnly truncates a timestamp to midnight UTC so bars from different
// sources index identically.
func dateOnly(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
