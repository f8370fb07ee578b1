package fetcher

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"StockPrep/internal/model"
)

// CSVFetcher implements Fetcher over a directory of per-symbol CSV files.
// Each symbol is read from <Dir>/<SYMBOL>.csv, which must have a header with
// "Date" and "Adj Close" columns. Empty or "nan" cells load as NaN.
type CSVFetcher struct {
	Dir string
}

// NewCSVFetcher creates a fetcher reading from the given directory.
func NewCSVFetcher(dir string) *CSVFetcher {
	return &CSVFetcher{Dir: dir}
}

func (f *CSVFetcher) Name() string { return "csv" }

// Fetch loads each symbol's file, keeps rows within [start, end], and joins
// the symbols on the union of their dates. Dates where every symbol is NaN
// are dropped.
func (f *CSVFetcher) Fetch(symbols []string, start, end time.Time) (*model.PriceTable, error) {
	lo, hi := dateOnly(start), dateOnly(end)

	series := make(map[string]map[time.Time]float64, len(symbols))
	for _, sym := range symbols {
		points, err := f.readSymbol(sym, lo, hi)
		if err != nil {
			return nil, err
		}
		series[sym] = points
	}
	return dropAllMissing(buildTable(symbols, series)), nil
}

func (f *CSVFetcher) readSymbol(symbol string, lo, hi time.Time) (map[time.Time]float64, error) {
	path := filepath.Join(f.Dir, symbol+".csv")
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("csv open %s: %w", symbol, err)
	}
	defer file.Close()

	r := csv.NewReader(file)
	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("csv header %s: %w", symbol, err)
	}

	dateCol, priceCol := -1, -1
	for i, name := range header {
		switch strings.TrimSpace(name) {
		case "Date":
			dateCol = i
		case "Adj Close":
			priceCol = i
		}
	}
	if dateCol < 0 || priceCol < 0 {
		return nil, fmt.Errorf("csv %s: missing Date or Adj Close column", symbol)
	}

	points := make(map[time.Time]float64)
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("csv read %s: %w", symbol, err)
		}
		d, err := time.Parse("2006-01-02", strings.TrimSpace(record[dateCol]))
		if err != nil {
			return nil, fmt.Errorf("csv %s: bad date %q: %w", symbol, record[dateCol], err)
		}
		d = dateOnly(d)
		if d.Before(lo) || d.After(hi) {
			continue
		}
		points[d] = parsePrice(record[priceCol])
	}
	return points, nil
}

func parsePrice(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, "nan") {
		return math.NaN()
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return math.NaN()
	}
	return v
}

// dropAllMissing removes rows where every column is NaN.
func dropAllMissing(t *model.PriceTable) *model.PriceTable {
	keep := make([]int, 0, len(t.Dates))
	for i := range t.Dates {
		for _, sym := range t.Symbols {
			if !math.IsNaN(t.Columns[sym][i]) {
				keep = append(keep, i)
				break
			}
		}
	}
	if len(keep) == len(t.Dates) {
		return t
	}

	dates := make([]time.Time, len(keep))
	for j, i := range keep {
		dates[j] = t.Dates[i]
	}
	out := model.NewPriceTable(dates, t.Symbols)
	for _, sym := range t.Symbols {
		for j, i := range keep {
			out.Columns[sym][j] = t.Columns[sym][i]
		}
	}
	return out
}
