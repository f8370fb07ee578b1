package series

import (
	"errors"
	"time"

	"StockPrep/internal/calculator"
	"StockPrep/internal/fetcher"
	"StockPrep/internal/model"
)

// ErrNotLoaded is returned by derived-view methods before the first
// successful Load.
var ErrNotLoaded = errors.New("no data loaded: call Load first")

// Preparer owns the fetch-clean-derive pipeline: it loads raw prices through
// an injected fetcher, fills missing values, and derives normalized price and
// return views on demand. Each instance owns its tables exclusively; derived
// views are recomputed per call and never mutate stored state.
type Preparer struct {
	fetcher fetcher.Fetcher
	raw     *model.PriceTable
	prices  *model.PriceTable
}

// NewPreparer creates a Preparer using the given fetcher.
func NewPreparer(f fetcher.Fetcher) *Preparer {
	return &Preparer{fetcher: f}
}

// Load fetches raw prices for the symbols over [start, end] and derives the
// cleaned table by forward-filling then backward-filling each column. A
// successful Load fully replaces any prior state. Fetcher errors are
// propagated unmodified; on error the prior state is kept.
func (p *Preparer) Load(symbols []string, start, end time.Time) error {
	raw, err := p.fetcher.Fetch(symbols, start, end)
	if err != nil {
		return err
	}
	p.raw = raw
	p.prices = clean(raw)
	return nil
}

// clean fills each column forward then backward. A column with no data at all
// stays entirely NaN.
func clean(raw *model.PriceTable) *model.PriceTable {
	prices := raw.Clone()
	for sym, col := range prices.Columns {
		prices.Columns[sym] = calculator.BackwardFill(calculator.ForwardFill(col))
	}
	return prices
}

// Raw returns the table as fetched, before any filling.
func (p *Preparer) Raw() (*model.PriceTable, error) {
	if p.raw == nil {
		return nil, ErrNotLoaded
	}
	return p.raw, nil
}

// Prices returns the cleaned table.
func (p *Preparer) Prices() (*model.PriceTable, error) {
	if p.prices == nil {
		return nil, ErrNotLoaded
	}
	return p.prices, nil
}

// Normalize returns the cleaned prices rescaled so every column starts at
// 1.0. A column whose first price is zero or missing comes back Inf or NaN.
func (p *Preparer) Normalize() (*model.PriceTable, error) {
	return p.derive(calculator.Normalize)
}

// DailyReturns returns the relative change between consecutive rows. Row 0 is
// NaN for every column; the row count matches Prices so the index stays
// aligned for downstream joins.
func (p *Preparer) DailyReturns() (*model.PriceTable, error) {
	return p.derive(calculator.DailyReturns)
}

// CumulativeReturns returns the total relative change from the first row,
// price[t]/price[0] - 1. Row 0 is 0; for every row the value equals
// Normalize minus one.
func (p *Preparer) CumulativeReturns() (*model.PriceTable, error) {
	return p.derive(calculator.CumulativeReturns)
}

func (p *Preparer) derive(fn func([]float64) []float64) (*model.PriceTable, error) {
	if p.prices == nil {
		return nil, ErrNotLoaded
	}
	out := model.NewPriceTable(p.prices.Dates, p.prices.Symbols)
	for sym, col := range p.prices.Columns {
		out.Columns[sym] = fn(col)
	}
	return out, nil
}
