package model

import (
	"math"
	"time"
)

// PriceTable is a date-indexed table of prices with one column per symbol.
// Dates are ascending and unique. A missing value is represented as NaN.
type PriceTable struct {
	Dates   []time.Time
	Symbols []string
	Columns map[string][]float64
}

// NewPriceTable creates a table with every value initialized to NaN.
func NewPriceTable(dates []time.Time, symbols []string) *PriceTable {
	t := &PriceTable{
		Dates:   dates,
		Symbols: symbols,
		Columns: make(map[string][]float64, len(symbols)),
	}
	for _, sym := range symbols {
		col := make([]float64, len(dates))
		for i := range col {
			col[i] = math.NaN()
		}
		t.Columns[sym] = col
	}
	return t
}

// NumRows returns the number of dates in the index.
func (t *PriceTable) NumRows() int {
	return len(t.Dates)
}

// Column returns the values for a symbol, or false if the symbol is absent.
func (t *PriceTable) Column(symbol string) ([]float64, bool) {
	col, ok := t.Columns[symbol]
	return col, ok
}

// Clone returns a deep copy sharing no slices with the original.
func (t *PriceTable) Clone() *PriceTable {
	c := &PriceTable{
		Dates:   make([]time.Time, len(t.Dates)),
		Symbols: make([]string, len(t.Symbols)),
		Columns: make(map[string][]float64, len(t.Columns)),
	}
	copy(c.Dates, t.Dates)
	copy(c.Symbols, t.Symbols)
	for sym, col := range t.Columns {
		dup := make([]float64, len(col))
		copy(dup, col)
		c.Columns[sym] = dup
	}
	return c
}
