package fetcher

import (
	"time"

	"StockPrep/internal/model"
)

// MockFetcher returns controllable fixed data for development and testing.
type MockFetcher struct {
	// Table, when set, is returned verbatim from Fetch.
	Table *model.PriceTable
	// BasePrice seeds the generated walk when Table is nil.
	BasePrice float64
}

func (m *MockFetcher) Name() string { return "mock" }

func (m *MockFetcher) Fetch(symbols []string, start, end time.Time) (*model.PriceTable, error) {
	if m.Table != nil {
		return m.Table, nil
	}
	return generateMockTable(symbols, start, end, m.BasePrice), nil
}

// generateMockTable produces a deterministic drifting series per symbol over
// the weekdays in [start, end].
func generateMockTable(symbols []string, start, end time.Time, basePrice float64) *model.PriceTable {
	if basePrice == 0 {
		basePrice = 100
	}
	var dates []time.Time
	for d := dateOnly(start); !d.After(dateOnly(end)); d = d.AddDate(0, 0, 1) {
		if wd := d.Weekday(); wd == time.Saturday || wd == time.Sunday {
			continue
		}
		dates = append(dates, d)
	}

	table := model.NewPriceTable(dates, symbols)
	for s, sym := range symbols {
		col := table.Columns[sym]
		base := basePrice * float64(s+1)
		for i := range dates {
			col[i] = base * (1 + float64(i-len(dates)/2)*0.001)
		}
	}
	return table
}
