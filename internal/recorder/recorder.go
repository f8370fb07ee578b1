package recorder

import (
	"time"

	"StockPrep/internal/model"
)

// LoadSnapshot holds everything derived from one load for persistence.
type LoadSnapshot struct {
	LoadID            string
	Source            string
	Symbols           []string
	Start             time.Time
	End               time.Time
	Prices            *model.PriceTable
	Normalized        *model.PriceTable
	DailyReturns      *model.PriceTable
	CumulativeReturns *model.PriceTable
}

// Recorder persists load snapshots for later analysis.
type Recorder interface {
	RecordLoad(snap *LoadSnapshot) error
	Close() error
}
