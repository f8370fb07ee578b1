package fetcher

import (
	"math"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeCSV(t *testing.T, dir, symbol, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, symbol+".csv"), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestCSVFetcher_JoinsOnUnionOfDates(t *testing.T) {
	dir := t.TempDir()
	writeCSV(t, dir, "AAPL", "Date,Adj Close\n2024-01-01,100\n2024-01-02,nan\n2024-01-03,102\n")
	writeCSV(t, dir, "GOOG", "Date,Adj Close\n2024-01-02,51\n2024-01-03,52\n2024-01-04,53\n")

	f := NewCSVFetcher(dir)
	table, err := f.Fetch([]string{"AAPL", "GOOG"},
		time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 1, 4, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatal(err)
	}

	if table.NumRows() != 4 {
		t.Fatalf("expected 4 dates in union, got %d", table.NumRows())
	}
	aapl := table.Columns["AAPL"]
	if aapl[0] != 100 || !math.IsNaN(aapl[1]) || aapl[2] != 102 {
		t.Errorf("unexpected AAPL column: %v", aapl)
	}
	if !math.IsNaN(aapl[3]) {
		t.Error("AAPL should be NaN on GOOG-only date")
	}
	goog := table.Columns["GOOG"]
	if !math.IsNaN(goog[0]) || goog[1] != 51 || goog[3] != 53 {
		t.Errorf("unexpected GOOG column: %v", goog)
	}
}

func TestCSVFetcher_FiltersDateRange(t *testing.T) {
	dir := t.TempDir()
	writeCSV(t, dir, "AAPL", "Date,Adj Close\n2023-12-29,99\n2024-01-02,100\n2024-02-01,110\n")

	f := NewCSVFetcher(dir)
	table, err := f.Fetch([]string{"AAPL"},
		time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatal(err)
	}
	if table.NumRows() != 1 {
		t.Fatalf("expected 1 row in range, got %d", table.NumRows())
	}
	if table.Columns["AAPL"][0] != 100 {
		t.Errorf("expected 100, got %v", table.Columns["AAPL"][0])
	}
}

func TestCSVFetcher_DropsAllMissingDates(t *testing.T) {
	dir := t.TempDir()
	writeCSV(t, dir, "AAPL", "Date,Adj Close\n2024-01-01,100\n2024-01-02,nan\n2024-01-03,102\n")
	writeCSV(t, dir, "GOOG", "Date,Adj Close\n2024-01-01,50\n2024-01-02,\n2024-01-03,52\n")

	f := NewCSVFetcher(dir)
	table, err := f.Fetch([]string{"AAPL", "GOOG"},
		time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatal(err)
	}
	if table.NumRows() != 2 {
		t.Fatalf("date with every symbol missing should be dropped, got %d rows", table.NumRows())
	}
	if table.Columns["AAPL"][1] != 102 {
		t.Errorf("expected 102 after drop, got %v", table.Columns["AAPL"][1])
	}
}

func TestCSVFetcher_MissingFile(t *testing.T) {
	f := NewCSVFetcher(t.TempDir())
	if _, err := f.Fetch([]string{"NOPE"},
		time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC)); err == nil {
		t.Fatal("expected an error for a missing symbol file")
	}
}

func TestMockFetcher_WeekdaysOnly(t *testing.T) {
	f := &MockFetcher{BasePrice: 200}
	// 2024-01-01 is a Monday.
	table, err := f.Fetch([]string{"SPY"},
		time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 1, 7, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatal(err)
	}
	if table.NumRows() != 5 {
		t.Fatalf("expected 5 weekday rows, got %d", table.NumRows())
	}
	for _, d := range table.Dates {
		if wd := d.Weekday(); wd == time.Saturday || wd == time.Sunday {
			t.Errorf("weekend date %s in mock series", d.Format("2006-01-02"))
		}
	}
}
