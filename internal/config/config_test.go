package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.DataSource.Source != "yahoo" {
		t.Errorf("default source = %q, want yahoo", cfg.DataSource.Source)
	}
	if len(cfg.DataSource.Symbols) == 0 {
		t.Error("expected a default symbol")
	}
	if cfg.Database.SQLitePath == "" {
		t.Error("expected a default sqlite path")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestLoad_FileAndEnvOverride(t *testing.T) {
	path := writeConfig(t, `
data_source:
  source: csv
  symbols: [AAPL, GOOG]
  start: "2020-01-01"
  end: "2023-12-31"
  csv_dir: testdata
`)
	t.Setenv("STOCKPREP_SYMBOLS", "SPY, QQQ")

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.DataSource.Source != "csv" {
		t.Errorf("source = %q, want csv", cfg.DataSource.Source)
	}
	if len(cfg.DataSource.Symbols) != 2 || cfg.DataSource.Symbols[0] != "SPY" || cfg.DataSource.Symbols[1] != "QQQ" {
		t.Errorf("env override lost: %v", cfg.DataSource.Symbols)
	}

	start, end, err := cfg.DateRange()
	if err != nil {
		t.Fatal(err)
	}
	if start.Year() != 2020 || end.Year() != 2023 {
		t.Errorf("unexpected range %s ~ %s", start, end)
	}
}

func TestValidate_BadSource(t *testing.T) {
	path := writeConfig(t, "data_source:\n  source: carrier-pigeon\n")
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := cfg.Validate(); err == nil {
		t.Error("expected validation error for unknown source")
	}
}

func TestDateRange_EndBeforeStart(t *testing.T) {
	path := writeConfig(t, "data_source:\n  start: \"2024-01-01\"\n  end: \"2023-01-01\"\n")
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if _, _, err := cfg.DateRange(); err == nil {
		t.Error("expected error when end precedes start")
	}
}

func TestDateRange_EmptyEndIsNow(t *testing.T) {
	path := writeConfig(t, "data_source:\n  start: \"2024-01-01\"\n")
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	_, end, err := cfg.DateRange()
	if err != nil {
		t.Fatal(err)
	}
	if end.Year() < 2024 {
		t.Errorf("empty end should resolve to now, got %s", end)
	}
}
