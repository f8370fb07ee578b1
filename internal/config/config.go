package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all application configuration.
type Config struct {
	DataSource struct {
		Source  string   `yaml:"source"` // yahoo, csv, or mock
		Symbols []string `yaml:"symbols"`
		Start   string   `yaml:"start"` // YYYY-MM-DD
		End     string   `yaml:"end"`   // YYYY-MM-DD, empty means today
		CSVDir  string   `yaml:"csv_dir"`
	} `yaml:"data_source"`
	Schedule struct {
		RefreshCron string `yaml:"refresh_cron"`
	} `yaml:"schedule"`
	Database struct {
		SQLitePath string `yaml:"sqlite_path"`
	} `yaml:"database"`
	Proxy string `yaml:"proxy"`
}

// Load reads config from a YAML file, then applies environment variable overrides.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("STOCKPREP_SOURCE"); v != "" {
		cfg.DataSource.Source = v
	}
	if v := os.Getenv("STOCKPREP_SYMBOLS"); v != "" {
		cfg.DataSource.Symbols = splitSymbols(v)
	}
	if v := os.Getenv("STOCKPREP_START"); v != "" {
		cfg.DataSource.Start = v
	}
	if v := os.Getenv("STOCKPREP_END"); v != "" {
		cfg.DataSource.End = v
	}
	if v := os.Getenv("STOCKPREP_CSV_DIR"); v != "" {
		cfg.DataSource.CSVDir = v
	}
	if v := os.Getenv("CRON_REFRESH"); v != "" {
		cfg.Schedule.RefreshCron = v
	}
	if v := os.Getenv("SQLITE_PATH"); v != "" {
		cfg.Database.SQLitePath = v
	}
	if v := os.Getenv("HTTPS_PROXY"); v != "" {
		cfg.Proxy = v
	}

	// Defaults
	if cfg.DataSource.Source == "" {
		cfg.DataSource.Source = "yahoo"
	}
	if len(cfg.DataSource.Symbols) == 0 {
		cfg.DataSource.Symbols = []string{"SPY"}
	}
	if cfg.DataSource.Start == "" {
		cfg.DataSource.Start = time.Now().AddDate(-1, 0, 0).Format("2006-01-02")
	}
	if cfg.DataSource.CSVDir == "" {
		cfg.DataSource.CSVDir = "data"
	}
	if cfg.Schedule.RefreshCron == "" {
		cfg.Schedule.RefreshCron = "0 30 22 * * 1-5"
	}
	if cfg.Database.SQLitePath == "" {
		cfg.Database.SQLitePath = "data/stockprep.db"
	}

	return cfg, nil
}

func splitSymbols(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// Validate checks that all required fields are set and parseable.
func (c *Config) Validate() error {
	switch c.DataSource.Source {
	case "yahoo", "csv", "mock":
	default:
		return fmt.Errorf("data_source.source must be yahoo, csv, or mock, got %q", c.DataSource.Source)
	}
	if len(c.DataSource.Symbols) == 0 {
		return fmt.Errorf("data_source.symbols is required")
	}
	if _, _, err := c.DateRange(); err != nil {
		return err
	}
	return nil
}

// DateRange parses the configured start and end dates. An empty end means now.
func (c *Config) DateRange() (start, end time.Time, err error) {
	start, err = time.Parse("2006-01-02", c.DataSource.Start)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("data_source.start: %w", err)
	}
	if c.DataSource.End == "" {
		return start, time.Now(), nil
	}
	end, err = time.Parse("2006-01-02", c.DataSource.End)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("data_source.end: %w", err)
	}
	if end.Before(start) {
		return time.Time{}, time.Time{}, fmt.Errorf("data_source.end %s is before start %s", c.DataSource.End, c.DataSource.Start)
	}
	return start, end, nil
}
