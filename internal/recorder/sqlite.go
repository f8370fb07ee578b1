package recorder

import (
	"database/sql"
	"fmt"
	"log"
	"math"
	"strings"
	"sync"
	"time"

	_ "modernc.org/sqlite"
)

// SQLiteRecorder persists load snapshots to a SQLite database.
type SQLiteRecorder struct {
	db *sql.DB
	mu sync.Mutex
}

// NewSQLiteRecorder opens (or creates) the SQLite database and runs migrations.
func NewSQLiteRecorder(dbPath string) (*SQLiteRecorder, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// WAL mode for better concurrent read performance (dashboards read while the bot writes).
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	r := &SQLiteRecorder{db: db}
	if err := r.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	log.Printf("[INFO] sqlite recorder opened: %s", dbPath)
	return r, nil
}

func (r *SQLiteRecorder) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS loads (
			load_id    TEXT PRIMARY KEY,
			timestamp  INTEGER NOT NULL,
			source     TEXT,
			symbols    TEXT,
			start_date TEXT,
			end_date   TEXT,
			row_count  INTEGER
		)`,
		`CREATE INDEX IF NOT EXISTS idx_loads_ts ON loads(timestamp)`,

		`CREATE TABLE IF NOT EXISTS series_points (
			id                INTEGER PRIMARY KEY AUTOINCREMENT,
			load_id           TEXT NOT NULL,
			date              TEXT NOT NULL,
			symbol            TEXT NOT NULL,
			price             REAL,
			normalized        REAL,
			daily_return      REAL,
			cumulative_return REAL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_points_load ON series_points(load_id)`,
		`CREATE INDEX IF NOT EXISTS idx_points_symbol ON series_points(symbol, date)`,
	}

	for _, s := range stmts {
		if _, err := r.db.Exec(s); err != nil {
			return fmt.Errorf("exec %q: %w", s[:40], err)
		}
	}
	return nil
}

// RecordLoad writes one loads row and one series_points row per (date, symbol).
func (r *SQLiteRecorder) RecordLoad(snap *LoadSnapshot) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}

	_, err = tx.Exec(`INSERT INTO loads
		(load_id, timestamp, source, symbols, start_date, end_date, row_count)
		VALUES (?,?,?,?,?,?,?)`,
		snap.LoadID, time.Now().Unix(), snap.Source,
		strings.Join(snap.Symbols, ","),
		snap.Start.Format("2006-01-02"), snap.End.Format("2006-01-02"),
		snap.Prices.NumRows(),
	)
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("insert load: %w", err)
	}

	stmt, err := tx.Prepare(`INSERT INTO series_points
		(load_id, date, symbol, price, normalized, daily_return, cumulative_return)
		VALUES (?,?,?,?,?,?,?)`)
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("prepare points: %w", err)
	}
	defer stmt.Close()

	for _, sym := range snap.Prices.Symbols {
		prices := snap.Prices.Columns[sym]
		norm := snap.Normalized.Columns[sym]
		daily := snap.DailyReturns.Columns[sym]
		cum := snap.CumulativeReturns.Columns[sym]
		for i, d := range snap.Prices.Dates {
			if _, err := stmt.Exec(
				snap.LoadID, d.Format("2006-01-02"), sym,
				nullable(prices[i]), nullable(norm[i]),
				nullable(daily[i]), nullable(cum[i]),
			); err != nil {
				tx.Rollback()
				return fmt.Errorf("insert point: %w", err)
			}
		}
	}

	return tx.Commit()
}

// nullable maps NaN and Inf to SQL NULL; REAL columns cannot hold them.
func nullable(v float64) interface{} {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return v
}

func (r *SQLiteRecorder) Close() error {
	log.Println("[INFO] closing sqlite recorder")
	return r.db.Close()
}
