package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"StockPrep/internal/config"
	"StockPrep/internal/fetcher"
	"StockPrep/internal/recorder"
	"StockPrep/internal/scheduler"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("[INFO] StockPrep starting...")

	// Load config
	cfgPath := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		cfgPath = v
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("[FATAL] load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("[FATAL] config validation: %v", err)
	}

	// Init fetcher
	var f fetcher.Fetcher
	switch cfg.DataSource.Source {
	case "csv":
		f = fetcher.NewCSVFetcher(cfg.DataSource.CSVDir)
	case "mock":
		f = &fetcher.MockFetcher{}
	default:
		f = fetcher.NewYahooFetcher(cfg.Proxy)
	}
	log.Printf("[INFO] data source: %s", f.Name())

	// Init recorder
	var rec recorder.Recorder
	if cfg.Database.SQLitePath != "" {
		sr, err := recorder.NewSQLiteRecorder(cfg.Database.SQLitePath)
		if err != nil {
			log.Printf("[WARN] init sqlite recorder failed, using noop: %v", err)
			rec = recorder.NewNoopRecorder()
		} else {
			rec = sr
			defer sr.Close()
		}
	} else {
		rec = recorder.NewNoopRecorder()
	}

	start, end, err := cfg.DateRange()
	if err != nil {
		log.Fatalf("[FATAL] date range: %v", err)
	}
	// Pin the end date only when configured; otherwise each refresh runs up to now.
	if cfg.DataSource.End == "" {
		end = time.Time{}
	}

	// Init scheduler
	sched := scheduler.NewScheduler(f, rec, cfg.DataSource.Symbols, start, end)
	if err := sched.Register(cfg.Schedule.RefreshCron); err != nil {
		log.Fatalf("[FATAL] register refresh task: %v", err)
	}
	sched.Start()
	defer sched.Stop()

	// Initial refresh on start
	sched.RunNow()

	log.Println("[INFO] StockPrep is running. Press Ctrl+C to stop.")

	// Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Println("[INFO] shutdown signal received, stopping...")
	log.Println("[INFO] StockPrep stopped")
}
