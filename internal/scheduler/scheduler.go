package scheduler

import (
	"fmt"
	"log"
	"time"

	"StockPrep/internal/fetcher"
	"StockPrep/internal/recorder"
	"StockPrep/internal/report"
	"StockPrep/internal/series"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
)

// Scheduler periodically refreshes the price series and records a snapshot.
type Scheduler struct {
	Cron     *cron.Cron
	Preparer *series.Preparer
	Recorder recorder.Recorder
	Source   string
	Symbols  []string
	StartAt  time.Time
	End      time.Time // zero means refresh up to now
}

// NewScheduler creates a Scheduler around a preparer built on the given fetcher.
func NewScheduler(f fetcher.Fetcher, rec recorder.Recorder, symbols []string, start, end time.Time) *Scheduler {
	return &Scheduler{
		Cron:     cron.New(cron.WithSeconds()),
		Preparer: series.NewPreparer(f),
		Recorder: rec,
		Source:   f.Name(),
		Symbols:  symbols,
		StartAt:  start,
		End:      end,
	}
}

// Register registers the refresh task on the given cron spec.
func (s *Scheduler) Register(refreshCron string) error {
	if _, err := s.Cron.AddFunc(refreshCron, s.refreshTask); err != nil {
		return fmt.Errorf("register refresh task: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	log.Println("[INFO] scheduler started")
}

// Stop stops the cron scheduler gracefully.
func (s *Scheduler) Stop() {
	s.Cron.Stop()
	log.Println("[INFO] scheduler stopped")
}

// RunNow executes the refresh task immediately (initial load at startup).
func (s *Scheduler) RunNow() {
	s.refreshTask()
}

func (s *Scheduler) refreshTask() {
	start, end := s.StartAt, s.End
	if end.IsZero() {
		end = time.Now()
	}
	log.Printf("[INFO] refreshing %v from %s", s.Symbols, s.Source)

	if err := s.Preparer.Load(s.Symbols, start, end); err != nil {
		log.Printf("[ERROR] refresh load: %v", err)
		return
	}

	snap, err := s.snapshot(start, end)
	if err != nil {
		log.Printf("[ERROR] derive views: %v", err)
		return
	}

	log.Printf("[INFO] refresh complete\n%s", report.FormatLoadReport(snap))

	if err := s.Recorder.RecordLoad(snap); err != nil {
		log.Printf("[ERROR] record load: %v", err)
	}
}

func (s *Scheduler) snapshot(start, end time.Time) (*recorder.LoadSnapshot, error) {
	prices, err := s.Preparer.Prices()
	if err != nil {
		return nil, err
	}
	norm, err := s.Preparer.Normalize()
	if err != nil {
		return nil, err
	}
	daily, err := s.Preparer.DailyReturns()
	if err != nil {
		return nil, err
	}
	cum, err := s.Preparer.CumulativeReturns()
	if err != nil {
		return nil, err
	}
	return &recorder.LoadSnapshot{
		LoadID:            uuid.NewString(),
		Source:            s.Source,
		Symbols:           s.Symbols,
		Start:             start,
		End:               end,
		Prices:            prices,
		Normalized:        norm,
		DailyReturns:      daily,
		CumulativeReturns: cum,
	}, nil
}
