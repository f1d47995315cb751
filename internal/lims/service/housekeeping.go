package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/aussiebroadwan/ancestrybio/internal/lims/metrics"
	"github.com/aussiebroadwan/ancestrybio/internal/lims/store"
)

// HousekeepingService periodically resyncs the enzyme and lab tech names
// copied onto batches. Renames already do this inline; this catches rows
// written by other tools or before a rename committed.
type HousekeepingService struct {
	Store    store.Store
	Logger   *slog.Logger
	Metrics  *metrics.Metrics // optional
	Interval time.Duration

	stopCh chan struct{}
	doneCh chan struct{}
}

// NewHousekeepingService defaults a non-positive interval to 1 hour.
func NewHousekeepingService(st store.Store, logger *slog.Logger, m *metrics.Metrics, interval time.Duration) *HousekeepingService {
	if interval <= 0 {
		interval = time.Hour
	}
	return &HousekeepingService{
		Store:    st,
		Logger:   logger,
		Metrics:  m,
		Interval: interval,
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}
}

// Start runs the worker in the background until Stop is called.
func (s *HousekeepingService) Start() {
	go s.run()
	s.Logger.Info("housekeeping service started", "interval", s.Interval)
}

// Stop blocks until an in-flight run has finished.
func (s *HousekeepingService) Stop() {
	close(s.stopCh)
	<-s.doneCh
	s.Logger.Info("housekeeping service stopped")
}

func (s *HousekeepingService) run() {
	defer close(s.doneCh)

	ticker := time.NewTicker(s.Interval)
	defer ticker.Stop()

	s.RunOnce(context.Background())
	for {
		select {
		case <-ticker.C:
			s.RunOnce(context.Background())
		case <-s.stopCh:
			return
		}
	}
}

// RunOnce performs a single refresh pass.
func (s *HousekeepingService) RunOnce(ctx context.Context) {
	n, err := s.Store.Batches().RefreshDenormalizedNames(ctx)
	s.Metrics.HousekeepingRun(err)
	if err != nil {
		s.Logger.Error("failed to refresh denormalized names", "error", err)
		return
	}
	s.Logger.Info("housekeeping completed", "batches_refreshed", n)
}
