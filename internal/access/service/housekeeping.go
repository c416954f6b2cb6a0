package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/barzolagym/gymos/internal/access/store"
)

// HousekeepingService periodically prunes consumed scan events and aged audit
// records so the database does not grow without bound.
type HousekeepingService struct {
	Store    store.Store
	Logger   *slog.Logger
	Interval time.Duration

	// AuditRetention bounds how long denied/granted decisions are kept.
	// ScanRetention bounds how long consumed scan events linger after pickup.
	AuditRetention time.Duration
	ScanRetention  time.Duration

	stopCh chan struct{}
	doneCh chan struct{}
}

// NewHousekeepingService creates a housekeeping worker. Interval defaults to
// 1 hour, audit retention to 90 days, scan retention to 24 hours.
func NewHousekeepingService(st store.Store, logger *slog.Logger, interval, auditRetention, scanRetention time.Duration) *HousekeepingService {
	if interval <= 0 {
		interval = 1 * time.Hour
	}
	if auditRetention <= 0 {
		auditRetention = 90 * 24 * time.Hour
	}
	if scanRetention <= 0 {
		scanRetention = 24 * time.Hour
	}

	return &HousekeepingService{
		Store:          st,
		Logger:         logger,
		Interval:       interval,
		AuditRetention: auditRetention,
		ScanRetention:  scanRetention,
		stopCh:         make(chan struct{}),
		doneCh:         make(chan struct{}),
	}
}

// Start begins the background worker. Non-blocking; call Stop to shut down.
func (s *HousekeepingService) Start() {
	go s.run()
	s.Logger.Info("housekeeping service started", "interval", s.Interval)
}

// Stop shuts down the worker and blocks until any in-progress sweep finishes.
func (s *HousekeepingService) Stop() {
	close(s.stopCh)
	<-s.doneCh
	s.Logger.Info("housekeeping service stopped")
}

func (s *HousekeepingService) run() {
	defer close(s.doneCh)

	ticker := time.NewTicker(s.Interval)
	defer ticker.Stop()

	// Sweep once on startup so a restart never defers cleanup by a full tick.
	s.cleanup()

	for {
		select {
		case <-ticker.C:
			s.cleanup()
		case <-s.stopCh:
			return
		}
	}
}

// cleanup performs the actual deletions. Each sweep is independent; a failure
// in one does not stop the others.
func (s *HousekeepingService) cleanup() {
	ctx := context.Background()
	now := time.Now().UTC()
	s.Logger.Debug("starting housekeeping sweep")

	if err := s.Store.ScanEvents().DeleteConsumedBefore(ctx, now.Add(-s.ScanRetention)); err != nil {
		s.Logger.Error("failed to delete consumed scan events", "error", err)
	}

	if err := s.Store.AccessLog().DeleteDecisionsBefore(ctx, now.Add(-s.AuditRetention)); err != nil {
		s.Logger.Error("failed to delete aged access decisions", "error", err)
	}

	s.Logger.Debug("housekeeping sweep completed")
}
