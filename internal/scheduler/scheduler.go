// Package scheduler runs background jobs on a fixed interval.
package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-co-op/gocron"

	"go_verb_master/internal/model"
)

// CatalogLoader reloads the verb catalog.
type CatalogLoader interface {
	Load(ctx context.Context) []model.Verb
}

// Scheduler refreshes the catalog periodically so edits to the source show up
// in new sessions without a restart.
type Scheduler struct {
	scheduler *gocron.Scheduler
	catalog   CatalogLoader
	interval  time.Duration
	timeout   time.Duration
	logger    *slog.Logger
}

func New(catalog CatalogLoader, interval, timeout time.Duration, logger *slog.Logger) *Scheduler {
	if logger == nil {
		logger = slog.Default()
	}
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	s := gocron.NewScheduler(time.UTC)
	s.SingletonModeAll()
	return &Scheduler{
		scheduler: s,
		catalog:   catalog,
		interval:  interval,
		timeout:   timeout,
		logger:    logger.With(slog.String("component", "scheduler")),
	}
}

// Start schedules the refresh job and returns immediately. An interval of
// zero or less disables refreshing.
func (s *Scheduler) Start() error {
	if s.interval <= 0 {
		s.logger.Info("Catalog refresh disabled")
		return nil
	}
	if _, err := s.scheduler.Every(s.interval).WaitForSchedule().Do(s.RefreshCatalog); err != nil {
		return fmt.Errorf("scheduler.Start: %w", err)
	}
	s.scheduler.StartAsync()
	s.logger.Info("Catalog refresh scheduled", slog.Duration("interval", s.interval))
	return nil
}

// Stop terminates all scheduled jobs.
func (s *Scheduler) Stop() {
	s.scheduler.Stop()
}

// Jobs is the number of scheduled jobs.
func (s *Scheduler) Jobs() int {
	return len(s.scheduler.Jobs())
}

// RefreshCatalog reloads the catalog once, bounded by the configured timeout.
func (s *Scheduler) RefreshCatalog() {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()
	verbs := s.catalog.Load(ctx)
	s.logger.Debug("Catalog refreshed", slog.Int("verbs", len(verbs)))
}
