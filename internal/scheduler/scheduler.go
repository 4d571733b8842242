// Package scheduler runs the periodic cache sweep. Stale entries are kept
// around as offline fallback, so the sweep only drops entries old enough that
// showing them would mislead rather than help.
package scheduler

import (
	"context"
	"strings"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/eletropro/app-core/internal/cache"
)

// Retention is how long a stale entry stays usable as fallback before the
// sweeper drops it.
const Retention = 24 * time.Hour

const authPrefix = cache.Namespace + ":auth:"

// Scheduler manages scheduled tasks.
type Scheduler struct {
	cron     *cron.Cron
	store    cache.Store
	schedule string
	logger   *zap.Logger
	now      func() time.Time
}

// NewScheduler creates a new scheduler instance.
func NewScheduler(store cache.Store, schedule string, logger *zap.Logger) *Scheduler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Scheduler{
		cron:     cron.New(),
		store:    store,
		schedule: schedule,
		logger:   logger,
		now:      time.Now,
	}
}

// Start starts the scheduler.
func (s *Scheduler) Start() error {
	s.logger.Info("starting scheduler", zap.String("schedule", s.schedule))
	if _, err := s.cron.AddFunc(s.schedule, s.sweep); err != nil {
		return err
	}
	s.cron.Start()
	return nil
}

// Stop stops the scheduler and waits for a running sweep to finish.
func (s *Scheduler) Stop() {
	s.logger.Info("stopping scheduler")
	<-s.cron.Stop().Done()
}

func (s *Scheduler) sweep() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	removed, err := s.Sweep(ctx)
	if err != nil {
		s.logger.Error("cache sweep failed", zap.Error(err))
		return
	}
	if removed > 0 {
		s.logger.Info("cache sweep removed expired entries", zap.Int("removed", removed))
	}
}

// Sweep removes cached resource entries older than Retention and reports how
// many were dropped. Session keys are never touched; their lifecycle belongs
// to the auth service.
func (s *Scheduler) Sweep(ctx context.Context) (int, error) {
	keys, err := s.store.Keys(ctx)
	if err != nil {
		return 0, err
	}

	cutoff := s.now().Add(-Retention)
	removed := 0
	for _, key := range keys {
		if strings.HasPrefix(key, authPrefix) {
			continue
		}
		entry, err := s.store.Get(ctx, key)
		if err != nil {
			return removed, err
		}
		if entry == nil || !entry.Timestamp.Before(cutoff) {
			continue
		}
		if err := s.store.Remove(ctx, key); err != nil {
			return removed, err
		}
		removed++
	}
	return removed, nil
}
