// Package scheduler runs the periodic daily-readings prefetch.
package scheduler

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/kiplangat-dev/catholicprayer/internal/config"
	"github.com/kiplangat-dev/catholicprayer/internal/database/settings"
	"github.com/kiplangat-dev/catholicprayer/internal/entities"
	"github.com/kiplangat-dev/catholicprayer/internal/services"
)

// ReadingsSyncScheduler prefetches the day's readings on a cron schedule so
// the store already has them when the first request of the day arrives.
type ReadingsSyncScheduler struct {
	service  *services.QueryService
	settings *settings.Repository
	config   config.ReadingsSync

	cron       *cron.Cron
	entryID    cron.EntryID
	mu         sync.RWMutex
	isRunning  bool
	isSyncing  bool
	cancelFunc context.CancelFunc
}

// NewReadingsSyncScheduler creates a new scheduler instance.
func NewReadingsSyncScheduler(service *services.QueryService, settingsRepo *settings.Repository, cfg config.ReadingsSync) *ReadingsSyncScheduler {
	return &ReadingsSyncScheduler{
		service:  service,
		settings: settingsRepo,
		config:   cfg,
		cron:     cron.New(cron.WithParser(cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow))),
	}
}

// Start begins the scheduler if prefetching is enabled.
func (s *ReadingsSyncScheduler) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isRunning {
		return nil
	}

	if !s.config.Enabled {
		log.Printf("Readings sync scheduler: disabled")
		return nil
	}

	entryID, err := s.cron.AddFunc(s.config.Schedule, func() {
		s.runSync()
	})
	if err != nil {
		return fmt.Errorf("invalid cron schedule '%s': %w", s.config.Schedule, err)
	}
	s.entryID = entryID

	var cancelCtx context.Context
	cancelCtx, s.cancelFunc = context.WithCancel(ctx)

	s.cron.Start()
	s.isRunning = true

	log.Printf("Readings sync scheduler: started with schedule '%s'", s.config.Schedule)

	go func() {
		<-cancelCtx.Done()
		s.Stop()
	}()

	return nil
}

// Stop gracefully stops the scheduler, waiting for a running prefetch.
func (s *ReadingsSyncScheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.isRunning {
		return
	}

	ctx := s.cron.Stop()
	<-ctx.Done()

	s.isRunning = false
	s.cancelFunc = nil

	log.Printf("Readings sync scheduler: stopped")
}

// RunNow triggers an immediate prefetch.
func (s *ReadingsSyncScheduler) RunNow() {
	go s.runSync()
}

// IsRunning returns whether the scheduler is active.
func (s *ReadingsSyncScheduler) IsRunning() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.isRunning
}

// IsSyncing returns whether a prefetch is currently in progress.
func (s *ReadingsSyncScheduler) IsSyncing() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.isSyncing
}

// GetNextRunTime returns when the next prefetch will occur.
func (s *ReadingsSyncScheduler) GetNextRunTime() *time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.isRunning {
		return nil
	}

	for _, entry := range s.cron.Entries() {
		if entry.ID == s.entryID {
			t := entry.Next
			return &t
		}
	}
	return nil
}

// runSync fetches and caches today's readings.
func (s *ReadingsSyncScheduler) runSync() {
	s.mu.Lock()
	if s.isSyncing {
		s.mu.Unlock()
		log.Printf("Readings sync: skipped (already syncing)")
		return
	}
	s.isSyncing = true
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.isSyncing = false
		s.mu.Unlock()
	}()

	// Runtime pause switch, settable through the settings API without a
	// restart.
	if s.settings.GetBool(entities.SettingKeyReadingsSyncPaused) {
		log.Printf("Readings sync: skipped (paused)")
		return
	}

	log.Printf("Readings sync: prefetching today's readings")
	startTime := time.Now()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	reading := s.service.GetTodaysReading(ctx)

	duration := time.Since(startTime)
	log.Printf("Readings sync: cached readings for %s in %v", reading.Date, duration.Round(time.Millisecond))

	_ = s.settings.SetTime(entities.SettingKeyReadingsSyncLastAt, time.Now())
	_ = s.settings.SetSetting(entities.SettingKeyReadingsSyncLastStatus, "success")
}
