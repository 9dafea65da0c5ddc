// Package cron schedules periodic background refresh of the API version
// token so long-running processes keep their cache keys current.
package cron

import (
	"log/slog"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
)

// DefaultSchedule refreshes the version token every six hours.
const DefaultSchedule = "0 0 */6 * * *"

// VersionManager runs a refresh function on a cron schedule. Overlapping
// runs are skipped.
type VersionManager struct {
	cron        *cron.Cron
	refreshFunc func() error
	logger      *slog.Logger
	schedule    string

	mu        sync.RWMutex
	isRunning bool
}

// NewVersionManager schedules refreshFunc with DefaultSchedule.
func NewVersionManager(refreshFunc func() error, logger *slog.Logger) (*VersionManager, error) {
	return NewVersionManagerWithSchedule(refreshFunc, DefaultSchedule, logger)
}

// NewVersionManagerWithSchedule schedules refreshFunc with a custom cron
// expression (six fields, seconds first). The first refresh runs
// immediately in the background.
func NewVersionManagerWithSchedule(refreshFunc func() error, schedule string, logger *slog.Logger) (*VersionManager, error) {
	if logger == nil {
		logger = slog.Default()
	}
	m := &VersionManager{
		cron:        cron.New(cron.WithSeconds()),
		refreshFunc: refreshFunc,
		logger:      logger,
		schedule:    schedule,
	}

	if _, err := m.cron.AddFunc(schedule, m.refresh); err != nil {
		return nil, err
	}
	m.cron.Start()
	m.logger.Info("scheduled version refresh", "schedule", schedule)

	go m.refresh()

	return m, nil
}

func (m *VersionManager) refresh() {
	m.mu.Lock()
	if m.isRunning {
		m.mu.Unlock()
		m.logger.Debug("version refresh already in progress, skipping")
		return
	}
	m.isRunning = true
	m.mu.Unlock()

	defer func() {
		m.mu.Lock()
		m.isRunning = false
		m.mu.Unlock()
	}()

	if err := m.refreshFunc(); err != nil {
		m.logger.Error("version refresh failed", "error", err)
		return
	}
	m.logger.Debug("version refresh completed")
}

// Stop stops the scheduler. A refresh already in flight finishes.
func (m *VersionManager) Stop() {
	m.cron.Stop()
	m.logger.Info("version manager stopped")
}

// NextRun returns the next scheduled refresh time.
func (m *VersionManager) NextRun() time.Time {
	entries := m.cron.Entries()
	if len(entries) == 0 {
		return time.Time{}
	}
	return entries[0].Next
}

// IsRunning reports whether a refresh is currently in progress.
func (m *VersionManager) IsRunning() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.isRunning
}

// Schedule returns the cron expression in use.
func (m *VersionManager) Schedule() string {
	return m.schedule
}
