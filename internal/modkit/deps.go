// Package modkit provides module wiring and core deps
package modkit

import (
	"stockcount/internal/modkit/repokit"
	"stockcount/internal/platform/config"
	"stockcount/internal/platform/logger"
	"stockcount/internal/platform/store"
	ptime "stockcount/internal/platform/time"
)

// Deps holds core dependencies passed to modules
// PG and CH are nil when the backend is disabled, Sched nil means wall clock timers
type Deps struct {
	Log   logger.Logger
	Cfg   config.Conf
	PG    repokit.TxRunner
	CH    store.Clickhouse
	Sched ptime.Scheduler
}

// Scheduler returns Sched or the real timer scheduler
func (d Deps) Scheduler() ptime.Scheduler {
	if d.Sched == nil {
		return ptime.Real()
	}
	return d.Sched
}
