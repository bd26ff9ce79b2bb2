// Package time contains time related helpers and the scheduler seam used by
// timers that tests need to drive by hand
package time

import (
	"sort"
	"sync"
	"time"
)

// Handle cancels a scheduled callback, Stop reports whether the call stopped
// the callback before it ran
type Handle interface {
	Stop() bool
}

// Scheduler runs fn once after delay
type Scheduler interface {
	Schedule(delay time.Duration, fn func()) Handle
}

// Cancel stops h when it is non-nil
func Cancel(h Handle) bool {
	if h == nil {
		return false
	}
	return h.Stop()
}

type realScheduler struct{}

// Real returns a Scheduler backed by time.AfterFunc
func Real() Scheduler { return realScheduler{} }

func (realScheduler) Schedule(delay time.Duration, fn func()) Handle {
	return time.AfterFunc(delay, fn)
}

// Manual is a Scheduler whose clock only moves when Advance is called
// Callbacks run synchronously on the goroutine calling Advance, in due order
type Manual struct {
	mu      sync.Mutex
	now     time.Time
	seq     uint64
	pending []*manualTimer
}

type manualTimer struct {
	m   *Manual
	at  time.Time
	seq uint64
	fn  func()
}

// NewManual returns a Manual clock starting at start
func NewManual(start time.Time) *Manual {
	return &Manual{now: start}
}

// Now returns the manual clock time
func (m *Manual) Now() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.now
}

// Schedule registers fn to run once the clock reaches now+delay
func (m *Manual) Schedule(delay time.Duration, fn func()) Handle {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.seq++
	t := &manualTimer{m: m, at: m.now.Add(delay), seq: m.seq, fn: fn}
	m.pending = append(m.pending, t)
	return t
}

// Pending returns the number of callbacks not yet run or stopped
func (m *Manual) Pending() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.pending)
}

// Advance moves the clock forward by d and runs every callback that became due
// Callbacks scheduled by a running callback fire in the same call if due
func (m *Manual) Advance(d time.Duration) {
	m.mu.Lock()
	target := m.now.Add(d)
	m.mu.Unlock()

	for {
		m.mu.Lock()
		sort.SliceStable(m.pending, func(i, j int) bool {
			if m.pending[i].at.Equal(m.pending[j].at) {
				return m.pending[i].seq < m.pending[j].seq
			}
			return m.pending[i].at.Before(m.pending[j].at)
		})
		if len(m.pending) == 0 || m.pending[0].at.After(target) {
			m.now = target
			m.mu.Unlock()
			return
		}
		next := m.pending[0]
		m.pending = m.pending[1:]
		m.now = next.at
		m.mu.Unlock()

		next.fn()
	}
}

func (t *manualTimer) Stop() bool {
	t.m.mu.Lock()
	defer t.m.mu.Unlock()
	for i, p := range t.m.pending {
		if p == t {
			t.m.pending = append(t.m.pending[:i], t.m.pending[i+1:]...)
			return true
		}
	}
	return false
}
