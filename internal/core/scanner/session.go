// Package scanner hosts one scanning session: it owns the manifest and the
// gate, serializes decode events, and dispatches feedback to listeners
package scanner

import (
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"stockcount/internal/core/feedback"
	"stockcount/internal/core/gate"
	"stockcount/internal/core/manifest"
	"stockcount/internal/core/resolver"
	"stockcount/internal/platform/logger"
	ptime "stockcount/internal/platform/time"
)

// ErrClosed is returned by operations on a torn down session
var ErrClosed = errors.New("scanner: session torn down")

// resolve is a seam so tests can observe the in-flight window
var resolve = resolver.Resolve

// Listener receives session events, every field is optional
// Callbacks run without any session lock held, in the order state changed,
// and may read the session. When events race, one goroutine delivers them
// all, so a call can return before its own callbacks have run
type Listener struct {
	OnAccepted        func(itemID string, newActual, expected int, displayName string)
	OnRejected        func(kind feedback.AlertKind, detail string)
	OnManifestChanged func(m manifest.Manifest)
	OnSignal          func(s feedback.Signal)
}

// Options configures a Session
type Options struct {
	Cooldown  time.Duration
	Scheduler ptime.Scheduler
	Player    feedback.Player
	Listener  Listener
	Logger    *logger.Logger
}

// Result reports what happened to one submitted payload
// Dropped means the gate was not open, Discarded means the session was torn
// down while the payload was being resolved
type Result struct {
	Dropped   bool
	Discarded bool
	Outcome   resolver.Outcome
	Signals   []feedback.Signal
	Gate      gate.Snapshot
}

// Stats counts submitted payloads by fate, the fates add up to Submitted
// once no scan is in flight
type Stats struct {
	Submitted uint64
	Dropped   uint64
	Discarded uint64
	Accepted  uint64
	Rejected  uint64
}

// Session is safe for concurrent use
type Session struct {
	mu     sync.Mutex
	m      manifest.Manifest
	g      *gate.Gate
	last   *feedback.Banner
	closed bool

	// qmu guards the delivery queue, it is only ever taken inside mu or alone
	qmu      sync.Mutex
	queue    []func()
	draining bool

	lis     Listener
	emitter *feedback.Emitter
	log     *logger.Logger

	submitted, dropped, discarded, accepted, rejected atomic.Uint64
}

// New starts a session over m
func New(m manifest.Manifest, opts Options) *Session {
	log := opts.Logger
	if log == nil {
		log = logger.Named("scanner")
	}
	return &Session{
		m:       m,
		g:       gate.New(opts.Cooldown, opts.Scheduler),
		lis:     opts.Listener,
		emitter: feedback.NewEmitter(opts.Player, log),
		log:     log,
	}
}

// SubmitScan is the entry point for one decode event
func (s *Session) SubmitScan(raw string) Result {
	s.submitted.Add(1)

	s.mu.Lock()
	if s.closed || !s.g.Admit() {
		snap := s.g.Snapshot()
		s.mu.Unlock()
		s.dropped.Add(1)
		return Result{Dropped: true, Gate: snap}
	}
	m := s.m
	s.mu.Unlock()

	out := resolve(raw, m)

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		s.discarded.Add(1)
		s.log.Debug().Str("outcome", out.Kind.String()).Msg("discarding scan resolved after teardown")
		return Result{Discarded: true, Outcome: out, Gate: gate.Snapshot{State: gate.Closed}}
	}

	tr := Apply(s.m, out)
	if tr.Changed {
		s.m = tr.Manifest
		b := tr.Signals[len(tr.Signals)-1].Banner
		s.last = &b
		s.g.Accept(s.elapsed)
		s.accepted.Add(1)
	} else {
		s.g.Reject()
		s.rejected.Add(1)
	}
	res := Result{Outcome: tr.Outcome, Signals: tr.Signals, Gate: s.g.Snapshot()}
	s.enqueue(func() {
		s.deliver(tr.Signals)
		if tr.Changed {
			o := tr.Outcome
			if s.lis.OnAccepted != nil {
				s.lis.OnAccepted(o.ItemID, o.NewActual, o.Expected, o.DisplayName)
			}
			if s.lis.OnManifestChanged != nil {
				s.lis.OnManifestChanged(tr.Manifest)
			}
		} else if s.lis.OnRejected != nil {
			a := tr.Signals[0]
			s.lis.OnRejected(a.Alert, a.Detail)
		}
	})
	s.mu.Unlock()

	s.drain()
	return res
}

// elapsed runs on the scheduler when a cooldown ends
func (s *Session) elapsed(tok gate.Token) {
	s.mu.Lock()
	if s.closed || !s.g.Elapse(tok) {
		s.mu.Unlock()
		return
	}
	s.last = nil
	s.enqueue(func() { s.deliver([]feedback.Signal{feedback.Clear()}) })
	s.mu.Unlock()

	s.drain()
}

// enqueue appends a delivery, caller holds mu so queue order is state order
func (s *Session) enqueue(fn func()) {
	s.qmu.Lock()
	s.queue = append(s.queue, fn)
	s.qmu.Unlock()
}

// drain runs queued deliveries with no lock held
// Only one goroutine drains at a time, the others leave their work to it
func (s *Session) drain() {
	s.qmu.Lock()
	if s.draining {
		s.qmu.Unlock()
		return
	}
	s.draining = true
	s.qmu.Unlock()

	done := false
	defer func() {
		// a panicking listener must not strand the queue
		if !done {
			s.qmu.Lock()
			s.draining = false
			s.qmu.Unlock()
		}
	}()
	for {
		s.qmu.Lock()
		if len(s.queue) == 0 {
			s.draining = false
			s.qmu.Unlock()
			done = true
			return
		}
		fn := s.queue[0]
		s.queue[0] = nil
		s.queue = s.queue[1:]
		s.qmu.Unlock()
		fn()
	}
}

// deliver plays cues and forwards signals, it runs from drain
func (s *Session) deliver(sigs []feedback.Signal) {
	for _, sig := range sigs {
		if sig.Type == feedback.SignalCue {
			s.emitter.Cue()
		}
		if s.lis.OnSignal != nil {
			s.lis.OnSignal(sig)
		}
	}
}

// SetActual replaces an actual quantity from manual entry
// The gate is untouched, a scan in cooldown stays in cooldown
func (s *Session) SetActual(itemID string, qty int) (manifest.Line, error) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return manifest.Line{}, ErrClosed
	}
	next, err := s.m.SetActual(itemID, qty)
	if err != nil {
		s.mu.Unlock()
		return manifest.Line{}, err
	}
	s.m = next
	line, _ := next.Lookup(itemID)
	if s.lis.OnManifestChanged != nil {
		s.enqueue(func() { s.lis.OnManifestChanged(next) })
	}
	s.mu.Unlock()

	s.drain()
	return line, nil
}

// Teardown closes the gate and cancels any pending cooldown, it is idempotent
// A payload still being resolved is discarded when it returns
func (s *Session) Teardown() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true
	s.last = nil
	s.g.Close()
}

// Closed reports whether Teardown ran
func (s *Session) Closed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closed
}

// Manifest returns the current manifest value
func (s *Session) Manifest() manifest.Manifest {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.m
}

// Gate returns the current gate state
func (s *Session) Gate() gate.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.g.Snapshot()
}

// LastScanned returns the banner of the last accepted scan while its cooldown runs
func (s *Session) LastScanned() (feedback.Banner, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.last == nil {
		return feedback.Banner{}, false
	}
	return *s.last, true
}

// Stats returns payload counters
func (s *Session) Stats() Stats {
	return Stats{
		Submitted: s.submitted.Load(),
		Dropped:   s.dropped.Load(),
		Discarded: s.discarded.Load(),
		Accepted:  s.accepted.Load(),
		Rejected:  s.rejected.Load(),
	}
}

// WaitFeedback blocks until detached cue playback has finished
func (s *Session) WaitFeedback() { s.emitter.Wait() }
