package service

import (
	"context"
	"time"

	auditdom "stockcount/internal/services/auditlog/domain"

	"github.com/google/uuid"
)

// Run reaps idle sessions every ReapEvery until ctx ends, then tears down
// whatever is still hosted
func (s *Svc) Run(ctx context.Context) error {
	ticker := time.NewTicker(s.opts.ReapEvery)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.shutdown()
			return ctx.Err()
		case <-ticker.C:
			if n := s.Reap(s.opts.Now()); n > 0 {
				s.log.Info().Int("reaped", n).Msg("idle sessions reaped")
			}
		}
	}
}

// Reap tears down sessions idle for longer than TTL at now and returns how many
func (s *Svc) Reap(now time.Time) int {
	cutoff := now.Add(-s.opts.TTL)

	s.mu.Lock()
	var stale []*live
	for id, l := range s.sessions {
		if l.seenAt().Before(cutoff) {
			stale = append(stale, l)
			delete(s.sessions, id)
		}
	}
	s.mu.Unlock()

	for _, l := range stale {
		l.sess.Teardown()
		s.opts.Audit.Record(auditdom.Event{
			SessionID: l.id.String(),
			Type:      auditdom.EventReaped,
			Detail:    "idle since " + l.seenAt().UTC().Format(time.RFC3339),
			At:        now,
		})
	}
	return len(stale)
}

func (s *Svc) shutdown() {
	s.mu.Lock()
	all := s.sessions
	s.sessions = make(map[uuid.UUID]*live)
	s.mu.Unlock()

	for _, l := range all {
		l.sess.Teardown()
	}
	if len(all) > 0 {
		s.log.Info().Int("sessions", len(all)).Msg("sessions torn down on shutdown")
	}
}
