// Package service batches audit events into the repo off the request path
package service

import (
	"context"
	"sync/atomic"
	"time"

	perr "stockcount/internal/platform/errors"
	"stockcount/internal/platform/logger"
	"stockcount/internal/services/auditlog/domain"
	"stockcount/internal/services/auditlog/repo"
)

const (
	defaultBuffer     = 1024
	defaultBatch      = 200
	defaultFlushEvery = 2 * time.Second
	finalFlushTimeout = 5 * time.Second
	maxQueryLimit     = 1000
)

// Config controls the writer
type Config struct {
	Buffer     int
	Batch      int
	FlushEvery time.Duration
}

// Writer implements RecorderPort, WorkerPort and ReaderPort
type Writer struct {
	repo  repo.Repo
	in    chan domain.Event
	batch int
	every time.Duration
	log   *logger.Logger

	dropped atomic.Uint64
	written atomic.Uint64
}

var (
	_ domain.RecorderPort = (*Writer)(nil)
	_ domain.WorkerPort   = (*Writer)(nil)
	_ domain.ReaderPort   = (*Writer)(nil)
)

// New constructs a Writer, zero config values take defaults
func New(r repo.Repo, cfg Config) *Writer {
	if r == nil {
		panic("auditlog.Writer requires a non nil repo")
	}
	if cfg.Buffer <= 0 {
		cfg.Buffer = defaultBuffer
	}
	if cfg.Batch <= 0 {
		cfg.Batch = defaultBatch
	}
	if cfg.FlushEvery <= 0 {
		cfg.FlushEvery = defaultFlushEvery
	}
	return &Writer{
		repo:  r,
		in:    make(chan domain.Event, cfg.Buffer),
		batch: cfg.Batch,
		every: cfg.FlushEvery,
		log:   logger.Named("auditlog"),
	}
}

// Record queues e, when the buffer is full the event is dropped and counted
func (w *Writer) Record(e domain.Event) {
	if e.At.IsZero() {
		e.At = time.Now()
	}
	select {
	case w.in <- e:
	default:
		if w.dropped.Add(1)%100 == 1 {
			w.log.Warn().Uint64("dropped", w.dropped.Load()).Msg("audit buffer full, dropping events")
		}
	}
}

// Dropped returns how many events were discarded on a full buffer
func (w *Writer) Dropped() uint64 { return w.dropped.Load() }

// Written returns how many events reached the repo
func (w *Writer) Written() uint64 { return w.written.Load() }

// Run flushes on batch size or ticker until ctx ends, then drains and flushes once more
func (w *Writer) Run(ctx context.Context) error {
	ticker := time.NewTicker(w.every)
	defer ticker.Stop()

	buf := make([]domain.Event, 0, w.batch)
	flush := func(ctx context.Context) {
		if len(buf) == 0 {
			return
		}
		if err := w.repo.Insert(ctx, buf); err != nil {
			w.log.Error().Err(err).Int("events", len(buf)).Msg("audit flush failed")
		} else {
			w.written.Add(uint64(len(buf)))
		}
		buf = buf[:0]
	}

	for {
		select {
		case <-ctx.Done():
		drain:
			for {
				select {
				case e := <-w.in:
					buf = append(buf, e)
				default:
					break drain
				}
			}
			fctx, cancel := context.WithTimeout(context.Background(), finalFlushTimeout)
			flush(fctx)
			cancel()
			w.log.Info().Uint64("written", w.Written()).Uint64("dropped", w.Dropped()).Msg("audit writer stopped")
			return ctx.Err()
		case e := <-w.in:
			buf = append(buf, e)
			if len(buf) >= w.batch {
				flush(ctx)
			}
		case <-ticker.C:
			flush(ctx)
		}
	}
}

// SessionEvents reads a session trail from the repo
func (w *Writer) SessionEvents(ctx context.Context, q domain.SessionQuery) ([]domain.Event, error) {
	if q.SessionID == "" {
		return nil, perr.InvalidArgf("session id is required")
	}
	if q.Limit <= 0 || q.Limit > maxQueryLimit {
		q.Limit = maxQueryLimit
	}
	out, err := w.repo.BySession(ctx, q)
	if err != nil {
		return nil, perr.Wrapf(err, perr.ErrorCodeDB, "read audit trail")
	}
	if out == nil {
		out = []domain.Event{}
	}
	return out, nil
}
