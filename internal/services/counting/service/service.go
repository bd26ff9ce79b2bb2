// Package service hosts live counting sessions and turns confirmed ones into papers
package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"sync"
	"sync/atomic"
	"time"

	"stockcount/internal/core/feedback"
	"stockcount/internal/core/manifest"
	"stockcount/internal/core/normalize"
	"stockcount/internal/core/scanner"
	"stockcount/internal/modkit/repokit"
	perr "stockcount/internal/platform/errors"
	"stockcount/internal/platform/logger"
	ptime "stockcount/internal/platform/time"
	auditdom "stockcount/internal/services/auditlog/domain"
	"stockcount/internal/services/counting/domain"
	"stockcount/internal/services/counting/repo"

	"github.com/google/uuid"
)

// Service is the public service port
type Service interface {
	domain.ServicePort
	domain.ReaperPort
}

// Options control service behavior
type Options struct {
	Cooldown    time.Duration
	TTL         time.Duration
	ReapEvery   time.Duration
	MaxSessions int
	TxTimeout   time.Duration

	// Scheduler drives gate cooldowns, nil means wall clock timers
	Scheduler ptime.Scheduler

	// Orders is optional, without it sessions need explicit lines and
	// confirmed papers stay local
	Orders domain.OrderSource

	// Audit is optional
	Audit auditdom.RecorderPort

	// Player is optional, the API host has no speaker
	Player feedback.Player

	// Now defaults to time.Now
	Now func() time.Time
}

// Svc implements the service port
type Svc struct {
	Repo   repo.Repo
	binder repokit.Binder[repo.Repo]
	tx     repokit.TxRunner
	opts   Options
	log    *logger.Logger

	mu       sync.Mutex
	sessions map[uuid.UUID]*live
}

// live is one hosted session
type live struct {
	id       uuid.UUID
	kind     domain.Kind
	orderID  string
	details  map[string]string
	sess     *scanner.Session
	openedAt time.Time
	seen     atomic.Int64

	// confirm serializes Confirm, paper is set once stored
	confirm sync.Mutex
	paper   *domain.PaperView
}

func (l *live) touch(t time.Time)       { l.seen.Store(t.UnixNano()) }
func (l *live) seenAt() time.Time       { return time.Unix(0, l.seen.Load()) }
func (l *live) detail(id string) string { return l.details[normalize.ItemID(id)] }

var _ Service = (*Svc)(nil)

// New constructs the service
func New(db repokit.TxRunner, binder repokit.Binder[repo.Repo], opt Options) *Svc {
	if db == nil {
		panic("counting.Service requires a non nil TxRunner")
	}
	if binder == nil {
		panic("counting.Service requires a non nil Repo binder")
	}
	if opt.Cooldown <= 0 {
		opt.Cooldown = 2 * time.Second
	}
	if opt.TTL <= 0 {
		opt.TTL = 30 * time.Minute
	}
	if opt.ReapEvery <= 0 {
		opt.ReapEvery = time.Minute
	}
	if opt.MaxSessions <= 0 {
		opt.MaxSessions = 256
	}
	if opt.TxTimeout <= 0 {
		opt.TxTimeout = 5 * time.Second
	}
	if opt.Scheduler == nil {
		opt.Scheduler = ptime.Real()
	}
	if opt.Audit == nil {
		opt.Audit = auditdom.Discard{}
	}
	if opt.Now == nil {
		opt.Now = time.Now
	}

	return &Svc{
		Repo:     repokit.MustBind(binder, db),
		binder:   binder,
		tx:       repokit.WithBeginHooks(db, repokit.StatementTimeout(opt.TxTimeout)),
		opts:     opt,
		log:      logger.Named("counting"),
		sessions: make(map[uuid.UUID]*live),
	}
}

// Open seeds a manifest and starts a session over it
func (s *Svc) Open(ctx context.Context, in domain.OpenSessionIn) (domain.SessionView, error) {
	lines := in.Lines
	if len(lines) == 0 {
		if s.opts.Orders == nil {
			return domain.SessionView{}, perr.WithField(
				perr.InvalidArgf("lines are required when no order source is configured"), "lines")
		}
		var err error
		lines, err = s.opts.Orders.Lines(ctx, in.Kind, in.OrderID)
		if err != nil {
			return domain.SessionView{}, err
		}
		if len(lines) == 0 {
			return domain.SessionView{}, perr.NotFoundf("%s order %s has no lines", in.Kind, in.OrderID)
		}
	}

	seeds := make([]manifest.Seed, 0, len(lines))
	details := make(map[string]string)
	for _, l := range lines {
		seeds = append(seeds, manifest.Seed{
			ItemID:           l.ItemID,
			ExpectedQuantity: l.Expected,
			ActualQuantity:   l.Actual,
			DisplayName:      l.DisplayName,
		})
		if l.DetailID != "" {
			details[normalize.ItemID(l.ItemID)] = l.DetailID
		}
	}
	m, err := manifest.Build(seeds)
	if err != nil {
		return domain.SessionView{}, coreErr(err, "lines")
	}

	now := s.opts.Now()
	l := &live{
		id:       uuid.New(),
		kind:     in.Kind,
		orderID:  in.OrderID,
		details:  details,
		openedAt: now,
	}
	l.touch(now)
	sl := s.log.With().Str("session_id", l.id.String()).Logger()
	l.sess = scanner.New(m, scanner.Options{
		Cooldown:  s.opts.Cooldown,
		Scheduler: s.opts.Scheduler,
		Player:    s.opts.Player,
		Logger:    &sl,
	})

	s.mu.Lock()
	if len(s.sessions) >= s.opts.MaxSessions {
		s.mu.Unlock()
		return domain.SessionView{}, perr.Unavailablef("session limit of %d reached", s.opts.MaxSessions)
	}
	s.sessions[l.id] = l
	s.mu.Unlock()

	logger.C(logger.WithSession(ctx, l.id.String())).Info().
		Str("kind", string(in.Kind)).
		Str("order_id", in.OrderID).
		Int("lines", m.Len()).
		Msg("session opened")
	s.opts.Audit.Record(auditdom.Event{
		SessionID: l.id.String(),
		Type:      auditdom.EventOpened,
		Expected:  m.Len(),
		Detail:    string(in.Kind) + " " + in.OrderID,
		At:        now,
	})
	return s.view(l), nil
}

// Get returns the current view of a session
func (s *Svc) Get(_ context.Context, id uuid.UUID) (domain.SessionView, error) {
	l, err := s.lookup(id)
	if err != nil {
		return domain.SessionView{}, err
	}
	return s.view(l), nil
}

// Scan submits one decode event, rejections are results rather than errors
func (s *Svc) Scan(_ context.Context, id uuid.UUID, in domain.ScanIn) (domain.ScanResult, error) {
	l, err := s.lookup(id)
	if err != nil {
		return domain.ScanResult{}, err
	}
	res := l.sess.SubmitScan(in.Payload)
	if res.Dropped && l.sess.Closed() {
		return domain.ScanResult{}, perr.Gonef("session %s is closed", id)
	}
	now := s.opts.Now()
	l.touch(now)

	out := domain.ScanResult{Dropped: res.Dropped, Gate: gateView(res.Gate)}
	switch {
	case res.Dropped:
		out.Outcome = "dropped"
	case res.Discarded:
		out.Outcome = "discarded"
	default:
		out.Outcome = res.Outcome.Kind.String()
	}
	for _, sig := range res.Signals {
		switch sig.Type {
		case feedback.SignalCue:
			out.Cue = true
		case feedback.SignalAlert:
			out.Alert = &domain.AlertView{Kind: string(sig.Alert), Detail: sig.Detail}
		case feedback.SignalShowBanner:
			b := bannerView(sig.Banner)
			out.Banner = &b
			if line, ok := l.sess.Manifest().Lookup(sig.Banner.ItemID); ok {
				v := lineView(l, line)
				out.Line = &v
			}
		}
	}

	ev := auditdom.Event{
		SessionID: id.String(),
		Type:      auditdom.EventScan,
		Outcome:   out.Outcome,
		ItemID:    res.Outcome.ItemID,
		Actual:    res.Outcome.NewActual,
		Expected:  res.Outcome.Expected,
		At:        now,
	}
	if out.Alert != nil {
		ev.Detail = out.Alert.Detail
	}
	s.opts.Audit.Record(ev)
	return out, nil
}

// Adjust replaces the counted quantity of one line
func (s *Svc) Adjust(_ context.Context, id uuid.UUID, itemID string, in domain.AdjustIn) (domain.LineView, error) {
	l, err := s.lookup(id)
	if err != nil {
		return domain.LineView{}, err
	}
	line, err := l.sess.SetActual(itemID, in.Actual)
	if err != nil {
		return domain.LineView{}, coreErr(err, "actual")
	}
	now := s.opts.Now()
	l.touch(now)
	s.opts.Audit.Record(auditdom.Event{
		SessionID: id.String(),
		Type:      auditdom.EventManualEntry,
		ItemID:    line.ItemID,
		Actual:    line.ActualQuantity,
		Expected:  line.ExpectedQuantity,
		At:        now,
	})
	return lineView(l, line), nil
}

// Confirm tears the session down, stores its paper and pushes it upstream
// A failed store leaves the closed session in place so confirm can be retried,
// a failed push is recorded on the paper
func (s *Svc) Confirm(ctx context.Context, id uuid.UUID, in domain.ConfirmIn) (domain.PaperView, error) {
	l, err := s.lookup(id)
	if err != nil {
		return domain.PaperView{}, err
	}
	l.confirm.Lock()
	defer l.confirm.Unlock()
	if l.paper != nil {
		return *l.paper, nil
	}

	l.sess.Teardown()
	m := l.sess.Manifest()
	now := s.opts.Now()
	p := domain.PaperView{
		ID:               uuid.New(),
		SessionID:        id,
		Kind:             l.kind,
		OrderID:          l.orderID,
		DelivererName:    in.DelivererName,
		ReceiverName:     in.ReceiverName,
		DelivererSigHash: fingerprint(in.DelivererSignature),
		ReceiverSigHash:  fingerprint(in.ReceiverSignature),
		Description:      in.Description,
		Lines:            lineViews(l, m),
		Complete:         m.Complete(),
		CreatedAt:        now.UTC(),
	}

	log := logger.C(logger.WithSession(ctx, id.String()))
	err = repokit.WithTx(ctx, s.tx, func(q repokit.Queryer) error {
		return repokit.MustBind(s.binder, q).InsertPaper(ctx, p)
	})
	if err != nil {
		log.Error().Err(err).Msg("store paper failed")
		return domain.PaperView{}, storeErr(err, "store paper")
	}
	l.paper = &p
	s.remove(id)
	s.opts.Audit.Record(auditdom.Event{
		SessionID: id.String(),
		Type:      auditdom.EventConfirmed,
		Detail:    p.ID.String(),
		At:        now,
	})
	log.Info().Str("paper_id", p.ID.String()).Bool("complete", p.Complete).Msg("session confirmed")

	if s.opts.Orders == nil {
		return p, nil
	}
	upstreamID, err := s.opts.Orders.Push(ctx, domain.Confirmation{
		PaperID:            p.ID,
		Kind:               p.Kind,
		OrderID:            p.OrderID,
		Lines:              p.Lines,
		DelivererSignature: in.DelivererSignature,
		ReceiverSignature:  in.ReceiverSignature,
		Description:        p.Description,
		ConfirmedAt:        now,
	})
	pushErr := ""
	if err != nil {
		pushErr = err.Error()
		log.Warn().Err(err).Str("paper_id", p.ID.String()).Msg("paper push failed")
	}
	if err := s.Repo.MarkPushed(ctx, p.ID, upstreamID, pushErr); err != nil {
		log.Error().Err(err).Str("paper_id", p.ID.String()).Msg("mark paper pushed failed")
		return p, nil
	}
	p.Pushed = pushErr == ""
	p.UpstreamID = upstreamID
	p.PushError = pushErr
	l.paper = &p
	return p, nil
}

// Close tears a session down without a paper
func (s *Svc) Close(ctx context.Context, id uuid.UUID) error {
	l := s.remove(id)
	if l == nil {
		return perr.NotFoundf("session %s not found", id)
	}
	l.sess.Teardown()
	s.opts.Audit.Record(auditdom.Event{
		SessionID: id.String(),
		Type:      auditdom.EventClosed,
		At:        s.opts.Now(),
	})
	logger.C(logger.WithSession(ctx, id.String())).Info().Msg("session closed")
	return nil
}

// Paper loads a stored paper
func (s *Svc) Paper(ctx context.Context, id uuid.UUID) (domain.PaperView, error) {
	p, err := s.Repo.Paper(ctx, id)
	if err != nil {
		return domain.PaperView{}, storeErr(err, "load paper")
	}
	return p, nil
}

// SessionPaper loads the paper a confirmed session produced, the session
// itself is gone by then
func (s *Svc) SessionPaper(ctx context.Context, sessionID uuid.UUID) (domain.PaperView, error) {
	p, err := s.Repo.PaperBySession(ctx, sessionID)
	if err != nil {
		return domain.PaperView{}, storeErr(err, "load session paper")
	}
	return p, nil
}

// Len returns how many sessions are hosted
func (s *Svc) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

func (s *Svc) lookup(id uuid.UUID) (*live, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.sessions[id]
	if !ok {
		return nil, perr.NotFoundf("session %s not found", id)
	}
	return l, nil
}

func (s *Svc) remove(id uuid.UUID) *live {
	s.mu.Lock()
	defer s.mu.Unlock()
	l := s.sessions[id]
	delete(s.sessions, id)
	return l
}

func fingerprint(sig string) string {
	sum := sha256.Sum256([]byte(sig))
	return hex.EncodeToString(sum[:])
}
