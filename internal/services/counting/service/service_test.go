package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"stockcount/internal/modkit/repokit"
	perr "stockcount/internal/platform/errors"
	ptime "stockcount/internal/platform/time"
	"stockcount/internal/platform/testkit"
	auditdom "stockcount/internal/services/auditlog/domain"
	"stockcount/internal/services/counting/domain"
	"stockcount/internal/services/counting/repo"

	"github.com/google/uuid"
)

// memDB is a TxRunner that records statements and runs Tx inline
type memDB struct {
	mu    sync.Mutex
	stmts []string
}

func (d *memDB) Exec(_ context.Context, sql string, _ ...any) (repokit.CommandTag, error) {
	d.mu.Lock()
	d.stmts = append(d.stmts, sql)
	d.mu.Unlock()
	return nil, nil
}
func (d *memDB) Query(context.Context, string, ...any) (repokit.Rows, error) { return nil, nil }
func (d *memDB) QueryRow(context.Context, string, ...any) repokit.Row        { return nil }
func (d *memDB) Tx(_ context.Context, fn func(repokit.Queryer) error) error  { return fn(d) }

// memPapers is both the binder and the repo
type memPapers struct {
	mu        sync.Mutex
	papers    map[uuid.UUID]domain.PaperView
	insertErr error
	marks     []string
}

func newMemPapers() *memPapers { return &memPapers{papers: map[uuid.UUID]domain.PaperView{}} }

func (m *memPapers) Bind(repokit.Queryer) repo.Repo     { return m }
func (m *memPapers) EnsureSchema(context.Context) error { return nil }

func (m *memPapers) InsertPaper(_ context.Context, p domain.PaperView) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.insertErr != nil {
		return m.insertErr
	}
	m.papers[p.ID] = p
	return nil
}

func (m *memPapers) MarkPushed(_ context.Context, id uuid.UUID, upstreamID, pushErr string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.papers[id]
	if !ok {
		return perr.ErrNotFound
	}
	p.Pushed, p.UpstreamID, p.PushError = pushErr == "", upstreamID, pushErr
	m.papers[id] = p
	m.marks = append(m.marks, upstreamID+"|"+pushErr)
	return nil
}

func (m *memPapers) Paper(_ context.Context, id uuid.UUID) (domain.PaperView, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.papers[id]
	if !ok {
		return domain.PaperView{}, perr.NotFoundf("paper %s not found", id)
	}
	return p, nil
}

func (m *memPapers) PaperBySession(_ context.Context, sid uuid.UUID) (domain.PaperView, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, p := range m.papers {
		if p.SessionID == sid {
			return p, nil
		}
	}
	return domain.PaperView{}, perr.ErrNotFound
}

type orders struct {
	lines   []domain.LineInput
	err     error
	pushErr error
	pushed  []domain.Confirmation
}

func (o *orders) Lines(context.Context, domain.Kind, string) ([]domain.LineInput, error) {
	return o.lines, o.err
}

func (o *orders) Push(_ context.Context, c domain.Confirmation) (string, error) {
	o.pushed = append(o.pushed, c)
	if o.pushErr != nil {
		return "", o.pushErr
	}
	return "P-1", nil
}

type auditRec struct {
	mu     sync.Mutex
	events []auditdom.Event
}

func (a *auditRec) Record(e auditdom.Event) {
	a.mu.Lock()
	a.events = append(a.events, e)
	a.mu.Unlock()
}

func (a *auditRec) types() []auditdom.EventType {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := make([]auditdom.EventType, 0, len(a.events))
	for _, e := range a.events {
		out = append(out, e.Type)
	}
	return out
}

type fixture struct {
	svc    *Svc
	db     *memDB
	papers *memPapers
	clock  *ptime.Manual
	audit  *auditRec
	orders *orders
}

func newFixture(t *testing.T, mut func(*Options)) *fixture {
	t.Helper()
	f := &fixture{
		db:     &memDB{},
		papers: newMemPapers(),
		clock:  ptime.NewManual(time.Date(2025, 9, 3, 13, 0, 0, 0, time.UTC)),
		audit:  &auditRec{},
		orders: &orders{},
	}
	o := Options{
		Cooldown:  2 * time.Second,
		TTL:       10 * time.Minute,
		Scheduler: f.clock,
		Now:       f.clock.Now,
		Audit:     f.audit,
		Orders:    f.orders,
	}
	if mut != nil {
		mut(&o)
	}
	f.svc = New(f.db, f.papers, o)
	return f
}

var twoLines = []domain.LineInput{
	{ItemID: "SKU-A", Expected: 2, DisplayName: "Bolt", DetailID: "D-A"},
	{ItemID: "SKU-B", Expected: 1},
}

func (f *fixture) open(t *testing.T) domain.SessionView {
	t.Helper()
	v, err := f.svc.Open(context.Background(), domain.OpenSessionIn{Kind: domain.KindImport, OrderID: "IO-1", Lines: twoLines})
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	return v
}

func (f *fixture) scan(t *testing.T, id uuid.UUID, payload string) domain.ScanResult {
	t.Helper()
	r, err := f.svc.Scan(context.Background(), id, domain.ScanIn{Payload: payload})
	if err != nil {
		t.Fatalf("Scan(%q): %v", payload, err)
	}
	return r
}

var sig = domain.ConfirmIn{
	DelivererName:      "A",
	ReceiverName:       "B",
	DelivererSignature: "data:image/png;base64,AAAA",
	ReceiverSignature:  "data:image/png;base64,BBBB",
}

func TestOpen_ExplicitLines(t *testing.T) {
	t.Parallel()
	f := newFixture(t, nil)

	v := f.open(t)
	if v.State != domain.StateOpen || v.Gate.State != "idle" || !v.Gate.Open {
		t.Fatalf("view %+v", v)
	}
	if len(v.Lines) != 2 || v.Lines[0].Status != "LACK" || v.Lines[0].DetailID != "D-A" || v.Total != 2 {
		t.Fatalf("lines %+v", v.Lines)
	}
	if got := f.audit.types(); len(got) != 1 || got[0] != auditdom.EventOpened {
		t.Fatalf("audit %v", got)
	}
	if f.svc.Len() != 1 {
		t.Fatalf("len %d", f.svc.Len())
	}
}

func TestOpen_Errors(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	f := newFixture(t, nil)
	_, err := f.svc.Open(ctx, domain.OpenSessionIn{Kind: domain.KindImport, OrderID: "IO-1", Lines: []domain.LineInput{
		{ItemID: "SKU-A", Expected: 1}, {ItemID: " SKU-A ", Expected: 2},
	}})
	if perr.CodeOf(err) != perr.ErrorCodeValidation {
		t.Fatalf("duplicate: %v", err)
	}
	if e, _ := perr.As(err); e.Field() != "lines" {
		t.Fatalf("field %q", e.Field())
	}

	noSource := newFixture(t, func(o *Options) { o.Orders = nil })
	_, err = noSource.svc.Open(ctx, domain.OpenSessionIn{Kind: domain.KindExport, OrderID: "ER-1"})
	if perr.CodeOf(err) != perr.ErrorCodeInvalidArgument {
		t.Fatalf("no source: %v", err)
	}

	empty := newFixture(t, nil)
	_, err = empty.svc.Open(ctx, domain.OpenSessionIn{Kind: domain.KindExport, OrderID: "ER-1"})
	if perr.CodeOf(err) != perr.ErrorCodeNotFound {
		t.Fatalf("empty order: %v", err)
	}

	down := newFixture(t, nil)
	down.orders.err = perr.Upstreamf("wms down")
	_, err = down.svc.Open(ctx, domain.OpenSessionIn{Kind: domain.KindExport, OrderID: "ER-1"})
	if perr.CodeOf(err) != perr.ErrorCodeUpstream {
		t.Fatalf("upstream: %v", err)
	}
}

func TestOpen_FromOrderSource(t *testing.T) {
	t.Parallel()
	f := newFixture(t, nil)
	f.orders.lines = []domain.LineInput{{ItemID: "X1", Expected: 3, Actual: 1, DetailID: "ERD-9"}}

	v, err := f.svc.Open(context.Background(), domain.OpenSessionIn{Kind: domain.KindExport, OrderID: "ER-1"})
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if len(v.Lines) != 1 || v.Lines[0].Actual != 1 || v.Lines[0].Status != "LESS" || v.Lines[0].DetailID != "ERD-9" {
		t.Fatalf("lines %+v", v.Lines)
	}
}

func TestOpen_SessionLimit(t *testing.T) {
	t.Parallel()
	f := newFixture(t, func(o *Options) { o.MaxSessions = 1 })
	f.open(t)
	_, err := f.svc.Open(context.Background(), domain.OpenSessionIn{Kind: domain.KindImport, OrderID: "IO-2", Lines: twoLines})
	if perr.CodeOf(err) != perr.ErrorCodeUnavailable {
		t.Fatalf("limit: %v", err)
	}
}

func TestScan_AcceptCooldownAndReopen(t *testing.T) {
	t.Parallel()
	f := newFixture(t, nil)
	id := f.open(t).ID

	r := f.scan(t, id, `{"id":"SKU-A"}`)
	if r.Outcome != "accepted" || !r.Cue || r.Banner == nil || r.Banner.NewActual != 1 || r.Gate.State != "cooldown" {
		t.Fatalf("first scan %+v", r)
	}
	if r.Line == nil || r.Line.Actual != 1 || r.Line.Status != "LESS" {
		t.Fatalf("line %+v", r.Line)
	}

	r = f.scan(t, id, `{"id":"SKU-A"}`)
	if r.Outcome != "dropped" || !r.Dropped || r.Cue {
		t.Fatalf("cooldown scan %+v", r)
	}

	v, _ := f.svc.Get(context.Background(), id)
	if v.Banner == nil || v.Banner.ItemID != "SKU-A" {
		t.Fatalf("banner during cooldown %+v", v.Banner)
	}

	f.clock.Advance(2 * time.Second)
	v, _ = f.svc.Get(context.Background(), id)
	if v.Banner != nil || v.Gate.State != "idle" {
		t.Fatalf("after cooldown %+v", v)
	}

	r = f.scan(t, id, `%7B%22id%22%3A%22SKU-A%22%7D`)
	if r.Outcome != "accepted" || r.Line.Actual != 2 || r.Line.Status != "MATCH" {
		t.Fatalf("percent encoded scan %+v", r)
	}
	v, _ = f.svc.Get(context.Background(), id)
	if v.Stats.Submitted != 3 || v.Stats.Dropped != 1 || v.Stats.Accepted != 2 {
		t.Fatalf("stats %+v", v.Stats)
	}
}

func TestScan_RejectionsReopenImmediately(t *testing.T) {
	t.Parallel()
	f := newFixture(t, nil)
	id := f.open(t).ID

	tests := []struct {
		payload string
		outcome string
		alert   string
	}{
		{`{"id":"NOPE"}`, "unknown_item", "not_in_manifest"},
		{`not json`, "malformed", "invalid_payload"},
		{``, "malformed", "invalid_payload"},
		{`{"sku":"SKU-A"}`, "malformed", "invalid_payload"},
	}
	for _, tc := range tests {
		r := f.scan(t, id, tc.payload)
		if r.Outcome != tc.outcome || r.Alert == nil || r.Alert.Kind != tc.alert || r.Cue {
			t.Fatalf("%q: %+v", tc.payload, r)
		}
		if r.Gate.State != "idle" {
			t.Fatalf("%q left gate %s", tc.payload, r.Gate.State)
		}
	}
	if r := f.scan(t, id, `{"id":"SKU-B"}`); r.Outcome != "accepted" {
		t.Fatalf("scan after rejections %+v", r)
	}

	f.audit.mu.Lock()
	defer f.audit.mu.Unlock()
	unknown := f.audit.events[1]
	if unknown.Type != auditdom.EventScan || unknown.Outcome != "unknown_item" || unknown.Detail != "NOPE" {
		t.Fatalf("audit %+v", unknown)
	}
}

func TestScan_UnknownSession(t *testing.T) {
	t.Parallel()
	f := newFixture(t, nil)
	_, err := f.svc.Scan(context.Background(), uuid.New(), domain.ScanIn{Payload: `{"id":"A"}`})
	if perr.CodeOf(err) != perr.ErrorCodeNotFound {
		t.Fatalf("err %v", err)
	}
}

func TestAdjust(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newFixture(t, nil)
	id := f.open(t).ID
	f.scan(t, id, `{"id":"SKU-A"}`)

	line, err := f.svc.Adjust(ctx, id, "sku-a", domain.AdjustIn{Actual: 5})
	if perr.CodeOf(err) != perr.ErrorCodeNotFound {
		t.Fatalf("case sensitive ids: %v %+v", err, line)
	}

	line, err = f.svc.Adjust(ctx, id, "SKU-A", domain.AdjustIn{Actual: 5})
	if err != nil || line.Actual != 5 || line.Status != "OVER" {
		t.Fatalf("adjust %+v %v", line, err)
	}
	if g, _ := f.svc.Get(ctx, id); g.Gate.State != "cooldown" {
		t.Fatalf("manual entry touched the gate: %s", g.Gate.State)
	}

	_, err = f.svc.Adjust(ctx, id, "SKU-A", domain.AdjustIn{Actual: -1})
	if perr.CodeOf(err) != perr.ErrorCodeValidation {
		t.Fatalf("negative: %v", err)
	}
}

func TestConfirm_StoresAndPushes(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newFixture(t, nil)
	id := f.open(t).ID
	f.scan(t, id, `{"id":"SKU-A"}`)

	p, err := f.svc.Confirm(ctx, id, sig)
	if err != nil {
		t.Fatalf("Confirm: %v", err)
	}
	if !p.Pushed || p.UpstreamID != "P-1" || p.Complete || len(p.Lines) != 2 || p.Lines[0].Actual != 1 {
		t.Fatalf("paper %+v", p)
	}
	if len(p.DelivererSigHash) != 64 || p.DelivererSigHash == p.ReceiverSigHash {
		t.Fatalf("fingerprints %q %q", p.DelivererSigHash, p.ReceiverSigHash)
	}
	if len(f.orders.pushed) != 1 || f.orders.pushed[0].DelivererSignature != sig.DelivererSignature {
		t.Fatalf("push %+v", f.orders.pushed)
	}
	if f.clock.Pending() != 0 {
		t.Fatalf("cooldown timer survived teardown")
	}

	if _, err := f.svc.Get(ctx, id); perr.CodeOf(err) != perr.ErrorCodeNotFound {
		t.Fatalf("session should be gone: %v", err)
	}
	stored, err := f.svc.Paper(ctx, p.ID)
	if err != nil || !stored.Pushed {
		t.Fatalf("stored %+v %v", stored, err)
	}
	if bySession, err := f.svc.SessionPaper(ctx, id); err != nil || bySession.ID != p.ID {
		t.Fatalf("by session %+v %v", bySession, err)
	}
	if _, err := f.svc.SessionPaper(ctx, uuid.New()); perr.CodeOf(err) != perr.ErrorCodeNotFound {
		t.Fatalf("unknown session paper: %v", err)
	}

	found := false
	for _, s := range f.db.stmts {
		if s == "SET LOCAL statement_timeout = 5000" {
			found = true
		}
	}
	if !found {
		t.Fatalf("statement timeout hook not run: %v", f.db.stmts)
	}
	testkit.MustContain(t, string(f.audit.types()[len(f.audit.types())-1]), "confirmed")
}

func TestConfirm_PushFailureIsRecorded(t *testing.T) {
	t.Parallel()
	f := newFixture(t, nil)
	f.orders.pushErr = errors.New("backend 502")
	id := f.open(t).ID

	p, err := f.svc.Confirm(context.Background(), id, sig)
	if err != nil {
		t.Fatalf("push failure must not fail confirm: %v", err)
	}
	if p.Pushed || p.PushError != "backend 502" {
		t.Fatalf("paper %+v", p)
	}
}

func TestConfirm_WithoutOrderSourceStaysLocal(t *testing.T) {
	t.Parallel()
	f := newFixture(t, func(o *Options) { o.Orders = nil })
	id := f.open(t).ID
	p, err := f.svc.Confirm(context.Background(), id, sig)
	if err != nil || p.Pushed || len(f.papers.marks) != 0 {
		t.Fatalf("paper %+v err %v marks %v", p, err, f.papers.marks)
	}
}

func TestConfirm_StoreFailureKeepsClosedSession(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newFixture(t, nil)
	id := f.open(t).ID
	f.papers.insertErr = errors.New("connection reset")

	if _, err := f.svc.Confirm(ctx, id, sig); perr.CodeOf(err) != perr.ErrorCodeDB {
		t.Fatalf("store failure: %v", err)
	}
	v, err := f.svc.Get(ctx, id)
	if err != nil || v.State != domain.StateClosed || v.Gate.State != "closed" {
		t.Fatalf("view %+v err %v", v, err)
	}
	if _, err := f.svc.Scan(ctx, id, domain.ScanIn{Payload: `{"id":"SKU-A"}`}); perr.CodeOf(err) != perr.ErrorCodeGone {
		t.Fatalf("scan after teardown: %v", err)
	}
	if _, err := f.svc.Adjust(ctx, id, "SKU-A", domain.AdjustIn{Actual: 1}); perr.CodeOf(err) != perr.ErrorCodeGone {
		t.Fatalf("adjust after teardown: %v", err)
	}

	f.papers.insertErr = nil
	if _, err := f.svc.Confirm(ctx, id, sig); err != nil {
		t.Fatalf("retry confirm: %v", err)
	}
}

func TestClose(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newFixture(t, nil)
	id := f.open(t).ID
	f.scan(t, id, `{"id":"SKU-A"}`)

	if err := f.svc.Close(ctx, id); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if f.clock.Pending() != 0 {
		t.Fatalf("cooldown timer survived close")
	}
	if err := f.svc.Close(ctx, id); perr.CodeOf(err) != perr.ErrorCodeNotFound {
		t.Fatalf("second close: %v", err)
	}
}

func TestReap(t *testing.T) {
	t.Parallel()
	f := newFixture(t, nil)
	idle := f.open(t).ID
	f.clock.Advance(6 * time.Minute)
	busy := f.open(t).ID
	f.clock.Advance(5 * time.Minute)

	if n := f.svc.Reap(f.clock.Now()); n != 1 {
		t.Fatalf("reaped %d want 1", n)
	}
	if _, err := f.svc.Get(context.Background(), idle); perr.CodeOf(err) != perr.ErrorCodeNotFound {
		t.Fatalf("idle session survived: %v", err)
	}
	if _, err := f.svc.Get(context.Background(), busy); err != nil {
		t.Fatalf("busy session reaped: %v", err)
	}
}

func TestRun_TearsDownOnShutdown(t *testing.T) {
	t.Parallel()
	f := newFixture(t, func(o *Options) { o.ReapEvery = time.Hour })
	f.open(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := f.svc.Run(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("Run: %v", err)
	}
	if f.svc.Len() != 0 {
		t.Fatalf("sessions left %d", f.svc.Len())
	}
}

func TestPaper_NotFound(t *testing.T) {
	t.Parallel()
	f := newFixture(t, nil)
	if _, err := f.svc.Paper(context.Background(), uuid.New()); perr.CodeOf(err) != perr.ErrorCodeNotFound {
		t.Fatalf("err %v", err)
	}
}

func TestNew_RequiresDeps(t *testing.T) {
	t.Parallel()
	testkit.MustPanic(t, func() { New(nil, newMemPapers(), Options{}) })
	testkit.MustPanic(t, func() { New(&memDB{}, nil, Options{}) })
}
