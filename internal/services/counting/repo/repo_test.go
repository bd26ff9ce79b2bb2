package repo

import (
	"context"
	"strings"
	"testing"
	"time"

	perr "stockcount/internal/platform/errors"
	"stockcount/internal/platform/store"
	"stockcount/internal/services/counting/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
)

type affected int64

func (a affected) String() string      { return "UPDATE" }
func (a affected) RowsAffected() int64 { return int64(a) }

// recQ records statements and serves canned rows for queries
type recQ struct {
	stmts   []string
	args    [][]any
	execErr error
	tag     affected
	rows    []store.Rows
}

func (q *recQ) Exec(_ context.Context, sql string, args ...any) (store.CommandTag, error) {
	q.stmts = append(q.stmts, sql)
	q.args = append(q.args, args)
	return q.tag, q.execErr
}

func (q *recQ) Query(_ context.Context, sql string, args ...any) (store.Rows, error) {
	q.stmts = append(q.stmts, sql)
	q.args = append(q.args, args)
	r := q.rows[0]
	q.rows = q.rows[1:]
	return r, nil
}

func (q *recQ) QueryRow(context.Context, string, ...any) store.Row { return nil }

type cannedRows struct {
	data [][]any
	i    int
}

func (r *cannedRows) Next() bool        { r.i++; return r.i <= len(r.data) }
func (r *cannedRows) Err() error        { return nil }
func (r *cannedRows) Close()            {}
func (r *cannedRows) Columns() []string { return nil }
func (r *cannedRows) Scan(dest ...any) error {
	row := r.data[r.i-1]
	for i, d := range dest {
		switch p := d.(type) {
		case *string:
			*p = row[i].(string)
		case *int:
			*p = row[i].(int)
		case *bool:
			*p = row[i].(bool)
		case *time.Time:
			*p = row[i].(time.Time)
		}
	}
	return nil
}

func TestInsertPaper_WritesHeaderAndLines(t *testing.T) {
	t.Parallel()

	q := &recQ{}
	p := domain.PaperView{
		ID:        uuid.New(),
		SessionID: uuid.New(),
		Kind:      domain.KindExport,
		OrderID:   "ER-1",
		Lines: []domain.LineView{
			{ItemID: "SKU-A", Expected: 1, Actual: 1, Status: "MATCH"},
			{ItemID: "SKU-B", Expected: 2, Actual: 3, Status: "OVER"},
		},
	}
	if err := NewPG().Bind(q).InsertPaper(context.Background(), p); err != nil {
		t.Fatalf("insert: %v", err)
	}
	if len(q.stmts) != 3 || !strings.Contains(q.stmts[0], "INSERT INTO papers") {
		t.Fatalf("stmts %v", q.stmts)
	}
	if q.args[0][0] != p.ID.String() || q.args[0][2] != "export" {
		t.Fatalf("header args %v", q.args[0])
	}
	if q.args[2][1] != 1 || q.args[2][2] != "SKU-B" || q.args[2][6] != "OVER" {
		t.Fatalf("second line args %v", q.args[2])
	}
}

func TestInsertPaper_DuplicateSessionIsConflict(t *testing.T) {
	t.Parallel()

	q := &recQ{execErr: &pgconn.PgError{Code: "23505"}}
	err := NewPG().Bind(q).InsertPaper(context.Background(), domain.PaperView{ID: uuid.New(), SessionID: uuid.New()})
	if !perr.IsCode(err, perr.ErrorCodeConflict) {
		t.Fatalf("err %v", err)
	}
}

func TestInsertPaper_ConstraintNamesField(t *testing.T) {
	t.Parallel()

	q := &recQ{execErr: &pgconn.PgError{Code: "23502", ColumnName: "order_id"}}
	err := NewPG().Bind(q).InsertPaper(context.Background(), domain.PaperView{ID: uuid.New(), SessionID: uuid.New()})
	if !perr.IsCode(err, perr.ErrorCodeValidation) {
		t.Fatalf("err %v", err)
	}
	if e, ok := perr.As(err); !ok || e.Field() != "order_id" {
		t.Fatalf("field not attached: %+v", e)
	}
}

func TestMarkPushed_MissingPaper(t *testing.T) {
	t.Parallel()

	q := &recQ{tag: 0}
	if err := NewPG().Bind(q).MarkPushed(context.Background(), uuid.New(), "", "boom"); !perr.IsCode(err, perr.ErrorCodeNotFound) {
		t.Fatalf("err %v", err)
	}
	if q.args[0][1] != false || q.args[0][3] != "boom" {
		t.Fatalf("args %v", q.args[0])
	}
}

func TestPaper_LoadsLinesInOrder(t *testing.T) {
	t.Parallel()

	id, session := uuid.New(), uuid.New()
	at := time.Date(2025, 9, 3, 13, 0, 0, 0, time.UTC)
	q := &recQ{rows: []store.Rows{
		&cannedRows{data: [][]any{{
			id.String(), session.String(), "import", "IO-1", "Ana", "Bo",
			"aa", "bb", "", true, true, "PAPER-9", "", at,
		}}},
		&cannedRows{data: [][]any{
			{"SKU-A", "Bolt", 2, 2, "MATCH", "IOD-1"},
			{"SKU-B", "", 1, 0, "LACK", ""},
		}},
	}}
	p, err := NewPG().Bind(q).Paper(context.Background(), id)
	if err != nil {
		t.Fatalf("paper: %v", err)
	}
	if p.ID != id || p.SessionID != session || p.Kind != domain.KindImport || !p.Pushed || !p.CreatedAt.Equal(at) {
		t.Fatalf("paper %+v", p)
	}
	if len(p.Lines) != 2 || p.Lines[1].Status != "LACK" || p.Lines[0].DisplayName != "Bolt" {
		t.Fatalf("lines %+v", p.Lines)
	}
}

func TestPaper_NotFound(t *testing.T) {
	t.Parallel()

	q := &recQ{rows: []store.Rows{&cannedRows{}}}
	_, err := NewPG().Bind(q).PaperBySession(context.Background(), uuid.New())
	if !perr.IsCode(err, perr.ErrorCodeNotFound) {
		t.Fatalf("err %v", err)
	}
	if !strings.Contains(q.stmts[0], "WHERE session_id") {
		t.Fatalf("sql %s", q.stmts[0])
	}
}
