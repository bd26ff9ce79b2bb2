package repokit

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"stockcount/internal/platform/testkit"
)

type recQ struct {
	stmts []string
	fail  string
}

func (r *recQ) Exec(_ context.Context, sql string, _ ...any) (CommandTag, error) {
	r.stmts = append(r.stmts, sql)
	if r.fail != "" && strings.HasPrefix(sql, r.fail) {
		return nil, errors.New("exec failed")
	}
	return nil, nil
}
func (r *recQ) Query(context.Context, string, ...any) (Rows, error) { return nil, nil }
func (r *recQ) QueryRow(context.Context, string, ...any) Row        { return nil }
func (r *recQ) Tx(_ context.Context, fn func(Queryer) error) error  { return fn(r) }

type guardFn func(context.Context) error

func (g guardFn) Guard(ctx context.Context) error { return g(ctx) }

func TestWithBeginHooks_RunBeforeBody(t *testing.T) {
	t.Parallel()
	q := &recQ{}
	tx := WithBeginHooks(q, StatementTimeout(5*time.Second))

	err := WithTx(context.Background(), tx, func(q Queryer) error {
		_, err := q.Exec(context.Background(), "INSERT INTO papers")
		return err
	})
	if err != nil {
		t.Fatalf("WithTx: %v", err)
	}
	want := []string{"SET LOCAL statement_timeout = 5000", "INSERT INTO papers"}
	if strings.Join(q.stmts, "|") != strings.Join(want, "|") {
		t.Fatalf("stmts %v want %v", q.stmts, want)
	}
}

func TestWithBeginHooks_HookErrorSkipsBody(t *testing.T) {
	t.Parallel()
	q := &recQ{fail: "SET LOCAL"}
	ran := false
	err := WithBeginHooks(q, StatementTimeout(time.Second)).Tx(context.Background(), func(Queryer) error {
		ran = true
		return nil
	})
	if err == nil || ran {
		t.Fatalf("err=%v ran=%v", err, ran)
	}
}

func TestBindFunc(t *testing.T) {
	t.Parallel()
	b := BindFunc[string](func(q Queryer) string { return "bound" })
	if got := MustBind[string](b, &recQ{}); got != "bound" {
		t.Fatalf("got %q", got)
	}
	testkit.MustPanic(t, func() { MustBind[string](b, nil) })
}

func TestMustGuard(t *testing.T) {
	t.Parallel()
	testkit.MustNotPanic(t, func() {
		MustGuard(context.Background(), guardFn(func(ctx context.Context) error {
			if _, ok := ctx.Deadline(); !ok {
				return errors.New("no deadline")
			}
			return nil
		}))
	})
	testkit.MustPanic(t, func() {
		MustGuard(context.Background(), guardFn(func(context.Context) error { return errors.New("pg down") }))
	})
}
