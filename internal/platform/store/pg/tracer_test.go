package pg

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/rs/zerolog"
)

func TestCompact(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"select 1":                                  "select 1",
		"  select   1  ":                            "select 1",
		"INSERT INTO papers\n\t(id, kind)\r\nVALUES": "INSERT INTO papers (id, kind) VALUES",
		"":                                          "",
	}
	for in, want := range cases {
		if got := compact(in); got != want {
			t.Fatalf("compact(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestTracer_LevelsAndFields(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	tr := Tracer(zerolog.New(&buf).Level(zerolog.ErrorLevel))

	type line struct {
		Level     string  `json:"level"`
		ElapsedMS float64 `json:"elapsed_ms"`
		SQL       string  `json:"sql"`
		Error     string  `json:"error"`
		Component string  `json:"component"`
	}
	read := func() line {
		t.Helper()
		var l line
		if err := json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &l); err != nil {
			t.Fatalf("unmarshal: %v raw=%s", err, buf.String())
		}
		buf.Reset()
		return l
	}

	ev := QueryEvent{SQL: "SELECT *\n FROM papers", ElapsedUS: 2500, Err: errors.New("boom")}
	tr.OnQuery(context.Background(), ev)
	got := read()
	if got.Level != "info" || got.ElapsedMS != 2.5 || got.SQL != "SELECT * FROM papers" {
		t.Fatalf("info line %+v", got)
	}
	if got.Error != "boom" || got.Component != "pg" {
		t.Fatalf("fields %+v", got)
	}

	ev.Slow = true
	tr.OnQuery(context.Background(), ev)
	if got := read(); got.Level != "warn" {
		t.Fatalf("slow query level %q", got.Level)
	}
}
