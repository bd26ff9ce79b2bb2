// Package repo stores the scan audit trail in ClickHouse
//
// The table is provisioned with
//
//	CREATE TABLE scan_events (
//		session_id String,
//		type       LowCardinality(String),
//		outcome    LowCardinality(String),
//		item_id    String,
//		actual     Int64,
//		expected   Int64,
//		detail     String,
//		at         DateTime64(3, 'UTC')
//	) ENGINE = MergeTree ORDER BY (session_id, at)
package repo

import (
	"context"

	"stockcount/internal/platform/store"
	"stockcount/internal/services/auditlog/domain"
)

// Table is the audit table name
const Table = "scan_events"

// Repo is the persistence surface of the audit writer and reader
type Repo interface {
	Insert(ctx context.Context, events []domain.Event) error
	BySession(ctx context.Context, q domain.SessionQuery) ([]domain.Event, error)
}

type chRepo struct{ c store.Clickhouse }

// NewCH returns a Repo over a ClickHouse seam
func NewCH(c store.Clickhouse) Repo {
	if c == nil {
		panic("auditlog: nil clickhouse")
	}
	return chRepo{c: c}
}

// Insert writes events in one batch, column order follows the table
func (r chRepo) Insert(ctx context.Context, events []domain.Event) error {
	if len(events) == 0 {
		return nil
	}
	rows := make([][]any, 0, len(events))
	for _, e := range events {
		rows = append(rows, []any{
			e.SessionID,
			string(e.Type),
			e.Outcome,
			e.ItemID,
			int64(e.Actual),
			int64(e.Expected),
			e.Detail,
			e.At.UTC(),
		})
	}
	return r.c.Insert(ctx, Table, rows)
}

// BySession lists a session trail oldest first
func (r chRepo) BySession(ctx context.Context, q domain.SessionQuery) ([]domain.Event, error) {
	const sql = `
		SELECT session_id, type, outcome, item_id, actual, expected, detail, at
		FROM scan_events
		WHERE session_id = ?
		ORDER BY at
		LIMIT ?`
	return store.Many(ctx, r.c, scanEvent, sql, q.SessionID, q.Limit)
}

func scanEvent(row store.Row) (domain.Event, error) {
	var (
		e                domain.Event
		typ              string
		actual, expected int64
	)
	if err := row.Scan(&e.SessionID, &typ, &e.Outcome, &e.ItemID, &actual, &expected, &e.Detail, &e.At); err != nil {
		return domain.Event{}, err
	}
	e.Type = domain.EventType(typ)
	e.Actual = int(actual)
	e.Expected = int(expected)
	return e, nil
}
