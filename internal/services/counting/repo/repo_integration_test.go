//go:build integration_pg
// +build integration_pg

package repo

import (
	"context"
	"fmt"
	"io"
	"testing"
	"time"

	perr "stockcount/internal/platform/errors"
	"stockcount/internal/platform/store"
	"stockcount/internal/services/counting/domain"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// startPostgres launches a disposable Postgres and returns DSN + stop func
func startPostgres(t *testing.T) (dsn string, stop func()) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Minute)
	c, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{
		ContainerRequest: tc.ContainerRequest{
			Image:        "postgres:16-alpine",
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     "postgres",
				"POSTGRES_PASSWORD": "postgres",
				"POSTGRES_DB":       "papers",
			},
			WaitingFor: wait.ForAll(
				wait.ForListeningPort("5432/tcp"),
				wait.ForLog("database system is ready to accept connections"),
			).WithDeadline(2 * time.Minute),
		},
		Started: true,
	})
	if err != nil {
		cancel()
		t.Fatalf("failed to start postgres container: %v", err)
	}
	stop = func() {
		_ = c.Terminate(context.Background())
		cancel()
	}

	host, err := c.Host(ctx)
	if err != nil {
		stop()
		t.Fatalf("failed to get container host: %v", err)
	}
	mp, err := c.MappedPort(ctx, "5432/tcp")
	if err != nil {
		stop()
		t.Fatalf("failed to get mapped port: %v", err)
	}
	return fmt.Sprintf("postgres://postgres:postgres@%s:%s/papers?sslmode=disable", host, mp.Port()), stop
}

func TestPapers_Integration_RoundTrip(t *testing.T) {
	dsn, stop := startPostgres(t)
	defer stop()

	ctx, cancel := context.WithTimeout(context.Background(), 90*time.Second)
	defer cancel()

	st, err := store.Open(ctx, store.Config{
		AppName: "stockcount-test",
		PG:      store.PGConfig{Enabled: true, URL: dsn, MaxConns: 2, ConnectRetries: 20, PingTimeout: 3 * time.Second},
	}, store.WithLogger(zerolog.New(io.Discard)))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	defer func() { _ = st.Close(context.Background()) }()

	r := NewPG().Bind(st.PG)
	if err := r.EnsureSchema(ctx); err != nil {
		t.Fatalf("schema: %v", err)
	}
	// idempotent on restart
	if err := r.EnsureSchema(ctx); err != nil {
		t.Fatalf("schema again: %v", err)
	}

	p := domain.PaperView{
		ID:               uuid.New(),
		SessionID:        uuid.New(),
		Kind:             domain.KindImport,
		OrderID:          "IO-1",
		DelivererName:    "Ana",
		ReceiverName:     "Bo",
		DelivererSigHash: "aa",
		ReceiverSigHash:  "bb",
		Complete:         false,
		CreatedAt:        time.Date(2025, 9, 3, 13, 0, 0, 0, time.UTC),
		Lines: []domain.LineView{
			{ItemID: "SKU-A", Expected: 2, Actual: 2, Status: "MATCH", DetailID: "IOD-1"},
			{ItemID: "SKU-B", Expected: 3, Actual: 1, Status: "LESS"},
		},
	}
	if err := st.PG.Tx(ctx, func(q store.RowQuerier) error { return NewPG().Bind(q).InsertPaper(ctx, p) }); err != nil {
		t.Fatalf("insert: %v", err)
	}

	err = NewPG().Bind(st.PG).InsertPaper(ctx, p)
	if !perr.IsCode(err, perr.ErrorCodeConflict) {
		t.Fatalf("second insert for the same session: %v", err)
	}

	if err := r.MarkPushed(ctx, p.ID, "PAPER-9", ""); err != nil {
		t.Fatalf("mark: %v", err)
	}
	if err := r.MarkPushed(ctx, uuid.New(), "", "x"); !perr.IsCode(err, perr.ErrorCodeNotFound) {
		t.Fatalf("mark missing: %v", err)
	}

	got, err := r.PaperBySession(ctx, p.SessionID)
	if err != nil {
		t.Fatalf("by session: %v", err)
	}
	if got.ID != p.ID || !got.Pushed || got.UpstreamID != "PAPER-9" || got.OrderID != "IO-1" {
		t.Fatalf("paper %+v", got)
	}
	if len(got.Lines) != 2 || got.Lines[0].ItemID != "SKU-A" || got.Lines[1].Status != "LESS" {
		t.Fatalf("lines %+v", got.Lines)
	}
	if !got.CreatedAt.Equal(p.CreatedAt) {
		t.Fatalf("created_at %v", got.CreatedAt)
	}

	if _, err := r.Paper(ctx, uuid.New()); !perr.IsCode(err, perr.ErrorCodeNotFound) {
		t.Fatalf("missing paper: %v", err)
	}
}
