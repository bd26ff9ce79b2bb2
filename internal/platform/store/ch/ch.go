// Package ch provides a clickhouse client over clickhouse-go native protocol
package ch

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ClickHouse/clickhouse-go/v2"
	"github.com/ClickHouse/clickhouse-go/v2/lib/driver"
)

// Config configures clickhouse client
type Config struct {
	URL         string
	ClientName  string
	ClientTag   string
	DialTimeout time.Duration
}

// Rows is the minimal result set iteration for ch
type Rows interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
	Close() error
	Columns() []string
}

// batch is the part of driver.Batch an insert needs
type batch interface {
	Append(v ...any) error
	Send() error
	Abort() error
}

// conn is the part of driver.Conn the client needs
type conn interface {
	Ping(ctx context.Context) error
	Query(ctx context.Context, query string, args ...any) (Rows, error)
	Prepare(ctx context.Context, query string) (batch, error)
	Close() error
}

// CH is a clickhouse client
type CH struct {
	c conn
}

// dial is a seam so tests can run without a server
var dial = func(opts *clickhouse.Options) (conn, error) {
	c, err := clickhouse.Open(opts)
	if err != nil {
		return nil, err
	}
	return driverConn{c}, nil
}

// Open parses the DSN, opens a connection and pings it
func Open(ctx context.Context, cfg Config) (*CH, error) {
	opts, err := clickhouse.ParseDSN(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("ch: parse dsn: %w", err)
	}
	if cfg.DialTimeout > 0 {
		opts.DialTimeout = cfg.DialTimeout
	}
	opts.ClientInfo = BuildClientInfo(cfg.ClientName, cfg.ClientTag)

	c, err := dial(opts)
	if err != nil {
		return nil, fmt.Errorf("ch: open: %w", err)
	}
	if err := c.Ping(ctx); err != nil {
		_ = c.Close()
		return nil, fmt.Errorf("ch: ping: %w", err)
	}
	return &CH{c: c}, nil
}

// Insert appends rows to table in one batch
// an empty rows slice is a no op
func (c *CH) Insert(ctx context.Context, table string, rows [][]any) error {
	if len(rows) == 0 {
		return nil
	}
	if table == "" {
		return errors.New("ch: insert without table")
	}
	b, err := c.c.Prepare(ctx, "INSERT INTO "+table)
	if err != nil {
		return err
	}
	for i, row := range rows {
		if err := b.Append(row...); err != nil {
			_ = b.Abort()
			return fmt.Errorf("ch: append row %d: %w", i, err)
		}
	}
	return b.Send()
}

// Query runs a query and returns ch.Rows
func (c *CH) Query(ctx context.Context, query string, args ...any) (Rows, error) {
	return c.c.Query(ctx, query, args...)
}

// Ping checks the server answers
func (c *CH) Ping(ctx context.Context) error { return c.c.Ping(ctx) }

// Close closes resources
func (c *CH) Close() error {
	if c == nil || c.c == nil {
		return nil
	}
	return c.c.Close()
}

// driverConn narrows driver.Conn to conn
type driverConn struct{ c driver.Conn }

func (d driverConn) Ping(ctx context.Context) error { return d.c.Ping(ctx) }
func (d driverConn) Close() error                   { return d.c.Close() }

func (d driverConn) Query(ctx context.Context, query string, args ...any) (Rows, error) {
	return d.c.Query(ctx, query, args...)
}

func (d driverConn) Prepare(ctx context.Context, query string) (batch, error) {
	return d.c.PrepareBatch(ctx, query)
}
