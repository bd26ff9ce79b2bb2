// Package wms is the HTTP client for the warehouse backend that owns orders,
// export requests and papers
package wms

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	perr "stockcount/internal/platform/errors"
	"stockcount/internal/platform/logger"
)

const (
	defaultTimeout   = 10 * time.Second
	defaultMaxRetry  = 3
	defaultRetryBase = 300 * time.Millisecond
	defaultPageLimit = 100
	maxBackoff       = 10 * time.Second
	maxBody          = 4 << 20
)

// Options configures the Client
type Options struct {
	BaseURL   string
	Token     string
	Timeout   time.Duration
	UserAgent string

	MaxRetries int // 0 means 3, negative disables retries
	RetryBase  time.Duration
	PageLimit  int
}

// Client talks JSON to the backend, every response body is {"content": ...}
type Client struct {
	http  *http.Client
	opts  Options
	log   logger.Logger
	now   func() time.Time
	sleep func(context.Context, time.Duration) error
}

// NewClient creates a Client with defaults filled in
func NewClient(o Options) *Client {
	o.BaseURL = strings.TrimRight(o.BaseURL, "/")
	if o.Timeout <= 0 {
		o.Timeout = defaultTimeout
	}
	if o.UserAgent == "" {
		o.UserAgent = "stockcount"
	}
	if o.MaxRetries < 0 {
		o.MaxRetries = 0
	} else if o.MaxRetries == 0 {
		o.MaxRetries = defaultMaxRetry
	}
	if o.RetryBase <= 0 {
		o.RetryBase = defaultRetryBase
	}
	if o.PageLimit <= 0 {
		o.PageLimit = defaultPageLimit
	}
	return &Client{
		http:  &http.Client{Timeout: o.Timeout},
		opts:  o,
		log:   *logger.Named("wms"),
		now:   time.Now,
		sleep: sleepCtx,
	}
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// StatusError is a non retryable non-2xx answer
type StatusError struct {
	Status int
	Body   string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("wms: status %d: %s", e.Status, e.Body)
}

// HTTPStatus reports the upstream status
func (e *StatusError) HTTPStatus() int { return e.Status }

// envelope is the backend response wrapper
type envelope struct {
	Content json.RawMessage `json:"content"`
}

// Do sends in as the JSON body when non nil and decodes the content field into out when non nil
// 429, 5xx and transport errors are retried with exponential backoff
func (c *Client) Do(ctx context.Context, method, path string, in, out any) error {
	var body []byte
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return perr.Wrapf(err, perr.ErrorCodeInvalidArgument, "wms encode %s %s", method, path)
		}
		body = b
	}

	for attempt := 0; ; attempt++ {
		resp, err := c.once(ctx, method, path, body)
		retry, wrapped := c.classify(resp, err)
		if !retry {
			if wrapped != nil {
				return wrapped
			}
			return c.decode(resp, out, method, path)
		}
		if attempt >= c.opts.MaxRetries {
			return wrapped
		}
		back := c.backoff(attempt)
		c.log.Warn().Err(wrapped).Str("path", path).Int("attempt", attempt).Dur("retry_in", back).Msg("wms retrying")
		if err := c.sleep(ctx, back); err != nil {
			return err
		}
	}
}

func (c *Client) once(ctx context.Context, method, path string, body []byte) (*http.Response, error) {
	var rd io.Reader
	if body != nil {
		rd = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.opts.BaseURL+path, rd)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.opts.UserAgent)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.opts.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.opts.Token)
	}

	start := c.now()
	resp, err := c.http.Do(req)
	if err == nil {
		c.log.Debug().
			Str("method", method).
			Str("path", path).
			Int("status", resp.StatusCode).
			Dur("latency", c.now().Sub(start)).
			Msg("wms http response")
	}
	return resp, err
}

// classify decides whether to retry, closing the body of anything not returned to the caller
func (c *Client) classify(resp *http.Response, err error) (bool, error) {
	if err != nil {
		return true, perr.Wrapf(err, perr.ErrorCodeUnavailable, "wms request failed")
	}
	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return false, nil
	case resp.StatusCode == http.StatusTooManyRequests:
		_ = drainAndClose(resp.Body)
		return true, perr.Newf(perr.ErrorCodeTooManyRequests, "wms rate limited")
	case resp.StatusCode >= 500:
		_ = drainAndClose(resp.Body)
		return true, perr.Wrapf(&StatusError{Status: resp.StatusCode}, perr.ErrorCodeUpstream, "wms server error")
	case resp.StatusCode == http.StatusNotFound:
		_ = drainAndClose(resp.Body)
		return false, perr.NotFoundf("wms: %s not found", resp.Request.URL.Path)
	default:
		tail, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		_ = resp.Body.Close()
		se := &StatusError{Status: resp.StatusCode, Body: string(tail)}
		return false, perr.Wrapf(se, perr.ErrorCodeUpstream, "wms rejected request")
	}
}

func (c *Client) decode(resp *http.Response, out any, method, path string) error {
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			c.log.Error().Err(cerr).Str("path", path).Msg("wms close body failed")
		}
	}()
	if out == nil {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxBody))
		return nil
	}
	b, err := io.ReadAll(io.LimitReader(resp.Body, maxBody))
	if err != nil {
		return perr.Wrapf(err, perr.ErrorCodeUpstream, "wms read %s %s", method, path)
	}
	var env envelope
	if err := json.Unmarshal(b, &env); err != nil {
		return perr.Wrapf(err, perr.ErrorCodeUpstream, "wms decode %s %s", method, path)
	}
	if len(env.Content) == 0 || string(env.Content) == "null" {
		return nil
	}
	if err := json.Unmarshal(env.Content, out); err != nil {
		return perr.Wrapf(err, perr.ErrorCodeUpstream, "wms decode content %s %s", method, path)
	}
	return nil
}

func (c *Client) backoff(attempt int) time.Duration {
	d := c.opts.RetryBase << uint(attempt)
	if d <= 0 || d > maxBackoff {
		return maxBackoff
	}
	return d
}

func drainAndClose(rc io.ReadCloser) error {
	_, _ = io.Copy(io.Discard, io.LimitReader(rc, 512))
	return rc.Close()
}
