package wms

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync/atomic"
	"testing"
	"time"

	perr "stockcount/internal/platform/errors"
)

func newTestClient(t *testing.T, h http.HandlerFunc, o Options) (*Client, *[]time.Duration) {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	o.BaseURL = srv.URL + "/"
	c := NewClient(o)
	var naps []time.Duration
	c.sleep = func(_ context.Context, d time.Duration) error {
		naps = append(naps, d)
		return nil
	}
	return c, &naps
}

func writeContent(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{"content": v})
}

func TestImportOrderDetails_PagesAndAuth(t *testing.T) {
	t.Parallel()

	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer s3cret" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		if r.URL.Path != "/import-order-detail/IO-7" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		page, _ := strconv.Atoi(r.URL.Query().Get("page"))
		if r.URL.Query().Get("limit") != "2" {
			t.Errorf("limit %q", r.URL.Query().Get("limit"))
		}
		var out []ImportOrderDetail
		switch page {
		case 1:
			out = []ImportOrderDetail{{ItemID: "A", ExpectQuantity: 5}, {ItemID: "B", ExpectQuantity: 1}}
		case 2:
			out = []ImportOrderDetail{{ItemID: "C", ItemName: "Washer", ExpectQuantity: 3, ActualQuantity: 1}}
		}
		writeContent(w, out)
	}, Options{Token: "s3cret", PageLimit: 2})

	got, err := c.ImportOrderDetails(context.Background(), "IO-7")
	if err != nil {
		t.Fatalf("ImportOrderDetails: %v", err)
	}
	if len(got) != 3 || got[2].ItemName != "Washer" || got[2].ActualQuantity != 1 {
		t.Fatalf("got %+v", got)
	}
}

func TestDo_RetriesServerErrorsThenSucceeds(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	c, naps := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		writeContent(w, []ExportRequestDetail{{ItemID: "X", Quantity: 2}})
	}, Options{RetryBase: 100 * time.Millisecond, PageLimit: 10})

	got, err := c.ExportRequestDetails(context.Background(), "ER-1")
	if err != nil {
		t.Fatalf("ExportRequestDetails: %v", err)
	}
	if len(got) != 1 || got[0].Quantity != 2 {
		t.Fatalf("got %+v", got)
	}
	if len(*naps) != 2 || (*naps)[0] != 100*time.Millisecond || (*naps)[1] != 200*time.Millisecond {
		t.Fatalf("backoff %v", *naps)
	}
}

func TestDo_GivesUpAfterMaxRetries(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusTooManyRequests)
	}, Options{MaxRetries: 2})

	err := c.ConfirmCounted(context.Background(), "ER-1")
	if perr.CodeOf(err) != perr.ErrorCodeTooManyRequests {
		t.Fatalf("err %v code %v", err, perr.CodeOf(err))
	}
	if calls.Load() != 3 {
		t.Fatalf("calls %d want 3", calls.Load())
	}
}

func TestDo_ClientErrorsAreNotRetried(t *testing.T) {
	t.Parallel()

	tests := []struct {
		status int
		code   perr.ErrorCode
	}{
		{http.StatusNotFound, perr.ErrorCodeNotFound},
		{http.StatusBadRequest, perr.ErrorCodeUpstream},
		{http.StatusConflict, perr.ErrorCodeUpstream},
	}
	for _, tc := range tests {
		t.Run(strconv.Itoa(tc.status), func(t *testing.T) {
			var calls atomic.Int32
			c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				calls.Add(1)
				w.WriteHeader(tc.status)
				_, _ = io.WriteString(w, `{"message":"nope"}`)
			}, Options{})
			err := c.UpdateExportActual(context.Background(), "d1", "inv-9", 1)
			if perr.CodeOf(err) != tc.code {
				t.Fatalf("code %v want %v (%v)", perr.CodeOf(err), tc.code, err)
			}
			if calls.Load() != 1 {
				t.Fatalf("retried a %d", tc.status)
			}
		})
	}
}

func TestUpdateExportActual_SendsBody(t *testing.T) {
	t.Parallel()

	var got ActualQuantityUpdate
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPut || r.Header.Get("Content-Type") != "application/json" {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		_ = json.NewDecoder(r.Body).Decode(&got)
		writeContent(w, nil)
	}, Options{})

	if err := c.UpdateExportActual(context.Background(), "d1", "inv-9", 5); err != nil {
		t.Fatalf("UpdateExportActual: %v", err)
	}
	if got.ExportRequestDetailID != "d1" || got.InventoryItemID != "inv-9" || got.ActualQuantity != 5 {
		t.Fatalf("body %+v", got)
	}
}

func TestExportRequests_PagesAndUnwraps(t *testing.T) {
	t.Parallel()

	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/export-request" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		var out []ExportRequest
		if r.URL.Query().Get("page") == "1" {
			out = []ExportRequest{
				{ExportRequestID: "ER-1", Status: "PROCESSING", ExportReason: "store transfer"},
				{ExportRequestID: "ER-2", Status: "COMPLETED"},
			}
		}
		writeContent(w, out)
	}, Options{PageLimit: 2})

	got, err := c.ExportRequests(context.Background())
	if err != nil {
		t.Fatalf("ExportRequests: %v", err)
	}
	if len(got) != 2 || got[0].ExportReason != "store transfer" || got[1].Status != "COMPLETED" {
		t.Fatalf("got %+v", got)
	}
}

func TestCreatePaper(t *testing.T) {
	t.Parallel()

	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		var in PaperRequest
		_ = json.NewDecoder(r.Body).Decode(&in)
		if in.SignProviderURL == "" || in.SignWarehouseURL == "" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		writeContent(w, Paper{ID: fmt.Sprintf("paper-%s", in.ImportOrderID)})
	}, Options{})

	p, err := c.CreatePaper(context.Background(), PaperRequest{
		ImportOrderID:    "IO-7",
		SignProviderURL:  "data:image/png;base64,AAA",
		SignWarehouseURL: "data:image/png;base64,BBB",
	})
	if err != nil || p.ID != "paper-IO-7" {
		t.Fatalf("paper %+v err %v", p, err)
	}
}

func TestDo_TransportErrorHonoursContext(t *testing.T) {
	t.Parallel()

	c := NewClient(Options{BaseURL: "http://127.0.0.1:1", MaxRetries: 5})
	ctx, cancel := context.WithCancel(context.Background())
	c.sleep = func(context.Context, time.Duration) error {
		cancel()
		return context.Canceled
	}
	err := c.ConfirmCounted(ctx, "ER-1")
	if err != context.Canceled {
		t.Fatalf("err %v", err)
	}
}

func TestBackoff_Caps(t *testing.T) {
	t.Parallel()
	c := NewClient(Options{RetryBase: time.Second})
	if c.backoff(0) != time.Second || c.backoff(2) != 4*time.Second {
		t.Fatalf("backoff %v %v", c.backoff(0), c.backoff(2))
	}
	if c.backoff(10) != maxBackoff {
		t.Fatalf("uncapped %v", c.backoff(10))
	}
}
