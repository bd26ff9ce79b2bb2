package wms

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

// ImportOrderDetails fetches every line of an import order, page by page
func (c *Client) ImportOrderDetails(ctx context.Context, orderID string) ([]ImportOrderDetail, error) {
	return pages[ImportOrderDetail](ctx, c, "/import-order-detail/"+url.PathEscape(orderID))
}

// ExportRequestDetails fetches every line of an export request, page by page
func (c *Client) ExportRequestDetails(ctx context.Context, requestID string) ([]ExportRequestDetail, error) {
	return pages[ExportRequestDetail](ctx, c, "/export-request-detail/"+url.PathEscape(requestID))
}

// ExportRequests lists every export request, page by page
func (c *Client) ExportRequests(ctx context.Context) ([]ExportRequest, error) {
	return pages[ExportRequest](ctx, c, "/export-request")
}

// UpdateExportActual records the counted quantity of an export line
func (c *Client) UpdateExportActual(ctx context.Context, detailID, inventoryItemID string, qty int) error {
	in := ActualQuantityUpdate{ExportRequestDetailID: detailID, InventoryItemID: inventoryItemID, ActualQuantity: qty}
	return c.Do(ctx, http.MethodPut, "/export-request-detail/actual-quantity", in, nil)
}

// ConfirmCounted marks an export request as counted
func (c *Client) ConfirmCounted(ctx context.Context, requestID string) error {
	return c.Do(ctx, http.MethodPost, "/export-request/confirm-counted/"+url.PathEscape(requestID), nil, nil)
}

// CreatePaper submits a signed receipt for an import order or export request
func (c *Client) CreatePaper(ctx context.Context, p PaperRequest) (Paper, error) {
	var out Paper
	err := c.Do(ctx, http.MethodPost, "/paper", p, &out)
	return out, err
}

// pages walks page=1.. until a short page comes back
func pages[T any](ctx context.Context, c *Client, path string) ([]T, error) {
	limit := c.opts.PageLimit
	var all []T
	for page := 1; ; page++ {
		var batch []T
		q := fmt.Sprintf("%s?page=%d&limit=%d", path, page, limit)
		if err := c.Do(ctx, http.MethodGet, q, nil, &batch); err != nil {
			return nil, err
		}
		all = append(all, batch...)
		if len(batch) < limit {
			return all, nil
		}
	}
}
