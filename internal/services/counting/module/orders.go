package module

import (
	"context"

	"stockcount/internal/adapters/wms"
	perr "stockcount/internal/platform/errors"
	"stockcount/internal/services/counting/domain"
)

// backend is the slice of the wms client the order source needs
type backend interface {
	ImportOrderDetails(ctx context.Context, orderID string) ([]wms.ImportOrderDetail, error)
	ExportRequestDetails(ctx context.Context, requestID string) ([]wms.ExportRequestDetail, error)
	ExportRequests(ctx context.Context) ([]wms.ExportRequest, error)
	UpdateExportActual(ctx context.Context, detailID, inventoryItemID string, qty int) error
	ConfirmCounted(ctx context.Context, requestID string) error
	CreatePaper(ctx context.Context, p wms.PaperRequest) (wms.Paper, error)
}

// wmsOrders seeds manifests from order details and pushes confirmed counts back
type wmsOrders struct{ c backend }

var (
	_ domain.OrderSource  = wmsOrders{}
	_ domain.OrderCatalog = wmsOrders{}
)

// NewWMSOrders returns an order source backed by the warehouse backend at o.BaseURL
func NewWMSOrders(o wms.Options) domain.OrderSource { return wmsOrders{c: wms.NewClient(o)} }

// Lines implements domain.OrderSource
func (o wmsOrders) Lines(ctx context.Context, kind domain.Kind, orderID string) ([]domain.LineInput, error) {
	switch kind {
	case domain.KindImport:
		ds, err := o.c.ImportOrderDetails(ctx, orderID)
		if err != nil {
			return nil, err
		}
		out := make([]domain.LineInput, 0, len(ds))
		for _, d := range ds {
			out = append(out, domain.LineInput{
				ItemID:      d.ItemID,
				DisplayName: d.ItemName,
				Expected:    d.ExpectQuantity,
				Actual:      d.ActualQuantity,
				DetailID:    d.ImportOrderDetailID,
			})
		}
		return out, nil
	case domain.KindExport:
		ds, err := o.c.ExportRequestDetails(ctx, orderID)
		if err != nil {
			return nil, err
		}
		out := make([]domain.LineInput, 0, len(ds))
		for _, d := range ds {
			out = append(out, domain.LineInput{
				ItemID:      d.ItemID,
				DisplayName: d.ItemName,
				Expected:    d.Quantity,
				Actual:      d.ActualQuantity,
				DetailID:    d.ExportRequestDetailID,
			})
		}
		return out, nil
	}
	return nil, perr.WithField(perr.InvalidArgf("unknown order kind %q", kind), "kind")
}

// Push implements domain.OrderSource
// both kinds end as a signed paper upstream, exports first report the counted
// quantity of every line and are marked counted once the paper is stored
func (o wmsOrders) Push(ctx context.Context, c domain.Confirmation) (string, error) {
	req := wms.PaperRequest{
		Description:      c.Description,
		SignProviderURL:  c.DelivererSignature,
		SignWarehouseURL: c.ReceiverSignature,
	}
	if c.Kind == domain.KindExport {
		req.ExportRequestID = c.OrderID
		for _, l := range c.Lines {
			if l.DetailID == "" {
				continue
			}
			if err := o.c.UpdateExportActual(ctx, l.DetailID, l.ItemID, l.Actual); err != nil {
				return "", perr.Wrapf(err, perr.CodeOf(err), "update export detail %s", l.DetailID)
			}
		}
	} else {
		req.ImportOrderID = c.OrderID
	}

	p, err := o.c.CreatePaper(ctx, req)
	if err != nil {
		return "", err
	}
	if p.ID == "" {
		return "", perr.Upstreamf("wms created a paper for order %s without an id", c.OrderID)
	}
	if c.Kind == domain.KindExport {
		if err := o.c.ConfirmCounted(ctx, c.OrderID); err != nil {
			return "", err
		}
	}
	return p.ID, nil
}

// ExportRequests implements domain.OrderCatalog
func (o wmsOrders) ExportRequests(ctx context.Context, f domain.ExportRequestsIn) ([]domain.ExportRequestView, error) {
	rs, err := o.c.ExportRequests(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]domain.ExportRequestView, 0, len(rs))
	for _, r := range rs {
		out = append(out, domain.ExportRequestView{
			ID:     r.ExportRequestID,
			Reason: r.ExportReason,
			Type:   r.Type,
			Date:   r.ExportDate,
			Status: r.Status,
			Phase:  domain.PhaseOf(r.Status),
		})
	}
	return domain.FilterExportRequests(out, f), nil
}
