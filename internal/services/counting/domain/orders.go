package domain

import (
	"context"
	"strings"
)

// Phase groups export request statuses for the operator list
type Phase string

const (
	// PhaseActive is still being prepared or counted
	PhaseActive Phase = "active"

	// PhaseHistory is completed or cancelled
	PhaseHistory Phase = "history"
)

var phaseByStatus = map[string]Phase{
	"PROCESSING":     PhaseActive,
	"CHECKING":       PhaseActive,
	"CHECKED":        PhaseActive,
	"WAITING_EXPORT": PhaseActive,
	"COMPLETED":      PhaseHistory,
	"CANCELLED":      PhaseHistory,
}

// PhaseOf maps a backend status, unknown statuses belong to no phase
func PhaseOf(status string) Phase { return phaseByStatus[strings.ToUpper(status)] }

// ExportRequestView is one export request an operator can open a session for
type ExportRequestView struct {
	ID     string `json:"export_request_id" example:"ER-2025-0007"`
	Reason string `json:"reason,omitempty" example:"store transfer"`
	Type   string `json:"type,omitempty" example:"PRODUCTION"`
	Date   string `json:"export_date,omitempty" example:"2025-03-14"`
	Status string `json:"status" example:"PROCESSING"`
	Phase  Phase  `json:"phase" example:"active"`
}

// ExportRequestsIn filters the export request list, both fields are optional
type ExportRequestsIn struct {
	Phase Phase
	Query string
}

// FilterExportRequests keeps requests in the asked phase whose id contains
// the query, case insensitive
func FilterExportRequests(in []ExportRequestView, f ExportRequestsIn) []ExportRequestView {
	q := strings.ToLower(strings.TrimSpace(f.Query))
	out := make([]ExportRequestView, 0, len(in))
	for _, r := range in {
		if f.Phase != "" && r.Phase != f.Phase {
			continue
		}
		if q != "" && !strings.Contains(strings.ToLower(r.ID), q) {
			continue
		}
		out = append(out, r)
	}
	return out
}

// OrderCatalog lists the orders sessions can be opened against
type OrderCatalog interface {
	ExportRequests(ctx context.Context, f ExportRequestsIn) ([]ExportRequestView, error)
}
