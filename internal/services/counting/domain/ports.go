package domain

import (
	"context"

	"github.com/google/uuid"
)

// ServicePort is the interface implemented by the counting service
type ServicePort interface {
	Open(ctx context.Context, in OpenSessionIn) (SessionView, error)
	Get(ctx context.Context, id uuid.UUID) (SessionView, error)
	Scan(ctx context.Context, id uuid.UUID, in ScanIn) (ScanResult, error)
	Adjust(ctx context.Context, id uuid.UUID, itemID string, in AdjustIn) (LineView, error)
	Confirm(ctx context.Context, id uuid.UUID, in ConfirmIn) (PaperView, error)
	Close(ctx context.Context, id uuid.UUID) error
	Paper(ctx context.Context, id uuid.UUID) (PaperView, error)
	SessionPaper(ctx context.Context, sessionID uuid.UUID) (PaperView, error)
}

// OrderSource seeds manifests and receives confirmed counts
type OrderSource interface {
	Lines(ctx context.Context, kind Kind, orderID string) ([]LineInput, error)
	Push(ctx context.Context, c Confirmation) (upstreamID string, err error)
}

// ReaperPort runs the idle session reaper until ctx ends
type ReaperPort interface {
	Run(ctx context.Context) error
}
