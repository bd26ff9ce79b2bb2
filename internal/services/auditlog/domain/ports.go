package domain

import "context"

// RecorderPort accepts events without ever blocking the caller
type RecorderPort interface {
	Record(e Event)
}

// WorkerPort runs the flush loop until ctx ends
type WorkerPort interface {
	Run(ctx context.Context) error
}

// ReaderPort lists recorded events
type ReaderPort interface {
	SessionEvents(ctx context.Context, q SessionQuery) ([]Event, error)
}

// Discard is a RecorderPort that drops everything
type Discard struct{}

// Record implements RecorderPort
func (Discard) Record(Event) {}
