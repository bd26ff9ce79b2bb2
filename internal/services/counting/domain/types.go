// Package domain holds counting types independent of transport or storage
package domain

import (
	"time"

	"github.com/google/uuid"
)

// Kind is the order type a session counts against
type Kind string

const (
	// KindImport counts goods received on an import order
	KindImport Kind = "import"

	// KindExport counts goods picked for an export request
	KindExport Kind = "export"
)

// SessionState is open until teardown
type SessionState string

const (
	// StateOpen accepts scans and manual entry
	StateOpen SessionState = "open"

	// StateClosed is torn down, only confirm may still run
	StateClosed SessionState = "closed"
)

// Confirmation is what gets pushed upstream once a paper is stored
// Signatures travel in full here, storage keeps only their fingerprints
type Confirmation struct {
	PaperID            uuid.UUID
	Kind               Kind
	OrderID            string
	Lines              []LineView
	DelivererSignature string
	ReceiverSignature  string
	Description        string
	ConfirmedAt        time.Time
}
