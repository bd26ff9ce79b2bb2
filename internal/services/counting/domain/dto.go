package domain

import (
	"time"

	"github.com/google/uuid"
)

// LineInput seeds one manifest line
type LineInput struct {
	ItemID      string `json:"item_id" validate:"required,item_id,max=200" example:"SKU-001"`
	Expected    int    `json:"expected" validate:"min=0" example:"12"`
	Actual      int    `json:"actual,omitempty" validate:"min=0" example:"0"`
	DisplayName string `json:"display_name,omitempty" validate:"omitempty,max=200" example:"M8 washer"`
	DetailID    string `json:"detail_id,omitempty" validate:"omitempty,max=100" example:"IOD-42"`
}

// OpenSessionIn opens a counting session, lines are fetched from the
// warehouse backend when omitted
type OpenSessionIn struct {
	Kind    Kind        `json:"kind" validate:"required,oneof=import export" example:"import"`
	OrderID string      `json:"order_id" validate:"required,min=1,max=100,printascii" example:"IO-2025-0042"`
	Lines   []LineInput `json:"lines,omitempty" validate:"omitempty,max=5000,dive"`
}

// ScanIn is one decode event, the payload is passed to the resolver verbatim
type ScanIn struct {
	Payload string `json:"payload" validate:"max=4096" example:"{\"id\":\"SKU-001\"}"`
}

// AdjustIn replaces a counted quantity from manual entry
type AdjustIn struct {
	Actual int `json:"actual" validate:"min=0" example:"7"`
}

// ConfirmIn carries the two signatures that close a count
type ConfirmIn struct {
	DelivererName      string `json:"deliverer_name" validate:"required,max=120" example:"Nguyen Van A"`
	ReceiverName       string `json:"receiver_name" validate:"required,max=120" example:"Tran Thi B"`
	DelivererSignature string `json:"deliverer_signature" validate:"required,datauri" example:"data:image/png;base64,iVBORw0KGgo="`
	ReceiverSignature  string `json:"receiver_signature" validate:"required,datauri" example:"data:image/png;base64,iVBORw0KGgo="`
	Description        string `json:"description,omitempty" validate:"omitempty,max=500"`
}

// LineView is one manifest line with its reconciliation status
type LineView struct {
	ItemID      string `json:"item_id" example:"SKU-001"`
	DisplayName string `json:"display_name,omitempty" example:"M8 washer"`
	Expected    int    `json:"expected" example:"12"`
	Actual      int    `json:"actual" example:"3"`
	Status      string `json:"status" example:"LESS"`
	DetailID    string `json:"detail_id,omitempty" example:"IOD-42"`
}

// BannerView is the last scanned display, shown only during cooldown
type BannerView struct {
	ItemID      string `json:"item_id" example:"SKU-001"`
	NewActual   int    `json:"new_actual" example:"3"`
	Expected    int    `json:"expected" example:"12"`
	DisplayName string `json:"display_name,omitempty" example:"M8 washer"`
}

// AlertView is a user facing rejection
type AlertView struct {
	Kind   string `json:"kind" example:"not_in_manifest"`
	Detail string `json:"detail" example:"SKU-999 is not part of this order"`
}

// GateView is the scan gate as seen by a client
type GateView struct {
	State    string `json:"state" example:"cooldown"`
	Open     bool   `json:"open" example:"false"`
	InFlight bool   `json:"in_flight" example:"false"`
}

// StatsView counts payloads by fate
type StatsView struct {
	Submitted uint64 `json:"submitted" example:"14"`
	Dropped   uint64 `json:"dropped" example:"3"`
	Discarded uint64 `json:"discarded" example:"0"`
	Accepted  uint64 `json:"accepted" example:"9"`
	Rejected  uint64 `json:"rejected" example:"2"`
}

// SessionView is the full state of a session
type SessionView struct {
	ID       uuid.UUID    `json:"id" example:"0f8fad5b-d9cb-469f-a165-70867728950e"`
	Kind     Kind         `json:"kind" example:"import"`
	OrderID  string       `json:"order_id" example:"IO-2025-0042"`
	State    SessionState `json:"state" example:"open"`
	Gate     GateView     `json:"gate"`
	Lines    []LineView   `json:"lines"`
	Counted  int          `json:"counted" example:"4"`
	Total    int          `json:"total" example:"6"`
	Complete bool         `json:"complete" example:"false"`
	Banner   *BannerView  `json:"banner,omitempty"`
	Stats    StatsView    `json:"stats"`
	OpenedAt time.Time    `json:"opened_at" example:"2025-09-03T13:00:00Z"`
	SeenAt   time.Time    `json:"seen_at" example:"2025-09-03T13:05:00Z"`
}

// ScanResult reports what one payload did
// Outcome is accepted, unknown_item, malformed, dropped or discarded
type ScanResult struct {
	Outcome string      `json:"outcome" example:"accepted"`
	Dropped bool        `json:"dropped" example:"false"`
	Cue     bool        `json:"cue" example:"true"`
	Alert   *AlertView  `json:"alert,omitempty"`
	Banner  *BannerView `json:"banner,omitempty"`
	Line    *LineView   `json:"line,omitempty"`
	Gate    GateView    `json:"gate"`
}

// PaperView is a stored confirmation
type PaperView struct {
	ID               uuid.UUID  `json:"id" example:"6a1c0b1e-1d7e-4c1a-9d0e-2b5f3c4d5e6f"`
	SessionID        uuid.UUID  `json:"session_id" example:"0f8fad5b-d9cb-469f-a165-70867728950e"`
	Kind             Kind       `json:"kind" example:"import"`
	OrderID          string     `json:"order_id" example:"IO-2025-0042"`
	DelivererName    string     `json:"deliverer_name" example:"Nguyen Van A"`
	ReceiverName     string     `json:"receiver_name" example:"Tran Thi B"`
	DelivererSigHash string     `json:"deliverer_signature_sha256" example:"9f86d081884c7d659a2feaa0c55ad015..."`
	ReceiverSigHash  string     `json:"receiver_signature_sha256" example:"60303ae22b998861bce3b28f33eec1be..."`
	Description      string     `json:"description,omitempty"`
	Lines            []LineView `json:"lines"`
	Complete         bool       `json:"complete" example:"true"`
	Pushed           bool       `json:"pushed" example:"true"`
	UpstreamID       string     `json:"upstream_id,omitempty" example:"P-118"`
	PushError        string     `json:"push_error,omitempty"`
	CreatedAt        time.Time  `json:"created_at" example:"2025-09-03T13:10:00Z"`
}
