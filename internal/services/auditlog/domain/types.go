// Package domain holds scan audit types and the ports other services use to
// record and read them
package domain

import "time"

// EventType names what happened in a session
type EventType string

const (
	// EventOpened is recorded once when a session starts
	EventOpened EventType = "session_opened"

	// EventScan is one submitted payload, whatever its fate
	EventScan EventType = "scan"

	// EventManualEntry is a typed quantity replacing the counted one
	EventManualEntry EventType = "manual_entry"

	// EventConfirmed is recorded when a paper is stored
	EventConfirmed EventType = "session_confirmed"

	// EventClosed is an explicit teardown without a paper
	EventClosed EventType = "session_closed"

	// EventReaped is a teardown by the idle reaper
	EventReaped EventType = "session_reaped"
)

// Event is one row of the audit trail
type Event struct {
	SessionID string    `json:"session_id" example:"0f8fad5b-d9cb-469f-a165-70867728950e"`
	Type      EventType `json:"type" example:"scan"`
	Outcome   string    `json:"outcome,omitempty" example:"accepted"`
	ItemID    string    `json:"item_id,omitempty" example:"SKU-001"`
	Actual    int       `json:"actual" example:"3"`
	Expected  int       `json:"expected" example:"12"`
	Detail    string    `json:"detail,omitempty"`
	At        time.Time `json:"at" example:"2025-09-03T13:05:00Z"`
}

// SessionQuery selects a session trail
type SessionQuery struct {
	SessionID string
	Limit     int
}
