// Package manifest holds the expected lines of one active order and the
// running actual counts against them
//
// A Manifest is an immutable value: ApplyScan and SetActual return a new
// Manifest and leave the receiver untouched, so a caller holding an older
// value never observes a partial update
package manifest

import (
	"fmt"

	"stockcount/internal/core/normalize"
)

// Seed is one input line for Build
type Seed struct {
	ItemID           string
	ExpectedQuantity int
	ActualQuantity   int
	DisplayName      string
}

// Line is one expected inventory line
type Line struct {
	ItemID           string
	ExpectedQuantity int
	ActualQuantity   int
	DisplayName      string
}

// Status classifies a line by comparing actual against expected
type Status string

const (
	StatusLack  Status = "LACK"
	StatusLess  Status = "LESS"
	StatusMatch Status = "MATCH"
	StatusOver  Status = "OVER"
)

// Status returns the reconciliation status of the line
func (l Line) Status() Status {
	switch {
	case l.ActualQuantity == l.ExpectedQuantity:
		return StatusMatch
	case l.ActualQuantity > l.ExpectedQuantity:
		return StatusOver
	case l.ActualQuantity == 0:
		return StatusLack
	default:
		return StatusLess
	}
}

// DuplicateItemError is returned by Build when two seeds share an item id
type DuplicateItemError struct {
	ItemID string
}

func (e *DuplicateItemError) Error() string {
	return fmt.Sprintf("manifest: duplicate item %q", e.ItemID)
}

// UnknownItemError is returned when an item id is not in the manifest
type UnknownItemError struct {
	ItemID string
}

func (e *UnknownItemError) Error() string {
	return fmt.Sprintf("manifest: unknown item %q", e.ItemID)
}

// InvalidLineError is returned for an empty id or a negative quantity
type InvalidLineError struct {
	ItemID string
	Reason string
}

func (e *InvalidLineError) Error() string {
	if e.ItemID == "" {
		return "manifest: invalid line: " + e.Reason
	}
	return fmt.Sprintf("manifest: invalid line %q: %s", e.ItemID, e.Reason)
}

// Manifest maps canonical item ids to lines for one order
// The zero value is an empty manifest
type Manifest struct {
	lines map[string]Line
	order []string
}

// Build constructs a manifest from seeds, ids are compared in canonical form
func Build(seeds []Seed) (Manifest, error) {
	m := Manifest{
		lines: make(map[string]Line, len(seeds)),
		order: make([]string, 0, len(seeds)),
	}
	for _, s := range seeds {
		id := normalize.ItemID(s.ItemID)
		switch {
		case id == "":
			return Manifest{}, &InvalidLineError{Reason: "empty item id"}
		case s.ExpectedQuantity < 0:
			return Manifest{}, &InvalidLineError{ItemID: id, Reason: "negative expected quantity"}
		case s.ActualQuantity < 0:
			return Manifest{}, &InvalidLineError{ItemID: id, Reason: "negative actual quantity"}
		}
		if _, dup := m.lines[id]; dup {
			return Manifest{}, &DuplicateItemError{ItemID: id}
		}
		m.lines[id] = Line{
			ItemID:           id,
			ExpectedQuantity: s.ExpectedQuantity,
			ActualQuantity:   s.ActualQuantity,
			DisplayName:      s.DisplayName,
		}
		m.order = append(m.order, id)
	}
	return m, nil
}

// Lookup returns the line for id, false when absent
func (m Manifest) Lookup(id string) (Line, bool) {
	l, ok := m.lines[normalize.ItemID(id)]
	return l, ok
}

// ApplyScan returns a copy of m with the actual quantity of id incremented by one
func (m Manifest) ApplyScan(id string) (Manifest, error) {
	key := normalize.ItemID(id)
	l, ok := m.lines[key]
	if !ok {
		return m, &UnknownItemError{ItemID: id}
	}
	l.ActualQuantity++
	return m.with(key, l), nil
}

// SetActual returns a copy of m with the actual quantity of id replaced
// It backs manual entry only, the scan path never decrements
func (m Manifest) SetActual(id string, qty int) (Manifest, error) {
	key := normalize.ItemID(id)
	l, ok := m.lines[key]
	if !ok {
		return m, &UnknownItemError{ItemID: id}
	}
	if qty < 0 {
		return m, &InvalidLineError{ItemID: key, Reason: "negative actual quantity"}
	}
	l.ActualQuantity = qty
	return m.with(key, l), nil
}

// with copies the line map and replaces one entry, order is shared since it never changes
func (m Manifest) with(key string, l Line) Manifest {
	next := make(map[string]Line, len(m.lines))
	for k, v := range m.lines {
		next[k] = v
	}
	next[key] = l
	return Manifest{lines: next, order: m.order}
}

// Lines returns the lines in input order
func (m Manifest) Lines() []Line {
	out := make([]Line, 0, len(m.order))
	for _, id := range m.order {
		out = append(out, m.lines[id])
	}
	return out
}

// Len returns the number of lines
func (m Manifest) Len() int { return len(m.order) }

// Progress returns how many lines have at least one counted unit, and the line total
func (m Manifest) Progress() (counted, total int) {
	for _, l := range m.lines {
		if l.ActualQuantity > 0 {
			counted++
		}
	}
	return counted, len(m.order)
}

// Complete reports whether every line matches its expectation
func (m Manifest) Complete() bool {
	for _, l := range m.lines {
		if l.Status() != StatusMatch {
			return false
		}
	}
	return true
}
