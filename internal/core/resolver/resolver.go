// Package resolver decides what a raw scan payload means against a manifest
//
// Resolve is pure: it performs no I/O and never mutates the manifest, the
// caller applies the accepted scan through manifest.ApplyScan
package resolver

import (
	"bytes"
	"encoding/json"
	"net/url"
	"strconv"
	"strings"
	"unicode/utf8"

	"stockcount/internal/core/manifest"
)

// Kind is the resolver decision
type Kind uint8

const (
	Malformed Kind = iota
	UnknownItem
	Accepted
)

func (k Kind) String() string {
	switch k {
	case Malformed:
		return "malformed"
	case UnknownItem:
		return "unknown_item"
	case Accepted:
		return "accepted"
	default:
		return "kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Outcome is the result of resolving one payload
// ItemID is set for UnknownItem and Accepted, Reason only for Malformed
type Outcome struct {
	Kind        Kind
	ItemID      string
	NewActual   int
	Expected    int
	DisplayName string
	Reason      string
}

// Rejected reports whether the outcome reopens the gate without a cooldown
func (o Outcome) Rejected() bool { return o.Kind != Accepted }

// Payload is the decoded scan record, fields beyond id are ignored
type Payload struct {
	ID string
}

// DecodeError explains why a payload could not be decoded
type DecodeError struct {
	Reason string
}

func (e *DecodeError) Error() string { return "resolver: malformed payload: " + e.Reason }

// Decode percent-decodes raw and parses it as a JSON object with an id that
// is a non-empty string or a number
func Decode(raw string) (Payload, error) {
	text, err := url.PathUnescape(raw)
	if err != nil || !utf8.ValidString(text) {
		return Payload{}, &DecodeError{Reason: "bad percent encoding"}
	}

	var rec map[string]json.RawMessage
	dec := json.NewDecoder(strings.NewReader(text))
	dec.UseNumber()
	if err := dec.Decode(&rec); err != nil {
		return Payload{}, &DecodeError{Reason: "not a json object"}
	}
	if dec.More() {
		return Payload{}, &DecodeError{Reason: "trailing data"}
	}
	if rec == nil {
		return Payload{}, &DecodeError{Reason: "not a json object"}
	}

	field, ok := rec["id"]
	if !ok {
		return Payload{}, &DecodeError{Reason: "missing id"}
	}
	id, err := idString(field)
	if err != nil {
		return Payload{}, err
	}
	return Payload{ID: id}, nil
}

// idString accepts a JSON string or number and renders numbers in shortest decimal form
func idString(field json.RawMessage) (string, error) {
	field = bytes.TrimSpace(field)
	if len(field) == 0 {
		return "", &DecodeError{Reason: "missing id"}
	}
	switch field[0] {
	case '"':
		var s string
		if err := json.Unmarshal(field, &s); err != nil {
			return "", &DecodeError{Reason: "bad id string"}
		}
		if strings.TrimSpace(s) == "" {
			return "", &DecodeError{Reason: "empty id"}
		}
		return s, nil
	case '-', '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		n := json.Number(field)
		if i, err := n.Int64(); err == nil {
			return strconv.FormatInt(i, 10), nil
		}
		f, err := n.Float64()
		if err != nil {
			return "", &DecodeError{Reason: "bad id number"}
		}
		return strconv.FormatFloat(f, 'f', -1, 64), nil
	default:
		return "", &DecodeError{Reason: "id must be a string or number"}
	}
}

// Resolve maps a raw payload and a manifest to an outcome
func Resolve(raw string, m manifest.Manifest) Outcome {
	p, err := Decode(raw)
	if err != nil {
		reason := "malformed payload"
		if de, ok := err.(*DecodeError); ok {
			reason = de.Reason
		}
		return Outcome{Kind: Malformed, Reason: reason}
	}

	line, ok := m.Lookup(p.ID)
	if !ok {
		return Outcome{Kind: UnknownItem, ItemID: p.ID}
	}
	return Outcome{
		Kind:        Accepted,
		ItemID:      line.ItemID,
		NewActual:   line.ActualQuantity + 1,
		Expected:    line.ExpectedQuantity,
		DisplayName: line.DisplayName,
	}
}
