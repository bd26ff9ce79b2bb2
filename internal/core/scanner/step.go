package scanner

import (
	"stockcount/internal/core/feedback"
	"stockcount/internal/core/manifest"
	"stockcount/internal/core/resolver"
)

// Transition is the pure result of feeding one payload to a manifest
type Transition struct {
	Manifest manifest.Manifest
	Outcome  resolver.Outcome
	Signals  []feedback.Signal
	Changed  bool
}

// Step resolves raw against m and applies the result
// It holds no state, the caller stores the returned manifest
func Step(m manifest.Manifest, raw string) Transition {
	return Apply(m, resolver.Resolve(raw, m))
}

// Apply applies a resolver outcome to m
// An accepted outcome is re-read from the applied manifest so the reported
// count matches what was stored even if m moved on since resolution
func Apply(m manifest.Manifest, o resolver.Outcome) Transition {
	if o.Kind != resolver.Accepted {
		return Transition{Manifest: m, Outcome: o, Signals: feedback.Project(o)}
	}
	next, err := m.ApplyScan(o.ItemID)
	if err != nil {
		o = resolver.Outcome{Kind: resolver.UnknownItem, ItemID: o.ItemID}
		return Transition{Manifest: m, Outcome: o, Signals: feedback.Project(o)}
	}
	if l, ok := next.Lookup(o.ItemID); ok {
		o.NewActual = l.ActualQuantity
		o.Expected = l.ExpectedQuantity
		o.DisplayName = l.DisplayName
	}
	return Transition{Manifest: next, Outcome: o, Signals: feedback.Project(o), Changed: true}
}
