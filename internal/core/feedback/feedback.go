// Package feedback projects resolver outcomes into the signals a scanning UI
// reacts to, and plays the audio cue without ever blocking the scan path
package feedback

import (
	"context"
	"fmt"
	"sync"
	"time"

	"stockcount/internal/core/resolver"
	"stockcount/internal/platform/logger"
)

// AlertKind names a user-facing rejection
type AlertKind string

const (
	InvalidPayload AlertKind = "invalid_payload"
	NotInManifest  AlertKind = "not_in_manifest"
)

// SignalType discriminates Signal
type SignalType uint8

const (
	SignalAlert SignalType = iota + 1
	SignalCue
	SignalShowBanner
	SignalClearBanner
)

func (t SignalType) String() string {
	switch t {
	case SignalAlert:
		return "alert"
	case SignalCue:
		return "cue"
	case SignalShowBanner:
		return "show_banner"
	case SignalClearBanner:
		return "clear_banner"
	default:
		return "unknown"
	}
}

// Banner is the transient last scanned display
type Banner struct {
	ItemID      string
	NewActual   int
	Expected    int
	DisplayName string
}

// Signal is one observable effect, Alert and Detail are set for SignalAlert,
// Banner for SignalShowBanner
type Signal struct {
	Type   SignalType
	Alert  AlertKind
	Detail string
	Banner Banner
}

// Project maps an outcome to its signals
// The cooldown that follows an accepted scan is armed by the session, which
// emits Clear when it elapses
func Project(o resolver.Outcome) []Signal {
	switch o.Kind {
	case resolver.Malformed:
		return []Signal{{Type: SignalAlert, Alert: InvalidPayload, Detail: o.Reason}}
	case resolver.UnknownItem:
		return []Signal{{Type: SignalAlert, Alert: NotInManifest, Detail: o.ItemID}}
	case resolver.Accepted:
		return []Signal{
			{Type: SignalCue},
			{Type: SignalShowBanner, Banner: Banner{
				ItemID:      o.ItemID,
				NewActual:   o.NewActual,
				Expected:    o.Expected,
				DisplayName: o.DisplayName,
			}},
		}
	default:
		return nil
	}
}

// Clear is the signal emitted when the cooldown elapses
func Clear() Signal { return Signal{Type: SignalClearBanner} }

// Player plays the acceptance cue
type Player interface {
	PlayCue(ctx context.Context) error
}

// PlayerFunc adapts a function to Player
type PlayerFunc func(ctx context.Context) error

// PlayCue calls f
func (f PlayerFunc) PlayCue(ctx context.Context) error { return f(ctx) }

// DefaultCueTimeout bounds a single cue playback
const DefaultCueTimeout = 3 * time.Second

// Emitter runs cue playback detached from the caller
type Emitter struct {
	player  Player
	log     *logger.Logger
	timeout time.Duration
	wg      sync.WaitGroup
}

// NewEmitter returns an Emitter, a nil player makes Cue a no-op
func NewEmitter(p Player, log *logger.Logger) *Emitter {
	if log == nil {
		log = logger.Named("feedback")
	}
	return &Emitter{player: p, log: log, timeout: DefaultCueTimeout}
}

// Cue requests playback and returns immediately
// Errors and panics from the player are logged and swallowed
func (e *Emitter) Cue() {
	if e == nil || e.player == nil {
		return
	}
	e.wg.Add(1)
	go func() {
		defer e.wg.Done()
		defer func() {
			if r := recover(); r != nil {
				e.log.Error().Str("panic", fmt.Sprint(r)).Msg("cue playback panicked")
			}
		}()
		ctx, cancel := context.WithTimeout(context.Background(), e.timeout)
		defer cancel()
		if err := e.player.PlayCue(ctx); err != nil {
			e.log.Warn().Err(err).Msg("cue playback failed")
		}
	}()
}

// Wait blocks until every requested cue has finished
func (e *Emitter) Wait() {
	if e == nil {
		return
	}
	e.wg.Wait()
}
