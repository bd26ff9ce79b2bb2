// Package module mounts the meta endpoints under /meta
package module

import (
	"time"

	"stockcount/internal/core/version"
	modkit "stockcount/internal/modkit"
	"stockcount/internal/modkit/httpkit"
	metahttp "stockcount/internal/services/api/meta/http"
)

// Requires is passed in via modkit.WithPorts, all fields optional
type Requires struct {
	Sessions metahttp.Counter
}

// Module serves liveness, readiness and build info, it exposes no ports
type Module struct {
	modkit.Base
}

// New builds the meta module, PG and CH in deps are pinged by /ready
func New(deps modkit.Deps, opts ...modkit.Option) *Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("meta"),
		modkit.WithPrefix("/meta"),
	}, opts...)...)
	req, _ := b.Ports.(Requires)

	d := metahttp.Deps{
		ServiceName: version.Info().Service,
		StartedAt:   time.Now(),
		PG:          deps.PG,
		CH:          deps.CH,
		Sessions:    req.Sessions,
	}
	return &Module{Base: modkit.NewBase(b, func(r httpkit.Router) { metahttp.Register(r, d) })}
}

// Ports is always nil
func (m *Module) Ports() any { return nil }
