package modkit

import (
	"net/http"

	"stockcount/internal/modkit/httpkit"
	str "stockcount/internal/platform/strings"
)

// Built is a plain struct with the fields modules care about
type Built struct {
	Name   string
	Prefix string
	Mw     []func(http.Handler) http.Handler
	Ports  any

	// router hooks set via options and exposed to modules
	Subrouter func(httpkit.Router) httpkit.Router
	Register  func(httpkit.Router)
}

// Build applies Option funcs to an internal buildCfg and returns a plain struct
func Build(opts ...Option) Built {
	var c buildCfg
	for _, o := range opts {
		o(&c)
	}
	// defaults for hooks
	if c.subrouter == nil {
		c.subrouter = func(r httpkit.Router) httpkit.Router { return r }
	}
	if c.register == nil {
		c.register = func(httpkit.Router) {}
	}
	return Built{
		Name:      c.name,
		Prefix:    c.prefix,
		Mw:        append([]func(http.Handler) http.Handler(nil), c.mw...),
		Ports:     c.ports,
		Subrouter: c.subrouter,
		Register:  c.register,
	}
}

// Base carries the Module methods shared by every module, modules embed it
// and add Ports
type Base struct {
	b      Built
	routes func(httpkit.Router)
}

// NewBase mounts routes ahead of any WithRegister hook
func NewBase(b Built, routes func(httpkit.Router)) Base {
	return Base{b: b, routes: routes}
}

// MountRoutes applies the module middleware and subrouter under its prefix
func (m Base) MountRoutes(r httpkit.Router) {
	r.Route(m.Prefix(), func(rr httpkit.Router) {
		for _, mw := range m.b.Mw {
			rr.Use(mw)
		}
		rr = m.b.Subrouter(rr)
		if m.routes != nil {
			m.routes(rr)
		}
		m.b.Register(rr)
	})
}

// Name panics on a module built without WithName
func (m Base) Name() string { return str.MustString(m.b.Name, "module name") }

// Prefix normalizes to a leading slash without a trailing one
func (m Base) Prefix() string { return str.MustPrefix(m.b.Prefix) }
