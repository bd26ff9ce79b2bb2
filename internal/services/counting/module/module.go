// Package module wires counting sessions into the API using modkit
package module

import (
	"stockcount/internal/core/feedback"
	modkit "stockcount/internal/modkit"
	"stockcount/internal/modkit/httpkit"
	auditdom "stockcount/internal/services/auditlog/domain"
	"stockcount/internal/services/counting/domain"
	countinghttp "stockcount/internal/services/counting/http"
	countingrepo "stockcount/internal/services/counting/repo"
	countingsvc "stockcount/internal/services/counting/service"
)

// Requires is passed in via modkit.WithPorts to wire collaborators
type Requires struct {
	Audit  auditdom.RecorderPort
	Orders domain.OrderSource
	Player feedback.Player
}

// Ports holds the ports exposed by the counting module
// Catalog is nil when the order source cannot list orders
type Ports struct {
	Sessions domain.ServicePort
	Reaper   domain.ReaperPort
	Catalog  domain.OrderCatalog
}

// Module implements modkit.Module
type Module struct {
	modkit.Base
	ports Ports
}

// New constructs the counting module, deps.PG must be set
func New(deps modkit.Deps, opts ...modkit.Option) *Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("sessions"),
		modkit.WithPrefix("/sessions"),
	}, opts...)...)

	req, _ := b.Ports.(Requires)
	o := FromConfig(deps.Cfg)

	orders := req.Orders
	if orders == nil && o.WMS.BaseURL != "" {
		orders = NewWMSOrders(o.WMS)
	}
	if orders == nil {
		deps.Log.Info().Msg("no warehouse backend configured, sessions need explicit lines")
	}

	svc := countingsvc.New(deps.PG, countingrepo.NewPG(), countingsvc.Options{
		Cooldown:    o.Cooldown,
		TTL:         o.TTL,
		ReapEvery:   o.ReapEvery,
		MaxSessions: o.MaxSessions,
		TxTimeout:   o.TxTimeout,
		Scheduler:   deps.Scheduler(),
		Orders:      orders,
		Audit:       req.Audit,
		Player:      req.Player,
	})

	catalog, _ := orders.(domain.OrderCatalog)
	m := &Module{ports: Ports{Sessions: svc, Reaper: svc, Catalog: catalog}}
	m.Base = modkit.NewBase(b, func(r httpkit.Router) { countinghttp.Register(r, svc) })
	return m
}

// Ports returns the counting ports
func (m *Module) Ports() any { return m.ports }
