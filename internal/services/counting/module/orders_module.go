package module

import (
	modkit "stockcount/internal/modkit"
	"stockcount/internal/modkit/httpkit"
	"stockcount/internal/services/counting/domain"
	countinghttp "stockcount/internal/services/counting/http"
)

// OrdersRequires is passed in via modkit.WithPorts, a nil Catalog answers 503
type OrdersRequires struct {
	Catalog domain.OrderCatalog
}

// OrdersModule lists the orders operators pick a session from
type OrdersModule struct{ modkit.Base }

// NewOrders constructs the order list module, usually fed the counting Catalog port
func NewOrders(_ modkit.Deps, opts ...modkit.Option) *OrdersModule {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("orders"),
		modkit.WithPrefix("/orders"),
	}, opts...)...)

	req, _ := b.Ports.(OrdersRequires)
	return &OrdersModule{Base: modkit.NewBase(b, func(r httpkit.Router) {
		countinghttp.RegisterOrders(r, req.Catalog)
	})}
}

// Ports returns nil, the module only serves routes
func (m *OrdersModule) Ports() any { return nil }
