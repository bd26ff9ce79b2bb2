// Package module wires the scan audit log and exposes its ports
package module

import (
	modkit "stockcount/internal/modkit"
	"stockcount/internal/modkit/httpkit"

	"stockcount/internal/services/auditlog/domain"
	audithttp "stockcount/internal/services/auditlog/http"
	auditrepo "stockcount/internal/services/auditlog/repo"
	auditsvc "stockcount/internal/services/auditlog/service"
)

// Ports holds the ports exposed by the audit module
// Worker and Reader are nil when ClickHouse is not configured
type Ports struct {
	Recorder domain.RecorderPort
	Worker   domain.WorkerPort
	Reader   domain.ReaderPort
}

// Module implements modkit.Module
type Module struct {
	modkit.Base
	ports Ports
}

// New constructs the audit module, without ClickHouse every event is discarded
func New(deps modkit.Deps, opts ...modkit.Option) *Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("audit"),
		modkit.WithPrefix("/audit"),
	}, opts...)...)

	m := &Module{ports: Ports{Recorder: domain.Discard{}}}
	if deps.CH != nil {
		o := FromConfig(deps.Cfg)
		w := auditsvc.New(auditrepo.NewCH(deps.CH), auditsvc.Config{
			Buffer:     o.Buffer,
			Batch:      o.Batch,
			FlushEvery: o.FlushEvery,
		})
		m.ports = Ports{Recorder: w, Worker: w, Reader: w}
	} else {
		deps.Log.Warn().Msg("clickhouse not configured, scan audit log disabled")
	}
	m.Base = modkit.NewBase(b, func(r httpkit.Router) { audithttp.Register(r, m.ports.Reader) })
	return m
}

// Ports returns the audit ports
func (m *Module) Ports() any { return m.ports }
