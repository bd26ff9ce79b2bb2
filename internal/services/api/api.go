// Package api assembles the HTTP API from its modules
package api

import (
	"time"

	"stockcount/internal/core/feedback"
	"stockcount/internal/modkit"
	"stockcount/internal/modkit/httpkit"
	"stockcount/internal/modkit/module"
	"stockcount/internal/modkit/swaggerkit"
	"stockcount/internal/platform/config"
	"stockcount/internal/platform/logger"
	phttp "stockcount/internal/platform/net/http"
	"stockcount/internal/platform/net/middleware"
	"stockcount/internal/platform/store"
	ptime "stockcount/internal/platform/time"

	metahttp "stockcount/internal/services/api/meta/http"
	metamod "stockcount/internal/services/api/meta/module"
	auditdom "stockcount/internal/services/auditlog/domain"
	auditmod "stockcount/internal/services/auditlog/module"
	countingdom "stockcount/internal/services/counting/domain"
	countingmod "stockcount/internal/services/counting/module"
)

// Options are the API options
type Options struct {
	// Config is the root config, modules read their own prefixes from it
	Config config.Conf
	// APIConfig holds the CORE_API_* values
	APIConfig config.Conf
	Store     *store.Store
	Logger    *logger.Logger

	// Scheduler is nil outside tests
	Scheduler ptime.Scheduler
	// Orders overrides the WMS backed order source
	Orders countingdom.OrderSource
	Player feedback.Player

	EnableSwagger  bool
	EnableProfiler bool
}

// Workers are the background loops the host must run until shutdown
// Audit is nil when ClickHouse is not configured
type Workers struct {
	Audit  auditdom.WorkerPort
	Reaper countingdom.ReaperPort
}

// Mount mounts the API onto r and returns the workers to run
func Mount(r phttp.Router, opt Options) Workers {
	if opt.Logger == nil {
		opt.Logger = logger.Get()
	}
	deps := modkit.Deps{
		Log:   *opt.Logger,
		Cfg:   opt.Config,
		PG:    opt.Store.PG,
		CH:    opt.Store.CH,
		Sched: opt.Scheduler,
	}

	// audit first so counting can record into it
	audit := auditmod.New(deps)
	auditPorts := module.MustPortsOf[auditmod.Ports](audit)

	counting := countingmod.New(deps, modkit.WithPorts(countingmod.Requires{
		Audit:  auditPorts.Recorder,
		Orders: opt.Orders,
		Player: opt.Player,
	}))
	countingPorts := module.MustPortsOf[countingmod.Ports](counting)
	orders := countingmod.NewOrders(deps, modkit.WithPorts(countingmod.OrdersRequires{Catalog: countingPorts.Catalog}))

	live, _ := countingPorts.Sessions.(metahttp.Counter)
	meta := metamod.New(deps, modkit.WithPorts(metamod.Requires{Sessions: live}))

	mods := []module.Module{meta, audit, counting, orders}

	// chi wants root middleware before any route
	r.Use(middleware.Heartbeat("/ping"))

	stack := httpkit.CommonStack(httpkit.StackOptions{
		CORSOrigins: opt.APIConfig.MayCSV("CORS_ORIGINS", nil),
		Timeout:     opt.APIConfig.MayDuration("TIMEOUT", 30*time.Second),
		SlowRequest: opt.APIConfig.MayDuration("SLOW_REQUEST", time.Second),
		MaxInFlight: opt.APIConfig.MayInt("MAX_INFLIGHT", 0),
	})
	httpkit.MountAPIV1(r, stack, func(api httpkit.Router) {
		for _, m := range mods {
			module.Register(m.Name(), m.Ports())
			m.MountRoutes(api)
		}
	})
	swaggerkit.Mount(r, opt.EnableSwagger, "/api/v1")
	phttp.MountProfiler(r, "/debug", opt.EnableProfiler)

	return Workers{Audit: auditPorts.Worker, Reaper: countingPorts.Reaper}
}
