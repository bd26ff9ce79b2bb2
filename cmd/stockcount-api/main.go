// @title         stockcount API
// @version       1.0
// @description   Counting sessions that reconcile scanned items against an order manifest

package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"stockcount/internal/modkit/repokit"
	"stockcount/internal/platform/config"
	"stockcount/internal/platform/logger"
	phttp "stockcount/internal/platform/net/http"
	"stockcount/internal/platform/store"

	"stockcount/internal/services/api"
	countingrepo "stockcount/internal/services/counting/repo"
)

func main() {
	root := config.New()
	apiCfg := root.Prefix("CORE_API_")

	logger.Init(logger.FromEnv())
	l := logger.Get()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	st, err := store.Open(ctx, store.FromConf(root, "stockcount", "api"), store.WithLogger(*l))
	if err != nil {
		l.Panic().Err(err).Msg("store.Open failed")
	}
	defer func() {
		if err := st.Close(context.Background()); err != nil {
			l.Error().Err(err).Msg("failed to close store")
		}
	}()
	repokit.MustGuard(ctx, st)

	if err := countingrepo.NewPG().Bind(st.PG).EnsureSchema(ctx); err != nil {
		l.Panic().Err(err).Msg("paper schema")
	}

	srv := phttp.NewServer(apiCfg)
	workers := api.Mount(srv.Router(), api.Options{
		Config:         root,
		APIConfig:      apiCfg,
		Store:          st,
		Logger:         l,
		EnableSwagger:  apiCfg.MayBool("SWAGGER", true),
		EnableProfiler: apiCfg.MayBool("PROFILER", false),
	})

	var wg sync.WaitGroup
	run := func(name string, fn func(context.Context) error) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := fn(ctx); err != nil && !errors.Is(err, context.Canceled) {
				l.Error().Err(err).Str("worker", name).Msg("worker stopped")
			}
		}()
	}
	run("reaper", workers.Reaper.Run)
	if workers.Audit != nil {
		run("audit", workers.Audit.Run)
	}

	if err := srv.Run(ctx); err != nil {
		l.Error().Err(err).Msg("http server stopped")
		stop()
	}
	// the reaper closes live sessions and the audit writer flushes on the way out
	wg.Wait()
	l.Info().Msg("bye")
}
