// Package api provides the HTTP API for the application
package api

import (
	"callerverify/internal/adapters/directory"
	"callerverify/internal/adapters/lookup/twilio"
	"callerverify/internal/platform/config"
	"callerverify/internal/platform/logger"
	"callerverify/internal/platform/metrics"
	phttp "callerverify/internal/platform/net/http"
	"callerverify/internal/platform/store"

	"callerverify/internal/modkit"
	"callerverify/internal/modkit/httpkit"
	"callerverify/internal/modkit/module"
	"callerverify/internal/modkit/swaggerkit"

	dirmod "callerverify/internal/services/api/directory/module"
	lookupmod "callerverify/internal/services/api/lookup/module"
	metamod "callerverify/internal/services/api/meta/module"
	verifydom "callerverify/internal/services/api/verify/domain"
	verifymod "callerverify/internal/services/api/verify/module"
	lcmodule "callerverify/internal/services/lookupcache/module"
	"callerverify/internal/services/lookupcache/service"
	resdom "callerverify/internal/services/resolver/domain"
	resmod "callerverify/internal/services/resolver/module"

	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
)

// Options are the API options
type Options struct {
	// Root is the unprefixed config, modules read their own key groups from it
	Root           config.Conf
	Config         config.Conf
	Store          *store.Store
	Logger         *logger.Logger
	EnableSwagger  bool
	EnableProfiler bool

	// Registry receives every collector and backs /metrics; nil disables metrics
	Registry *prometheus.Registry

	// SelfURL is the service base url, used as the default remote directory endpoint
	SelfURL string

	// Provider and Directory override the configured bindings when set
	Provider  resdom.LookupProvider
	Directory verifydom.Directory
}

// Mounted exposes what the caller must run after mounting
type Mounted struct {
	Sweeper *service.Sweeper
}

// Mount mounts the API service onto the given router
func Mount(r phttp.Router, opt Options) Mounted {
	// shared deps for modules
	deps := modkit.Deps{Cfg: opt.Root}
	log := opt.Logger
	if log == nil {
		log = logger.Named("api")
	}
	if opt.Store != nil {
		deps.PG = opt.Store.PG
		deps.RDS = opt.Store.RDS
	}
	var httpMetrics *metrics.HTTP
	if opt.Registry != nil {
		deps.Metrics = opt.Registry
		httpMetrics = metrics.NewHTTP(opt.Registry)
	}

	provider := opt.Provider
	if provider == nil {
		tw := twilio.NewClient(twilio.FromConfig(opt.Root))
		tw.WarnIfUnconfigured()
		provider = tw
	}
	dir := opt.Directory
	if dir == nil {
		dir = directory.Open(directory.FromConfig(opt.Root, opt.SelfURL+"/api/v1/directory/users"))
	}

	// cache and resolver own no routes but register their ports
	cacheMod := lcmodule.New(deps, lcmodule.Options{})
	cachePorts := module.MustPortsOf[lcmodule.Ports](cacheMod)
	resolverMod := resmod.New(deps, cachePorts.Cache, provider)
	resolver := module.MustPortsOf[resmod.Ports](resolverMod).Resolver

	// verify/all fans out to the provider, so concurrent runs can be capped
	var verifyOpts []modkit.Option
	if n := opt.Config.MayInt("VERIFY_MAX_INFLIGHT", 0); n > 0 {
		verifyOpts = append(verifyOpts, modkit.WithMiddlewares(chimw.Throttle(n)))
	}

	mods := []modkit.Module{
		metamod.New(deps),
		cacheMod,
		resolverMod,
		lookupmod.New(deps, resolver),
		verifymod.New(deps, dir, resolver, verifymod.FromConfig(deps), verifyOpts...),
		dirmod.New(deps, directory.NewStatic(directory.DefaultRecords())),
	}

	stack := httpkit.CommonStack(httpkit.StackOptions{
		CORSOrigins: opt.Config.MayCSV("CORS_ORIGINS", []string{"*"}),
		Metrics:     httpMetrics,
		Slow:        opt.Config.MayDuration("SLOW_REQUEST", 0),
		Timeout:     opt.Config.MayDuration("REQUEST_TIMEOUT", 0),
	})

	swaggerkit.Mount(r, opt.EnableSwagger, swaggerkit.DocOptions{
		TitleSuffix: opt.Config.MayString("DOCS_TITLE_SUFFIX", ""),
	})
	phttp.MountProfiler(r, "/debug", opt.EnableProfiler)
	if opt.Registry != nil {
		r.Handle("/metrics", metrics.Handler(opt.Registry))
	}

	httpkit.MountAPIV1(r, stack, func(api httpkit.Router) {
		for _, m := range mods {
			m.MountRoutes(api)
			log.Debug().Str("module", m.Name()).Msg("module mounted")
		}
	})

	return Mounted{Sweeper: cachePorts.Sweeper}
}
