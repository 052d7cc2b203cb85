package main

import (
	"log/slog"
	nethttp "net/http"

	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/samber/do/v2"

	adapthttp "github.com/jsamuelsen11/device-usage-service/internal/adapters/http"
	"github.com/jsamuelsen11/device-usage-service/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/device-usage-service/internal/adapters/http/middleware"

	"github.com/jsamuelsen11/device-usage-service/internal/adapters/clients/seedsource"
	"github.com/jsamuelsen11/device-usage-service/internal/adapters/storage"
	"github.com/jsamuelsen11/device-usage-service/internal/app"
	"github.com/jsamuelsen11/device-usage-service/internal/platform/config"
	"github.com/jsamuelsen11/device-usage-service/internal/platform/health"
	"github.com/jsamuelsen11/device-usage-service/internal/platform/httpclient"
	"github.com/jsamuelsen11/device-usage-service/internal/platform/telemetry"
	"github.com/jsamuelsen11/device-usage-service/internal/ports"
)

// remoteSeedSource names the HTTP seed source. It is provided only when
// seed.remote.base_url is set.
const remoteSeedSource = "seed-source.remote"

// wire registers every lazily built service. cfg, the logger, the metrics
// and the store are provided as values by run.
func wire(injector *do.RootScope, cfg *config.Config, logger *slog.Logger) {
	do.Provide(injector, func(i do.Injector) (ports.Repositories, error) {
		return do.MustInvoke[*storage.Store](i).Repositories(), nil
	})

	wireSeeding(injector, cfg, logger)

	do.Provide(injector, func(i do.Injector) (ports.DeviceService, error) {
		return app.NewDeviceService(do.MustInvoke[ports.Repositories](i).Devices, logger), nil
	})
	do.Provide(injector, func(i do.Injector) (ports.PersonService, error) {
		return app.NewPersonService(do.MustInvoke[ports.Repositories](i).People, logger), nil
	})
	do.Provide(injector, func(i do.Injector) (ports.UsageService, error) {
		repos := do.MustInvoke[ports.Repositories](i)
		return app.NewUsageService(repos.Devices, repos.People, repos.Usages, logger,
			app.WithMetrics(do.MustInvoke[*telemetry.Metrics](i))), nil
	})

	do.Provide(injector, func(do.Injector) (ports.HealthRegistry, error) {
		return health.New(), nil
	})

	wireHTTP(injector, cfg, logger)
}

func wireSeeding(injector *do.RootScope, cfg *config.Config, logger *slog.Logger) {
	remote := cfg.Seed.Remote.BaseURL != ""

	if remote {
		do.ProvideNamed(injector, remoteSeedSource, func(i do.Injector) (*seedsource.HTTP, error) {
			client := httpclient.New(&cfg.Seed.Remote, "seed-source", do.MustInvoke[*telemetry.Metrics](i), logger)
			return seedsource.NewHTTP(client, cfg.Seed.RemotePath, logger), nil
		})
	}

	do.Provide(injector, func(i do.Injector) (ports.SeedSource, error) {
		if remote {
			return do.MustInvokeNamed[*seedsource.HTTP](i, remoteSeedSource), nil
		}
		return seedsource.NewFile(cfg.Seed.File), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.Importer, error) {
		return app.NewImporter(
			do.MustInvoke[*storage.Store](i),
			do.MustInvoke[ports.SeedSource](i),
			logger,
			app.WithImportMetrics(do.MustInvoke[*telemetry.Metrics](i)),
		), nil
	})
}

func wireHTTP(injector *do.RootScope, cfg *config.Config, logger *slog.Logger) {
	do.Provide(injector, func(i do.Injector) (adapthttp.Handlers, error) {
		return adapthttp.Handlers{
			Devices: handlers.NewDeviceHandler(do.MustInvoke[ports.DeviceService](i)),
			People:  handlers.NewPersonHandler(do.MustInvoke[ports.PersonService](i)),
			Usages:  handlers.NewUsageHandler(do.MustInvoke[ports.UsageService](i)),
			Health:  handlers.NewHealthHandler(do.MustInvoke[ports.HealthRegistry](i)),
		}, nil
	})

	do.Provide(injector, func(i do.Injector) (nethttp.Handler, error) {
		return adapthttp.NewRouter(do.MustInvoke[adapthttp.Handlers](i),
			middleware.Recovery(logger),
			middleware.RequestID(),
			middleware.CorrelationID(),
			middleware.AppContext(),
			middleware.OpenTelemetry(do.MustInvoke[*telemetry.Metrics](i)),
			middleware.Logging(logger),
			chimw.Timeout(cfg.Server.WriteTimeout),
		), nil
	})

	do.Provide(injector, func(i do.Injector) (*adapthttp.Server, error) {
		return adapthttp.NewServer(cfg.Server, do.MustInvoke[nethttp.Handler](i), logger), nil
	})
}
