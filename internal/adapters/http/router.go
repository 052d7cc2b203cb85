// Package http provides the inbound HTTP adapter including routing and server lifecycle.
package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/device-usage-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/device-usage-service/internal/adapters/http/handlers"
)

// Handlers groups the endpoint handlers mounted by NewRouter.
type Handlers struct {
	Devices *handlers.DeviceHandler
	People  *handlers.PersonHandler
	Usages  *handlers.UsageHandler
	Health  *handlers.HealthHandler
}

// NewRouter creates an HTTP handler with all application routes registered.
// Middleware is applied globally in the order given.
func NewRouter(h Handlers, middlewares ...func(http.Handler) http.Handler) http.Handler {
	r := chi.NewRouter()

	for _, mw := range middlewares {
		r.Use(mw)
	}

	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		dto.WriteStatusResponse(w, req, http.StatusNotFound)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, req *http.Request) {
		dto.WriteStatusResponse(w, req, http.StatusMethodNotAllowed)
	})

	// Health endpoints (outside /api/v1 prefix).
	r.Get("/health/live", h.Health.Liveness)
	r.Get("/health/ready", h.Health.Readiness)

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/devices", func(r chi.Router) {
			r.Get("/", h.Devices.ListDevices)
			r.Post("/", h.Devices.CreateDevice)
			r.Get("/with-counts", h.Devices.ListDevicesWithUsageCounts)
			r.Get("/{id}", h.Devices.GetDevice)
			r.Put("/{id}", h.Devices.UpdateDevice)
			r.Delete("/{id}", h.Devices.DeleteDevice)
		})

		r.Route("/people", func(r chi.Router) {
			r.Get("/", h.People.ListPeople)
			r.Post("/", h.People.CreatePerson)
			r.Get("/{id}", h.People.GetPerson)
			r.Put("/{id}", h.People.UpdatePerson)
			r.Delete("/{id}", h.People.DeletePerson)
		})

		r.Route("/usages", func(r chi.Router) {
			r.Get("/", h.Usages.ListUsages)
			r.Post("/", h.Usages.CreateUsage)
			r.Get("/{id}", h.Usages.GetUsage)
			r.Put("/{id}", h.Usages.UpdateUsage)
			r.Delete("/{id}", h.Usages.DeleteUsage)
		})
	})

	return r
}
