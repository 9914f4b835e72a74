// Package httptransport assembles the HTTP router: shared middleware chain,
// the configurable API base path, health and metrics endpoints, and the
// per-resource sub-routers.
package httptransport

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"insureco/internal/platform/metrics"
	"insureco/internal/platform/middleware"
	"insureco/pkg/platform/httputil"
)

// Registrar mounts one resource's routes on a router.
type Registrar interface {
	Register(r chi.Router)
}

// NewRouter wires all public endpoints. Every route runs behind the shared
// middleware chain; resource handlers only see decoded requests.
//
// There is deliberately no authorization middleware: the admin/policyholder
// role gate lives entirely in the client, and this API reproduces that
// limitation rather than pretending to a security boundary it does not have.
func NewRouter(basePath string, logger *slog.Logger, m *metrics.Metrics, resources ...Registrar) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Latency(m))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"*"},
	}))
	r.Use(middleware.ContentTypeJSON)
	r.Use(middleware.Timeout(30 * time.Second))

	r.Handle("/metrics", promhttp.Handler())
	r.Route(basePath, func(api chi.Router) {
		api.Get("/health", handleHealth)
		for _, res := range resources {
			res.Register(api)
		}
	})

	return r
}

func handleHealth(w http.ResponseWriter, _ *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
