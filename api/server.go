/*
server.go - HTTP router and middleware configuration

PURPOSE:
  Configures the HTTP router (chi), middleware stack, and route
  definitions. This is the wiring layer that connects URLs to handlers.

MIDDLEWARE STACK:
  1. Logger:     Request logging
  2. Recoverer:  Panic recovery (500 instead of crash)
  3. RequestID:  Unique ID per request for tracing
  4. CORS:       Cross-origin requests for API consumers

ROUTE GROUPS:
  /api/projections      Ad hoc projections
  /api/scenarios/*      Scenario catalog
  /metrics              Prometheus exposition
  /                     Inline HTML index

SECURITY NOTE:
  No authentication middleware. The service computes projections from
  request data and holds no tenant state, so all endpoints are public.

SEE ALSO:
  - handlers.go: Handler implementations
  - cmd/server/main.go: Server startup
*/
package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// NewRouter creates a new router with all routes configured.
func NewRouter(h *Handler) *chi.Mux {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))

	// API routes
	r.Route("/api", func(r chi.Router) {
		r.Post("/projections", h.CreateProjection)

		r.Route("/scenarios", func(r chi.Router) {
			r.Get("/", h.ListScenarios)
			r.Get("/current", h.GetCurrentScenario)
			r.Post("/load", h.LoadScenario)
			r.Get("/{id}", h.GetScenario)
			r.Get("/{id}/projection", h.GetScenarioProjection)
		})
	})

	// Operational routes
	r.Get("/metrics", h.ServeMetrics)

	// Landing page with a pointer at the API
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte(`<!DOCTYPE html>
<html>
<head><title>Cohort Projection Engine</title></head>
<body style="font-family: system-ui; max-width: 800px; margin: 50px auto; padding: 20px;">
<h1>Cohort Projection Engine API</h1>
<p>Project workforce cohort revenue from a hiring plan. POST a plan to
<code>/api/projections</code> or browse the scenario catalog below.</p>
<h2>API Endpoints</h2>
<ul>
<li><code>POST /api/projections</code> - Project an ad hoc plan</li>
<li><a href="/api/scenarios">/api/scenarios</a> - List scenarios</li>
<li><a href="/api/scenarios/baseline-growth/projection">/api/scenarios/baseline-growth/projection</a> - Example projection</li>
<li><a href="/metrics">/metrics</a> - Prometheus metrics</li>
</ul>
</body>
</html>`))
	})

	return r
}
