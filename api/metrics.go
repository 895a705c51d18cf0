/*
metrics.go - Prometheus exposition for the projection service

PURPOSE:
  Counts projection and scenario activity and serves it in Prometheus
  text format at /metrics, so the service can sit behind a standard
  scrape config.

METRICS:
  cohort_projections_total        Successful projection runs
  cohort_projection_errors_total  Rejected or failed projection requests
  cohort_scenario_loads_total     Scenario load requests

DESIGN:
  Three counters do not justify a registry. The families are built
  directly from atomic counters and encoded with the standard text
  encoder, which keeps the exposition parseable by any Prometheus
  client without pulling in the full client library.

SEE ALSO:
  - handlers.go: Bumps the counters
  - server.go: Mounts /metrics
*/
package api

import (
	"net/http"
	"sync/atomic"

	dto "github.com/prometheus/client_model/go"
	"github.com/prometheus/common/expfmt"
)

// =============================================================================
// COUNTERS
// =============================================================================

// Metrics holds the service counters. All fields are safe for
// concurrent use; the struct must not be copied.
type Metrics struct {
	Projections      atomic.Uint64
	ProjectionErrors atomic.Uint64
	ScenarioLoads    atomic.Uint64
}

// NewMetrics creates a zeroed counter set.
func NewMetrics() *Metrics {
	return &Metrics{}
}

// families snapshots the counters as Prometheus metric families.
func (m *Metrics) families() []*dto.MetricFamily {
	return []*dto.MetricFamily{
		counterFamily("cohort_projections_total",
			"Total successful projection runs.", m.Projections.Load()),
		counterFamily("cohort_projection_errors_total",
			"Total projection requests rejected or failed.", m.ProjectionErrors.Load()),
		counterFamily("cohort_scenario_loads_total",
			"Total scenario load requests.", m.ScenarioLoads.Load()),
	}
}

func counterFamily(name, help string, value uint64) *dto.MetricFamily {
	typ := dto.MetricType_COUNTER
	val := float64(value)
	return &dto.MetricFamily{
		Name:   &name,
		Help:   &help,
		Type:   &typ,
		Metric: []*dto.Metric{{Counter: &dto.Counter{Value: &val}}},
	}
}

// =============================================================================
// EXPOSITION
// =============================================================================

// ServeMetrics writes the counters in Prometheus text format.
// GET /metrics
func (h *Handler) ServeMetrics(w http.ResponseWriter, r *http.Request) {
	format := expfmt.NewFormat(expfmt.TypeTextPlain)
	w.Header().Set("Content-Type", string(format))

	enc := expfmt.NewEncoder(w, format)
	for _, mf := range h.Metrics.families() {
		if err := enc.Encode(mf); err != nil {
			// Headers are already out, so there is no clean error path.
			return
		}
	}
}
