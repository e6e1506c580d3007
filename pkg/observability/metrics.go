// Package observability exposes Prometheus collectors for the maps-routes
// server. The collectors always count; they are only served over HTTP when
// the metrics listener is enabled.
package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	toolRequests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "maps_routes",
		Subsystem: "tools",
		Name:      "requests_total",
		Help:      "Tool invocations by tool name.",
	}, []string{"tool"})

	toolErrors = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "maps_routes",
		Subsystem: "tools",
		Name:      "errors_total",
		Help:      "Tool invocations that returned an error text block.",
	}, []string{"tool"})

	providerRequests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "maps_routes",
		Subsystem: "provider",
		Name:      "requests_total",
		Help:      "Google Maps API requests by service and outcome.",
	}, []string{"service", "status"})
)

func init() {
	prometheus.MustRegister(toolRequests, toolErrors, providerRequests)
}

// RecordToolRequest counts one invocation of the named tool.
func RecordToolRequest(tool string) {
	toolRequests.WithLabelValues(tool).Inc()
}

// RecordToolError counts one error response from the named tool.
func RecordToolError(tool string) {
	toolErrors.WithLabelValues(tool).Inc()
}

// RecordProviderRequest counts one provider request outcome. The status is
// either the provider status string (OK, ZERO_RESULTS, ...) or a synthetic
// transport outcome (http_500, transport_error, decode_error).
func RecordProviderRequest(service, status string) {
	providerRequests.WithLabelValues(service, status).Inc()
}
