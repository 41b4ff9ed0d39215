package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	// Namespace for all metrics
	namespace = "shipfix"

	// Subsystems
	subsystemApp   = "app"
	subsystemFleet = "fleet"
	subsystemHTTP  = "http"
)

var (
	// Registry is the global Prometheus registry for all metrics.
	// Nil until InitRegistry is called, which disables every collector.
	Registry *prometheus.Registry
)

// InitRegistry initializes the Prometheus registry with the Go runtime and process collectors.
// Should be called once at application startup if metrics are enabled.
func InitRegistry() {
	Registry = prometheus.NewRegistry()
	Registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
}

// ResetRegistry disables metrics again
func ResetRegistry() {
	Registry = nil
}

// IsEnabled returns true if metrics collection is enabled
func IsEnabled() bool {
	return Registry != nil
}

// Handler returns the HTTP handler exposing the registry, or 404 when metrics are disabled
func Handler() http.Handler {
	if Registry == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{Registry: Registry})
}

func register(cs ...prometheus.Collector) error {
	if Registry == nil {
		return nil // Metrics not enabled
	}
	for _, c := range cs {
		if err := Registry.Register(c); err != nil {
			return err
		}
	}
	return nil
}
