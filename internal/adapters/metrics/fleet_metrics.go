package metrics

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/andrescamacho/shipfix-go/internal/application/common"
	"github.com/andrescamacho/shipfix-go/internal/application/mediator"
	"github.com/andrescamacho/shipfix-go/internal/domain/fleet"
)

// FleetMetricsCollector tracks the vessel population and validation failures
type FleetMetricsCollector struct {
	vessels            *prometheus.GaugeVec
	validationFailures *prometheus.CounterVec
}

// NewFleetMetricsCollector creates a new fleet metrics collector
func NewFleetMetricsCollector() *FleetMetricsCollector {
	return &FleetMetricsCollector{
		vessels: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Subsystem: subsystemFleet,
				Name:      "vessels",
				Help:      "Number of vessels in the registry by operational status",
			},
			[]string{"status"},
		),
		validationFailures: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystemFleet,
				Name:      "validation_failures_total",
				Help:      "Rejected vessel drafts and lookups by error code",
			},
			[]string{"code"},
		),
	}
}

// Register registers all fleet metrics with the Prometheus registry
func (c *FleetMetricsCollector) Register() error {
	return register(c.vessels, c.validationFailures)
}

// ObserveRegistry sets the vessel gauges from the registry's current contents
func (c *FleetMetricsCollector) ObserveRegistry(registry *fleet.VesselRegistry) {
	for status, count := range registry.CountByStatus() {
		c.vessels.WithLabelValues(status.Code()).Set(float64(count))
	}
}

// RecordFailure counts a registry error by its code; foreign errors are ignored
func (c *FleetMetricsCollector) RecordFailure(err error) {
	if code := fleet.CodeOf(err); code != "" {
		c.validationFailures.WithLabelValues(string(code)).Inc()
	}
}

// FleetMiddleware refreshes the vessel gauges after every request and counts registry errors
func FleetMiddleware(collector *FleetMetricsCollector, registry *fleet.VesselRegistry) mediator.Middleware {
	return func(ctx context.Context, request mediator.Request, next mediator.HandlerFunc) (mediator.Response, error) {
		response, err := next(ctx, request)
		if collector == nil {
			return response, err
		}

		if code := fleet.CodeOf(err); code != "" {
			collector.RecordFailure(err)
			common.LoggerFromContext(ctx).DebugContext(ctx, "registry rejected request", "code", string(code))
		}
		collector.ObserveRegistry(registry)

		return response, err
	}
}
