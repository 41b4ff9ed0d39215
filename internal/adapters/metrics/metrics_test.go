package metrics_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/shipfix-go/internal/adapters/metrics"
	"github.com/andrescamacho/shipfix-go/internal/application/mediator"
	"github.com/andrescamacho/shipfix-go/internal/domain/fleet"
)

type probeCommand struct{}

func withRegistry(t *testing.T) {
	t.Helper()
	metrics.InitRegistry()
	t.Cleanup(metrics.ResetRegistry)
}

// metricValue finds a gauge or counter sample by one label pair
func metricValue(t *testing.T, name, label, value string) float64 {
	t.Helper()
	families, err := metrics.Registry.Gather()
	require.NoError(t, err)
	for _, mf := range families {
		if mf.GetName() != name {
			continue
		}
		for _, m := range mf.GetMetric() {
			for _, lp := range m.GetLabel() {
				if lp.GetName() == label && lp.GetValue() == value {
					if m.GetGauge() != nil {
						return m.GetGauge().GetValue()
					}
					return m.GetCounter().GetValue()
				}
			}
		}
	}
	t.Fatalf("metric %s{%s=%q} not found", name, label, value)
	return 0
}

func TestPrometheusMiddleware_RecordsSuccessAndError(t *testing.T) {
	// Arrange
	withRegistry(t)
	collector := metrics.NewCommandMetricsCollector()
	require.NoError(t, collector.Register())
	mw := metrics.PrometheusMiddleware(collector)

	ok := func(ctx context.Context, req mediator.Request) (mediator.Response, error) { return "ok", nil }
	fail := func(ctx context.Context, req mediator.Request) (mediator.Response, error) { return nil, errors.New("boom") }

	// Act
	_, err := mw(context.Background(), &probeCommand{}, ok)
	require.NoError(t, err)
	_, err = mw(context.Background(), &probeCommand{}, fail)
	require.Error(t, err)

	// Assert
	families, err := metrics.Registry.Gather()
	require.NoError(t, err)
	var found bool
	for _, mf := range families {
		if mf.GetName() == "shipfix_app_commands_total" {
			found = true
			assert.Len(t, mf.GetMetric(), 2)
		}
	}
	assert.True(t, found)
}

func TestPrometheusMiddleware_NilCollectorPassesThrough(t *testing.T) {
	mw := metrics.PrometheusMiddleware(nil)

	resp, err := mw(context.Background(), &probeCommand{}, func(ctx context.Context, req mediator.Request) (mediator.Response, error) {
		return "ok", nil
	})

	require.NoError(t, err)
	assert.Equal(t, "ok", resp)
}

func TestFleetMiddleware_TracksVesselsAndFailures(t *testing.T) {
	// Arrange
	withRegistry(t)
	collector := metrics.NewFleetMetricsCollector()
	require.NoError(t, collector.Register())
	registry := fleet.NewSeededRegistry(nil)
	mw := metrics.FleetMiddleware(collector, registry)

	// Act
	_, err := mw(context.Background(), &probeCommand{}, func(ctx context.Context, req mediator.Request) (mediator.Response, error) {
		_, err := registry.Create(fleet.VesselDraft{})
		return nil, err
	})

	// Assert
	require.Error(t, err)
	count, err := testutil.GatherAndCount(metrics.Registry, "shipfix_fleet_validation_failures_total")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
	assert.Equal(t, 2.0, metricValue(t, "shipfix_fleet_vessels", "status", "OPERATIONAL"))
	assert.Equal(t, 1.0, metricValue(t, "shipfix_fleet_vessels", "status", "UNDER_REPAIR"))
	assert.Equal(t, 1.0, metricValue(t, "shipfix_fleet_validation_failures_total", "code", "MISSING_NAME"))
}

func TestHandler_DisabledReturnsNotFound(t *testing.T) {
	metrics.ResetRegistry()

	rec := httptest.NewRecorder()
	metrics.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Nil(t, metrics.NewHTTPMetricsCollector())
}

func TestHandler_ExposesRegistry(t *testing.T) {
	withRegistry(t)
	collector := metrics.NewCommandMetricsCollector()
	require.NoError(t, collector.Register())
	collector.RecordCommandExecution("ListVesselsQuery", 0.001, true)

	rec := httptest.NewRecorder()
	metrics.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `shipfix_app_commands_total{command="ListVesselsQuery",status="success"} 1`)
}
