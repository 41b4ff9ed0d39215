package metrics

import (
	"context"
	"time"

	"github.com/andrescamacho/shipfix-go/internal/application/common"
	"github.com/andrescamacho/shipfix-go/internal/application/mediator"
)

// PrometheusMiddleware creates a middleware that records command execution metrics
//
// This middleware wraps all command/query execution and records:
// - Execution duration (histogram)
// - Success/failure counts (counter)
//
// Command names are simplified to the bare type name, e.g. "CreateVesselCommand".
func PrometheusMiddleware(collector *CommandMetricsCollector) mediator.Middleware {
	return func(ctx context.Context, request mediator.Request, next mediator.HandlerFunc) (mediator.Response, error) {
		// Skip metrics if collector is nil (metrics disabled)
		if collector == nil {
			return next(ctx, request)
		}

		commandName := common.RequestName(request)

		start := time.Now()
		response, err := next(ctx, request)

		collector.RecordCommandExecution(commandName, time.Since(start).Seconds(), err == nil)

		return response, err
	}
}
