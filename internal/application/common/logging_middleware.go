package common

import (
	"context"
	"log/slog"
	"reflect"
	"strings"
	"time"

	"github.com/andrescamacho/shipfix-go/internal/application/mediator"
)

// LoggingMiddleware logs every dispatched request with its duration and outcome.
// Failures are logged at WARN since every registry error is recoverable.
func LoggingMiddleware(logger *slog.Logger) mediator.Middleware {
	return func(ctx context.Context, request mediator.Request, next mediator.HandlerFunc) (mediator.Response, error) {
		name := RequestName(request)
		log := logger.With("request", name)
		ctx = WithLogger(ctx, log)

		start := time.Now()
		resp, err := next(ctx, request)
		elapsed := time.Since(start)

		if err != nil {
			log.WarnContext(ctx, "request failed", "duration", elapsed, "error", err)
			return resp, err
		}
		log.DebugContext(ctx, "request handled", "duration", elapsed)
		return resp, nil
	}
}

// RequestName returns the bare type name of a request, e.g. "CreateVesselCommand"
func RequestName(request mediator.Request) string {
	t := reflect.TypeOf(request)
	if t == nil {
		return "unknown"
	}
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	name := t.Name()
	if idx := strings.LastIndex(name, "."); idx >= 0 {
		name = name[idx+1:]
	}
	return name
}
