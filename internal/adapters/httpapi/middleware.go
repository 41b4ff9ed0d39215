package httpapi

import (
	"net/http"
	"strings"

	"golang.org/x/time/rate"

	"github.com/andrescamacho/shipfix-go/internal/adapters/metrics"
	"github.com/andrescamacho/shipfix-go/internal/infrastructure/config"
)

const corsAllowedMethods = "GET,HEAD,PUT,PATCH,POST,DELETE"

// CORS answers preflight requests and sets Access-Control-Allow-Origin.
// An origin list containing "*" allows every origin.
func CORS(origins []string) func(http.Handler) http.Handler {
	allowAll := false
	allowed := make(map[string]struct{}, len(origins))
	for _, o := range origins {
		if o == "*" {
			allowAll = true
		}
		allowed[strings.TrimRight(o, "/")] = struct{}{}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")
			switch {
			case allowAll:
				w.Header().Set("Access-Control-Allow-Origin", "*")
			case origin != "":
				if _, ok := allowed[origin]; ok {
					w.Header().Set("Access-Control-Allow-Origin", origin)
					w.Header().Add("Vary", "Origin")
				}
			}

			if r.Method == http.MethodOptions && r.Header.Get("Access-Control-Request-Method") != "" {
				w.Header().Set("Access-Control-Allow-Methods", corsAllowedMethods)
				if headers := r.Header.Get("Access-Control-Request-Headers"); headers != "" {
					w.Header().Set("Access-Control-Allow-Headers", headers)
				}
				w.WriteHeader(http.StatusNoContent)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// RateLimit rejects requests beyond a shared token bucket with 429
func RateLimit(cfg config.RateLimitConfig, recorder *metrics.HTTPMetricsCollector) func(http.Handler) http.Handler {
	limiter := rate.NewLimiter(rate.Limit(cfg.Requests), cfg.Burst)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !limiter.Allow() {
				recorder.RecordRateLimited()
				w.Header().Set("Retry-After", "1")
				writeJSON(w, http.StatusTooManyRequests, map[string]string{"error": "rate limit exceeded"})
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
