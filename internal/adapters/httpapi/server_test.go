package httpapi_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/shipfix-go/internal/adapters/httpapi"
	"github.com/andrescamacho/shipfix-go/internal/adapters/metrics"
	"github.com/andrescamacho/shipfix-go/internal/infrastructure/config"
)

func testServerConfig() config.ServerConfig {
	return config.ServerConfig{
		Host:            "127.0.0.1",
		Port:            config.DefaultPort,
		ReadTimeout:     time.Second,
		WriteTimeout:    time.Second,
		ShutdownTimeout: time.Second,
		RateLimit:       config.RateLimitConfig{Requests: 1000, Burst: 1000},
		CORSOrigins:     []string{"*"},
	}
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func serve(t *testing.T, handler http.Handler, method, path string, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestBannerRoute(t *testing.T) {
	// Arrange
	srv := httpapi.NewServer(testServerConfig(), "", discardLogger())

	// Act
	rec := serve(t, srv.Routes(), http.MethodGet, "/", nil)

	// Assert
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "application/json")

	var body httpapi.BannerResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, httpapi.BannerResponse{Name: "ShipFix Tracker API", Version: "0.1.0", Docs: "/health"}, body)
}

func TestHealthRoute(t *testing.T) {
	srv := httpapi.NewServer(testServerConfig(), "", discardLogger())

	rec := serve(t, srv.Routes(), http.MethodGet, "/health", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok","service":"shipfix-api"}`, rec.Body.String())
}

func TestUnknownRouteIsNotFound(t *testing.T) {
	srv := httpapi.NewServer(testServerConfig(), "", discardLogger())

	rec := serve(t, srv.Routes(), http.MethodGet, "/vessels", nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"not found"}`, rec.Body.String())
}

func TestCORS_AllowsAnyOriginByDefault(t *testing.T) {
	srv := httpapi.NewServer(testServerConfig(), "", discardLogger())

	rec := serve(t, srv.Routes(), http.MethodGet, "/health", map[string]string{"Origin": "http://localhost:5173"})

	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestCORS_PreflightReturnsNoContent(t *testing.T) {
	srv := httpapi.NewServer(testServerConfig(), "", discardLogger())

	rec := serve(t, srv.Routes(), http.MethodOptions, "/health", map[string]string{
		"Origin":                         "http://localhost:5173",
		"Access-Control-Request-Method":  "GET",
		"Access-Control-Request-Headers": "Content-Type",
	})

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "GET,HEAD,PUT,PATCH,POST,DELETE", rec.Header().Get("Access-Control-Allow-Methods"))
	assert.Equal(t, "Content-Type", rec.Header().Get("Access-Control-Allow-Headers"))
}

func TestCORS_RestrictedOrigins(t *testing.T) {
	handler := httpapi.CORS([]string{"https://ops.shipfix.example"})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	allowed := serve(t, handler, http.MethodGet, "/", map[string]string{"Origin": "https://ops.shipfix.example"})
	denied := serve(t, handler, http.MethodGet, "/", map[string]string{"Origin": "https://elsewhere.example"})

	assert.Equal(t, "https://ops.shipfix.example", allowed.Header().Get("Access-Control-Allow-Origin"))
	assert.Empty(t, denied.Header().Get("Access-Control-Allow-Origin"))
}

func TestRateLimit_RejectsBeyondBurst(t *testing.T) {
	// Arrange
	cfg := testServerConfig()
	cfg.RateLimit = config.RateLimitConfig{Requests: 0.001, Burst: 2}
	srv := httpapi.NewServer(cfg, "", discardLogger())
	handler := srv.Routes()

	// Act
	first := serve(t, handler, http.MethodGet, "/health", nil)
	second := serve(t, handler, http.MethodGet, "/health", nil)
	third := serve(t, handler, http.MethodGet, "/health", nil)

	// Assert
	assert.Equal(t, http.StatusOK, first.Code)
	assert.Equal(t, http.StatusOK, second.Code)
	assert.Equal(t, http.StatusTooManyRequests, third.Code)
	assert.Equal(t, "1", third.Header().Get("Retry-After"))
}

func TestMetricsRoute(t *testing.T) {
	metrics.InitRegistry()
	t.Cleanup(metrics.ResetRegistry)

	srv := httpapi.NewServer(testServerConfig(), "/metrics", discardLogger())
	handler := srv.Routes()

	serve(t, handler, http.MethodGet, "/health", nil)
	rec := serve(t, handler, http.MethodGet, "/metrics", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `shipfix_http_requests_total{method="GET",route="/health",status_code="200"} 1`)
}

func TestMetricsRouteAbsentWhenDisabled(t *testing.T) {
	srv := httpapi.NewServer(testServerConfig(), "", discardLogger())

	rec := serve(t, srv.Routes(), http.MethodGet, "/metrics", nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestServe_ShutsDownOnCancel(t *testing.T) {
	// Arrange
	srv := httpapi.NewServer(testServerConfig(), "", discardLogger())
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Serve(ctx, ln) }()

	// Act
	resp, err := http.Get("http://" + ln.Addr().String() + "/health")
	require.NoError(t, err)
	_ = resp.Body.Close()
	cancel()

	// Assert
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}
