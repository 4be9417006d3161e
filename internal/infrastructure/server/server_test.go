package server

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reelfolio/core/internal/adapters/repository"
	"github.com/reelfolio/core/internal/infrastructure/config"
	"github.com/reelfolio/core/internal/infrastructure/logger"
)

func testConfig() *config.Config {
	return &config.Config{
		App:      config.AppConfig{Name: "Reelfolio", Version: "test", Environment: "test"},
		Server:   config.ServerConfig{Host: "127.0.0.1", Port: 3001},
		Storage:  config.StorageConfig{Path: "db.json"},
		Security: config.SecurityConfig{CORSAllowedOrigins: "*"},
		Metrics:  config.MetricsConfig{Enabled: true},
	}
}

func newTestServer(t *testing.T, cfg *config.Config) *Server {
	t.Helper()
	srv, err := New(cfg, repository.NewMemoryStore(nil), logger.NewNop())
	require.NoError(t, err)
	return srv
}

func get(t *testing.T, srv *Server, path string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestNewRequiresStore(t *testing.T) {
	_, err := New(testConfig(), nil, logger.NewNop())
	assert.Error(t, err)
}

func TestHealthEndpoints(t *testing.T) {
	srv := newTestServer(t, testConfig())

	rec := get(t, srv, "/health")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)

	rec = get(t, srv, "/ready")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ready"`)

	rec = get(t, srv, "/health/detailed")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"stats":{"projects":0,"incomes":0}`)
}

func TestAPIMountedUnderPrefix(t *testing.T) {
	srv := newTestServer(t, testConfig())

	rec := get(t, srv, "/api/projects")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
	assert.NotEmpty(t, rec.Header().Get("X-Request-Id"))

	rec = get(t, srv, "/projects")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCORSPreflight(t *testing.T) {
	srv := newTestServer(t, testConfig())

	req := httptest.NewRequest(http.MethodOptions, "/api/projects", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestMetricsEndpoint(t *testing.T) {
	srv := newTestServer(t, testConfig())
	get(t, srv, "/api/incomes")

	rec := get(t, srv, "/metrics")
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `http_requests_total{method="GET",path="/api/incomes",status="200"} 1`)
	assert.Contains(t, body, `reelfolio_records{collection="projects"} 0`)
}

func TestMetricsDisabled(t *testing.T) {
	cfg := testConfig()
	cfg.Metrics.Enabled = false
	srv := newTestServer(t, cfg)

	assert.Equal(t, http.StatusNotFound, get(t, srv, "/metrics").Code)
}

func TestRateLimit(t *testing.T) {
	cfg := testConfig()
	cfg.Security.RateLimitRequests = 2
	cfg.Security.RateLimitWindow = time.Minute
	srv := newTestServer(t, cfg)

	assert.Equal(t, http.StatusOK, get(t, srv, "/api/projects").Code)
	assert.Equal(t, http.StatusOK, get(t, srv, "/api/projects").Code)

	rec := get(t, srv, "/api/projects")
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.JSONEq(t, `{"message":"rate limit exceeded"}`, rec.Body.String())

	assert.Equal(t, http.StatusOK, get(t, srv, "/health").Code)
}

func TestSwaggerDocument(t *testing.T) {
	srv := newTestServer(t, testConfig())

	rec := get(t, srv, "/swagger/doc.json")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"/incomes/summary"`)
}

func TestStaticSiteInProduction(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.html"), []byte("<html>reelfolio</html>"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "app.js"), []byte("console.log(1)"), 0o644))

	cfg := testConfig()
	cfg.App.Environment = "production"
	cfg.Static.Dir = dir
	srv := newTestServer(t, cfg)

	rec := get(t, srv, "/")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "reelfolio")

	rec = get(t, srv, "/app.js")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "console.log")

	rec = get(t, srv, "/projects/some-client-route")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.Contains(rec.Body.String(), "<html>"))

	rec = get(t, srv, "/api/unknown")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"message":"Not Found"}`, rec.Body.String())

	rec = get(t, srv, "/api/projects")
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestNoStaticSiteOutsideProduction(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.html"), []byte("<html></html>"), 0o644))

	cfg := testConfig()
	cfg.Static.Dir = dir
	srv := newTestServer(t, cfg)

	assert.Equal(t, http.StatusNotFound, get(t, srv, "/").Code)
}
