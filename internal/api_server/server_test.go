package apiserver

import (
	"context"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/layoutlab/warehouse-analytics/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg, err := config.Load()
	require.NoError(t, err)
	return cfg
}

func TestRouter_ServesAnalytics(t *testing.T) {
	s := New(testConfig(t), nil)
	router, err := s.Router()
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/analytics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("X-Request-Id"))
	assert.Contains(t, rec.Body.String(), `"bestLayout"`)
}

func TestRouter_CanBeBuiltTwice(t *testing.T) {
	cfg := testConfig(t)

	_, err := New(cfg, nil).Router()
	require.NoError(t, err)
	_, err = New(cfg, nil).Router()
	require.NoError(t, err)
}

func TestServers_RunAndShutdown(t *testing.T) {
	cfg := testConfig(t)

	apiListener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	metricsListener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	errs := make(chan error, 2)
	go func() { errs <- New(cfg, apiListener).Run(ctx) }()
	go func() { errs <- NewMetricServer(metricsListener.Addr().String(), metricsListener).Run(ctx) }()

	resp, err := http.Get("http://" + apiListener.Addr().String() + "/health")
	require.NoError(t, err)
	_ = resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = http.Get("http://" + metricsListener.Addr().String() + "/metrics")
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	assert.True(t, strings.Contains(string(body), "chi_requests_total"))

	cancel()
	for i := 0; i < 2; i++ {
		select {
		case err := <-errs:
			assert.NoError(t, err)
		case <-time.After(10 * time.Second):
			t.Fatal("server did not shut down")
		}
	}
}
