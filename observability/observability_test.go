package observability

import (
	"bytes"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, parseLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, parseLevel("warning"))
	assert.Equal(t, slog.LevelError, parseLevel("error"))
	assert.Equal(t, slog.LevelInfo, parseLevel("nonsense"))
}

func TestNewLogger_JSON(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, LogConfig{Level: "info", Format: "json"})
	logger.Debug("hidden")
	logger.Info("calculated", "operation", "affordability")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, `"operation":"affordability"`)
}

func TestMetrics_Counters(t *testing.T) {
	m := NewMetrics()
	m.Calculation("stamp_duty.hk", nil)
	m.Calculation("stamp_duty.hk", nil)
	m.Calculation("stamp_duty.hk", errors.New("boom"))
	m.CacheLookup("stamp_duty.hk", true)
	m.ObserveRequest("/stamp-duty/hk", 5*time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.calculations.WithLabelValues("stamp_duty.hk", "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.calculations.WithLabelValues("stamp_duty.hk", "error")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.cacheLookups.WithLabelValues("stamp_duty.hk", "hit")))

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.Contains(rec.Body.String(), "affordability_calculations_total"))
}

func TestMetrics_NilSafe(t *testing.T) {
	var m *Metrics
	m.Calculation("x", nil)
	m.CacheLookup("x", false)
	m.ObserveRequest("/x", time.Second)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
