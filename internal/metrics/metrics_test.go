package metrics

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObserveAction(t *testing.T) {
	m := New()
	m.ObserveAction("createApplication", "success")
	m.ObserveAction("createApplication", "success")
	m.ObserveAction("createApplication", "CONFLICT")

	assert.Equal(t, 2.0, testutil.ToFloat64(m.actions.WithLabelValues("createApplication", "success")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.actions.WithLabelValues("createApplication", "CONFLICT")))
}

func TestRequestStarted(t *testing.T) {
	m := New()
	done := m.RequestStarted()
	assert.Equal(t, 1.0, testutil.ToFloat64(m.httpInFlight))

	done("get", "", 404)
	assert.Equal(t, 0.0, testutil.ToFloat64(m.httpInFlight))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.httpRequests.WithLabelValues("GET", "unmatched", "404")))
}

func TestNilMetricsIsSafe(t *testing.T) {
	var m *Metrics
	m.ObserveAction("a", "b")
	m.ObserveCacheLookup(true)
	m.RequestStarted()("GET", "/", 200)
}

func TestHandlerExposesActionCounter(t *testing.T) {
	m := New()
	m.ObserveCacheLookup(false)
	m.ObserveAction("listJobPostings", "success")

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))
	require.Equal(t, 200, rec.Code)
	body := rec.Body.String()
	assert.True(t, strings.Contains(body, `job_board_action_results_total{action="listJobPostings",outcome="success"} 1`))
	assert.True(t, strings.Contains(body, `job_board_render_cache_lookups_total{result="miss"} 1`))
}
