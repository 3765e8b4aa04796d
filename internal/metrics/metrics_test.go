package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMetrics_Registered(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(reg)

	m.LoginsTotal.WithLabelValues(OutcomeSuccess).Inc()
	m.RegistrationsTotal.WithLabelValues(OutcomeDuplicate).Inc()
	m.VerificationsTotal.WithLabelValues("expired").Inc()
	m.LogoutsTotal.WithLabelValues("single", OutcomeSuccess).Inc()
	m.ExpiredSessionsPurge.Add(3)
	m.ObserveDuration("login", time.Now())

	families, err := reg.Gather()
	require.NoError(t, err)

	registered := make(map[string]bool)
	for _, family := range families {
		registered[family.GetName()] = true
	}

	for _, name := range []string{
		"session_auth_registrations_total",
		"session_auth_logins_total",
		"session_auth_verifications_total",
		"session_auth_logouts_total",
		"session_auth_operation_duration_seconds",
		"session_auth_expired_sessions_purged_total",
	} {
		assert.True(t, registered[name], "metric %q should be registered", name)
	}

	assert.Equal(t, float64(3), testutil.ToFloat64(m.ExpiredSessionsPurge))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.LoginsTotal.WithLabelValues(OutcomeSuccess)))
}

func TestNewMetrics_DoubleRegistrationPanics(t *testing.T) {
	reg := prometheus.NewRegistry()
	NewMetrics(reg)

	assert.Panics(t, func() { NewMetrics(reg) })
}

func TestHandler_ServesRegistry(t *testing.T) {
	reg, m := NewRegistry()
	m.LoginsTotal.WithLabelValues(OutcomeUnauthorized).Inc()

	rec := httptest.NewRecorder()
	Handler(reg).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `session_auth_logins_total{outcome="unauthorized"} 1`)
	assert.Contains(t, rec.Body.String(), "go_goroutines")
}
