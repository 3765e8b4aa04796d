// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package metrics defines the Prometheus instruments of the authentication
// server and the registry that exposes them.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Outcome label values.
const (
	OutcomeSuccess      = "success"
	OutcomeInvalid      = "invalid"
	OutcomeDuplicate    = "duplicate"
	OutcomeUnauthorized = "unauthorized"
	OutcomeError        = "error"
)

// Metrics contains the custom instruments recorded by the services and
// background workers.
type Metrics struct {
	RegistrationsTotal *prometheus.CounterVec
	LoginsTotal        *prometheus.CounterVec
	// VerificationsTotal is labelled by the internal verification failure
	// reason, which external callers only ever see as 401.
	VerificationsTotal   *prometheus.CounterVec
	LogoutsTotal         *prometheus.CounterVec
	AuthDuration         *prometheus.HistogramVec
	ExpiredSessionsPurge prometheus.Counter
}

// NewMetrics creates the instruments and registers them with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		RegistrationsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "session_auth_registrations_total",
				Help: "Total number of registration attempts by outcome",
			},
			[]string{"outcome"},
		),
		LoginsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "session_auth_logins_total",
				Help: "Total number of login attempts by outcome",
			},
			[]string{"outcome"},
		),
		VerificationsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "session_auth_verifications_total",
				Help: "Total number of assertion verifications by outcome",
			},
			[]string{"outcome"},
		),
		LogoutsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "session_auth_logouts_total",
				Help: "Total number of session revocations by scope and outcome",
			},
			[]string{"scope", "outcome"},
		),
		AuthDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "session_auth_operation_duration_seconds",
				Help:    "Latency of authentication operations in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation"},
		),
		ExpiredSessionsPurge: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "session_auth_expired_sessions_purged_total",
				Help: "Total number of expired sessions removed by the cleanup worker",
			},
		),
	}

	reg.MustRegister(
		m.RegistrationsTotal,
		m.LoginsTotal,
		m.VerificationsTotal,
		m.LogoutsTotal,
		m.AuthDuration,
		m.ExpiredSessionsPurge,
	)

	return m
}

// NewRegistry returns a registry with the Go runtime and process collectors
// and the application instruments registered on it.
func NewRegistry() (*prometheus.Registry, *Metrics) {
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector())
	registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	return registry, NewMetrics(registry)
}

// Handler serves the contents of gatherer in the Prometheus exposition
// format.
func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{
		EnableOpenMetrics: true,
	})
}

// ObserveDuration records the time elapsed since start for operation.
func (m *Metrics) ObserveDuration(operation string, start time.Time) {
	m.AuthDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
}
