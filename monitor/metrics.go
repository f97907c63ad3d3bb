package monitor

import (
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sony/gobreaker"
)

var (
	trustedGauge = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "axtrust_trusted",
			Help: "Whether the process holds the accessibility permission (1 = granted)",
		},
	)

	runningApps = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "axtrust_running_apps",
			Help: "Running applications per monitored bundle identifier",
		},
		[]string{"bundle_id"},
	)

	checkDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "axtrust_check_duration_seconds",
			Help:    "Duration of monitored checks in seconds",
			Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5},
		},
		[]string{"target", "status"},
	)

	checkErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "axtrust_check_errors_total",
			Help: "Total monitored check errors",
		},
		[]string{"target"},
	)

	breakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "axtrust_circuit_breaker_state",
			Help: "Circuit breaker state per target (0=closed, 1=half-open, 2=open)",
		},
		[]string{"target"},
	)
)

// recordCheck records metrics for one check result.
func recordCheck(result CheckResult) {
	checkDuration.With(prometheus.Labels{
		"target": result.Target,
		"status": string(result.Status),
	}).Observe(result.ResponseTime.Seconds())

	if result.Error != "" {
		checkErrors.With(prometheus.Labels{"target": result.Target}).Inc()
	}

	if result.Status != StatusOK {
		return
	}
	if result.Target == trustTarget {
		if result.Trusted {
			trustedGauge.Set(1)
		} else {
			trustedGauge.Set(0)
		}
		return
	}
	runningApps.With(prometheus.Labels{"bundle_id": result.Target}).Set(float64(result.Count))
}

// recordBreakerState records a circuit breaker state change.
func recordBreakerState(target string, state gobreaker.State) {
	var value float64
	switch state {
	case gobreaker.StateClosed:
		value = 0
	case gobreaker.StateHalfOpen:
		value = 1
	case gobreaker.StateOpen:
		value = 2
	}
	breakerState.With(prometheus.Labels{"target": target}).Set(value)
}

// ServeMetrics starts a Prometheus metrics HTTP server.
func ServeMetrics(port int) error {
	return CreateMetricsServer(port).ListenAndServe()
}

// CreateMetricsServer creates a configured HTTP server for Prometheus metrics.
func CreateMetricsServer(port int) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	return &http.Server{
		Addr:         fmt.Sprintf(":%d", port),
		Handler:      mux,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
}
