// Copyright (c) axtrust authors. All rights reserved.
// Licensed under the MIT License.

package fref

import (
	"sync/atomic"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// metricsEnabled controls whether Prometheus metrics are recorded.
// Disabled by default so library consumers without a metrics endpoint
// pay nothing; the monitor package enables it.
var metricsEnabled atomic.Bool

const (
	acquireOwned  = "owned"
	acquireShared = "shared"
)

var (
	handleAcquires = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "axtrust_handle_acquires_total",
			Help: "Total handles acquired from raw foreign references",
		},
		[]string{"mode"},
	)

	handleClones = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "axtrust_handle_clones_total",
			Help: "Total handle clones (foreign retains on behalf of new owners)",
		},
	)

	handleReleases = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "axtrust_handle_releases_total",
			Help: "Total handle releases (foreign reference count decrements)",
		},
	)

	liveHandles = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "axtrust_live_handles",
			Help: "Handles currently holding a unit of foreign reference count",
		},
	)
)

// SetMetricsEnabled toggles Prometheus metrics for handle lifecycle events.
func SetMetricsEnabled(enabled bool) {
	metricsEnabled.Store(enabled)
}

func recordAcquire(mode string) {
	if !metricsEnabled.Load() {
		return
	}
	handleAcquires.With(prometheus.Labels{"mode": mode}).Inc()
	liveHandles.Inc()
}

func recordClone() {
	if !metricsEnabled.Load() {
		return
	}
	handleClones.Inc()
	liveHandles.Inc()
}

func recordRelease() {
	if !metricsEnabled.Load() {
		return
	}
	handleReleases.Inc()
	liveHandles.Dec()
}
