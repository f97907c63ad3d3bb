// Package monitor provides periodic monitoring of the accessibility
// permission and of running-application counts per bundle identifier.
package monitor

import (
	"time"
)

// Default monitor tuning.
const (
	defaultInterval       = 15 * time.Second
	defaultBreakerTimeout = 60 * time.Second
)

// trustTarget is the reserved target name for the permission check.
const trustTarget = "trust"

// Status classifies a single check outcome.
type Status string

const (
	StatusOK      Status = "ok"
	StatusError   Status = "error"
	StatusSkipped Status = "skipped" // breaker open or rate limited
)

// CheckResult is the outcome of one monitored check.
type CheckResult struct {
	Target       string        `json:"target"`
	Status       Status        `json:"status"`
	Trusted      bool          `json:"trusted,omitempty"`
	Count        int           `json:"count,omitempty"`
	Error        string        `json:"error,omitempty"`
	ResponseTime time.Duration `json:"responseTime"`
	Timestamp    time.Time     `json:"timestamp"`
}

// Report aggregates one monitoring pass.
type Report struct {
	Timestamp time.Time     `json:"timestamp"`
	Trust     CheckResult   `json:"trust"`
	Apps      []CheckResult `json:"apps"`
}

// Config holds configuration for the monitor.
type Config struct {
	BundleIDs            []string
	Interval             time.Duration
	EnableCircuitBreaker bool
	BreakerFailures      int
	BreakerTimeout       time.Duration
	RateLimit            int // max checks per second per target (0 = unlimited)
	EnableMetrics        bool
	MetricsPort          int
}

// TrustFunc reports whether the accessibility permission is granted.
type TrustFunc func() (bool, error)

// CountFunc counts running applications for a bundle identifier.
type CountFunc func(bundleID string) (int, error)
