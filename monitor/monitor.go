package monitor

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/sony/gobreaker"
	"golang.org/x/time/rate"

	"github.com/axtrust/axtrust/fref"
	"github.com/axtrust/axtrust/logutil"
)

// metricsEnabled controls whether Prometheus metrics are recorded.
var metricsEnabled atomic.Bool

// Monitor periodically runs the permission check and per-bundle
// application counts, with per-target circuit breaking and rate limiting.
type Monitor struct {
	cfg     Config
	trustFn TrustFunc
	countFn CountFunc

	breakers map[string]*gobreaker.CircuitBreaker
	limiters map[string]*rate.Limiter
	mu       sync.Mutex

	log *logutil.ComponentLogger
}

// New creates a Monitor over the given check functions.
func New(cfg Config, trustFn TrustFunc, countFn CountFunc) *Monitor {
	if cfg.Interval <= 0 {
		cfg.Interval = defaultInterval
	}
	if cfg.BreakerTimeout <= 0 {
		cfg.BreakerTimeout = defaultBreakerTimeout
	}
	metricsEnabled.Store(cfg.EnableMetrics)
	fref.SetMetricsEnabled(cfg.EnableMetrics)

	return &Monitor{
		cfg:      cfg,
		trustFn:  trustFn,
		countFn:  countFn,
		breakers: make(map[string]*gobreaker.CircuitBreaker),
		limiters: make(map[string]*rate.Limiter),
		log:      logutil.NewLogger("monitor"),
	}
}

// getOrCreateBreaker gets or creates a circuit breaker for a target.
func (m *Monitor) getOrCreateBreaker(target string) *gobreaker.CircuitBreaker {
	if !m.cfg.EnableCircuitBreaker {
		return nil
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if breaker, ok := m.breakers[target]; ok {
		return breaker
	}

	settings := gobreaker.Settings{
		Name:        target,
		MaxRequests: 1,
		Interval:    m.cfg.BreakerTimeout,
		Timeout:     m.cfg.BreakerTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if m.cfg.BreakerFailures <= 0 {
				return false
			}
			return counts.ConsecutiveFailures >= uint32(m.cfg.BreakerFailures)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			m.log.Info("circuit breaker state change", "target", name, "from", from.String(), "to", to.String())
			if metricsEnabled.Load() {
				recordBreakerState(name, to)
			}
		},
	}

	breaker := gobreaker.NewCircuitBreaker(settings)
	m.breakers[target] = breaker
	return breaker
}

// getOrCreateLimiter gets or creates a rate limiter for a target.
func (m *Monitor) getOrCreateLimiter(target string) *rate.Limiter {
	if m.cfg.RateLimit <= 0 {
		return nil
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if limiter, ok := m.limiters[target]; ok {
		return limiter
	}

	limiter := rate.NewLimiter(rate.Limit(m.cfg.RateLimit), m.cfg.RateLimit)
	m.limiters[target] = limiter
	return limiter
}

// runCheck executes one target check through the limiter and breaker.
func (m *Monitor) runCheck(ctx context.Context, target string, check func() (CheckResult, error)) CheckResult {
	start := time.Now()

	if limiter := m.getOrCreateLimiter(target); limiter != nil {
		if !limiter.Allow() {
			return CheckResult{
				Target:       target,
				Status:       StatusSkipped,
				Error:        "rate limit exceeded",
				ResponseTime: time.Since(start),
				Timestamp:    time.Now(),
			}
		}
	}
	if ctx.Err() != nil {
		return CheckResult{
			Target:       target,
			Status:       StatusSkipped,
			Error:        ctx.Err().Error(),
			ResponseTime: time.Since(start),
			Timestamp:    time.Now(),
		}
	}

	var result CheckResult
	breaker := m.getOrCreateBreaker(target)
	if breaker != nil {
		output, err := breaker.Execute(func() (interface{}, error) {
			res, err := check()
			if err != nil {
				return res, err
			}
			return res, nil
		})
		switch {
		case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
			result = CheckResult{Target: target, Status: StatusSkipped, Error: "circuit breaker open"}
		case err != nil:
			result = CheckResult{Target: target, Status: StatusError, Error: err.Error()}
		default:
			result = output.(CheckResult)
		}
	} else {
		res, err := check()
		if err != nil {
			result = CheckResult{Target: target, Status: StatusError, Error: err.Error()}
		} else {
			result = res
		}
	}

	result.ResponseTime = time.Since(start)
	result.Timestamp = time.Now()

	if metricsEnabled.Load() {
		recordCheck(result)
	}

	return result
}

// CheckOnce runs a single monitoring pass over the trust check and every
// configured bundle identifier.
func (m *Monitor) CheckOnce(ctx context.Context) Report {
	report := Report{Timestamp: time.Now()}

	report.Trust = m.runCheck(ctx, trustTarget, func() (CheckResult, error) {
		trusted, err := m.trustFn()
		if err != nil {
			return CheckResult{Target: trustTarget}, err
		}
		return CheckResult{Target: trustTarget, Status: StatusOK, Trusted: trusted}, nil
	})

	for _, id := range m.cfg.BundleIDs {
		id := id
		report.Apps = append(report.Apps, m.runCheck(ctx, id, func() (CheckResult, error) {
			count, err := m.countFn(id)
			if err != nil {
				return CheckResult{Target: id}, err
			}
			return CheckResult{Target: id, Status: StatusOK, Count: count}, nil
		}))
	}

	return report
}

// Run executes monitoring passes at the configured interval until the
// context is canceled, reporting each pass to onReport (which may be nil).
func (m *Monitor) Run(ctx context.Context, onReport func(Report)) error {
	m.log.Info("monitor started", "interval", m.cfg.Interval.String(), "targets", len(m.cfg.BundleIDs)+1)

	ticker := time.NewTicker(m.cfg.Interval)
	defer ticker.Stop()

	for {
		report := m.CheckOnce(ctx)
		if onReport != nil {
			onReport(report)
		}

		select {
		case <-ctx.Done():
			m.log.Info("monitor stopped")
			return ctx.Err()
		case <-ticker.C:
		}
	}
}
