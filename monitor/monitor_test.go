package monitor

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckOnceReportsTrustAndCounts(t *testing.T) {
	trustCalls := 0
	countCalls := map[string]int{}

	m := New(
		Config{BundleIDs: []string{"com.apple.Safari", "org.mozilla.firefox"}},
		func() (bool, error) {
			trustCalls++
			return true, nil
		},
		func(id string) (int, error) {
			countCalls[id]++
			return len(id), nil
		},
	)

	report := m.CheckOnce(context.Background())

	require.Equal(t, StatusOK, report.Trust.Status)
	assert.True(t, report.Trust.Trusted)
	assert.Equal(t, 1, trustCalls)

	require.Len(t, report.Apps, 2)
	assert.Equal(t, "com.apple.Safari", report.Apps[0].Target)
	assert.Equal(t, len("com.apple.Safari"), report.Apps[0].Count)
	assert.Equal(t, 1, countCalls["org.mozilla.firefox"])
}

func TestCheckOnceReportsErrors(t *testing.T) {
	m := New(
		Config{BundleIDs: []string{"com.example.app"}},
		func() (bool, error) { return false, errors.New("factory returned null") },
		func(string) (int, error) { return 0, errors.New("registry returned null") },
	)

	report := m.CheckOnce(context.Background())

	assert.Equal(t, StatusError, report.Trust.Status)
	assert.Contains(t, report.Trust.Error, "factory returned null")
	require.Len(t, report.Apps, 1)
	assert.Equal(t, StatusError, report.Apps[0].Status)
}

func TestBreakerOpensAfterConsecutiveFailures(t *testing.T) {
	calls := 0
	m := New(
		Config{
			EnableCircuitBreaker: true,
			BreakerFailures:      3,
			BreakerTimeout:       time.Minute,
		},
		func() (bool, error) {
			calls++
			return false, errors.New("boom")
		},
		func(string) (int, error) { return 0, nil },
	)

	for i := 0; i < 3; i++ {
		report := m.CheckOnce(context.Background())
		assert.Equal(t, StatusError, report.Trust.Status, "pass %d", i)
	}

	report := m.CheckOnce(context.Background())
	assert.Equal(t, StatusSkipped, report.Trust.Status)
	assert.Contains(t, report.Trust.Error, "circuit breaker open")
	assert.Equal(t, 3, calls, "open breaker must not invoke the check")
}

func TestRateLimitSkipsExcessChecks(t *testing.T) {
	calls := 0
	m := New(
		Config{RateLimit: 1},
		func() (bool, error) {
			calls++
			return true, nil
		},
		func(string) (int, error) { return 0, nil },
	)

	first := m.CheckOnce(context.Background())
	second := m.CheckOnce(context.Background())

	assert.Equal(t, StatusOK, first.Trust.Status)
	assert.Equal(t, StatusSkipped, second.Trust.Status)
	assert.Equal(t, 1, calls)
}

func TestRunStopsOnContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	reports := make(chan Report, 1)
	m := New(
		Config{Interval: 10 * time.Millisecond},
		func() (bool, error) { return true, nil },
		func(string) (int, error) { return 0, nil },
	)

	done := make(chan error, 1)
	go func() {
		done <- m.Run(ctx, func(r Report) {
			select {
			case reports <- r:
			default:
			}
		})
	}()

	select {
	case <-reports:
	case <-time.After(time.Second):
		t.Fatal("no report produced within 1s")
	}

	cancel()
	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(time.Second):
		t.Fatal("Run did not stop after context cancel")
	}
}

func TestCreateMetricsServer(t *testing.T) {
	server := CreateMetricsServer(19091)
	require.NotNil(t, server)
	assert.Equal(t, ":19091", server.Addr)
}
