// Copyright (c) axtrust authors. All rights reserved.
// Licensed under the MIT License.

package main

import (
	"context"
	"errors"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/axtrust/axtrust/apps"
	"github.com/axtrust/axtrust/ax"
	"github.com/axtrust/axtrust/cliout"
	"github.com/axtrust/axtrust/logutil"
	"github.com/axtrust/axtrust/monitor"
)

func newWatchCommand(opts *rootOptions) *cobra.Command {
	var (
		interval    time.Duration
		metrics     bool
		metricsPort int
	)

	cmd := &cobra.Command{
		Use:   "watch [bundle-id...]",
		Short: "Continuously monitor the permission and running applications",
		Long: `Periodically check the accessibility permission and count running
applications per bundle identifier. With --metrics, results are exposed
as Prometheus metrics. Stop with Ctrl+C.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ids := args
			if len(ids) == 0 {
				ids = opts.cfg.BundleIDs
			}
			if !cmd.Flags().Changed("interval") && opts.cfg.Watch.Interval > 0 {
				interval = opts.cfg.Watch.Interval
			}
			if !cmd.Flags().Changed("metrics-port") && opts.cfg.Watch.MetricsPort > 0 {
				metricsPort = opts.cfg.Watch.MetricsPort
			}

			br, err := newBridge()
			if err != nil {
				return err
			}

			cfg := monitor.Config{
				BundleIDs:            ids,
				Interval:             interval,
				EnableCircuitBreaker: true,
				BreakerFailures:      opts.cfg.Watch.BreakerFailures,
				RateLimit:            opts.cfg.Watch.RateLimit,
				EnableMetrics:        metrics,
				MetricsPort:          metricsPort,
			}
			return runWatch(cmd.Context(), cfg, br)
		},
	}

	cmd.Flags().DurationVar(&interval, "interval", 15*time.Second, "Time between checks")
	cmd.Flags().BoolVar(&metrics, "metrics", false, "Expose Prometheus metrics")
	cmd.Flags().IntVar(&metricsPort, "metrics-port", 9832, "Metrics server port")

	return cmd
}

func runWatch(parent context.Context, cfg monitor.Config, br bridge) error {
	log := logutil.NewLogger("watch")

	ctx, stop := signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	trustFn := func() (bool, error) {
		// Never prompt from the monitor loop.
		return ax.Check(br, false)
	}
	countFn := func(bundleID string) (int, error) {
		handles, err := apps.FindByBundleID(br, bundleID)
		if err != nil {
			return 0, err
		}
		defer apps.ReleaseAll(handles)
		return len(handles), nil
	}

	m := monitor.New(cfg, trustFn, countFn)

	if cfg.EnableMetrics {
		go func() {
			if err := monitor.ServeMetrics(cfg.MetricsPort); err != nil {
				log.Error("metrics server stopped", "error", err)
			}
		}()
		cliout.Info("Metrics at http://localhost:%d/metrics", cfg.MetricsPort)
	}

	cliout.Hint("Press Ctrl+C to stop")

	err := m.Run(ctx, printReport)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// printReport renders one monitoring pass.
func printReport(report monitor.Report) {
	_ = cliout.Print(report, func() {
		trust := report.Trust
		switch {
		case trust.Status == monitor.StatusOK && trust.Trusted:
			cliout.Success("permission %s", cliout.Status("trusted"))
		case trust.Status == monitor.StatusOK:
			cliout.Error("permission %s", cliout.Status("denied"))
		default:
			cliout.Warning("permission check %s: %s", cliout.Status(string(trust.Status)), trust.Error)
		}
		for _, app := range report.Apps {
			if app.Status == monitor.StatusOK {
				cliout.Item("%s: %d running", app.Target, app.Count)
			} else {
				cliout.Item("%s: %s (%s)", app.Target, cliout.Status(string(app.Status)), app.Error)
			}
		}
	})
}
