// Copyright (c) axtrust authors. All rights reserved.
// Licensed under the MIT License.

package main

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"github.com/axtrust/axtrust/ax"
	"github.com/axtrust/axtrust/browser"
	"github.com/axtrust/axtrust/cliout"
	"github.com/axtrust/axtrust/logutil"
	"github.com/axtrust/axtrust/notify"
)

// checkReport is the JSON shape of a permission check.
type checkReport struct {
	Trusted   bool      `json:"trusted"`
	Prompted  bool      `json:"prompted"`
	Timestamp time.Time `json:"timestamp"`
}

func newCheckCommand(opts *rootOptions) *cobra.Command {
	var (
		prompt       bool
		openSettings bool
		notifyUser   bool
	)

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Check whether the accessibility permission is granted",
		Long: `Check whether this process is trusted for accessibility access.

Exits 0 when the permission is granted and 1 when it is not. With
--prompt the OS may show its grant dialog on a denied check.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("prompt") {
				prompt = opts.cfg.Prompt
			}
			return runCheck(cmd.Context(), prompt, openSettings, notifyUser)
		},
	}

	cmd.Flags().BoolVar(&prompt, "prompt", true, "Allow the OS grant dialog on a denied check")
	cmd.Flags().BoolVar(&openSettings, "open-settings", false, "Open the accessibility settings pane when denied")
	cmd.Flags().BoolVar(&notifyUser, "notify", false, "Send an OS notification when denied")

	return cmd
}

func runCheck(ctx context.Context, prompt, openSettings, notifyUser bool) error {
	log := logutil.NewLogger("check")

	fw, err := newBridge()
	if err != nil {
		return err
	}

	trusted, err := ax.Check(fw, prompt)
	if err != nil {
		return err
	}

	report := checkReport{Trusted: trusted, Prompted: prompt, Timestamp: time.Now()}
	printErr := cliout.Print(report, func() {
		cliout.CommandHeader("check")
		if trusted {
			cliout.Success("Accessibility permission granted")
		} else {
			cliout.Error("Accessibility permission not granted")
			cliout.Hint("Grant access in System Settings > Privacy & Security > Accessibility")
		}
	})
	if printErr != nil {
		return printErr
	}

	if trusted {
		return nil
	}

	if notifyUser {
		sendDeniedNotification(ctx, log)
	}
	if openSettings {
		if err := browser.OpenAccessibilitySettings(ctx); err != nil {
			log.Warn("could not open settings pane", "error", err)
		}
	}

	return errPermissionDenied
}

func sendDeniedNotification(ctx context.Context, log *logutil.ComponentLogger) {
	notifier, err := notify.New(notify.DefaultConfig())
	if err != nil {
		log.Warn("notifications unavailable", "error", err)
		return
	}
	defer func() { _ = notifier.Close() }()

	err = notifier.Send(ctx, notify.Notification{
		Title:     "Accessibility permission required",
		Message:   "axtrust is not trusted for accessibility access",
		Severity:  "warning",
		Timestamp: time.Now(),
	})
	if err != nil {
		log.Warn("failed to send notification", "error", err)
	}
}
