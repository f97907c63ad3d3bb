// Copyright (c) axtrust authors. All rights reserved.
// Licensed under the MIT License.

// Package browser opens URLs and system settings panes in the user's
// browser or default handler. axtrust uses it to send the user to the
// macOS Accessibility privacy pane when the permission is missing, and
// to open documentation links from the CLI.
//
// Web URLs are opened through github.com/pkg/browser. Settings URLs use
// platform schemes (x-apple.systempreferences on macOS) and are handed
// to the OS opener directly.
package browser
