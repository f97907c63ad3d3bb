// Copyright (c) axtrust authors. All rights reserved.
// Licensed under the MIT License.

package security

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

var (
	// ErrInvalidPath indicates a path contains invalid characters or patterns.
	ErrInvalidPath = errors.New("invalid path")
	// ErrPathTraversal indicates a path traversal attack attempt.
	ErrPathTraversal = errors.New("path traversal detected")
	// ErrInvalidBundleID indicates a malformed bundle identifier.
	ErrInvalidBundleID = errors.New("invalid bundle identifier")

	// bundleIDPattern validates reverse-DNS bundle identifiers: dot-separated
	// alphanumeric segments, hyphens allowed inside segments.
	bundleIDPattern = regexp.MustCompile(`^[a-zA-Z0-9]([a-zA-Z0-9-]*[a-zA-Z0-9])?(\.[a-zA-Z0-9]([a-zA-Z0-9-]*[a-zA-Z0-9])?)+$`)
)

// maxBundleIDLength bounds identifiers before they reach the foreign
// string constructor.
const maxBundleIDLength = 255

// ValidatePath checks if a path is safe to use.
// It prevents path traversal attacks and symbolic link escapes.
func ValidatePath(path string) error {
	if path == "" {
		return fmt.Errorf("%w: empty path", ErrInvalidPath)
	}

	// Check for path traversal attempts before resolving
	if strings.Contains(path, "..") {
		return fmt.Errorf("%w: path contains parent directory reference", ErrPathTraversal)
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("%w: cannot resolve path: %w", ErrInvalidPath, err)
	}

	cleanPath := filepath.Clean(absPath)
	if strings.Contains(cleanPath, "..") {
		return fmt.Errorf("%w: cleaned path contains parent directory reference", ErrPathTraversal)
	}

	// Resolve symbolic links to detect link-based escapes
	resolvedPath, err := filepath.EvalSymlinks(cleanPath)
	if err != nil {
		// A path that does not exist yet is fine; we validate structure only
		if !os.IsNotExist(err) {
			return fmt.Errorf("%w: cannot resolve symbolic links: %w", ErrInvalidPath, err)
		}
		resolvedPath = cleanPath
	}

	if strings.Contains(resolvedPath, "..") {
		return fmt.Errorf("%w: resolved path contains parent directory reference", ErrPathTraversal)
	}

	return nil
}

// ValidateBundleID validates that a bundle identifier is well-formed
// before it is handed to the foreign application registry. Identifiers
// must be reverse-DNS style with at least two dot-separated segments,
// e.g. "com.apple.Safari".
func ValidateBundleID(id string) error {
	if id == "" {
		return fmt.Errorf("%w: bundle identifier cannot be empty", ErrInvalidBundleID)
	}
	if len(id) > maxBundleIDLength {
		return fmt.Errorf("%w: exceeds maximum length of %d characters", ErrInvalidBundleID, maxBundleIDLength)
	}
	if !bundleIDPattern.MatchString(id) {
		return fmt.Errorf("%w: must be dot-separated alphanumeric segments, got %q", ErrInvalidBundleID, id)
	}
	return nil
}
