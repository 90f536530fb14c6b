// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

// Package lockfile serialises read-modify-write cycles on client
// configuration files across concurrent mcp-config invocations.
//
// Locks are advisory: they only coordinate mcp-config processes. A host
// application editing its own settings file at the same time is not
// excluded. Lock files live in a state directory rather than next to the
// configuration file so that project and workspace trees are not polluted.
package lockfile

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	"github.com/gofrs/flock"
)

const (
	// DefaultTimeout is the maximum time to wait for a file lock
	DefaultTimeout = 1 * time.Second

	retryDelay = 100 * time.Millisecond
)

// ErrTimeout is returned when the lock could not be acquired in time.
var ErrTimeout = errors.New("timed out waiting for lock")

// IsTimeout reports whether err is a lock acquisition timeout.
func IsTimeout(err error) bool {
	return errors.Is(err, ErrTimeout)
}

// DefaultDir returns the directory holding lock files.
func DefaultDir() string {
	return filepath.Join(xdg.StateHome, "mcp-config", "locks")
}

// PathFor returns the lock file path guarding target inside lockDir.
// The same target always maps to the same lock file.
func PathFor(lockDir, target string) string {
	abs, err := filepath.Abs(target)
	if err != nil {
		abs = filepath.Clean(target)
	}
	sum := sha256.Sum256([]byte(abs))
	return filepath.Join(lockDir, hex.EncodeToString(sum[:8])+".lock")
}

// WithLock runs fn while holding the lock that guards target. It gives up
// after timeout if another process holds the lock.
func WithLock(ctx context.Context, lockDir, target string, timeout time.Duration, fn func() error) error {
	if lockDir == "" {
		lockDir = DefaultDir()
	}
	if err := os.MkdirAll(lockDir, 0o700); err != nil {
		return fmt.Errorf("failed to create lock directory: %w", err)
	}

	fileLock := flock.New(PathFor(lockDir, target))

	lockCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	locked, err := fileLock.TryLockContext(lockCtx, retryDelay)
	if err != nil && !errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("failed to acquire lock: %w", err)
	}
	if !locked {
		return fmt.Errorf("failed to acquire lock: %w after %v", ErrTimeout, timeout)
	}
	defer func() {
		_ = fileLock.Unlock()
	}()

	return fn()
}
