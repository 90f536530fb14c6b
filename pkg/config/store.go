// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
	"gopkg.in/yaml.v3"

	"github.com/mcpconfig/mcp-config/pkg/logger"
)

// lockTimeout is the maximum time to wait for a file lock
const lockTimeout = 1 * time.Second

// Store defines the interface for configuration storage operations
type Store interface {
	// Load loads the configuration from storage
	Load(ctx context.Context) (*Config, error)
	// Save saves the configuration to storage
	Save(ctx context.Context, config *Config) error
	// Exists checks if configuration exists in storage
	Exists(ctx context.Context) (bool, error)
	// Update performs a locked update operation on the configuration
	Update(ctx context.Context, updateFn func(*Config)) error
}

// LocalStore implements Store using local file system
type LocalStore struct {
	configPath string
}

// NewLocalStore creates a new local file-based configuration store.
// An empty configPath selects the XDG config location.
func NewLocalStore(configPath string) *LocalStore {
	return &LocalStore{
		configPath: configPath,
	}
}

func (s *LocalStore) path() (string, error) {
	if s.configPath != "" {
		return filepath.Clean(s.configPath), nil
	}
	configPath, err := getConfigPath()
	if err != nil {
		return "", fmt.Errorf("unable to fetch config path: %w", err)
	}
	return configPath, nil
}

// Load loads configuration from local file. A missing file yields the
// defaults without creating it.
func (s *LocalStore) Load(_ context.Context) (*Config, error) {
	configPath, err := s.path()
	if err != nil {
		return nil, err
	}

	// #nosec G304: File path is not configurable at this time.
	configFile, err := os.ReadFile(configPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			logger.Debugf("no configuration file at %s, using defaults", configPath)
			config := createNewConfigWithDefaults()
			return &config, nil
		}
		return nil, fmt.Errorf("unable to read config file %s: %w", configPath, err)
	}

	config := createNewConfigWithDefaults()
	if err := yaml.Unmarshal(configFile, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file yaml: %w", err)
	}
	return &config, nil
}

// Save saves configuration to local file
func (s *LocalStore) Save(_ context.Context, config *Config) error {
	configPath, err := s.path()
	if err != nil {
		return err
	}
	return config.saveToPath(configPath)
}

// Exists checks if local config file exists
func (s *LocalStore) Exists(_ context.Context) (bool, error) {
	configPath, err := s.path()
	if err != nil {
		return false, err
	}

	_, err = os.Stat(configPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("failed to stat config file: %w", err)
	}
	return true, nil
}

// Update performs a locked update operation on the configuration
func (s *LocalStore) Update(ctx context.Context, updateFn func(*Config)) error {
	configPath, err := s.path()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(configPath), 0o750); err != nil {
		return fmt.Errorf("error creating config directory: %w", err)
	}

	// Use a separate lock file for cross-platform compatibility
	lockPath := configPath + ".lock"
	fileLock := flock.New(lockPath)
	lockCtx, cancel := context.WithTimeout(ctx, lockTimeout)
	defer cancel()

	// Try and acquire a file lock.
	locked, err := fileLock.TryLockContext(lockCtx, 100*time.Millisecond)
	if err != nil {
		return fmt.Errorf("failed to acquire lock: %w", err)
	}
	if !locked {
		return fmt.Errorf("failed to acquire lock: timeout after %v", lockTimeout)
	}
	defer func() {
		_ = fileLock.Unlock()
	}()

	// Load the config after acquiring the lock to avoid race conditions
	config, err := s.Load(ctx)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	updateFn(config)

	if err := s.Save(ctx, config); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}
	return nil
}
