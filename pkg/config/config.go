// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

// Package config contains the settings of the mcp-config tool itself.
package config

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/stacklok/toolhive-core/env"
	"gopkg.in/yaml.v3"

	"github.com/mcpconfig/mcp-config/pkg/fileutils"
)

const (
	// DefaultClient is the client used when none is configured.
	DefaultClient = "claude-desktop"

	// DefaultClientEnvVar overrides the stored default client.
	DefaultClientEnvVar = "MCP_CONFIG_DEFAULT_CLIENT"
)

// Config represents the tool settings.
type Config struct {
	DefaultClient string `yaml:"default_client"`
}

// GetDefaultClient returns the configured default client.
func (c *Config) GetDefaultClient() string {
	return c.GetDefaultClientWithEnv(&env.OSReader{})
}

// GetDefaultClientWithEnv returns the default client, preferring the
// MCP_CONFIG_DEFAULT_CLIENT environment variable over the stored value.
func (c *Config) GetDefaultClientWithEnv(envReader env.Reader) string {
	if fromEnv := strings.TrimSpace(envReader.Getenv(DefaultClientEnvVar)); fromEnv != "" {
		return fromEnv
	}
	if c.DefaultClient != "" {
		return c.DefaultClient
	}
	return DefaultClient
}

// defaultPathGenerator generates the default config path using xdg
var defaultPathGenerator = func() (string, error) {
	return xdg.ConfigFile("mcp-config/config.yaml")
}

// getConfigPath is the current path generator, can be replaced in tests
var getConfigPath = defaultPathGenerator

// createNewConfigWithDefaults creates a new config with default values
func createNewConfigWithDefaults() Config {
	return Config{
		DefaultClient: DefaultClient,
	}
}

// saveToPath serializes the config struct and writes it to configPath.
func (c *Config) saveToPath(configPath string) error {
	configBytes, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("error serializing config file: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(configPath), 0o750); err != nil {
		return fmt.Errorf("error creating config directory: %w", err)
	}
	if err := fileutils.AtomicWriteFile(configPath, configBytes, 0o600); err != nil {
		return fmt.Errorf("error writing config file: %w", err)
	}
	return nil
}

// LoadOrCreateConfig fetches the tool settings from the default path.
// If it does not already exist the defaults are returned.
func LoadOrCreateConfig() (*Config, error) {
	return NewLocalStore("").Load(context.Background())
}

// UpdateConfig performs a locked update of the settings at the default path.
func UpdateConfig(updateFn func(*Config)) error {
	return UpdateConfigAtPath("", updateFn)
}

// UpdateConfigAtPath performs a locked update of the settings at configPath.
// If configPath is empty, it uses the default path.
func UpdateConfigAtPath(configPath string, updateFn func(*Config)) error {
	return NewLocalStore(configPath).Update(context.Background(), updateFn)
}
