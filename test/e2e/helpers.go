// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

// Package e2e provides end-to-end testing utilities for mcp-config.
package e2e

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"time"

	. "github.com/onsi/ginkgo/v2" //nolint:staticcheck // Standard practice for Ginkgo
	. "github.com/onsi/gomega"    //nolint:staticcheck // Standard practice for Gomega
)

// TestConfig holds configuration for e2e tests
type TestConfig struct {
	Binary      string
	TestTimeout time.Duration
}

// NewTestConfig creates a new test configuration with defaults
func NewTestConfig() *TestConfig {
	// Look for the binary in PATH or use a configurable path
	binary := os.Getenv("MCP_CONFIG_BINARY")
	if binary == "" {
		binary = "mcp-config"
	}

	return &TestConfig{
		Binary:      binary,
		TestTimeout: 30 * time.Second,
	}
}

// Command represents an mcp-config CLI command execution
type Command struct {
	config *TestConfig
	args   []string
	env    []string
	dir    string
	stdin  string
}

// NewCommand creates a new mcp-config command
func NewCommand(config *TestConfig, args ...string) *Command {
	return &Command{
		config: config,
		args:   args,
		env:    os.Environ(),
	}
}

// WithEnv adds environment variables to the command
func (c *Command) WithEnv(env ...string) *Command {
	c.env = append(c.env, env...)
	return c
}

// WithDir sets the working directory for the command
func (c *Command) WithDir(dir string) *Command {
	c.dir = dir
	return c
}

// WithStdin sets the stdin input for the command
func (c *Command) WithStdin(stdin string) *Command {
	c.stdin = stdin
	return c
}

// Run executes the command and returns stdout, stderr, and error
func (c *Command) Run() (string, string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), c.config.TestTimeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, c.config.Binary, c.args...) //nolint:gosec // Intentional for e2e testing
	cmd.Env = c.env
	if c.dir != "" {
		cmd.Dir = c.dir
	}
	if c.stdin != "" {
		cmd.Stdin = strings.NewReader(c.stdin)
	}

	var stdout, stderr strings.Builder
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()

	return stdout.String(), stderr.String(), err
}

// ExpectSuccess runs the command and expects it to succeed
func (c *Command) ExpectSuccess() (string, string) {
	stdout, stderr, err := c.Run()
	if err != nil {
		GinkgoWriter.Printf("Command failed: %s %v\nError: %v\nStdout: %s\nStderr: %s\n",
			c.config.Binary, c.args, err, stdout, stderr)
	}
	ExpectWithOffset(1, err).ToNot(HaveOccurred(),
		fmt.Sprintf("Command failed: %v\nStdout: %s\nStderr: %s", err, stdout, stderr))
	return stdout, stderr
}

// ExpectFailure runs the command and expects it to fail
func (c *Command) ExpectFailure() (string, string, error) {
	stdout, stderr, err := c.Run()
	ExpectWithOffset(1, err).To(HaveOccurred(),
		fmt.Sprintf("Command should have failed but succeeded\nStdout: %s\nStderr: %s", stdout, stderr))
	return stdout, stderr, err
}

// ExitCode returns the process exit code carried by err, or -1.
func ExitCode(err error) int {
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode()
	}
	return -1
}

// CheckBinaryAvailable checks if the mcp-config binary is available
func CheckBinaryAvailable(config *TestConfig) error {
	stdout, stderr, err := NewCommand(config, "--help").Run()
	if err != nil {
		return fmt.Errorf(
			"mcp-config binary not available at %s: %w\nstdout: %s\nstderr: %s\n",
			config.Binary,
			err,
			stdout,
			stderr,
		)
	}
	return nil
}

// IsolatedEnv returns environment assignments that point every
// per-user location of mcp-config at temporary directories.
func IsolatedEnv(home, configHome, stateHome string) []string {
	return []string{
		"HOME=" + home,
		"XDG_CONFIG_HOME=" + configHome,
		"XDG_STATE_HOME=" + stateHome,
		"MCP_CONFIG_DEFAULT_CLIENT=",
	}
}
