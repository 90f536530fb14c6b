// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package app

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mcpconfig/mcp-config/pkg/client"
	"github.com/mcpconfig/mcp-config/pkg/config"
	"github.com/mcpconfig/mcp-config/pkg/errors"
	"github.com/mcpconfig/mcp-config/pkg/logger"
)

const (
	// FormatJSON is the JSON output format
	FormatJSON = "json"
	// FormatText is the text output format
	FormatText = "text"
	// FormatYAML is the YAML output format
	FormatYAML = "yaml"
)

// targetFlags are the flags that select which client configurations a
// command operates on.
type targetFlags struct {
	client     string
	allClients bool
	baseDir    string
}

func (f *targetFlags) register(cmd *cobra.Command, withAll bool) {
	cmd.Flags().StringVar(&f.client, "client", "",
		"Client to operate on (defaults to the configured default client)")
	cmd.Flags().StringVar(&f.baseDir, "base-dir", "",
		"Workspace or project directory for vscode-workspace and claude-code (defaults to the current directory)")
	if withAll {
		cmd.Flags().BoolVar(&f.allClients, "all-clients", false, "Operate on every available client")
		cmd.MarkFlagsMutuallyExclusive("client", "all-clients")
	}
}

func (f *targetFlags) options(opts client.Options) client.Options {
	if f.baseDir != "" {
		opts.WorkDir = f.baseDir
	}
	return opts
}

// explicit reports whether the user named the client on the command line.
func (f *targetFlags) explicit() bool {
	return f.client != ""
}

// clientName returns the selected client, falling back to the default
// client from the tool settings.
func (f *targetFlags) clientName() (string, error) {
	if f.client != "" {
		return f.client, nil
	}
	cfg, err := config.LoadOrCreateConfig()
	if err != nil {
		return "", errors.NewInternalError("failed to load settings", err)
	}
	return cfg.GetDefaultClient(), nil
}

// handler resolves the single handler selected by the flags.
func (f *targetFlags) handler(registry *client.Registry, opts client.Options) (client.Handler, error) {
	name, err := f.clientName()
	if err != nil {
		return nil, err
	}
	return registry.Get(name, f.options(opts))
}

// handlers resolves every handler selected by the flags. With
// --all-clients, clients that are not available are skipped.
func (f *targetFlags) handlers(registry *client.Registry, opts client.Options) ([]client.Handler, error) {
	if !f.allClients {
		h, err := f.handler(registry, opts)
		if err != nil {
			return nil, err
		}
		return []client.Handler{h}, nil
	}

	var handlers []client.Handler
	for _, name := range registry.Names() {
		h, err := registry.Get(name, f.options(opts))
		if err != nil {
			logger.Debugw("skipping unavailable client", "client", name, "error", err)
			continue
		}
		handlers = append(handlers, h)
	}
	return handlers, nil
}

// parseEnvVars parses KEY=VALUE pairs.
func parseEnvVars(pairs []string) (map[string]string, error) {
	if len(pairs) == 0 {
		return nil, nil
	}
	env := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		if !ok || strings.TrimSpace(key) == "" {
			return nil, errors.NewInvalidArgumentError(
				fmt.Sprintf("invalid environment variable %q, expected KEY=VALUE", pair), nil)
		}
		env[key] = value
	}
	return env, nil
}
