// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

// Package app provides the entry point for the mcp-config command-line application.
package app

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mcpconfig/mcp-config/pkg/client"
	"github.com/mcpconfig/mcp-config/pkg/errors"
	"github.com/mcpconfig/mcp-config/pkg/logger"
)

// envPrefix is the prefix of environment variables bound through viper.
const envPrefix = "MCP_CONFIG"

// NewRootCmd creates a new root command for the mcp-config CLI. Handlers
// are resolved through registry; opts carries the host environment and
// is overridden per command by --base-dir.
func NewRootCmd(registry *client.Registry, opts client.Options) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:               "mcp-config",
		DisableAutoGenTag: true,
		SilenceUsage:      true,
		Short:             "mcp-config manages MCP server entries in AI client configuration files",
		Long: `mcp-config adds, lists, validates and removes MCP (Model Context Protocol) server
entries in the configuration files of desktop assistants, editors and IDEs.

Entries created by mcp-config are tracked as managed. Entries written by hand or
by other tools are never modified or removed.`,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			// Re-initialize so that --debug takes effect.
			logger.Initialize()
		},
		Run: func(cmd *cobra.Command, _ []string) {
			// If no subcommand is provided, print help
			if err := cmd.Help(); err != nil {
				logger.Errorf("Error displaying help: %v", err)
			}
		},
	}

	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug mode")
	if err := viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug")); err != nil {
		logger.Errorf("Error binding debug flag: %v", err)
	}
	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return errors.NewInvalidArgumentError(err.Error(), nil)
	})
	viper.SetEnvPrefix(envPrefix)
	viper.AutomaticEnv()

	rootCmd.AddCommand(newSetupCmd(registry, opts))
	rootCmd.AddCommand(newRemoveCmd(registry, opts))
	rootCmd.AddCommand(newListCmd(registry, opts))
	rootCmd.AddCommand(newValidateCmd(registry, opts))
	rootCmd.AddCommand(newClientsCmd(registry, opts))
	rootCmd.AddCommand(newConfigCmd(registry))
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

// usageArgs wraps a positional argument check so that a wrong argument
// count exits as an invalid argument.
func usageArgs(check cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := check(cmd, args); err != nil {
			return errors.NewInvalidArgumentError(err.Error(), nil)
		}
		return nil
	}
}

// Exit codes returned by the CLI.
const (
	exitError           = 1
	exitInvalidArgument = 2
	exitNotFound        = 3
	exitNotManaged      = 4
)

// ExitCode maps an error returned by a command to a process exit code.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.IsInvalidArgument(err):
		return exitInvalidArgument
	case errors.IsNotFound(err):
		return exitNotFound
	case errors.IsNotManaged(err):
		return exitNotManaged
	default:
		return exitError
	}
}
