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
)

func newConfigCmd(registry *client.Registry) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage mcp-config settings",
		Long:  "The config command provides subcommands to manage the settings of mcp-config itself.",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "get-default-client",
		Short: "Print the client used when --client is not given",
		Args:  usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.LoadOrCreateConfig()
			if err != nil {
				return errors.NewInternalError("failed to load settings", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), cfg.GetDefaultClient())
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "set-default-client <client>",
		Short: "Set the client used when --client is not given",
		Long: fmt.Sprintf("Set the client used when --client is not given.\n\nValid clients: %s",
			strings.Join(registry.Names(), ", ")),
		Args: usageArgs(cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]
			if !registry.Has(name) {
				return errors.NewInvalidArgumentError(fmt.Sprintf("unknown client %q, supported clients: %s",
					name, strings.Join(registry.Names(), ", ")), nil)
			}
			if err := config.UpdateConfig(func(c *config.Config) {
				c.DefaultClient = name
			}); err != nil {
				return errors.NewIOError("failed to update settings", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Default client set to %s\n", name)
			return nil
		},
	})

	return cmd
}
