// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package app

import (
	"github.com/spf13/cobra"

	"github.com/mcpconfig/mcp-config/cmd/mcp-config/app/ui"
	"github.com/mcpconfig/mcp-config/pkg/client"
)

func newClientsCmd(registry *client.Registry, opts client.Options) *cobra.Command {
	var baseDir string

	cmd := &cobra.Command{
		Use:   "clients",
		Short: "Show supported clients and their configuration files",
		Long:  "Display every supported client, the configuration file mcp-config edits for it and whether that file exists. No file is modified.",
		Args:  usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, _ []string) error {
			if baseDir != "" {
				opts.WorkDir = baseDir
			}
			opts.ReadOnly = true
			return ui.RenderClientStatusTable(cmd.OutOrStdout(), client.GetClientStatus(registry, opts))
		},
	}

	cmd.Flags().StringVar(&baseDir, "base-dir", "",
		"Workspace or project directory for vscode-workspace and claude-code (defaults to the current directory)")
	return cmd
}
