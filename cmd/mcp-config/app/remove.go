// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mcpconfig/mcp-config/cmd/mcp-config/app/ui"
	"github.com/mcpconfig/mcp-config/pkg/client"
	"github.com/mcpconfig/mcp-config/pkg/errors"
	"github.com/mcpconfig/mcp-config/pkg/removal"
)

type removeFlags struct {
	target targetFlags
	force  bool
	dryRun bool
}

func newRemoveCmd(registry *client.Registry, opts client.Options) *cobra.Command {
	var flags removeFlags

	cmd := &cobra.Command{
		Use:   "remove <name|pattern>",
		Short: "Remove managed MCP servers",
		Long: `Remove one managed MCP server, or every managed server matching a wildcard
pattern (*, ? and [...]). Patterns require an explicit --client. Entries not
managed by mcp-config are never removed.

Examples:
  mcp-config remove checker
  mcp-config remove 'test-*' --client vscode-user --dry-run
  mcp-config remove checker --all-clients --force`,
		Args: usageArgs(cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			return removeCmdFunc(cmd, args[0], registry, opts, &flags)
		},
	}

	flags.target.register(cmd, true)
	cmd.Flags().BoolVarP(&flags.force, "force", "f", false, "Remove without asking for confirmation")
	cmd.Flags().BoolVar(&flags.dryRun, "dry-run", false, "Show what would be removed without changing any file")

	return cmd
}

func removeCmdFunc(cmd *cobra.Command, pattern string, registry *client.Registry, opts client.Options, flags *removeFlags) error {
	handlers, err := flags.target.handlers(registry, opts)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	result, err := removal.Remove(handlers, pattern, removal.Options{
		Force:          flags.force,
		DryRun:         flags.dryRun,
		ExplicitClient: flags.target.explicit(),
		Prompter:       ui.NewPrompter(cmd.InOrStdin(), out),
		Out:            out,
	})
	if err != nil {
		return err
	}

	if len(result.Failed) > 0 {
		return errors.NewIOError(fmt.Sprintf("failed to remove %d of %d server(s)", len(result.Failed), result.Total()), nil)
	}
	return nil
}
