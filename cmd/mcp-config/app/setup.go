// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package app

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mcpconfig/mcp-config/pkg/client"
	"github.com/mcpconfig/mcp-config/pkg/errors"
	"github.com/mcpconfig/mcp-config/pkg/sidecar"
)

type setupFlags struct {
	target  targetFlags
	command string
	args    []string
	env     []string
	dryRun  bool
}

func newSetupCmd(registry *client.Registry, opts client.Options) *cobra.Command {
	var flags setupFlags

	cmd := &cobra.Command{
		Use:   "setup <server-type> <name> [-- extra-args...]",
		Short: "Add or update a managed MCP server",
		Long: `Add an MCP server entry to a client configuration, or update one that
mcp-config already manages. A backup of the configuration file is taken first.

Arguments after "--" are appended to the server arguments.

Examples:
  mcp-config setup mcp-code-checker checker --command python --arg -m --arg mcp_code_checker
  mcp-config setup filesystem fs --client claude-code --command npx -- -y @modelcontextprotocol/server-filesystem .`,
		Args: usageArgs(cobra.MinimumNArgs(2)),
		RunE: func(cmd *cobra.Command, args []string) error {
			return setupCmdFunc(cmd, args, registry, opts, &flags)
		},
	}

	flags.target.register(cmd, false)
	cmd.Flags().StringVar(&flags.command, "command", "", "Executable that starts the server (required)")
	cmd.Flags().StringArrayVar(&flags.args, "arg", nil, "Argument passed to the command (repeatable)")
	cmd.Flags().StringArrayVarP(&flags.env, "env", "e", nil, "Environment variable KEY=VALUE (repeatable)")
	cmd.Flags().BoolVar(&flags.dryRun, "dry-run", false, "Show the entry that would be written without changing any file")

	return cmd
}

func setupCmdFunc(cmd *cobra.Command, args []string, registry *client.Registry, opts client.Options, flags *setupFlags) error {
	serverType, name := args[0], args[1]
	if flags.command == "" {
		return errors.NewInvalidArgumentError("--command is required", nil)
	}

	extra := args[2:]
	if len(extra) > 0 && cmd.ArgsLenAtDash() != 2 {
		return errors.NewInvalidArgumentError(
			fmt.Sprintf("unexpected arguments %v; pass server arguments with --arg or after --", extra), nil)
	}

	env, err := parseEnvVars(flags.env)
	if err != nil {
		return err
	}

	serverArgs := append(append([]string{}, flags.args...), extra...)
	cfg := client.ServerConfig{
		Command:    flags.command,
		Args:       serverArgs,
		Env:        env,
		ManagedBy:  sidecar.ManagedMarker,
		ServerType: serverType,
	}

	opts.ReadOnly = flags.dryRun
	h, err := flags.target.handler(registry, opts)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if flags.dryRun {
		entry, err := json.MarshalIndent(map[string]any{name: client.HostEntry(h.ClientType(), cfg)}, "", "  ")
		if err != nil {
			return errors.NewInternalError("failed to render entry", err)
		}
		fmt.Fprintf(out, "Would configure server %q (%s) in %s:\n%s\n", name, serverType, h.ConfigPath(), entry)
		return nil
	}

	if err := h.SetupServer(name, cfg); err != nil {
		return err
	}
	fmt.Fprintf(out, "Server %q configured for %s in %s\n", name, h.ClientType(), h.ConfigPath())
	return nil
}
