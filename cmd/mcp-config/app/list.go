// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package app

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/mcpconfig/mcp-config/cmd/mcp-config/app/ui"
	"github.com/mcpconfig/mcp-config/pkg/client"
	"github.com/mcpconfig/mcp-config/pkg/errors"
)

type listFlags struct {
	target      targetFlags
	managedOnly bool
	format      string
}

func newListCmd(registry *client.Registry, opts client.Options) *cobra.Command {
	var flags listFlags

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List MCP servers configured for a client",
		Long: `List the MCP server entries of a client configuration in file order,
showing whether each one is managed by mcp-config. No file is modified.`,
		Args: usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, _ []string) error {
			return listCmdFunc(cmd, registry, opts, &flags)
		},
	}

	flags.target.register(cmd, true)
	cmd.Flags().BoolVar(&flags.managedOnly, "managed-only", false, "Only show servers managed by mcp-config")
	cmd.Flags().StringVar(&flags.format, "format", FormatText, "Output format (text, json or yaml)")

	return cmd
}

func listCmdFunc(cmd *cobra.Command, registry *client.Registry, opts client.Options, flags *listFlags) error {
	switch flags.format {
	case FormatText, FormatJSON, FormatYAML:
	default:
		return errors.NewInvalidArgumentError(fmt.Sprintf("invalid format %q (valid formats: text, json, yaml)", flags.format), nil)
	}

	opts.ReadOnly = true
	handlers, err := flags.target.handlers(registry, opts)
	if err != nil {
		return err
	}

	servers := []client.ServerInfo{}
	for _, h := range handlers {
		var found []client.ServerInfo
		if flags.managedOnly {
			found, err = h.ListManagedServers()
		} else {
			found, err = h.ListAllServers()
		}
		if err != nil {
			return err
		}
		servers = append(servers, found...)
	}

	out := cmd.OutOrStdout()
	switch flags.format {
	case FormatJSON:
		return printJSONOutput(out, servers)
	case FormatYAML:
		return printYAMLOutput(out, servers)
	default:
		if len(servers) == 0 {
			fmt.Fprintln(out, "No MCP servers found")
			return nil
		}
		return ui.RenderServersTable(out, servers)
	}
}

// printJSONOutput prints server information in JSON format
func printJSONOutput(out io.Writer, servers []client.ServerInfo) error {
	jsonData, err := json.MarshalIndent(servers, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	fmt.Fprintln(out, string(jsonData))
	return nil
}

// printYAMLOutput prints server information in YAML format
func printYAMLOutput(out io.Writer, servers []client.ServerInfo) error {
	yamlData, err := yaml.Marshal(servers)
	if err != nil {
		return fmt.Errorf("failed to marshal YAML: %w", err)
	}
	fmt.Fprint(out, string(yamlData))
	return nil
}
