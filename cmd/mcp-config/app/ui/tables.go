// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

// Package ui renders tables and prompts for the mcp-config CLI.
package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/mcpconfig/mcp-config/pkg/client"
)

func newTable(out io.Writer, headers []string) *tablewriter.Table {
	table := tablewriter.NewWriter(out)
	table.Options(
		tablewriter.WithHeader(headers),
		tablewriter.WithRendition(
			tw.Rendition{
				Borders: tw.Border{
					Left:   tw.State(1),
					Top:    tw.State(1),
					Right:  tw.State(1),
					Bottom: tw.State(1),
				},
			},
		),
		tablewriter.WithAlignment(tw.MakeAlign(len(headers), tw.AlignLeft)),
	)
	return table
}

// RenderServersTable renders the server list table.
func RenderServersTable(out io.Writer, servers []client.ServerInfo) error {
	table := newTable(out, []string{"Client", "Name", "Managed", "Type", "Command"})

	for _, s := range servers {
		managed := "No"
		if s.Managed {
			managed = "Yes"
		}
		command := strings.TrimSpace(strings.Join(append([]string{s.Command}, s.Args...), " "))
		if err := table.Append([]string{string(s.Client), s.Name, managed, s.Type, command}); err != nil {
			return fmt.Errorf("failed to append row: %w", err)
		}
	}

	if err := table.Render(); err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}
	return nil
}

// RenderClientStatusTable renders the client status table.
func RenderClientStatusTable(out io.Writer, statuses []client.MCPClientStatus) error {
	if len(statuses) == 0 {
		fmt.Fprintln(out, "No supported clients found.")
		return nil
	}

	table := newTable(out, []string{"Client", "Description", "Config Path", "Exists"})

	for _, status := range statuses {
		path := status.ConfigPath
		if !status.Available {
			path = status.Error
		}
		exists := "No"
		if status.ConfigExists {
			exists = "Yes"
		}
		if err := table.Append([]string{
			string(status.ClientType),
			status.Description,
			path,
			exists,
		}); err != nil {
			return fmt.Errorf("failed to append row: %w", err)
		}
	}

	if err := table.Render(); err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}
	return nil
}
