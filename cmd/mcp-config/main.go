// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

// Package main is the entry point for the mcp-config CLI.
package main

import (
	"os"

	"github.com/mcpconfig/mcp-config/cmd/mcp-config/app"
	"github.com/mcpconfig/mcp-config/pkg/client"
	"github.com/mcpconfig/mcp-config/pkg/logger"
)

func main() {
	// Initialize the logger
	logger.Initialize()

	if err := app.NewRootCmd(client.NewRegistry(), client.Options{}).Execute(); err != nil {
		os.Exit(app.ExitCode(err))
	}
}
