// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mcpconfig/mcp-config/pkg/client"
	"github.com/mcpconfig/mcp-config/pkg/errors"
)

func newValidateCmd(registry *client.Registry, opts client.Options) *cobra.Command {
	var flags targetFlags

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check a client configuration for problems",
		Long: `Check the structure of a client configuration file and report errors and
warnings. No file is modified. The command exits with a non-zero status when
errors are found.`,
		Args: usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, _ []string) error {
			return validateCmdFunc(cmd, registry, opts, &flags)
		},
	}

	flags.register(cmd, true)
	return cmd
}

func validateCmdFunc(cmd *cobra.Command, registry *client.Registry, opts client.Options, flags *targetFlags) error {
	opts.ReadOnly = true
	handlers, err := flags.handlers(registry, opts)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	failed := 0
	for _, h := range handlers {
		result := h.ValidateConfig()

		fmt.Fprintf(out, "%s (%s)\n", h.ClientType(), h.ConfigPath())
		for _, e := range result.Errors {
			fmt.Fprintf(out, "  error: %s\n", e)
		}
		for _, w := range result.Warnings {
			fmt.Fprintf(out, "  warning: %s\n", w)
		}
		if result.Valid() {
			fmt.Fprintln(out, "  configuration is valid")
		} else {
			failed++
		}
	}

	if failed > 0 {
		return errors.NewInvalidArgumentError(fmt.Sprintf("%d configuration(s) have errors", failed), nil)
	}
	return nil
}
