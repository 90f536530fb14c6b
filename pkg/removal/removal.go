// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

// Package removal implements name and pattern based removal of managed
// servers across one or more client configurations.
package removal

import (
	"fmt"
	"io"

	"github.com/mcpconfig/mcp-config/pkg/client"
	"github.com/mcpconfig/mcp-config/pkg/errors"
	"github.com/mcpconfig/mcp-config/pkg/logger"
	"github.com/mcpconfig/mcp-config/pkg/wildcard"
)

// Prompter asks the user a yes/no question.
type Prompter interface {
	Confirm(question string) (bool, error)
}

// Options configures a removal run.
type Options struct {
	// Force skips the confirmation prompt.
	Force bool
	// DryRun prints the plan without removing anything.
	DryRun bool
	// ExplicitClient must be set when the pattern contains wildcards.
	ExplicitClient bool
	// Prompter is asked once before anything is removed.
	Prompter Prompter
	// Out receives the removal plan and summary.
	Out io.Writer
}

// Match groups the servers matched in one client configuration.
type Match struct {
	Handler client.Handler
	Servers []client.ServerInfo
}

// Failure records a server that could not be removed.
type Failure struct {
	Client client.MCPClient
	Server string
	Err    error
}

// Result describes the outcome of Remove.
type Result struct {
	Matches   []Match
	Removed   []client.ServerInfo
	Failed    []Failure
	Backups   []string
	Cancelled bool
	DryRun    bool
}

// Total returns the number of matched servers.
func (r *Result) Total() int {
	n := 0
	for _, m := range r.Matches {
		n += len(m.Servers)
	}
	return n
}

// FindMatchingServers returns the managed servers whose names match
// pattern, in their original order.
func FindMatchingServers(servers []client.ServerInfo, pattern string) []client.ServerInfo {
	managed := make([]client.ServerInfo, 0, len(servers))
	for _, s := range servers {
		if s.Managed {
			managed = append(managed, s)
		}
	}
	return wildcard.Filter(managed, pattern, func(s client.ServerInfo) string { return s.Name })
}

// Remove deletes every managed server matching pattern from the given
// handlers. Each configuration file is backed up at most once, and a
// failure on one server does not stop the others.
func Remove(handlers []client.Handler, pattern string, opts Options) (*Result, error) {
	if pattern == "" {
		return nil, errors.NewInvalidArgumentError("server name must not be empty", nil)
	}
	p := wildcard.Compile(pattern)
	if p.IsWildcard() && !opts.ExplicitClient {
		return nil, errors.NewInvalidArgumentError(
			fmt.Sprintf("pattern %q contains wildcards; an explicit --client is required", pattern), nil)
	}

	out := opts.Out
	if out == nil {
		out = io.Discard
	}

	result := &Result{}
	for _, h := range handlers {
		managed, err := h.ListManagedServers()
		if err != nil {
			return nil, err
		}
		if matched := FindMatchingServers(managed, pattern); len(matched) > 0 {
			result.Matches = append(result.Matches, Match{Handler: h, Servers: matched})
		}
	}

	if len(result.Matches) == 0 {
		return result, noMatchError(handlers, p)
	}

	printPlan(out, result)

	if opts.DryRun {
		result.DryRun = true
		fmt.Fprintln(out, "Dry run: no changes made.")
		return result, nil
	}

	if !opts.Force {
		if opts.Prompter == nil {
			return result, errors.NewInvalidArgumentError("confirmation required; use --force to skip it", nil)
		}
		confirmed, err := opts.Prompter.Confirm(fmt.Sprintf("Remove %d server(s)?", result.Total()))
		if err != nil {
			return result, errors.NewInternalError("failed to read confirmation", err)
		}
		if !confirmed {
			result.Cancelled = true
			fmt.Fprintln(out, "Removal cancelled.")
			return result, nil
		}
	}

	for _, m := range result.Matches {
		backup, err := m.Handler.BackupConfig()
		if err != nil {
			logger.Warnw("failed to back up config file", "path", m.Handler.ConfigPath(), "error", err)
		} else if backup != m.Handler.ConfigPath() {
			result.Backups = append(result.Backups, backup)
		}

		for _, s := range m.Servers {
			if err := m.Handler.RemoveServer(s.Name, client.SkipBackup()); err != nil {
				result.Failed = append(result.Failed, Failure{Client: m.Handler.ClientType(), Server: s.Name, Err: err})
				continue
			}
			result.Removed = append(result.Removed, s)
		}
	}

	printSummary(out, result)
	return result, nil
}

// noMatchError distinguishes a name that does not exist from one that
// exists but is not managed.
func noMatchError(handlers []client.Handler, p *wildcard.Pattern) error {
	if p.IsWildcard() {
		return errors.NewNotFoundError(fmt.Sprintf("no managed servers match %q", p.String()), nil)
	}
	for _, h := range handlers {
		all, err := h.ListAllServers()
		if err != nil {
			continue
		}
		for _, s := range all {
			if s.Name == p.String() {
				return errors.NewNotManagedError(fmt.Sprintf(
					"server %q in %s is not managed by mcp-config; refusing to remove it", s.Name, h.ConfigPath()), nil)
			}
		}
	}
	return errors.NewNotFoundError(fmt.Sprintf("server %q not found", p.String()), nil)
}

func printPlan(out io.Writer, result *Result) {
	fmt.Fprintln(out, "The following servers will be removed:")
	for _, m := range result.Matches {
		fmt.Fprintf(out, "  %s (%s)\n", m.Handler.ClientType(), m.Handler.ConfigPath())
		for _, s := range m.Servers {
			fmt.Fprintf(out, "    - %s\n", s.Name)
		}
	}
}

func printSummary(out io.Writer, result *Result) {
	for _, b := range result.Backups {
		fmt.Fprintf(out, "Backup created: %s\n", b)
	}
	fmt.Fprintf(out, "Removed %d of %d server(s).\n", len(result.Removed), result.Total())
	for _, f := range result.Failed {
		fmt.Fprintf(out, "  failed to remove %s from %s: %v\n", f.Server, f.Client, f.Err)
	}
}
