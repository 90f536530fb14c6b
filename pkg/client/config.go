// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

// Package client provides the handlers that edit MCP server entries in the
// configuration files of supported host applications.
package client

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/mcpconfig/mcp-config/pkg/document"
	"github.com/mcpconfig/mcp-config/pkg/lockfile"
)

// MCPClient is an enum of supported MCP clients.
type MCPClient string

const (
	// ClaudeDesktop represents the Claude Desktop application.
	ClaudeDesktop MCPClient = "claude-desktop"
	// VSCodeWorkspace represents the workspace-level VS Code MCP configuration.
	VSCodeWorkspace MCPClient = "vscode-workspace"
	// VSCodeUser represents the user-profile VS Code MCP configuration.
	VSCodeUser MCPClient = "vscode-user"
	// IntelliJ represents the GitHub Copilot plugin for IntelliJ IDEs.
	IntelliJ MCPClient = "intellij"
	// ClaudeCode represents the project-scoped Claude Code configuration.
	ClaudeCode MCPClient = "claude-code"
)

// scope selects the directory a client's configuration path is resolved against.
type scope int

const (
	// scopeHome resolves against the user's home directory plus a per-OS prefix.
	scopeHome scope = iota
	// scopeWorkDir resolves against the workspace or project directory.
	scopeWorkDir
)

// mcpClientConfig describes where a supported client keeps its configuration
// and how its server entries are laid out.
type mcpClientConfig struct {
	ClientType     MCPClient
	Description    string
	Scope          scope
	RelPath        []string
	SettingsFile   string
	PlatformPrefix map[string][]string
	// MCPServersPathPrefix is the JSON pointer of the servers object.
	MCPServersPathPrefix string
	BackupPrefix         string
	// InstallMarker is a directory, relative to the platform prefix, that
	// must exist for the client to be considered installed.
	InstallMarker []string
	// ProjectScoped clients embed the transport type in each entry and
	// treat every entry as owned.
	ProjectScoped bool
}

var supportedClientIntegrations = []mcpClientConfig{
	{
		ClientType:   ClaudeDesktop,
		Description:  "Claude Desktop",
		Scope:        scopeHome,
		SettingsFile: "claude_desktop_config.json",
		RelPath:      []string{"Claude"},
		PlatformPrefix: map[string][]string{
			"linux":   {".config"},
			"darwin":  {"Library", "Application Support"},
			"windows": {"AppData", "Roaming"},
		},
		MCPServersPathPrefix: "/mcpServers",
		BackupPrefix:         "claude_desktop_config_backup",
	},
	{
		ClientType:           VSCodeWorkspace,
		Description:          "Visual Studio Code (workspace)",
		Scope:                scopeWorkDir,
		SettingsFile:         "mcp.json",
		RelPath:              []string{".vscode"},
		MCPServersPathPrefix: "/servers",
		BackupPrefix:         "mcp_backup",
	},
	{
		ClientType:   VSCodeUser,
		Description:  "Visual Studio Code (user profile)",
		Scope:        scopeHome,
		SettingsFile: "mcp.json",
		RelPath:      []string{"Code", "User"},
		PlatformPrefix: map[string][]string{
			"linux":   {".config"},
			"darwin":  {"Library", "Application Support"},
			"windows": {"AppData", "Roaming"},
		},
		MCPServersPathPrefix: "/servers",
		BackupPrefix:         "mcp_backup",
	},
	{
		ClientType:   IntelliJ,
		Description:  "GitHub Copilot for IntelliJ",
		Scope:        scopeHome,
		SettingsFile: "mcp.json",
		RelPath:      []string{"github-copilot", "intellij"},
		PlatformPrefix: map[string][]string{
			"linux":   {".local", "share"},
			"darwin":  {"Library", "Application Support"},
			"windows": {"AppData", "Local"},
		},
		MCPServersPathPrefix: "/servers",
		BackupPrefix:         "mcp_backup",
		InstallMarker:        []string{"github-copilot"},
	},
	{
		ClientType:           ClaudeCode,
		Description:          "Claude Code (project .mcp.json)",
		Scope:                scopeWorkDir,
		SettingsFile:         ".mcp.json",
		RelPath:              []string{},
		MCPServersPathPrefix: "/mcpServers",
		BackupPrefix:         ".mcp_backup",
		ProjectScoped:        true,
	},
}

// lookupClientConfig returns the definition of a supported client.
func lookupClientConfig(clientType MCPClient) (mcpClientConfig, error) {
	for _, cfg := range supportedClientIntegrations {
		if cfg.ClientType == clientType {
			return cfg, nil
		}
	}
	return mcpClientConfig{}, fmt.Errorf("client configuration for %s not found", clientType)
}

// Options carries the environment a handler is bound to. Zero values are
// replaced by the real environment.
type Options struct {
	// HomeDir is the user's home directory.
	HomeDir string
	// WorkDir is the workspace or project directory for workspace-scoped clients.
	WorkDir string
	// GOOS selects the per-platform path rules.
	GOOS string
	// LockDir holds the advisory lock files.
	LockDir string
	// Now is the clock used for backup timestamps.
	Now func() time.Time
	// ReadOnly builds handlers that write nothing while being constructed.
	// Inline metadata left by older releases is then read in place instead
	// of being moved to the sidecar.
	ReadOnly bool
}

func (o Options) withDefaults() (Options, error) {
	if o.HomeDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return o, fmt.Errorf("failed to get home directory: %w", err)
		}
		o.HomeDir = home
	}
	if o.WorkDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return o, fmt.Errorf("failed to get working directory: %w", err)
		}
		o.WorkDir = wd
	}
	if o.GOOS == "" {
		o.GOOS = runtime.GOOS
	}
	if o.LockDir == "" {
		o.LockDir = lockfile.DefaultDir()
	}
	if o.Now == nil {
		o.Now = time.Now
	}
	return o, nil
}

// configFilePath resolves the configuration file of cfg for the given options.
func configFilePath(cfg mcpClientConfig, opts Options) string {
	if cfg.Scope == scopeWorkDir {
		return buildConfigFilePath(cfg.SettingsFile, cfg.RelPath, nil, opts.GOOS, []string{opts.WorkDir})
	}
	return buildConfigFilePath(cfg.SettingsFile, cfg.RelPath, cfg.PlatformPrefix, opts.GOOS, []string{opts.HomeDir})
}

func buildConfigFilePath(
	settingsFile string, relPath []string, platformPrefix map[string][]string, goos string, path []string,
) string {
	if prefix, ok := platformPrefix[goos]; ok {
		path = append(path, prefix...)
	}
	path = append(path, relPath...)
	path = append(path, settingsFile)
	return filepath.Clean(filepath.Join(path...))
}

func buildConfigDirectoryPath(relPath []string, platformPrefix map[string][]string, goos string, path []string) string {
	if prefix, ok := platformPrefix[goos]; ok {
		path = append(path, prefix...)
	}
	path = append(path, relPath...)
	return filepath.Clean(filepath.Join(path...))
}

// skeleton returns the minimal document holding an empty servers object
// at the JSON pointer prefix, e.g. {"mcpServers": {}}.
func skeleton(prefix string) []byte {
	d := document.Empty()
	if err := d.EnsureSection(prefix); err != nil {
		return []byte("{}")
	}
	return d.Bytes()
}
