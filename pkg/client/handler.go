// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package client

import (
	"fmt"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/mcpconfig/mcp-config/pkg/document"
	"github.com/mcpconfig/mcp-config/pkg/errors"
	"github.com/mcpconfig/mcp-config/pkg/sidecar"
	"github.com/mcpconfig/mcp-config/pkg/wildcard"
)

//go:generate mockgen -destination=mocks/mock_handler.go -package=mocks -source=handler.go Handler

// Handler edits the MCP server entries of one client's configuration file.
type Handler interface {
	// ClientType returns the client this handler is bound to.
	ClientType() MCPClient
	// ConfigPath returns the absolute path of the configuration file.
	ConfigPath() string
	// SetupServer adds or updates a managed server entry.
	SetupServer(name string, cfg ServerConfig) error
	// RemoveServer removes a managed server entry.
	RemoveServer(name string, opts ...RemoveOption) error
	// ListManagedServers returns the entries owned by mcp-config, in document order.
	ListManagedServers() ([]ServerInfo, error)
	// ListAllServers returns every entry in the document, in document order.
	ListAllServers() ([]ServerInfo, error)
	// ValidateConfig reports structural problems in the configuration file.
	ValidateConfig() *ValidationResult
	// BackupConfig copies the configuration file next to itself.
	BackupConfig() (string, error)
}

// ServerConfig describes a server to be written to a client configuration.
// ManagedBy and ServerType are bookkeeping fields; they are never written
// into the host document.
type ServerConfig struct {
	Command    string            `json:"command" yaml:"command"`
	Args       []string          `json:"args" yaml:"args"`
	Env        map[string]string `json:"env,omitempty" yaml:"env,omitempty"`
	Type       string            `json:"type,omitempty" yaml:"type,omitempty"`
	ManagedBy  string            `json:"_managed_by,omitempty" yaml:"_managed_by,omitempty"`
	ServerType string            `json:"_server_type,omitempty" yaml:"_server_type,omitempty"`
}

// ServerInfo is a server entry as read back from a client configuration.
type ServerInfo struct {
	Name    string            `json:"name" yaml:"name"`
	Command string            `json:"command" yaml:"command"`
	Args    []string          `json:"args" yaml:"args"`
	Env     map[string]string `json:"env,omitempty" yaml:"env,omitempty"`
	Managed bool              `json:"managed" yaml:"managed"`
	Type    string            `json:"type" yaml:"type"`
	Client  MCPClient         `json:"client" yaml:"client"`
}

// ValidationResult collects the problems found by ValidateConfig.
type ValidationResult struct {
	Errors   []string `json:"errors" yaml:"errors"`
	Warnings []string `json:"warnings" yaml:"warnings"`
}

// Valid reports whether no errors were found.
func (r *ValidationResult) Valid() bool {
	return len(r.Errors) == 0
}

func (r *ValidationResult) errorf(format string, args ...any) {
	r.Errors = append(r.Errors, fmt.Sprintf(format, args...))
}

func (r *ValidationResult) warnf(format string, args ...any) {
	r.Warnings = append(r.Warnings, fmt.Sprintf(format, args...))
}

// RemoveOption configures a RemoveServer call.
type RemoveOption func(*removeOptions)

type removeOptions struct {
	skipBackup bool
}

// SkipBackup disables the backup normally taken before removal. Bulk
// removal takes one backup per file up front and passes this option.
func SkipBackup() RemoveOption {
	return func(o *removeOptions) {
		o.skipBackup = true
	}
}

func applyRemoveOptions(opts []RemoveOption) removeOptions {
	var o removeOptions
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// hostEntry is the shape of a server entry in the host document.
type hostEntry struct {
	Type    string            `json:"type,omitempty"`
	Command string            `json:"command"`
	Args    []string          `json:"args"`
	Env     map[string]string `json:"env,omitempty"`
}

// hostEntry strips the bookkeeping fields from cfg.
func (cfg ServerConfig) hostEntry() hostEntry {
	args := cfg.Args
	if args == nil {
		args = []string{}
	}
	return hostEntry{Type: cfg.Type, Command: cfg.Command, Args: args, Env: cfg.Env}
}

// HostEntry returns the entry the handler for clientType writes for cfg.
// Project-scoped entries always carry the stdio transport type.
func HostEntry(clientType MCPClient, cfg ServerConfig) any {
	if clientType == ClaudeCode {
		cfg.Type = stdioType
	}
	return cfg.hostEntry()
}

// record returns the sidecar record for cfg.
func (cfg ServerConfig) record() sidecar.Record {
	serverType := cfg.ServerType
	if serverType == "" {
		serverType = sidecar.UnknownType
	}
	return sidecar.Record{ManagedBy: sidecar.ManagedMarker, ServerType: serverType}
}

func validateServerArgs(name string, cfg ServerConfig) error {
	if strings.TrimSpace(name) == "" {
		return errors.NewInvalidArgumentError("server name must not be empty", nil)
	}
	if wildcard.HasWildcard(name) {
		return errors.NewInvalidArgumentError(
			fmt.Sprintf("server name %q must not contain wildcard characters", name), nil)
	}
	if strings.TrimSpace(cfg.Command) == "" {
		return errors.NewInvalidArgumentError(fmt.Sprintf("server %q: command must not be empty", name), nil)
	}
	return nil
}

// serverInfoFromEntry reads the fields of an entry leniently; malformed
// fields are reported by ValidateConfig, not here.
func serverInfoFromEntry(clientType MCPClient, e document.Entry) ServerInfo {
	r := e.Result()
	info := ServerInfo{
		Name:    e.Name,
		Command: r.Get("command").String(),
		Args:    []string{},
		Type:    sidecar.UnknownType,
		Client:  clientType,
	}
	if args := r.Get("args"); args.IsArray() {
		for _, a := range args.Array() {
			info.Args = append(info.Args, a.String())
		}
	}
	if env := r.Get("env"); env.IsObject() {
		info.Env = map[string]string{}
		env.ForEach(func(k, v gjson.Result) bool {
			info.Env[k.String()] = v.String()
			return true
		})
	}
	return info
}

// validateEntries checks the section at prefix and every entry in it.
func validateEntries(doc *document.Document, prefix string, result *ValidationResult) {
	section := doc.Section(prefix)
	if !section.Exists() {
		result.warnf("no servers configured under %s", prefix)
		return
	}
	if !section.IsObject() {
		result.errorf("%s must be a JSON object", prefix)
		return
	}

	for _, e := range doc.Entries(prefix) {
		r := e.Result()
		if !r.IsObject() {
			result.errorf("server %q: entry must be a JSON object", e.Name)
			continue
		}

		command := r.Get("command")
		url := r.Get("url")
		switch {
		case command.Exists() && command.Type != gjson.String:
			result.errorf("server %q: command must be a string", e.Name)
		case command.Exists() && strings.TrimSpace(command.String()) == "":
			result.errorf("server %q: command must not be empty", e.Name)
		case !command.Exists() && !url.Exists():
			result.errorf("server %q: missing command", e.Name)
		case !command.Exists() && url.Type != gjson.String:
			result.errorf("server %q: url must be a string", e.Name)
		}

		if args := r.Get("args"); args.Exists() {
			if !args.IsArray() {
				result.errorf("server %q: args must be an array", e.Name)
			} else {
				for i, a := range args.Array() {
					if a.Type != gjson.String {
						result.errorf("server %q: args[%d] must be a string", e.Name, i)
					}
				}
			}
		}

		if env := r.Get("env"); env.Exists() && !env.IsObject() {
			result.errorf("server %q: env must be an object", e.Name)
		}
	}
}
