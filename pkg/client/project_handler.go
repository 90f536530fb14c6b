// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package client

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/mcpconfig/mcp-config/pkg/document"
	"github.com/mcpconfig/mcp-config/pkg/errors"
	"github.com/mcpconfig/mcp-config/pkg/lockfile"
	"github.com/mcpconfig/mcp-config/pkg/logger"
	"github.com/mcpconfig/mcp-config/pkg/sidecar"
)

// stdioType is the transport type written into project-scoped entries.
const stdioType = "stdio"

// knownServerTypes are recognised in a command or its arguments when a
// project-scoped entry carries no recorded type.
var knownServerTypes = []string{
	"mcp-code-checker",
	"mcp-server-filesystem",
}

// projectHandler edits a project-level .mcp.json. The file belongs to the
// project, so every entry in it is treated as managed and no sidecar is used.
type projectHandler struct {
	cfg     mcpClientConfig
	path    string
	lockDir string
	now     func() time.Time
}

// NewClaudeCodeHandler returns the handler for the .mcp.json in baseDir.
// An empty baseDir selects the working directory from opts.
func NewClaudeCodeHandler(baseDir string, opts Options) (Handler, error) {
	cfg, err := lookupClientConfig(ClaudeCode)
	if err != nil {
		return nil, errors.NewInternalError(err.Error(), err)
	}
	if baseDir != "" {
		opts.WorkDir = baseDir
	}
	opts, err = opts.withDefaults()
	if err != nil {
		return nil, errors.NewHostEnvironmentError(err.Error(), err)
	}
	return &projectHandler{
		cfg:     cfg,
		path:    configFilePath(cfg, opts),
		lockDir: opts.LockDir,
		now:     opts.Now,
	}, nil
}

func (h *projectHandler) ClientType() MCPClient {
	return h.cfg.ClientType
}

func (h *projectHandler) ConfigPath() string {
	return h.path
}

func (h *projectHandler) load() *document.Document {
	return document.Load(h.path, skeleton(h.cfg.MCPServersPathPrefix))
}

func (h *projectHandler) withLock(fn func() error) error {
	err := lockfile.WithLock(context.Background(), h.lockDir, h.path, lockfile.DefaultTimeout, fn)
	if lockfile.IsTimeout(err) {
		return errors.NewIOError(fmt.Sprintf("failed to acquire lock for %s", h.path), err)
	}
	return err
}

func (h *projectHandler) SetupServer(name string, cfg ServerConfig) error {
	if err := validateServerArgs(name, cfg); err != nil {
		return err
	}

	return h.withLock(func() error {
		doc := h.load()
		h.backupBestEffort()

		if err := doc.SetEntry(h.cfg.MCPServersPathPrefix, name, HostEntry(h.cfg.ClientType, cfg)); err != nil {
			return errors.NewIOError(fmt.Sprintf("failed to update %s", h.path), err)
		}
		if err := doc.Save(h.path); err != nil {
			return errors.NewIOError(fmt.Sprintf("failed to save %s", h.path), err)
		}
		logger.Debugw("server configured", "client", h.cfg.ClientType, "server", name, "path", h.path)
		return nil
	})
}

func (h *projectHandler) RemoveServer(name string, opts ...RemoveOption) error {
	o := applyRemoveOptions(opts)

	return h.withLock(func() error {
		doc := h.load()
		if _, exists := doc.Entry(h.cfg.MCPServersPathPrefix, name); !exists {
			return errors.NewNotFoundError(fmt.Sprintf("server %q not found in %s", name, h.path), nil)
		}

		if !o.skipBackup {
			h.backupBestEffort()
		}

		if _, err := doc.DeleteEntry(h.cfg.MCPServersPathPrefix, name); err != nil {
			return errors.NewIOError(fmt.Sprintf("failed to update %s", h.path), err)
		}
		if err := doc.Save(h.path); err != nil {
			return errors.NewIOError(fmt.Sprintf("failed to save %s", h.path), err)
		}
		logger.Debugw("server removed", "client", h.cfg.ClientType, "server", name, "path", h.path)
		return nil
	})
}

func (h *projectHandler) ListAllServers() ([]ServerInfo, error) {
	doc := h.load()
	entries := doc.Entries(h.cfg.MCPServersPathPrefix)
	servers := make([]ServerInfo, 0, len(entries))
	for _, e := range entries {
		info := serverInfoFromEntry(h.cfg.ClientType, e)
		info.Managed = true
		info.Type = inferServerType(info.Command, info.Args)
		servers = append(servers, info)
	}
	return servers, nil
}

func (h *projectHandler) ListManagedServers() ([]ServerInfo, error) {
	return h.ListAllServers()
}

func (h *projectHandler) ValidateConfig() *ValidationResult {
	result := &ValidationResult{}

	state, err := document.Probe(h.path)
	switch state {
	case document.StateMissing:
		result.warnf("configuration file does not exist: %s", h.path)
		return result
	case document.StateCorrupt:
		result.errorf("invalid configuration file %s: %v", h.path, err)
		return result
	case document.StateValid:
	}

	doc := h.load()
	validateEntries(doc, h.cfg.MCPServersPathPrefix, result)

	for _, e := range doc.Entries(h.cfg.MCPServersPathPrefix) {
		r := e.Result()
		if !r.IsObject() || !r.Get("command").Exists() {
			continue
		}
		switch t := r.Get("type"); {
		case !t.Exists():
			result.warnf("server %q: missing type, %q is assumed", e.Name, stdioType)
		case t.String() != stdioType:
			result.errorf("server %q: type must be %q for a command server, got %q", e.Name, stdioType, t.String())
		}
	}
	return result
}

func (h *projectHandler) BackupConfig() (string, error) {
	path, err := document.Backup(h.path, h.cfg.BackupPrefix, h.now())
	if err != nil {
		return "", errors.NewIOError(fmt.Sprintf("failed to back up %s", h.path), err)
	}
	return path, nil
}

func (h *projectHandler) backupBestEffort() {
	if path, err := h.BackupConfig(); err != nil {
		logger.Warnw("failed to back up config file", "path", h.path, "error", err)
	} else if path != h.path {
		logger.Debugw("config file backed up", "backup", path)
	}
}

// inferServerType recognises well-known servers from the command base
// name or any argument; underscores and dashes are treated alike.
func inferServerType(command string, args []string) string {
	candidates := append([]string{filepath.Base(command)}, args...)
	for _, known := range knownServerTypes {
		for _, c := range candidates {
			normalized := strings.ReplaceAll(strings.ToLower(c), "_", "-")
			if strings.Contains(normalized, known) {
				return known
			}
		}
	}
	return sidecar.UnknownType
}
