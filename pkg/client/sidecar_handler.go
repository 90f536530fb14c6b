// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package client

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/mcpconfig/mcp-config/pkg/document"
	"github.com/mcpconfig/mcp-config/pkg/errors"
	"github.com/mcpconfig/mcp-config/pkg/lockfile"
	"github.com/mcpconfig/mcp-config/pkg/logger"
	"github.com/mcpconfig/mcp-config/pkg/sidecar"
)

// sidecarHandler edits clients whose documents must stay free of foreign
// keys. Ownership of entries is recorded in a metadata file stored next
// to the document.
type sidecarHandler struct {
	cfg     mcpClientConfig
	path    string
	lockDir string
	now     func() time.Time
}

// NewClaudeDesktopHandler returns the handler for Claude Desktop.
func NewClaudeDesktopHandler(opts Options) (Handler, error) {
	return newSidecarHandler(ClaudeDesktop, opts)
}

// NewVSCodeHandler returns the handler for VS Code. When workspace is true
// the handler edits <workdir>/.vscode/mcp.json, otherwise the user
// profile configuration.
func NewVSCodeHandler(workspace bool, opts Options) (Handler, error) {
	if workspace {
		return newSidecarHandler(VSCodeWorkspace, opts)
	}
	return newSidecarHandler(VSCodeUser, opts)
}

// NewIntelliJHandler returns the handler for GitHub Copilot in IntelliJ.
// It fails when the Copilot plugin directory does not exist.
func NewIntelliJHandler(opts Options) (Handler, error) {
	return newSidecarHandler(IntelliJ, opts)
}

func newSidecarHandler(clientType MCPClient, opts Options) (*sidecarHandler, error) {
	cfg, err := lookupClientConfig(clientType)
	if err != nil {
		return nil, errors.NewInternalError(err.Error(), err)
	}
	opts, err = opts.withDefaults()
	if err != nil {
		return nil, errors.NewHostEnvironmentError(err.Error(), err)
	}
	if err := checkInstalled(cfg, opts); err != nil {
		return nil, err
	}

	h := &sidecarHandler{
		cfg:     cfg,
		path:    configFilePath(cfg, opts),
		lockDir: opts.LockDir,
		now:     opts.Now,
	}

	if opts.ReadOnly {
		return h, nil
	}
	err = h.withLock(func() error {
		migrated, err := MigrateInlineMetadata(h.path, cfg.MCPServersPathPrefix, h.dir())
		if migrated {
			logger.Infow("moved inline metadata to sidecar", "client", clientType, "path", h.path)
		}
		return err
	})
	if err != nil {
		logger.Warnw("failed to migrate inline metadata", "client", clientType, "path", h.path, "error", err)
	}
	return h, nil
}

// checkInstalled verifies the install marker directory of cfg, if any.
func checkInstalled(cfg mcpClientConfig, opts Options) error {
	if len(cfg.InstallMarker) == 0 {
		return nil
	}
	dir := buildConfigDirectoryPath(cfg.InstallMarker, cfg.PlatformPrefix, opts.GOOS, []string{opts.HomeDir})
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return errors.NewHostEnvironmentError(
			fmt.Sprintf("%s does not appear to be installed: %s not found", cfg.Description, dir), err)
	}
	return nil
}

func (h *sidecarHandler) ClientType() MCPClient {
	return h.cfg.ClientType
}

func (h *sidecarHandler) ConfigPath() string {
	return h.path
}

func (h *sidecarHandler) dir() string {
	return filepath.Dir(h.path)
}

func (h *sidecarHandler) load() *document.Document {
	return document.Load(h.path, skeleton(h.cfg.MCPServersPathPrefix))
}

func (h *sidecarHandler) withLock(fn func() error) error {
	err := lockfile.WithLock(context.Background(), h.lockDir, h.path, lockfile.DefaultTimeout, fn)
	if lockfile.IsTimeout(err) {
		return errors.NewIOError(fmt.Sprintf("failed to acquire lock for %s", h.path), err)
	}
	return err
}

// SetupServer records the entry in the sidecar and then writes it to the
// document. An existing entry is replaced only when mcp-config owns it.
// A record without an entry is ignored by every reader, so a failed
// document write never leaves an entry that mcp-config cannot manage.
func (h *sidecarHandler) SetupServer(name string, cfg ServerConfig) error {
	if err := validateServerArgs(name, cfg); err != nil {
		return err
	}

	return h.withLock(func() error {
		doc := h.load()
		meta := sidecar.Load(h.dir())

		if e, exists := doc.Entry(h.cfg.MCPServersPathPrefix, name); exists && !isManaged(meta, e) {
			return errors.NewNotManagedError(
				fmt.Sprintf("server %q exists in %s but is not managed by mcp-config", name, h.path), nil)
		}

		h.backupBestEffort()

		if err := doc.SetEntry(h.cfg.MCPServersPathPrefix, name, cfg.hostEntry()); err != nil {
			return errors.NewIOError(fmt.Sprintf("failed to update %s", h.path), err)
		}

		previous, hadRecord := meta[name]
		meta[name] = cfg.record()
		if err := sidecar.Save(h.dir(), meta); err != nil {
			return errors.NewIOError("failed to save metadata", err)
		}

		if err := doc.Save(h.path); err != nil {
			if hadRecord {
				meta[name] = previous
			} else {
				delete(meta, name)
			}
			if rerr := sidecar.Save(h.dir(), meta); rerr != nil {
				logger.Warnw("failed to restore metadata", "path", sidecar.Path(h.dir()), "error", rerr)
			}
			return errors.NewIOError(fmt.Sprintf("failed to save %s", h.path), err)
		}

		logger.Debugw("server configured", "client", h.cfg.ClientType, "server", name, "path", h.path)
		return nil
	})
}

// RemoveServer deletes a managed entry and its sidecar record.
func (h *sidecarHandler) RemoveServer(name string, opts ...RemoveOption) error {
	o := applyRemoveOptions(opts)

	return h.withLock(func() error {
		doc := h.load()
		meta := sidecar.Load(h.dir())

		e, exists := doc.Entry(h.cfg.MCPServersPathPrefix, name)
		if !exists {
			return errors.NewNotFoundError(fmt.Sprintf("server %q not found in %s", name, h.path), nil)
		}
		if !isManaged(meta, e) {
			return errors.NewNotManagedError(
				fmt.Sprintf("server %q is not managed by mcp-config; refusing to remove it", name), nil)
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

		delete(meta, name)
		if err := sidecar.Save(h.dir(), meta); err != nil {
			return errors.NewIOError("failed to save metadata", err)
		}

		logger.Debugw("server removed", "client", h.cfg.ClientType, "server", name, "path", h.path)
		return nil
	})
}

// ListAllServers joins the document entries with the sidecar records.
// Records without a matching entry are ignored. An entry without a record
// that still carries inline metadata from an older release is reported
// from that metadata.
func (h *sidecarHandler) ListAllServers() ([]ServerInfo, error) {
	doc := h.load()
	meta := sidecar.Load(h.dir())

	entries := doc.Entries(h.cfg.MCPServersPathPrefix)
	servers := make([]ServerInfo, 0, len(entries))
	for _, e := range entries {
		info := serverInfoFromEntry(h.cfg.ClientType, e)
		if rec, ok := recordFor(meta, e); ok && rec.Managed() {
			info.Managed = true
			if rec.ServerType != "" {
				info.Type = rec.ServerType
			}
		}
		servers = append(servers, info)
	}
	return servers, nil
}

func (h *sidecarHandler) ListManagedServers() ([]ServerInfo, error) {
	all, err := h.ListAllServers()
	if err != nil {
		return nil, err
	}
	return managedOnly(all), nil
}

func (h *sidecarHandler) ValidateConfig() *ValidationResult {
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

	meta := sidecar.Load(h.dir())
	for _, name := range meta.Names() {
		entry, exists := doc.Entry(h.cfg.MCPServersPathPrefix, name)
		if !exists {
			result.warnf("metadata for %q has no matching server entry", name)
			continue
		}
		if !meta.IsManaged(name) {
			continue
		}
		command := entry.Result().Get("command").String()
		if filepath.IsAbs(command) {
			if _, err := os.Stat(command); err != nil {
				result.warnf("server %q: command %s does not exist", name, command)
			}
		}
	}
	return result
}

func (h *sidecarHandler) BackupConfig() (string, error) {
	path, err := document.Backup(h.path, h.cfg.BackupPrefix, h.now())
	if err != nil {
		return "", errors.NewIOError(fmt.Sprintf("failed to back up %s", h.path), err)
	}
	return path, nil
}

func (h *sidecarHandler) backupBestEffort() {
	if path, err := h.BackupConfig(); err != nil {
		logger.Warnw("failed to back up config file", "path", h.path, "error", err)
	} else if path != h.path {
		logger.Debugw("config file backed up", "backup", path)
	}
}

// recordFor returns the sidecar record of e, falling back to metadata an
// older release wrote inside the entry.
func recordFor(meta sidecar.Metadata, e document.Entry) (sidecar.Record, bool) {
	if rec, ok := meta[e.Name]; ok {
		return rec, true
	}
	return inlineRecord(e)
}

func isManaged(meta sidecar.Metadata, e document.Entry) bool {
	rec, ok := recordFor(meta, e)
	return ok && rec.Managed()
}

func managedOnly(servers []ServerInfo) []ServerInfo {
	managed := make([]ServerInfo, 0, len(servers))
	for _, s := range servers {
		if s.Managed {
			managed = append(managed, s)
		}
	}
	return managed
}
