// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

// Package sidecar manages the metadata file that records which server
// entries of a client config mcp-config owns. Host formats whose schema
// must not carry foreign keys keep ownership here instead of inline.
package sidecar

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/mcpconfig/mcp-config/pkg/fileutils"
	"github.com/mcpconfig/mcp-config/pkg/logger"
)

const (
	// FileName is the sidecar file name, co-located with the client config.
	FileName = ".mcp-config-metadata.json"

	// ManagedMarker is the ownership marker recorded for managed entries.
	ManagedMarker = "mcp-config-managed"

	// UnknownType is reported for entries without a declared server type.
	UnknownType = "unknown"
)

// Record is the ownership metadata kept for one server entry.
type Record struct {
	ManagedBy  string `json:"_managed_by"`
	ServerType string `json:"_server_type"`
}

// Managed reports whether the record carries the mcp-config marker.
func (r Record) Managed() bool {
	return r.ManagedBy == ManagedMarker
}

// Metadata maps server names to their records.
type Metadata map[string]Record

// IsManaged reports whether name is recorded as managed.
func (m Metadata) IsManaged(name string) bool {
	r, ok := m[name]
	return ok && r.Managed()
}

// Names returns the recorded server names in sorted order.
func (m Metadata) Names() []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Path returns the sidecar path for a config directory.
func Path(dir string) string {
	return filepath.Join(dir, FileName)
}

// Load reads the sidecar in dir. A missing, unreadable or corrupt sidecar
// yields empty metadata.
func Load(dir string) Metadata {
	path := Path(dir)

	// #nosec G304 -- path is derived from a client config directory
	content, err := os.ReadFile(path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			logger.Warnw("failed to read metadata file", "path", path, "error", err)
		}
		return Metadata{}
	}

	var m Metadata
	if err := json.Unmarshal(content, &m); err != nil {
		logger.Warnw("metadata file is not valid JSON, ignoring it", "path", path, "error", err)
		return Metadata{}
	}
	if m == nil {
		m = Metadata{}
	}
	return m
}

// Save atomically writes the sidecar in dir.
func Save(dir string, m Metadata) error {
	if m == nil {
		m = Metadata{}
	}
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal metadata: %w", err)
	}
	data = append(data, '\n')

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create metadata directory: %w", err)
	}

	path := Path(dir)
	if err := fileutils.AtomicWriteFile(path, data, 0o600); err != nil {
		logger.Warnw("failed to write metadata file", "path", path, "error", err)
		return fmt.Errorf("failed to write metadata file: %w", err)
	}
	return nil
}
