// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package client

import (
	"fmt"

	"github.com/mcpconfig/mcp-config/pkg/document"
	"github.com/mcpconfig/mcp-config/pkg/sidecar"
)

const (
	inlineManagedByField  = "_managed_by"
	inlineServerTypeField = "_server_type"
)

// MigrateInlineMetadata moves the bookkeeping fields that older releases
// wrote inside server entries into the sidecar in sidecarDir. It reports
// whether anything was moved; when nothing was, no file is written.
// Callers must hold the document lock.
func MigrateInlineMetadata(docPath, prefix, sidecarDir string) (bool, error) {
	state, _ := document.Probe(docPath)
	if state != document.StateValid {
		return false, nil
	}

	doc := document.Load(docPath, nil)
	meta := sidecar.Load(sidecarDir)

	changed := false
	for _, e := range doc.Entries(prefix) {
		r := e.Result()
		if !r.IsObject() {
			continue
		}
		managedBy := r.Get(inlineManagedByField)
		serverType := r.Get(inlineServerTypeField)
		if !managedBy.Exists() && !serverType.Exists() {
			continue
		}

		rec := meta[e.Name]
		if managedBy.Exists() {
			rec.ManagedBy = managedBy.String()
		}
		if serverType.Exists() {
			rec.ServerType = serverType.String()
		}
		if rec.ServerType == "" {
			rec.ServerType = sidecar.UnknownType
		}
		meta[e.Name] = rec

		for _, field := range []string{inlineManagedByField, inlineServerTypeField} {
			if _, err := doc.DeleteEntryField(prefix, e.Name, field); err != nil {
				return false, fmt.Errorf("failed to strip %s from %q: %w", field, e.Name, err)
			}
		}
		changed = true
	}

	if !changed {
		return false, nil
	}

	if err := sidecar.Save(sidecarDir, meta); err != nil {
		return false, err
	}
	if err := doc.Save(docPath); err != nil {
		return false, err
	}
	return true, nil
}

// inlineRecord returns the ownership fields an older release wrote inside
// entry e, if any.
func inlineRecord(e document.Entry) (sidecar.Record, bool) {
	r := e.Result()
	if !r.IsObject() {
		return sidecar.Record{}, false
	}
	managedBy := r.Get(inlineManagedByField)
	if !managedBy.Exists() {
		return sidecar.Record{}, false
	}
	rec := sidecar.Record{ManagedBy: managedBy.String(), ServerType: r.Get(inlineServerTypeField).String()}
	if rec.ServerType == "" {
		rec.ServerType = sidecar.UnknownType
	}
	return rec, true
}
