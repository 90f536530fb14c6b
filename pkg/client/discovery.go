// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package client

import (
	"os"
)

// MCPClientStatus represents the status of a supported MCP client
type MCPClientStatus struct {
	// ClientType is the type of MCP client
	ClientType MCPClient `json:"client_type" yaml:"client_type"`

	// Description is the human readable client name
	Description string `json:"description" yaml:"description"`

	// ConfigPath is the configuration file the handler edits
	ConfigPath string `json:"config_path,omitempty" yaml:"config_path,omitempty"`

	// ConfigExists indicates whether the configuration file exists
	ConfigExists bool `json:"config_exists" yaml:"config_exists"`

	// Available indicates whether a handler could be built for the client
	Available bool `json:"available" yaml:"available"`

	// Error explains why the client is not available
	Error string `json:"error,omitempty" yaml:"error,omitempty"`
}

// GetClientStatus returns the status of every client in the registry.
func GetClientStatus(registry *Registry, opts Options) []MCPClientStatus {
	var statuses []MCPClientStatus
	for _, clientType := range registry.Clients() {
		status := MCPClientStatus{
			ClientType:  clientType,
			Description: Description(clientType),
		}

		h, err := registry.Get(string(clientType), opts)
		if err != nil {
			status.Error = err.Error()
			statuses = append(statuses, status)
			continue
		}

		status.Available = true
		status.ConfigPath = h.ConfigPath()
		if _, err := os.Stat(status.ConfigPath); err == nil {
			status.ConfigExists = true
		}
		statuses = append(statuses, status)
	}
	return statuses
}
