// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package client

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/mcpconfig/mcp-config/pkg/errors"
)

// Factory builds a handler for one client.
type Factory func(opts Options) (Handler, error)

// Registry maps client identifiers to handler factories.
type Registry struct {
	mu        sync.RWMutex
	factories map[MCPClient]Factory
}

// NewRegistry returns a registry holding every supported client.
func NewRegistry() *Registry {
	r := &Registry{factories: map[MCPClient]Factory{}}
	r.Register(ClaudeDesktop, NewClaudeDesktopHandler)
	r.Register(VSCodeWorkspace, func(opts Options) (Handler, error) {
		return NewVSCodeHandler(true, opts)
	})
	r.Register(VSCodeUser, func(opts Options) (Handler, error) {
		return NewVSCodeHandler(false, opts)
	})
	r.Register(IntelliJ, NewIntelliJHandler)
	r.Register(ClaudeCode, func(opts Options) (Handler, error) {
		return NewClaudeCodeHandler("", opts)
	})
	return r
}

// Register adds or replaces the factory for a client.
func (r *Registry) Register(clientType MCPClient, factory Factory) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.factories[clientType] = factory
}

// Get builds the handler for the named client.
func (r *Registry) Get(name string, opts Options) (Handler, error) {
	r.mu.RLock()
	factory, ok := r.factories[MCPClient(name)]
	r.mu.RUnlock()
	if !ok {
		return nil, errors.NewInvalidArgumentError(
			fmt.Sprintf("unknown client %q, supported clients: %s", name, strings.Join(r.Names(), ", ")), nil)
	}
	return factory(opts)
}

// Has reports whether the named client is registered.
func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.factories[MCPClient(name)]
	return ok
}

// Clients returns the registered clients in sorted order.
func (r *Registry) Clients() []MCPClient {
	r.mu.RLock()
	defer r.mu.RUnlock()
	clients := make([]MCPClient, 0, len(r.factories))
	for c := range r.factories {
		clients = append(clients, c)
	}
	sort.Slice(clients, func(i, j int) bool { return clients[i] < clients[j] })
	return clients
}

// Names returns the registered client identifiers in sorted order.
func (r *Registry) Names() []string {
	clients := r.Clients()
	names := make([]string, len(clients))
	for i, c := range clients {
		names[i] = string(c)
	}
	return names
}

// Description returns the human readable name of a supported client.
func Description(clientType MCPClient) string {
	cfg, err := lookupClientConfig(clientType)
	if err != nil {
		return string(clientType)
	}
	return cfg.Description
}
