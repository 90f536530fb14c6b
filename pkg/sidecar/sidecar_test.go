// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package sidecar

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content *string
		want    Metadata
	}{
		{
			name: "missing file",
			want: Metadata{},
		},
		{
			name:    "corrupt file",
			content: strPtr(`{"checker": `),
			want:    Metadata{},
		},
		{
			name:    "null document",
			content: strPtr(`null`),
			want:    Metadata{},
		},
		{
			name:    "valid file",
			content: strPtr(`{"checker": {"_managed_by": "mcp-config-managed", "_server_type": "mcp-code-checker"}}`),
			want: Metadata{
				"checker": {ManagedBy: ManagedMarker, ServerType: "mcp-code-checker"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			dir := t.TempDir()
			if tt.content != nil {
				require.NoError(t, os.WriteFile(Path(dir), []byte(*tt.content), 0o600))
			}
			assert.Equal(t, tt.want, Load(dir))
		})
	}
}

func TestSaveAndLoad(t *testing.T) {
	t.Parallel()

	dir := filepath.Join(t.TempDir(), "nested")
	m := Metadata{
		"checker": {ManagedBy: ManagedMarker, ServerType: "mcp-code-checker"},
		"fs":      {ManagedBy: ManagedMarker, ServerType: "mcp-server-filesystem"},
	}
	require.NoError(t, Save(dir, m))

	content, err := os.ReadFile(Path(dir))
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"checker": {"_managed_by": "mcp-config-managed", "_server_type": "mcp-code-checker"},
		"fs": {"_managed_by": "mcp-config-managed", "_server_type": "mcp-server-filesystem"}
	}`, string(content))

	assert.Equal(t, m, Load(dir))

	require.NoError(t, Save(dir, nil))
	assert.Equal(t, Metadata{}, Load(dir))
}

func TestIsManaged(t *testing.T) {
	t.Parallel()

	m := Metadata{
		"mine":    {ManagedBy: ManagedMarker, ServerType: "x"},
		"foreign": {ManagedBy: "someone-else", ServerType: "x"},
	}
	assert.True(t, m.IsManaged("mine"))
	assert.False(t, m.IsManaged("foreign"))
	assert.False(t, m.IsManaged("missing"))
}

func strPtr(s string) *string { return &s }

func TestNames(t *testing.T) {
	t.Parallel()

	m := Metadata{
		"zeta":  {ManagedBy: ManagedMarker},
		"alpha": {ManagedBy: ManagedMarker},
		"mid":   {ManagedBy: "someone-else"},
	}
	assert.Equal(t, []string{"alpha", "mid", "zeta"}, m.Names())
	assert.Empty(t, Metadata{}.Names())
}
