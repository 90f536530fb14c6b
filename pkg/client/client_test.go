// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package client

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"

	"github.com/mcpconfig/mcp-config/pkg/errors"
	"github.com/mcpconfig/mcp-config/pkg/sidecar"
)

var fixedNow = time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)

func testOptions(t *testing.T) Options {
	t.Helper()
	return Options{
		HomeDir: t.TempDir(),
		WorkDir: t.TempDir(),
		GOOS:    "linux",
		LockDir: t.TempDir(),
		Now:     func() time.Time { return fixedNow },
	}
}

func writeConfig(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func readConfig(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func backups(t *testing.T, dir, prefix string) []string {
	t.Helper()
	matches, err := filepath.Glob(filepath.Join(dir, prefix+"_*.json"))
	require.NoError(t, err)
	return matches
}

func serverNames(servers []ServerInfo) []string {
	names := make([]string, len(servers))
	for i, s := range servers {
		names[i] = s.Name
	}
	return names
}

func TestConfigFilePath(t *testing.T) {
	t.Parallel()

	opts := Options{HomeDir: "/home/user", WorkDir: "/work/project"}
	tests := []struct {
		client   MCPClient
		goos     string
		expected string
	}{
		{ClaudeDesktop, "linux", "/home/user/.config/Claude/claude_desktop_config.json"},
		{ClaudeDesktop, "darwin", "/home/user/Library/Application Support/Claude/claude_desktop_config.json"},
		{ClaudeDesktop, "windows", "/home/user/AppData/Roaming/Claude/claude_desktop_config.json"},
		{VSCodeUser, "linux", "/home/user/.config/Code/User/mcp.json"},
		{VSCodeUser, "darwin", "/home/user/Library/Application Support/Code/User/mcp.json"},
		{VSCodeWorkspace, "linux", "/work/project/.vscode/mcp.json"},
		{VSCodeWorkspace, "windows", "/work/project/.vscode/mcp.json"},
		{IntelliJ, "linux", "/home/user/.local/share/github-copilot/intellij/mcp.json"},
		{IntelliJ, "windows", "/home/user/AppData/Local/github-copilot/intellij/mcp.json"},
		{ClaudeCode, "darwin", "/work/project/.mcp.json"},
	}

	for _, tt := range tests {
		t.Run(string(tt.client)+"/"+tt.goos, func(t *testing.T) {
			t.Parallel()
			cfg, err := lookupClientConfig(tt.client)
			require.NoError(t, err)
			o := opts
			o.GOOS = tt.goos
			assert.Equal(t, filepath.FromSlash(tt.expected), configFilePath(cfg, o))
		})
	}
}

func TestSkeleton(t *testing.T) {
	t.Parallel()

	assert.JSONEq(t, `{"mcpServers": {}}`, string(skeleton("/mcpServers")))
	assert.JSONEq(t, `{"mcp": {"servers": {}}}`, string(skeleton("/mcp/servers")))
}

func TestSidecarHandler_ExampleScenario(t *testing.T) {
	t.Parallel()

	opts := testOptions(t)
	h, err := NewClaudeDesktopHandler(opts)
	require.NoError(t, err)
	path := h.ConfigPath()
	writeConfig(t, path, `{"mcpServers": {"fs": {"command": "node", "args": []}}}`)

	err = h.SetupServer("checker", ServerConfig{
		Command:    "python",
		Args:       []string{"-m", "mcp_code_checker"},
		ManagedBy:  sidecar.ManagedMarker,
		ServerType: "mcp-code-checker",
	})
	require.NoError(t, err)

	content := readConfig(t, path)
	assert.JSONEq(t, `{"mcpServers": {
		"fs": {"command": "node", "args": []},
		"checker": {"command": "python", "args": ["-m", "mcp_code_checker"]}
	}}`, content)
	assert.NotContains(t, content, "_managed_by")
	assert.NotContains(t, content, "_server_type")

	meta := sidecar.Load(filepath.Dir(path))
	assert.Equal(t, sidecar.Metadata{
		"checker": {ManagedBy: sidecar.ManagedMarker, ServerType: "mcp-code-checker"},
	}, meta)

	all, err := h.ListAllServers()
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "fs", all[0].Name)
	assert.False(t, all[0].Managed)
	assert.Equal(t, sidecar.UnknownType, all[0].Type)
	assert.Equal(t, "checker", all[1].Name)
	assert.True(t, all[1].Managed)
	assert.Equal(t, "mcp-code-checker", all[1].Type)
	assert.Equal(t, ClaudeDesktop, all[1].Client)

	managed, err := h.ListManagedServers()
	require.NoError(t, err)
	assert.Equal(t, []string{"checker"}, serverNames(managed))

	assert.Len(t, backups(t, filepath.Dir(path), "claude_desktop_config_backup"), 1)
}

func TestSidecarHandler_SetupCreatesMissingFile(t *testing.T) {
	t.Parallel()

	h, err := NewVSCodeHandler(true, testOptions(t))
	require.NoError(t, err)

	require.NoError(t, h.SetupServer("mine", ServerConfig{Command: "python"}))

	content := readConfig(t, h.ConfigPath())
	assert.JSONEq(t, `{"servers": {"mine": {"command": "python", "args": []}}}`, content)
	assert.Empty(t, backups(t, filepath.Dir(h.ConfigPath()), "mcp_backup"))

	info, err := os.Stat(h.ConfigPath())
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestSidecarHandler_SetupIsIdempotent(t *testing.T) {
	t.Parallel()

	h, err := NewVSCodeHandler(false, testOptions(t))
	require.NoError(t, err)
	writeConfig(t, h.ConfigPath(), `{
  // user comment
  "inputs": [],
  "servers": {"other": {"command": "npx", "args": ["-y", "pkg"]}}
}`)

	cfg := ServerConfig{Command: "python", Args: []string{"-m", "srv"}, Env: map[string]string{"A": "1"}}
	require.NoError(t, h.SetupServer("mine", cfg))
	first := readConfig(t, h.ConfigPath())
	firstMeta := readConfig(t, sidecar.Path(filepath.Dir(h.ConfigPath())))

	require.NoError(t, h.SetupServer("mine", cfg))
	assert.Equal(t, first, readConfig(t, h.ConfigPath()))
	assert.Equal(t, firstMeta, readConfig(t, sidecar.Path(filepath.Dir(h.ConfigPath()))))
	assert.Contains(t, first, "// user comment")
	assert.Equal(t, "1", gjson.Get(first, "servers.mine.env.A").String())
}

func TestSidecarHandler_SetupRefusesExternalEntry(t *testing.T) {
	t.Parallel()

	h, err := NewClaudeDesktopHandler(testOptions(t))
	require.NoError(t, err)
	original := `{"mcpServers": {"fs": {"command": "node", "args": []}}}`
	writeConfig(t, h.ConfigPath(), original)

	err = h.SetupServer("fs", ServerConfig{Command: "python"})
	require.Error(t, err)
	assert.True(t, errors.IsNotManaged(err))

	dir := filepath.Dir(h.ConfigPath())
	assert.Equal(t, original, readConfig(t, h.ConfigPath()))
	assert.NoFileExists(t, sidecar.Path(dir))
	assert.Empty(t, backups(t, dir, "claude_desktop_config_backup"))
}

func TestSidecarHandler_ExternalEntryBytesPreserved(t *testing.T) {
	t.Parallel()

	const external = `{"command":"node","args":["a",  "b"], "n": 1.50}`

	tests := []struct {
		name       string
		newHandler func(Options) (Handler, error)
		content    string
	}{
		{
			name:       "claude desktop",
			newHandler: NewClaudeDesktopHandler,
			content:    "{\n  \"mcpServers\": {\n    \"fs\": " + external + "\n  }\n}\n",
		},
		{
			name: "vscode workspace",
			newHandler: func(o Options) (Handler, error) {
				return NewVSCodeHandler(true, o)
			},
			content: "{\n\t// editor settings\n\t\"servers\": {\"fs\": " + external + "},\n}\n",
		},
		{
			name: "claude code",
			newHandler: func(o Options) (Handler, error) {
				return NewClaudeCodeHandler(o.WorkDir, o)
			},
			content:    `{"mcpServers": {"fs": ` + external + `}}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			h, err := tt.newHandler(testOptions(t))
			require.NoError(t, err)
			writeConfig(t, h.ConfigPath(), tt.content)

			require.NoError(t, h.SetupServer("checker", ServerConfig{Command: "python", Args: []string{"-m", "checker"}}))
			assert.Contains(t, readConfig(t, h.ConfigPath()), external)

			require.NoError(t, h.SetupServer("checker", ServerConfig{Command: "python3"}))
			assert.Contains(t, readConfig(t, h.ConfigPath()), external)

			require.NoError(t, h.RemoveServer("checker"))
			assert.Contains(t, readConfig(t, h.ConfigPath()), external)

			all, err := h.ListAllServers()
			require.NoError(t, err)
			assert.Equal(t, []string{"fs"}, serverNames(all))
		})
	}
}

func TestSidecarHandler_SetupMetadataWriteFailure(t *testing.T) {
	t.Parallel()

	h, err := NewClaudeDesktopHandler(testOptions(t))
	require.NoError(t, err)
	original := `{"mcpServers": {"fs": {"command": "node", "args": []}}}`
	writeConfig(t, h.ConfigPath(), original)

	// A non-empty directory at the sidecar path makes the metadata rename fail.
	blocker := sidecar.Path(filepath.Dir(h.ConfigPath()))
	require.NoError(t, os.MkdirAll(filepath.Join(blocker, "keep"), 0o755))

	err = h.SetupServer("checker", ServerConfig{Command: "python"})
	require.Error(t, err)
	assert.True(t, errors.IsIO(err))
	assert.Equal(t, original, readConfig(t, h.ConfigPath()))

	require.NoError(t, os.RemoveAll(blocker))
	require.NoError(t, h.SetupServer("checker", ServerConfig{Command: "python"}))

	managed, err := h.ListManagedServers()
	require.NoError(t, err)
	assert.Equal(t, []string{"checker"}, serverNames(managed))
}

func TestSidecarHandler_SetupDocumentWriteFailure(t *testing.T) {
	t.Parallel()

	h, err := NewClaudeDesktopHandler(testOptions(t))
	require.NoError(t, err)
	dir := filepath.Dir(h.ConfigPath())

	// A non-empty directory at the config path makes the document rename fail.
	require.NoError(t, os.MkdirAll(filepath.Join(h.ConfigPath(), "keep"), 0o755))

	err = h.SetupServer("checker", ServerConfig{Command: "python"})
	require.Error(t, err)
	assert.True(t, errors.IsIO(err))
	assert.Empty(t, sidecar.Load(dir), "the record is rolled back")

	require.NoError(t, os.RemoveAll(h.ConfigPath()))
	require.NoError(t, h.SetupServer("checker", ServerConfig{Command: "python"}))

	managed, err := h.ListManagedServers()
	require.NoError(t, err)
	assert.Equal(t, []string{"checker"}, serverNames(managed))
}

func TestSidecarHandler_SetupInvalidArguments(t *testing.T) {
	t.Parallel()

	h, err := NewClaudeDesktopHandler(testOptions(t))
	require.NoError(t, err)

	tests := []struct {
		name   string
		server string
		cfg    ServerConfig
	}{
		{"empty name", "", ServerConfig{Command: "python"}},
		{"wildcard name", "srv*", ServerConfig{Command: "python"}},
		{"empty command", "srv", ServerConfig{Command: "  "}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := h.SetupServer(tt.server, tt.cfg)
			require.Error(t, err)
			assert.True(t, errors.IsInvalidArgument(err))
		})
	}
}

func TestSidecarHandler_Remove(t *testing.T) {
	t.Parallel()

	t.Run("removes managed entry and record", func(t *testing.T) {
		t.Parallel()
		h, err := NewClaudeDesktopHandler(testOptions(t))
		require.NoError(t, err)
		writeConfig(t, h.ConfigPath(), `{"mcpServers": {"fs": {"command": "node", "args": []}}}`)
		require.NoError(t, h.SetupServer("checker", ServerConfig{Command: "python"}))
		dir := filepath.Dir(h.ConfigPath())
		for _, b := range backups(t, dir, "claude_desktop_config_backup") {
			require.NoError(t, os.Remove(b))
		}

		require.NoError(t, h.RemoveServer("checker"))

		assert.JSONEq(t, `{"mcpServers": {"fs": {"command": "node", "args": []}}}`, readConfig(t, h.ConfigPath()))
		assert.Empty(t, sidecar.Load(dir))
		assert.Len(t, backups(t, dir, "claude_desktop_config_backup"), 1)
	})

	t.Run("skip backup", func(t *testing.T) {
		t.Parallel()
		h, err := NewClaudeDesktopHandler(testOptions(t))
		require.NoError(t, err)
		require.NoError(t, h.SetupServer("checker", ServerConfig{Command: "python"}))

		require.NoError(t, h.RemoveServer("checker", SkipBackup()))
		assert.Empty(t, backups(t, filepath.Dir(h.ConfigPath()), "claude_desktop_config_backup"))
	})

	t.Run("refusals leave files untouched", func(t *testing.T) {
		t.Parallel()
		h, err := NewClaudeDesktopHandler(testOptions(t))
		require.NoError(t, err)
		original := `{"mcpServers": {"fs": {"command": "node", "args": []}}}`
		writeConfig(t, h.ConfigPath(), original)
		dir := filepath.Dir(h.ConfigPath())

		err = h.RemoveServer("missing")
		require.Error(t, err)
		assert.True(t, errors.IsNotFound(err))

		err = h.RemoveServer("fs")
		require.Error(t, err)
		assert.True(t, errors.IsNotManaged(err))

		assert.Equal(t, original, readConfig(t, h.ConfigPath()))
		assert.NoFileExists(t, sidecar.Path(dir))
		assert.Empty(t, backups(t, dir, "claude_desktop_config_backup"))
	})

	t.Run("foreign marker is not managed", func(t *testing.T) {
		t.Parallel()
		h, err := NewClaudeDesktopHandler(testOptions(t))
		require.NoError(t, err)
		writeConfig(t, h.ConfigPath(), `{"mcpServers": {"fs": {"command": "node", "args": []}}}`)
		dir := filepath.Dir(h.ConfigPath())
		require.NoError(t, sidecar.Save(dir, sidecar.Metadata{"fs": {ManagedBy: "another-tool"}}))

		err = h.RemoveServer("fs")
		assert.True(t, errors.IsNotManaged(err))
	})
}

func TestSidecarHandler_ListIgnoresOrphanRecords(t *testing.T) {
	t.Parallel()

	h, err := NewClaudeDesktopHandler(testOptions(t))
	require.NoError(t, err)
	writeConfig(t, h.ConfigPath(), `{"mcpServers": {"b": {"command": "x"}, "a": {"command": "y", "args": ["1"]}}}`)
	require.NoError(t, sidecar.Save(filepath.Dir(h.ConfigPath()), sidecar.Metadata{
		"a":     {ManagedBy: sidecar.ManagedMarker, ServerType: "t"},
		"ghost": {ManagedBy: sidecar.ManagedMarker, ServerType: "t"},
	}))

	all, err := h.ListAllServers()
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "a"}, serverNames(all))
	assert.Equal(t, []string{"1"}, all[1].Args)

	managed, err := h.ListManagedServers()
	require.NoError(t, err)
	assert.Equal(t, []string{"a"}, serverNames(managed))
}

func TestSidecarHandler_CorruptFileIsReplaced(t *testing.T) {
	t.Parallel()

	h, err := NewClaudeDesktopHandler(testOptions(t))
	require.NoError(t, err)
	writeConfig(t, h.ConfigPath(), `{not json`)

	all, err := h.ListAllServers()
	require.NoError(t, err)
	assert.Empty(t, all)

	require.NoError(t, h.SetupServer("mine", ServerConfig{Command: "python"}))
	assert.JSONEq(t, `{"mcpServers": {"mine": {"command": "python", "args": []}}}`, readConfig(t, h.ConfigPath()))

	saved := backups(t, filepath.Dir(h.ConfigPath()), "claude_desktop_config_backup")
	require.Len(t, saved, 1)
	assert.Equal(t, `{not json`, readConfig(t, saved[0]))
}

func TestSidecarHandler_BackupConfig(t *testing.T) {
	t.Parallel()

	h, err := NewClaudeDesktopHandler(testOptions(t))
	require.NoError(t, err)

	path, err := h.BackupConfig()
	require.NoError(t, err)
	assert.Equal(t, h.ConfigPath(), path)

	writeConfig(t, h.ConfigPath(), `{}`)
	path, err = h.BackupConfig()
	require.NoError(t, err)
	assert.Equal(t,
		filepath.Join(filepath.Dir(h.ConfigPath()), "claude_desktop_config_backup_20250102_030405.json"), path)
	assert.Equal(t, `{}`, readConfig(t, path))
}

func TestIntelliJHandler_RequiresCopilot(t *testing.T) {
	t.Parallel()

	opts := testOptions(t)
	_, err := NewIntelliJHandler(opts)
	require.Error(t, err)
	assert.True(t, errors.IsHostEnvironment(err))

	require.NoError(t, os.MkdirAll(filepath.Join(opts.HomeDir, ".local", "share", "github-copilot"), 0o755))
	h, err := NewIntelliJHandler(opts)
	require.NoError(t, err)
	assert.Equal(t,
		filepath.Join(opts.HomeDir, ".local", "share", "github-copilot", "intellij", "mcp.json"), h.ConfigPath())

	require.NoError(t, h.SetupServer("mine", ServerConfig{Command: "python"}))
	assert.JSONEq(t, `{"servers": {"mine": {"command": "python", "args": []}}}`, readConfig(t, h.ConfigPath()))
}

func TestMigrateInlineMetadata(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "claude_desktop_config.json")
	writeConfig(t, path, `{"mcpServers": {
		"fs": {"command": "node", "args": []},
		"checker": {"command": "python", "args": [], "_managed_by": "mcp-config-managed", "_server_type": "mcp-code-checker"},
		"partial": {"command": "x", "_managed_by": "mcp-config-managed"}
	}}`)

	migrated, err := MigrateInlineMetadata(path, "/mcpServers", dir)
	require.NoError(t, err)
	assert.True(t, migrated)

	content := readConfig(t, path)
	assert.NotContains(t, content, "_managed_by")
	assert.NotContains(t, content, "_server_type")
	assert.JSONEq(t, `{"mcpServers": {
		"fs": {"command": "node", "args": []},
		"checker": {"command": "python", "args": []},
		"partial": {"command": "x"}
	}}`, content)

	assert.Equal(t, sidecar.Metadata{
		"checker": {ManagedBy: sidecar.ManagedMarker, ServerType: "mcp-code-checker"},
		"partial": {ManagedBy: sidecar.ManagedMarker, ServerType: sidecar.UnknownType},
	}, sidecar.Load(dir))

	info, err := os.Stat(path)
	require.NoError(t, err)
	modTime := info.ModTime()

	migrated, err = MigrateInlineMetadata(path, "/mcpServers", dir)
	require.NoError(t, err)
	assert.False(t, migrated)
	assert.Equal(t, content, readConfig(t, path))
	info, err = os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, modTime, info.ModTime())
}

func TestMigrateInlineMetadata_NothingToDo(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	migrated, err := MigrateInlineMetadata(filepath.Join(dir, "missing.json"), "/mcpServers", dir)
	require.NoError(t, err)
	assert.False(t, migrated)

	path := filepath.Join(dir, "broken.json")
	writeConfig(t, path, `{broken`)
	migrated, err = MigrateInlineMetadata(path, "/mcpServers", dir)
	require.NoError(t, err)
	assert.False(t, migrated)
	assert.Equal(t, `{broken`, readConfig(t, path))
	assert.NoFileExists(t, sidecar.Path(dir))
}

func TestNewSidecarHandler_MigratesOnConstruction(t *testing.T) {
	t.Parallel()

	opts := testOptions(t)
	path := filepath.Join(opts.HomeDir, ".config", "Claude", "claude_desktop_config.json")
	writeConfig(t, path, `{"mcpServers": {"old": {"command": "python", "_managed_by": "mcp-config-managed", "_server_type": "legacy"}}}`)

	h, err := NewClaudeDesktopHandler(opts)
	require.NoError(t, err)

	managed, err := h.ListManagedServers()
	require.NoError(t, err)
	require.Len(t, managed, 1)
	assert.Equal(t, "legacy", managed[0].Type)
	assert.NotContains(t, readConfig(t, path), "_managed_by")

	require.NoError(t, h.RemoveServer("old"))
	assert.Empty(t, sidecar.Load(filepath.Dir(path)))
}

func TestNewSidecarHandler_ReadOnlyLeavesInlineMetadata(t *testing.T) {
	t.Parallel()

	opts := testOptions(t)
	opts.ReadOnly = true
	path := filepath.Join(opts.HomeDir, ".config", "Claude", "claude_desktop_config.json")
	legacy := `{"mcpServers": {"old": {"command": "python", "_managed_by": "mcp-config-managed"}, "ext": {"command": "node"}}}`
	writeConfig(t, path, legacy)

	h, err := NewClaudeDesktopHandler(opts)
	require.NoError(t, err)
	assert.Equal(t, legacy, readConfig(t, path))
	assert.NoFileExists(t, sidecar.Path(filepath.Dir(path)))

	managed, err := h.ListManagedServers()
	require.NoError(t, err)
	require.Len(t, managed, 1)
	assert.Equal(t, "old", managed[0].Name)
	assert.Equal(t, sidecar.UnknownType, managed[0].Type)

	require.NoError(t, h.SetupServer("old", ServerConfig{Command: "python3", ServerType: "checker"}))
	assert.NotContains(t, readConfig(t, path), "_managed_by")
	assert.True(t, sidecar.Load(filepath.Dir(path)).IsManaged("old"))

	err = h.RemoveServer("ext")
	assert.True(t, errors.IsNotManaged(err))
}

func TestHostEntry(t *testing.T) {
	t.Parallel()

	cfg := ServerConfig{Command: "python", ManagedBy: sidecar.ManagedMarker, ServerType: "checker"}
	tests := []struct {
		client MCPClient
		want   string
	}{
		{ClaudeCode, `{"type": "stdio", "command": "python", "args": []}`},
		{ClaudeDesktop, `{"command": "python", "args": []}`},
		{VSCodeWorkspace, `{"command": "python", "args": []}`},
	}

	for _, tt := range tests {
		t.Run(string(tt.client), func(t *testing.T) {
			t.Parallel()
			data, err := json.Marshal(HostEntry(tt.client, cfg))
			require.NoError(t, err)
			assert.JSONEq(t, tt.want, string(data))
		})
	}
}

func TestServerConfig_JSON(t *testing.T) {
	t.Parallel()

	var cfg ServerConfig
	require.NoError(t, json.Unmarshal([]byte(`{
		"command": "python", "args": ["-m", "x"], "env": {"K": "V"},
		"_managed_by": "mcp-config-managed", "_server_type": "x"
	}`), &cfg))
	assert.Equal(t, ServerConfig{
		Command: "python", Args: []string{"-m", "x"}, Env: map[string]string{"K": "V"},
		ManagedBy: sidecar.ManagedMarker, ServerType: "x",
	}, cfg)

	entry, err := json.Marshal(cfg.hostEntry())
	require.NoError(t, err)
	assert.JSONEq(t, `{"command": "python", "args": ["-m", "x"], "env": {"K": "V"}}`, string(entry))
	assert.Equal(t, sidecar.Record{ManagedBy: sidecar.ManagedMarker, ServerType: "x"}, cfg.record())
	assert.Equal(t, sidecar.UnknownType, ServerConfig{}.record().ServerType)
}
