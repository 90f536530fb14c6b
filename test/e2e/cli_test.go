// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package e2e_test

import (
	"encoding/json"
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/mcpconfig/mcp-config/test/e2e"
)

var _ = Describe("mcp-config CLI", func() {
	var (
		testConfig *e2e.TestConfig
		home       string
		project    string
		env        []string
	)

	BeforeEach(func() {
		testConfig = e2e.NewTestConfig()
		if err := e2e.CheckBinaryAvailable(testConfig); err != nil {
			Skip("mcp-config binary not available: " + err.Error())
		}

		home = GinkgoT().TempDir()
		project = GinkgoT().TempDir()
		env = e2e.IsolatedEnv(home, GinkgoT().TempDir(), GinkgoT().TempDir())
	})

	command := func(args ...string) *e2e.Command {
		return e2e.NewCommand(testConfig, args...).WithEnv(env...).WithDir(project)
	}

	claudeDesktopConfig := func() string {
		return filepath.Join(home, ".config", "Claude", "claude_desktop_config.json")
	}

	Describe("setup and list", func() {
		It("keeps external entries and tracks managed ones in the sidecar", func() {
			path := claudeDesktopConfig()
			Expect(os.MkdirAll(filepath.Dir(path), 0o755)).To(Succeed())
			Expect(os.WriteFile(path, []byte(`{"mcpServers": {"fs": {"command": "node", "args": []}}}`), 0o600)).To(Succeed())

			command("setup", "mcp-code-checker", "checker", "--client", "claude-desktop",
				"--command", "python", "--", "-m", "mcp_code_checker").ExpectSuccess()

			content, err := os.ReadFile(path)
			Expect(err).ToNot(HaveOccurred())
			Expect(string(content)).To(MatchJSON(`{"mcpServers": {
				"fs": {"command": "node", "args": []},
				"checker": {"command": "python", "args": ["-m", "mcp_code_checker"]}
			}}`))

			sidecar, err := os.ReadFile(filepath.Join(filepath.Dir(path), ".mcp-config-metadata.json"))
			Expect(err).ToNot(HaveOccurred())
			Expect(string(sidecar)).To(MatchJSON(`{"checker": {"_managed_by": "mcp-config-managed", "_server_type": "mcp-code-checker"}}`))

			stdout, _ := command("list", "--client", "claude-desktop", "--format", "json").ExpectSuccess()
			var servers []map[string]any
			Expect(json.Unmarshal([]byte(stdout), &servers)).To(Succeed())
			Expect(servers).To(HaveLen(2))
			Expect(servers[0]["name"]).To(Equal("fs"))
			Expect(servers[0]["managed"]).To(BeFalse())
			Expect(servers[1]["name"]).To(Equal("checker"))
			Expect(servers[1]["managed"]).To(BeTrue())
		})

		It("writes project entries with an inline stdio type", func() {
			command("setup", "custom", "srv", "--client", "claude-code", "--command", "srv").ExpectSuccess()

			content, err := os.ReadFile(filepath.Join(project, ".mcp.json"))
			Expect(err).ToNot(HaveOccurred())
			Expect(string(content)).To(MatchJSON(`{"mcpServers": {"srv": {"type": "stdio", "command": "srv", "args": []}}}`))
		})
	})

	Describe("remove", func() {
		BeforeEach(func() {
			for _, name := range []string{"test-1", "test-2", "prod"} {
				command("setup", "custom", name, "--client", "vscode-workspace", "--command", "srv").ExpectSuccess()
			}
		})

		It("refuses wildcards without an explicit client", func() {
			_, _, err := command("remove", "test-*", "--force").ExpectFailure()
			Expect(e2e.ExitCode(err)).To(Equal(2))
		})

		It("removes every match after one confirmation", func() {
			stdout, _ := command("remove", "test-*", "--client", "vscode-workspace").WithStdin("y\n").ExpectSuccess()
			Expect(stdout).To(ContainSubstring("Removed 2 of 2 server(s)."))

			content, err := os.ReadFile(filepath.Join(project, ".vscode", "mcp.json"))
			Expect(err).ToNot(HaveOccurred())
			Expect(string(content)).To(MatchJSON(`{"servers": {"prod": {"command": "srv", "args": []}}}`))
		})

		It("reports servers that do not exist", func() {
			_, _, err := command("remove", "ghost", "--client", "vscode-workspace", "--force").ExpectFailure()
			Expect(e2e.ExitCode(err)).To(Equal(3))
		})
	})

	Describe("config", func() {
		It("stores the default client", func() {
			stdout, _ := command("config", "get-default-client").ExpectSuccess()
			Expect(stdout).To(Equal("claude-desktop\n"))

			command("config", "set-default-client", "claude-code").ExpectSuccess()
			stdout, _ = command("config", "get-default-client").ExpectSuccess()
			Expect(stdout).To(Equal("claude-code\n"))

			_, _, err := command("config", "set-default-client", "notepad").ExpectFailure()
			Expect(e2e.ExitCode(err)).To(Equal(2))
		})
	})

	Describe("validate", func() {
		It("fails on malformed entries", func() {
			path := claudeDesktopConfig()
			Expect(os.MkdirAll(filepath.Dir(path), 0o755)).To(Succeed())
			Expect(os.WriteFile(path, []byte(`{"mcpServers": {"bad": {"args": 1}}}`), 0o600)).To(Succeed())

			stdout, _, err := command("validate", "--client", "claude-desktop").ExpectFailure()
			Expect(stdout).To(ContainSubstring(`server "bad": missing command`))
			Expect(e2e.ExitCode(err)).To(Equal(2))
		})
	})
})
