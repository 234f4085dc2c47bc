//go:build integration

package integration_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/skillport-dev/skillport/internal/layout"
)

// testEnv holds paths to isolated test directories.
type testEnv struct {
	SourceDir string // a synthetic Cursor pack
	TargetDir string // sandboxed .claude root
}

// setupTestEnv creates isolated temp directories and points the user target
// at a sandbox so nothing touches the real ~/.claude.
func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()

	env := &testEnv{
		SourceDir: t.TempDir(),
		TargetDir: t.TempDir(),
	}
	t.Setenv("SKILLPORT_TARGET", env.TargetDir)
	return env
}

// target resolves the sandboxed user target.
func (env *testEnv) target(t *testing.T) layout.Target {
	t.Helper()
	target, err := layout.User()
	if err != nil {
		t.Fatalf("resolving user target: %v", err)
	}
	return target
}

// setupPack populates the source directory with one item per category plus a
// service map, covering every translator in a single sync.
func setupPack(t *testing.T, root string) {
	t.Helper()

	writeFile(t, filepath.Join(root, "agents", "reviewer.md"), `---
name: reviewer
description: Reviews pull requests for correctness.
model: sonnet
---
# Reviewer

Check diffs against .cursor/rules before approving. Run /review on request.
`)

	writeFile(t, filepath.Join(root, "commands", "plan.md"), `---
description: Break work into steps.
---
# Plan

Produce an ordered task list before touching code.
`)

	writeFile(t, filepath.Join(root, "rules", "go", "errors.md"),
		"# Error Handling\n\nWrap errors with context using fmt.Errorf.\n")
	writeFile(t, filepath.Join(root, "rules", "go", "naming.md"),
		"# Naming\n\nShort receiver names, no stutter.\n")

	writeFile(t, filepath.Join(root, "skills", "profiling", "SKILL.md"), `---
name: profiling
description: CPU and memory profiling workflow.
---
# Profiling

Capture a pprof profile before optimizing.
`)

	writeFile(t, filepath.Join(root, "context", "architecture.md"),
		"# Architecture\n\nThe system is a single binary with embedded data.\n")

	writeFile(t, filepath.Join(root, "hooks", "hooks.json"), `{"version": 1}`)

	writeFile(t, filepath.Join(root, ".mcp.json"), `{
  "mcpServers": {
    "fetch": {"command": "npx", "args": ["-y", "fetch-server"]},
    "github": {"command": "npx", "args": ["-y", "gh-server"], "env": {"GITHUB_TOKEN": "x"}}
  }
}`)
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("creating %s: %v", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading %s: %v", path, err)
	}
	return string(data)
}

func assertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("expected file %s: %v", path, err)
	}
}

func assertDirExists(t *testing.T, path string) {
	t.Helper()
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("expected directory %s: %v", path, err)
	}
	if !info.IsDir() {
		t.Fatalf("expected %s to be a directory", path)
	}
}

func assertNotExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatalf("expected %s to be absent (err=%v)", path, err)
	}
}

func assertContains(t *testing.T, content, want string) {
	t.Helper()
	if !strings.Contains(content, want) {
		t.Fatalf("expected content to contain %q, got:\n%s", want, content)
	}
}

func assertNotContains(t *testing.T, content, unwanted string) {
	t.Helper()
	if strings.Contains(content, unwanted) {
		t.Fatalf("expected content to omit %q, got:\n%s", unwanted, content)
	}
}
