//go:build integration

package integration_test

import (
	"path/filepath"
	"testing"

	"github.com/skillport-dev/skillport/internal/installed"
	"github.com/skillport-dev/skillport/internal/mcp"
	"github.com/skillport-dev/skillport/internal/translate"
)

// TestFullFlowSyncStatusClean covers the complete lifecycle: sync a pack
// into a sandboxed user target, scan the installed items, re-sync to prove
// idempotence, then clean everything the prefix tracks.
func TestFullFlowSyncStatusClean(t *testing.T) {
	env := setupTestEnv(t)
	setupPack(t, env.SourceDir)
	target := env.target(t)

	// Step 1: sync every category with the full service selection.
	res, err := translate.Run(translate.Options{
		SourceRoot: env.SourceDir,
		Target:     target,
		Prefix:     "acme",
		Services:   mcp.Selection{Kind: mcp.SelectAll},
	})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if res.TotalFiles != 13 {
		t.Fatalf("TotalFiles = %d, want 13", res.TotalFiles)
	}

	// Step 2: verify the translated layout.
	assertFileExists(t, filepath.Join(target.Agents(), "acme-reviewer.md"))
	assertFileExists(t, filepath.Join(target.Commands(), "acme-plan.md"))
	assertDirExists(t, filepath.Join(target.Skills(), "acme-plan"))
	assertFileExists(t, filepath.Join(target.Skills(), "acme-plan", "SKILL.md"))
	assertFileExists(t, filepath.Join(target.Skills(), "acme-profiling", "SKILL.md"))
	assertFileExists(t, filepath.Join(target.Skills(), "acme-ctx-architecture", "SKILL.md"))
	assertFileExists(t, filepath.Join(target.Skills(), "acme-go-standards", "SKILL.md"))
	assertFileExists(t, filepath.Join(target.Skills(), "acme-go-standards", "rules", "errors.md"))
	assertDirExists(t, filepath.Join(target.Skills(), "acme-coding-standards", "rules"))

	// Rewrites apply end to end: the agent body drops editor paths and
	// scopes slash commands.
	agent := readFile(t, filepath.Join(target.Agents(), "acme-reviewer.md"))
	assertContains(t, agent, ".claude/")
	assertContains(t, agent, "/acme-review")

	// Step 3: only the credential-free server lands in the registry, on
	// the aliased runner.
	if res.ServicesAdded != 1 {
		t.Fatalf("ServicesAdded = %d, want 1", res.ServicesAdded)
	}
	registry := readFile(t, target.RegistryPath())
	assertContains(t, registry, `"fetch"`)
	assertContains(t, registry, `"bunx"`)
	assertNotContains(t, registry, `"github"`)

	// Step 4: the scanner sees everything the sync installed.
	inv, err := installed.Scan(target, "acme")
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if len(inv.Skills) != 5 || len(inv.Agents) != 1 || len(inv.Commands) != 1 {
		t.Fatalf("inventory = %d skills, %d agents, %d commands; want 5/1/1",
			len(inv.Skills), len(inv.Agents), len(inv.Commands))
	}

	// Step 5: a second sync rewrites the same outputs and skips the
	// already-merged server.
	res2, err := translate.Run(translate.Options{
		SourceRoot: env.SourceDir,
		Target:     target,
		Prefix:     "acme",
		Services:   mcp.Selection{Kind: mcp.SelectAll},
	})
	if err != nil {
		t.Fatalf("second Run: %v", err)
	}
	if res2.TotalFiles != res.TotalFiles {
		t.Fatalf("second run wrote %d files, first wrote %d", res2.TotalFiles, res.TotalFiles)
	}
	if res2.ServicesAdded != 0 || res2.ServicesSkipped != 1 {
		t.Fatalf("second merge added %d skipped %d, want 0/1", res2.ServicesAdded, res2.ServicesSkipped)
	}

	// Step 6: clean removes every tracked item but leaves the registry.
	cleaned, err := installed.Clean(target, "acme")
	if err != nil {
		t.Fatalf("Clean: %v", err)
	}
	if cleaned.Total() != 7 {
		t.Fatalf("cleaned %d items, want 7", cleaned.Total())
	}
	assertNotExists(t, filepath.Join(target.Agents(), "acme-reviewer.md"))
	assertNotExists(t, filepath.Join(target.Skills(), "acme-plan"))
	assertFileExists(t, target.RegistryPath())

	after, err := installed.Scan(target, "acme")
	if err != nil {
		t.Fatalf("Scan after clean: %v", err)
	}
	if after.Total() != 0 {
		t.Fatalf("scan after clean found %d items", after.Total())
	}
}

// TestSyncWithoutPrefix verifies the degraded no-prefix mode: documents
// install under their bare names and the scanner tracks nothing.
func TestSyncWithoutPrefix(t *testing.T) {
	env := setupTestEnv(t)
	setupPack(t, env.SourceDir)
	target := env.target(t)

	if _, err := translate.Run(translate.Options{
		SourceRoot: env.SourceDir,
		Target:     target,
	}); err != nil {
		t.Fatalf("Run: %v", err)
	}

	assertFileExists(t, filepath.Join(target.Agents(), "reviewer.md"))
	assertFileExists(t, filepath.Join(target.Skills(), "profiling", "SKILL.md"))

	inv, err := installed.Scan(target, "")
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if inv.Total() != 0 {
		t.Fatalf("empty-prefix scan found %d items, want 0", inv.Total())
	}

	cleaned, err := installed.Clean(target, "")
	if err != nil {
		t.Fatalf("Clean: %v", err)
	}
	if cleaned.Total() != 0 {
		t.Fatalf("empty-prefix clean removed %d items, want 0", cleaned.Total())
	}
	assertFileExists(t, filepath.Join(target.Agents(), "reviewer.md"))
}
