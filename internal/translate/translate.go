package translate

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/skillport-dev/skillport/internal/layout"
	"github.com/skillport-dev/skillport/internal/mcp"
)

// Category identifies one of the six fixed translation kinds.
type Category string

const (
	CategoryAgent   Category = "agent"
	CategoryRuleSet Category = "ruleset"
	CategoryCommand Category = "command"
	CategorySkill   Category = "skill"
	CategoryContext Category = "context"
	CategoryHook    Category = "hook"
)

// Source subtree names within a pack.
const (
	sourceAgentsDir   = "agents"
	sourceRulesDir    = "rules"
	sourceCommandsDir = "commands"
	sourceSkillsDir   = "skills"
	sourceContextDir  = "context"
	sourceHooksFile   = "hooks/hooks.json"

	// reservedIndexFile is skipped when listing rule-set content.
	reservedIndexFile = "README.md"
)

// AllCategories returns the closed category set in translation order.
func AllCategories() []Category {
	return []Category{
		CategoryAgent,
		CategoryRuleSet,
		CategoryCommand,
		CategorySkill,
		CategoryContext,
		CategoryHook,
	}
}

// ParseCategory converts a string to a Category, returning false if invalid.
func ParseCategory(s string) (Category, bool) {
	for _, c := range AllCategories() {
		if string(c) == s {
			return c, true
		}
	}
	return "", false
}

// Options parameterizes one translation pass.
type Options struct {
	// SourceRoot is the already-acquired source pack directory.
	SourceRoot string
	// Target is the destination root.
	Target layout.Target
	// Prefix is prepended to every installed name. May be empty.
	Prefix string
	// Categories selects which translators run; empty means all.
	Categories []Category
	// Languages selects rule-set languages; empty means auto-discover.
	Languages []string
	// Services selects which discovered MCP servers to merge.
	Services mcp.Selection
	// DryRun computes and reports everything without writing.
	DryRun bool
}

// Result reports what a translation pass produced.
type Result struct {
	// Written lists target-relative paths per category.
	Written map[Category][]string
	// TotalFiles is the sum across categories.
	TotalFiles int
	// ResolvedServices names the servers the selection resolved to.
	ResolvedServices []string
	// ServicesAdded and ServicesSkipped report the registry merge.
	ServicesAdded   int
	ServicesSkipped int
}

// job carries the per-pass state shared by all translators.
type job struct {
	source    string
	target    layout.Target
	prefix    string
	languages []string
	dryRun    bool
}

var translators = map[Category]func(job) ([]string, error){
	CategoryAgent:   translateAgents,
	CategoryRuleSet: translateRuleSets,
	CategoryCommand: translateCommands,
	CategorySkill:   translateSkills,
	CategoryContext: translateContexts,
	CategoryHook:    translateHooks,
}

// Run executes the enabled category translators against the source pack and
// merges the selected services into the target registry. Translators run in
// the fixed category order; a missing source subtree yields zero files for
// its category, not an error.
func Run(opts Options) (*Result, error) {
	j := job{
		source:    opts.SourceRoot,
		target:    opts.Target,
		prefix:    opts.Prefix,
		languages: opts.Languages,
		dryRun:    opts.DryRun,
	}

	res := &Result{Written: make(map[Category][]string)}

	enabled := make(map[Category]bool, len(opts.Categories))
	for _, c := range opts.Categories {
		enabled[c] = true
	}

	for _, c := range AllCategories() {
		if len(opts.Categories) > 0 && !enabled[c] {
			continue
		}
		written, err := translators[c](j)
		if err != nil {
			return nil, fmt.Errorf("translating %ss: %w", c, err)
		}
		res.Written[c] = written
		res.TotalFiles += len(written)
	}

	available, err := mcp.Discover(filepath.Join(opts.SourceRoot, mcp.SourceFile))
	if err != nil {
		return nil, fmt.Errorf("discovering services: %w", err)
	}
	selected := mcp.Resolve(available, opts.Services)
	for _, s := range selected {
		res.ResolvedServices = append(res.ResolvedServices, s.Name)
	}
	if len(selected) > 0 {
		merge, err := mcp.Merge(opts.Target.RegistryPath(), selected, opts.DryRun)
		if err != nil {
			return nil, fmt.Errorf("merging service registry: %w", err)
		}
		res.ServicesAdded = merge.Added
		res.ServicesSkipped = merge.Skipped
	}

	return res, nil
}

// writeDoc writes content at a target-relative path and returns that path.
// In dry-run mode the write is skipped but the path is still reported.
func (j job) writeDoc(rel, content string) (string, error) {
	if j.dryRun {
		return rel, nil
	}

	abs := filepath.Join(j.target.Root, rel)
	if err := os.MkdirAll(filepath.Dir(abs), 0755); err != nil {
		return "", fmt.Errorf("creating %s: %w", filepath.Dir(abs), err)
	}
	if err := os.WriteFile(abs, []byte(content), 0644); err != nil {
		return "", fmt.Errorf("writing %s: %w", abs, err)
	}
	return rel, nil
}

// readSource reads a source-relative file.
func (j job) readSource(rel string) (string, error) {
	data, err := os.ReadFile(filepath.Join(j.source, rel))
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", rel, err)
	}
	return string(data), nil
}

// listMarkdown returns the markdown file names directly under a source
// subdirectory, sorted. A missing directory yields nil.
func (j job) listMarkdown(subdir string) ([]string, error) {
	entries, err := os.ReadDir(filepath.Join(j.source, subdir))
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", subdir, err)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != ".md" {
			continue
		}
		names = append(names, e.Name())
	}
	return names, nil
}
