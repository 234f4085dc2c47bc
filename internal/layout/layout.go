package layout

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/skillport-dev/skillport/internal/branding"
)

// Directory and file name constants for the target convention.
const (
	TargetDirName = ".claude"
	SkillsDir     = "skills"
	AgentsDir     = "agents"
	CommandsDir   = "commands"
	RegistryFile  = "mcp.json"

	// SkillIndexFile is the index document inside each skill container.
	SkillIndexFile = "SKILL.md"

	// RulesDir is the nested rules folder inside a skill container.
	RulesDir = "rules"
)

// Target describes one translation destination root.
type Target struct {
	// Label is a short human name for status output ("user", "project").
	Label string
	// Root is the absolute target root (e.g., ~/.claude).
	Root string
}

// Skills returns the skills container directory.
func (t Target) Skills() string { return filepath.Join(t.Root, SkillsDir) }

// Agents returns the agents container directory.
func (t Target) Agents() string { return filepath.Join(t.Root, AgentsDir) }

// Commands returns the commands container directory.
func (t Target) Commands() string { return filepath.Join(t.Root, CommandsDir) }

// RegistryPath returns the path of the mcp.json service registry.
func (t Target) RegistryPath() string { return filepath.Join(t.Root, RegistryFile) }

// User returns the user-global target root. It checks the SKILLPORT_TARGET
// environment variable first, then falls back to ~/.claude.
func User() (Target, error) {
	if v := os.Getenv(branding.EnvVar("TARGET")); v != "" {
		return Target{Label: "user", Root: v}, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return Target{}, fmt.Errorf("resolving home directory: %w", err)
	}
	return Target{Label: "user", Root: filepath.Join(home, TargetDirName)}, nil
}

// Project returns the project-local target root under dir.
func Project(dir string) Target {
	return Target{Label: "project", Root: filepath.Join(dir, TargetDirName)}
}

// WellKnown returns the fixed set of roots the scanner checks: the
// user-global root and the current directory's project root. Roots that
// cannot be resolved are simply absent.
func WellKnown() []Target {
	var targets []Target
	if user, err := User(); err == nil {
		targets = append(targets, user)
	}
	if cwd, err := os.Getwd(); err == nil {
		targets = append(targets, Project(cwd))
	}
	return targets
}
