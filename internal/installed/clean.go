package installed

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/skillport-dev/skillport/internal/layout"
)

// CleanResult reports what a clean removed.
type CleanResult struct {
	SkillDirs    []string
	AgentFiles   []string
	CommandFiles []string
}

// Total returns the removed item count.
func (r *CleanResult) Total() int {
	return len(r.SkillDirs) + len(r.AgentFiles) + len(r.CommandFiles)
}

// Clean removes every installed item carrying the prefix from the target.
// It is a no-op for an empty prefix and never touches the service registry.
func Clean(target layout.Target, prefix string) (*CleanResult, error) {
	res := &CleanResult{}
	if prefix == "" {
		return res, nil
	}

	inv, err := Scan(target, prefix)
	if err != nil {
		return nil, err
	}

	for _, name := range inv.Skills {
		dir := filepath.Join(target.Skills(), name)
		if err := os.RemoveAll(dir); err != nil {
			return nil, fmt.Errorf("removing %s: %w", dir, err)
		}
		res.SkillDirs = append(res.SkillDirs, name)
	}
	for _, name := range inv.Agents {
		file := filepath.Join(target.Agents(), name+".md")
		if err := os.Remove(file); err != nil {
			return nil, fmt.Errorf("removing %s: %w", file, err)
		}
		res.AgentFiles = append(res.AgentFiles, name)
	}
	for _, name := range inv.Commands {
		file := filepath.Join(target.Commands(), name+".md")
		if err := os.Remove(file); err != nil {
			return nil, fmt.Errorf("removing %s: %w", file, err)
		}
		res.CommandFiles = append(res.CommandFiles, name)
	}

	return res, nil
}
