package installed

import (
	"fmt"
	"os"
	"strings"

	"github.com/skillport-dev/skillport/internal/layout"
	"github.com/skillport-dev/skillport/internal/naming"
)

// Inventory lists the installed items found under one target root.
type Inventory struct {
	Target   layout.Target
	Skills   []string
	Agents   []string
	Commands []string
}

// Total returns the item count across containers.
func (inv *Inventory) Total() int {
	return len(inv.Skills) + len(inv.Agents) + len(inv.Commands)
}

// Scan lists entries carrying the prefix in each listable container of the
// target. An empty prefix or a missing container yields empty lists.
func Scan(target layout.Target, prefix string) (*Inventory, error) {
	inv := &Inventory{Target: target}
	if prefix == "" {
		return inv, nil
	}

	var err error
	if inv.Skills, err = listPrefixed(target.Skills(), prefix, true); err != nil {
		return nil, fmt.Errorf("scanning skills: %w", err)
	}
	if inv.Agents, err = listPrefixed(target.Agents(), prefix, false); err != nil {
		return nil, fmt.Errorf("scanning agents: %w", err)
	}
	if inv.Commands, err = listPrefixed(target.Commands(), prefix, false); err != nil {
		return nil, fmt.Errorf("scanning commands: %w", err)
	}
	return inv, nil
}

// ScanAll checks the well-known target roots and returns the inventories
// with at least one installed item.
func ScanAll(prefix string) ([]*Inventory, error) {
	var found []*Inventory
	for _, target := range layout.WellKnown() {
		inv, err := Scan(target, prefix)
		if err != nil {
			return nil, err
		}
		if inv.Total() > 0 {
			found = append(found, inv)
		}
	}
	return found, nil
}

// listPrefixed returns the prefixed entry names in dir. Skill containers
// are directories; agents and commands are markdown files, listed without
// the extension.
func listPrefixed(dir, prefix string, dirs bool) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var names []string
	for _, e := range entries {
		name := e.Name()
		if dirs {
			if !e.IsDir() || !naming.HasPrefix(name, prefix) {
				continue
			}
			names = append(names, name)
			continue
		}
		if e.IsDir() || !strings.HasSuffix(name, ".md") {
			continue
		}
		base := strings.TrimSuffix(name, ".md")
		if naming.HasPrefix(base, prefix) {
			names = append(names, base)
		}
	}
	return names, nil
}
