package mcp

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// npx aliases to bunx in merged entries; the target environment ships bun.
const (
	nodeRunner  = "npx"
	aliasRunner = "bunx"
)

// MergeResult reports what a merge did.
type MergeResult struct {
	Added   int
	Skipped int
}

// Merge inserts the given servers into the target registry file. Entries
// whose name already exists are counted as skipped and their values left
// unchanged, as are unknown top-level registry fields. New entries are
// cloned with the description dropped and the npx runner aliased. The file
// is rewritten only when at least one entry was added and dryRun is false.
//
// A missing or corrupt registry file is treated as an empty registry.
func Merge(registryPath string, toInstall []Server, dryRun bool) (*MergeResult, error) {
	top := make(map[string]json.RawMessage)
	if data, err := os.ReadFile(registryPath); err == nil {
		if err := json.Unmarshal(data, &top); err != nil {
			top = make(map[string]json.RawMessage)
		}
	}

	servers := make(map[string]json.RawMessage)
	if raw, ok := top[serversField]; ok {
		if err := json.Unmarshal(raw, &servers); err != nil {
			servers = make(map[string]json.RawMessage)
		}
	}

	res := &MergeResult{}
	for _, s := range toInstall {
		if _, exists := servers[s.Name]; exists {
			res.Skipped++
			continue
		}

		def := s
		def.Description = ""
		if def.Command == nodeRunner {
			def.Command = aliasRunner
		}

		raw, err := json.Marshal(def)
		if err != nil {
			return nil, fmt.Errorf("encoding server %s: %w", s.Name, err)
		}
		servers[s.Name] = raw
		res.Added++
	}

	if res.Added == 0 || dryRun {
		return res, nil
	}

	rawServers, err := json.Marshal(servers)
	if err != nil {
		return nil, fmt.Errorf("encoding server map: %w", err)
	}
	top[serversField] = rawServers

	out, err := json.MarshalIndent(top, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding registry: %w", err)
	}
	out = append(out, '\n')

	if err := os.MkdirAll(filepath.Dir(registryPath), 0755); err != nil {
		return nil, fmt.Errorf("creating registry directory: %w", err)
	}
	if err := os.WriteFile(registryPath, out, 0644); err != nil {
		return nil, fmt.Errorf("writing registry %s: %w", registryPath, err)
	}

	return res, nil
}
