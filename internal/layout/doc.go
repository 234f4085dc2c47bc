// Package layout resolves the Claude Code directory taxonomy that
// translations write into: the skills, agents, and commands containers plus
// the mcp.json service registry, under either the user-global or a
// project-local root.
package layout
