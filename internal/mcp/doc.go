// Package mcp discovers MCP server definitions shipped with a source pack,
// filters out entries that need credentials the installer cannot supply, and
// merges the caller's selection into the target mcp.json registry without
// ever overwriting an existing entry.
package mcp
