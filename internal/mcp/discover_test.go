package mcp

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeServices(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), SourceFile)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestDiscoverFiltersCredentialServers(t *testing.T) {
	path := writeServices(t, `{
  "mcpServers": {
    "github": {
      "command": "npx",
      "args": ["-y", "@modelcontextprotocol/server-github"],
      "env": {"token": "${GITHUB_TOKEN}"}
    },
    "fetch": {
      "command": "uvx",
      "args": ["mcp-server-fetch"]
    }
  }
}`)

	servers, err := Discover(path)
	require.NoError(t, err)
	require.Len(t, servers, 1)
	assert.Equal(t, "fetch", servers[0].Name)
	assert.Equal(t, "uvx", servers[0].Command)
}

func TestDiscoverDenylistBeatsHeuristic(t *testing.T) {
	// filesystem carries no credential-shaped fields but is denylisted.
	path := writeServices(t, `{
  "mcpServers": {
    "filesystem": {"command": "npx", "args": ["-y", "@modelcontextprotocol/server-filesystem"]},
    "time": {"command": "uvx", "args": ["mcp-server-time"]}
  }
}`)

	servers, err := Discover(path)
	require.NoError(t, err)
	require.Len(t, servers, 1)
	assert.Equal(t, "time", servers[0].Name)
}

func TestDiscoverEnvKeyHeuristic(t *testing.T) {
	path := writeServices(t, `{
  "mcpServers": {
    "search": {"command": "uvx", "args": ["mcp-search"], "env": {"SEARCH_API": "abc"}}
  }
}`)

	servers, err := Discover(path)
	require.NoError(t, err)
	assert.Empty(t, servers)
}

func TestDiscoverMissingFile(t *testing.T) {
	servers, err := Discover(filepath.Join(t.TempDir(), "absent.json"))
	require.NoError(t, err)
	assert.Empty(t, servers)
}

func TestDiscoverInvalidJSON(t *testing.T) {
	servers, err := Discover(writeServices(t, "{not json"))
	require.NoError(t, err)
	assert.Empty(t, servers)
}

func TestDiscoverSchemaRejectsMissingCommand(t *testing.T) {
	servers, err := Discover(writeServices(t, `{"mcpServers": {"broken": {"args": ["x"]}}}`))
	require.NoError(t, err)
	assert.Empty(t, servers)
}

func TestDiscoverSortsByName(t *testing.T) {
	path := writeServices(t, `{
  "mcpServers": {
    "zeta": {"command": "uvx"},
    "alpha": {"command": "uvx"}
  }
}`)

	servers, err := Discover(path)
	require.NoError(t, err)
	require.Len(t, servers, 2)
	assert.Equal(t, "alpha", servers[0].Name)
	assert.Equal(t, "zeta", servers[1].Name)
}

func TestResolve(t *testing.T) {
	available := []Server{{Name: "fetch"}, {Name: "time"}}

	assert.Empty(t, Resolve(available, Selection{Kind: SelectNone}))
	assert.Equal(t, available, Resolve(available, Selection{Kind: SelectAll}))

	named := Resolve(available, Selection{Kind: SelectNamed, Names: []string{"time", "unknown"}})
	require.Len(t, named, 1)
	assert.Equal(t, "time", named[0].Name)
}

func TestParseSelection(t *testing.T) {
	assert.Equal(t, SelectNone, ParseSelection("none").Kind)
	assert.Equal(t, SelectNone, ParseSelection("").Kind)
	assert.Equal(t, SelectAll, ParseSelection("all").Kind)

	sel := ParseSelection("fetch, time")
	assert.Equal(t, SelectNamed, sel.Kind)
	assert.Equal(t, []string{"fetch", "time"}, sel.Names)
}
