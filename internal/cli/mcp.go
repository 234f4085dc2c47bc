package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/skillport-dev/skillport/internal/mcp"
	"github.com/spf13/cobra"
)

var (
	mcpListSource  string
	mcpListProject bool
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Inspect MCP servers declared by a source pack",
}

var mcpListCmd = &cobra.Command{
	Use:   "list",
	Short: "List installable servers from a pack's .mcp.json",
	Long: `List the MCP servers a source pack declares, after filtering out entries
that require credentials or broad host access. Servers already present in the
target registry are marked.`,
	RunE: runMCPList,
}

func init() {
	mcpListCmd.Flags().StringVar(&mcpListSource, "source", "", "Source pack directory (required)")
	mcpListCmd.Flags().BoolVar(&mcpListProject, "project", false, "Compare against ./.claude/mcp.json")
	_ = mcpListCmd.MarkFlagRequired("source")
	mcpCmd.AddCommand(mcpListCmd)
	rootCmd.AddCommand(mcpCmd)
}

func runMCPList(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	servers, err := mcp.Discover(filepath.Join(mcpListSource, mcp.SourceFile))
	if err != nil {
		return err
	}
	if len(servers) == 0 {
		fmt.Fprintf(out, "No installable servers in %s.\n", filepath.Join(mcpListSource, mcp.SourceFile))
		return nil
	}

	target, err := resolveTarget(mcpListProject)
	if err != nil {
		return err
	}
	existing := registryNames(target.RegistryPath())

	fmt.Fprintf(out, "Installable servers from %s:\n", mcpListSource)
	for _, s := range servers {
		mark := " "
		if existing[s.Name] {
			mark = "✓"
		}
		line := fmt.Sprintf("  %s %s  %s", mark, s.Name, s.Command)
		if len(s.Args) > 0 {
			line += " " + strings.Join(s.Args, " ")
		}
		fmt.Fprintln(out, line)
	}
	fmt.Fprintln(out, "\n✓ = already in the target registry. Install with `sync --mcp all` or `sync --mcp <names>`.")
	return nil
}

// registryNames reads the server names already present in a target registry.
// A missing or unreadable registry yields an empty set.
func registryNames(path string) map[string]bool {
	names := map[string]bool{}

	data, err := os.ReadFile(path)
	if err != nil {
		return names
	}

	var doc map[string]json.RawMessage
	if err := json.Unmarshal(data, &doc); err != nil {
		return names
	}
	var servers map[string]json.RawMessage
	if err := json.Unmarshal(doc["mcpServers"], &servers); err != nil {
		return names
	}
	for name := range servers {
		names[name] = true
	}
	return names
}
