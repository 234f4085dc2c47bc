package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/skillport-dev/skillport/internal/config"
	"github.com/skillport-dev/skillport/internal/layout"
	"github.com/skillport-dev/skillport/internal/mcp"
	"github.com/skillport-dev/skillport/internal/pack"
	"github.com/skillport-dev/skillport/internal/translate"
	"github.com/spf13/cobra"
)

var (
	syncSource     string
	syncProject    bool
	syncPrefix     string
	syncCategories []string
	syncLanguages  []string
	syncServices   string
	syncDryRun     bool
)

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Translate a source pack into the target layout",
	Long: `Translate a local Cursor configuration pack into Claude Code documents.
Outputs are fully recomputed on every run; re-syncing is always safe.`,
	RunE: runSync,
}

func init() {
	syncCmd.Flags().StringVar(&syncSource, "source", "", "Source pack directory (required)")
	syncCmd.Flags().BoolVar(&syncProject, "project", false, "Install into ./.claude instead of ~/.claude")
	syncCmd.Flags().StringVar(&syncPrefix, "prefix", "", "Naming prefix for installed items")
	syncCmd.Flags().StringSliceVar(&syncCategories, "category", nil, "Categories to translate (default all)")
	syncCmd.Flags().StringSliceVar(&syncLanguages, "languages", nil, "Rule-set languages (default auto-discover)")
	syncCmd.Flags().StringVar(&syncServices, "mcp", "", "MCP servers to install: none, all, or names")
	syncCmd.Flags().BoolVar(&syncDryRun, "dry-run", false, "Report what would be written without writing")
	_ = syncCmd.MarkFlagRequired("source")
	rootCmd.AddCommand(syncCmd)
}

func runSync(cmd *cobra.Command, args []string) error {
	info, err := os.Stat(syncSource)
	if err != nil || !info.IsDir() {
		return fmt.Errorf("source %q is not a directory", syncSource)
	}

	target, err := resolveTarget(syncProject)
	if err != nil {
		return err
	}

	prefix := syncPrefix
	if prefix == "" {
		prefix = config.Get(config.KeyPrefix)
	}

	var categories []translate.Category
	for _, s := range syncCategories {
		c, ok := translate.ParseCategory(s)
		if !ok {
			return fmt.Errorf("unknown category %q", s)
		}
		categories = append(categories, c)
	}

	services := syncServices
	if services == "" {
		services = config.Get(config.KeyMCP)
	}

	// Pack manifest is optional; warn when the pack wants a newer CLI.
	if warning := pack.Load(syncSource).CheckCompat(buildVersion); warning != "" {
		fmt.Fprintf(cmd.ErrOrStderr(), "⚠️  %s\n", warning)
	}

	res, err := translate.Run(translate.Options{
		SourceRoot: syncSource,
		Target:     target,
		Prefix:     prefix,
		Categories: categories,
		Languages:  syncLanguages,
		Services:   mcp.ParseSelection(services),
		DryRun:     syncDryRun,
	})
	if err != nil {
		return err
	}

	printSyncSummary(cmd, res, target, prefix)
	return nil
}

func printSyncSummary(cmd *cobra.Command, res *translate.Result, target layout.Target, prefix string) {
	out := cmd.OutOrStdout()

	if syncDryRun {
		fmt.Fprintln(out, "Dry run — nothing written.")
	}
	fmt.Fprintf(out, "Syncing into %s (%s)\n", target.Root, target.Label)

	for _, c := range translate.AllCategories() {
		written, ok := res.Written[c]
		if !ok {
			continue
		}
		fmt.Fprintf(out, "  ✓ %-8s %d files\n", c, len(written))
	}

	fmt.Fprintf(out, "\n✓ Wrote %d files.", res.TotalFiles)
	if len(res.ResolvedServices) > 0 {
		fmt.Fprintf(out, " Services: %d added, %d already present (%s).",
			res.ServicesAdded, res.ServicesSkipped, strings.Join(res.ResolvedServices, ", "))
	}
	fmt.Fprintln(out)

	if prefix == "" {
		fmt.Fprintln(out, "  Installed without a prefix: status and clean cannot track these files.")
	}
}

// resolveTarget picks the destination root for sync and clean.
func resolveTarget(project bool) (layout.Target, error) {
	if project {
		cwd, err := os.Getwd()
		if err != nil {
			return layout.Target{}, fmt.Errorf("resolving working directory: %w", err)
		}
		return layout.Project(cwd), nil
	}
	return layout.User()
}
