package cli

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/skillport-dev/skillport/internal/config"
	"github.com/skillport-dev/skillport/internal/installed"
	"github.com/spf13/cobra"
)

var (
	cleanProject bool
	cleanPrefix  string
	cleanYes     bool
)

var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Remove every installed item carrying the prefix",
	Long: `Remove all skills, agents, and commands carrying the naming prefix from the
target. The MCP service registry is never touched; remove unwanted server
entries by hand.`,
	RunE: runClean,
}

func init() {
	cleanCmd.Flags().BoolVar(&cleanProject, "project", false, "Clean ./.claude instead of ~/.claude")
	cleanCmd.Flags().StringVar(&cleanPrefix, "prefix", "", "Naming prefix to remove")
	cleanCmd.Flags().BoolVarP(&cleanYes, "yes", "y", false, "Skip the confirmation prompt")
	rootCmd.AddCommand(cleanCmd)
}

func runClean(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	prefix := cleanPrefix
	if prefix == "" {
		prefix = config.Get(config.KeyPrefix)
	}
	if prefix == "" {
		fmt.Fprintln(out, "No prefix configured; nothing to clean (unprefixed installs are untracked).")
		return nil
	}

	target, err := resolveTarget(cleanProject)
	if err != nil {
		return err
	}

	inv, err := installed.Scan(target, prefix)
	if err != nil {
		return err
	}
	if inv.Total() == 0 {
		fmt.Fprintf(out, "Nothing installed with prefix %q under %s.\n", prefix, target.Root)
		return nil
	}

	if !cleanYes {
		fmt.Fprintf(out, "Remove %d items with prefix %q from %s? [y/N]: ", inv.Total(), prefix, target.Root)
		reader := bufio.NewReader(cmd.InOrStdin())
		answer, _ := reader.ReadString('\n')
		answer = strings.ToLower(strings.TrimSpace(answer))
		if answer != "y" && answer != "yes" {
			fmt.Fprintln(out, "Aborted.")
			return nil
		}
	}

	res, err := installed.Clean(target, prefix)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "✓ Removed %d skills, %d agents, %d commands from %s.\n",
		len(res.SkillDirs), len(res.AgentFiles), len(res.CommandFiles), target.Root)
	return nil
}
