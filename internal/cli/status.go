package cli

import (
	"fmt"
	"strings"

	"github.com/skillport-dev/skillport/internal/config"
	"github.com/skillport-dev/skillport/internal/installed"
	"github.com/spf13/cobra"
)

var (
	statusPrefix  string
	statusVerbose bool
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show installed items across known targets",
	RunE:  runStatus,
}

func init() {
	statusCmd.Flags().StringVar(&statusPrefix, "prefix", "", "Naming prefix to look for")
	statusCmd.Flags().BoolVarP(&statusVerbose, "verbose", "v", false, "List individual item names")
	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	prefix := statusPrefix
	if prefix == "" {
		prefix = config.Get(config.KeyPrefix)
	}
	if prefix == "" {
		fmt.Fprintln(out, "No prefix configured. Set one with --prefix or `config set prefix <value>`.")
		return nil
	}

	inventories, err := installed.ScanAll(prefix)
	if err != nil {
		return err
	}
	if len(inventories) == 0 {
		fmt.Fprintf(out, "Nothing installed with prefix %q.\n", prefix)
		return nil
	}

	for _, inv := range inventories {
		fmt.Fprintf(out, "%s (%s): %d skills, %d agents, %d commands\n",
			inv.Target.Root, inv.Target.Label,
			len(inv.Skills), len(inv.Agents), len(inv.Commands))
		if statusVerbose {
			printItems(cmd, "skills", inv.Skills)
			printItems(cmd, "agents", inv.Agents)
			printItems(cmd, "commands", inv.Commands)
		}
	}
	return nil
}

func printItems(cmd *cobra.Command, label string, names []string) {
	if len(names) == 0 {
		return
	}
	fmt.Fprintf(cmd.OutOrStdout(), "  %s: %s\n", label, strings.Join(names, ", "))
}
