package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"herobattle/internal/combat"
)

var rosterOpts struct {
	add     []string
	remove  []string
	levelUp []string
}

var rosterCmd = &cobra.Command{
	Use:   "roster",
	Short: "Build a roster from the catalog and print it",
	Long: `roster builds the match roster from the catalog, then applies edits in
order: --add entries, --remove names, --level-up names. The result is
printed as JSON. Rejected edits are reported and make the command fail.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		r, rejected := combat.BuildRoster(combat.PresetsFromConfig(g.heroes))
		var problems []string
		for _, name := range rejected {
			problems = append(problems, fmt.Sprintf("catalog entry %q rejected", name))
		}
		for _, entry := range rosterOpts.add {
			name, level, health, attack, err := parseEntry(entry)
			if err != nil {
				problems = append(problems, err.Error())
				continue
			}
			if !r.Add(name, level, health, attack) {
				problems = append(problems, fmt.Sprintf("add %q rejected", entry))
			}
		}
		for _, name := range rosterOpts.remove {
			if !r.Remove(name) {
				problems = append(problems, fmt.Sprintf("remove %q: not found", name))
			}
		}
		for _, name := range rosterOpts.levelUp {
			if !r.LevelUp(name) {
				problems = append(problems, fmt.Sprintf("level-up %q: not found", name))
			}
		}

		fmt.Fprintln(cmd.OutOrStdout(), string(combat.MarshalPretty(r.Snapshot())))
		if len(problems) > 0 {
			return fmt.Errorf("roster edits failed: %s", strings.Join(problems, "; "))
		}
		return nil
	},
}

// parseEntry reads "name,level,health,attack".
func parseEntry(entry string) (name string, level, health, attack int, err error) {
	parts := strings.Split(entry, ",")
	if len(parts) != 4 {
		return "", 0, 0, 0, fmt.Errorf("add %q: want name,level,health,attack", entry)
	}
	nums := make([]int, 3)
	for i, p := range parts[1:] {
		if nums[i], err = strconv.Atoi(strings.TrimSpace(p)); err != nil {
			return "", 0, 0, 0, fmt.Errorf("add %q: %w", entry, err)
		}
	}
	return strings.TrimSpace(parts[0]), nums[0], nums[1], nums[2], nil
}

func init() {
	f := rosterCmd.Flags()
	f.StringArrayVar(&rosterOpts.add, "add", nil, "add a combatant: name,level,health,attack (repeatable)")
	f.StringArrayVar(&rosterOpts.remove, "remove", nil, "remove a combatant by name (repeatable)")
	f.StringArrayVar(&rosterOpts.levelUp, "level-up", nil, "level up a combatant by name (repeatable)")
	rootCmd.AddCommand(rosterCmd)
}
