package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"herobattle/internal/combat"
	"herobattle/internal/logging"
)

var runOpts struct {
	out    string
	rounds int
	events bool
	quiet  bool
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Play one match",
	RunE: func(cmd *cobra.Command, args []string) error {
		rounds := g.rounds
		if cmd.Flags().Changed("rounds") {
			rounds = runOpts.rounds
		}

		listeners := []combat.Listener{logging.EventListener(g.log)}
		if !runOpts.quiet {
			w := cmd.OutOrStdout()
			listeners = append(listeners, func(ev combat.Event) {
				fmt.Fprintln(w, ev.String())
			})
		}

		res := combat.Simulate(combat.MatchConfig{
			Seed:      g.seed,
			Rounds:    rounds,
			Rules:     g.rules,
			Presets:   combat.PresetsFromConfig(g.heroes),
			Record:    runOpts.events,
			Logger:    g.log,
			Listeners: listeners,
		})
		if !runOpts.quiet {
			fmt.Fprintln(cmd.OutOrStdout(), combat.Event{Kind: combat.EventGameEnd, Winner: res.Winner}.String())
		}
		for _, name := range res.Rejected {
			g.log.Warn("catalog entry rejected by roster", zap.String("name", name))
		}

		if err := os.WriteFile(runOpts.out, combat.MarshalPretty(res), 0644); err != nil {
			return fmt.Errorf("write result: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Match %s finished. Winner=%s, Rounds=%d, Turns=%d, Decided=%v -> %s\n",
			res.ID, res.Winner, res.Rounds, res.Turns, res.Decided, runOpts.out)
		return nil
	},
}

func init() {
	f := runCmd.Flags()
	f.StringVar(&runOpts.out, "out", "out.json", "output file")
	f.IntVar(&runOpts.rounds, "rounds", combat.DefaultRounds, "round limit (defaults to rules.yaml)")
	f.BoolVar(&runOpts.events, "events", true, "include the full event log in the output")
	f.BoolVarP(&runOpts.quiet, "quiet", "q", false, "do not print the battle log")
	rootCmd.AddCommand(runCmd)
}
