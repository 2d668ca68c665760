package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"herobattle/internal/combat"
	"herobattle/internal/util"
)

var batchOpts struct {
	out     string
	n       int
	workers int
	rounds  int
}

type batchStats struct {
	Decided    int
	SumRounds  int
	SumTurns   int
	Wins       map[string]int
	Totals     combat.Stats
	DamageDone map[string]int
}

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Play many matches and summarise them",
	RunE: func(cmd *cobra.Command, args []string) error {
		n := batchOpts.n
		if n < 1 {
			return fmt.Errorf("-n must be at least 1, got %d", n)
		}
		workers := g.settings.Workers
		if cmd.Flags().Changed("workers") || workers < 1 {
			workers = batchOpts.workers
		}
		if workers < 1 {
			workers = 1
		}
		rounds := g.rounds
		if cmd.Flags().Changed("rounds") {
			rounds = batchOpts.rounds
		}
		presets := combat.PresetsFromConfig(g.heroes)

		st := batchStats{Wins: map[string]int{}, DamageDone: map[string]int{}}
		var mu sync.Mutex
		wg := sync.WaitGroup{}
		jobs := make(chan int, n)
		for w := 0; w < workers; w++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for i := range jobs {
					damage := map[string]int{}
					res := combat.Simulate(combat.MatchConfig{
						Seed:    util.DeriveSeed(g.seed, i),
						Rounds:  rounds,
						Rules:   g.rules,
						Presets: presets,
						Listeners: []combat.Listener{func(ev combat.Event) {
							if ev.Kind == combat.EventAttack || ev.Kind == combat.EventSpecial {
								damage[ev.Actor] += ev.Damage
							}
						}},
					})

					mu.Lock()
					if res.Decided {
						st.Decided++
					}
					if res.Winner != "" {
						st.Wins[res.Winner]++
					}
					st.SumRounds += res.Rounds
					st.SumTurns += res.Turns
					st.Totals = st.Totals.Add(res.Stats)
					for k, v := range damage {
						st.DamageDone[k] += v
					}
					mu.Unlock()
				}
			}()
		}
		for i := 0; i < n; i++ {
			jobs <- i
		}
		close(jobs)
		wg.Wait()

		ratio := func(m map[string]int, total int) map[string]any {
			out := map[string]any{}
			for k, v := range m {
				share := 0.0
				if total > 0 {
					share = float64(v) / float64(total)
				}
				out[k] = map[string]any{"total": v, "ratio": share}
			}
			return out
		}

		summary := map[string]any{
			"runs":         n,
			"seed":         g.seed,
			"decided_rate": float64(st.Decided) / float64(n),
			"avg_rounds":   float64(st.SumRounds) / float64(n),
			"avg_turns":    float64(st.SumTurns) / float64(n),
			"wins":         ratio(st.Wins, n),
			"damage_by":    ratio(st.DamageDone, st.Totals.Damage),
			"totals":       st.Totals,
		}
		if err := os.WriteFile(batchOpts.out, combat.MarshalPretty(summary), 0644); err != nil {
			return fmt.Errorf("write summary: %w", err)
		}
		g.log.Info("batch finished",
			zap.Int("runs", n),
			zap.Int("workers", workers),
			zap.Int("decided", st.Decided))
		fmt.Fprintf(cmd.OutOrStdout(), "Batch %d done -> %s\n", n, filepath.Base(batchOpts.out))
		return nil
	},
}

func init() {
	f := batchCmd.Flags()
	f.StringVar(&batchOpts.out, "out", "summary.json", "summary file")
	f.IntVarP(&batchOpts.n, "runs", "n", 100, "number of simulations")
	f.IntVar(&batchOpts.workers, "workers", 8, "worker goroutines")
	f.IntVar(&batchOpts.rounds, "rounds", combat.DefaultRounds, "round limit per match (defaults to rules.yaml)")
	rootCmd.AddCommand(batchCmd)
}
