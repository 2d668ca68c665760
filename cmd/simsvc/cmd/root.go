package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"herobattle/internal/combat"
	"herobattle/internal/config"
	"herobattle/internal/logging"
	"herobattle/internal/util"
)

// globals are resolved once per invocation in PersistentPreRunE.
type globals struct {
	cfgDir    string
	seed      int64
	logLevel  string
	logFormat string

	settings config.Settings
	heroes   *config.HeroesConfig
	rules    combat.Rules
	rounds   int
	log      *zap.Logger
}

var g globals

var rootCmd = &cobra.Command{
	Use:   "simsvc",
	Short: "Turn-based hero battle simulator",
	Long: `simsvc runs hero battles: a roster of combatants takes turns attacking,
healing, using special abilities or passing until one is left standing
or the round limit is reached.

Available commands:
  run      Play one match and write its result (and event log) as JSON
  batch    Play many matches over a worker pool and write a summary
  roster   Build and print a roster from the catalog

Settings can also come from HEROBATTLE_* environment variables or a .env file.`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if g.log != nil {
			_ = g.log.Sync()
		}
	},
}

// Execute executes the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&g.cfgDir, "config", "", "directory holding heroes.yaml and rules.yaml (built-in defaults when empty)")
	pf.Int64Var(&g.seed, "seed", 0, "random seed (0 picks a fresh one)")
	pf.StringVar(&g.logLevel, "log-level", "", "log level: debug, info, warn, error")
	pf.StringVar(&g.logFormat, "log-format", "", "log format: console or json")
}

func setup(cmd *cobra.Command, args []string) error {
	s, err := config.LoadSettings()
	if err != nil {
		return err
	}
	g.settings = s

	flags := cmd.Flags()
	if !flags.Changed("config") {
		g.cfgDir = s.ConfigDir
	}
	if !flags.Changed("log-level") {
		g.logLevel = s.LogLevel
	}
	if !flags.Changed("log-format") {
		g.logFormat = s.LogFormat
	}
	if !flags.Changed("seed") {
		g.seed = s.Seed
	}
	if g.seed == 0 {
		if g.seed, err = util.NewSeed(); err != nil {
			return err
		}
	}

	if g.log, err = logging.New(g.logLevel, g.logFormat); err != nil {
		return err
	}

	heroes, rules, err := config.LoadAll(g.cfgDir)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	g.heroes = heroes
	g.rules, g.rounds = combat.RulesFromConfig(rules)
	if s.Rounds > 0 {
		g.rounds = s.Rounds
	}
	g.log.Debug("configuration loaded",
		zap.String("config_dir", g.cfgDir),
		zap.Int64("seed", g.seed),
		zap.Int("heroes", len(heroes.Heroes)),
		zap.Int("rounds", g.rounds))
	return nil
}
