package combat

import "herobattle/internal/config"

// Preset is a catalog entry: the Add fields plus optional secondary
// stats. Nil secondary stats keep the roster defaults.
type Preset struct {
	Name        string
	Level       int
	Health      int
	Attack      int
	Defense     *int
	CritChance  *float64
	DodgeChance *float64
}

// StarterNames is the default match lineup, in roster order.
var StarterNames = []string{"Artemis", "Merlín", "Thor", "Shadow"}

// The starters play with the roster's default secondary stats.
var starterPresets = []Preset{
	{Name: "Artemis", Level: 5, Health: 100, Attack: 25},
	{Name: "Merlín", Level: 6, Health: 85, Attack: 30},
	{Name: "Thor", Level: 7, Health: 120, Attack: 20},
	{Name: "Shadow", Level: 5, Health: 80, Attack: 35},
}

// StarterPresets returns a copy of the built-in lineup.
func StarterPresets() []Preset {
	return append([]Preset(nil), starterPresets...)
}

// StarterRoster builds the four-combatant default roster.
func StarterRoster() *Roster {
	r, _ := BuildRoster(starterPresets)
	return r
}

// BuildRoster adds every preset through Roster.Add, then applies the
// secondary stats a preset sets explicitly. Presets that Add rejects are
// returned by name.
func BuildRoster(presets []Preset) (*Roster, []string) {
	r := NewRoster()
	var rejected []string
	for _, p := range presets {
		if !r.Add(p.Name, p.Level, p.Health, p.Attack) {
			rejected = append(rejected, p.Name)
			continue
		}
		c := r.Lookup(p.Name)
		if p.Defense != nil {
			c.Defense = *p.Defense
		}
		if p.CritChance != nil {
			c.CritChance = *p.CritChance
		}
		if p.DodgeChance != nil {
			c.DodgeChance = *p.DodgeChance
		}
	}
	return r, rejected
}

// PresetsFromConfig converts a loaded catalog. A nil catalog yields the
// starter lineup.
func PresetsFromConfig(cfg *config.HeroesConfig) []Preset {
	if cfg == nil {
		return StarterPresets()
	}
	out := make([]Preset, 0, len(cfg.Heroes))
	for _, h := range cfg.Heroes {
		out = append(out, Preset{
			Name:        h.Name,
			Level:       h.Level,
			Health:      h.Health,
			Attack:      h.Attack,
			Defense:     h.Defense,
			CritChance:  h.CritChance,
			DodgeChance: h.DodgeChance,
		})
	}
	return out
}

// RulesFromConfig maps the rules file onto engine rules and the match
// round limit.
func RulesFromConfig(cfg *config.RulesConfig) (Rules, int) {
	if cfg == nil {
		return DefaultRules(), DefaultRounds
	}
	return Rules{
		SpecialCost:   cfg.SpecialCost,
		AttackEnergy:  cfg.AttackEnergy,
		HealEnergy:    cfg.HealEnergy,
		PassEnergy:    cfg.PassEnergy,
		PassHealRatio: cfg.PassHealRatio,
	}, cfg.Rounds
}
