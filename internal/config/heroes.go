package config

// HeroesConfig is the combatant catalog. Secondary stats left out of a
// definition fall back to the roster defaults.
type HeroesConfig struct {
	Heroes []HeroDef `yaml:"heroes" validate:"required,min=1,dive"`
}

type HeroDef struct {
	Name        string   `yaml:"name" validate:"required"`
	Level       int      `yaml:"level" validate:"min=1,max=10"`
	Health      int      `yaml:"health" validate:"min=10,max=200"`
	Attack      int      `yaml:"attack" validate:"min=5,max=50"`
	Defense     *int     `yaml:"defense" validate:"omitempty,min=0"`
	CritChance  *float64 `yaml:"crit_chance" validate:"omitempty,min=0,max=1"`
	DodgeChance *float64 `yaml:"dodge_chance" validate:"omitempty,min=0,max=1"`
	Note        string   `yaml:"note"`
}

// Find returns the definition with the given name.
func (hc *HeroesConfig) Find(name string) (HeroDef, bool) {
	if hc == nil {
		return HeroDef{}, false
	}
	for _, h := range hc.Heroes {
		if h.Name == name {
			return h, true
		}
	}
	return HeroDef{}, false
}
