package config

// RulesConfig tunes the energy economy and the match length.
type RulesConfig struct {
	SpecialCost   int     `yaml:"special_cost" validate:"min=1"`
	AttackEnergy  int     `yaml:"attack_energy" validate:"min=0"`
	HealEnergy    int     `yaml:"heal_energy" validate:"min=0"`
	PassEnergy    int     `yaml:"pass_energy" validate:"min=0"`
	PassHealRatio float64 `yaml:"pass_heal_ratio" validate:"min=0,max=1"`
	Rounds        int     `yaml:"rounds" validate:"min=1"`
}
