package combat

import "math"

const (
	DefaultDefense     = 5
	DefaultCritChance  = 0.15
	DefaultDodgeChance = 0.10
	DefaultEnergyMax   = 100

	maxDefenseReduction = 0.70
	defenseReductionPer = 0.02
	maxCritChance       = 0.50
	critChancePerLevel  = 0.02
)

// Combatant is the stat block of one character. Records live inside a
// Roster and are reached through a Handle.
type Combatant struct {
	Name        string  `json:"name"`
	Level       int     `json:"level"`
	Health      int     `json:"health"`
	HealthMax   int     `json:"health_max"`
	Attack      int     `json:"attack"`
	Defense     int     `json:"defense"`
	CritChance  float64 `json:"crit_chance"`
	DodgeChance float64 `json:"dodge_chance"`
	Energy      int     `json:"energy"`
	EnergyMax   int     `json:"energy_max"`
}

func (c *Combatant) Alive() bool { return c.Health > 0 }

// DefenseReduction is the fraction of incoming attack damage absorbed.
func (c *Combatant) DefenseReduction() float64 {
	return math.Min(maxDefenseReduction, float64(c.Defense)*defenseReductionPer)
}

// takeHit applies raw attack damage after a dodge roll and the defense
// reduction. It returns the health actually lost.
func (c *Combatant) takeHit(rng Source, raw int) (dealt int, dodged bool) {
	if rng.Float64() < c.DodgeChance {
		return 0, true
	}
	reduced := int(float64(raw) * (1 - c.DefenseReduction()))
	return c.loseHealth(reduced), false
}

// loseHealth removes up to amount health, never going below zero.
func (c *Combatant) loseHealth(amount int) int {
	if amount < 0 {
		amount = 0
	}
	dealt := min(amount, c.Health)
	c.Health = max(0, c.Health-amount)
	return dealt
}

func (c *Combatant) heal(amount int) int {
	if amount < 0 {
		amount = 0
	}
	healed := min(amount, c.HealthMax-c.Health)
	c.Health += healed
	return healed
}

func (c *Combatant) gainEnergy(amount int) {
	c.Energy = min(c.EnergyMax, c.Energy+amount)
}

func (c *Combatant) spendEnergy(amount int) bool {
	if c.Energy < amount {
		return false
	}
	c.Energy -= amount
	return true
}

func (c *Combatant) levelUp(dHealth, dAttack int) {
	c.Level++
	c.HealthMax += dHealth
	c.Health = min(c.Health+dHealth, c.HealthMax)
	c.Attack += dAttack
	c.Defense++
	c.CritChance = math.Min(maxCritChance, c.CritChance+critChancePerLevel)
}
