package combat

// Action is the closed set of things a combatant can do on its turn.
type Action int

const (
	ActionAttack Action = iota
	ActionHeal
	ActionSpecial
	ActionPass
)

func (a Action) String() string {
	switch a {
	case ActionAttack:
		return "attack"
	case ActionHeal:
		return "heal"
	case ActionSpecial:
		return "special"
	case ActionPass:
		return "pass"
	}
	return "unknown"
}

// Rules holds the tunable numbers of the energy economy.
type Rules struct {
	SpecialCost   int     `json:"special_cost"`
	AttackEnergy  int     `json:"attack_energy"`
	HealEnergy    int     `json:"heal_energy"`
	PassEnergy    int     `json:"pass_energy"`
	PassHealRatio float64 `json:"pass_heal_ratio"`
}

func DefaultRules() Rules {
	return Rules{
		SpecialCost:   50,
		AttackEnergy:  15,
		HealEnergy:    10,
		PassEnergy:    25,
		PassHealRatio: 0.05,
	}
}

const (
	critMultiplier    = 1.5
	specialMultiplier = 2.5
)

// Resolver applies actions to roster records. It never touches the turn
// order or match statistics.
type Resolver struct {
	roster *Roster
	rng    Source
	rules  Rules
}

func NewResolver(r *Roster, rng Source, rules Rules) *Resolver {
	return &Resolver{roster: r, rng: rng, rules: rules}
}

// Resolve runs one decision for actor. The zero Handle means "no
// target". A stale actor handle yields a pass-kind event with no effect.
func (rv *Resolver) Resolve(actor Handle, d Decision) Event {
	a := rv.roster.Get(actor)
	if a == nil {
		return Event{Kind: EventPass}
	}
	target := rv.roster.Get(d.Target)
	switch d.Action {
	case ActionAttack:
		return rv.Attack(a, target)
	case ActionHeal:
		return rv.Heal(a)
	case ActionSpecial:
		return rv.Special(a, target)
	case ActionPass:
		return rv.Pass(a)
	}
	return rv.Pass(a)
}

func (rv *Resolver) Attack(actor, target *Combatant) Event {
	if target == nil || !target.Alive() {
		return Event{Kind: EventAttackFailed, Actor: actor.Name, Reason: ReasonNoTarget}
	}
	raw := actor.Attack + uniformInt(rv.rng, -5, 15)
	crit := rv.rng.Float64() < actor.CritChance
	if crit {
		raw = int(float64(raw) * critMultiplier)
	}
	dealt, dodged := target.takeHit(rv.rng, raw)
	actor.gainEnergy(rv.rules.AttackEnergy)
	return Event{
		Kind:       EventAttack,
		Actor:      actor.Name,
		Target:     target.Name,
		Damage:     dealt,
		Crit:       crit,
		Dodged:     dodged,
		TargetDied: !target.Alive(),
	}
}

func (rv *Resolver) Heal(actor *Combatant) Event {
	amount := 15 + actor.Level*5 + uniformInt(rv.rng, 5, 20)
	healed := actor.heal(amount)
	actor.gainEnergy(rv.rules.HealEnergy)
	return Event{Kind: EventHeal, Actor: actor.Name, Healed: healed}
}

// Special deals heavy damage that ignores defense. The energy cost is
// charged before the target check, so a missing target still costs it.
func (rv *Resolver) Special(actor, target *Combatant) Event {
	if !actor.spendEnergy(rv.rules.SpecialCost) {
		return Event{Kind: EventSpecialFailed, Actor: actor.Name, Reason: ReasonInsufficientEnergy}
	}
	if target == nil || !target.Alive() {
		return Event{Kind: EventSpecialFailed, Actor: actor.Name, Reason: ReasonNoTarget}
	}
	damage := int(float64(actor.Attack)*specialMultiplier) + uniformInt(rv.rng, 20, 40)
	if rv.rng.Float64() < target.DodgeChance {
		return Event{Kind: EventSpecial, Actor: actor.Name, Target: target.Name, Dodged: true}
	}
	dealt := target.loseHealth(damage)
	return Event{
		Kind:       EventSpecial,
		Actor:      actor.Name,
		Target:     target.Name,
		Damage:     dealt,
		TargetDied: !target.Alive(),
	}
}

func (rv *Resolver) Pass(actor *Combatant) Event {
	actor.gainEnergy(rv.rules.PassEnergy)
	healed := actor.heal(int(float64(actor.HealthMax) * rv.rules.PassHealRatio))
	return Event{Kind: EventPass, Actor: actor.Name, Healed: healed}
}
