package combat

// Decision is what the policy picked for one turn. Target is the zero
// Handle for self-targeted actions.
type Decision struct {
	Action Action
	Target Handle
}

const (
	specialWeakHealth   = 60
	specialChance       = 0.4
	lowHealthRatio      = 0.4
	lowHealthHealChance = 0.6
	attackShare         = 0.55
	healShare           = 0.80
)

// Policy is the scripted AI every combatant uses. Random draws happen
// only once a branch's precondition holds. A special is only considered
// once the actor can pay rules.SpecialCost.
type Policy struct {
	roster *Roster
	rng    Source
	rules  Rules
}

func NewPolicy(r *Roster, rng Source, rules Rules) *Policy {
	return &Policy{roster: r, rng: rng, rules: rules}
}

func (p *Policy) Decide(actor Handle) Decision {
	me := p.roster.Get(actor)
	if me == nil {
		return Decision{Action: ActionPass}
	}
	foes := p.opponents(actor)

	if me.Energy >= p.rules.SpecialCost && len(foes) > 0 {
		weakest := foes[0]
		for _, h := range foes[1:] {
			if p.roster.Get(h).Health < p.roster.Get(weakest).Health {
				weakest = h
			}
		}
		if p.roster.Get(weakest).Health < specialWeakHealth && p.rng.Float64() < specialChance {
			return Decision{Action: ActionSpecial, Target: weakest}
		}
	}

	if float64(me.Health) < float64(me.HealthMax)*lowHealthRatio && p.rng.Float64() < lowHealthHealChance {
		return Decision{Action: ActionHeal}
	}

	r := p.rng.Float64()
	switch {
	case r < attackShare:
		if len(foes) == 0 {
			return Decision{Action: ActionPass}
		}
		return Decision{Action: ActionAttack, Target: foes[p.rng.Intn(len(foes))]}
	case r < healShare:
		return Decision{Action: ActionHeal}
	default:
		return Decision{Action: ActionPass}
	}
}

// opponents lists every living combatant other than actor, in roster
// order.
func (p *Policy) opponents(actor Handle) []Handle {
	alive := p.roster.Alive()
	out := alive[:0]
	for _, h := range alive {
		if h != actor {
			out = append(out, h)
		}
	}
	return out
}
