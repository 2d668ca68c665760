package combat

// Stats are the running counters of one match.
type Stats struct {
	Attacks  int `json:"attacks"`
	Damage   int `json:"damage"`
	Heals    int `json:"heals"`
	Healing  int `json:"healing"`
	Crits    int `json:"crits"`
	Dodges   int `json:"dodges"`
	Specials int `json:"specials"`
}

// record folds one resolved action into the counters. Passes and failed
// actions are not counted.
func (s *Stats) record(ev Event) {
	switch ev.Kind {
	case EventAttack, EventSpecial:
		s.Attacks++
		s.Damage += ev.Damage
		if ev.Crit {
			s.Crits++
		}
		if ev.Dodged {
			s.Dodges++
		}
		if ev.Kind == EventSpecial {
			s.Specials++
		}
	case EventHeal:
		s.Heals++
		s.Healing += ev.Healed
	}
}

// Add sums two counter sets; the batch runner uses it to aggregate.
func (s Stats) Add(o Stats) Stats {
	return Stats{
		Attacks:  s.Attacks + o.Attacks,
		Damage:   s.Damage + o.Damage,
		Heals:    s.Heals + o.Heals,
		Healing:  s.Healing + o.Healing,
		Crits:    s.Crits + o.Crits,
		Dodges:   s.Dodges + o.Dodges,
		Specials: s.Specials + o.Specials,
	}
}
