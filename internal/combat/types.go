package combat

import "fmt"

// Source is the randomness behind every roll in a match. *rand.Rand
// satisfies it. A single Source is shared by the policy and the
// resolvers and is not safe for concurrent use.
type Source interface {
	Float64() float64
	Intn(n int) int
}

// uniformInt draws from the closed range [lo, hi].
func uniformInt(rng Source, lo, hi int) int {
	return lo + rng.Intn(hi-lo+1)
}

type EventKind string

const (
	EventAttack        EventKind = "attack"
	EventAttackFailed  EventKind = "attack_failed"
	EventHeal          EventKind = "heal"
	EventSpecial       EventKind = "special"
	EventSpecialFailed EventKind = "special_failed"
	EventPass          EventKind = "pass"
	EventRoundEnd      EventKind = "round_end"
	EventGameEnd       EventKind = "game_end"
)

type FailReason string

const (
	ReasonNone               FailReason = ""
	ReasonNoTarget           FailReason = "no_target"
	ReasonInsufficientEnergy FailReason = "insufficient_energy"
)

// Event is the record of one resolved action or match boundary. Fields
// that do not apply to a kind stay at their zero value.
type Event struct {
	Kind       EventKind  `json:"kind"`
	Turn       int        `json:"turn,omitempty"`
	Round      int        `json:"round"`
	Actor      string     `json:"actor,omitempty"`
	Target     string     `json:"target,omitempty"`
	Damage     int        `json:"damage,omitempty"`
	Healed     int        `json:"healed,omitempty"`
	Crit       bool       `json:"crit,omitempty"`
	Dodged     bool       `json:"dodged,omitempty"`
	TargetDied bool       `json:"target_died,omitempty"`
	Reason     FailReason `json:"reason,omitempty"`
	GameOver   bool       `json:"game_over,omitempty"`
	Winner     string     `json:"winner,omitempty"`
}

// Listener receives every event the engine broadcasts.
type Listener func(ev Event)

// String renders the event as one battle log line.
func (ev Event) String() string {
	switch ev.Kind {
	case EventAttack:
		var line string
		switch {
		case ev.Dodged:
			line = fmt.Sprintf("%s dodged the attack from %s", ev.Target, ev.Actor)
		case ev.Crit:
			line = fmt.Sprintf("CRITICAL! %s -> %s: -%d HP", ev.Actor, ev.Target, ev.Damage)
		default:
			line = fmt.Sprintf("%s -> %s: -%d HP", ev.Actor, ev.Target, ev.Damage)
		}
		if ev.TargetDied {
			line += fmt.Sprintf(" (%s has been defeated)", ev.Target)
		}
		return line
	case EventAttackFailed:
		return fmt.Sprintf("%s found nobody to attack", ev.Actor)
	case EventSpecial:
		line := fmt.Sprintf("SPECIAL! %s -> %s: -%d HP", ev.Actor, ev.Target, ev.Damage)
		if ev.Dodged {
			line = fmt.Sprintf("%s dodged the special ability of %s", ev.Target, ev.Actor)
		}
		if ev.TargetDied {
			line += fmt.Sprintf(" (%s has been defeated)", ev.Target)
		}
		return line
	case EventSpecialFailed:
		if ev.Reason == ReasonInsufficientEnergy {
			return fmt.Sprintf("%s does not have enough energy", ev.Actor)
		}
		return fmt.Sprintf("special ability of %s failed (%s)", ev.Actor, ev.Reason)
	case EventHeal:
		return fmt.Sprintf("%s heals +%d HP", ev.Actor, ev.Healed)
	case EventPass:
		if ev.Healed > 0 {
			return fmt.Sprintf("%s recovers energy (+%d HP)", ev.Actor, ev.Healed)
		}
		return fmt.Sprintf("%s recovers energy", ev.Actor)
	case EventRoundEnd:
		return fmt.Sprintf("=== END OF ROUND %d ===", ev.Round)
	case EventGameEnd:
		if ev.Winner == "" {
			return "battle over: no survivors"
		}
		return fmt.Sprintf("battle over: %s wins", ev.Winner)
	}
	return string(ev.Kind)
}
