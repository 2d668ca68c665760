package combat

import (
	"encoding/json"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"herobattle/internal/util"
)

// DefaultRounds is the round limit of a standard match.
const DefaultRounds = 5

type MatchConfig struct {
	Seed      int64
	Rounds    int
	Rules     Rules
	Presets   []Preset
	Record    bool
	Logger    *zap.Logger
	Listeners []Listener
}

type MatchResult struct {
	ID        string      `json:"id"`
	Seed      int64       `json:"seed"`
	Rounds    int         `json:"rounds"`
	Turns     int         `json:"turns"`
	Decided   bool        `json:"decided"`
	Winner    string      `json:"winner,omitempty"`
	Survivors []string    `json:"survivors"`
	Final     []Combatant `json:"final"`
	Rejected  []string    `json:"rejected,omitempty"`
	Stats     Stats       `json:"stats"`
	Events    []Event     `json:"events,omitempty"`
}

// Simulate builds a roster and engine from cfg and plays one match.
func Simulate(cfg MatchConfig) MatchResult {
	presets := cfg.Presets
	if presets == nil {
		presets = starterPresets
	}
	rules := cfg.Rules
	if rules == (Rules{}) {
		rules = DefaultRules()
	}
	roster, rejected := BuildRoster(presets)
	eng := NewEngine(roster, util.New(cfg.Seed), WithRules(rules), WithLogger(cfg.Logger))
	for _, fn := range cfg.Listeners {
		eng.AddListener(fn)
	}
	res := RunMatch(eng, cfg.Rounds, cfg.Record)
	res.Seed = cfg.Seed
	res.Rejected = rejected
	return res
}

// RunMatch plays rounds until one combatant is left or the round limit
// is reached. In a round every combatant in the rotation at its start
// acts once, then EndRound re-sorts the rotation. Without a decisive
// result the healthiest survivor is the winner. Rounds counts the round
// the match ended in, so a match decided mid-round includes that round.
// A recorded log always closes with a game_end event.
func RunMatch(eng *Engine, rounds int, record bool) MatchResult {
	if rounds <= 0 {
		rounds = DefaultRounds
	}
	var events []Event
	if record {
		eng.AddListener(func(ev Event) { events = append(events, ev) })
	}

	for round := 0; round < rounds && !eng.Over(); round++ {
		acted := map[Handle]bool{}
		for !eng.Over() {
			h, ok := eng.Turns().Current()
			if !ok || acted[h] {
				break
			}
			acted[h] = true
			eng.AdvanceTurn()
		}
		if !eng.Over() {
			eng.EndRound()
		}
	}

	played := eng.Round()
	if eng.Over() {
		played++
	}
	res := MatchResult{
		ID:      uuid.New().String(),
		Rounds:  played,
		Turns:   eng.TurnsPlayed(),
		Decided: eng.Over(),
		Final:   eng.Roster().Snapshot(),
		Stats:   eng.Stats(),
	}
	if h, ok := eng.Winner(); ok {
		res.Winner = eng.Roster().Get(h).Name
	}
	for _, h := range eng.Roster().Alive() {
		res.Survivors = append(res.Survivors, eng.Roster().Get(h).Name)
	}
	if record {
		res.Events = append(events, Event{Kind: EventGameEnd, Turn: res.Turns, Round: res.Rounds, GameOver: true, Winner: res.Winner})
	}
	return res
}

func MarshalPretty(v any) []byte {
	b, _ := json.MarshalIndent(v, "", "  ")
	return b
}
