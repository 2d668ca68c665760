package combat_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"herobattle/internal/combat"
)

func TestSimulate_SameSeedSameMatch(t *testing.T) {
	a := combat.Simulate(combat.MatchConfig{Seed: 42, Record: true})
	b := combat.Simulate(combat.MatchConfig{Seed: 42, Record: true})

	assert.NotEqual(t, a.ID, b.ID)
	a.ID, b.ID = "", ""
	assert.Equal(t, a, b)
}

func TestSimulate_DefaultLineup(t *testing.T) {
	res := combat.Simulate(combat.MatchConfig{Seed: 7})
	require.Len(t, res.Final, 4)
	for i, c := range res.Final {
		assert.Equal(t, combat.StarterNames[i], c.Name)
	}
	assert.Nil(t, res.Events)
	assert.Empty(t, res.Rejected)
	assert.Equal(t, int64(7), res.Seed)
}

func TestSimulate_ReportsRejectedPresets(t *testing.T) {
	res := combat.Simulate(combat.MatchConfig{
		Seed: 3,
		Presets: []combat.Preset{
			{Name: "a", Level: 1, Health: 50, Attack: 10},
			{Name: "b", Level: 1, Health: 50, Attack: 10},
			{Name: "giant", Level: 1, Health: 500, Attack: 10},
		},
	})
	assert.Equal(t, []string{"giant"}, res.Rejected)
	assert.Len(t, res.Final, 2)
}

func TestSimulate_ListenersSeeRecordedEvents(t *testing.T) {
	var seen []combat.Event
	res := combat.Simulate(combat.MatchConfig{
		Seed:      11,
		Record:    true,
		Listeners: []combat.Listener{func(ev combat.Event) { seen = append(seen, ev) }},
	})
	require.NotEmpty(t, res.Events)
	// the closing game_end is only added to the record
	assert.Equal(t, res.Events[:len(res.Events)-1], seen)
	for _, ev := range seen {
		assert.NotEqual(t, combat.EventGameEnd, ev.Kind)
	}
}

func TestRunMatch_DecidedMidRoundCountsThatRound(t *testing.T) {
	r := combat.NewRoster()
	mustAdd(t, r, "A", 5, 100, 25, plain)
	mustAdd(t, r, "B", 5, 100, 25, plain)
	eng := combat.NewEngine(r, duelScript(t))

	res := combat.RunMatch(eng, 5, true)
	require.True(t, res.Decided)
	assert.Equal(t, "A", res.Winner)
	assert.Equal(t, 7, res.Turns)
	assert.Equal(t, 4, res.Rounds, "turn 7 falls in round 4")
	assert.Equal(t, 3, eng.Round(), "three rounds were closed by EndRound")

	// 7 turns, 3 round ends and the closing game_end
	require.Len(t, res.Events, 11)
	final := res.Events[9]
	assert.Equal(t, combat.EventAttack, final.Kind)
	assert.True(t, final.GameOver)
	assert.Equal(t, res.Rounds, final.Round)
	end := res.Events[10]
	assert.Equal(t, combat.EventGameEnd, end.Kind)
	assert.Equal(t, res.Rounds, end.Round)
	assert.Equal(t, "A", end.Winner)
}

func TestRunMatch_EveryoneActsOncePerRound(t *testing.T) {
	r := rosterOf(t, 150, 150, 150)
	eng := combat.NewEngine(r, fixedSrc{f: 0.9})
	res := combat.RunMatch(eng, 2, true)

	assert.False(t, res.Decided)
	assert.Equal(t, 2, res.Rounds)
	assert.Equal(t, 6, res.Turns)
	assert.Equal(t, []string{"P1", "P2", "P3"}, res.Survivors)

	var kinds []combat.EventKind
	for _, ev := range res.Events {
		kinds = append(kinds, ev.Kind)
	}
	assert.Equal(t, []combat.EventKind{
		combat.EventPass, combat.EventPass, combat.EventPass, combat.EventRoundEnd,
		combat.EventPass, combat.EventPass, combat.EventPass, combat.EventRoundEnd,
		combat.EventGameEnd,
	}, kinds)
	assert.Equal(t, "P1", res.Winner)
}

func TestRunMatch_NonPositiveRoundsUseDefault(t *testing.T) {
	r := rosterOf(t, 150, 150)
	res := combat.RunMatch(combat.NewEngine(r, fixedSrc{f: 0.9}), 0, false)
	assert.Equal(t, combat.DefaultRounds, res.Rounds)
	assert.Equal(t, 2*combat.DefaultRounds, res.Turns)
}

func TestSimulate_Property_Invariants(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		cfgRounds := rapid.IntRange(1, 8).Draw(rt, "rounds")
		res := combat.Simulate(combat.MatchConfig{
			Seed:   rapid.Int64().Draw(rt, "seed"),
			Rounds: cfgRounds,
			Record: true,
		})

		for _, c := range res.Final {
			assert.GreaterOrEqual(rt, c.Health, 0)
			assert.LessOrEqual(rt, c.Health, c.HealthMax)
			assert.GreaterOrEqual(rt, c.Energy, 0)
			assert.LessOrEqual(rt, c.Energy, c.EnergyMax)
		}
		require.NotEmpty(rt, res.Survivors)
		if res.Decided {
			assert.Len(rt, res.Survivors, 1)
			assert.Equal(rt, res.Survivors[0], res.Winner)
			require.GreaterOrEqual(rt, len(res.Events), 2)
			assert.Equal(rt, res.Rounds, res.Events[len(res.Events)-2].Round)
		}
		assert.LessOrEqual(rt, res.Rounds, cfgRounds)

		require.NotEmpty(rt, res.Events)
		end := res.Events[len(res.Events)-1]
		assert.Equal(rt, combat.EventGameEnd, end.Kind)
		assert.Equal(rt, res.Winner, end.Winner)

		var turns int
		var stats combat.Stats
		for _, ev := range res.Events {
			switch ev.Kind {
			case combat.EventRoundEnd, combat.EventGameEnd:
				continue
			}
			turns++
			if ev.Kind == combat.EventAttack || ev.Kind == combat.EventSpecial {
				stats.Attacks++
				stats.Damage += ev.Damage
			}
		}
		assert.Equal(rt, res.Turns, turns)
		assert.Equal(rt, res.Stats.Attacks, stats.Attacks)
		assert.Equal(rt, res.Stats.Damage, stats.Damage)
	})
}

func TestMarshalPretty(t *testing.T) {
	res := combat.Simulate(combat.MatchConfig{Seed: 5})
	var back map[string]any
	require.NoError(t, json.Unmarshal(combat.MarshalPretty(res), &back))
	assert.Contains(t, back, "winner")
	assert.Contains(t, back, "final")
	assert.NotContains(t, back, "events")
}

func TestEventString(t *testing.T) {
	tests := []struct {
		ev   combat.Event
		want string
	}{
		{combat.Event{Kind: combat.EventAttack, Actor: "A", Target: "B", Damage: 12}, "A -> B: -12 HP"},
		{combat.Event{Kind: combat.EventAttack, Actor: "A", Target: "B", Damage: 30, Crit: true, TargetDied: true}, "CRITICAL! A -> B: -30 HP (B has been defeated)"},
		{combat.Event{Kind: combat.EventAttack, Actor: "A", Target: "B", Dodged: true}, "B dodged the attack from A"},
		{combat.Event{Kind: combat.EventSpecialFailed, Actor: "A", Reason: combat.ReasonInsufficientEnergy}, "A does not have enough energy"},
		{combat.Event{Kind: combat.EventHeal, Actor: "A", Healed: 20}, "A heals +20 HP"},
		{combat.Event{Kind: combat.EventRoundEnd, Round: 3}, "=== END OF ROUND 3 ==="},
		{combat.Event{Kind: combat.EventGameEnd, Winner: "Thor"}, "battle over: Thor wins"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.ev.String())
	}
}
