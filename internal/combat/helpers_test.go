package combat_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"herobattle/internal/combat"
)

// scriptSrc replays queued rolls in order. Once a queue runs dry it
// returns the fallback, which keeps "never crits, never dodges" scripts
// short.
type scriptSrc struct {
	t           testing.TB
	floats      []float64
	ints        []int
	floatAfter  float64
	intAfter    int
	strictFloat bool
}

func (s *scriptSrc) Float64() float64 {
	if len(s.floats) == 0 {
		if s.strictFloat {
			s.t.Fatalf("scriptSrc: unexpected Float64 call")
		}
		return s.floatAfter
	}
	v := s.floats[0]
	s.floats = s.floats[1:]
	return v
}

func (s *scriptSrc) Intn(n int) int {
	v := s.intAfter
	if len(s.ints) > 0 {
		v = s.ints[0]
		s.ints = s.ints[1:]
	}
	require.Less(s.t, v, n, "scripted Intn value out of range")
	return v
}

// fixedSrc returns the same roll every time.
type fixedSrc struct {
	f float64
	i int
}

func (f fixedSrc) Float64() float64 { return f.f }
func (f fixedSrc) Intn(n int) int {
	if f.i >= n {
		return n - 1
	}
	return f.i
}

// mustAdd adds a combatant and tunes its secondary stats.
func mustAdd(t testing.TB, r *combat.Roster, name string, level, health, attack int, tune func(c *combat.Combatant)) *combat.Combatant {
	t.Helper()
	require.True(t, r.Add(name, level, health, attack), "add %s", name)
	c := r.Lookup(name)
	require.NotNil(t, c)
	if tune != nil {
		tune(c)
	}
	return c
}

// plain strips crit, dodge and defense so damage is exactly the roll.
func plain(c *combat.Combatant) {
	c.CritChance = 0
	c.DodgeChance = 0
	c.Defense = 0
}
