package combat

import "slices"

// TurnOrder is the rotation of who acts next. It stores handles into a
// Roster and reads names and health through it.
type TurnOrder struct {
	roster  *Roster
	entries []Handle
	cur     int // -1 when empty
}

func NewTurnOrder(r *Roster) *TurnOrder {
	return &TurnOrder{roster: r, cur: -1}
}

func (t *TurnOrder) Len() int { return len(t.entries) }

// Push adds h at the end of the cycle, just before the current entry.
func (t *TurnOrder) Push(h Handle) {
	if t.cur < 0 {
		t.entries = append(t.entries[:0], h)
		t.cur = 0
		return
	}
	t.entries = slices.Insert(t.entries, t.cur, h)
	t.cur++
}

// Remove drops the entry for name. If it was current, the next entry
// becomes current.
func (t *TurnOrder) Remove(name string) bool {
	if t.cur < 0 {
		return false
	}
	if len(t.entries) == 1 {
		if t.roster.name(t.entries[0]) != name {
			return false
		}
		t.entries = t.entries[:0]
		t.cur = -1
		return true
	}
	for i, h := range t.entries {
		if t.roster.name(h) != name {
			continue
		}
		t.entries = slices.Delete(t.entries, i, i+1)
		if i < t.cur {
			t.cur--
		}
		if t.cur >= len(t.entries) {
			t.cur = 0
		}
		return true
	}
	return false
}

// removeHandle drops an entry whose roster record is gone; it cannot be
// matched by name anymore.
func (t *TurnOrder) removeHandle(h Handle) {
	i := slices.Index(t.entries, h)
	if i < 0 {
		return
	}
	t.entries = slices.Delete(t.entries, i, i+1)
	switch {
	case len(t.entries) == 0:
		t.cur = -1
	case i < t.cur:
		t.cur--
	case t.cur >= len(t.entries):
		t.cur = 0
	}
}

func (t *TurnOrder) Advance() (Handle, bool) {
	if t.cur < 0 {
		return Handle{}, false
	}
	t.cur = (t.cur + 1) % len(t.entries)
	return t.entries[t.cur], true
}

func (t *TurnOrder) Current() (Handle, bool) {
	if t.cur < 0 {
		return Handle{}, false
	}
	return t.entries[t.cur], true
}

// ResortByHealthDesc rebuilds the cycle from the current entry onward,
// ordered by descending current health. The healthiest entry becomes
// current. Ties keep their rotation order.
func (t *TurnOrder) ResortByHealthDesc() {
	if len(t.entries) <= 1 {
		return
	}
	rotated := t.Handles()
	slices.SortStableFunc(rotated, func(a, b Handle) int {
		return t.health(b) - t.health(a)
	})
	t.entries = rotated
	t.cur = 0
}

// Handles lists the cycle starting at the current entry.
func (t *TurnOrder) Handles() []Handle {
	if t.cur < 0 {
		return nil
	}
	out := make([]Handle, 0, len(t.entries))
	out = append(out, t.entries[t.cur:]...)
	out = append(out, t.entries[:t.cur]...)
	return out
}

// Names lists combatant names starting at the current entry.
func (t *TurnOrder) Names() []string {
	hs := t.Handles()
	out := make([]string, 0, len(hs))
	for _, h := range hs {
		out = append(out, t.roster.name(h))
	}
	return out
}

func (t *TurnOrder) health(h Handle) int {
	if c := t.roster.Get(h); c != nil {
		return c.Health
	}
	return 0
}
