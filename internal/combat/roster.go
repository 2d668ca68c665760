package combat

import "github.com/go-playground/validator/v10"

const (
	DefaultLevelUpHealth = 10
	DefaultLevelUpAttack = 5
)

var validate = validator.New()

// newEntry carries the user-supplied fields of Roster.Add.
type newEntry struct {
	Name   string `validate:"required"`
	Level  int    `validate:"min=1,max=10"`
	Health int    `validate:"min=10,max=200"`
	Attack int    `validate:"min=5,max=50"`
}

// Handle addresses one Roster slot. A handle goes stale when its entry
// is removed; Get then returns nil even if the slot is reused.
type Handle struct {
	index uint32
	gen   uint32
}

type slot struct {
	rec *Combatant
	gen uint32
}

// Roster is an ordered, name-unique store of combatants.
type Roster struct {
	slots []slot
	order []uint32
	free  []uint32
}

func NewRoster() *Roster { return &Roster{} }

func (r *Roster) Len() int { return len(r.order) }

// Add appends a combatant with default secondary stats. It reports false
// and leaves the roster untouched when a field is out of range or the
// name is already taken.
func (r *Roster) Add(name string, level, health, attack int) bool {
	if err := validate.Struct(newEntry{Name: name, Level: level, Health: health, Attack: attack}); err != nil {
		return false
	}
	if _, dup := r.Find(name); dup {
		return false
	}
	rec := &Combatant{
		Name:        name,
		Level:       level,
		Health:      health,
		HealthMax:   health,
		Attack:      attack,
		Defense:     DefaultDefense,
		CritChance:  DefaultCritChance,
		DodgeChance: DefaultDodgeChance,
		EnergyMax:   DefaultEnergyMax,
	}
	var idx uint32
	if n := len(r.free); n > 0 {
		idx = r.free[n-1]
		r.free = r.free[:n-1]
		r.slots[idx].rec = rec
	} else {
		idx = uint32(len(r.slots))
		r.slots = append(r.slots, slot{rec: rec, gen: 1})
	}
	r.order = append(r.order, idx)
	return true
}

// Remove drops the entry with the given name.
func (r *Roster) Remove(name string) bool {
	for pos, idx := range r.order {
		if r.slots[idx].rec.Name != name {
			continue
		}
		r.order = append(r.order[:pos], r.order[pos+1:]...)
		s := &r.slots[idx]
		s.rec = nil
		s.gen++
		r.free = append(r.free, idx)
		return true
	}
	return false
}

func (r *Roster) Find(name string) (Handle, bool) {
	for _, idx := range r.order {
		if r.slots[idx].rec.Name == name {
			return Handle{index: idx, gen: r.slots[idx].gen}, true
		}
	}
	return Handle{}, false
}

// Get resolves a handle, or returns nil when the entry is gone. The
// record pointer stays valid until its entry is removed.
func (r *Roster) Get(h Handle) *Combatant {
	if int(h.index) >= len(r.slots) {
		return nil
	}
	s := r.slots[h.index]
	if s.rec == nil || s.gen != h.gen {
		return nil
	}
	return s.rec
}

// Lookup is Find followed by Get.
func (r *Roster) Lookup(name string) *Combatant {
	h, ok := r.Find(name)
	if !ok {
		return nil
	}
	return r.Get(h)
}

func (r *Roster) LevelUp(name string) bool {
	return r.LevelUpBy(name, DefaultLevelUpHealth, DefaultLevelUpAttack)
}

func (r *Roster) LevelUpBy(name string, dHealth, dAttack int) bool {
	c := r.Lookup(name)
	if c == nil {
		return false
	}
	c.levelUp(dHealth, dAttack)
	return true
}

// Alive lists the living entries in roster order.
func (r *Roster) Alive() []Handle {
	out := make([]Handle, 0, len(r.order))
	for _, idx := range r.order {
		if r.slots[idx].rec.Alive() {
			out = append(out, Handle{index: idx, gen: r.slots[idx].gen})
		}
	}
	return out
}

// All lists every entry in roster order, dead ones included.
func (r *Roster) All() []Handle {
	out := make([]Handle, 0, len(r.order))
	for _, idx := range r.order {
		out = append(out, Handle{index: idx, gen: r.slots[idx].gen})
	}
	return out
}

// Snapshot copies every record in roster order.
func (r *Roster) Snapshot() []Combatant {
	out := make([]Combatant, 0, len(r.order))
	for _, idx := range r.order {
		out = append(out, *r.slots[idx].rec)
	}
	return out
}

// name returns the entry name behind h, or "" for a stale handle.
func (r *Roster) name(h Handle) string {
	if c := r.Get(h); c != nil {
		return c.Name
	}
	return ""
}
