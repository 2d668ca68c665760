package combat

import "go.uber.org/zap"

type Option func(*Engine)

func WithLogger(l *zap.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.log = l
		}
	}
}

func WithRules(r Rules) Option {
	return func(e *Engine) { e.rules = r }
}

// Engine drives a match one turn at a time. It is not safe for
// concurrent use; one caller advances it.
type Engine struct {
	roster    *Roster
	turns     *TurnOrder
	policy    *Policy
	resolver  *Resolver
	rules     Rules
	log       *zap.Logger
	listeners []Listener

	stats Stats
	round int
	turn  int
	over  bool
}

// NewEngine seeds the turn order with every living combatant in roster
// order. Callers should bring at least two living combatants.
func NewEngine(r *Roster, rng Source, opts ...Option) *Engine {
	e := &Engine{
		roster: r,
		turns:  NewTurnOrder(r),
		rules:  DefaultRules(),
		log:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	e.policy = NewPolicy(r, rng, e.rules)
	e.resolver = NewResolver(r, rng, e.rules)
	for _, h := range r.Alive() {
		e.turns.Push(h)
	}
	return e
}

// AddListener registers fn. Listeners run synchronously in registration
// order; a panic in one reaches the caller of AdvanceTurn or EndRound.
func (e *Engine) AddListener(fn Listener) {
	e.listeners = append(e.listeners, fn)
}

func (e *Engine) emit(ev Event) {
	for _, fn := range e.listeners {
		fn(ev)
	}
}

// AdvanceTurn plays the current combatant's turn and moves the rotation
// on. Listeners receive exactly one event per call. When the turn leaves
// at most one combatant alive, that event carries GameOver and Winner.
// Once the match is decided, or nobody is left in the rotation, it only
// returns game_end events and broadcasts nothing.
func (e *Engine) AdvanceTurn() Event {
	if e.over {
		return e.gameEnd()
	}
	actor, ok := e.currentActor()
	if !ok {
		e.over = true
		return e.gameEnd()
	}

	e.turn++
	d := e.policy.Decide(actor)
	ev := e.resolver.Resolve(actor, d)
	ev.Turn, ev.Round = e.turn, e.round+1
	e.stats.record(ev)

	if ev.TargetDied {
		e.turns.Remove(ev.Target)
		e.log.Info("combatant defeated",
			zap.String("name", ev.Target),
			zap.String("by", ev.Actor),
			zap.Int("turn", e.turn))
	}
	if len(e.roster.Alive()) <= 1 {
		ev.GameOver, ev.Winner = true, e.gameEnd().Winner
		e.over = true
		e.log.Info("match over",
			zap.String("winner", ev.Winner),
			zap.Int("round", ev.Round),
			zap.Int("turns", e.turn))
	}
	e.emit(ev)
	e.turns.Advance()
	return ev
}

// currentActor returns the current entry, dropping entries whose record
// was removed or killed outside the engine.
func (e *Engine) currentActor() (Handle, bool) {
	for {
		h, ok := e.turns.Current()
		if !ok {
			return Handle{}, false
		}
		if c := e.roster.Get(h); c != nil && c.Alive() {
			return h, true
		}
		e.turns.removeHandle(h)
	}
}

func (e *Engine) gameEnd() Event {
	ev := Event{Kind: EventGameEnd, Turn: e.turn, Round: e.round + 1, GameOver: true}
	if len(e.roster.Alive()) <= 1 {
		if h, ok := e.Winner(); ok {
			ev.Winner = e.roster.name(h)
		}
	}
	return ev
}

// EndRound closes the current round and re-sorts the rotation by
// descending health.
func (e *Engine) EndRound() Event {
	e.round++
	e.turns.ResortByHealthDesc()
	ev := Event{Kind: EventRoundEnd, Round: e.round}
	e.log.Debug("round ended",
		zap.Int("round", e.round),
		zap.Strings("order", e.turns.Names()))
	e.emit(ev)
	return ev
}

// Winner is the living combatant with the most health; the first in
// roster order wins ties.
func (e *Engine) Winner() (Handle, bool) {
	var best Handle
	found := false
	for _, h := range e.roster.Alive() {
		if !found || e.roster.Get(h).Health > e.roster.Get(best).Health {
			best, found = h, true
		}
	}
	return best, found
}

func (e *Engine) Roster() *Roster   { return e.roster }
func (e *Engine) Turns() *TurnOrder { return e.turns }
func (e *Engine) Stats() Stats      { return e.stats }
func (e *Engine) Round() int        { return e.round }
func (e *Engine) TurnsPlayed() int  { return e.turn }
func (e *Engine) Over() bool        { return e.over }
func (e *Engine) Rules() Rules      { return e.rules }
