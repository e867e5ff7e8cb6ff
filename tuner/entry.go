package tuner

import (
	"golang.org/x/exp/constraints"

	"github.com/OhJayGee/SugaR/engine"
)

// entry binds a plain integer-kind parameter (int, engine.Value, ...).
type entry[T constraints.Integer] struct {
	name  string
	value *T
	rng   SetRange
}

// Int registers a tunable integer-kind variable.
func Int[T constraints.Integer](v *T, r SetRange) Param {
	return &entry[T]{value: v, rng: r}
}

func (e *entry[T]) bind(name string)  { e.name = name }
func (e *entry[T]) entryName() string { return e.name }

func (e *entry[T]) initOption(t *Tune) {
	t.makeOption(e.name, int(*e.value), e.rng)
}

func (e *entry[T]) readOption(t *Tune) {
	if o := t.options.Get(e.name); o != nil {
		*e.value = T(o.Int())
	}
}

// scoreEntry binds a midgame/endgame pair. Two options are generated, with
// "m" and "e" prefixes, and read back into the two halves independently.
type scoreEntry struct {
	name  string
	value *engine.Score
	rng   SetRange
}

// Score registers a tunable midgame/endgame score.
func Score(v *engine.Score, r SetRange) Param {
	return &scoreEntry{value: v, rng: r}
}

func (e *scoreEntry) bind(name string)  { e.name = name }
func (e *scoreEntry) entryName() string { return e.name }

func (e *scoreEntry) initOption(t *Tune) {
	t.makeOption("m"+e.name, int(e.value.Mg), e.rng)
	t.makeOption("e"+e.name, int(e.value.Eg), e.rng)
}

func (e *scoreEntry) readOption(t *Tune) {
	if o := t.options.Get("m" + e.name); o != nil {
		e.value.Mg = engine.Value(o.Int())
	}
	if o := t.options.Get("e" + e.name); o != nil {
		e.value.Eg = engine.Value(o.Int())
	}
}

// postUpdateEntry holds a function instead of a variable: no option is
// generated, and read-back just calls it.
type postUpdateEntry struct {
	name string
	fn   func()
}

// PostUpdate registers a hook run after every read-back, for derived tables
// that must be rebuilt when their inputs change.
func PostUpdate(f func()) Param {
	return &postUpdateEntry{fn: f}
}

func (e *postUpdateEntry) bind(name string)  { e.name = name }
func (e *postUpdateEntry) entryName() string { return e.name }
func (e *postUpdateEntry) initOption(*Tune)  {}
func (e *postUpdateEntry) readOption(*Tune)  { e.fn() }
