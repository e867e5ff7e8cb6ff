// Package tuner exposes engine parameters as UCI spin options for automated
// parameter search. Declarations are registered explicitly from program
// startup (no hidden static-init pass); Init then generates one option per
// tunable and prints the parameter lines the external tuning harness
// consumes.
package tuner

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/exp/slices"

	"github.com/OhJayGee/SugaR/uci"
)

// SetRange computes the legal tuning range for a parameter's current value.
type SetRange func(v int) (lo, hi int)

// Range fixes the bounds regardless of the current value.
func Range(lo, hi int) SetRange {
	return func(int) (int, int) { return lo, hi }
}

// DefaultRange spans zero to twice the current value (mirrored for
// negatives).
func DefaultRange(v int) (lo, hi int) {
	if v > 0 {
		return 0, 2 * v
	}
	return 2 * v, 0
}

// Param is one registered tunable awaiting its name from the declaration
// list.
type Param interface {
	bind(name string)
	entryName() string
	initOption(t *Tune)
	readOption(t *Tune)
}

// Tune owns the registered tunables and the options map they materialize
// into.
type Tune struct {
	options *uci.OptionsMap
	entries []Param
	results map[string]int
	last    *uci.Option
	out     io.Writer

	// UpdateOnLast batches read-back: when set, only a change to the
	// most-recently-created option re-reads all bound variables, so a GUI
	// applying several spins at once triggers one refresh.
	UpdateOnLast bool
}

func New(o *uci.OptionsMap) *Tune {
	return &Tune{
		options: o,
		results: make(map[string]int),
		out:     os.Stdout,
	}
}

// SetOutput redirects the harness parameter lines (stdout by default).
func (t *Tune) SetOutput(w io.Writer) { t.out = w }

// SetResults seeds initial values from a previous tuning session so the
// generated options start at the tuned values instead of the defaults.
func (t *Tune) SetResults(results map[string]int) {
	for name, v := range results {
		t.results[name] = v
	}
}

// Register binds each param to the next name in the comma-separated
// declaration list.
func (t *Tune) Register(names string, params ...Param) {
	for _, p := range params {
		p.bind(Next(&names, true))
		t.entries = append(t.entries, p)
	}
}

// Init creates the UCI options for every registered tunable, in name order
// so generation is deterministic regardless of registration order.
func (t *Tune) Init() {
	slices.SortStableFunc(t.entries, func(a, b Param) bool {
		return a.entryName() < b.entryName()
	})
	for _, e := range t.entries {
		e.initOption(t)
	}
}

// ReadOptions copies every generated option's current value back into the
// bound variables.
func (t *Tune) ReadOptions() {
	for _, e := range t.entries {
		e.readOption(t)
	}
}

func (t *Tune) onTune(o *uci.Option) {
	if !t.UpdateOnLast || t.last == o {
		t.ReadOptions()
	}
}

func (t *Tune) makeOption(name string, v int, r SetRange) {
	// Do not generate an option when there is nothing to tune (lo == hi).
	lo, hi := r(v)
	if lo == hi {
		return
	}

	if result, ok := t.results[name]; ok {
		v = result
	}

	t.options.Add(name, uci.NewSpin(float64(v), lo, hi, t.onTune))
	t.last = t.options.Get(name)

	// Formatted parameters, ready to be copy-pasted into the tuning harness.
	fmt.Fprintf(t.out, "%s,%d,%d,%d,%v,0.0020\n", name, v, lo, hi, float64(hi-lo)/20.0)
}

// Next extracts the next identifier from a comma-separated declaration list,
// keeping parenthesized fragments intact: tokens accumulate until the open
// and close paren counts balance. With pop set the consumed portion and its
// separator are removed from the list; otherwise the list is left untouched.
func Next(names *string, pop bool) string {
	var name string
	rest := *names

	for first := true; ; first = false {
		i := strings.IndexByte(rest, ',')
		var token string
		if i < 0 {
			token = rest
			rest = ""
		} else {
			token = rest[:i]
			rest = rest[i+1:]
		}
		if !first {
			name += ","
		}
		name += strings.TrimSpace(token)

		if strings.Count(name, "(") == strings.Count(name, ")") {
			break
		}
	}

	if pop {
		*names = rest
	}
	return name
}
