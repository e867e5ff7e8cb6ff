package tuner

import (
	"fmt"
	"io"
	"math/rand"
	"os"
	"time"
)

// BoolConditions derives binary experiment flags from tunable integer
// parameters: each flag goes high with a probability that grows with its
// parameter value.
type BoolConditions struct {
	Values    []int
	Binary    []bool
	Threshold int
	Variance  int

	rng     *rand.Rand
	started bool
	out     io.Writer
}

func NewBoolConditions(values []int, threshold, variance int) *BoolConditions {
	return &BoolConditions{
		Values:    values,
		Binary:    make([]bool, len(values)),
		Threshold: threshold,
		Variance:  variance,
		out:       os.Stdout,
	}
}

func (c *BoolConditions) SetOutput(w io.Writer) { c.out = w }

// Set recomputes every flag as value + noise > threshold and prints each as
// a 0/1 line. The first call after startup forces all flags low so benchmark
// replays stay deterministic.
func (c *BoolConditions) Set() {
	if c.rng == nil {
		c.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	for i := range c.Binary {
		noise := 0
		if c.Variance > 0 {
			noise = c.rng.Intn(c.Variance)
		}
		c.Binary[i] = c.started && c.Values[i]+noise > c.Threshold
	}
	c.started = true

	for _, b := range c.Binary {
		v := 0
		if b {
			v = 1
		}
		fmt.Fprintln(c.out, v)
	}
}
