package stats

import (
	"gonum.org/v1/gonum/floats"
)

// Summary holds the count, mean and maximum of a group of values
type Summary struct {
	Count int
	Mean  float64
	Max   float64
}

// Accumulator collects values for one group in insertion order.
// The zero value is ready to use.
type Accumulator struct {
	values []float64
}

// Add appends a value to the group
func (a *Accumulator) Add(v float64) {
	a.values = append(a.values, v)
}

// Count returns the number of values added so far
func (a *Accumulator) Count() int {
	return len(a.values)
}

// Summary calculates count, mean and max over the collected values
func (a *Accumulator) Summary() Summary {
	return Summarize(a.values)
}

// Summarize calculates count, mean and max of a slice of values.
// An empty slice yields the zero Summary.
func Summarize(values []float64) Summary {
	if len(values) == 0 {
		return Summary{}
	}
	return Summary{
		Count: len(values),
		Mean:  Mean(values),
		Max:   floats.Max(values),
	}
}

// Mean calculates the arithmetic mean of a slice of float64 values
func Mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	return floats.Sum(values) / float64(len(values))
}

// Max returns the maximum value, or 0 for an empty slice
func Max(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	return floats.Max(values)
}

// Grouped accumulates values under string keys, remembering first-seen key order
type Grouped struct {
	order  []string
	groups map[string]*Accumulator
}

// NewGrouped creates an empty keyed accumulator
func NewGrouped() *Grouped {
	return &Grouped{groups: make(map[string]*Accumulator)}
}

// Add appends v to the group named key
func (g *Grouped) Add(key string, v float64) {
	acc, ok := g.groups[key]
	if !ok {
		acc = &Accumulator{}
		g.groups[key] = acc
		g.order = append(g.order, key)
	}
	acc.Add(v)
}

// Keys returns group keys in first-seen order
func (g *Grouped) Keys() []string {
	out := make([]string, len(g.order))
	copy(out, g.order)
	return out
}

// Len returns the number of groups
func (g *Grouped) Len() int {
	return len(g.order)
}

// Summary returns the summary for a key; ok is false if no values were added
func (g *Grouped) Summary(key string) (Summary, bool) {
	acc, ok := g.groups[key]
	if !ok {
		return Summary{}, false
	}
	return acc.Summary(), true
}

// MaxCount returns the largest group size, or 0 when there are no groups
func (g *Grouped) MaxCount() int {
	max := 0
	for _, acc := range g.groups {
		if acc.Count() > max {
			max = acc.Count()
		}
	}
	return max
}
