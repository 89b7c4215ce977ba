package chain

import (
	"fmt"
	"math"
	"sort"
)

// RowTolerance is the absolute slack allowed when checking that a row of
// outgoing probabilities sums to 1.
const RowTolerance = 1e-9

// State is one value of the finite set a chain can occupy at a given step.
// States carry no structure beyond identity.
type State string

// Distribution maps each state to a probability in [0,1].
type Distribution map[State]float64

// Sum returns the total probability mass of the distribution.
func (d Distribution) Sum() float64 {
	total := 0.0
	for _, p := range d {
		total += p
	}
	return total
}

// Clone returns an independent copy of the distribution.
func (d Distribution) Clone() Distribution {
	out := make(Distribution, len(d))
	for s, p := range d {
		out[s] = p
	}
	return out
}

// Point returns the deterministic distribution concentrated on s.
func Point(s State) Distribution {
	return Distribution{s: 1}
}

// Uniform returns the distribution that assigns equal mass to every given
// state.
func Uniform(states ...State) Distribution {
	out := make(Distribution, len(states))
	for _, s := range states {
		out[s] = 1 / float64(len(states))
	}
	return out
}

// Trajectory is one realized sample path: the ordered sequence of states
// drawn during a simulation. It is returned once and never mutated.
type Trajectory []State

// Counts tallies how often each state occurs in the trajectory.
func (t Trajectory) Counts() map[State]int {
	counts := make(map[State]int)
	for _, s := range t {
		counts[s]++
	}
	return counts
}

// Model is a validated, immutable transition table. Construct one with New;
// the zero value is not usable.
type Model struct {
	rows   map[State]Distribution
	states []State
}

// New builds a Model from a transition table. Every source state must carry
// a distribution that sums to 1 within RowTolerance, contains only finite
// probabilities in [0,1], and targets only states that have a row of their
// own. Violations are collected per row and returned as a ModelError
// wrapping ErrInvalidModel.
func New(rows map[State]Distribution) (*Model, error) {
	if len(rows) == 0 {
		return nil, &ModelError{Rows: []error{
			&RowError{Reason: "transition table is empty"},
		}}
	}

	m := &Model{
		rows:   make(map[State]Distribution, len(rows)),
		states: make([]State, 0, len(rows)),
	}
	for s, row := range rows {
		m.rows[s] = row.Clone()
		m.states = append(m.states, s)
	}
	// Sorted order makes sampling and serialization reproducible.
	sort.Slice(m.states, func(i, j int) bool { return m.states[i] < m.states[j] })

	var rowErrs []error
	for _, src := range m.states {
		if err := m.validateRow(src); err != nil {
			rowErrs = append(rowErrs, err)
		}
	}
	if len(rowErrs) > 0 {
		return nil, &ModelError{Rows: rowErrs}
	}

	return m, nil
}

func (m *Model) validateRow(src State) error {
	row := m.rows[src]
	if len(row) == 0 {
		return &RowError{State: src, Reason: "no outgoing probabilities"}
	}

	sum := 0.0
	for target, p := range row {
		if math.IsNaN(p) || math.IsInf(p, 0) {
			return &RowError{State: src, Reason: fmt.Sprintf("probability for %q is not finite", target)}
		}
		if p < 0 || p > 1 {
			return &RowError{State: src, Reason: fmt.Sprintf("probability for %q is %v, outside [0,1]", target, p)}
		}
		if _, ok := m.rows[target]; !ok {
			return &RowError{State: src, Reason: fmt.Sprintf("transition targets unknown state %q", target)}
		}
		sum += p
	}
	if math.Abs(sum-1) > RowTolerance {
		return &RowError{State: src, Reason: fmt.Sprintf("outgoing probabilities sum to %v, want 1", sum)}
	}
	return nil
}

// States returns the chain's states in sorted order.
func (m *Model) States() []State {
	out := make([]State, len(m.states))
	copy(out, m.states)
	return out
}

// Contains reports whether s has a row in the model.
func (m *Model) Contains(s State) bool {
	_, ok := m.rows[s]
	return ok
}

// Row returns a copy of the outgoing distribution of s.
func (m *Model) Row(s State) (Distribution, bool) {
	row, ok := m.rows[s]
	if !ok {
		return nil, false
	}
	return row.Clone(), true
}

// Prob returns the transition probability from one state to another.
func (m *Model) Prob(from, to State) float64 {
	return m.rows[from][to]
}

// Rows returns a deep copy of the whole transition table, useful for
// serialization and introspection.
func (m *Model) Rows() map[State]Distribution {
	out := make(map[State]Distribution, len(m.rows))
	for s, row := range m.rows {
		out[s] = row.Clone()
	}
	return out
}

// checkDistribution validates a caller-supplied distribution against the
// model's state set.
func (m *Model) checkDistribution(d Distribution) error {
	if len(d) == 0 {
		return fmt.Errorf("%w: no probability mass", ErrInvalidDistribution)
	}
	for s, p := range d {
		if !m.Contains(s) {
			return fmt.Errorf("%w: references unknown state %q", ErrInvalidDistribution, s)
		}
		if math.IsNaN(p) || p < 0 || p > 1 {
			return fmt.Errorf("%w: probability for %q is %v", ErrInvalidDistribution, s, p)
		}
	}
	if sum := d.Sum(); math.Abs(sum-1) > RowTolerance {
		return fmt.Errorf("%w: mass sums to %v, want 1", ErrInvalidDistribution, sum)
	}
	return nil
}
