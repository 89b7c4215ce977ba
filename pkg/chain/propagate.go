package chain

import "fmt"

// Propagate evolves a probability distribution forward through the chain.
// It returns steps+1 snapshots: the initial distribution followed by one per
// application of the transition table, where
//
//	next[s] = Σ_src P(s|src) · prev[src]
//
// This is the exact expected-value evolution of the chain; no randomness is
// involved. Each returned snapshot is an independent copy. For any valid
// starting distribution of an ergodic chain the sequence converges to the
// stationary distribution, though Propagate itself only computes the
// requested number of terms.
func (m *Model) Propagate(initial Distribution, steps int) ([]Distribution, error) {
	if steps < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeSteps, steps)
	}
	if err := m.checkDistribution(initial); err != nil {
		return nil, err
	}

	out := make([]Distribution, 0, steps+1)
	out = append(out, initial.Clone())

	prev := initial
	for i := 0; i < steps; i++ {
		next := m.step(prev)
		out = append(out, next)
		prev = next
	}
	return out, nil
}

// step applies the transition table once: one vector-matrix multiply.
func (m *Model) step(prev Distribution) Distribution {
	next := make(Distribution, len(m.states))
	for _, src := range m.states {
		mass := prev[src]
		if mass == 0 {
			continue
		}
		for target, p := range m.rows[src] {
			next[target] += p * mass
		}
	}
	return next
}
